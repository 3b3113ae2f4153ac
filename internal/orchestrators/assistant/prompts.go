package assistant

import (
	"fmt"

	"github.com/KirkDiggler/pokidex/internal/tools"
)

const generalContext = "You are a Pokemon assistant. Answer questions about Pokemon using general knowledge. " +
	"If asked about a specific Pokemon, you may need the Pokemon name to provide detailed information."

const imageValidationPrompt = "You are validating whether an image contains a Pokémon. " +
	"Return STRICT JSON only with one of these shapes: " +
	`{"type":"pokemon","name":"<pokemon name>"} or {"type":"not_pokemon","reason":"<short reason>"}. ` +
	"If unsure, return not_pokemon."

func routingPrompt(query string) string {
	return fmt.Sprintf("You are a Pokemon assistant with access to PokéAPI lookups.\n\n"+
		"Available tools:\n%s\n"+
		"Decide whether answering the question needs exactly one of these tools. "+
		"Return STRICT JSON only with one of these shapes:\n"+
		`{"type":"action","tool":"<tool name>","name":"<pokemon name or id>"}`+"\n"+
		`{"type":"final","answer":"<your answer>"}`+"\n"+
		"Use \"final\" only when no Pokemon data is needed.\n\n"+
		"User Question: %s", tools.Describe(), query)
}

func contextPrompt(context, query string) string {
	return fmt.Sprintf("You are a helpful Pokemon assistant. "+
		"Use the following Pokemon data to answer the user's question accurately and concisely.\n\n"+
		"Pokemon Data:\n%s\n\n"+
		"User Question: %s\n\n"+
		"Provide a clear, accurate answer based on the Pokemon data above. "+
		"If the data doesn't contain the answer, say so.", context, query)
}
