// Package formatter renders lookup records as plain text blocks for prompts
// and terminal output. Every function is pure and deterministic.
package formatter

import (
	"fmt"
	"strings"

	"github.com/KirkDiggler/pokidex/internal/entities/pokemon"
)

// DefaultMaxMoves bounds the moves view when no positive limit is given
const DefaultMaxMoves = 20

var flavorTextSpaces = strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ", "\f", " ")

// Pokemon renders the full creature record
func Pokemon(p *pokemon.Pokemon) string {
	var sb strings.Builder
	writeHeader(&sb, p)
	fmt.Fprintf(&sb, "Types: %s\n", strings.Join(p.Types, ", "))
	writeStats(&sb, p)

	abilities := make([]string, 0, len(p.Abilities))
	for _, a := range p.Abilities {
		if a.IsHidden {
			abilities = append(abilities, a.Name+" (hidden)")
			continue
		}
		abilities = append(abilities, a.Name)
	}
	fmt.Fprintf(&sb, "Abilities: %s\n", strings.Join(abilities, ", "))
	fmt.Fprintf(&sb, "Height: %d dm\n", p.Height)
	fmt.Fprintf(&sb, "Weight: %d hg\n", p.Weight)
	if p.BaseExperience != nil {
		fmt.Fprintf(&sb, "Base Experience: %d\n", *p.BaseExperience)
	}
	return sb.String()
}

// PokemonWithSpecies renders the creature record followed by the species block
func PokemonWithSpecies(p *pokemon.Pokemon, s *pokemon.Species) string {
	if s == nil {
		return Pokemon(p)
	}
	return Pokemon(p) + "\n" + Species(s)
}

// Species renders the species block on its own
func Species(s *pokemon.Species) string {
	var sb strings.Builder
	sb.WriteString("Species Information:\n")
	fmt.Fprintf(&sb, "  Capture Rate: %d\n", s.CaptureRate)
	if s.BaseHappiness != nil {
		fmt.Fprintf(&sb, "  Base Happiness: %d\n", *s.BaseHappiness)
	}
	fmt.Fprintf(&sb, "  Is Legendary: %t\n", s.IsLegendary)
	fmt.Fprintf(&sb, "  Is Mythical: %t\n", s.IsMythical)
	if text, ok := s.FlavorTextIn(pokemon.LanguageEnglish); ok {
		fmt.Fprintf(&sb, "  Description: %s\n", flavorTextSpaces.Replace(text))
	}
	return sb.String()
}

// Stats renders the name, id and base stats
func Stats(p *pokemon.Pokemon) string {
	var sb strings.Builder
	writeHeader(&sb, p)
	writeStats(&sb, p)
	return sb.String()
}

// Moves renders at most maxMoves move names, in record order
func Moves(p *pokemon.Pokemon, maxMoves int) string {
	if maxMoves <= 0 {
		maxMoves = DefaultMaxMoves
	}
	shown := p.Moves
	if len(shown) > maxMoves {
		shown = shown[:maxMoves]
	}

	var sb strings.Builder
	writeHeader(&sb, p)
	fmt.Fprintf(&sb, "Moves (showing %d of %d):\n", len(shown), len(p.Moves))
	for _, m := range shown {
		fmt.Fprintf(&sb, "  - %s\n", m)
	}
	return sb.String()
}

func writeHeader(sb *strings.Builder, p *pokemon.Pokemon) {
	fmt.Fprintf(sb, "Name: %s\n", p.Name)
	fmt.Fprintf(sb, "ID: %d\n", p.ID)
}

func writeStats(sb *strings.Builder, p *pokemon.Pokemon) {
	sb.WriteString("Stats:\n")
	for _, st := range p.Stats {
		fmt.Fprintf(sb, "  - %s: %d\n", st.Name, st.BaseStat)
	}
}
