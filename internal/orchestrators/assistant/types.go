package assistant

import "github.com/KirkDiggler/pokidex/internal/tools"

// Mode records which path produced an answer
type Mode string

// Answer paths
const (
	// ModeTool answered from a tool the model asked for
	ModeTool Mode = "tool"
	// ModeDirect is the model's own final answer, no lookups
	ModeDirect Mode = "direct"
	// ModeFallback answered from a name found in the question
	ModeFallback Mode = "fallback"
	// ModeGeneral answered from general knowledge
	ModeGeneral Mode = "general"
)

// ProcessQueryInput is one user question
type ProcessQueryInput struct {
	Query string
}

// ProcessQueryOutput is the final answer and how it was reached
type ProcessQueryOutput struct {
	Answer string
	Mode   Mode
	// Tool is set in ModeTool
	Tool tools.Tool
}

// ProcessImageQueryInput names an image by path or carries its bytes.
// Path wins when both are set.
type ProcessImageQueryInput struct {
	Path string

	Data []byte
	// MediaType defaults to the type derived from Path, then application/octet-stream
	MediaType string
}

// ProcessImageQueryOutput is the rendered answer for an image
type ProcessImageQueryOutput struct {
	Answer string
	// Identification is nil when the model reply could not be parsed
	Identification *Identification
}
