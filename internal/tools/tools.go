// Package tools holds the fixed set of lookups a model may ask for.
// The orchestrator and the MCP server both dispatch through Toolbox.
package tools

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/KirkDiggler/pokidex/internal/clients/pokeapi"
	"github.com/KirkDiggler/pokidex/internal/entities/pokemon"
	"github.com/KirkDiggler/pokidex/internal/errors"
	"github.com/KirkDiggler/pokidex/internal/formatter"
)

// Tool names a lookup
type Tool string

// The only tools a decision may name
const (
	GetPokemon Tool = "get_pokemon"
	GetSpecies Tool = "get_species"
	GetStats   Tool = "get_stats"
	GetMoves   Tool = "get_moves"
)

// All lists the tools in prompt order
var All = []Tool{GetPokemon, GetSpecies, GetStats, GetMoves}

var descriptions = map[Tool]string{
	GetPokemon: "full record (types, stats, abilities, height, weight) plus species details and description",
	GetSpecies: "species details only (capture rate, happiness, legendary/mythical flags, description)",
	GetStats:   "base stats only",
	GetMoves:   "list of moves the pokemon can learn",
}

// Valid reports whether t is one of the enumerated tools
func (t Tool) Valid() bool {
	_, ok := descriptions[t]
	return ok
}

// Description is the one line summary used in prompts and tool listings
func (t Tool) Description() string {
	return descriptions[t]
}

// Describe lists every tool, one per line
func Describe() string {
	var sb strings.Builder
	for _, t := range All {
		fmt.Fprintf(&sb, "- %s: %s\n", t, t.Description())
	}
	return sb.String()
}

// Toolbox runs tools against the lookup service
type Toolbox struct {
	Client pokeapi.Client
	// MaxMoves bounds get_moves output (<= 0 uses the formatter default)
	MaxMoves int
	Logger   *zap.Logger
}

// Run executes the tool and returns text for the model.
// Lookup failures and unknown tools come back as "Error: ..." text so the
// caller can hand them to the model instead of aborting.
func (tb *Toolbox) Run(ctx context.Context, tool Tool, name string) string {
	logger := tb.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	out, err := tb.run(ctx, tool, name)
	if err != nil {
		logger.Debug("tool failed",
			zap.String("tool", string(tool)),
			zap.String("name", name),
			zap.Error(err),
		)
		if !tool.Valid() {
			return fmt.Sprintf("Error: unknown tool %q", string(tool))
		}
		return fmt.Sprintf("Error: could not fetch %s for %q: %s", tool, name, errors.GetMessage(err))
	}
	return out
}

func (tb *Toolbox) run(ctx context.Context, tool Tool, name string) (string, error) {
	switch tool {
	case GetPokemon:
		p, err := tb.Client.GetPokemon(ctx, name)
		if err != nil {
			return "", err
		}
		return formatter.PokemonWithSpecies(p, tb.bestEffortSpecies(ctx, name)), nil
	case GetSpecies:
		s, err := tb.Client.GetSpecies(ctx, name)
		if err != nil {
			return "", err
		}
		return formatter.Species(s), nil
	case GetStats:
		p, err := tb.Client.GetPokemon(ctx, name)
		if err != nil {
			return "", err
		}
		return formatter.Stats(p), nil
	case GetMoves:
		p, err := tb.Client.GetPokemon(ctx, name)
		if err != nil {
			return "", err
		}
		return formatter.Moves(p, tb.MaxMoves), nil
	default:
		return "", errors.InvalidArgumentf("unknown tool %q", string(tool))
	}
}

func (tb *Toolbox) bestEffortSpecies(ctx context.Context, name string) *pokemon.Species {
	s, err := tb.Client.GetSpecies(ctx, name)
	if err != nil {
		return nil
	}
	return s
}
