package mcp

import (
	"context"
	"strings"

	sdk "github.com/modelcontextprotocol/go-sdk/mcp"
	"go.uber.org/zap"

	"github.com/KirkDiggler/pokidex/internal/clients/pokeapi"
	"github.com/KirkDiggler/pokidex/internal/errors"
	"github.com/KirkDiggler/pokidex/internal/tools"
)

type LookupInput struct {
	Name string `json:"name" jsonschema:"pokemon name or national dex number, e.g. pikachu or 25"`
}

type LookupOutput struct {
	Name string `json:"name"`
	Text string `json:"text"`
	// Found is false when the lookup failed and Text holds the error
	Found bool `json:"found"`
}

func (s *Server) registerTools() {
	for _, tool := range tools.All {
		sdk.AddTool(s.mcp, &sdk.Tool{
			Name:        string(tool),
			Description: "Pokemon " + tool.Description(),
		}, s.handler(tool))
	}
}

func (s *Server) handler(tool tools.Tool) sdk.ToolHandlerFor[LookupInput, LookupOutput] {
	return func(ctx context.Context, req *sdk.CallToolRequest, input LookupInput) (*sdk.CallToolResult, LookupOutput, error) {
		if strings.TrimSpace(input.Name) == "" {
			return nil, LookupOutput{}, errors.InvalidArgument("name is required")
		}

		name := pokeapi.NormalizeName(input.Name)
		if name == "" {
			name = strings.ToLower(strings.TrimSpace(input.Name))
		}

		text := s.toolbox.Run(ctx, tool, name)
		found := !strings.HasPrefix(text, "Error:")
		s.logger.Debug("mcp tool call",
			zap.String("tool", string(tool)),
			zap.String("name", name),
			zap.Bool("found", found),
		)

		return nil, LookupOutput{Name: name, Text: text, Found: found}, nil
	}
}
