// Package mcp serves the pokemon lookup tools over the Model Context Protocol
package mcp

import (
	"context"

	sdk "github.com/modelcontextprotocol/go-sdk/mcp"
	"go.uber.org/zap"

	"github.com/KirkDiggler/pokidex/internal/clients/pokeapi"
	"github.com/KirkDiggler/pokidex/internal/errors"
	"github.com/KirkDiggler/pokidex/internal/tools"
)

// ServerName is reported to MCP clients during initialization
const ServerName = "pokidex"

// Config holds the dependencies for the MCP server
type Config struct {
	Lookup   pokeapi.Client
	MaxMoves int
	Version  string
	Logger   *zap.Logger
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Lookup == nil {
		vb.RequiredField("Lookup")
	}
	if c.MaxMoves < 0 {
		vb.InvalidField("MaxMoves", "must not be negative")
	}

	return vb.Build()
}

// Server wraps an sdk server with the lookup tools registered
type Server struct {
	toolbox *tools.Toolbox
	logger  *zap.Logger
	mcp     *sdk.Server
}

// NewServer creates a server with every tool in tools.All registered
func NewServer(cfg *Config) (*Server, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	version := cfg.Version
	if version == "" {
		version = "dev"
	}

	s := &Server{
		toolbox: &tools.Toolbox{Client: cfg.Lookup, MaxMoves: cfg.MaxMoves, Logger: logger},
		logger:  logger,
		mcp: sdk.NewServer(&sdk.Implementation{
			Name:    ServerName,
			Version: version,
		}, nil),
	}
	s.registerTools()
	return s, nil
}

// Run serves until the transport closes or ctx is done
func (s *Server) Run(ctx context.Context, transport sdk.Transport) error {
	return s.mcp.Run(ctx, transport)
}
