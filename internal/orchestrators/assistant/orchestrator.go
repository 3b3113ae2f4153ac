// Package assistant answers pokemon questions by routing each one through a
// single decision step: a tool lookup, a direct answer, or name extraction.
package assistant

//go:generate mockgen -destination=mock/mock_service.go -package=assistantmock github.com/KirkDiggler/pokidex/internal/orchestrators/assistant Service

import (
	"context"
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"

	"github.com/KirkDiggler/pokidex/internal/clients/llm"
	"github.com/KirkDiggler/pokidex/internal/clients/pokeapi"
	"github.com/KirkDiggler/pokidex/internal/entities/pokemon"
	"github.com/KirkDiggler/pokidex/internal/errors"
	"github.com/KirkDiggler/pokidex/internal/formatter"
	"github.com/KirkDiggler/pokidex/internal/services/extractor"
	"github.com/KirkDiggler/pokidex/internal/tools"
)

// Service answers text and image questions
type Service interface {
	ProcessQuery(ctx context.Context, input *ProcessQueryInput) (*ProcessQueryOutput, error)
	ProcessImageQuery(ctx context.Context, input *ProcessImageQueryInput) (*ProcessImageQueryOutput, error)
}

// Config holds the dependencies for the assistant orchestrator
type Config struct {
	Lookup    pokeapi.Client
	Generator llm.Generator
	// Extractor defaults to one built on Lookup
	Extractor extractor.Extractor
	Logger    *zap.Logger
	// MaxMoves bounds get_moves output (0 uses the formatter default)
	MaxMoves int
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Lookup == nil {
		vb.RequiredField("Lookup")
	}
	if c.Generator == nil {
		vb.RequiredField("Generator")
	}
	if c.MaxMoves < 0 {
		vb.InvalidField("MaxMoves", "must not be negative")
	}

	return vb.Build()
}

type orchestrator struct {
	lookup    pokeapi.Client
	generator llm.Generator
	extractor extractor.Extractor
	toolbox   *tools.Toolbox
	logger    *zap.Logger
}

// NewOrchestrator creates a new assistant orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
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

	ext := cfg.Extractor
	if ext == nil {
		var err error
		ext, err = extractor.New(&extractor.Config{Client: cfg.Lookup, Logger: logger})
		if err != nil {
			return nil, errors.Wrap(err, "failed to create extractor")
		}
	}

	return &orchestrator{
		lookup:    cfg.Lookup,
		generator: cfg.Generator,
		extractor: ext,
		toolbox:   &tools.Toolbox{Client: cfg.Lookup, MaxMoves: cfg.MaxMoves, Logger: logger},
		logger:    logger,
	}, nil
}

func (o *orchestrator) ProcessQuery(ctx context.Context, input *ProcessQueryInput) (*ProcessQueryOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	query := strings.TrimSpace(input.Query)
	if query == "" {
		return nil, errors.InvalidArgument("query is required")
	}

	raw, err := o.generate(ctx, routingPrompt(query), nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to route query")
	}

	var out *ProcessQueryOutput
	switch d := ParseDecision(raw).(type) {
	case Action:
		decisionsTotal.WithLabelValues("action").Inc()
		o.logger.Debug("decision", zap.String("kind", "action"), zap.String("tool", string(d.Tool)), zap.String("name", d.Name))
		out, err = o.answerWithTool(ctx, query, d)
	case Final:
		decisionsTotal.WithLabelValues("final").Inc()
		o.logger.Debug("decision", zap.String("kind", "final"), zap.Int("answer_bytes", len(d.Answer)))
		out = &ProcessQueryOutput{Answer: d.Answer, Mode: ModeDirect}
	case Unparseable:
		decisionsTotal.WithLabelValues("unparseable").Inc()
		o.logger.Debug("decision", zap.String("kind", "unparseable"), zap.String("reason", d.Reason))
		out, err = o.answerWithFallback(ctx, query)
	}
	if err != nil {
		return nil, err
	}

	answersTotal.WithLabelValues(string(out.Mode)).Inc()
	o.logger.Debug("final response", zap.String("mode", string(out.Mode)), zap.Int("answer_bytes", len(out.Answer)))
	return out, nil
}

func (o *orchestrator) answerWithTool(ctx context.Context, query string, action Action) (*ProcessQueryOutput, error) {
	name := pokeapi.NormalizeName(action.Name)
	if name == "" {
		name = action.Name
	}

	output := o.toolbox.Run(ctx, action.Tool, name)

	outcome := "ok"
	if strings.HasPrefix(output, "Error:") {
		outcome = "error"
	}
	toolLabel := string(action.Tool)
	if !action.Tool.Valid() {
		toolLabel = "unknown"
	}
	toolDispatchTotal.WithLabelValues(toolLabel, outcome).Inc()
	o.logger.Debug("tool output",
		zap.String("tool", string(action.Tool)),
		zap.String("name", name),
		zap.String("outcome", outcome),
		zap.Int("output_bytes", len(output)),
	)

	answer, err := o.generate(ctx, contextPrompt(output, query), nil)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to answer from %s", action.Tool)
	}

	return &ProcessQueryOutput{Answer: answer, Mode: ModeTool, Tool: action.Tool}, nil
}

func (o *orchestrator) answerWithFallback(ctx context.Context, query string) (*ProcessQueryOutput, error) {
	name, ok := o.extractor.Extract(ctx, query)
	if !ok {
		answer, err := o.generate(ctx, contextPrompt(generalContext, query), nil)
		if err != nil {
			return nil, errors.Wrap(err, "failed to answer from general knowledge")
		}
		return &ProcessQueryOutput{Answer: answer, Mode: ModeGeneral}, nil
	}

	record, err := o.describe(ctx, name)
	if err != nil {
		return nil, err
	}

	answer, err := o.generate(ctx, contextPrompt(record, query), nil)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to answer about %s", name)
	}
	return &ProcessQueryOutput{Answer: answer, Mode: ModeFallback}, nil
}

func (o *orchestrator) ProcessImageQuery(ctx context.Context, input *ProcessImageQueryInput) (*ProcessImageQueryOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	data, mediaType := input.Data, input.MediaType
	if input.Path != "" {
		var err error
		data, err = os.ReadFile(input.Path)
		switch {
		case os.IsNotExist(err):
			return nil, errors.NotFoundf("image file %s does not exist", input.Path)
		case err != nil:
			return nil, errors.WrapWithCodef(err, errors.CodeInvalidArgument, "failed to read image file %s", input.Path)
		}
		if mediaType == "" {
			mediaType = llm.MediaTypeForPath(input.Path)
		}
	}
	if len(data) == 0 {
		return nil, errors.InvalidArgument("image data is required")
	}
	if mediaType == "" {
		mediaType = llm.MediaTypeOctetStream
	}

	raw, err := o.generate(ctx, imageValidationPrompt, &llm.Media{Data: data, MIMEType: mediaType})
	if err != nil {
		return nil, errors.Wrap(err, "failed to identify image")
	}

	id, ok := ParseIdentification(raw)
	if !ok {
		o.logger.Debug("identification unparseable", zap.Int("response_bytes", len(raw)))
		return &ProcessImageQueryOutput{Answer: raw}, nil
	}

	if id.Kind == NotPokemon {
		return &ProcessImageQueryOutput{
			Answer:         "Not a Pokémon: " + id.Reason,
			Identification: id,
		}, nil
	}

	record, err := o.describe(ctx, pokeapi.NormalizeName(id.Name))
	if err != nil {
		o.logger.Debug("identified pokemon lookup failed", zap.String("name", id.Name), zap.Error(err))
		return &ProcessImageQueryOutput{
			Answer:         fmt.Sprintf("Identified: %s\n\nCould not fetch details: %s", id.Name, errors.GetMessage(err)),
			Identification: id,
		}, nil
	}

	return &ProcessImageQueryOutput{
		Answer:         fmt.Sprintf("Identified: %s\n\n%s", id.Name, record),
		Identification: id,
	}, nil
}

// describe fetches the creature, adds the species when it resolves, and formats both
func (o *orchestrator) describe(ctx context.Context, name string) (string, error) {
	if name == "" {
		return "", errors.InvalidArgument("pokemon name is empty")
	}

	p, err := o.lookup.GetPokemon(ctx, name)
	if err != nil {
		return "", errors.Wrapf(err, "failed to fetch pokemon %s", name)
	}

	var species *pokemon.Species
	if s, err := o.lookup.GetSpecies(ctx, name); err != nil {
		o.logger.Debug("species lookup failed", zap.String("name", name), zap.Error(err))
	} else {
		species = s
	}

	return formatter.PokemonWithSpecies(p, species), nil
}

func (o *orchestrator) generate(ctx context.Context, prompt string, media *llm.Media) (string, error) {
	out, err := o.generator.Generate(ctx, &llm.GenerateInput{Prompt: prompt, Media: media})
	if err != nil {
		return "", err
	}
	return out.Text, nil
}
