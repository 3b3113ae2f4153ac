// Package v1 exposes the assistant orchestrator over gRPC
package v1

import (
	"context"
	"net/http"
	"strings"

	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"
	"google.golang.org/protobuf/types/known/wrapperspb"

	"github.com/KirkDiggler/pokidex/internal/errors"
	"github.com/KirkDiggler/pokidex/internal/orchestrators/assistant"
)

// ModeHeader carries the answer mode in response header metadata
const ModeHeader = "x-pokidex-mode"

// HandlerConfig holds dependencies for the assistant handler
type HandlerConfig struct {
	AssistantService assistant.Service
	Logger           *zap.Logger
}

// Validate ensures all required dependencies are present
func (c *HandlerConfig) Validate() error {
	if c.AssistantService == nil {
		return errors.InvalidArgument("assistant service is required")
	}
	return nil
}

// Handler implements AssistantServer
type Handler struct {
	assistantService assistant.Service
	logger           *zap.Logger
}

var _ AssistantServer = (*Handler)(nil)

// NewHandler creates a new assistant handler with the given configuration
func NewHandler(cfg *HandlerConfig) (*Handler, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Handler{
		assistantService: cfg.AssistantService,
		logger:           logger,
	}, nil
}

// Ask answers one question
func (h *Handler) Ask(ctx context.Context, req *wrapperspb.StringValue) (*wrapperspb.StringValue, error) {
	if strings.TrimSpace(req.GetValue()) == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("question is required"))
	}

	out, err := h.assistantService.ProcessQuery(ctx, &assistant.ProcessQueryInput{Query: req.GetValue()})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	h.setMode(ctx, string(out.Mode))
	return wrapperspb.String(out.Answer), nil
}

// Identify names the pokemon in an image; the media type is sniffed from the bytes
func (h *Handler) Identify(ctx context.Context, req *wrapperspb.BytesValue) (*wrapperspb.StringValue, error) {
	if len(req.GetValue()) == 0 {
		return nil, errors.ToGRPCError(errors.InvalidArgument("image is required"))
	}

	mediaType := http.DetectContentType(req.GetValue())
	if i := strings.IndexByte(mediaType, ';'); i >= 0 {
		mediaType = mediaType[:i]
	}

	out, err := h.assistantService.ProcessImageQuery(ctx, &assistant.ProcessImageQueryInput{
		Data:      req.GetValue(),
		MediaType: mediaType,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	if out.Identification != nil {
		h.setMode(ctx, string(out.Identification.Kind))
	}
	return wrapperspb.String(out.Answer), nil
}

// setMode is a no-op outside a gRPC call
func (h *Handler) setMode(ctx context.Context, mode string) {
	if err := grpc.SetHeader(ctx, metadata.Pairs(ModeHeader, mode)); err != nil {
		h.logger.Debug("mode header not set", zap.Error(err))
	}
}
