package v1_test

import (
	"context"
	"net"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
	"google.golang.org/protobuf/types/known/wrapperspb"

	"github.com/KirkDiggler/pokidex/internal/errors"
	v1 "github.com/KirkDiggler/pokidex/internal/handlers/assistant/v1"
	"github.com/KirkDiggler/pokidex/internal/orchestrators/assistant"
	assistantmock "github.com/KirkDiggler/pokidex/internal/orchestrators/assistant/mock"
)

type HandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *assistantmock.MockService
	server      *grpc.Server
	conn        *grpc.ClientConn
	client      v1.AssistantClient
	ctx         context.Context
}

func TestHandlerSuite(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}

func (s *HandlerTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockService = assistantmock.NewMockService(s.ctrl)
	s.ctx = context.Background()

	handler, err := v1.NewHandler(&v1.HandlerConfig{AssistantService: s.mockService})
	s.Require().NoError(err)

	lis := bufconn.Listen(1 << 20)
	s.server = grpc.NewServer()
	v1.RegisterAssistantServer(s.server, handler)
	go func() {
		_ = s.server.Serve(lis)
	}()

	s.conn, err = grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	s.Require().NoError(err)
	s.client = v1.NewAssistantClient(s.conn)
}

func (s *HandlerTestSuite) TearDownTest() {
	_ = s.conn.Close()
	s.server.Stop()
	s.ctrl.Finish()
}

func (s *HandlerTestSuite) TestNewHandlerRequiresService() {
	_, err := v1.NewHandler(&v1.HandlerConfig{})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))

	_, err = v1.NewHandler(nil)
	s.Require().Error(err)
}

func (s *HandlerTestSuite) TestAskReturnsAnswerAndMode() {
	s.mockService.EXPECT().
		ProcessQuery(gomock.Any(), &assistant.ProcessQueryInput{Query: "What type is Charizard?"}).
		Return(&assistant.ProcessQueryOutput{
			Answer: "Charizard is Fire and Flying.",
			Mode:   assistant.ModeTool,
			Tool:   "get_pokemon",
		}, nil)

	var header metadata.MD
	resp, err := s.client.Ask(s.ctx, wrapperspb.String("What type is Charizard?"), grpc.Header(&header))
	s.Require().NoError(err)
	s.Equal("Charizard is Fire and Flying.", resp.GetValue())
	s.Equal([]string{string(assistant.ModeTool)}, header.Get(v1.ModeHeader))
}

func (s *HandlerTestSuite) TestAskBlankQuestion() {
	_, err := s.client.Ask(s.ctx, wrapperspb.String("   "))
	s.Require().Error(err)
	s.Equal(codes.InvalidArgument, status.Code(err))
}

func (s *HandlerTestSuite) TestAskMapsServiceErrors() {
	s.mockService.EXPECT().
		ProcessQuery(gomock.Any(), gomock.Any()).
		Return(nil, errors.NotFound("pokemon not found").WithMeta("identifier", "missingno"))

	_, err := s.client.Ask(s.ctx, wrapperspb.String("Tell me about Missingno"))
	s.Require().Error(err)
	s.Equal(codes.NotFound, status.Code(err))

	converted := errors.FromGRPCError(err)
	s.True(errors.IsNotFound(converted))
	s.Equal("missingno", errors.GetMeta(converted)["identifier"])
}

func (s *HandlerTestSuite) TestIdentifySniffsMediaType() {
	png := []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")

	s.mockService.EXPECT().
		ProcessImageQuery(gomock.Any(), gomock.Cond(func(in *assistant.ProcessImageQueryInput) bool {
			return in.MediaType == "image/png" && len(in.Data) == len(png) && in.Path == ""
		})).
		Return(&assistant.ProcessImageQueryOutput{
			Answer: "Identified: pikachu",
			Identification: &assistant.Identification{
				Kind: assistant.IdentifiedPokemon,
				Name: "pikachu",
			},
		}, nil)

	var header metadata.MD
	resp, err := s.client.Identify(s.ctx, wrapperspb.Bytes(png), grpc.Header(&header))
	s.Require().NoError(err)
	s.Equal("Identified: pikachu", resp.GetValue())
	s.Equal([]string{string(assistant.IdentifiedPokemon)}, header.Get(v1.ModeHeader))
}

func (s *HandlerTestSuite) TestIdentifyEmptyImage() {
	_, err := s.client.Identify(s.ctx, wrapperspb.Bytes(nil))
	s.Require().Error(err)
	s.Equal(codes.InvalidArgument, status.Code(err))
}
