package client

import (
	"bytes"
	"context"
	"net"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"google.golang.org/grpc"

	"github.com/KirkDiggler/pokidex/internal/errors"
	v1 "github.com/KirkDiggler/pokidex/internal/handlers/assistant/v1"
	"github.com/KirkDiggler/pokidex/internal/orchestrators/assistant"
	assistantmock "github.com/KirkDiggler/pokidex/internal/orchestrators/assistant/mock"
)

type ClientCmdTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *assistantmock.MockService
	server      *grpc.Server
	addr        string
	out         *bytes.Buffer
}

func TestClientCmdSuite(t *testing.T) {
	suite.Run(t, new(ClientCmdTestSuite))
}

func (s *ClientCmdTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockService = assistantmock.NewMockService(s.ctrl)

	handler, err := v1.NewHandler(&v1.HandlerConfig{AssistantService: s.mockService})
	s.Require().NoError(err)

	lis, err := net.Listen("tcp", "127.0.0.1:0")
	s.Require().NoError(err)
	s.addr = lis.Addr().String()

	s.server = grpc.NewServer()
	v1.RegisterAssistantServer(s.server, handler)
	go func() {
		_ = s.server.Serve(lis)
	}()

	s.out = &bytes.Buffer{}
	showMode = false
}

func (s *ClientCmdTestSuite) TearDownTest() {
	s.server.Stop()
	s.ctrl.Finish()
}

func (s *ClientCmdTestSuite) execute(args ...string) error {
	ClientCmd.SetOut(s.out)
	ClientCmd.SetArgs(append(args, "--server", s.addr))
	return ClientCmd.ExecuteContext(context.Background())
}

func (s *ClientCmdTestSuite) TestAskJoinsWords() {
	s.mockService.EXPECT().
		ProcessQuery(gomock.Any(), &assistant.ProcessQueryInput{Query: "What type is Charizard?"}).
		Return(&assistant.ProcessQueryOutput{Answer: "Fire and Flying.", Mode: assistant.ModeTool}, nil)

	s.Require().NoError(s.execute("ask", "--mode", "What", "type", "is", "Charizard?"))
	s.Equal("[tool]\nAssistant: Fire and Flying.\n", s.out.String())
}

func (s *ClientCmdTestSuite) TestAskReturnsTypedError() {
	s.mockService.EXPECT().
		ProcessQuery(gomock.Any(), gomock.Any()).
		Return(nil, errors.Unavailable("generator unreachable"))

	err := s.execute("ask", "hello")
	s.Require().Error(err)
	s.True(errors.IsUnavailable(err))
}

func (s *ClientCmdTestSuite) TestIdentifySendsFileBytes() {
	path := filepath.Join(s.T().TempDir(), "pikachu.png")
	s.Require().NoError(os.WriteFile(path, []byte("\x89PNG\r\n\x1a\nrest"), 0o600))

	s.mockService.EXPECT().
		ProcessImageQuery(gomock.Any(), gomock.Cond(func(in *assistant.ProcessImageQueryInput) bool {
			return string(in.Data) == "\x89PNG\r\n\x1a\nrest" && in.MediaType == "image/png"
		})).
		Return(&assistant.ProcessImageQueryOutput{Answer: "Identified: pikachu"}, nil)

	s.Require().NoError(s.execute("identify", path))
	s.Equal("Assistant: Identified: pikachu\n", s.out.String())
}

func (s *ClientCmdTestSuite) TestIdentifyMissingFile() {
	err := s.execute("identify", filepath.Join(s.T().TempDir(), "missing.png"))
	s.Require().Error(err)
	s.True(errors.IsNotFound(err))
}
