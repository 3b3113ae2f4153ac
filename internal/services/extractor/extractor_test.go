package extractor_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap/zaptest"

	pokeapimock "github.com/KirkDiggler/pokidex/internal/clients/pokeapi/mock"
	"github.com/KirkDiggler/pokidex/internal/entities/pokemon"
	"github.com/KirkDiggler/pokidex/internal/errors"
	"github.com/KirkDiggler/pokidex/internal/services/extractor"
)

type ExtractorTestSuite struct {
	suite.Suite
	ctrl       *gomock.Controller
	mockClient *pokeapimock.MockClient
	extractor  extractor.Extractor
	ctx        context.Context
}

func TestExtractorSuite(t *testing.T) {
	suite.Run(t, new(ExtractorTestSuite))
}

func (s *ExtractorTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockClient = pokeapimock.NewMockClient(s.ctrl)
	s.ctx = context.Background()

	var err error
	s.extractor, err = extractor.New(&extractor.Config{
		Client: s.mockClient,
		Logger: zaptest.NewLogger(s.T()),
	})
	s.Require().NoError(err)
}

func (s *ExtractorTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *ExtractorTestSuite) TestNewRequiresClient() {
	_, err := extractor.New(&extractor.Config{})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
}

func (s *ExtractorTestSuite) TestFirstResolvingTokenWins() {
	gomock.InOrder(
		s.mockClient.EXPECT().GetPokemon(s.ctx, "tell").
			Return(nil, errors.NotFound("pokemon \"tell\" not found")),
		s.mockClient.EXPECT().GetPokemon(s.ctx, "pikachu").
			Return(&pokemon.Pokemon{ID: 25, Name: "pikachu"}, nil),
	)

	name, ok := s.extractor.Extract(s.ctx, "Tell me about Pikachu? And Raichu")
	s.True(ok)
	s.Equal("pikachu", name)
}

func (s *ExtractorTestSuite) TestNormalizesBeforeLookup() {
	s.mockClient.EXPECT().GetPokemon(s.ctx, "nidoran-f").
		Return(&pokemon.Pokemon{ID: 29, Name: "nidoran-f"}, nil)

	name, ok := s.extractor.Extract(s.ctx, "is Nidoran♀ cute")
	s.True(ok)
	s.Equal("nidoran-f", name)
}

func (s *ExtractorTestSuite) TestNoCandidateMakesNoLookups() {
	name, ok := s.extractor.Extract(s.ctx, "what is the fastest one? Mr ok Abcdefghijklmnopqrstu")
	s.False(ok)
	s.Empty(name)
}

func (s *ExtractorTestSuite) TestNothingResolves() {
	s.mockClient.EXPECT().GetPokemon(gomock.Any(), gomock.Any()).
		Return(nil, errors.Unavailable("down")).Times(3)

	_, ok := s.extractor.Extract(s.ctx, "Which Gym has Water types")
	s.False(ok)
}

func (s *ExtractorTestSuite) TestCanceledContextStops() {
	ctx, cancel := context.WithCancel(s.ctx)
	cancel()

	_, ok := s.extractor.Extract(ctx, "Pikachu")
	s.False(ok)
}

func (s *ExtractorTestSuite) TestCandidates() {
	s.Equal([]string{"Tell", "Pikachu?"}, extractor.Candidates("Tell me about Pikachu?"))
	s.Equal([]string{"Ééé"}, extractor.Candidates("Ab Ééé"))
	s.Empty(extractor.Candidates("all lowercase words here"))
	s.Empty(extractor.Candidates("Ab Abcdefghijklmnopqrst"))
	s.Equal([]string{"Abcdefghijklmnopqrs"}, extractor.Candidates("Abcdefghijklmnopqrs"))
}
