package pokeapi_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/pokidex/internal/clients/pokeapi"
	"github.com/KirkDiggler/pokidex/internal/errors"
)

const pikachuJSON = `{
	"id": 25,
	"name": "pikachu",
	"base_experience": 112,
	"height": 4,
	"weight": 60,
	"types": [{"slot": 1, "type": {"name": "electric", "url": ""}}],
	"stats": [
		{"base_stat": 35, "effort": 0, "stat": {"name": "hp"}},
		{"base_stat": 90, "effort": 2, "stat": {"name": "speed"}}
	],
	"abilities": [
		{"ability": {"name": "static"}, "is_hidden": false, "slot": 1},
		{"ability": {"name": "lightning-rod"}, "is_hidden": true, "slot": 3}
	],
	"moves": [{"move": {"name": "thunder-shock"}}, {"move": {"name": "quick-attack"}}]
}`

const pikachuSpeciesJSON = `{
	"name": "pikachu",
	"capture_rate": 190,
	"base_happiness": null,
	"is_legendary": false,
	"is_mythical": false,
	"flavor_text_entries": [
		{"flavor_text": "Quand il est\nen colère", "language": {"name": "fr"}},
		{"flavor_text": "When several of\nthese POKéMON gather", "language": {"name": "en"}}
	]
}`

type ClientTestSuite struct {
	suite.Suite
	server   *httptest.Server
	client   pokeapi.Client
	mu       sync.Mutex
	requests []string
	routes   map[string]func(w http.ResponseWriter)
}

func TestClientSuite(t *testing.T) {
	suite.Run(t, new(ClientTestSuite))
}

func (s *ClientTestSuite) SetupTest() {
	s.requests = nil
	s.routes = map[string]func(w http.ResponseWriter){}
	s.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		s.requests = append(s.requests, r.URL.Path)
		route, ok := s.routes[r.URL.Path]
		s.mu.Unlock()

		if !ok {
			http.NotFound(w, r)
			return
		}
		route(w)
	}))

	var err error
	s.client, err = pokeapi.New(&pokeapi.Config{BaseURL: s.server.URL + "/api/v2"})
	s.Require().NoError(err)
}

func (s *ClientTestSuite) TearDownTest() {
	s.server.Close()
}

func respondJSON(body string) func(w http.ResponseWriter) {
	return func(w http.ResponseWriter) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(body))
	}
}

func (s *ClientTestSuite) TestGetPokemon_ByName() {
	s.routes["/api/v2/pokemon/pikachu"] = respondJSON(pikachuJSON)

	p, err := s.client.GetPokemon(context.Background(), "pikachu")
	s.Require().NoError(err)

	s.Equal(25, p.ID)
	s.Equal("pikachu", p.Name)
	s.Equal([]string{"electric"}, p.Types)
	s.Len(p.Stats, 2)
	s.Equal("speed", p.Stats[1].Name)
	s.Equal(90, p.Stats[1].BaseStat)
	s.True(p.Abilities[1].IsHidden)
	s.Equal([]string{"thunder-shock", "quick-attack"}, p.Moves)
	s.Require().NotNil(p.BaseExperience)
	s.Equal(112, *p.BaseExperience)
	s.Equal([]string{"/api/v2/pokemon/pikachu"}, s.requests)
}

func (s *ClientTestSuite) TestGetPokemon_FallsBackToNumericID() {
	s.routes["/api/v2/pokemon/25"] = respondJSON(pikachuJSON)

	p, err := s.client.GetPokemon(context.Background(), "025")
	s.Require().NoError(err)
	s.Equal("pikachu", p.Name)
	s.Equal([]string{"/api/v2/pokemon/025", "/api/v2/pokemon/25"}, s.requests)
}

func (s *ClientTestSuite) TestGetPokemon_NotFound() {
	_, err := s.client.GetPokemon(context.Background(), "missingno")
	s.Require().Error(err)
	s.True(errors.IsNotFound(err))
	s.Equal("missingno", errors.GetMeta(err)["identifier"])
	s.Len(s.requests, 1, "non-numeric identifiers are not retried")
}

func (s *ClientTestSuite) TestGetPokemon_NumericNotFound() {
	_, err := s.client.GetPokemon(context.Background(), "99999")
	s.Require().Error(err)
	s.True(errors.IsNotFound(err))
	s.Len(s.requests, 2)
}

func (s *ClientTestSuite) TestGetPokemon_ServerError() {
	s.routes["/api/v2/pokemon/pikachu"] = func(w http.ResponseWriter) {
		http.Error(w, "upstream down", http.StatusBadGateway)
	}

	_, err := s.client.GetPokemon(context.Background(), "pikachu")
	s.Require().Error(err)
	s.True(errors.IsUnavailable(err))
	s.Contains(err.Error(), "502")
}

func (s *ClientTestSuite) TestGetPokemon_EmptyIdentifier() {
	_, err := s.client.GetPokemon(context.Background(), "  ")
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
	s.Empty(s.requests)
}

func (s *ClientTestSuite) TestGetPokemon_MissingBaseExperience() {
	s.routes["/api/v2/pokemon/eevee-starter"] = respondJSON(
		strings.Replace(pikachuJSON, `"base_experience": 112`, `"base_experience": null`, 1))

	p, err := s.client.GetPokemon(context.Background(), "eevee-starter")
	s.Require().NoError(err)
	s.Nil(p.BaseExperience)
}

func (s *ClientTestSuite) TestGetSpecies() {
	s.routes["/api/v2/pokemon-species/pikachu"] = respondJSON(pikachuSpeciesJSON)

	species, err := s.client.GetSpecies(context.Background(), "pikachu")
	s.Require().NoError(err)

	s.Equal(190, species.CaptureRate)
	s.Nil(species.BaseHappiness)
	s.False(species.IsLegendary)
	text, ok := species.FlavorTextIn("en")
	s.True(ok)
	s.Equal("When several of\nthese POKéMON gather", text)
}

func (s *ClientTestSuite) TestGetSpecies_Unreachable() {
	s.server.Close()

	_, err := s.client.GetSpecies(context.Background(), "pikachu")
	s.Require().Error(err)
	s.True(errors.IsUnavailable(err))
}
