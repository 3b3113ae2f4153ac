package pokeapi

import (
	"github.com/KirkDiggler/pokidex/internal/entities/pokemon"
)

// namedResource is PokéAPI's {name, url} reference
type namedResource struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

type pokemonResponse struct {
	ID             int    `json:"id"`
	Name           string `json:"name"`
	BaseExperience *int   `json:"base_experience"`
	Height         int    `json:"height"`
	Weight         int    `json:"weight"`
	Types          []struct {
		Slot int           `json:"slot"`
		Type namedResource `json:"type"`
	} `json:"types"`
	Stats []struct {
		BaseStat int           `json:"base_stat"`
		Effort   int           `json:"effort"`
		Stat     namedResource `json:"stat"`
	} `json:"stats"`
	Abilities []struct {
		Ability  namedResource `json:"ability"`
		IsHidden bool          `json:"is_hidden"`
		Slot     int           `json:"slot"`
	} `json:"abilities"`
	Moves []struct {
		Move namedResource `json:"move"`
	} `json:"moves"`
}

type speciesResponse struct {
	Name              string `json:"name"`
	CaptureRate       int    `json:"capture_rate"`
	BaseHappiness     *int   `json:"base_happiness"`
	IsLegendary       bool   `json:"is_legendary"`
	IsMythical        bool   `json:"is_mythical"`
	FlavorTextEntries []struct {
		FlavorText string        `json:"flavor_text"`
		Language   namedResource `json:"language"`
	} `json:"flavor_text_entries"`
}

func (r *pokemonResponse) toEntity() *pokemon.Pokemon {
	p := &pokemon.Pokemon{
		ID:             r.ID,
		Name:           r.Name,
		Height:         r.Height,
		Weight:         r.Weight,
		BaseExperience: r.BaseExperience,
		Types:          make([]string, 0, len(r.Types)),
		Stats:          make([]pokemon.Stat, 0, len(r.Stats)),
		Abilities:      make([]pokemon.Ability, 0, len(r.Abilities)),
		Moves:          make([]string, 0, len(r.Moves)),
	}

	for _, t := range r.Types {
		p.Types = append(p.Types, t.Type.Name)
	}
	for _, s := range r.Stats {
		p.Stats = append(p.Stats, pokemon.Stat{Name: s.Stat.Name, BaseStat: s.BaseStat})
	}
	for _, a := range r.Abilities {
		p.Abilities = append(p.Abilities, pokemon.Ability{Name: a.Ability.Name, IsHidden: a.IsHidden})
	}
	for _, m := range r.Moves {
		p.Moves = append(p.Moves, m.Move.Name)
	}

	return p
}

func (r *speciesResponse) toEntity() *pokemon.Species {
	s := &pokemon.Species{
		Name:          r.Name,
		CaptureRate:   r.CaptureRate,
		BaseHappiness: r.BaseHappiness,
		IsLegendary:   r.IsLegendary,
		IsMythical:    r.IsMythical,
		FlavorTexts:   make([]pokemon.FlavorText, 0, len(r.FlavorTextEntries)),
	}

	for _, ft := range r.FlavorTextEntries {
		s.FlavorTexts = append(s.FlavorTexts, pokemon.FlavorText{
			Text:     ft.FlavorText,
			Language: ft.Language.Name,
		})
	}

	return s
}
