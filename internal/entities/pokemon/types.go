// Package pokemon holds the records returned by the lookup service
package pokemon

// LanguageEnglish is the language key of English flavor text
const LanguageEnglish = "en"

// Pokemon is the creature record for one identifier
type Pokemon struct {
	ID        int
	Name      string
	Types     []string
	Stats     []Stat
	Abilities []Ability
	Moves     []string

	// Height in decimetres
	Height int
	// Weight in hectograms
	Weight int

	// BaseExperience is nil when the service does not report it
	BaseExperience *int
}

// Stat is a named base stat value
type Stat struct {
	Name     string
	BaseStat int
}

// Ability is an ability a pokemon can have
type Ability struct {
	Name     string
	IsHidden bool
}

// Species is the species record for one identifier
type Species struct {
	Name          string
	CaptureRate   int
	BaseHappiness *int
	IsLegendary   bool
	IsMythical    bool
	FlavorTexts   []FlavorText
}

// FlavorText is a localized description
type FlavorText struct {
	Text     string
	Language string
}

// FlavorTextIn returns the first flavor text in the given language
func (s *Species) FlavorTextIn(language string) (string, bool) {
	for _, ft := range s.FlavorTexts {
		if ft.Language == language {
			return ft.Text, true
		}
	}
	return "", false
}
