package assistant

import (
	"encoding/json"
	"strings"

	"github.com/KirkDiggler/pokidex/internal/tools"
)

// Decision is the parsed routing reply: Action, Final or Unparseable
type Decision interface {
	isDecision()
}

// Action asks for one tool to be run for one name
type Action struct {
	Tool tools.Tool
	Name string
}

// Final is an answer that needs no lookup
type Final struct {
	Answer string
}

// Unparseable is any reply that is not a well formed Action or Final
type Unparseable struct {
	Raw    string
	Reason string
}

func (Action) isDecision()      {}
func (Final) isDecision()       {}
func (Unparseable) isDecision() {}

type decisionPayload struct {
	Type   string `json:"type"`
	Tool   string `json:"tool"`
	Name   string `json:"name"`
	Answer string `json:"answer"`
}

// ParseDecision reads the routing reply. Code fences and prose around the
// JSON object are ignored. The tool name is not checked here; unknown tools
// are reported by the toolbox.
func ParseDecision(raw string) Decision {
	object, ok := jsonObject(raw)
	if !ok {
		return Unparseable{Raw: raw, Reason: "no JSON object"}
	}

	var payload decisionPayload
	if err := json.Unmarshal([]byte(object), &payload); err != nil {
		return Unparseable{Raw: raw, Reason: err.Error()}
	}

	switch strings.ToLower(strings.TrimSpace(payload.Type)) {
	case "action":
		tool := strings.TrimSpace(payload.Tool)
		name := strings.TrimSpace(payload.Name)
		if tool == "" || name == "" {
			return Unparseable{Raw: raw, Reason: "action requires tool and name"}
		}
		return Action{Tool: tools.Tool(tool), Name: name}
	case "final":
		if strings.TrimSpace(payload.Answer) == "" {
			return Unparseable{Raw: raw, Reason: "final requires answer"}
		}
		return Final{Answer: payload.Answer}
	default:
		return Unparseable{Raw: raw, Reason: "unknown type " + payload.Type}
	}
}

// IdentificationKind tells a recognized pokemon from a rejection
type IdentificationKind string

// Identification kinds, matching the "type" field of the reply
const (
	IdentifiedPokemon IdentificationKind = "pokemon"
	NotPokemon        IdentificationKind = "not_pokemon"
)

// Identification is the parsed image validation reply
type Identification struct {
	Kind IdentificationKind
	// Name is set for IdentifiedPokemon
	Name string
	// Reason is set for NotPokemon
	Reason string
}

type identificationPayload struct {
	Type   string `json:"type"`
	Name   string `json:"name"`
	Reason string `json:"reason"`
}

// ParseIdentification reads the image validation reply
func ParseIdentification(raw string) (*Identification, bool) {
	object, ok := jsonObject(raw)
	if !ok {
		return nil, false
	}

	var payload identificationPayload
	if err := json.Unmarshal([]byte(object), &payload); err != nil {
		return nil, false
	}

	switch IdentificationKind(strings.ToLower(strings.TrimSpace(payload.Type))) {
	case IdentifiedPokemon:
		name := strings.TrimSpace(payload.Name)
		if name == "" {
			return nil, false
		}
		return &Identification{Kind: IdentifiedPokemon, Name: name}, true
	case NotPokemon:
		return &Identification{Kind: NotPokemon, Reason: strings.TrimSpace(payload.Reason)}, true
	default:
		return nil, false
	}
}

// jsonObject returns the text from the first '{' to the last '}'
func jsonObject(raw string) (string, bool) {
	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if start < 0 || end < start {
		return "", false
	}
	return raw[start : end+1], true
}
