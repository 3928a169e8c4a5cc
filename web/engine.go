package web

import "strings"

// Engine identifies a SERP backend.
type Engine string

const (
	Google     Engine = "google"
	Bing       Engine = "bing"
	Yandex     Engine = "yandex"
	DuckDuckGo Engine = "duckduckgo"
)

// DefaultEngine is used when a requested engine is not recognized.
const DefaultEngine = Google

func (e Engine) String() string {
	return string(e)
}

// ParseEngine maps a free-form engine name to a supported Engine.
// Unknown names fall back to DefaultEngine instead of failing, so
// callers should echo the returned engine rather than the raw input.
func ParseEngine(name string) Engine {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "google":
		return Google
	case "bing":
		return Bing
	case "yandex":
		return Yandex
	case "duckduckgo":
		return DuckDuckGo
	default:
		return DefaultEngine
	}
}

// EngineNames lists the supported engine identifiers.
func EngineNames() []string {
	return []string{
		Google.String(),
		Bing.String(),
		Yandex.String(),
		DuckDuckGo.String(),
	}
}
