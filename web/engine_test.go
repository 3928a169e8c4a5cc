package web

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseEngine(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected Engine
	}{
		{"google", "google", Google},
		{"bing", "bing", Bing},
		{"yandex", "yandex", Yandex},
		{"duckduckgo", "duckduckgo", DuckDuckGo},
		{"uppercase", "BING", Bing},
		{"mixed case", "GoOgLe", Google},
		{"surrounding whitespace", "  yandex  ", Yandex},
		{"unknown falls back", "altavista", DefaultEngine},
		{"empty falls back", "", DefaultEngine},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.expected, ParseEngine(tc.input))
		})
	}
}

func TestEngineNames(t *testing.T) {
	names := EngineNames()
	require.Equal(t, []string{"google", "bing", "yandex", "duckduckgo"}, names)
}
