package locale

import (
	"testing"

	"golang.org/x/text/language"
)

func TestNewMatchesLanguage(t *testing.T) {
	tests := []struct {
		lang string
		want language.Tag
	}{
		{"en", language.English},
		{"de", language.German},
		{"de-AT", language.German},
		{"es-MX", language.Spanish},
		{"", language.English},
		{"not a tag!", language.English},
	}

	for _, tt := range tests {
		t.Run(tt.lang, func(t *testing.T) {
			if got := New(tt.lang).Tag(); got != tt.want {
				t.Errorf("New(%q).Tag() = %v, want %v", tt.lang, got, tt.want)
			}
		})
	}
}

func TestTranslate(t *testing.T) {
	tests := []struct {
		lang string
		key  Key
		args []any
		want string
	}{
		{"en", Score, []any{12345}, "Score: 12,345"},
		{"de", Score, []any{12345}, "Punkte: 12.345"},
		{"en", Size, []any{42.0, 300.0}, "Size: 42 / 300"},
		{"es", Start, nil, "Empezar"},
		{"de", GameOver, nil, "Gefressen!"},
	}

	for _, tt := range tests {
		t.Run(tt.lang+"/"+string(tt.key), func(t *testing.T) {
			if got := New(tt.lang).T(tt.key, tt.args...); got != tt.want {
				t.Errorf("T(%s) = %q, want %q", tt.key, got, tt.want)
			}
		})
	}
}

func TestEveryLanguageHasEveryKey(t *testing.T) {
	english := translations[language.English]
	for _, tag := range Supported {
		msgs := translations[tag]
		for key := range english {
			if msgs[key] == "" {
				t.Errorf("%v missing %s", tag, key)
			}
		}
	}
}
