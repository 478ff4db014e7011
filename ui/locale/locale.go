// Package locale holds the translated UI strings and formats numbers for the
// selected language.
package locale

import (
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// Key identifies a UI string. Keys are format strings for message.Printer.
type Key string

const (
	Title       Key = "title"
	Score       Key = "hud.score"
	Size        Key = "hud.size"
	Difficulty  Key = "hud.difficulty"
	Controls    Key = "hud.controls"
	Start       Key = "menu.start"
	Tagline     Key = "menu.tagline"
	Level       Key = "menu.level"
	Paused      Key = "pause.title"
	Resume      Key = "pause.resume"
	Menu        Key = "pause.menu"
	Victory     Key = "victory.title"
	VictoryBody Key = "victory.body"
	Continue    Key = "victory.continue"
	End         Key = "victory.end"
	GameOver    Key = "gameover.title"
	FinalScore  Key = "gameover.score"
	BackToMenu  Key = "gameover.menu"
)

// Supported lists the available languages; the first is the fallback.
var Supported = []language.Tag{language.English, language.German, language.Spanish}

var translations = map[language.Tag]map[Key]string{
	language.English: {
		Title:       "Big Fish",
		Score:       "Score: %d",
		Size:        "Size: %.0f / %.0f",
		Difficulty:  "Difficulty: %d",
		Controls:    "Arrows/WASD: swim | P/Space: pause",
		Start:       "Start",
		Tagline:     "Eat smaller fish. Avoid bigger ones.",
		Level:       "Difficulty %d",
		Paused:      "Paused",
		Resume:      "Resume",
		Menu:        "Quit to menu",
		Victory:     "You are the biggest fish!",
		VictoryBody: "Score: %d",
		Continue:    "Keep eating",
		End:         "Finish",
		GameOver:    "Eaten!",
		FinalScore:  "Final score: %d",
		BackToMenu:  "Menu",
	},
	language.German: {
		Title:       "Großer Fisch",
		Score:       "Punkte: %d",
		Size:        "Größe: %.0f / %.0f",
		Difficulty:  "Schwierigkeit: %d",
		Controls:    "Pfeile/WASD: schwimmen | P/Leertaste: Pause",
		Start:       "Start",
		Tagline:     "Friss kleinere Fische. Meide größere.",
		Level:       "Schwierigkeit %d",
		Paused:      "Pause",
		Resume:      "Weiter",
		Menu:        "Zum Menü",
		Victory:     "Du bist der größte Fisch!",
		VictoryBody: "Punkte: %d",
		Continue:    "Weiterfressen",
		End:         "Beenden",
		GameOver:    "Gefressen!",
		FinalScore:  "Endstand: %d",
		BackToMenu:  "Menü",
	},
	language.Spanish: {
		Title:       "Pez Grande",
		Score:       "Puntos: %d",
		Size:        "Tamaño: %.0f / %.0f",
		Difficulty:  "Dificultad: %d",
		Controls:    "Flechas/WASD: nadar | P/Espacio: pausa",
		Start:       "Empezar",
		Tagline:     "Come peces pequeños. Evita los grandes.",
		Level:       "Dificultad %d",
		Paused:      "Pausa",
		Resume:      "Continuar",
		Menu:        "Volver al menú",
		Victory:     "¡Eres el pez más grande!",
		VictoryBody: "Puntos: %d",
		Continue:    "Seguir comiendo",
		End:         "Terminar",
		GameOver:    "¡Te comieron!",
		FinalScore:  "Puntuación final: %d",
		BackToMenu:  "Menú",
	},
}

var (
	cat     = mustBuildCatalog()
	matcher = language.NewMatcher(Supported)
)

func mustBuildCatalog() *catalog.Builder {
	b := catalog.NewBuilder(catalog.Fallback(Supported[0]))
	for tag, msgs := range translations {
		for key, msg := range msgs {
			if err := b.SetString(tag, string(key), msg); err != nil {
				panic(fmt.Sprintf("locale: %s %s: %v", tag, key, err))
			}
		}
	}
	return b
}

// Localizer formats UI strings for one language.
type Localizer struct {
	tag     language.Tag
	printer *message.Printer
}

// New returns a localizer for the best supported match of lang (a BCP 47
// tag such as "de" or "es-MX"). Unknown or malformed tags fall back to English.
func New(lang string) *Localizer {
	tag := Supported[0]
	if t, err := language.Parse(lang); err == nil {
		_, idx, conf := matcher.Match(t)
		if conf != language.No {
			tag = Supported[idx]
		}
	}
	return &Localizer{
		tag:     tag,
		printer: message.NewPrinter(tag, message.Catalog(cat)),
	}
}

// Tag returns the selected language.
func (l *Localizer) Tag() language.Tag {
	return l.tag
}

// T formats the string for key with args, localizing numbers.
func (l *Localizer) T(key Key, args ...any) string {
	return l.printer.Sprintf(string(key), args...)
}
