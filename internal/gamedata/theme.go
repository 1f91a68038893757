package gamedata

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gdamore/tcell/v2"
)

// themeFilename is the embedded terminal theme.
const themeFilename = "theme.json"

// Theme holds the colors used by the full-screen terminal frontend.
// Colors are hex strings such as "#FFD700".
type Theme struct {
	Title      string `json:"title"`      // Banner and headings
	Revealed   string `json:"revealed"`   // Phrase line
	Gallows    string `json:"gallows"`    // Gallows drawing
	Message    string `json:"message"`    // Feedback and summary lines
	Prompt     string `json:"prompt"`     // Input prompt and echo
	Background string `json:"background"` // Screen background
}

// LoadTheme loads the embedded theme.json file.
func LoadTheme() (Theme, error) {
	theme, kind, err := load[Theme](themeFilename)
	if err != nil {
		return Theme{}, fmt.Errorf("theme %s: %s error: %w", themeFilename, kind, err)
	}
	return theme, nil
}

// DefaultTheme returns the embedded theme, or a plain white-on-black theme
// if the embedded file cannot be read.
func DefaultTheme() Theme {
	theme, err := LoadTheme()
	if err != nil {
		return Theme{
			Title:      "#FFFFFF",
			Revealed:   "#FFFFFF",
			Gallows:    "#FFFFFF",
			Message:    "#FFFFFF",
			Prompt:     "#FFFFFF",
			Background: "#000000",
		}
	}
	return theme
}

// Style returns a style with the given foreground over the theme background.
func (t Theme) Style(fg string) tcell.Style {
	return tcell.StyleDefault.
		Background(colorOr(t.Background, tcell.ColorBlack)).
		Foreground(colorOr(fg, tcell.ColorWhite))
}

func colorOr(hex string, fallback tcell.Color) tcell.Color {
	color, err := ParseHexColor(hex)
	if err != nil {
		return fallback
	}
	return color
}

// ParseHexColor converts "#RRGGBB" or "RRGGBB" to a tcell.Color.
func ParseHexColor(hex string) (tcell.Color, error) {
	hex = strings.TrimPrefix(hex, "#")
	if len(hex) != 6 {
		return tcell.ColorDefault, fmt.Errorf("invalid hex color length: %q", hex)
	}

	rgb, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return tcell.ColorDefault, fmt.Errorf("invalid hex color %q: %w", hex, err)
	}

	return tcell.NewRGBColor(int32(rgb>>16&0xFF), int32(rgb>>8&0xFF), int32(rgb&0xFF)), nil
}
