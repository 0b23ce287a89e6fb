// Package style holds the glyphs and colors of the launcher's terminal output.
package style

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Tone pairs a status glyph with the color it is drawn in.
type Tone struct {
	Glyph string
	Color lipgloss.Color
}

// Tones by meaning, not by hue.
var (
	Ok     = Tone{Glyph: "✔", Color: lipgloss.Color("#3FB950")}
	Failed = Tone{Glyph: "✘", Color: lipgloss.Color("#F85149")}
	Notice = Tone{Glyph: "▲", Color: lipgloss.Color("#D29922")}
	Active = Tone{Glyph: "▸", Color: lipgloss.Color("#C9A227")}
	Idle   = Tone{Glyph: "◦", Color: lipgloss.Color("#8B949E")}
)

// Muted colors secondary text such as versions and progress prefixes.
var Muted = lipgloss.Color("#8B949E")

// Separator sits between a progress prefix and its payload.
const Separator = "›"

// Paint colors s with c for out's profile.
func Paint(out *termenv.Output, c lipgloss.Color, s string) string {
	return out.String(s).Foreground(out.Color(string(c))).String()
}

// Mark returns the glyph of t colored for out's profile.
func (t Tone) Mark(out *termenv.Output) string {
	return Paint(out, t.Color, t.Glyph)
}
