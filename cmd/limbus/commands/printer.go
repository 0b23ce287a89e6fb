package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/muesli/termenv"
	"go.trai.ch/limbus/internal/core/domain"
	"go.trai.ch/limbus/internal/ui/output"
	"go.trai.ch/limbus/internal/ui/style"
)

// printer writes one glyph-prefixed line per message.
type printer struct {
	out *termenv.Output
}

func newPrinter(w io.Writer) *printer {
	return &printer{out: output.New(w)}
}

func (p *printer) line(tone style.Tone, format string, args ...any) {
	_, _ = fmt.Fprintf(p.out, "%s %s\n", tone.Mark(p.out), fmt.Sprintf(format, args...))
}

func (p *printer) faint(s string) string {
	return style.Paint(p.out, style.Muted, s)
}

// event renders batch milestones. Other notifications are not shown.
func (p *printer) event(_ context.Context, e domain.Event) error {
	switch e.Name {
	case domain.EventPlayStarted:
		p.line(style.Active, "Checking for updates")
	case domain.EventPlayGameRunning:
		p.line(style.Failed, "The game is running, close it first")
	case domain.EventPlayUnknownLocalization:
		p.line(style.Notice, "%s is not in the catalog, leaving it as is", e.LocalizationID)
	case domain.EventPlayUpToDate:
		p.line(style.Ok, "%s is up to date %s", e.LocalizationID, p.faint(e.Version))
	case domain.EventPlayUpdating:
		p.line(style.Active, "Updating %s to %s", e.LocalizationID, e.Version)
	case domain.EventPlayUpdateFinished:
		p.line(style.Ok, "Updated %s to %s", e.LocalizationID, e.Version)
	case domain.EventPlayStartingGame:
		p.line(style.Active, "Starting the game")
	case domain.EventPlayFinished:
		p.line(style.Ok, "Done")
	case domain.EventCatalogRefreshed, domain.EventStateChanged:
	}
	return nil
}
