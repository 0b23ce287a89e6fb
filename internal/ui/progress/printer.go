// Package progress renders progrock status updates as plain terminal lines.
package progress

import (
	"bytes"
	"fmt"
	"io"
	"sync"

	"github.com/muesli/termenv"
	"github.com/vito/progrock"
	"go.trai.ch/limbus/internal/ui/output"
	"go.trai.ch/limbus/internal/ui/style"
)

const (
	statusRunning   = "running"
	statusCompleted = "completed"
	statusFailed    = "failed"
	statusCached    = "cached"
)

// VertexState is the last rendered state of a vertex.
type VertexState struct {
	ID     string
	Name   string
	Status string
}

// Printer implements progrock.Writer by printing one line per state change.
type Printer struct {
	mu       sync.Mutex
	out      *termenv.Output
	vertices []VertexState
	index    map[string]int
}

// NewPrinter creates a Printer writing to w.
func NewPrinter(w io.Writer) *Printer {
	return &Printer{
		out:   output.New(w),
		index: make(map[string]int),
	}
}

// WriteStatus implements progrock.Writer.
func (p *Printer) WriteStatus(update *progrock.StatusUpdate) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	for _, v := range update.Vertexes {
		p.updateOrAddVertex(v)
	}
	for _, l := range update.Logs {
		p.printLog(l)
	}
	return nil
}

// Close implements progrock.Writer.
func (p *Printer) Close() error {
	return nil
}

// Vertices returns a copy of the rendered vertex states.
func (p *Printer) Vertices() []VertexState {
	p.mu.Lock()
	defer p.mu.Unlock()

	out := make([]VertexState, len(p.vertices))
	copy(out, p.vertices)
	return out
}

func (p *Printer) updateOrAddVertex(v *progrock.Vertex) {
	i, ok := p.index[v.Id]
	if !ok {
		p.vertices = append(p.vertices, VertexState{ID: v.Id, Name: v.Name, Status: statusRunning})
		i = len(p.vertices) - 1
		p.index[v.Id] = i
		p.printLine(style.Active, v.Name)
	}

	state := &p.vertices[i]
	if state.Status != statusRunning || v.Completed == nil {
		return
	}

	switch {
	case v.Error != nil:
		state.Status = statusFailed
		p.printLine(style.Failed, fmt.Sprintf("%s: %s", v.Name, *v.Error))
	case v.Cached:
		state.Status = statusCached
		p.printLine(style.Idle, v.Name+" (cached)")
	default:
		state.Status = statusCompleted
		p.printLine(style.Ok, v.Name)
	}
}

func (p *Printer) printLog(l *progrock.VertexLog) {
	name := l.Vertex
	if i, ok := p.index[l.Vertex]; ok {
		name = p.vertices[i].Name
	}

	for _, line := range bytes.Split(bytes.TrimRight(l.Data, "\n"), []byte("\n")) {
		if len(line) == 0 {
			continue
		}
		prefix := style.Paint(p.out, style.Muted, "  "+name+" "+style.Separator)
		_, _ = fmt.Fprintf(p.out, "%s %s\n", prefix, line)
	}
}

func (p *Printer) printLine(tone style.Tone, text string) {
	_, _ = fmt.Fprintf(p.out, "%s %s\n", tone.Mark(p.out), text)
}
