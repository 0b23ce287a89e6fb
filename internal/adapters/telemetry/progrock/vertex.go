package progrock

import (
	"io"
	"sync"

	"github.com/vito/progrock"
	"go.trai.ch/limbus/internal/core/ports"
)

var _ ports.Vertex = (*Vertex)(nil)

// Vertex is one pipeline step on the progrock tape. The first of Complete
// or Cached settles it; later calls are ignored, so a step that reports
// itself cached can still be completed by the code that started it.
type Vertex struct {
	rec    *progrock.VertexRecorder
	settle sync.Once
}

func newVertex(rec *progrock.VertexRecorder) *Vertex {
	return &Vertex{rec: rec}
}

// Stdout carries progress lines shown under the step.
func (v *Vertex) Stdout() io.Writer { return v.rec.Stdout() }

// Stderr carries diagnostics shown under the step.
func (v *Vertex) Stderr() io.Writer { return v.rec.Stderr() }

// Complete settles the step as done, or failed when err is non-nil.
func (v *Vertex) Complete(err error) {
	v.settle.Do(func() { v.rec.Done(err) })
}

// Cached settles the step as satisfied without work.
func (v *Vertex) Cached() {
	v.settle.Do(func() {
		v.rec.Cached()
		v.rec.Done(nil)
	})
}
