// Options, functional option constructors and sentinel errors for the
// Dijkstra implementation.

package dijkstra

import (
	"errors"

	"github.com/katalvlaran/lvlpath/core"
)

// Sentinel errors returned by Dijkstra.
var (
	// ErrNoSource indicates that no Source option was provided.
	ErrNoSource = errors.New("dijkstra: source vertex not set")

	// ErrVertexRange indicates a Source or Target handle outside the view's
	// vertex range.
	ErrVertexRange = errors.New("dijkstra: vertex handle out of range")

	// ErrNegativeWeight indicates a negative arc weight was encountered
	// during relaxation. core.Graph rejects negative weights at construction,
	// so hitting this means the input was built by other means.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")
)

// Options configures a single Dijkstra run.
//
// Source     – dense handle of the start vertex; required.
// Target     – dense handle to stop at once finalized; core.NoVertex disables
// the early exit and the run computes distances to every reachable vertex.
// ReturnPath – allocate and fill the predecessor slice.
type Options struct {
	Source     int
	Target     int
	ReturnPath bool
}

// Option is a functional option for configuring Dijkstra.
type Option func(*Options)

// Source sets the start vertex handle. Required.
func Source(v int) Option {
	return func(o *Options) { o.Source = v }
}

// Target enables single-pair mode: the run stops as soon as v's distance is
// finalized. Distances of vertices not yet finalized at that point keep
// whatever bound was known when the run stopped.
func Target(v int) Option {
	return func(o *Options) { o.Target = v }
}

// WithReturnPath requests the predecessor slice in the result. Entries are
// core.NoVertex for the source and for unreached vertices.
func WithReturnPath() Option {
	return func(o *Options) { o.ReturnPath = true }
}

// DefaultOptions returns the baseline configuration: no source, no target,
// no predecessor slice.
func DefaultOptions() Options {
	return Options{
		Source:     core.NoVertex,
		Target:     core.NoVertex,
		ReturnPath: false,
	}
}
