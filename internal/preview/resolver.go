// Package preview locates a viewable image for a row by probing an ordered
// list of file extensions against the row's image base.
package preview

import (
	"context"
)

// DefaultExtensions are probed in order when none are configured
var DefaultExtensions = []string{".jpg", ".jpeg", ".png"}

// Phase is the resolution progress of a preview
type Phase int

const (
	Pending Phase = iota
	Found
	Unavailable
)

// String implements Stringer interface
func (p Phase) String() string {
	switch p {
	case Pending:
		return "pending"
	case Found:
		return "found"
	case Unavailable:
		return "unavailable"
	}
	return "unknown"
}

// Resolver opens previews against a fixed extension list
type Resolver struct {
	extensions []string
}

// NewResolver creates a Resolver. With no extensions it uses DefaultExtensions.
func NewResolver(extensions ...string) *Resolver {
	if len(extensions) == 0 {
		extensions = DefaultExtensions
	}
	exts := make([]string, len(extensions))
	copy(exts, extensions)
	return &Resolver{extensions: exts}
}

// Extensions returns a copy of the probe order
func (r *Resolver) Extensions() []string {
	exts := make([]string, len(r.extensions))
	copy(exts, r.extensions)
	return exts
}

// Open starts resolution for base at the first extension
func (r *Resolver) Open(base string) State {
	return State{
		Base:       base,
		Phase:      Pending,
		extensions: r.extensions,
	}
}

// State is an immutable snapshot of one preview resolution
type State struct {
	Base  string
	Index int
	Phase Phase

	extensions []string
}

// Extension returns the extension currently being tried or shown
func (s State) Extension() string {
	if s.Phase == Unavailable || s.Index >= len(s.extensions) {
		return ""
	}
	return s.extensions[s.Index]
}

// Candidate returns the image path to load, or "" once unavailable
func (s State) Candidate() string {
	ext := s.Extension()
	if ext == "" {
		return ""
	}
	return s.Base + ext
}

// Terminal reports whether resolution has finished
func (s State) Terminal() bool {
	return s.Phase != Pending
}

// Loaded records a successful load of the current candidate.
// Results for any other base are stale and ignored.
func (s State) Loaded(base string) State {
	if base != s.Base || s.Terminal() {
		return s
	}
	s.Phase = Found
	return s
}

// Failed advances to the next extension, or to Unavailable when none remain.
// Results for any other base are stale and ignored.
func (s State) Failed(base string) State {
	if base != s.Base || s.Terminal() {
		return s
	}
	if s.Index+1 < len(s.extensions) {
		s.Index++
		return s
	}
	s.Phase = Unavailable
	return s
}

// Result is the outcome of a complete resolution
type Result struct {
	State    State
	Attempts []string
}

// Src returns the resolved image path, or "" when unavailable
func (r Result) Src() string {
	if r.State.Phase != Found {
		return ""
	}
	return r.State.Candidate()
}

// Resolve probes candidates for base until one exists or all are exhausted.
// A probe error counts as a miss. Nothing is cached between calls.
func (r *Resolver) Resolve(ctx context.Context, p Prober, base string) (Result, error) {
	state := r.Open(base)
	if len(r.extensions) == 0 {
		state.Phase = Unavailable
	}

	var attempts []string
	for !state.Terminal() {
		if err := ctx.Err(); err != nil {
			return Result{State: state, Attempts: attempts}, err
		}

		candidate := state.Candidate()
		attempts = append(attempts, candidate)

		ok, err := p.Probe(ctx, candidate)
		if ctxErr := ctx.Err(); ctxErr != nil {
			return Result{State: state, Attempts: attempts}, ctxErr
		}
		if err == nil && ok {
			state = state.Loaded(base)
		} else {
			state = state.Failed(base)
		}
	}

	return Result{State: state, Attempts: attempts}, nil
}
