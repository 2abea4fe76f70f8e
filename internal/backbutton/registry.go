package backbutton

import (
	"fmt"
	"slices"

	"github.com/rs/zerolog"
)

// Handler is anything the back signal can close.
type Handler interface {
	Close()
}

// Registry is a LIFO stack of open handlers. Handlers are compared with ==,
// so implementations should use pointer receivers.
//
// A nil *Registry is valid and ignores every call.
type Registry struct {
	handlers []Handler
	log      zerolog.Logger
}

type Option func(*Registry)

func WithLogger(l zerolog.Logger) Option {
	return func(r *Registry) { r.log = l }
}

func New(opts ...Option) *Registry {
	r := &Registry{log: zerolog.Nop()}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Register pushes h onto the stack. Registering the same handler twice
// leaves two entries.
func (r *Registry) Register(h Handler) {
	if r == nil || h == nil {
		return
	}
	r.handlers = append(r.handlers, h)
	r.log.Debug().Str("handler", handlerName(h)).Int("depth", len(r.handlers)).Msg("registered")
}

// Deregister removes the first entry equal to h. Unknown handlers are ignored.
func (r *Registry) Deregister(h Handler) {
	if r == nil || h == nil {
		return
	}
	idx := slices.IndexFunc(r.handlers, func(x Handler) bool { return x == h })
	if idx < 0 {
		return
	}
	r.handlers = slices.Delete(r.handlers, idx, idx+1)
	r.log.Debug().Str("handler", handlerName(h)).Int("depth", len(r.handlers)).Msg("deregistered")
}

// Dispatch closes the top handler and reports whether there was one.
//
// Close may register or deregister handlers, including itself. If Close
// dropped one of the handler's entries nothing more happens. Otherwise one
// entry is removed: the one at the position it was closed from, or the
// nearest one below it when handlers underneath were removed. Handlers
// registered during Close sit above that position and are kept. A panic
// in Close propagates and leaves the stack untouched.
func (r *Registry) Dispatch() bool {
	if r == nil || len(r.handlers) == 0 {
		return false
	}
	idx := len(r.handlers) - 1
	h := r.handlers[idx]
	r.log.Debug().Str("handler", handlerName(h)).Int("depth", idx+1).Msg("back signal")

	before := r.count(h)
	h.Close()
	if r.count(h) < before {
		return true
	}

	for i := min(idx, len(r.handlers)-1); i >= 0; i-- {
		if r.handlers[i] == h {
			r.handlers = slices.Delete(r.handlers, i, i+1)
			r.log.Debug().Str("handler", handlerName(h)).Msg("removed after close")
			break
		}
	}
	return true
}

func (r *Registry) count(h Handler) int {
	n := 0
	for _, x := range r.handlers {
		if x == h {
			n++
		}
	}
	return n
}

func (r *Registry) Len() int {
	if r == nil {
		return 0
	}
	return len(r.handlers)
}

// Top returns the handler the next Dispatch would close, or nil.
func (r *Registry) Top() Handler {
	if r == nil || len(r.handlers) == 0 {
		return nil
	}
	return r.handlers[len(r.handlers)-1]
}

// Handlers returns a copy of the stack, bottom first.
func (r *Registry) Handlers() []Handler {
	if r == nil {
		return nil
	}
	return slices.Clone(r.handlers)
}

func handlerName(h Handler) string {
	if n, ok := h.(interface{ Name() string }); ok {
		return n.Name()
	}
	return fmt.Sprintf("%T", h)
}
