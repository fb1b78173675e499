package aggregate

import (
	"github.com/f1viz/f1viz-data-go/log"
	"github.com/f1viz/f1viz-data-go/pkg/store"
)

// Analyzer bundles the aggregation functions. All methods are pure: they read
// the immutable store and produce new view models, so re-running them on
// every parameter change is safe and cheap.
type Analyzer struct {
	store  *store.Store
	logger *log.Logger
}

type Option func(a *Analyzer)

func WithLogger(l *log.Logger) Option {
	return func(a *Analyzer) {
		a.logger = l
	}
}

func New(s *store.Store, opts ...Option) *Analyzer {
	ret := &Analyzer{store: s, logger: log.Default().Named("aggregate")}
	for _, opt := range opts {
		opt(ret)
	}
	return ret
}

// Window is an inclusive season range. Every aggregation resolves it once per
// call through the store's year index.
type Window struct {
	Start int
	End   int
}

func (w Window) Contains(year int) bool {
	return year >= w.Start && year <= w.End
}
