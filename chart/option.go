package chart

type Option func(o *options)

type options struct {
	strategies map[Strategy]Searcher
}

func optionNew(option ...Option) *options {
	opts := &options{
		strategies: make(map[Strategy]Searcher),
	}

	for _, o := range option {
		o(opts)
	}

	return opts
}

// WithStrategy registers an extra search strategy under name for one
// controller. The built-in strategy name cannot be replaced.
func WithStrategy(name Strategy, searcher Searcher) Option {
	return func(o *options) {
		if name == "" || searcher == nil {
			return
		}

		o.strategies[name] = searcher
	}
}
