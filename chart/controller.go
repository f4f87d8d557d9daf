package chart

import (
	"sync"

	"github.com/sgostarter/i/l"
	"github.com/sgostarter/libpricechart/series"
	"github.com/sgostarter/libpricechart/shape"
)

// Controller is the per chart instance entry point. It owns one geometry
// cache slot; chart instances must not share a Controller.
type Controller struct {
	logger l.Wrapper
	cfg    *Config

	style      shape.CurveStyle
	strategy   Strategy
	strategies map[Strategy]Searcher
	warned     sync.Map

	cache geometryCache
}

func NewController(cfg *Config, logger l.Wrapper, opts ...Option) *Controller {
	if logger == nil {
		logger = l.NewNopLoggerWrapper()
	}

	logger = logger.WithFields(l.StringField(l.ClsKey, "chartController"))

	if cfg == nil {
		cfg = DefaultConfig()
	} else {
		cfgCopy := *cfg
		cfg = &cfgCopy
	}

	if err := cfg.Validate(); err != nil {
		logger.WithFields(l.ErrorField(err)).Error("invalid config, using defaults")

		cfg = DefaultConfig()
	}

	cfg.fix()

	o := optionNew(opts...)

	strategies := o.strategies
	for name, searcher := range builtinSearchers() {
		strategies[name] = searcher
	}

	c := &Controller{
		logger:     logger,
		cfg:        cfg,
		style:      ResolveCurveStyle(cfg.CurveStyle, logger),
		strategies: strategies,
	}

	c.strategy = ParseStrategy(cfg.Strategy)
	if _, ok := c.strategies[c.strategy]; !ok {
		logger.WithFields(l.StringField("strategy", cfg.Strategy),
			l.StringField("fallback", string(DefaultStrategy))).Warn("invalid search strategy, falling back")

		c.strategy = DefaultStrategy
	}

	return c
}

// ProjectPath projects the dataset with the given curve style and makes the
// result the cached geometry for later lookups.
func (c *Controller) ProjectPath(style interface{}, ds series.Dataset, width, height float64) *Geometry {
	g := Project(ResolveCurveStyle(style, c.logger), ds, width, height)

	c.cache.store(keyOf(ds, width, height), g)

	return g
}

// Geometry returns the cached geometry for the dataset and canvas, building
// it with the configured curve style if the slot holds anything else.
func (c *Controller) Geometry(ds series.Dataset, width, height float64) *Geometry {
	g, built := c.cache.getOrBuild(keyOf(ds, width, height), func() *Geometry {
		return Project(c.style, ds, width, height)
	})

	if built {
		c.logger.WithFields(l.IntField("samples", len(ds))).Debug("geometry rebuilt")
	}

	return g
}

// LocateValue answers one interaction sample: the curve Y and interpolated
// price at screen x. An empty dataset yields the zero Result.
func (c *Controller) LocateValue(x, width float64, ds series.Dataset, height float64, strategy interface{}) Result {
	if ds.Empty() {
		return Result{}
	}

	return locateWith(c.Geometry(ds, width, height), x, c.searcher(strategy))
}

// Cursor is LocateValue plus the clamped X, which is where a drag cursor
// should be drawn.
func (c *Controller) Cursor(x, width float64, ds series.Dataset, height float64, strategy interface{}) Cursor {
	if ds.Empty() {
		return Cursor{}
	}

	g := c.Geometry(ds, width, height)
	cx := g.ClampX(x)
	r := locateWith(g, cx, c.searcher(strategy))

	return Cursor{
		X:     cx,
		Y:     r.Y,
		Value: r.Value,
	}
}

// InitialCursor sits on the first sample, before any interaction.
func (c *Controller) InitialCursor(ds series.Dataset, width, height float64) Cursor {
	if ds.Empty() {
		return Cursor{}
	}

	g := c.Geometry(ds, width, height)
	first := ds.First()

	return Cursor{
		X:     g.Time.Map(float64(first.At)),
		Y:     g.Price.Map(first.Price),
		Value: first.Price,
	}
}

func (c *Controller) PriceText(v float64) string {
	return FormatPrice(v, c.cfg.PricePlaces)
}

func (c *Controller) Style() shape.CurveStyle {
	return c.style
}

func (c *Controller) Strategy() Strategy {
	return c.strategy
}

func (c *Controller) Invalidate() {
	c.cache.reset()
}
