package chart

import (
	"strings"

	"github.com/sgostarter/i/l"
	"github.com/sgostarter/libpricechart/series"
	"github.com/spf13/cast"
)

type Strategy string

const (
	StrategyBinarySearchWithInterpolation Strategy = "binarySearchWithInterpolation"

	DefaultStrategy = StrategyBinarySearchWithInterpolation
)

// Searcher answers a lookup at an already clamped screen X.
type Searcher interface {
	Search(g *Geometry, x float64) Result
}

type SearcherFunc func(g *Geometry, x float64) Result

func (fn SearcherFunc) Search(g *Geometry, x float64) Result {
	return fn(g, x)
}

func builtinSearchers() map[Strategy]Searcher {
	return map[Strategy]Searcher{
		StrategyBinarySearchWithInterpolation: SearcherFunc(BinarySearchWithInterpolation),
	}
}

// Locate clamps x into the drawable range and runs the default strategy.
func Locate(g *Geometry, x float64) Result {
	return locateWith(g, x, SearcherFunc(BinarySearchWithInterpolation))
}

func locateWith(g *Geometry, x float64, searcher Searcher) Result {
	if g.Empty() {
		return Result{}
	}

	return searcher.Search(g, g.ClampX(x))
}

// BinarySearchWithInterpolation inverts x to a timestamp, finds the two
// samples around it and interpolates the price linearly between them.
// Outside the sampled time range it returns the first or last price.
func BinarySearchWithInterpolation(g *Geometry, x float64) Result {
	if g.Empty() {
		return Result{}
	}

	ds := g.Data
	at := g.Time.Invert(x)

	if at <= float64(ds.First().At) {
		return resultOf(g, ds.First().Price)
	}

	if at >= float64(ds.Last().At) {
		return resultOf(g, ds.Last().Price)
	}

	idx := bracket(ds, at)
	left, right := ds[idx], ds[idx+1]

	var ratio float64

	if den := float64(right.At - left.At); den != 0 {
		ratio = (at - float64(left.At)) / den
	}

	return resultOf(g, left.Price+ratio*(right.Price-left.Price))
}

// bracket returns i with ds[i].At <= at < ds[i+1].At. The caller has
// already handled at outside (ds[0].At, ds[last].At).
func bracket(ds series.Dataset, at float64) int {
	left, right := 0, len(ds)-1

	for left < right-1 {
		mid := (left + right) / 2

		if float64(ds[mid].At) <= at {
			left = mid
		} else {
			right = mid
		}
	}

	if left >= len(ds)-1 {
		left = len(ds) - 2
	}

	return left
}

func resultOf(g *Geometry, value float64) Result {
	return Result{
		Y:     g.Price.Map(value),
		Value: value,
	}
}

func ParseStrategy(v interface{}) Strategy {
	if s, ok := v.(Strategy); ok {
		return s
	}

	return Strategy(strings.TrimSpace(cast.ToString(v)))
}

func (c *Controller) searcher(v interface{}) Searcher {
	name := ParseStrategy(v)
	if name == "" {
		name = c.strategy
	}

	if s, ok := c.strategies[name]; ok {
		return s
	}

	if _, warned := c.warned.LoadOrStore(name, struct{}{}); !warned {
		c.logger.WithFields(l.StringField("strategy", string(name)),
			l.StringField("fallback", string(DefaultStrategy))).Warn("invalid search strategy, falling back")
	}

	return c.strategies[DefaultStrategy]
}
