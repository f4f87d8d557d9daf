package chart

import (
	"sync"

	"github.com/sgostarter/libpricechart/series"
)

type geometryKey struct {
	data   series.Key
	width  float64
	height float64
}

func keyOf(ds series.Dataset, width, height float64) geometryKey {
	return geometryKey{
		data:   ds.Key(),
		width:  width,
		height: height,
	}
}

// geometryCache holds the most recent geometry only. A different key
// replaces it.
type geometryCache struct {
	lock sync.Mutex

	key geometryKey
	g   *Geometry
}

// getOrBuild runs build under the lock so two callers racing on a new key
// build once.
func (c *geometryCache) getOrBuild(key geometryKey, build func() *Geometry) (g *Geometry, built bool) {
	c.lock.Lock()
	defer c.lock.Unlock()

	if c.g != nil && c.key == key {
		return c.g, false
	}

	c.g = build()
	c.key = key

	return c.g, true
}

func (c *geometryCache) store(key geometryKey, g *Geometry) {
	c.lock.Lock()
	defer c.lock.Unlock()

	c.key = key
	c.g = g
}

func (c *geometryCache) reset() {
	c.lock.Lock()
	defer c.lock.Unlock()

	c.key = geometryKey{}
	c.g = nil
}
