package registry

import (
	"fmt"
	"strconv"
	"time"

	"github.com/godruoyi/go-snowflake"
	"github.com/patrickmn/go-cache"
	"github.com/sgostarter/i/commerr"
	"github.com/sgostarter/i/l"
	"github.com/sgostarter/libeasygo/cuserror"
	"github.com/sgostarter/libpricechart/chart"
)

type Config struct {
	IdleExpiry      time.Duration `yaml:"idleExpiry" json:"idleExpiry"`
	CleanupInterval time.Duration `yaml:"cleanupInterval" json:"cleanupInterval"`
}

// Registry owns one chart.Controller per rendered chart instance, so that
// no two instances share a geometry cache slot. Controllers not used for
// IdleExpiry are dropped.
type Registry struct {
	logger l.Wrapper
	cfg    Config
	charts *cache.Cache
}

func NewRegistry(cfg Config, logger l.Wrapper) *Registry {
	if logger == nil {
		logger = l.NewNopLoggerWrapper()
	}

	logger = logger.WithFields(l.StringField(l.ClsKey, "chartRegistry"))

	if cfg.IdleExpiry <= 0 {
		cfg.IdleExpiry = time.Minute * 10
	}

	if cfg.CleanupInterval <= 0 {
		cfg.CleanupInterval = cfg.IdleExpiry / 2
	}

	if cfg.CleanupInterval < time.Second {
		cfg.CleanupInterval = time.Second
	}

	charts := cache.New(cfg.IdleExpiry, cfg.CleanupInterval)
	charts.OnEvicted(func(key string, _ interface{}) {
		logger.WithFields(l.StringField("id", key)).Debug("chart evicted")
	})

	return &Registry{
		logger: logger,
		cfg:    cfg,
		charts: charts,
	}
}

func (r *Registry) Create(chartCfg *chart.Config, opts ...chart.Option) (id uint64, c *chart.Controller) {
	id = snowflake.ID()
	c = chart.NewController(chartCfg, r.logger.WithFields(l.UInt64Field("chartID", id)), opts...)

	r.charts.Set(r.key(id), c, cache.DefaultExpiration)

	return
}

// Get returns the controller of a live chart and restarts its idle timer.
func (r *Registry) Get(id uint64) (*chart.Controller, error) {
	key := r.key(id)

	i, ok := r.charts.Get(key)
	if !ok {
		return nil, commerr.ErrNotFound
	}

	c, ok := i.(*chart.Controller)
	if !ok {
		r.logger.WithFields(l.StringField("id", key)).Error("logic error: not a controller")

		return nil, cuserror.NewWithErrorMsg(fmt.Sprintf("unexpected chart entry: %T", i))
	}

	// Replace fails if a Remove got in between, so a removed chart stays removed.
	if err := r.charts.Replace(key, c, cache.DefaultExpiration); err != nil {
		return nil, commerr.ErrNotFound
	}

	return c, nil
}

// Touch restarts the idle timer of a live chart.
func (r *Registry) Touch(id uint64) error {
	_, err := r.Get(id)

	return err
}

func (r *Registry) Remove(id uint64) {
	r.charts.Delete(r.key(id))
}

func (r *Registry) Count() int {
	return r.charts.ItemCount()
}

func (r *Registry) key(id uint64) string {
	return strconv.FormatUint(id, 10)
}
