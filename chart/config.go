package chart

import (
	"fmt"

	"github.com/sgostarter/i/commerr"
	"github.com/spf13/cast"
	"gopkg.in/yaml.v3"
)

const (
	DefaultPricePlaces = 2
	MaxPricePlaces     = 16
)

type Config struct {
	// CurveStyle is used when a geometry has to be rebuilt for a lookup.
	CurveStyle string `yaml:"curveStyle" json:"curveStyle"`
	Strategy   string `yaml:"strategy" json:"strategy"`

	PricePlaces int32 `yaml:"pricePlaces" json:"pricePlaces"`
}

func DefaultConfig() *Config {
	return &Config{
		CurveStyle:  "curveBasis",
		Strategy:    string(DefaultStrategy),
		PricePlaces: DefaultPricePlaces,
	}
}

func (cfg *Config) fix() {
	if cfg.CurveStyle == "" {
		cfg.CurveStyle = "curveBasis"
	}

	if cfg.Strategy == "" {
		cfg.Strategy = string(DefaultStrategy)
	}

	if cfg.PricePlaces <= 0 {
		cfg.PricePlaces = DefaultPricePlaces
	}
}

func (cfg *Config) Validate() error {
	if cfg.PricePlaces < 0 || cfg.PricePlaces > MaxPricePlaces {
		return fmt.Errorf("%w: pricePlaces %d not in [0, %d]", commerr.ErrInvalidArgument, cfg.PricePlaces, MaxPricePlaces)
	}

	return nil
}

func LoadConfig(d []byte) (*Config, error) {
	var cfg Config

	if err := yaml.Unmarshal(d, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadConfig, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	cfg.fix()

	return &cfg, nil
}

// ConfigFromMap reads a host property bag, e.g. {"curveType": "natural",
// "ySearch": "binarySearchWithInterpolation", "pricePlaces": "4"}.
func ConfigFromMap(m map[string]interface{}) (*Config, error) {
	var cfg Config

	for _, key := range []string{"curveStyle", "curveType"} {
		if v, ok := m[key]; ok {
			cfg.CurveStyle = cast.ToString(v)
		}
	}

	for _, key := range []string{"strategy", "ySearch"} {
		if v, ok := m[key]; ok {
			cfg.Strategy = cast.ToString(v)
		}
	}

	if v, ok := m["pricePlaces"]; ok {
		places, err := cast.ToInt32E(v)
		if err != nil {
			return nil, fmt.Errorf("%w: pricePlaces: %v", commerr.ErrInvalidArgument, err)
		}

		cfg.PricePlaces = places
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	cfg.fix()

	return &cfg, nil
}
