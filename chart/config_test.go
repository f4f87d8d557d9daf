package chart

import (
	"errors"
	"testing"

	"github.com/sgostarter/i/commerr"
	"github.com/stretchr/testify/assert"
)

func TestLoadConfig(t *testing.T) {
	cfg, err := LoadConfig([]byte(`
curveStyle: curveMonotoneX
strategy: binarySearchWithInterpolation
pricePlaces: 4
`))
	assert.Nil(t, err)
	assert.Equal(t, "curveMonotoneX", cfg.CurveStyle)
	assert.Equal(t, string(StrategyBinarySearchWithInterpolation), cfg.Strategy)
	assert.EqualValues(t, 4, cfg.PricePlaces)

	cfg, err = LoadConfig([]byte(`{}`))
	assert.Nil(t, err)
	assert.Equal(t, DefaultConfig(), cfg)

	_, err = LoadConfig([]byte("curveStyle: [a"))
	assert.NotNil(t, err)
	assert.True(t, errors.Is(err, ErrBadConfig))

	_, err = LoadConfig([]byte("pricePlaces: 40"))
	assert.True(t, errors.Is(err, commerr.ErrInvalidArgument))
}

func TestConfigFromMap(t *testing.T) {
	cfg, err := ConfigFromMap(map[string]interface{}{
		"curveType":   "natural",
		"ySearch":     "binarySearchWithInterpolation",
		"pricePlaces": "3",
	})
	assert.Nil(t, err)
	assert.Equal(t, "natural", cfg.CurveStyle)
	assert.Equal(t, string(DefaultStrategy), cfg.Strategy)
	assert.EqualValues(t, 3, cfg.PricePlaces)

	c := NewController(cfg, nil)
	assert.Equal(t, "1.500", c.PriceText(1.5))

	_, err = ConfigFromMap(map[string]interface{}{"pricePlaces": "many"})
	assert.True(t, errors.Is(err, commerr.ErrInvalidArgument))

	cfg, err = ConfigFromMap(nil)
	assert.Nil(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestNewControllerBadConfig(t *testing.T) {
	c := NewController(&Config{PricePlaces: -1}, nil)
	assert.Equal(t, "2.00", c.PriceText(2))
}

func TestFormatPrice(t *testing.T) {
	assert.Equal(t, "150.00", FormatPrice(150, 2))
	assert.Equal(t, "100.00", FormatPrice(99.999, 2))
	assert.Equal(t, "3", FormatPrice(2.5, 0))
	assert.Equal(t, "-0.125", FormatPrice(-0.125, 3))
}
