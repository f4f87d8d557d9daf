package chart_test

import (
	"fmt"

	"github.com/sgostarter/libpricechart/chart"
	"github.com/sgostarter/libpricechart/series"
)

func ExampleController_LocateValue() {
	ds := series.Dataset{
		{At: 0, Price: 100},
		{At: 10, Price: 200},
	}

	c := chart.NewController(nil, nil)

	g := c.ProjectPath("curveLinear", ds, 100, 50)
	for _, pt := range g.Path.Vertices() {
		fmt.Printf("vertex %.2f,%.2f\n", pt.X, pt.Y)
	}

	for _, x := range []float64{0, 50, 92} {
		r := c.LocateValue(x, 100, ds, 50, chart.StrategyBinarySearchWithInterpolation)
		fmt.Printf("x=%v y=%.2f price=%s\n", x, r.Y, c.PriceText(r.Value))
	}

	// Output:
	// vertex 8.00,45.83
	// vertex 92.00,4.17
	// x=0 y=45.83 price=100.00
	// x=50 y=25.00 price=150.00
	// x=92 y=4.17 price=200.00
}
