package reactor

import (
	"bytes"
	"fmt"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

const curveSamples = 200

// RenderChart draws the thermodynamic equilibrium curve together with
// each stage's adiabatic operating line and returns the plot as PNG
// bytes. The temperature axis spans from just below the coldest
// reference temperature to past the hottest stage.
func RenderChart(p ReactionParameters, res CalculationResult) ([]byte, error) {
	c := DeriveCoefficients(p)

	pl := plot.New()
	pl.Title.Text = "Adiabatic reactor staging"
	pl.X.Label.Text = "Temperature (K)"
	pl.Y.Label.Text = "Conversion"
	pl.Y.Min, pl.Y.Max = 0, 1
	pl.Add(plotter.NewGrid())

	tMin := math.Min(p.FeedTemp, p.CoolingTemp) - 25
	tMax := p.FeedTemp + guessOffset
	for _, s := range res.Stages {
		if s.Temperature+50 > tMax {
			tMax = s.Temperature + 50
		}
	}

	curve := make(plotter.XYs, 0, curveSamples+1)
	step := (tMax - tMin) / curveSamples
	for t := tMin; t <= tMax; t += step {
		curve = append(curve, plotter.XY{X: t, Y: thermodynamicConversion(t, c.BaseK, c.DeltaH)})
	}

	eq, err := plotter.NewLine(curve)
	if err != nil {
		return nil, fmt.Errorf("equilibrium curve: %w", err)
	}
	eq.Color = plotutil.Color(0)
	pl.Add(eq)
	pl.Legend.Add("equilibrium", eq)

	prior := 0.0
	ref := p.FeedTemp
	for i, s := range res.Stages {
		ln, err := plotter.NewLine(plotter.XYs{
			{X: ref, Y: prior},
			{X: s.Temperature, Y: s.Conversion},
		})
		if err != nil {
			return nil, fmt.Errorf("stage %d line: %w", i+1, err)
		}
		ln.Color = plotutil.Color(i + 1)
		pl.Add(ln)
		pl.Legend.Add(fmt.Sprintf("stage %d", i+1), ln)

		prior = s.Conversion
		ref = p.CoolingTemp
	}

	wt, err := pl.WriterTo(6*vg.Inch, 4*vg.Inch, "png")
	if err != nil {
		return nil, fmt.Errorf("rendering chart: %w", err)
	}

	var buf bytes.Buffer
	if _, err := wt.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("encoding chart: %w", err)
	}
	return buf.Bytes(), nil
}
