package reactor

import "math"

const (
	maxIterations  = 50
	convergenceTol = 1e-4
	derivStep      = 0.01
	flatSlope      = 1e-10
	maxNewtonStep  = 100.0
	guessOffset    = 100.0
	nudgeStep      = 10.0

	maxStages          = 5
	conversionCutoff   = 0.99
	intersectTolerance = 0.01
)

// solveStage finds the temperature where the equilibrium curve meets
// one stage's adiabatic energy-balance line, offset by the conversion
// already achieved upstream. The objective
//
//	f(t) = Xe(t) − (prior + Xeb(t, refTemp))
//
// is driven to zero with a damped Newton iteration. Non-convergence
// within the iteration cap is not an error: the best available
// temperature is returned with its iteration count, so the caller can
// see how hard the solve was.
func solveStage(priorConversion, refTemp float64, c DerivedCoefficients) StageResult {
	f := func(t float64) float64 {
		return thermodynamicConversion(t, c.BaseK, c.DeltaH) -
			(priorConversion + energyBalanceConversion(t, refTemp, c.HeatCapacity, c.DeltaH))
	}

	// Start on the high-temperature side, where f is falling for the
	// exothermic case.
	t := refTemp + guessOffset
	iterations := 0

	for i := 0; i < maxIterations; i++ {
		ft := f(t)
		if math.Abs(ft) < convergenceTol {
			break
		}
		iterations++

		slope := (f(t+derivStep) - ft) / derivStep
		if math.Abs(slope) < flatSlope {
			// Near-flat objective: a Newton step would divide by
			// almost zero, so nudge toward the smaller residual.
			if math.Abs(f(t+nudgeStep)) < math.Abs(f(t-nudgeStep)) {
				t += nudgeStep
			} else {
				t -= nudgeStep
			}
		} else {
			step := ft / slope
			if math.Abs(step) > maxNewtonStep {
				step /= 2
			}
			t -= step
		}

		// A stage cannot operate below its own reset temperature.
		if t < refTemp+1 {
			t = refTemp + 1
		}
	}

	return StageResult{
		Temperature: t,
		Conversion:  thermodynamicConversion(t, c.BaseK, c.DeltaH),
		Iterations:  iterations,
	}
}

// computeStages chains adiabatic stages with intercooling: stage 1
// reacts from the feed temperature, every later stage resets to the
// cooling temperature and carries the cumulative conversion forward.
// The loop stops once the target is met, conversion is essentially
// complete, or the stage limit is reached.
func computeStages(p ReactionParameters, c DerivedCoefficients) (stages []StageResult, final float64, reached bool) {
	stages = make([]StageResult, 0, maxStages)

	first := solveStage(0, p.FeedTemp, c)
	stages = append(stages, first)
	cumulative := first.Conversion

	for cumulative < p.TargetConversion && cumulative <= conversionCutoff && len(stages) < maxStages {
		next := solveStage(cumulative, p.CoolingTemp, c)
		stages = append(stages, next)
		cumulative = next.Conversion
	}

	return stages, cumulative, cumulative >= p.TargetConversion
}

// Run validates the parameters, evaluates the single operating point,
// and chains stages until the target conversion is met or the stage
// limit is exhausted. It is deterministic and keeps no state between
// calls.
func Run(p ReactionParameters) (CalculationResult, error) {
	if err := p.Validate(); err != nil {
		return CalculationResult{}, err
	}

	c := DeriveCoefficients(p)

	xe := thermodynamicConversion(p.OperatingTemp, c.BaseK, c.DeltaH)
	xeb := energyBalanceConversion(p.OperatingTemp, p.FeedTemp, c.HeatCapacity, c.DeltaH)

	stages, final, reached := computeStages(p, c)

	return CalculationResult{
		EquilibriumK:     equilibriumConstant(p.OperatingTemp, c.BaseK, c.DeltaH),
		ThermoConversion: xe,
		EnergyConversion: xeb,
		Intersects:       math.Abs(xe-xeb) < intersectTolerance,
		Stages:           stages,
		FinalConversion:  final,
		TargetReached:    reached,
	}, nil
}
