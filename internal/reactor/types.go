package reactor

import "fmt"

// ReactionParameters is the full input set for one calculation. All
// enthalpies are in cal/mol, heat capacities in cal/(mol·K),
// temperatures in K, and the feed rate in mol/min. Ke is the
// equilibrium constant measured at the 298 K reference temperature.
type ReactionParameters struct {
	EnthalpyA        float64 `json:"ha" yaml:"ha"`             // standard enthalpy of species A
	EnthalpyB        float64 `json:"hb" yaml:"hb"`             // standard enthalpy of species B
	HeatCapacityA    float64 `json:"ca" yaml:"ca"`
	HeatCapacityB    float64 `json:"cb" yaml:"cb"`
	FeedRate         float64 `json:"fa0" yaml:"fa0"`
	ReferenceK       float64 `json:"ke" yaml:"ke"`             // equilibrium constant at 298 K
	FeedTemp         float64 `json:"t0" yaml:"t0"`             // feed / stage-1 reference temperature
	OperatingTemp    float64 `json:"t_op" yaml:"t_op"`         // single-point evaluation temperature
	CoolingTemp      float64 `json:"t_cool" yaml:"t_cool"`     // intercooling reset temperature
	TargetConversion float64 `json:"x_target" yaml:"x_target"` // overall conversion target, fraction
}

// Validate rejects parameter sets the model cannot represent. The
// energy balance assumes a single shared heat capacity, so Ca must
// equal Cb; temperatures must be positive to keep 1/T finite.
func (p ReactionParameters) Validate() error {
	if p.HeatCapacityA != p.HeatCapacityB {
		return fmt.Errorf("heat capacities must be equal: ca=%g cb=%g", p.HeatCapacityA, p.HeatCapacityB)
	}
	if p.FeedTemp <= 0 || p.OperatingTemp <= 0 || p.CoolingTemp <= 0 {
		return fmt.Errorf("temperatures must be positive: t0=%g t_op=%g t_cool=%g", p.FeedTemp, p.OperatingTemp, p.CoolingTemp)
	}
	if p.TargetConversion < 0 || p.TargetConversion > 1 {
		return fmt.Errorf("target conversion must be in [0,1]: x_target=%g", p.TargetConversion)
	}
	return nil
}

// DerivedCoefficients are computed once per parameter set and never
// mutated independently of it.
type DerivedCoefficients struct {
	DeltaH       float64 `json:"delta_h"` // reaction enthalpy change, Hb − Ha
	HeatCapacity float64 `json:"cp"`      // shared heat capacity of both species
	BaseK        float64 `json:"base_k"`  // equilibrium constant at 298 K
}

// DeriveCoefficients computes the intermediate coefficients the
// equilibrium model and stage solver work in.
func DeriveCoefficients(p ReactionParameters) DerivedCoefficients {
	return DerivedCoefficients{
		DeltaH:       p.EnthalpyB - p.EnthalpyA,
		HeatCapacity: p.HeatCapacityA,
		BaseK:        p.ReferenceK,
	}
}

// StageResult is one adiabatic stage's outcome: the temperature where
// the stage's energy-balance line meets the equilibrium curve, the
// cumulative conversion reached there, and the Newton iterations
// consumed finding it.
type StageResult struct {
	Temperature float64 `json:"temperature"`
	Conversion  float64 `json:"conversion"`
	Iterations  int     `json:"iterations"`
}

// CalculationResult aggregates one full run: the single-point
// evaluation at the operating temperature plus the chained stage
// sequence. Stages are in physical order, first reactor first.
type CalculationResult struct {
	EquilibriumK     float64       `json:"equilibrium_k"`
	ThermoConversion float64       `json:"x_equilibrium"`
	EnergyConversion float64       `json:"x_energy_balance"`
	Intersects       bool          `json:"intersects"`
	Stages           []StageResult `json:"stages"`
	FinalConversion  float64       `json:"final_conversion"`
	TargetReached    bool          `json:"target_reached"`
}
