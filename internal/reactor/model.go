package reactor

import "math"

const (
	// gasConstant is R in cal/(mol·K), matching the enthalpy units.
	gasConstant = 1.987

	// referenceTemp is the temperature the base equilibrium constant
	// is quoted at.
	referenceTemp = 298.0
)

// equilibriumConstant evaluates the van't Hoff expression
// K(T) = K(298) · exp((ΔH/R)·(1/298 − 1/T)). T must be positive.
func equilibriumConstant(temp, baseK, deltaH float64) float64 {
	return baseK * math.Exp((deltaH/gasConstant)*(1/referenceTemp-1/temp))
}

// thermodynamicConversion is the equilibrium conversion Xe = K/(1+K)
// at the given temperature. For an exothermic reaction (ΔH < 0) it
// falls with temperature, which is what makes staging necessary.
func thermodynamicConversion(temp, baseK, deltaH float64) float64 {
	k := equilibriumConstant(temp, baseK, deltaH)
	return k / (1 + k)
}

// energyBalanceConversion is the conversion implied by the adiabatic
// temperature rise from refTemp: Xeb = Cp·(T − Tref)/|ΔH|.
func energyBalanceConversion(temp, refTemp, heatCapacity, deltaH float64) float64 {
	return heatCapacity * (temp - refTemp) / math.Abs(deltaH)
}
