package reactor

import (
	"math"
	"testing"
)

func TestEquilibriumConstantReferenceIdentity(t *testing.T) {
	for _, deltaH := range []float64{-20000, -5000, 0, 5000, 20000} {
		got := equilibriumConstant(referenceTemp, 100000, deltaH)
		if math.Abs(got-100000) > 1e-9 {
			t.Fatalf("deltaH=%g: expected K(298)=100000, got %g", deltaH, got)
		}
	}
}

func TestThermodynamicConversionStaysInOpenUnitInterval(t *testing.T) {
	for temp := 250.0; temp <= 1500; temp += 10 {
		x := thermodynamicConversion(temp, 100000, -20000)
		if x <= 0 || x >= 1 {
			t.Fatalf("T=%g: conversion %g outside (0,1)", temp, x)
		}
	}
}

// For an exothermic reaction the equilibrium constant shrinks as the
// temperature rises, so the equilibrium conversion must fall.
func TestThermodynamicConversionMonotonicity(t *testing.T) {
	t.Run("exothermic falls with temperature", func(t *testing.T) {
		prev := thermodynamicConversion(300, 100000, -20000)
		for temp := 310.0; temp <= 1000; temp += 10 {
			x := thermodynamicConversion(temp, 100000, -20000)
			if x >= prev {
				t.Fatalf("T=%g: expected conversion below %g, got %g", temp, prev, x)
			}
			prev = x
		}
	})

	t.Run("endothermic rises with temperature", func(t *testing.T) {
		prev := thermodynamicConversion(300, 0.001, 20000)
		for temp := 310.0; temp <= 1000; temp += 10 {
			x := thermodynamicConversion(temp, 0.001, 20000)
			if x <= prev {
				t.Fatalf("T=%g: expected conversion above %g, got %g", temp, prev, x)
			}
			prev = x
		}
	})
}

func TestEnergyBalanceConversion(t *testing.T) {
	t.Run("zero at the reference temperature", func(t *testing.T) {
		if x := energyBalanceConversion(350, 350, 50, -20000); x != 0 {
			t.Fatalf("expected 0, got %g", x)
		}
	})

	t.Run("slope is cp over abs deltaH", func(t *testing.T) {
		x := energyBalanceConversion(400, 300, 50, -20000)
		want := 50.0 * 100 / 20000
		if math.Abs(x-want) > 1e-12 {
			t.Fatalf("expected %g, got %g", want, x)
		}
	})

	t.Run("sign follows temperature difference", func(t *testing.T) {
		if x := energyBalanceConversion(290, 300, 50, -20000); x >= 0 {
			t.Fatalf("expected negative conversion below reference, got %g", x)
		}
	})
}
