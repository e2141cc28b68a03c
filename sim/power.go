package sim

import "github.com/silogic/buscode/errors"

// PowerModel holds the constants of the dynamic power estimate
// P = C · VDD² · f · transitions.
type PowerModel struct {
	CapacitancePF float64 // per-line load capacitance, picofarads
	VDD           float64 // supply voltage, volts
	FreqMHz       float64 // bus clock, megahertz
}

// DefaultPowerModel returns the constants the report defaults to.
func DefaultPowerModel() PowerModel {
	return PowerModel{
		CapacitancePF: 10,
		VDD:           1.2,
		FreqMHz:       100,
	}
}

func (p PowerModel) validate() error {
	switch {
	case p.CapacitancePF <= 0:
		return errors.InvalidPower(errors.PhaseSimulate, "capacitance", p.CapacitancePF)
	case p.VDD <= 0:
		return errors.InvalidPower(errors.PhaseSimulate, "vdd", p.VDD)
	case p.FreqMHz <= 0:
		return errors.InvalidPower(errors.PhaseSimulate, "frequency", p.FreqMHz)
	}
	return nil
}

// EstimateMW converts a transition count to milliwatts. With C in pF and f
// in MHz the product C·VDD²·f·N carries a factor of 1e-6 W, i.e. 1e-3 mW.
func (p PowerModel) EstimateMW(transitions int) float64 {
	return p.CapacitancePF * p.VDD * p.VDD * p.FreqMHz * float64(transitions) * 1e-3
}
