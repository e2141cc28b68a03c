package sim

import (
	stderrors "errors"
	"strings"
	"testing"

	"github.com/silogic/buscode/encoder"
	"github.com/silogic/buscode/errors"
)

func TestRun_Deterministic(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Seed = 42

	first, err := Run(cfg)
	if err != nil {
		t.Fatal(err)
	}
	second, err := Run(cfg)
	if err != nil {
		t.Fatal(err)
	}

	if len(first.Cycles) != len(second.Cycles) {
		t.Fatalf("trace lengths differ: %d vs %d", len(first.Cycles), len(second.Cycles))
	}
	for i := range first.Cycles {
		if first.Cycles[i] != second.Cycles[i] {
			t.Fatalf("cycle %d differs across identically seeded runs:\n%+v\n%+v",
				i, first.Cycles[i], second.Cycles[i])
		}
	}
}

func TestRun_TraceInvariants(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Cycles = 200
	cfg.Seed = 7

	trace, err := Run(cfg)
	if err != nil {
		t.Fatal(err)
	}
	if len(trace.Cycles) != cfg.Cycles {
		t.Fatalf("trace has %d cycles, want %d", len(trace.Cycles), cfg.Cycles)
	}

	for _, c := range trace.Cycles {
		if got := encoder.Transitions(c.State.Encoded, c.Reference); got != c.Transitions {
			t.Fatalf("cycle %d: recorded %d transitions, recomputed %d",
				c.Index, c.Transitions, got)
		}
		if got := encoder.Transitions(c.Input, c.Reference); got != c.Raw {
			t.Fatalf("cycle %d: recorded %d raw transitions, recomputed %d",
				c.Index, c.Raw, got)
		}
		// The winner never costs more than sending the input unencoded.
		if c.Transitions > c.Raw {
			t.Fatalf("cycle %d: encoded %d transitions exceeds unencoded %d",
				c.Index, c.Transitions, c.Raw)
		}
		if c.State.Scheme == encoder.SchemeNone {
			t.Fatalf("cycle %d: reset sentinel in an enabled trace", c.Index)
		}
	}

	if trace.TotalTransitions() > trace.TotalRaw() {
		t.Errorf("encoding increased total transitions: %d > %d",
			trace.TotalTransitions(), trace.TotalRaw())
	}
	if s := trace.SavedPercent(); s < 0 || s > 100 {
		t.Errorf("SavedPercent() = %.2f, want [0, 100]", s)
	}
}

func TestRun_SeedChangesStimulus(t *testing.T) {
	a, err := Run(Config{Width: 8, Cycles: 16, Seed: 1, Power: DefaultPowerModel()})
	if err != nil {
		t.Fatal(err)
	}
	b, err := Run(Config{Width: 8, Cycles: 16, Seed: 2, Power: DefaultPowerModel()})
	if err != nil {
		t.Fatal(err)
	}

	same := true
	for i := range a.Cycles {
		if a.Cycles[i].Input != b.Cycles[i].Input {
			same = false
			break
		}
	}
	if same {
		t.Error("different seeds produced identical stimulus")
	}
}

func TestRun_ConfigValidation(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		kind errors.Kind
	}{
		{"zero width", Config{Width: 0, Cycles: 1, Power: DefaultPowerModel()}, errors.KindInvalidWidth},
		{"wide bus", Config{Width: 65, Cycles: 1, Power: DefaultPowerModel()}, errors.KindInvalidWidth},
		{"no cycles", Config{Width: 8, Cycles: 0, Power: DefaultPowerModel()}, errors.KindInvalidCycles},
		{"negative warmup", Config{Width: 8, Cycles: 1, Warmup: -1, Power: DefaultPowerModel()}, errors.KindInvalidCycles},
		{"bad vdd", Config{Width: 8, Cycles: 1, Power: PowerModel{CapacitancePF: 10, VDD: 0, FreqMHz: 100}}, errors.KindInvalidPower},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Run(tt.cfg)
			if err == nil {
				t.Fatal("Run succeeded, want error")
			}
			want := &errors.Error{Phase: errors.PhaseSimulate, Kind: tt.kind}
			if !stderrors.Is(err, want) {
				t.Errorf("error = %v, want simulate/%s", err, tt.kind)
			}
		})
	}
}

func TestPowerModel_EstimateMW(t *testing.T) {
	tests := []struct {
		name        string
		model       PowerModel
		transitions int
		expected    float64
	}{
		{"defaults single transition", DefaultPowerModel(), 1, 1.44},
		{"defaults spec vector", DefaultPowerModel(), 2, 2.88},
		{"zero transitions", DefaultPowerModel(), 0, 0},
		{"unit constants", PowerModel{CapacitancePF: 1, VDD: 1, FreqMHz: 1}, 1000, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.model.EstimateMW(tt.transitions)
			if diff := got - tt.expected; diff > 1e-9 || diff < -1e-9 {
				t.Errorf("EstimateMW(%d) = %v, want %v", tt.transitions, got, tt.expected)
			}
		})
	}
}

func TestTrace_WriteReport(t *testing.T) {
	cfg := Config{Width: 8, Warmup: 2, Cycles: 4, Seed: 3, Power: DefaultPowerModel()}
	trace, err := Run(cfg)
	if err != nil {
		t.Fatal(err)
	}

	var b strings.Builder
	if err := trace.WriteReport(&b); err != nil {
		t.Fatal(err)
	}
	out := b.String()

	for _, want := range []string{
		"bus width 8, 4 cycles, seed 3",
		"C=10.0 pF/line, VDD=1.20 V, f=100.0 MHz",
		"case",
		"scheme",
		"total transitions:",
		"estimated power:",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("report missing %q:\n%s", want, out)
		}
	}

	// One line per cycle plus header and summary.
	for _, c := range trace.Cycles {
		if !strings.Contains(out, c.Input.Bin(8)) {
			t.Errorf("report missing binary dump of input %s", c.Input.Bin(8))
		}
		if !strings.Contains(out, c.State.Scheme.String()) {
			t.Errorf("report missing scheme name %s", c.State.Scheme)
		}
	}
}
