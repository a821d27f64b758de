package phase

import "testing"

func TestCanAdvance(t *testing.T) {
	tests := []struct {
		name    string
		current ModulePhase
		next    ModulePhase
		want    bool
	}{
		{"lex from start", PhaseNotStarted, PhaseLexed, true},
		{"parse after lex", PhaseLexed, PhaseParsed, true},
		{"parse before lex", PhaseNotStarted, PhaseParsed, false},
		{"collect after parse", PhaseParsed, PhaseCollected, true},
		{"ir after parse", PhaseParsed, PhaseIRGenerated, true},
		{"ir after collect", PhaseCollected, PhaseIRGenerated, true},
		{"ir before parse", PhaseLexed, PhaseIRGenerated, false},
		{"collect after ir", PhaseIRGenerated, PhaseCollected, false},
		{"same phase", PhaseParsed, PhaseParsed, false},
		{"back to start", PhaseLexed, PhaseNotStarted, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CanAdvance(tt.current, tt.next); got != tt.want {
				t.Errorf("CanAdvance(%s, %s) = %v, want %v", tt.current, tt.next, got, tt.want)
			}
		})
	}
}

func TestModulePhaseString(t *testing.T) {
	if got := PhaseIRGenerated.String(); got != "IRGenerated" {
		t.Errorf("Expected IRGenerated, got %s", got)
	}
	if got := ModulePhase(42).String(); got != "Unknown" {
		t.Errorf("Expected Unknown, got %s", got)
	}
}
