package phase

// ModulePhase tracks how far a compilation unit has progressed through the pipeline.
//
// Progression is forward only:
// - NotStarted -> Lexed -> Parsed -> IRGenerated
// - Parsed -> Collected -> IRGenerated when symbol collection is requested
//
// Transitions are validated by CanAdvance against PhasePrerequisites.
type ModulePhase int

const (
	PhaseNotStarted  ModulePhase = iota // Source read but not processed
	PhaseLexed                          // Tokens generated
	PhaseParsed                         // AST built
	PhaseCollected                      // Symbols collected into the table
	PhaseIRGenerated                    // Three-address code generated
)

// PhasePrerequisites maps each phase to the minimum phase the unit must have reached
// before entering it. Collection is optional, so IR generation only requires an AST.
var PhasePrerequisites = map[ModulePhase]ModulePhase{
	PhaseLexed:       PhaseNotStarted,
	PhaseParsed:      PhaseLexed,
	PhaseCollected:   PhaseParsed,
	PhaseIRGenerated: PhaseParsed,
}

// CanAdvance reports whether a unit at current may move to next.
func CanAdvance(current, next ModulePhase) bool {
	required, ok := PhasePrerequisites[next]
	if !ok {
		return false
	}
	return next > current && current >= required
}

func (p ModulePhase) String() string {
	switch p {
	case PhaseNotStarted:
		return "NotStarted"
	case PhaseLexed:
		return "Lexed"
	case PhaseParsed:
		return "Parsed"
	case PhaseCollected:
		return "Collected"
	case PhaseIRGenerated:
		return "IRGenerated"
	default:
		return "Unknown"
	}
}
