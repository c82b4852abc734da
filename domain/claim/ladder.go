package claim

// LadderDisplay pairs the human-readable label for a rung with its UI style
// tag. The two always come from the same switch so they cannot diverge.
type LadderDisplay struct {
	Label string
	Style string
}

// DisplayForRung maps a rung to its display pair. Unrecognized or absent
// rungs fall open to the association-level pair: the ladder is advisory
// display, not a gate.
func DisplayForRung(r Rung) LadderDisplay {
	switch r {
	case RungIntervention:
		return LadderDisplay{Label: "Intervention", Style: "rung-l2"}
	case RungCounterfactual:
		return LadderDisplay{Label: "Counterfactual", Style: "rung-l3"}
	default:
		return LadderDisplay{Label: "Association", Style: "rung-l1"}
	}
}
