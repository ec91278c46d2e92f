package sim

// assessRule pairs a summary predicate with its conclusion text.
// Rules within a group are mutually exclusive; groups are independent.
type assessRule struct {
	applies func(RunSummary) bool
	message string
}

var assessRules = []assessRule{
	// Shortfall group: exactly one fires.
	{
		applies: func(s RunSummary) bool { return s.TotalShortfall == 0 },
		message: "No shortfall occurred: the (s, Q) policy is conservative.",
	},
	{
		applies: func(s RunSummary) bool { return s.TotalShortfall > 0 && s.TotalShortfall < 10 },
		message: "Shortfall is low: a small adjustment to Q may be enough.",
	},
	{
		applies: func(s RunSummary) bool { return s.TotalShortfall >= 10 },
		message: "Shortfall is significant: consider raising s or Q.",
	},
	// Reorder-pressure group: at most one fires. The 40% threshold is
	// strict, so landing exactly on it draws no conclusion.
	{
		applies: func(s RunSummary) bool { return float64(s.ReorderDays) > 0.4*float64(s.Horizon) },
		message: "Orders trigger on too many days: s is too low.",
	},
	{
		applies: func(s RunSummary) bool { return s.ReorderDays == 0 },
		message: "An order never triggers: s is too high.",
	},
}

// Assess maps a run summary to human-readable policy conclusions.
// Pure: same summary in, same messages out, in rule-table order.
func Assess(s RunSummary) []string {
	var out []string
	for _, rule := range assessRules {
		if rule.applies(s) {
			out = append(out, rule.message)
		}
	}
	return out
}
