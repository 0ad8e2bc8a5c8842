package eligibility

import "github.com/nickbeaird/recordexpungPDX/internal/model"

// waitingPeriod is the time a conviction of a given level must age before set-aside
type waitingPeriod struct {
	years    int
	citation string
	barred   bool // never eligible at this level
}

var felonyPeriods = map[model.Class]waitingPeriod{
	model.ClassA: {citation: "137.225(6)(a)", barred: true},
	model.ClassB: {years: 7, citation: "137.225(1)(b)(A)"},
	model.ClassC: {years: 5, citation: "137.225(1)(b)(B)"},
}

var misdemeanorPeriods = map[model.Class]waitingPeriod{
	model.ClassA:            {years: 3, citation: "137.225(1)(b)(C)"},
	model.ClassB:            {years: 1, citation: "137.225(1)(b)(D)"},
	model.ClassC:            {years: 1, citation: "137.225(1)(b)(D)"},
	model.ClassUnclassified: {years: 1, citation: "137.225(1)(b)(D)"},
}

// waitingPeriodFor returns false when the level does not determine a period,
// e.g. an unclassified felony or an unreadable label
func waitingPeriodFor(level model.Level) (waitingPeriod, bool) {
	var p waitingPeriod
	var ok bool
	switch level.Severity {
	case model.SeverityFelony:
		p, ok = felonyPeriods[level.Class]
	case model.SeverityMisdemeanor:
		p, ok = misdemeanorPeriods[level.Class]
	}
	return p, ok
}
