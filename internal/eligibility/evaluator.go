// Package eligibility holds the statutory set-aside rules, one per charge type.
//
// Every function here is pure: the evaluation day is a parameter and nothing
// reads the wall clock, so the same inputs always produce the same verdict.
package eligibility

import "github.com/nickbeaird/recordexpungPDX/internal/model"

// Reasons shared by several rules
const (
	ReasonPersonCrime        = "Ineligible under 137.225(5)"
	ReasonNonConviction      = "Eligible under 137.225(1)(d)"
	ReasonUnknownDisposition = "Disposition not found. Needs further analysis"
	ReasonUndatedConviction  = "Conviction date not found. Needs further analysis"
)

// EvaluateTypeEligibility applies the rule owned by the charge type's kind.
// A nil disposition is valid input.
func EvaluateTypeEligibility(t model.ChargeType, disp *model.Disposition, today model.Date) model.TypeEligibility {
	switch t.Kind {
	case model.KindPersonCrime:
		return evaluatePersonCrime()
	case model.KindSubjectToRestrictionsCrime:
		return evaluateSubjectToRestrictions(disp, today)
	case model.KindTrafficOffense:
		return evaluateTrafficOffense()
	case model.KindViolation:
		return evaluateViolation()
	case model.KindMistakenOrRemovedCharge:
		return evaluateMistakenOrRemoved()
	default:
		return evaluateUnclassified(t.Level, disp, today)
	}
}

func eligible(reason string) model.TypeEligibility {
	return model.TypeEligibility{Status: model.StatusEligible, Reason: reason}
}

func ineligible(reason string) model.TypeEligibility {
	return model.TypeEligibility{Status: model.StatusIneligible, Reason: reason}
}

func needsMoreAnalysis(reason string) model.TypeEligibility {
	return model.TypeEligibility{Status: model.StatusNeedsMoreAnalysis, Reason: reason}
}

func unknownDisposition(reason string) model.TypeEligibility {
	return model.TypeEligibility{Status: model.StatusUnknownDisposition, Reason: reason}
}
