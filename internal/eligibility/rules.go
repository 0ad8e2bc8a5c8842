package eligibility

import (
	"fmt"

	"github.com/nickbeaird/recordexpungPDX/internal/model"
)

// restrictedLookbackYears is the 137.225(7)(a) look-back for DUII-class convictions
const restrictedLookbackYears = 10

// evaluatePersonCrime is a type bar: the disposition never matters
func evaluatePersonCrime() model.TypeEligibility {
	return ineligible(ReasonPersonCrime)
}

// evaluateSubjectToRestrictions applies the look-back window. It needs a dated
// disposition whatever the ruling.
func evaluateSubjectToRestrictions(disp *model.Disposition, today model.Date) model.TypeEligibility {
	if disp == nil || disp.Ruling == model.RulingUnknown {
		return unknownDisposition(ReasonUnknownDisposition)
	}
	if !disp.HasDate() {
		return unknownDisposition("Disposition date not found. Needs further analysis")
	}

	if !disp.Ruling.IsConviction() {
		return eligible(ReasonNonConviction)
	}

	if disp.IsWithinYears(restrictedLookbackYears, today) {
		result := ineligible(fmt.Sprintf("Ineligible under 137.225(7)(a): conviction within the last %d years", restrictedLookbackYears))
		result.EligibleDate = disp.Anniversary(restrictedLookbackYears)
		return result
	}
	return eligible(fmt.Sprintf("Eligible under 137.225(7)(a): conviction older than %d years", restrictedLookbackYears))
}

func evaluateTrafficOffense() model.TypeEligibility {
	return eligible("Eligible under 137.225(7)(a) traffic carve-out")
}

func evaluateViolation() model.TypeEligibility {
	return eligible("Eligible under 137.225(5)(d)")
}

func evaluateMistakenOrRemoved() model.TypeEligibility {
	return eligible(ReasonNonConviction + ": charge mistaken or removed")
}

// evaluateUnclassified applies the generic conviction-age rule
func evaluateUnclassified(level model.Level, disp *model.Disposition, today model.Date) model.TypeEligibility {
	if disp == nil || disp.Ruling == model.RulingUnknown {
		return unknownDisposition(ReasonUnknownDisposition)
	}

	if disp.Ruling.IsNonConviction() {
		return eligible(ReasonNonConviction)
	}

	period, ok := waitingPeriodFor(level)
	if !ok {
		return needsMoreAnalysis(fmt.Sprintf("Needs more analysis: no waiting period for level %q", level.String()))
	}
	if period.barred {
		return ineligible("Ineligible under " + period.citation)
	}

	if !disp.HasDate() {
		return unknownDisposition(ReasonUndatedConviction)
	}

	elapsed := disp.YearsSince(today)
	if !disp.IsWithinYears(period.years, today) {
		return eligible("Eligible under " + period.citation)
	}

	result := ineligible(fmt.Sprintf("Ineligible under %s: %s required since conviction, %s elapsed",
		period.citation, pluralYears(period.years), pluralYears(max(elapsed, 0))))
	result.EligibleDate = disp.Anniversary(period.years)
	return result
}

func pluralYears(n int) string {
	if n == 1 {
		return "1 year"
	}
	return fmt.Sprintf("%d years", n)
}
