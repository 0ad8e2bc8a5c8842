package model

// EligibilityStatus is the verdict of one evaluation
type EligibilityStatus string

const (
	StatusEligible           EligibilityStatus = "eligible"
	StatusIneligible         EligibilityStatus = "ineligible"
	StatusNeedsMoreAnalysis  EligibilityStatus = "needs_more_analysis"
	StatusUnknownDisposition EligibilityStatus = "unknown_disposition"
)

// Statuses lists every status in declaration order
func Statuses() []EligibilityStatus {
	return []EligibilityStatus{
		StatusEligible,
		StatusIneligible,
		StatusNeedsMoreAnalysis,
		StatusUnknownDisposition,
	}
}

func (s EligibilityStatus) String() string {
	return string(s)
}

// TypeEligibility is a charge type's verdict and the statute-citing reason for it.
// EligibleDate is set when a waiting period will lapse on a known day.
type TypeEligibility struct {
	Status       EligibilityStatus `json:"status" yaml:"status"`
	Reason       string            `json:"reason" yaml:"reason"`
	EligibleDate Date              `json:"eligible_date,omitzero" yaml:"eligible_date,omitempty"`
}

// ExpungementResult is the engine's answer for one charge
type ExpungementResult struct {
	ChargeID        string          `json:"charge_id,omitempty" yaml:"charge_id,omitempty"`
	CaseNumber      string          `json:"case_number,omitempty" yaml:"case_number,omitempty"`
	TypeName        string          `json:"type_name" yaml:"type_name"`
	TypeEligibility TypeEligibility `json:"type_eligibility" yaml:"type_eligibility"`
	Statute         string          `json:"statute" yaml:"statute"`
	StatuteRange    string          `json:"statute_range,omitempty" yaml:"statute_range,omitempty"`
	EvaluatedOn     Date            `json:"evaluated_on" yaml:"evaluated_on"`
}
