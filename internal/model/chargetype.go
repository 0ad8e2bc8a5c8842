package model

// Kind identifies one variant of the closed set of charge types.
// Each kind owns exactly one eligibility rule.
type Kind int

const (
	KindUnclassifiedCrime Kind = iota
	KindPersonCrime
	KindSubjectToRestrictionsCrime
	KindTrafficOffense
	KindViolation
	KindMistakenOrRemovedCharge
)

// Kinds lists every charge type kind in declaration order
func Kinds() []Kind {
	return []Kind{
		KindUnclassifiedCrime,
		KindPersonCrime,
		KindSubjectToRestrictionsCrime,
		KindTrafficOffense,
		KindViolation,
		KindMistakenOrRemovedCharge,
	}
}

// TypeName is the user-facing label. It appears verbatim in output and must not change.
func (k Kind) TypeName() string {
	switch k {
	case KindPersonCrime:
		return "Person Crime"
	case KindSubjectToRestrictionsCrime:
		return "Subject To Restrictions Crime"
	case KindTrafficOffense:
		return "Traffic Offense"
	case KindViolation:
		return "Violation"
	case KindMistakenOrRemovedCharge:
		return "Mistaken Or Removed Charge"
	default:
		return "Unclassified Crime"
	}
}

func (k Kind) String() string {
	return k.TypeName()
}

// ChargeType is the classification of a charge. Level is carried for the
// unclassified fallback, whose waiting period depends on it.
type ChargeType struct {
	Kind  Kind
	Level Level
}

// TypeName returns the label of the charge type's kind
func (t ChargeType) TypeName() string {
	return t.Kind.TypeName()
}
