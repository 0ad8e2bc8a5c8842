package classify

import (
	"fmt"
	"regexp"

	"github.com/nickbeaird/recordexpungPDX/internal/model"
	"github.com/nickbeaird/recordexpungPDX/internal/statute"
)

// sexOffenseName forces a felony charge into the person-crime class even when
// its statute is coded outside the person-crime ranges. Keywords match whole
// words only, so "Drapery" or "grapes" never trigger it.
var sexOffenseName = regexp.MustCompile(`(?i)\b(rape|sodomy|unlawful\s+sexual\s+penetration|sexual\s+abuse)\b`)

// Classification is the outcome of classifying one charge
type Classification struct {
	Type    model.ChargeType
	Statute statute.Statute
	Range   *statute.Range // matching reference range, nil if none
}

// Classifier maps charges onto charge types
type Classifier struct {
	table *statute.Table
}

// NewClassifier creates a classifier backed by table, or the default ORS table when nil
func NewClassifier(table *statute.Table) *Classifier {
	if table == nil {
		table = statute.DefaultTable()
	}
	return &Classifier{table: table}
}

// Table returns the reference table the classifier consults
func (c *Classifier) Table() *statute.Table {
	return c.table
}

// Classify picks exactly one charge type for a charge. The first matching rule wins:
//  1. felony sex-offense names
//  2. person-crime statute ranges
//  3. mistaken or removed charges
//  4. restricted (DUII-class) statute ranges
//  5. violation levels
//  6. vehicle code statutes
//  7. unclassified fallback
//
// A statute that does not parse is an error; it is never defaulted.
func (c *Classifier) Classify(charge model.Charge) (Classification, error) {
	st, err := statute.Parse(charge.Statute)
	if err != nil {
		return Classification{}, fmt.Errorf("classify %q: %w", charge.Name, err)
	}

	level := model.ParseLevel(charge.Level)
	result := Classification{
		Type:    model.ChargeType{Kind: model.KindUnclassifiedCrime, Level: level},
		Statute: st,
	}
	if r, ok := c.table.Lookup(st); ok {
		result.Range = &r
	}

	// Named sex offenses are sometimes coded outside the numeric ranges
	if level.IsFelony() && isSexOffenseName(charge.Name) {
		result.Type.Kind = model.KindPersonCrime
		return result, nil
	}

	if _, ok := c.table.LookupCategory(statute.CategoryPersonCrime, st); ok {
		result.Type.Kind = model.KindPersonCrime
		return result, nil
	}

	if charge.Ruling() == model.RulingMistaken {
		result.Type.Kind = model.KindMistakenOrRemovedCharge
		return result, nil
	}

	if _, ok := c.table.LookupCategory(statute.CategoryRestricted, st); ok {
		result.Type.Kind = model.KindSubjectToRestrictionsCrime
		return result, nil
	}

	if level.IsViolation() {
		result.Type.Kind = model.KindViolation
		return result, nil
	}

	if _, ok := c.table.LookupCategory(statute.CategoryTrafficCrime, st); ok {
		result.Type.Kind = model.KindTrafficOffense
		return result, nil
	}

	return result, nil
}

func isSexOffenseName(name string) bool {
	return sexOffenseName.MatchString(name)
}
