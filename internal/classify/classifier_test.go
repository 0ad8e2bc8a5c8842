package classify

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/nickbeaird/recordexpungPDX/internal/model"
	"github.com/nickbeaird/recordexpungPDX/internal/statute"
)

type ClassifierSuite struct {
	suite.Suite
	classifier *Classifier
}

func TestClassifierSuite(t *testing.T) {
	suite.Run(t, new(ClassifierSuite))
}

func (s *ClassifierSuite) SetupTest() {
	s.classifier = NewClassifier(nil)
}

func (s *ClassifierSuite) classify(name, st, level string, disp *model.Disposition) Classification {
	c, err := s.classifier.Classify(model.Charge{Name: name, Statute: st, Level: level, Disposition: disp})
	s.Require().NoError(err)
	return c
}

func convicted() *model.Disposition {
	return &model.Disposition{Ruling: model.RulingConvicted, Date: model.NewDate(2015, 1, 1)}
}

func mistaken() *model.Disposition {
	return &model.Disposition{Ruling: model.RulingMistaken, Date: model.NewDate(2015, 1, 1)}
}

func (s *ClassifierSuite) TestPersonCrimeRanges() {
	for _, st := range []string{
		"163.305", "163.415", "163.479",
		"163.670", "163.693",
		"167.008", "167.057", "167.080", "167.107",
	} {
		s.Run(st, func() {
			c := s.classify("", st, "Misdemeanor Class A", convicted())
			s.Equal(model.KindPersonCrime, c.Type.Kind)
			s.Equal("Person Crime", c.Type.TypeName())
			s.Require().NotNil(c.Range)
			s.Equal(statute.CategoryPersonCrime, c.Range.Category)
		})
	}
}

func (s *ClassifierSuite) TestJustOutsidePersonCrimeRanges() {
	for _, st := range []string{"163.304", "163.480", "163.669", "163.694", "167.007", "167.108"} {
		s.Run(st, func() {
			c := s.classify("", st, "Misdemeanor Class A", convicted())
			s.Equal(model.KindUnclassifiedCrime, c.Type.Kind)
			s.Nil(c.Range)
		})
	}
}

func (s *ClassifierSuite) TestSexOffenseNameOverride() {
	s.Run("felony rape outside the ranges", func() {
		c := s.classify("Rape in the First Degree", "164.043", "Felony Class A", convicted())
		s.Equal(model.KindPersonCrime, c.Type.Kind)
	})

	s.Run("keywords ignore case", func() {
		c := s.classify("UNLAWFUL SEXUAL PENETRATION II", "999.999", "Felony Class B", convicted())
		s.Equal(model.KindPersonCrime, c.Type.Kind)
	})

	s.Run("name wins over traffic statute", func() {
		c := s.classify("Sexual Abuse", "811.140", "Felony Class C", convicted())
		s.Equal(model.KindPersonCrime, c.Type.Kind)
	})

	s.Run("keywords match whole words only", func() {
		for _, name := range []string{
			"Theft in the First Degree (grapes)",
			"Criminal Mischief - Drapery",
			"Attempted Scrape",
			"Sodomyx",
		} {
			c := s.classify(name, "164.055", "Felony Class C", convicted())
			s.Equal(model.KindUnclassifiedCrime, c.Type.Kind, name)
		}
	})

	s.Run("keyword next to punctuation", func() {
		c := s.classify("Attempted Rape-II", "164.055", "Felony Class C", convicted())
		s.Equal(model.KindPersonCrime, c.Type.Kind)
	})

	s.Run("name and statute agree", func() {
		c := s.classify("Rape in the Third Degree", "163.355", "Felony Class C", convicted())
		s.Equal(model.KindPersonCrime, c.Type.Kind)
		s.Require().NotNil(c.Range)
		s.Equal("Sexual offenses", c.Range.Name)
	})

	s.Run("misdemeanor with keyword is not overridden", func() {
		c := s.classify("Sexual Abuse in the Third Degree", "164.043", "Misdemeanor Class A", convicted())
		s.Equal(model.KindUnclassifiedCrime, c.Type.Kind)
	})
}

func (s *ClassifierSuite) TestMistaken() {
	s.Run("mistaken outside the ranges", func() {
		c := s.classify("", "164.043", "Misdemeanor Class A", mistaken())
		s.Equal(model.KindMistakenOrRemovedCharge, c.Type.Kind)
	})

	s.Run("person crime wins over mistaken", func() {
		c := s.classify("", "163.415", "Misdemeanor Class A", mistaken())
		s.Equal(model.KindPersonCrime, c.Type.Kind)
	})

	s.Run("mistaken wins over restricted", func() {
		c := s.classify("", "813.010", "Misdemeanor Class A", mistaken())
		s.Equal(model.KindMistakenOrRemovedCharge, c.Type.Kind)
	})
}

func (s *ClassifierSuite) TestRestricted() {
	for _, st := range []string{"813.010", "813.011", "811.182"} {
		s.Run(st, func() {
			c := s.classify("", st, "Misdemeanor Class A", convicted())
			s.Equal(model.KindSubjectToRestrictionsCrime, c.Type.Kind)
			s.Equal(statute.CategoryRestricted, c.Range.Category)
		})
	}

	s.Run("restricted wins over violation level", func() {
		c := s.classify("", "813.010", "Violation Class A", convicted())
		s.Equal(model.KindSubjectToRestrictionsCrime, c.Type.Kind)
	})
}

func (s *ClassifierSuite) TestViolation() {
	s.Run("violation outside the ranges", func() {
		c := s.classify("", "166.025", "Violation Class B", convicted())
		s.Equal(model.KindViolation, c.Type.Kind)
	})

	s.Run("violation wins over traffic", func() {
		c := s.classify("", "811.100", "Violation Class B", convicted())
		s.Equal(model.KindViolation, c.Type.Kind)
	})
}

func (s *ClassifierSuite) TestTraffic() {
	for _, st := range []string{"801.000", "811.140", "813.012", "825.999"} {
		s.Run(st, func() {
			c := s.classify("", st, "Misdemeanor Class A", convicted())
			s.Equal(model.KindTrafficOffense, c.Type.Kind)
			s.Equal("Oregon Vehicle Code", c.Range.Name)
		})
	}
}

func (s *ClassifierSuite) TestUnclassifiedCarriesLevel() {
	c := s.classify("Theft in the First Degree", "164.055", "Felony Class C", convicted())
	s.Equal(model.KindUnclassifiedCrime, c.Type.Kind)
	s.Equal(model.Level{Severity: model.SeverityFelony, Class: model.ClassC}, c.Type.Level)
	s.Equal("164.055", c.Statute.String())
}

func (s *ClassifierSuite) TestMissingDispositionStillClassifies() {
	c := s.classify("", "813.010", "Misdemeanor Class A", nil)
	s.Equal(model.KindSubjectToRestrictionsCrime, c.Type.Kind)
}

func (s *ClassifierSuite) TestMalformedStatute() {
	for _, st := range []string{"", "abc", "163", "163.4a"} {
		s.Run(st, func() {
			_, err := s.classifier.Classify(model.Charge{Name: "Theft", Statute: st, Level: "Felony Class C"})
			s.Require().Error(err)
			s.True(errors.Is(err, statute.ErrMalformedStatute))
		})
	}
}

func (s *ClassifierSuite) TestDeterministic() {
	charge := model.Charge{Name: "DUII", Statute: "813.010", Level: "Misdemeanor Class A", Disposition: convicted()}

	first, err := s.classifier.Classify(charge)
	s.Require().NoError(err)
	for i := 0; i < 10; i++ {
		again, err := s.classifier.Classify(charge)
		s.Require().NoError(err)
		s.Equal(first, again)
	}
}

func (s *ClassifierSuite) TestCustomTable() {
	table := statute.NewTable(statute.Range{
		Name:     "Custom",
		Category: statute.CategoryPersonCrime,
		Min:      statute.MustParse("164.000"),
		Max:      statute.MustParse("164.999"),
	})
	classifier := NewClassifier(table)
	s.Same(table, classifier.Table())

	c, err := classifier.Classify(model.Charge{Statute: "164.043", Level: "Misdemeanor Class A"})
	s.Require().NoError(err)
	s.Equal(model.KindPersonCrime, c.Type.Kind)

	c, err = classifier.Classify(model.Charge{Statute: "163.415", Level: "Misdemeanor Class A"})
	s.Require().NoError(err)
	s.Equal(model.KindUnclassifiedCrime, c.Type.Kind)
}
