package model

// Charge is a single normalized charge as handed to the engine. The engine
// only reads it.
type Charge struct {
	ID          string       `json:"id,omitempty" yaml:"id,omitempty"`
	CaseNumber  string       `json:"case_number,omitempty" yaml:"case_number,omitempty"`
	Name        string       `json:"name" yaml:"name"`
	Statute     string       `json:"statute" yaml:"statute"`
	Level       string       `json:"level" yaml:"level"`
	Disposition *Disposition `json:"disposition,omitempty" yaml:"disposition,omitempty"`
}

// Ruling returns the disposition ruling, or RulingUnknown when there is no disposition
func (c Charge) Ruling() Ruling {
	if c.Disposition == nil {
		return RulingUnknown
	}
	return c.Disposition.Ruling
}
