package worker

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/nickbeaird/recordexpungPDX/internal/model"
)

// chargeNamespace seeds deterministic charge IDs
var chargeNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://github.com/nickbeaird/recordexpungPDX/charge"))

// LoadedCharge is a charge read from a file. Err is set when the entry could
// not be turned into a charge; the rest of the file is still usable.
type LoadedCharge struct {
	Index  int
	Source string
	Charge model.Charge
	Err    error
}

// chargeFile is the on-disk layout; JSON files are read by the same decoder
type chargeFile struct {
	Charges []rawCharge `yaml:"charges"`
}

type rawCharge struct {
	ID          string          `yaml:"id"`
	CaseNumber  string          `yaml:"case_number"`
	Name        string          `yaml:"name"`
	Statute     string          `yaml:"statute"`
	Level       string          `yaml:"level"`
	Disposition *rawDisposition `yaml:"disposition"`
}

type rawDisposition struct {
	Ruling string `yaml:"ruling"`
	Date   string `yaml:"date"`
}

// ReadChargesFromFile reads a YAML or JSON charge file
func ReadChargesFromFile(filePath string) ([]LoadedCharge, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}
	return ParseCharges(filePath, data)
}

// ParseCharges decodes a charge document. source labels the charges and seeds
// their IDs.
func ParseCharges(source string, data []byte) ([]LoadedCharge, error) {
	var doc chargeFile
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decode %s: %w", source, err)
	}

	charges := make([]LoadedCharge, len(doc.Charges))
	for i, raw := range doc.Charges {
		charge, err := raw.toCharge()
		if charge.ID == "" {
			charge.ID = chargeID(source, i, raw)
		}
		if err != nil {
			err = fmt.Errorf("%s: charge %d: %w", source, i, err)
		}
		charges[i] = LoadedCharge{
			Index:  i,
			Source: source,
			Charge: charge,
			Err:    err,
		}
	}
	return charges, nil
}

func (r rawCharge) toCharge() (model.Charge, error) {
	charge := model.Charge{
		ID:         strings.TrimSpace(r.ID),
		CaseNumber: strings.TrimSpace(r.CaseNumber),
		Name:       strings.TrimSpace(r.Name),
		Statute:    strings.TrimSpace(r.Statute),
		Level:      strings.TrimSpace(r.Level),
	}
	if r.Disposition == nil {
		return charge, nil
	}

	disp, err := model.ParseDisposition(r.Disposition.Ruling, r.Disposition.Date)
	if err != nil {
		return charge, err
	}
	charge.Disposition = &disp
	return charge, nil
}

// chargeID derives a stable ID so re-running a file yields identical output
func chargeID(source string, index int, r rawCharge) string {
	parts := []string{source, strconv.Itoa(index), r.CaseNumber, r.Name, r.Statute, r.Level}
	return uuid.NewSHA1(chargeNamespace, []byte(strings.Join(parts, "\x00"))).String()
}
