package regulation

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/irfndi/strmarket-engine/internal/models"
	"github.com/irfndi/strmarket-engine/internal/utils"
)

// overridesFile is the on-disk shape of a regulation overrides file:
//
//	markets:
//	  ca-irvine:
//	    legality_status: banned
//	    permit_difficulty: very_hard
//	    max_nights_per_year: 0
//	    last_verified: 2025-03-01
type overridesFile struct {
	Markets map[string]models.RegulationEntry `yaml:"markets"`
}

// LoadOverrides reads curated entries from a YAML file. Entries are checked
// for known enum values and canonical keys before being returned.
func LoadOverrides(path string, logger *logrus.Logger) (map[string]models.RegulationEntry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read regulation overrides %s: %w", path, err)
	}

	entries, err := ParseOverrides(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse regulation overrides %s: %w", path, err)
	}

	if logger != nil {
		logger.WithFields(logrus.Fields{
			"path":    path,
			"entries": len(entries),
		}).Info("Loaded regulation overrides")
	}
	return entries, nil
}

// ParseOverrides decodes and validates an overrides document
func ParseOverrides(data []byte) (map[string]models.RegulationEntry, error) {
	var doc overridesFile
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}

	for id, entry := range doc.Markets {
		if err := validateEntry(id, entry); err != nil {
			return nil, err
		}
	}
	if doc.Markets == nil {
		doc.Markets = map[string]models.RegulationEntry{}
	}
	return doc.Markets, nil
}

func validateEntry(id string, e models.RegulationEntry) error {
	if canonical := models.NewMarketID("", id); canonical != id {
		return utils.NewValidationErrorf("market %q: key is not a canonical market id (want %q)", id, canonical)
	}
	if !e.LegalityStatus.Valid() {
		return utils.NewValidationErrorf("market %q: unknown legality_status %q", id, e.LegalityStatus)
	}
	if !e.PermitDifficulty.Valid() {
		return utils.NewValidationErrorf("market %q: unknown permit_difficulty %q", id, e.PermitDifficulty)
	}
	if e.MaxNightsPerYear != nil && *e.MaxNightsPerYear < 0 {
		return utils.NewValidationErrorf("market %q: max_nights_per_year must not be negative", id)
	}
	if e.LegalityStatus == models.LegalityBanned && e.MaxNightsPerYear != nil && *e.MaxNightsPerYear != 0 {
		return utils.NewValidationErrorf("market %q: banned market cannot allow %d nights", id, *e.MaxNightsPerYear)
	}
	return nil
}
