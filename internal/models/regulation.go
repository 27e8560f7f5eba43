package models

import "time"

// LegalityStatus is the coarse STR legality classification of a jurisdiction
type LegalityStatus string

const (
	LegalityBanned     LegalityStatus = "banned"
	LegalityRestricted LegalityStatus = "restricted"
	LegalityLegal      LegalityStatus = "legal"
	LegalityVaries     LegalityStatus = "varies"
	LegalityUnknown    LegalityStatus = "unknown"
)

// Valid reports whether the status is one of the known values
func (s LegalityStatus) Valid() bool {
	switch s {
	case LegalityBanned, LegalityRestricted, LegalityLegal, LegalityVaries, LegalityUnknown:
		return true
	}
	return false
}

// PermitDifficulty is the friction to legally obtain an STR permit
type PermitDifficulty string

const (
	PermitEasy     PermitDifficulty = "easy"
	PermitModerate PermitDifficulty = "moderate"
	PermitHard     PermitDifficulty = "hard"
	PermitVeryHard PermitDifficulty = "very_hard"
	PermitUnknown  PermitDifficulty = "unknown"
)

// Valid reports whether the difficulty is one of the known values
func (d PermitDifficulty) Valid() bool {
	switch d {
	case PermitEasy, PermitModerate, PermitHard, PermitVeryHard, PermitUnknown:
		return true
	}
	return false
}

// RegulationSource tells the caller whether an entry was researched or defaulted.
// It is attached at lookup time and never stored in the table.
type RegulationSource string

const (
	SourceCurated RegulationSource = "curated"
	SourceDefault RegulationSource = "default"
)

// RegulationEntry is the STR legal/permitting profile of a jurisdiction.
// MaxNightsPerYear is nil when there is no night cap.
type RegulationEntry struct {
	LegalityStatus        LegalityStatus   `json:"legality_status" yaml:"legality_status"`
	PermitDifficulty      PermitDifficulty `json:"permit_difficulty" yaml:"permit_difficulty"`
	OwnerOccupiedRequired bool             `json:"owner_occupied_required" yaml:"owner_occupied_required"`
	PermitCap             bool             `json:"permit_cap" yaml:"permit_cap"`
	MaxNightsPerYear      *int             `json:"max_nights_per_year" yaml:"max_nights_per_year"`
	Summary               string           `json:"summary" yaml:"summary"`
	Details               string           `json:"details" yaml:"details"`
	LastVerified          time.Time        `json:"last_verified" yaml:"last_verified"`
}

// HasNightCap reports whether the jurisdiction limits rentable nights per year
func (e RegulationEntry) HasNightCap() bool {
	return e.MaxNightsPerYear != nil
}

// Nights is a helper for authoring entries with a night cap
func Nights(n int) *int {
	return &n
}
