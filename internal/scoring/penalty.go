package scoring

import (
	"fmt"
	"strings"

	"github.com/irfndi/strmarket-engine/internal/models"
	"github.com/irfndi/strmarket-engine/internal/utils"
)

// PenaltyRules holds the point deductions per regulation classification.
// The status-derived base and the owner-occupancy and permit-cap increments
// add up; nothing is multiplied.
type PenaltyRules struct {
	Banned             int `mapstructure:"banned"`
	RestrictedVeryHard int `mapstructure:"restricted_very_hard"`
	RestrictedHard     int `mapstructure:"restricted_hard"`
	RestrictedUnknown  int `mapstructure:"restricted_unknown"`
	RestrictedModerate int `mapstructure:"restricted_moderate"`
	RestrictedEasy     int `mapstructure:"restricted_easy"`
	Varies             int `mapstructure:"varies"`
	VariesHard         int `mapstructure:"varies_hard"`
	UnknownStatus      int `mapstructure:"unknown_status"`
	Legal              int `mapstructure:"legal"`
	OwnerOccupied      int `mapstructure:"owner_occupied"`
	PermitCap          int `mapstructure:"permit_cap"`
}

// DefaultPenaltyRules returns the stock deductions
func DefaultPenaltyRules() PenaltyRules {
	return PenaltyRules{
		Banned:             60,
		RestrictedVeryHard: 30,
		RestrictedHard:     25,
		RestrictedUnknown:  20,
		RestrictedModerate: 15,
		RestrictedEasy:     10,
		Varies:             8,
		VariesHard:         12,
		UnknownStatus:      5,
		Legal:              0,
		OwnerOccupied:      8,
		PermitCap:          5,
	}
}

// Validate checks that deductions are non-negative and ordered by severity,
// and that a banned market cannot score into the hold band or better.
func (p PenaltyRules) Validate(holdFloor int) error {
	values := map[string]int{
		"banned": p.Banned, "restricted_very_hard": p.RestrictedVeryHard, "restricted_hard": p.RestrictedHard,
		"restricted_unknown": p.RestrictedUnknown, "restricted_moderate": p.RestrictedModerate,
		"restricted_easy": p.RestrictedEasy, "varies": p.Varies, "varies_hard": p.VariesHard,
		"unknown_status": p.UnknownStatus, "legal": p.Legal, "owner_occupied": p.OwnerOccupied,
		"permit_cap": p.PermitCap,
	}
	for name, v := range values {
		if v < 0 {
			return utils.NewFieldError("penalty."+name, "must not be negative")
		}
		if v > models.MaxTotalScore {
			return utils.NewFieldError("penalty."+name, "must not exceed %d", models.MaxTotalScore)
		}
	}

	if !(p.RestrictedVeryHard >= p.RestrictedHard && p.RestrictedHard >= p.RestrictedModerate && p.RestrictedModerate >= p.RestrictedEasy) {
		return utils.NewValidationError("penalty: restricted deductions must not decrease with permit difficulty")
	}
	if p.RestrictedUnknown > p.RestrictedVeryHard || p.RestrictedUnknown < p.RestrictedEasy {
		return utils.NewValidationError("penalty.restricted_unknown must sit between restricted_easy and restricted_very_hard")
	}
	if p.VariesHard < p.Varies {
		return utils.NewValidationError("penalty.varies_hard must be at least penalty.varies")
	}
	for name, v := range values {
		if name != "banned" && v > p.Banned {
			return utils.NewFieldError("penalty."+name, "must not exceed penalty.banned")
		}
	}
	if p.Legal > p.RestrictedEasy {
		return utils.NewValidationError("penalty.legal must not exceed penalty.restricted_easy")
	}
	if models.MaxTotalScore-p.Banned >= holdFloor {
		return utils.NewFieldError("penalty.banned", "must exceed %d so a banned market stays below the hold verdict", models.MaxTotalScore-holdFloor)
	}
	return nil
}

// PenaltyCalculator converts a regulation entry into a score deduction
type PenaltyCalculator struct {
	rules PenaltyRules
}

// NewPenaltyCalculator validates rules against the hold floor and returns a calculator
func NewPenaltyCalculator(rules PenaltyRules, holdFloor int) (*PenaltyCalculator, error) {
	if err := rules.Validate(holdFloor); err != nil {
		return nil, err
	}
	return &PenaltyCalculator{rules: rules}, nil
}

// ComputePenalty returns the deduction for an entry. Applied is false only
// when the deduction is zero.
func (pc *PenaltyCalculator) ComputePenalty(entry models.RegulationEntry) models.RegulationPenalty {
	points := pc.base(entry.LegalityStatus, entry.PermitDifficulty)

	reasons := []string{statusReason(entry)}
	if entry.OwnerOccupiedRequired {
		points += pc.rules.OwnerOccupied
		reasons = append(reasons, "owner occupancy required")
	}
	if entry.PermitCap {
		points += pc.rules.PermitCap
		reasons = append(reasons, "permit cap in effect")
	}
	if points == 0 {
		reasons = append(reasons, "no regulatory deduction")
	}

	return models.RegulationPenalty{
		Applied:          points > 0,
		PointsDeducted:   points,
		Reason:           strings.Join(reasons, "; "),
		LegalityStatus:   entry.LegalityStatus,
		PermitDifficulty: entry.PermitDifficulty,
	}
}

func (pc *PenaltyCalculator) base(status models.LegalityStatus, difficulty models.PermitDifficulty) int {
	r := pc.rules
	switch status {
	case models.LegalityBanned:
		return r.Banned
	case models.LegalityRestricted:
		switch difficulty {
		case models.PermitVeryHard:
			return r.RestrictedVeryHard
		case models.PermitHard:
			return r.RestrictedHard
		case models.PermitModerate:
			return r.RestrictedModerate
		case models.PermitEasy:
			return r.RestrictedEasy
		default:
			return r.RestrictedUnknown
		}
	case models.LegalityVaries:
		if difficulty == models.PermitHard || difficulty == models.PermitVeryHard {
			return r.VariesHard
		}
		return r.Varies
	case models.LegalityLegal:
		return r.Legal
	default:
		return r.UnknownStatus
	}
}

func statusReason(entry models.RegulationEntry) string {
	switch entry.LegalityStatus {
	case models.LegalityBanned:
		return "short-term rentals banned"
	case models.LegalityLegal:
		return "short-term rentals legal"
	case models.LegalityRestricted, models.LegalityVaries:
		difficulty := entry.PermitDifficulty
		if !difficulty.Valid() {
			difficulty = models.PermitUnknown
		}
		return fmt.Sprintf("short-term rentals %s, %s permitting", entry.LegalityStatus, strings.ReplaceAll(string(difficulty), "_", " "))
	default:
		return "legal status unknown"
	}
}
