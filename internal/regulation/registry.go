package regulation

import (
	"sort"

	"github.com/irfndi/strmarket-engine/internal/models"
)

const (
	defaultSummary = "No market-specific research on file; treated as permitted with a standard permit process."
	defaultDetails = "This market has not been individually researched. Short-term rentals are assumed to be legal with a " +
		"moderate permitting process, no owner-occupancy requirement, no permit cap and no annual night limit. " +
		"Verify local ordinances, HOA rules and tax registration before investing."
)

// DefaultEntry is the classification returned for every market without a curated entry
func DefaultEntry() models.RegulationEntry {
	return models.RegulationEntry{
		LegalityStatus:        models.LegalityLegal,
		PermitDifficulty:      models.PermitModerate,
		OwnerOccupiedRequired: false,
		PermitCap:             false,
		MaxNightsPerYear:      nil,
		Summary:               defaultSummary,
		Details:               defaultDetails,
	}
}

// Registry is a read-only table of curated STR regulation entries keyed by
// market ID. It is safe for concurrent use once built.
type Registry struct {
	entries map[string]models.RegulationEntry
}

// NewRegistry copies entries into a new registry. Later changes to the
// input map are not visible through the registry.
func NewRegistry(entries map[string]models.RegulationEntry) *Registry {
	table := make(map[string]models.RegulationEntry, len(entries))
	for id, entry := range entries {
		table[id] = copyEntry(entry)
	}
	return &Registry{entries: table}
}

// NewCuratedRegistry builds a registry from the compiled-in curated table
func NewCuratedRegistry() *Registry {
	return NewRegistry(curatedEntries)
}

// Lookup returns the regulation entry for a market ID and where it came from.
// It never fails: unknown IDs resolve to DefaultEntry with SourceDefault.
// Matching is exact; callers build IDs with models.NewMarketID.
func (r *Registry) Lookup(marketID string) (models.RegulationEntry, models.RegulationSource) {
	if r != nil {
		if entry, ok := r.entries[marketID]; ok {
			return copyEntry(entry), models.SourceCurated
		}
	}
	return DefaultEntry(), models.SourceDefault
}

// Has reports whether a curated entry exists for the market ID
func (r *Registry) Has(marketID string) bool {
	if r == nil {
		return false
	}
	_, ok := r.entries[marketID]
	return ok
}

// Keys returns the curated market IDs in sorted order
func (r *Registry) Keys() []string {
	if r == nil {
		return nil
	}
	keys := make([]string, 0, len(r.entries))
	for id := range r.entries {
		keys = append(keys, id)
	}
	sort.Strings(keys)
	return keys
}

// Len returns the number of curated entries
func (r *Registry) Len() int {
	if r == nil {
		return 0
	}
	return len(r.entries)
}

// WithOverrides returns a new registry where the given entries replace or
// extend the receiver's. The receiver is left untouched.
func (r *Registry) WithOverrides(overrides map[string]models.RegulationEntry) *Registry {
	merged := make(map[string]models.RegulationEntry, r.Len()+len(overrides))
	if r != nil {
		for id, entry := range r.entries {
			merged[id] = entry
		}
	}
	for id, entry := range overrides {
		merged[id] = entry
	}
	return NewRegistry(merged)
}

func copyEntry(e models.RegulationEntry) models.RegulationEntry {
	if e.MaxNightsPerYear != nil {
		e.MaxNightsPerYear = models.Nights(*e.MaxNightsPerYear)
	}
	return e
}
