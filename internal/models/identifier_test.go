package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewMarketID(t *testing.T) {
	tests := []struct {
		name     string
		state    string
		city     string
		expected string
	}{
		{name: "simple", state: "CA", city: "Irvine", expected: "ca-irvine"},
		{name: "multi word city", state: "CA", city: "San Diego", expected: "ca-san-diego"},
		{name: "extra whitespace", state: " tx ", city: "  Fort   Worth ", expected: "tx-fort-worth"},
		{name: "abbreviation", state: "UT", city: "St. George", expected: "ut-st-george"},
		{name: "apostrophe", state: "ID", city: "Coeur d'Alene", expected: "id-coeur-dalene"},
		{name: "accented", state: "CA", city: "Cañon City", expected: "ca-canon-city"},
		{name: "hyphenated city", state: "NC", city: "Winston-Salem", expected: "nc-winston-salem"},
		{name: "missing state", state: "", city: "Austin", expected: "austin"},
		{name: "missing city", state: "TX", city: "", expected: "tx"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, NewMarketID(tc.state, tc.city))
		})
	}
}

func TestNewMarketID_Stable(t *testing.T) {
	first := NewMarketID("FL", "Panama City Beach")
	second := NewMarketID("fl", "panama city beach")
	assert.Equal(t, first, second)
	assert.Equal(t, "fl-panama-city-beach", first)
}

func TestDisplayName(t *testing.T) {
	assert.Equal(t, "San Diego", DisplayName("san diego"))
	assert.Equal(t, "Lake Havasu City", DisplayName("  lake havasu city "))
}
