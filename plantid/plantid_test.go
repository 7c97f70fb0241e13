package plantid

import (
	"fmt"
	"testing"

	"sporelia/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func collection() []models.Plant {
	return []models.Plant{
		{ID: "A-001", Name: "Monstera Deliciosa", Species: "Monstera deliciosa", PlantType: "Aroids"},
		{ID: "A-002", Name: "Pothos", Species: "Epipremnum aureum", PlantType: "Aroids"},
		{ID: "C-001", Name: "Barrel Cactus", Species: "Ferocactus", PlantType: "Cacti"},
		{ID: "A-001-C01", Name: "Monstera Cutting", Species: "Monstera deliciosa", PlantType: "Aroids", ParentPlantID: "A-001"},
	}
}

func TestNextRootID(t *testing.T) {
	plants := collection()

	assert.Equal(t, "A-003", NextRootID(plants, "Aroids"))
	assert.Equal(t, "C-002", NextRootID(plants, "Cacti"))
	assert.Equal(t, "O-001", NextRootID(plants, "Orchids"))
	assert.Equal(t, "F-001", NextRootID(nil, "Ficus"))
}

func TestNextRootID_UnknownTypeUsesDefaultPrefix(t *testing.T) {
	assert.Equal(t, "U-001", NextRootID(nil, "Bromeliads"))
	assert.Equal(t, "U-001", NextRootID(nil, ""))

	plants := []models.Plant{{ID: "U-007", PlantType: "Mystery"}}
	assert.Equal(t, "U-008", NextRootID(plants, "AnotherMystery"))
}

func TestNextRootID_DeterministicForSameSnapshot(t *testing.T) {
	plants := collection()
	assert.Equal(t, NextRootID(plants, "Aroids"), NextRootID(plants, "Aroids"))
}

func TestNextRootID_IgnoresCuttingsAndOtherPrefixes(t *testing.T) {
	plants := []models.Plant{
		{ID: "A-001-C05"},
		{ID: "C-099"},
		{ID: "A-xyz"},
	}
	assert.Equal(t, "A-001", NextRootID(plants, "Aroids"))
}

func TestNextRootID_UniquenessWhenFedBack(t *testing.T) {
	plants := []models.Plant{}
	seen := map[string]bool{}
	for i := 0; i < 25; i++ {
		id := NextRootID(plants, "Hoyas")
		require.False(t, seen[id], "duplicate id %s", id)
		seen[id] = true
		plants = append(plants, models.Plant{ID: id, PlantType: "Hoyas"})
	}
	assert.Equal(t, "H-025", plants[len(plants)-1].ID)
}

func TestDeriveChildID(t *testing.T) {
	plants := collection()

	assert.Equal(t, "A-001-C02", DeriveChildID(plants, "A-001"))
	assert.Equal(t, "C-001-C01", DeriveChildID(plants, "C-001"))
}

func TestDeriveChildID_MonotonicChain(t *testing.T) {
	plants := []models.Plant{{ID: "A-001", PlantType: "Aroids"}}
	for i := 1; i <= 5; i++ {
		id := DeriveChildID(plants, "A-001")
		require.Equal(t, fmt.Sprintf("A-001-C%02d", i), id)
		plants = append(plants, models.Plant{ID: id, ParentPlantID: "A-001"})
	}
}

func TestIsValidPlantID(t *testing.T) {
	assert.True(t, IsValidPlantID("A-001"))
	assert.True(t, IsValidPlantID("A-001-C01"))
	assert.True(t, IsValidPlantID("A-001-C01-C02"))
	assert.False(t, IsValidPlantID("INVALID"))
	assert.False(t, IsValidPlantID("A-1"))
	assert.False(t, IsValidPlantID("AB-001"))
	assert.False(t, IsValidPlantID(""))
}

func TestPlantTypeFromID(t *testing.T) {
	assert.Equal(t, "Aroids", PlantTypeFromID("A-001"))
	assert.Equal(t, "Cacti", PlantTypeFromID("C-001"))
	assert.Equal(t, "", PlantTypeFromID("Z-001"))
	assert.Equal(t, "", PlantTypeFromID(""))
}
