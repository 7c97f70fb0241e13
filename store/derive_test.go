package store

import (
	"testing"

	"sporelia/models"

	"github.com/stretchr/testify/assert"
)

func TestDynamicPlantTypes(t *testing.T) {
	plants := []models.Plant{
		{ID: "M-001", PlantType: "Monstera"},
		{ID: "A-001", PlantType: "Alocasia"},
		{ID: "M-002", PlantType: "Monstera"},
		{ID: "U-001"},
		{ID: "H-001", PlantType: "Hoya"},
	}

	assert.Equal(t, []string{"Uncategorized", "Alocasia", "Hoya", "Monstera"}, DynamicPlantTypes(plants))
}

func TestDynamicPlantTypes_Empty(t *testing.T) {
	assert.Empty(t, DynamicPlantTypes(nil))
}

func TestDynamicPlantTypes_BlankTypeCountsAsUncategorized(t *testing.T) {
	plants := []models.Plant{{ID: "U-001", PlantType: ""}}
	assert.Equal(t, []string{"Uncategorized"}, DynamicPlantTypes(plants))
}

func TestDynamicPlantTypes_SortedWithoutUncategorized(t *testing.T) {
	plants := []models.Plant{
		{ID: "C-001", PlantType: "Cactus"},
		{ID: "B-001", PlantType: "Begonia"},
	}
	assert.Equal(t, []string{"Begonia", "Cactus"}, DynamicPlantTypes(plants))
}
