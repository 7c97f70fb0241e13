package store

import (
	"testing"

	"sporelia/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func plant(id, plantType string) models.Plant {
	return models.Plant{ID: id, Name: "Plant " + id, Species: "Testus plantus", PlantType: plantType, AcquisitionDate: "2024-01-01"}
}

func TestStore_StartMarksOperationLoading(t *testing.T) {
	s := NewStore()
	s.Dispatch(Start{Operation: OpAddPlant})

	st := s.State()
	assert.True(t, st.IsLoading)
	assert.Empty(t, st.Err)
	assert.True(t, st.Operations[OpAddPlant].IsLoading)
}

func TestStore_LoadReplacesCollection(t *testing.T) {
	s := NewStore()
	s.Dispatch(Success{Operation: OpAddPlant, Payload: plant("A-001", "Aroids")})

	loaded := []models.Plant{plant("C-001", "Cacti"), plant("H-001", "Hoyas")}
	s.Dispatch(Start{Operation: OpLoadPlants})
	s.Dispatch(Success{Operation: OpLoadPlants, Payload: loaded})

	st := s.State()
	require.Len(t, st.Plants, 2)
	assert.Equal(t, "C-001", st.Plants[0].ID)
	assert.False(t, st.IsLoading)
	assert.Equal(t, []string{"Cacti", "Hoyas"}, st.DynamicPlantTypes)
}

func TestStore_AddAppendsPlant(t *testing.T) {
	s := NewStore()
	s.Dispatch(Start{Operation: OpAddPlant})
	s.Dispatch(Success{Operation: OpAddPlant, Payload: plant("A-001", "Aroids")})

	st := s.State()
	require.Len(t, st.Plants, 1)
	assert.Equal(t, []string{"Aroids"}, st.DynamicPlantTypes)
	assert.False(t, st.Operations[OpAddPlant].IsLoading)
}

func TestStore_AddBulkAppendsAll(t *testing.T) {
	s := NewStore()
	s.Dispatch(Success{Operation: OpAddPlant, Payload: plant("A-001", "Aroids")})
	s.Dispatch(Success{Operation: OpAddBulkCuttings, Payload: []models.Plant{
		plant("A-001-C01", "Aroids"),
		plant("A-001-C02", "Aroids"),
	}})

	st := s.State()
	assert.Len(t, st.Plants, 3)
	assert.Equal(t, []string{"Aroids"}, st.DynamicPlantTypes)
}

func TestStore_UpdateReplacesMatchingPlant(t *testing.T) {
	s := NewStore()
	s.Dispatch(Success{Operation: OpLoadPlants, Payload: []models.Plant{plant("A-001", "Aroids"), plant("C-001", "Cacti")}})

	updated := plant("A-001", "Monstera")
	s.Dispatch(Success{Operation: OpUpdatePlant, EntityID: "A-001", Payload: updated})

	st := s.State()
	require.Len(t, st.Plants, 2)
	assert.Equal(t, "Monstera", st.Plants[0].PlantType)
	assert.Equal(t, []string{"Cacti", "Monstera"}, st.DynamicPlantTypes)
}

func TestStore_UpdateOfAbsentPlantIsError(t *testing.T) {
	s := NewStore()
	s.Dispatch(Success{Operation: OpLoadPlants, Payload: []models.Plant{plant("A-001", "Aroids")}})

	before := s.State()
	s.Dispatch(Success{Operation: OpUpdatePlant, EntityID: "Z-999", Payload: plant("Z-999", "Ghosts")})

	st := s.State()
	assert.Equal(t, before.Plants, st.Plants)
	assert.Equal(t, before.DynamicPlantTypes, st.DynamicPlantTypes)
	assert.Equal(t, MsgUpdateMissing, st.Err)
	assert.Equal(t, MsgUpdateMissing, st.Operations[OpUpdatePlant].Err)
}

func TestStore_DeleteRemovesPlant(t *testing.T) {
	s := NewStore()
	s.Dispatch(Success{Operation: OpLoadPlants, Payload: []models.Plant{plant("A-001", "Aroids"), plant("C-001", "Cacti")}})
	s.Dispatch(Success{Operation: OpDeletePlant, EntityID: "A-001", Payload: "A-001"})

	st := s.State()
	require.Len(t, st.Plants, 1)
	assert.Equal(t, "C-001", st.Plants[0].ID)
	assert.Equal(t, []string{"Cacti"}, st.DynamicPlantTypes)
}

func TestStore_DeleteOfAbsentIsNoOp(t *testing.T) {
	s := NewStore()
	s.Dispatch(Success{Operation: OpLoadPlants, Payload: []models.Plant{plant("A-001", "Aroids")}})
	before := s.State()

	s.Dispatch(Success{Operation: OpDeletePlant, EntityID: "B-001", Payload: "B-001"})

	st := s.State()
	assert.Equal(t, before.Plants, st.Plants)
	assert.Equal(t, before.DynamicPlantTypes, st.DynamicPlantTypes)
}

func TestStore_ErrorLeavesCollectionUntouched(t *testing.T) {
	s := NewStore()
	s.Dispatch(Success{Operation: OpLoadPlants, Payload: []models.Plant{plant("A-001", "Aroids")}})
	before := s.State()

	s.Dispatch(Start{Operation: OpDeletePlant, EntityID: "A-001"})
	s.Dispatch(Error{Operation: OpDeletePlant, EntityID: "A-001", Message: "boom"})

	st := s.State()
	assert.Equal(t, before.Plants, st.Plants)
	assert.Equal(t, "boom", st.Err)
	assert.Equal(t, "boom", st.Operations[OpDeletePlant].Err)
	assert.False(t, st.IsLoading)
}

func TestStore_OperationIsolation(t *testing.T) {
	s := NewStore()
	s.Dispatch(Start{Operation: OpAddPlant})
	s.Dispatch(Start{Operation: OpDeletePlant, EntityID: "X"})
	s.Dispatch(Error{Operation: OpDeletePlant, EntityID: "X", Message: "boom"})

	st := s.State()
	assert.True(t, st.Operations[OpAddPlant].IsLoading)
	assert.Empty(t, st.Operations[OpAddPlant].Err)
	assert.False(t, st.Operations[OpDeletePlant].IsLoading)
	assert.Equal(t, "boom", st.Operations[OpDeletePlant].Err)
}

func TestStore_ClearErrorClearsOnlyGlobalError(t *testing.T) {
	s := NewStore()
	s.Dispatch(Start{Operation: OpAddPlant})
	s.Dispatch(Error{Operation: OpAddPlant, Message: "boom"})
	s.Dispatch(ClearError{})

	st := s.State()
	assert.Empty(t, st.Err)
	assert.Equal(t, "boom", st.Operations[OpAddPlant].Err)
}

// The derived index must always equal a fresh recomputation, whatever
// sequence of successes got the store here.
func TestStore_IndexConsistencyAcrossMutations(t *testing.T) {
	s := NewStore()
	steps := []Action{
		Success{Operation: OpLoadPlants, Payload: []models.Plant{plant("A-001", "Aroids"), plant("C-001", "Cacti")}},
		Success{Operation: OpAddPlant, Payload: plant("H-001", "Hoyas")},
		Success{Operation: OpAddBulkCuttings, Payload: []models.Plant{plant("A-001-C01", "Aroids")}},
		Success{Operation: OpUpdatePlant, Payload: plant("C-001", "Succulents")},
		Success{Operation: OpDeletePlant, Payload: "H-001"},
	}
	for _, a := range steps {
		s.Dispatch(a)
		st := s.State()
		assert.Equal(t, DynamicPlantTypes(st.Plants), st.DynamicPlantTypes)
	}
}

func TestStore_StateReturnsCopy(t *testing.T) {
	s := NewStore()
	s.Dispatch(Success{Operation: OpAddPlant, Payload: plant("A-001", "Aroids")})

	st := s.State()
	st.Plants[0].Name = "mutated"
	st.Operations["rogue"] = OperationStatus{IsLoading: true}

	fresh := s.State()
	assert.Equal(t, "Plant A-001", fresh.Plants[0].Name)
	assert.NotContains(t, fresh.Operations, "rogue")
}
