package repo

import (
	"context"
	"testing"
	"time"

	"sporelia/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryRepository_SaveAllocatesRootID(t *testing.T) {
	ctx := context.Background()
	r := NewMemoryRepository()

	saved, err := r.Save(ctx, models.Plant{Name: "Ficus", Species: "Ficus lyrata", PlantType: "Ficus", AcquisitionDate: "2024-01-01"})
	require.NoError(t, err)
	assert.Equal(t, "F-001", saved.ID)

	second, err := r.Save(ctx, models.Plant{Name: "Another Ficus", Species: "Ficus elastica", PlantType: "Ficus", AcquisitionDate: "2024-01-02"})
	require.NoError(t, err)
	assert.Equal(t, "F-002", second.ID)
}

func TestMemoryRepository_SaveNormalizes(t *testing.T) {
	ctx := context.Background()
	r := NewMemoryRepository()

	saved, err := r.Save(ctx, models.Plant{
		Name:            "  Monstera  ",
		Species:         " Monstera deliciosa ",
		PlantType:       "   ",
		AcquisitionDate: "2024-01-01",
		Notes:           "  ",
	})
	require.NoError(t, err)
	assert.Equal(t, "Monstera", saved.Name)
	assert.Equal(t, "Monstera deliciosa", saved.Species)
	assert.Equal(t, models.DefaultPlantType, saved.PlantType)
	assert.Empty(t, saved.Notes)
	assert.False(t, saved.CreatedAt.IsZero())
}

func TestMemoryRepository_SaveUpserts(t *testing.T) {
	ctx := context.Background()
	r := NewMemoryRepository()

	saved, err := r.Save(ctx, models.Plant{Name: "Hoya", Species: "Hoya carnosa", PlantType: "Hoyas", AcquisitionDate: "2024-01-01"})
	require.NoError(t, err)

	saved.Notes = "repotted"
	updated, err := r.Save(ctx, saved)
	require.NoError(t, err)
	assert.Equal(t, saved.ID, updated.ID)

	all, err := r.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "repotted", all[0].Notes)
}

func TestMemoryRepository_FindAllNewestFirst(t *testing.T) {
	ctx := context.Background()
	now := time.Now().UTC()
	r := NewMemoryRepository(
		models.Plant{ID: "A-001", PlantType: "Aroids", CreatedAt: now.Add(-2 * time.Hour)},
		models.Plant{ID: "A-002", PlantType: "Aroids", CreatedAt: now},
		models.Plant{ID: "C-001", PlantType: "Cacti", CreatedAt: now.Add(-1 * time.Hour)},
	)

	all, err := r.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, []string{"A-002", "C-001", "A-001"}, []string{all[0].ID, all[1].ID, all[2].ID})
}

func TestMemoryRepository_FindByID(t *testing.T) {
	ctx := context.Background()
	r := NewMemoryRepository(models.Plant{ID: "A-001", PlantType: "Aroids"})

	p, err := r.FindByID(ctx, "A-001")
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Equal(t, "A-001", p.ID)

	absent, err := r.FindByID(ctx, "Z-999")
	require.NoError(t, err)
	assert.Nil(t, absent)
}

func TestMemoryRepository_FindByField(t *testing.T) {
	ctx := context.Background()
	r := NewMemoryRepository(
		models.Plant{ID: "A-001", PlantType: "Aroids"},
		models.Plant{ID: "C-001", PlantType: "Cacti"},
		models.Plant{ID: "A-001-C01", PlantType: "Aroids", ParentPlantID: "A-001"},
	)

	aroids, err := r.FindByField(ctx, "plantType", "Aroids")
	require.NoError(t, err)
	assert.Len(t, aroids, 2)

	cuttings, err := r.FindByField(ctx, "parentPlantId", "A-001")
	require.NoError(t, err)
	require.Len(t, cuttings, 1)
	assert.Equal(t, "A-001-C01", cuttings[0].ID)

	_, err = r.FindByField(ctx, "notes", "x")
	require.Error(t, err)
	var rerr *RepositoryError
	assert.ErrorAs(t, err, &rerr)
}

func TestMemoryRepository_Delete(t *testing.T) {
	ctx := context.Background()
	r := NewMemoryRepository(models.Plant{ID: "A-001", PlantType: "Aroids"})

	deleted, err := r.Delete(ctx, "A-001")
	require.NoError(t, err)
	assert.True(t, deleted)

	again, err := r.Delete(ctx, "A-001")
	require.NoError(t, err)
	assert.False(t, again)
}

func TestMemoryRepository_DeleteAll(t *testing.T) {
	ctx := context.Background()
	r := NewMemoryRepository(
		models.Plant{ID: "A-001", PlantType: "Aroids"},
		models.Plant{ID: "C-001", PlantType: "Cacti"},
	)

	require.NoError(t, r.DeleteAll(ctx))
	all, err := r.FindAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}
