package repo

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"sporelia/models"
	"sporelia/plantid"
)

// MemoryRepository keeps the collection in process memory. It backs local
// development without a Mongo instance and doubles as the repository used
// by service and handler tests.
type MemoryRepository struct {
	mu     sync.Mutex
	plants []models.Plant
}

// NewMemoryRepository returns an empty in-memory repository, optionally
// pre-seeded.
func NewMemoryRepository(seed ...models.Plant) *MemoryRepository {
	r := &MemoryRepository{}
	r.plants = append(r.plants, seed...)
	return r
}

func (r *MemoryRepository) snapshot() []models.Plant {
	out := make([]models.Plant, len(r.plants))
	copy(out, r.plants)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}

func (r *MemoryRepository) FindAll(ctx context.Context) ([]models.Plant, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.snapshot(), nil
}

func (r *MemoryRepository) FindByID(ctx context.Context, id string) (*models.Plant, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range r.plants {
		if p.ID == id {
			cp := p
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *MemoryRepository) FindByField(ctx context.Context, field, value string) ([]models.Plant, error) {
	if !queryableFields[field] {
		return nil, repoErr("findByField", fmt.Errorf("field %q is not queryable", field))
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Plant
	for _, p := range r.snapshot() {
		var got string
		switch field {
		case "plantType":
			got = p.PlantType
		case "parentPlantId":
			got = p.ParentPlantID
		case "species":
			got = p.Species
		}
		if got == value {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *MemoryRepository) Save(ctx context.Context, plant models.Plant) (models.Plant, error) {
	plant = normalize(plant)
	r.mu.Lock()
	defer r.mu.Unlock()
	if plant.ID == "" {
		plant.ID = plantid.NextRootID(r.plants, plant.PlantType)
	}
	for i, p := range r.plants {
		if p.ID == plant.ID {
			r.plants[i] = plant
			return plant, nil
		}
	}
	r.plants = append(r.plants, plant)
	return plant, nil
}

func (r *MemoryRepository) Delete(ctx context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, p := range r.plants {
		if p.ID == id {
			r.plants = append(r.plants[:i], r.plants[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (r *MemoryRepository) DeleteAll(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.plants = nil
	return nil
}
