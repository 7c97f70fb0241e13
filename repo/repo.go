// Package repo is the persistence boundary for the plant collection. The
// PlantRepository interface abstracts a remote document store; the rest
// of the codebase never talks to a driver directly.
package repo

import (
	"context"
	"fmt"

	"sporelia/models"
)

// PlantRepository is the sole gateway to the plant document collection.
//
// Absence is not an error: FindByID returns (nil, nil) for a missing
// plant and Delete returns (false, nil). Methods fail with a
// *RepositoryError only on transport, permission, or availability
// problems. No method retries internally.
type PlantRepository interface {
	// FindAll returns every plant, newest first (createdAt descending).
	FindAll(ctx context.Context) ([]models.Plant, error)

	// FindByID returns the plant or nil when absent.
	FindByID(ctx context.Context, id string) (*models.Plant, error)

	// FindByField returns plants whose named field equals value. Used
	// for type filtering ("plantType") and lineage ("parentPlantId").
	FindByField(ctx context.Context, field, value string) ([]models.Plant, error)

	// Save upserts the plant. When the ID is unset a new root ID is
	// allocated from the currently known collection before writing. The
	// record is normalized first: free text trimmed, blank optional
	// fields left unset, a blank plant type defaulted.
	Save(ctx context.Context, plant models.Plant) (models.Plant, error)

	// Delete removes the plant, reporting whether a record existed.
	Delete(ctx context.Context, id string) (bool, error)

	// DeleteAll wipes the collection. Administrative reset only.
	DeleteAll(ctx context.Context) error
}

// RepositoryError wraps a transport-level failure with the repository
// operation that hit it.
type RepositoryError struct {
	Op  string
	Err error
}

func (e *RepositoryError) Error() string {
	return fmt.Sprintf("repository %s: %v", e.Op, e.Err)
}

func (e *RepositoryError) Unwrap() error { return e.Err }

func repoErr(op string, err error) error {
	return &RepositoryError{Op: op, Err: err}
}
