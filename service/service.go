// Package service exposes the domain operations of the plant collection.
// It is the only caller of the repository and the ID allocator, and every
// operation returns a Result envelope instead of propagating errors:
// transport failures are logged with their operation name and mapped to a
// fixed user-facing message, so callers never see driver error shapes.
package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"log"
	"strings"
	"time"

	"sporelia/models"
	"sporelia/plantid"
	"sporelia/repo"
)

// Result is the uniform outcome envelope. Err is empty on success.
type Result[T any] struct {
	Data T      `json:"data"`
	Err  string `json:"error,omitempty"`
}

// OK reports whether the operation succeeded.
func (r Result[T]) OK() bool { return r.Err == "" }

// Operation names, used for logging and error-message lookup.
const (
	opListPlants    = "plantService.listPlants"
	opCreatePlant   = "plantService.createPlant"
	opCreateCutting = "plantService.createCutting"
	opBulkCuttings  = "plantService.createBulkCuttings"
	opUpdatePlant   = "plantService.updatePlant"
	opDeletePlant   = "plantService.deletePlant"
	opGetPlant      = "plantService.getPlant"
	opAddComment    = "plantService.addComment"
)

// Fixed user-facing messages per operation. Anything unlisted falls back
// to the generic message.
var opMessages = map[string]string{
	opListPlants:    "Failed to load plants.",
	opCreatePlant:   "Failed to add plant.",
	opCreateCutting: "Failed to add cutting.",
	opBulkCuttings:  "Failed to add cuttings.",
	opUpdatePlant:   "Failed to update plant.",
	opDeletePlant:   "Failed to delete plant.",
	opGetPlant:      "Failed to find plant.",
	opAddComment:    "Failed to add comment.",
}

const genericMessage = "Something went wrong. Please try again."

// Messages for expected absent-entity outcomes. These are normal results,
// not system faults.
const (
	MsgPlantNotFound     = "Plant not found."
	MsgFailedToFindPlant = "Failed to find plant."
)

func fail[T any](op string, err error) Result[T] {
	log.Printf("%s: %v", op, err)
	msg, ok := opMessages[op]
	if !ok {
		msg = genericMessage
	}
	return Result[T]{Err: msg}
}

// PlantService orchestrates the repository and the ID allocator. Construct
// with NewPlantService and inject the repository; there is deliberately no
// package-level singleton.
type PlantService struct {
	repo repo.PlantRepository
}

func NewPlantService(r repo.PlantRepository) *PlantService {
	return &PlantService{repo: r}
}

// ListPlants returns the full collection, newest first.
func (s *PlantService) ListPlants(ctx context.Context) Result[[]models.Plant] {
	plants, err := s.repo.FindAll(ctx)
	if err != nil {
		return fail[[]models.Plant](opListPlants, err)
	}
	if plants == nil {
		plants = []models.Plant{}
	}
	return Result[[]models.Plant]{Data: plants}
}

// ListPlantsByType returns plants whose normalized category equals plantType.
func (s *PlantService) ListPlantsByType(ctx context.Context, plantType string) Result[[]models.Plant] {
	plants, err := s.repo.FindByField(ctx, "plantType", plantType)
	if err != nil {
		return fail[[]models.Plant](opListPlants, err)
	}
	if plants == nil {
		plants = []models.Plant{}
	}
	return Result[[]models.Plant]{Data: plants}
}

// ListCuttings returns the cuttings propagated from the given plant.
func (s *PlantService) ListCuttings(ctx context.Context, parentID string) Result[[]models.Plant] {
	plants, err := s.repo.FindByField(ctx, "parentPlantId", parentID)
	if err != nil {
		return fail[[]models.Plant](opListPlants, err)
	}
	if plants == nil {
		plants = []models.Plant{}
	}
	return Result[[]models.Plant]{Data: plants}
}

// CreatePlant persists a new root plant. The ID is left for the
// repository to allocate; a blank plant type defaults before allocation so
// the prefix is derived from the normalized category.
func (s *PlantService) CreatePlant(ctx context.Context, draft models.PlantDraft) Result[models.Plant] {
	plant := draft.ToPlant()
	if strings.TrimSpace(plant.PlantType) == "" {
		plant.PlantType = models.DefaultPlantType
	}
	saved, err := s.repo.Save(ctx, plant)
	if err != nil {
		return fail[models.Plant](opCreatePlant, err)
	}
	return Result[models.Plant]{Data: saved}
}

// CreateCutting persists one cutting of parentID, deriving its child ID
// from the supplied collection snapshot.
func (s *PlantService) CreateCutting(ctx context.Context, parentID string, draft models.PlantDraft, current []models.Plant) Result[models.Plant] {
	plant := draft.ToPlant()
	plant.ID = plantid.DeriveChildID(current, parentID)
	plant.ParentPlantID = parentID
	saved, err := s.repo.Save(ctx, plant)
	if err != nil {
		return fail[models.Plant](opCreateCutting, err)
	}
	return Result[models.Plant]{Data: saved}
}

// CreateBulkCuttings persists count cuttings sequentially, naming each
// "<name> Cutting <i>". Every allocation is seeded with the cuttings
// already created in this batch, otherwise the batch would collide on
// child IDs. A count of zero is valid and performs no writes.
func (s *PlantService) CreateBulkCuttings(ctx context.Context, parentID string, draft models.PlantDraft, count int, current []models.Plant) Result[[]models.Plant] {
	created := []models.Plant{}
	for i := 0; i < count; i++ {
		snapshot := append(append([]models.Plant{}, current...), created...)
		plant := draft.ToPlant()
		plant.ID = plantid.DeriveChildID(snapshot, parentID)
		plant.ParentPlantID = parentID
		plant.Name = fmt.Sprintf("%s Cutting %d", draft.Name, i+1)
		saved, err := s.repo.Save(ctx, plant)
		if err != nil {
			return fail[[]models.Plant](opBulkCuttings, err)
		}
		created = append(created, saved)
	}
	return Result[[]models.Plant]{Data: created}
}

// UpdatePlant upserts the full record. No partial-field merge: the caller
// supplies the complete plant.
func (s *PlantService) UpdatePlant(ctx context.Context, plant models.Plant) Result[models.Plant] {
	saved, err := s.repo.Save(ctx, plant)
	if err != nil {
		return fail[models.Plant](opUpdatePlant, err)
	}
	return Result[models.Plant]{Data: saved}
}

// DeletePlant removes the plant, returning its ID. Deleting an absent
// plant is an expected outcome reported as MsgPlantNotFound.
func (s *PlantService) DeletePlant(ctx context.Context, id string) Result[string] {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return fail[string](opDeletePlant, err)
	}
	if !deleted {
		return Result[string]{Err: MsgPlantNotFound}
	}
	return Result[string]{Data: id}
}

// GetPlant fetches one plant by ID.
func (s *PlantService) GetPlant(ctx context.Context, id string) Result[models.Plant] {
	plant, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return fail[models.Plant](opGetPlant, err)
	}
	if plant == nil {
		return Result[models.Plant]{Err: MsgFailedToFindPlant}
	}
	return Result[models.Plant]{Data: *plant}
}

// AddComment appends one care-log entry to the plant. Comments are
// append-only; existing entries are never touched.
func (s *PlantService) AddComment(ctx context.Context, plantID, text, authorName string) Result[models.Plant] {
	plant, err := s.repo.FindByID(ctx, plantID)
	if err != nil {
		return fail[models.Plant](opAddComment, err)
	}
	if plant == nil {
		return Result[models.Plant]{Err: MsgPlantNotFound}
	}
	plant.Comments = append(plant.Comments, models.Comment{
		ID:         newCommentID(),
		Text:       text,
		AuthorName: authorName,
		CreatedAt:  time.Now().UTC(),
	})
	saved, err := s.repo.Save(ctx, *plant)
	if err != nil {
		return fail[models.Plant](opAddComment, err)
	}
	return Result[models.Plant]{Data: saved}
}

func newCommentID() string {
	b := make([]byte, 8)
	_, _ = rand.Read(b)
	return "c-" + hex.EncodeToString(b)
}
