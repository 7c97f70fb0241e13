package main

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"sporelia/models"
	"sporelia/service"
	"sporelia/store"

	"github.com/go-chi/chi/v5"
)

// Handlers drive the service through the collection store the same way
// the UI pages do: dispatch START, await the service, dispatch
// SUCCESS or ERROR, then render the result.

// handleListPlants returns the collection, newest first. With ?type= it
// filters by category without touching the store.
func (a *App) handleListPlants(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 8*time.Second)
	defer cancel()

	if t := strings.TrimSpace(r.URL.Query().Get("type")); t != "" {
		res := a.plants.ListPlantsByType(ctx, t)
		if !res.OK() {
			writeError(w, http.StatusInternalServerError, res.Err)
			return
		}
		writeJSON(w, http.StatusOK, res.Data)
		return
	}

	a.store.Dispatch(store.Start{Operation: store.OpLoadPlants})
	res := a.plants.ListPlants(ctx)
	if !res.OK() {
		a.store.Dispatch(store.Error{Operation: store.OpLoadPlants, Message: res.Err})
		writeError(w, http.StatusInternalServerError, res.Err)
		return
	}
	a.store.Dispatch(store.Success{Operation: store.OpLoadPlants, Payload: res.Data})
	writeJSON(w, http.StatusOK, res.Data)
}

// handleCreatePlant validates the draft and persists a new root plant.
func (a *App) handleCreatePlant(w http.ResponseWriter, r *http.Request) {
	var draft models.PlantDraft
	if err := json.NewDecoder(r.Body).Decode(&draft); err != nil {
		writeError(w, http.StatusBadRequest, "bad json")
		return
	}
	if err := draft.Validate(); err != nil {
		var verr *models.ValidationError
		if errors.As(err, &verr) {
			writeValidationError(w, verr)
			return
		}
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	a.store.Dispatch(store.Start{Operation: store.OpAddPlant})
	res := a.plants.CreatePlant(ctx, draft)
	if !res.OK() {
		a.store.Dispatch(store.Error{Operation: store.OpAddPlant, Message: res.Err})
		writeError(w, http.StatusInternalServerError, res.Err)
		return
	}
	a.store.Dispatch(store.Success{Operation: store.OpAddPlant, Payload: res.Data})
	writeJSON(w, http.StatusCreated, res.Data)
}

// handleGetPlant returns a single plant by id.
func (a *App) handleGetPlant(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	res := a.plants.GetPlant(ctx, id)
	if !res.OK() {
		status := http.StatusInternalServerError
		if res.Err == service.MsgFailedToFindPlant {
			status = http.StatusNotFound
		}
		writeError(w, status, res.Err)
		return
	}
	writeJSON(w, http.StatusOK, res.Data)
}

// handleUpdatePlant upserts the full record under the path id.
func (a *App) handleUpdatePlant(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var plant models.Plant
	if err := json.NewDecoder(r.Body).Decode(&plant); err != nil {
		writeError(w, http.StatusBadRequest, "bad json")
		return
	}
	plant.ID = id

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	a.store.Dispatch(store.Start{Operation: store.OpUpdatePlant, EntityID: id})
	res := a.plants.UpdatePlant(ctx, plant)
	if !res.OK() {
		a.store.Dispatch(store.Error{Operation: store.OpUpdatePlant, EntityID: id, Message: res.Err})
		writeError(w, http.StatusInternalServerError, res.Err)
		return
	}
	a.store.Dispatch(store.Success{Operation: store.OpUpdatePlant, EntityID: id, Payload: res.Data})
	writeJSON(w, http.StatusOK, res.Data)
}

// handleDeletePlant removes a plant. Deleting an absent plant is a
// normal outcome reported as 404; the collection state is untouched.
func (a *App) handleDeletePlant(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	a.store.Dispatch(store.Start{Operation: store.OpDeletePlant, EntityID: id})
	res := a.plants.DeletePlant(ctx, id)
	if !res.OK() {
		a.store.Dispatch(store.Error{Operation: store.OpDeletePlant, EntityID: id, Message: res.Err})
		status := http.StatusInternalServerError
		if res.Err == service.MsgPlantNotFound {
			status = http.StatusNotFound
		}
		writeError(w, status, res.Err)
		return
	}
	a.store.Dispatch(store.Success{Operation: store.OpDeletePlant, EntityID: id, Payload: res.Data})
	writeJSON(w, http.StatusOK, okResp{OK: true})
}

// handleListCuttings returns the cuttings propagated from a plant.
func (a *App) handleListCuttings(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	res := a.plants.ListCuttings(ctx, id)
	if !res.OK() {
		writeError(w, http.StatusInternalServerError, res.Err)
		return
	}
	writeJSON(w, http.StatusOK, res.Data)
}

// handleCreateCuttings creates one cutting, or several when the draft
// carries a cuttingCount. Child IDs derive from the store's current
// collection snapshot.
func (a *App) handleCreateCuttings(w http.ResponseWriter, r *http.Request) {
	parentID := chi.URLParam(r, "id")

	var draft models.PlantDraft
	if err := json.NewDecoder(r.Body).Decode(&draft); err != nil {
		writeError(w, http.StatusBadRequest, "bad json")
		return
	}
	if err := draft.Validate(); err != nil {
		var verr *models.ValidationError
		if errors.As(err, &verr) {
			writeValidationError(w, verr)
			return
		}
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 8*time.Second)
	defer cancel()
	snapshot := a.store.State().Plants

	if draft.CuttingCount > 0 {
		a.store.Dispatch(store.Start{Operation: store.OpAddBulkCuttings, EntityID: parentID})
		res := a.plants.CreateBulkCuttings(ctx, parentID, draft, draft.CuttingCount, snapshot)
		if !res.OK() {
			a.store.Dispatch(store.Error{Operation: store.OpAddBulkCuttings, EntityID: parentID, Message: res.Err})
			writeError(w, http.StatusInternalServerError, res.Err)
			return
		}
		a.store.Dispatch(store.Success{Operation: store.OpAddBulkCuttings, EntityID: parentID, Payload: res.Data})
		writeJSON(w, http.StatusCreated, res.Data)
		return
	}

	a.store.Dispatch(store.Start{Operation: store.OpAddCutting, EntityID: parentID})
	res := a.plants.CreateCutting(ctx, parentID, draft, snapshot)
	if !res.OK() {
		a.store.Dispatch(store.Error{Operation: store.OpAddCutting, EntityID: parentID, Message: res.Err})
		writeError(w, http.StatusInternalServerError, res.Err)
		return
	}
	a.store.Dispatch(store.Success{Operation: store.OpAddCutting, EntityID: parentID, Payload: res.Data})
	writeJSON(w, http.StatusCreated, res.Data)
}

// handleAddComment appends one care-log entry.
func (a *App) handleAddComment(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req commentReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad json")
		return
	}
	req.Text = strings.TrimSpace(req.Text)
	if req.Text == "" {
		writeError(w, http.StatusBadRequest, "comment text is required")
		return
	}
	if req.AuthorName == "" {
		req.AuthorName = "Anonymous"
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	a.store.Dispatch(store.Start{Operation: store.OpUpdatePlant, EntityID: id})
	res := a.plants.AddComment(ctx, id, req.Text, req.AuthorName)
	if !res.OK() {
		a.store.Dispatch(store.Error{Operation: store.OpUpdatePlant, EntityID: id, Message: res.Err})
		status := http.StatusInternalServerError
		if res.Err == service.MsgPlantNotFound {
			status = http.StatusNotFound
		}
		writeError(w, status, res.Err)
		return
	}
	a.store.Dispatch(store.Success{Operation: store.OpUpdatePlant, EntityID: id, Payload: res.Data})
	writeJSON(w, http.StatusOK, res.Data)
}

// handlePlantTypes returns the derived type index.
func (a *App) handlePlantTypes(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, a.store.State().DynamicPlantTypes)
}

// handleState exposes the collection store snapshot for UI consumption.
func (a *App) handleState(w http.ResponseWriter, r *http.Request) {
	st := a.store.State()
	ops := make(map[string]operationStatusResp, len(st.Operations))
	for name, s := range st.Operations {
		ops[name] = operationStatusResp{IsLoading: s.IsLoading, Error: s.Err}
	}
	writeJSON(w, http.StatusOK, stateResp{
		Plants:            st.Plants,
		IsLoading:         st.IsLoading,
		Error:             st.Err,
		DynamicPlantTypes: st.DynamicPlantTypes,
		Operations:        ops,
	})
}

// handleResetCollection wipes every plant and reloads the store.
// Administrative reset only.
func (a *App) handleResetCollection(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 12*time.Second)
	defer cancel()

	if err := a.repo.DeleteAll(ctx); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to reset collection.")
		return
	}
	a.loadPlants(ctx)
	writeJSON(w, http.StatusOK, okResp{OK: true})
}
