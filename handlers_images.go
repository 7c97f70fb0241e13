package main

import (
	"bytes"
	"context"
	"io"
	"log"
	"net/http"
	"time"

	"sporelia/images"
	"sporelia/service"
	"sporelia/store"

	"github.com/go-chi/chi/v5"
)

// handleUploadImage accepts a multipart "image" part, validates it, puts
// it in blob storage and records the URL on the plant.
func (a *App) handleUploadImage(w http.ResponseWriter, r *http.Request) {
	if a.photos == nil {
		writeError(w, http.StatusServiceUnavailable, "photo uploads are not configured")
		return
	}
	id := chi.URLParam(r, "id")

	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
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
	plant := res.Data

	maxBytes := a.photos.MaxBytes()
	if err := r.ParseMultipartForm(maxBytes + 1<<20); err != nil {
		writeError(w, http.StatusBadRequest, "bad multipart form")
		return
	}
	file, header, err := r.FormFile("image")
	if err != nil {
		writeError(w, http.StatusBadRequest, "image file is required")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxBytes+1))
	if err != nil {
		writeError(w, http.StatusBadRequest, "failed to read image")
		return
	}
	contentType := http.DetectContentType(data)
	if err := images.ValidateImage(contentType, int64(len(data)), maxBytes); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	url, err := a.photos.Upload(ctx, plant.ID, header.Filename, contentType, bytes.NewReader(data), int64(len(data)))
	if err != nil {
		log.Printf("image upload for %s: %v", plant.ID, err)
		writeError(w, http.StatusInternalServerError, "Failed to upload image.")
		return
	}

	// Replacing a photo orphans the old object unless we delete it.
	if plant.ImageURL != "" {
		if err := a.photos.Delete(ctx, plant.ImageURL); err != nil {
			log.Printf("delete old image for %s: %v", plant.ID, err)
		}
	}

	plant.ImageURL = url
	a.store.Dispatch(store.Start{Operation: store.OpUpdatePlant, EntityID: id})
	upd := a.plants.UpdatePlant(ctx, plant)
	if !upd.OK() {
		a.store.Dispatch(store.Error{Operation: store.OpUpdatePlant, EntityID: id, Message: upd.Err})
		writeError(w, http.StatusInternalServerError, upd.Err)
		return
	}
	a.store.Dispatch(store.Success{Operation: store.OpUpdatePlant, EntityID: id, Payload: upd.Data})
	writeJSON(w, http.StatusOK, imageResp{ImageURL: url})
}

// handleDeleteImage removes the plant's photo from blob storage and
// clears the reference. A missing blob is not an error.
func (a *App) handleDeleteImage(w http.ResponseWriter, r *http.Request) {
	if a.photos == nil {
		writeError(w, http.StatusServiceUnavailable, "photo uploads are not configured")
		return
	}
	id := chi.URLParam(r, "id")

	ctx, cancel := context.WithTimeout(r.Context(), 15*time.Second)
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
	plant := res.Data
	if plant.ImageURL == "" {
		writeJSON(w, http.StatusOK, okResp{OK: true})
		return
	}

	if err := a.photos.Delete(ctx, plant.ImageURL); err != nil {
		// The blob may already be gone; clearing the reference still matters.
		log.Printf("delete image for %s: %v", plant.ID, err)
	}

	plant.ImageURL = ""
	a.store.Dispatch(store.Start{Operation: store.OpUpdatePlant, EntityID: id})
	upd := a.plants.UpdatePlant(ctx, plant)
	if !upd.OK() {
		a.store.Dispatch(store.Error{Operation: store.OpUpdatePlant, EntityID: id, Message: upd.Err})
		writeError(w, http.StatusInternalServerError, upd.Err)
		return
	}
	a.store.Dispatch(store.Success{Operation: store.OpUpdatePlant, EntityID: id, Payload: upd.Data})
	writeJSON(w, http.StatusOK, okResp{OK: true})
}
