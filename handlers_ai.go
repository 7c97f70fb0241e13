package main

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"sporelia/service"

	"github.com/go-chi/chi/v5"
)

// handleCareTips asks the generative API for care text about one plant.
// The request kind picks the prompt: "care" (default) generates care
// instructions for the plant's category, "health" analyzes its records,
// "diagnosis" explains the submitted symptoms.
func (a *App) handleCareTips(w http.ResponseWriter, r *http.Request) {
	if a.care == nil {
		writeError(w, http.StatusServiceUnavailable, "care tips are not configured")
		return
	}

	var req careTipsReq
	if r.Body != nil {
		_ = json.NewDecoder(r.Body).Decode(&req)
	}

	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	res := a.plants.GetPlant(ctx, chi.URLParam(r, "id"))
	if !res.OK() {
		status := http.StatusInternalServerError
		if res.Err == service.MsgFailedToFindPlant {
			status = http.StatusNotFound
		}
		writeError(w, status, res.Err)
		return
	}
	plant := res.Data

	var (
		tips string
		err  error
	)
	switch strings.ToLower(req.Kind) {
	case "", "care":
		tips, err = a.care.GenerateCareInstructions(ctx, plant.NormalizedType())
	case "health":
		tips, err = a.care.AnalyzePlantHealth(ctx, plant)
	case "diagnosis":
		if strings.TrimSpace(req.Symptoms) == "" {
			writeError(w, http.StatusBadRequest, "symptoms are required for a diagnosis")
			return
		}
		tips, err = a.care.DiagnoseIssues(ctx, plant, req.Symptoms)
	default:
		writeError(w, http.StatusBadRequest, "kind must be care, health, or diagnosis")
		return
	}
	if err != nil {
		writeError(w, http.StatusBadGateway, "Failed to generate care tips.")
		return
	}
	writeJSON(w, http.StatusOK, careTipsResp{Tips: tips})
}
