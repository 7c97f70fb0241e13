package main

import (
	"encoding/json"
	"net/http"

	"sporelia/models"
)

// Request/response DTOs. Keep them minimal and explicit.

type commentReq struct {
	Text       string `json:"text"`
	AuthorName string `json:"authorName,omitempty"`
}

// careTipsReq selects which prompt to send. Kind is "care" (default),
// "health", or "diagnosis"; Symptoms only matters for diagnosis.
type careTipsReq struct {
	Kind     string `json:"kind,omitempty"`
	Symptoms string `json:"symptoms,omitempty"`
}

type careTipsResp struct {
	Tips string `json:"tips"`
}

type imageResp struct {
	ImageURL string `json:"imageUrl"`
}

type okResp struct {
	OK bool `json:"ok"`
}

type errorResp struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields,omitempty"`
}

type operationStatusResp struct {
	IsLoading bool   `json:"isLoading"`
	Error     string `json:"error,omitempty"`
}

// stateResp mirrors the collection store for UI consumption.
type stateResp struct {
	Plants            []models.Plant                 `json:"plants"`
	IsLoading         bool                           `json:"isLoading"`
	Error             string                         `json:"error,omitempty"`
	DynamicPlantTypes []string                       `json:"dynamicPlantTypes"`
	Operations        map[string]operationStatusResp `json:"operations"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResp{Error: msg})
}

func writeValidationError(w http.ResponseWriter, verr *models.ValidationError) {
	writeJSON(w, http.StatusBadRequest, errorResp{Error: "validation failed", Fields: verr.Fields})
}
