package models

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// PlantDraft is the form contract for creating or editing a plant. It
// carries everything a Plant does except the ID, which is always
// allocated server-side.
type PlantDraft struct {
	Name            string `json:"name"                      validate:"required,max=100"`
	Species         string `json:"species"                   validate:"required,max=100"`
	PlantType       string `json:"plantType,omitempty"       validate:"max=50"`
	AcquisitionDate string `json:"acquisitionDate"           validate:"required,plantdate,notfuture"`
	LastWatered     string `json:"lastWatered,omitempty"     validate:"omitempty,plantdate,notfuture"`
	Notes           string `json:"notes,omitempty"           validate:"max=500"`
	ImageURL        string `json:"imageUrl,omitempty"`

	// Only meaningful for bulk cutting requests.
	CuttingCount int `json:"cuttingCount,omitempty" validate:"omitempty,min=1,max=10"`
}

// ValidationError carries per-field messages so the caller can surface
// them next to the offending inputs.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s: %s", k, e.Fields[k]))
	}
	return strings.Join(parts, "; ")
}

const dateLayout = "2006-01-02"

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	_ = v.RegisterValidation("plantdate", func(fl validator.FieldLevel) bool {
		_, err := time.Parse(dateLayout, fl.Field().String())
		return err == nil
	})
	_ = v.RegisterValidation("notfuture", func(fl validator.FieldLevel) bool {
		d, err := time.Parse(dateLayout, fl.Field().String())
		if err != nil {
			// Format errors belong to the plantdate rule.
			return true
		}
		today := time.Now().UTC().Truncate(24 * time.Hour)
		return !d.After(today)
	})
	v.RegisterStructValidation(func(sl validator.StructLevel) {
		d := sl.Current().Interface().(PlantDraft)
		if d.LastWatered == "" {
			return
		}
		lw, err1 := time.Parse(dateLayout, d.LastWatered)
		acq, err2 := time.Parse(dateLayout, d.AcquisitionDate)
		if err1 != nil || err2 != nil {
			return
		}
		if lw.Before(acq) {
			sl.ReportError(d.LastWatered, "LastWatered", "lastWatered", "afteracquisition", "")
		}
	}, PlantDraft{})
	return v
}

var draftMessages = map[string]string{
	"Name.required":                "Name is required",
	"Name.max":                     "Name must be 100 characters or less",
	"Species.required":             "Species is required",
	"Species.max":                  "Species must be 100 characters or less",
	"PlantType.max":                "Plant type must be 50 characters or less",
	"AcquisitionDate.required":     "Acquisition date is required",
	"AcquisitionDate.plantdate":    "Invalid date format",
	"AcquisitionDate.notfuture":    "Acquisition date cannot be in the future",
	"LastWatered.plantdate":        "Invalid date format for last watered",
	"LastWatered.notfuture":        "Last watered date cannot be in the future",
	"LastWatered.afteracquisition": "Last watered date cannot be before acquisition date",
	"Notes.max":                    "Notes must be 500 characters or less",
	"CuttingCount.min":             "Cutting count must be at least 1",
	"CuttingCount.max":             "Cutting count must be 10 or less",
}

// Validate normalizes the draft in place (trimming free text, defaulting a
// blank plant type) and checks it against the form contract. On failure it
// returns a *ValidationError with one message per offending field.
func (d *PlantDraft) Validate() error {
	d.Name = strings.TrimSpace(d.Name)
	d.Species = strings.TrimSpace(d.Species)
	d.PlantType = strings.TrimSpace(d.PlantType)
	d.Notes = strings.TrimSpace(d.Notes)
	if d.PlantType == "" {
		d.PlantType = DefaultPlantType
	}

	err := validate.Struct(d)
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}
	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		msg, ok := draftMessages[fe.Field()+"."+fe.Tag()]
		if !ok {
			msg = "Invalid value"
		}
		fields[fe.Field()] = msg
	}
	return &ValidationError{Fields: fields}
}

// ToPlant builds a Plant from the draft. The ID is left empty so the
// repository allocates one on save.
func (d PlantDraft) ToPlant() Plant {
	return Plant{
		Name:            d.Name,
		Species:         d.Species,
		PlantType:       d.PlantType,
		AcquisitionDate: d.AcquisitionDate,
		LastWatered:     d.LastWatered,
		Notes:           d.Notes,
		ImageURL:        d.ImageURL,
	}
}
