package repo

import (
	"strings"
	"time"

	"sporelia/models"
)

// normalize cleans a plant record before it is written. Free-text fields
// are trimmed, so optional fields that end up empty fall out of the
// document entirely (omitempty) instead of being stored as ambiguous
// empty strings. A blank plant type is replaced with the default so the
// stored value always matches what the type index derives.
func normalize(p models.Plant) models.Plant {
	p.Name = strings.TrimSpace(p.Name)
	p.Species = strings.TrimSpace(p.Species)
	p.PlantType = strings.TrimSpace(p.PlantType)
	p.Notes = strings.TrimSpace(p.Notes)
	p.AcquisitionDate = strings.TrimSpace(p.AcquisitionDate)
	p.LastWatered = strings.TrimSpace(p.LastWatered)
	p.ImageURL = strings.TrimSpace(p.ImageURL)
	p.ParentPlantID = strings.TrimSpace(p.ParentPlantID)

	if p.PlantType == "" {
		p.PlantType = models.DefaultPlantType
	}
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now().UTC()
	}
	return p
}

// queryableFields are the only document fields FindByField accepts.
var queryableFields = map[string]bool{
	"plantType":     true,
	"parentPlantId": true,
	"species":       true,
}
