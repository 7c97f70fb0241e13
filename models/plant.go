package models

import "time"

// DefaultPlantType is the normalized category for plants saved without one.
// The derived type index and the ID allocator both operate on the
// normalized value, never on the raw field.
const DefaultPlantType = "Uncategorized"

// Plant is the main plant card. IDs are human-readable and immutable once
// assigned (see the plantid package): roots look like "A-001", cuttings
// like "A-001-C02".
type Plant struct {
	ID      string `bson:"_id,omitempty" json:"id"`
	Name    string `bson:"name"          json:"name"`
	Species string `bson:"species"       json:"species"`

	// Category label. Stored normalized; blank never reaches Mongo.
	PlantType string `bson:"plantType,omitempty" json:"plantType,omitempty"`

	// Calendar dates as "YYYY-MM-DD" strings, matching the form contract.
	AcquisitionDate string `bson:"acquisitionDate"       json:"acquisitionDate"`
	LastWatered     string `bson:"lastWatered,omitempty" json:"lastWatered,omitempty"`

	Notes string `bson:"notes,omitempty" json:"notes,omitempty"`

	// URL of the plant photo in blob storage (owned by the images package).
	ImageURL string `bson:"imageUrl,omitempty" json:"imageUrl,omitempty"`

	// Back-reference to the parent plant when this one is a cutting.
	// Naming convention only, not an enforced foreign key.
	ParentPlantID string `bson:"parentPlantId,omitempty" json:"parentPlantId,omitempty"`

	// Care log. Append-only: entries are never reordered or edited.
	Comments []Comment `bson:"comments,omitempty" json:"comments,omitempty"`

	// Server-side sort key; repositories list newest first.
	CreatedAt time.Time `bson:"createdAt,omitempty" json:"createdAt,omitempty"`
}

// Comment is one care-log entry on a plant.
type Comment struct {
	ID         string    `bson:"id"         json:"id"`
	Text       string    `bson:"text"       json:"text"`
	AuthorName string    `bson:"authorName" json:"authorName"`
	CreatedAt  time.Time `bson:"createdAt"  json:"createdAt"`
}

// NormalizedType returns the plant's category, falling back to
// DefaultPlantType when the field is blank.
func (p Plant) NormalizedType() string {
	if p.PlantType == "" {
		return DefaultPlantType
	}
	return p.PlantType
}

// IsCutting reports whether the plant is a propagation of another plant.
func (p Plant) IsCutting() bool { return p.ParentPlantID != "" }
