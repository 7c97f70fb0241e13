// Package plantid generates and inspects the human-readable plant
// identifiers used across the collection. Root plants get
// "<prefix>-<seq>" (e.g. "A-001") where the prefix letter comes from a
// fixed category table; cuttings get "<parentID>-C<seq>" (e.g.
// "A-001-C02").
//
// Both allocators are pure functions of the collection snapshot they are
// handed. There is no hidden counter: calling NextRootID twice against
// the same snapshot yields the same ID, so callers must re-derive from
// the latest snapshot before each allocation.
package plantid

import (
	"fmt"
	"regexp"
	"strconv"

	"sporelia/models"
)

// DefaultPrefix is used for any category missing from the table.
const DefaultPrefix = "U"

// typePrefixes maps category names to their ID letter. Kept 1:1 so the
// inverse lookup stays unambiguous.
var typePrefixes = map[string]string{
	"Aroids":     "A",
	"Begonias":   "B",
	"Cacti":      "C",
	"Dracaenas":  "D",
	"Ficus":      "F",
	"Gesneriads": "G",
	"Hoyas":      "H",
	"Marantas":   "M",
	"Orchids":    "O",
	"Palms":      "P",
	"Succulents": "S",
}

var (
	rootIDPattern  = regexp.MustCompile(`^[A-Z]-\d{3}$`)
	childIDPattern = regexp.MustCompile(`^[A-Z]-\d{3}(-C\d{2})+$`)
)

// PrefixFor resolves a category name to its single-letter ID prefix,
// falling back to DefaultPrefix for unrecognized or missing categories.
func PrefixFor(plantType string) string {
	if p, ok := typePrefixes[plantType]; ok {
		return p
	}
	return DefaultPrefix
}

// PlantTypeFromID returns the category a root ID's prefix letter maps to,
// or "" when the prefix is unknown. Lossy by construction if the table
// ever stops being 1:1.
func PlantTypeFromID(id string) string {
	if len(id) == 0 {
		return ""
	}
	prefix := string(id[0])
	for name, p := range typePrefixes {
		if p == prefix {
			return name
		}
	}
	return ""
}

// NextRootID computes the next sequential root ID for a plant of the
// given category, scanning the snapshot for the highest existing sequence
// under the same prefix.
func NextRootID(plants []models.Plant, plantType string) string {
	prefix := PrefixFor(plantType)
	re := regexp.MustCompile(`^` + regexp.QuoteMeta(prefix) + `-(\d+)$`)
	max := 0
	for _, p := range plants {
		m := re.FindStringSubmatch(p.ID)
		if m == nil {
			continue
		}
		if n, err := strconv.Atoi(m[1]); err == nil && n > max {
			max = n
		}
	}
	return fmt.Sprintf("%s-%03d", prefix, max+1)
}

// DeriveChildID computes the next cutting ID under the given parent.
// When allocating several cuttings in one batch, each call must see the
// previously allocated (not yet persisted) IDs in its snapshot or the
// batch will collide.
func DeriveChildID(plants []models.Plant, parentID string) string {
	re := regexp.MustCompile(`^` + regexp.QuoteMeta(parentID) + `-C(\d+)$`)
	max := 0
	for _, p := range plants {
		m := re.FindStringSubmatch(p.ID)
		if m == nil {
			continue
		}
		if n, err := strconv.Atoi(m[1]); err == nil && n > max {
			max = n
		}
	}
	return fmt.Sprintf("%s-C%02d", parentID, max+1)
}

// IsValidPlantID reports whether id matches the root or cutting shape.
// Diagnostic helper only; nothing enforces it on write.
func IsValidPlantID(id string) bool {
	return rootIDPattern.MatchString(id) || childIDPattern.MatchString(id)
}
