package store

// Operation names tracked by the store. Loading and error status is kept
// per operation so unrelated in-flight operations never clobber each
// other.
const (
	OpLoadPlants      = "LOAD_PLANTS"
	OpAddPlant        = "ADD_PLANT"
	OpAddCutting      = "ADD_CUTTING"
	OpAddBulkCuttings = "ADD_BULK_CUTTINGS"
	OpUpdatePlant     = "UPDATE_PLANT"
	OpDeletePlant     = "DELETE_PLANT"
)

// Action is a dispatched store event. One concrete type per event kind;
// the reducer switches on them.
type Action interface{ isAction() }

// Start marks an operation as in flight.
type Start struct {
	Operation string
	EntityID  string
}

// Success completes an operation and applies its collection transform.
// Payload shape depends on the operation: a plant list for OpLoadPlants
// and OpAddBulkCuttings, a single plant for OpAddPlant, OpAddCutting and
// OpUpdatePlant, and a plant ID for OpDeletePlant.
type Success struct {
	Operation string
	EntityID  string
	Payload   any
}

// Error completes an operation with a normalized error message. The
// collection is left untouched.
type Error struct {
	Operation string
	EntityID  string
	Message   string
}

// ClearError clears only the global error field.
type ClearError struct{}

func (Start) isAction()      {}
func (Success) isAction()    {}
func (Error) isAction()      {}
func (ClearError) isAction() {}
