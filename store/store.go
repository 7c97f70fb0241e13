// Package store is the in-memory state machine for the plant collection.
// All state lives in a single State value mutated only by the pure reduce
// function; the Store serializes dispatches, standing in for the
// single-threaded event loop the reducer was designed for.
package store

import (
	"sync"

	"sporelia/models"
)

// MsgUpdateMissing is recorded when an update success targets a plant
// that is not in the collection. The source silently appended in that
// case; here it is an explicit error and the collection stays untouched.
const MsgUpdateMissing = "Plant not found."

// OperationStatus tracks one operation's loading/error state.
type OperationStatus struct {
	IsLoading bool
	Err       string
}

// State is the reducer-owned aggregate. IsLoading and Err mirror the most
// recent operation for simple consumers; Operations keeps the full
// per-operation picture.
type State struct {
	Plants            []models.Plant
	IsLoading         bool
	Err               string
	DynamicPlantTypes []string
	Operations        map[string]OperationStatus
}

func initialState() State {
	return State{
		Plants:            []models.Plant{},
		DynamicPlantTypes: []string{},
		Operations:        map[string]OperationStatus{},
	}
}

func cloneOps(ops map[string]OperationStatus) map[string]OperationStatus {
	out := make(map[string]OperationStatus, len(ops)+1)
	for k, v := range ops {
		out[k] = v
	}
	return out
}

func clonePlants(plants []models.Plant) []models.Plant {
	out := make([]models.Plant, len(plants))
	copy(out, plants)
	return out
}

// reduce applies one action to the state and returns the next state. Pure
// with respect to its inputs: the incoming state is never mutated.
func reduce(state State, action Action) State {
	switch a := action.(type) {
	case Start:
		state.IsLoading = true
		state.Err = ""
		ops := cloneOps(state.Operations)
		ops[a.Operation] = OperationStatus{IsLoading: true}
		state.Operations = ops
		return state

	case Success:
		return reduceSuccess(state, a)

	case Error:
		state.IsLoading = false
		state.Err = a.Message
		ops := cloneOps(state.Operations)
		ops[a.Operation] = OperationStatus{Err: a.Message}
		state.Operations = ops
		return state

	case ClearError:
		state.Err = ""
		return state

	default:
		return state
	}
}

func reduceSuccess(state State, a Success) State {
	state.IsLoading = false
	state.Err = ""
	ops := cloneOps(state.Operations)
	ops[a.Operation] = OperationStatus{}
	state.Operations = ops

	switch a.Operation {
	case OpLoadPlants:
		plants, ok := a.Payload.([]models.Plant)
		if !ok {
			return state
		}
		state.Plants = clonePlants(plants)

	case OpAddPlant, OpAddCutting:
		plant, ok := a.Payload.(models.Plant)
		if !ok {
			return state
		}
		state.Plants = append(clonePlants(state.Plants), plant)

	case OpAddBulkCuttings:
		plants, ok := a.Payload.([]models.Plant)
		if !ok {
			return state
		}
		state.Plants = append(clonePlants(state.Plants), plants...)

	case OpUpdatePlant:
		plant, ok := a.Payload.(models.Plant)
		if !ok {
			return state
		}
		next := clonePlants(state.Plants)
		found := false
		for i := range next {
			if next[i].ID == plant.ID {
				next[i] = plant
				found = true
				break
			}
		}
		if !found {
			// Updating a plant that is not in the collection is an
			// error, not a silent append.
			state.Err = MsgUpdateMissing
			ops := cloneOps(state.Operations)
			ops[a.Operation] = OperationStatus{Err: MsgUpdateMissing}
			state.Operations = ops
			return state
		}
		state.Plants = next

	case OpDeletePlant:
		id, ok := a.Payload.(string)
		if !ok {
			return state
		}
		next := make([]models.Plant, 0, len(state.Plants))
		for _, p := range state.Plants {
			if p.ID != id {
				next = append(next, p)
			}
		}
		state.Plants = next

	default:
		// Operations without a collection transform only clear status.
		return state
	}

	state.DynamicPlantTypes = DynamicPlantTypes(state.Plants)
	return state
}

// Store owns the collection state for one application session. Dispatches
// are serialized, so actions are reduced strictly in delivery order.
type Store struct {
	mu    sync.Mutex
	state State
}

func NewStore() *Store {
	return &Store{state: initialState()}
}

// Dispatch reduces one action into the store.
func (s *Store) Dispatch(action Action) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = reduce(s.state, action)
}

// State returns a copy of the current state. Mutating the copy does not
// affect the store.
func (s *Store) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	st := s.state
	st.Plants = clonePlants(st.Plants)
	st.DynamicPlantTypes = append([]string{}, st.DynamicPlantTypes...)
	st.Operations = cloneOps(st.Operations)
	return st
}

// Operation returns the tracked status for one operation name.
func (s *Store) Operation(name string) OperationStatus {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Operations[name]
}
