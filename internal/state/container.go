package state

import (
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/rs/zerolog/log"

	"pos_terminal/internal/models"
	"pos_terminal/internal/storage"
)

// StateKey is the store key the serialized tree lives under.
const StateKey = "state"

// ErrStorageWrite is returned by SetState when the durable write fails.
// The in-memory update is NOT rolled back: the terminal keeps working with
// the committed state, it is just not yet durably saved.
var ErrStorageWrite = errors.New("error writing state to offline storage")

// Container holds the current state tree and is the single mutation point.
// The mutex serializes commits, so each read-then-write operation runs to
// completion before the next one starts.
type Container struct {
	mu    sync.Mutex
	state models.TerminalState
	store storage.Store
}

// NewContainer builds a container around store, initializing state from the
// stored tree. A missing key or unparseable payload falls back to the
// default tree; parse failures are logged, never fatal.
func NewContainer(store storage.Store) *Container {
	return &Container{
		state: load(store),
		store: store,
	}
}

func load(store storage.Store) models.TerminalState {
	initial := models.DefaultState()
	raw, err := store.Read(StateKey)
	if err != nil {
		if !errors.Is(err, storage.ErrKeyNotFound) {
			log.Error().Err(err).Msg("Failed to read stored state, starting from defaults")
		}
		return initial
	}
	// Unmarshal over the default tree so fields missing from older stored
	// payloads keep their defaults.
	if err := json.Unmarshal([]byte(raw), &initial); err != nil {
		log.Error().Err(err).Msg("Failed to parse stored state, starting from defaults")
		return models.DefaultState()
	}
	return initial
}

// GetState returns a deep-copy snapshot of the current tree. Callers may
// read it freely; mutations to the snapshot never reach the container.
func (c *Container) GetState() models.TerminalState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state.Clone()
}

// SetState merges patch into the current state, installs the result and
// persists the serialized tree through the store adapter. The new state is
// visible to readers before the durable write; a failed write surfaces as
// ErrStorageWrite without rollback.
func (c *Container) SetState(patch Patch) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state = apply(c.state, patch)
	return c.persist()
}

// Update runs fn against a snapshot of the current state and commits the
// patch it returns, all under the container lock. This is how the
// operations service gets atomic read-then-write semantics.
func (c *Container) Update(fn func(models.TerminalState) (Patch, error)) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	patch, err := fn(c.state.Clone())
	if err != nil {
		return err
	}
	c.state = apply(c.state, patch)
	return c.persist()
}

func (c *Container) persist() error {
	serialized, err := json.Marshal(c.state)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrStorageWrite, err)
	}
	if err := c.store.Write(StateKey, string(serialized)); err != nil {
		log.Error().Err(err).Msg("State committed in memory but not durably saved")
		return fmt.Errorf("%w: %v", ErrStorageWrite, err)
	}
	log.Debug().Int("bytes", len(serialized)).Msg("State persisted")
	return nil
}
