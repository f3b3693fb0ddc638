package state

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pos_terminal/internal/models"
	"pos_terminal/internal/storage"
)

type failingStore struct{}

func (failingStore) Read(string) (string, error) { return "", storage.ErrKeyNotFound }
func (failingStore) Write(string, string) error  { return errors.New("disk full") }
func (failingStore) Close() error                { return nil }

func TestLoadFallsBackToDefaults(t *testing.T) {
	tests := []struct {
		name   string
		stored string
	}{
		{name: "empty_store", stored: ""},
		{name: "corrupt_payload", stored: "{not json"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			store := storage.NewMemoryStore()
			if tc.stored != "" {
				require.NoError(t, store.Write(StateKey, tc.stored))
			}

			container := NewContainer(store)
			assert.Equal(t, models.DefaultState(), container.GetState())
		})
	}
}

func TestLoadMergesOverDefaults(t *testing.T) {
	store := storage.NewMemoryStore()
	// An older payload without the taxes field: defaults must survive.
	require.NoError(t, store.Write(StateKey, `{"products":[{"id":1,"name":"Espresso","price":10}],"currentOrderId":3}`))

	st := NewContainer(store).GetState()
	assert.Len(t, st.Products, 1)
	assert.Equal(t, int64(3), st.CurrentOrderID)
	assert.Equal(t, models.DefaultState().Taxes, st.Taxes)
}

func TestSetStateMergesShallow(t *testing.T) {
	container := NewContainer(storage.NewMemoryStore())
	require.NoError(t, container.SetState(Patch{
		Products: ProductList([]models.Product{{ID: 1, Name: "Espresso"}}),
	}))
	require.NoError(t, container.SetState(Patch{CurrentItemID: ID(7)}))

	st := container.GetState()
	// The second patch must not disturb fields it did not carry.
	assert.Len(t, st.Products, 1)
	assert.Equal(t, int64(7), st.CurrentItemID)
}

func TestSetStatePersists(t *testing.T) {
	store := storage.NewMemoryStore()
	container := NewContainer(store)

	require.NoError(t, container.SetState(Patch{CurrentOrderID: ID(5)}))

	raw, err := store.Read(StateKey)
	require.NoError(t, err)
	var persisted models.TerminalState
	require.NoError(t, json.Unmarshal([]byte(raw), &persisted))
	assert.Equal(t, int64(5), persisted.CurrentOrderID)
}

func TestRoundTrip(t *testing.T) {
	store := storage.NewMemoryStore()
	container := NewContainer(store)

	require.NoError(t, container.SetState(Patch{
		Products: ProductList([]models.Product{{ID: 1, Name: "Espresso", Price: 10, Taxes: []int64{1}}}),
		Orders: OrderList([]models.Order{{
			ID: 1, Items: []models.OrderItem{{ProductID: 1, Quantity: 2, Price: 10}}, TotalAmount: 20,
		}}),
		CurrentOrderID: ID(1),
	}))

	reloaded := NewContainer(store)
	assert.Equal(t, container.GetState(), reloaded.GetState())
}

func TestWriteFailureKeepsInMemoryState(t *testing.T) {
	container := NewContainer(failingStore{})

	err := container.SetState(Patch{CurrentUserID: ID(2)})
	assert.ErrorIs(t, err, ErrStorageWrite)
	// No rollback: the committed state stays visible.
	assert.Equal(t, int64(2), container.GetState().CurrentUserID)
}

func TestSnapshotIsIsolated(t *testing.T) {
	container := NewContainer(storage.NewMemoryStore())
	require.NoError(t, container.SetState(Patch{
		Products: ProductList([]models.Product{{ID: 1, Name: "Espresso"}}),
	}))

	snapshot := container.GetState()
	snapshot.Products[0].Name = "Mutated"

	assert.Equal(t, "Espresso", container.GetState().Products[0].Name)
}

func TestUpdateErrorSkipsCommit(t *testing.T) {
	container := NewContainer(storage.NewMemoryStore())
	boom := errors.New("boom")

	err := container.Update(func(models.TerminalState) (Patch, error) {
		return Patch{CurrentUserID: ID(9)}, boom
	})
	assert.ErrorIs(t, err, boom)
	assert.Zero(t, container.GetState().CurrentUserID)
}
