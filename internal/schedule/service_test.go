package schedule

import (
	"context"
	"errors"
	"testing"
)

// memStore is an in-memory Store for transition tests.
type memStore struct {
	entries map[string]Exception
}

func newMemStore() *memStore {
	return &memStore{entries: make(map[string]Exception)}
}

func (m *memStore) Get(ctx context.Context) (Configuration, error) {
	cfg := NewConfiguration()
	for day, exc := range m.entries {
		cfg.Exceptions[day] = exc
	}
	return cfg, nil
}

func (m *memStore) GetDay(ctx context.Context, day string) (Exception, bool, error) {
	exc, ok := m.entries[day]
	return exc, ok, nil
}

func (m *memStore) Upsert(ctx context.Context, day string, exc Exception) error {
	m.entries[day] = exc
	return nil
}

func (m *memStore) Delete(ctx context.Context, day string) error {
	delete(m.entries, day)
	return nil
}

func TestEnableCreatesEntry(t *testing.T) {
	store := newMemStore()
	svc := NewService(store, nil)

	if err := svc.Enable(context.Background(), "2025-06-10"); err != nil {
		t.Fatalf("Enable: %v", err)
	}

	exc, ok := store.entries["2025-06-10"]
	if !ok {
		t.Fatal("no entry created")
	}
	if exc.Blocked {
		t.Error("new entry is blocked")
	}
}

func TestEnableUnblocksPreservingOverrides(t *testing.T) {
	store := newMemStore()
	store.entries["2025-06-10"] = Exception{
		Blocked:       true,
		SlotOverrides: map[Slot]bool{Slot0830: true},
	}
	svc := NewService(store, nil)

	if err := svc.Enable(context.Background(), "2025-06-10"); err != nil {
		t.Fatalf("Enable: %v", err)
	}

	exc := store.entries["2025-06-10"]
	if exc.Blocked {
		t.Error("entry still blocked")
	}
	if !exc.SlotOverrides[Slot0830] {
		t.Error("slot override lost on unblock")
	}
}

func TestDisableDeletesEntry(t *testing.T) {
	store := newMemStore()
	store.entries["2025-06-10"] = Exception{
		SlotOverrides: map[Slot]bool{Slot0830: true},
	}
	svc := NewService(store, nil)

	if err := svc.Disable(context.Background(), "2025-06-10"); err != nil {
		t.Fatalf("Disable: %v", err)
	}

	if _, ok := store.entries["2025-06-10"]; ok {
		t.Error("entry still present after disable")
	}
}

func TestBlockRetainsEntry(t *testing.T) {
	store := newMemStore()
	store.entries["2025-06-10"] = Exception{
		SlotOverrides: map[Slot]bool{Slot1000: true},
	}
	svc := NewService(store, nil)

	if err := svc.Block(context.Background(), "2025-06-10"); err != nil {
		t.Fatalf("Block: %v", err)
	}

	exc, ok := store.entries["2025-06-10"]
	if !ok {
		t.Fatal("entry deleted by block")
	}
	if !exc.Blocked {
		t.Error("entry not blocked")
	}
	if !exc.SlotOverrides[Slot1000] {
		t.Error("slot override lost on block")
	}
}

func TestToggleSlotFlips(t *testing.T) {
	store := newMemStore()
	store.entries["2025-06-10"] = Exception{}
	svc := NewService(store, nil)

	if err := svc.ToggleSlot(context.Background(), "2025-06-10", Slot0830); err != nil {
		t.Fatalf("ToggleSlot: %v", err)
	}
	if !store.entries["2025-06-10"].SlotOverrides[Slot0830] {
		t.Error("first toggle did not disable the slot")
	}

	if err := svc.ToggleSlot(context.Background(), "2025-06-10", Slot0830); err != nil {
		t.Fatalf("ToggleSlot: %v", err)
	}
	if store.entries["2025-06-10"].SlotOverrides[Slot0830] {
		t.Error("second toggle did not re-enable the slot")
	}
}

func TestToggleSlotRequiresEnabledEntry(t *testing.T) {
	store := newMemStore()
	store.entries["2025-06-11"] = Exception{Blocked: true}
	svc := NewService(store, nil)

	if err := svc.ToggleSlot(context.Background(), "2025-06-10", Slot0830); !errors.Is(err, ErrDayNotEnabled) {
		t.Errorf("toggle on missing entry: err = %v, want ErrDayNotEnabled", err)
	}
	if err := svc.ToggleSlot(context.Background(), "2025-06-11", Slot0830); !errors.Is(err, ErrDayNotEnabled) {
		t.Errorf("toggle on blocked entry: err = %v, want ErrDayNotEnabled", err)
	}
}

func TestTransitionsRejectBadDay(t *testing.T) {
	svc := NewService(newMemStore(), nil)

	if err := svc.Enable(context.Background(), "10/06/2025"); err == nil {
		t.Error("Enable accepted a malformed day key")
	}
	if err := svc.ToggleSlot(context.Background(), "2025-06-10", Slot("9:00")); !errors.Is(err, ErrUnknownSlot) {
		t.Errorf("ToggleSlot with bad slot: err = %v, want ErrUnknownSlot", err)
	}
}
