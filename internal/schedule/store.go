package schedule

import (
	"context"
	"errors"
	"log"
)

var ErrDayNotEnabled = errors.New("day is not enabled")

// Store persists the exception map. Read on every availability check, written
// only by admin actions.
type Store interface {
	Get(ctx context.Context) (Configuration, error)
	GetDay(ctx context.Context, day string) (Exception, bool, error)
	Upsert(ctx context.Context, day string, exc Exception) error
	Delete(ctx context.Context, day string) error
}

// CacheInvalidator drops any cached availability snapshot for a day after its
// entry changes.
type CacheInvalidator interface {
	Invalidate(ctx context.Context, day string) error
}

// Service applies the admin transitions on exception entries. Each mutation
// persists immediately and invalidates the day's availability snapshot.
type Service struct {
	store Store
	cache CacheInvalidator // may be nil
}

func NewService(store Store, cache CacheInvalidator) *Service {
	return &Service{store: store, cache: cache}
}

func (s *Service) Configuration(ctx context.Context) (Configuration, error) {
	return s.store.Get(ctx)
}

func (s *Service) Day(ctx context.Context, day string) (Exception, bool, error) {
	if _, err := ParseDay(day); err != nil {
		return Exception{}, false, err
	}
	return s.store.GetDay(ctx, day)
}

// Enable creates or unblocks a day's entry, preserving any existing slot
// overrides.
func (s *Service) Enable(ctx context.Context, day string) error {
	if _, err := ParseDay(day); err != nil {
		return err
	}

	exc, ok, err := s.store.GetDay(ctx, day)
	if err != nil {
		return err
	}
	if !ok {
		exc = Exception{}
	}
	exc.Blocked = false

	if err := s.store.Upsert(ctx, day, exc); err != nil {
		return err
	}
	s.invalidate(ctx, day)
	return nil
}

// Disable deletes the day's entry entirely, reverting it to implicitly
// unavailable and discarding its slot overrides. This is deliberate: disable
// means "forget this day", not a toggle to blocked.
func (s *Service) Disable(ctx context.Context, day string) error {
	if _, err := ParseDay(day); err != nil {
		return err
	}

	if err := s.store.Delete(ctx, day); err != nil {
		return err
	}
	s.invalidate(ctx, day)
	return nil
}

// Block keeps the day's entry but marks it unavailable, retaining its slot
// overrides for a later Enable.
func (s *Service) Block(ctx context.Context, day string) error {
	if _, err := ParseDay(day); err != nil {
		return err
	}

	exc, ok, err := s.store.GetDay(ctx, day)
	if err != nil {
		return err
	}
	if !ok {
		exc = Exception{}
	}
	exc.Blocked = true

	if err := s.store.Upsert(ctx, day, exc); err != nil {
		return err
	}
	s.invalidate(ctx, day)
	return nil
}

// ToggleSlot flips one slot override. Only valid on an enabled entry.
func (s *Service) ToggleSlot(ctx context.Context, day string, slot Slot) error {
	if _, err := ParseDay(day); err != nil {
		return err
	}
	if _, err := ParseSlot(string(slot)); err != nil {
		return err
	}

	exc, ok, err := s.store.GetDay(ctx, day)
	if err != nil {
		return err
	}
	if !ok || exc.Blocked {
		return ErrDayNotEnabled
	}

	if exc.SlotOverrides == nil {
		exc.SlotOverrides = make(map[Slot]bool)
	}
	exc.SlotOverrides[slot] = !exc.SlotOverrides[slot]

	if err := s.store.Upsert(ctx, day, exc); err != nil {
		return err
	}
	s.invalidate(ctx, day)
	return nil
}

func (s *Service) invalidate(ctx context.Context, day string) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx, day); err != nil {
		log.Printf("failed to invalidate availability for %s: %v", day, err)
	}
}
