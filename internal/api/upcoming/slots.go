package upcoming

import (
	"errors"
	"sort"
	"time"

	"streaming-app/internal/domain/upcoming"

	"gorm.io/gorm"
)

// ErrSlotConflict means a requested content_order cannot be honored: the
// list is full below the target and nothing can move.
var ErrSlotConflict = errors.New("cannot resolve content order conflict - no available positions")

// SlotEntry is the slice of an announcement the slot manager needs.
type SlotEntry struct {
	ID           string
	ContentOrder int
	CreatedAt    time.Time
}

// SlotStore is the persistence surface reserveSlot drives. The database
// implementation runs inside the caller's transaction; tests use an
// in-memory fake.
type SlotStore interface {
	ListLive(excludeID string) ([]SlotEntry, error)
	UpdateOrder(id string, newOrder int) error
}

type dbSlotStore struct {
	db *gorm.DB
}

func newSlotStore(db *gorm.DB) SlotStore {
	return &dbSlotStore{db: db}
}

func (s *dbSlotStore) ListLive(excludeID string) ([]SlotEntry, error) {
	q := s.db.Model(&upcoming.UpcomingContent{}).
		Select("id", "content_order", "created_at").
		Order("content_order ASC").
		Order("created_at ASC")
	if excludeID != "" {
		q = q.Where("id <> ?", excludeID)
	}

	var entries []SlotEntry
	if err := q.Scan(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

func (s *dbSlotStore) UpdateOrder(id string, newOrder int) error {
	return s.db.Model(&upcoming.UpcomingContent{}).
		Where("id = ?", id).
		Update("content_order", newOrder).Error
}

// reserveSlot frees targetOrder for the caller's own write. When another
// announcement already sits there it shifts the tail up by one (preferred,
// needs headroom below the cap), otherwise it compacts into the lowest free
// slot below the target. Shifts are applied highest-first (shift-up) or
// lowest-first (shift-down) so no transient duplicate order is ever visible.
//
// excludeID skips the record being updated; pass "" on insert.
func reserveSlot(store SlotStore, targetOrder int, excludeID string) error {
	entries, err := store.ListLive(excludeID)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		return nil
	}

	var conflicting *SlotEntry
	for i := range entries {
		if entries[i].ContentOrder == targetOrder {
			conflicting = &entries[i]
			break
		}
	}
	if conflicting == nil {
		// slot is free
		return nil
	}

	maxOrder := 0
	for _, e := range entries {
		if e.ContentOrder > maxOrder {
			maxOrder = e.ContentOrder
		}
	}

	if maxOrder < upcoming.MaxAnnouncements {
		return shiftUp(store, entries, targetOrder)
	}
	return shiftDown(store, entries, conflicting, targetOrder)
}

// shiftUp moves every entry at or above targetOrder one slot higher,
// processing the highest order first. Duplicate orders should not exist, but
// when they do the older entry moves first (created_at ascending priority).
func shiftUp(store SlotStore, entries []SlotEntry, targetOrder int) error {
	toShift := make([]SlotEntry, 0, len(entries))
	for _, e := range entries {
		if e.ContentOrder >= targetOrder {
			toShift = append(toShift, e)
		}
	}
	sort.Slice(toShift, func(i, j int) bool {
		if toShift[i].ContentOrder != toShift[j].ContentOrder {
			return toShift[i].ContentOrder > toShift[j].ContentOrder
		}
		return toShift[i].CreatedAt.After(toShift[j].CreatedAt)
	})

	for _, e := range toShift {
		newOrder := e.ContentOrder + 1
		if newOrder > upcoming.MaxAnnouncements {
			// Cannot complete every shift without breaching the cap; fail
			// the whole reservation rather than leave a duplicate behind.
			return ErrSlotConflict
		}
		if err := store.UpdateOrder(e.ID, newOrder); err != nil {
			return err
		}
	}
	return nil
}

// shiftDown runs when the list has no headroom: it finds the lowest unused
// slot below targetOrder, pulls the range [availablePosition, targetOrder)
// down by one, then drops the conflicting entry into targetOrder-1.
func shiftDown(store SlotStore, entries []SlotEntry, conflicting *SlotEntry, targetOrder int) error {
	used := make(map[int]bool, len(entries))
	for _, e := range entries {
		used[e.ContentOrder] = true
	}

	availablePosition := 1
	for used[availablePosition] && availablePosition < targetOrder {
		availablePosition++
	}
	if availablePosition >= targetOrder {
		return ErrSlotConflict
	}

	toShift := make([]SlotEntry, 0, len(entries))
	for _, e := range entries {
		if e.ContentOrder >= availablePosition && e.ContentOrder < targetOrder {
			toShift = append(toShift, e)
		}
	}
	sort.Slice(toShift, func(i, j int) bool {
		if toShift[i].ContentOrder != toShift[j].ContentOrder {
			return toShift[i].ContentOrder < toShift[j].ContentOrder
		}
		return toShift[i].CreatedAt.Before(toShift[j].CreatedAt)
	})

	for _, e := range toShift {
		newOrder := e.ContentOrder - 1
		if newOrder < 1 {
			continue
		}
		if err := store.UpdateOrder(e.ID, newOrder); err != nil {
			return err
		}
	}

	return store.UpdateOrder(conflicting.ID, targetOrder-1)
}
