package inmemdb

import (
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/trezcool/ratiba/core"
	"github.com/trezcool/ratiba/core/schedule"
)

type eventRepository struct {
	db *eventTable
}

func NewEventRepository(db *DB) schedule.Repository {
	return &eventRepository{db: db.event}
}

func (repo *eventRepository) query() []schedule.Event {
	events := make([]schedule.Event, 0, len(repo.db.table))
	for _, evt := range repo.db.table {
		events = append(events, *evt)
	}
	sort.Slice(events, func(i, j int) bool { return events[i].Start.Before(events[j].Start) })
	return events
}

func (repo *eventRepository) CreateEvent(evt schedule.Event) (schedule.Event, error) {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	if evt.ID == "" {
		evt.ID = uuid.New().String()
	}
	repo.db.table[evt.ID] = &evt
	return evt, nil
}

func (repo *eventRepository) QueryAllEvents() ([]schedule.Event, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()
	return repo.query(), nil
}

func (repo *eventRepository) GetEventByID(id string) (schedule.Event, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	if evt, ok := repo.db.table[id]; ok {
		return *evt, nil
	}
	return schedule.Event{}, schedule.ErrNotFound
}

func (repo *eventRepository) FilterEvents(filter schedule.QueryFilter) ([]schedule.Event, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	events := make([]schedule.Event, 0)
	for _, evt := range repo.query() {
		if filter.IsEmpty() || matches(evt, filter) {
			events = append(events, evt)
		}
	}
	applyOrderings(events, filter.Orderings)
	return events, nil
}

func applyOrderings(events []schedule.Event, orderings []core.DBOrdering) {
	if len(orderings) == 0 {
		return
	}
	sort.SliceStable(events, func(i, j int) bool {
		for _, ord := range orderings {
			cmp := compareField(events[i], events[j], ord.Field)
			if cmp == 0 {
				continue
			}
			if ord.Ascending {
				return cmp < 0
			}
			return cmp > 0
		}
		return false
	})
}

func compareField(a, b schedule.Event, field string) int {
	switch field {
	case "title":
		return strings.Compare(a.Title, b.Title)
	case "type":
		return strings.Compare(a.Type, b.Type)
	case "status":
		return strings.Compare(a.Status, b.Status)
	case "end":
		return compareTimes(a.End, b.End)
	case "created_at":
		return compareTimes(a.CreatedAt, b.CreatedAt)
	default: // "start" and unknown fields
		return compareTimes(a.Start, b.Start)
	}
}

func compareTimes(a, b time.Time) int {
	switch {
	case a.Before(b):
		return -1
	case a.After(b):
		return 1
	default:
		return 0
	}
}

func (repo *eventRepository) UpdateEvent(evt schedule.Event) (schedule.Event, error) {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	orig, ok := repo.db.table[evt.ID]
	if !ok {
		return schedule.Event{}, schedule.ErrNotFound
	}
	evt.CreatedAt = orig.CreatedAt
	repo.db.table[evt.ID] = &evt
	return evt, nil
}

func (repo *eventRepository) DeleteEventsByID(ids ...string) error {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	for _, id := range ids {
		delete(repo.db.table, id)
	}
	return nil
}

func matches(evt schedule.Event, filter schedule.QueryFilter) bool {
	if filter.Search != "" {
		search := strings.ToLower(filter.Search)
		if !strings.Contains(strings.ToLower(evt.Title), search) &&
			!strings.Contains(strings.ToLower(evt.Location), search) &&
			!strings.Contains(strings.ToLower(evt.Description), search) {
			return false
		}
	}
	if filter.TeacherID != "" && evt.TeacherID != filter.TeacherID {
		return false
	}
	if filter.Types != nil && !contains(filter.Types, evt.Type) {
		return false
	}
	if filter.Statuses != nil && !contains(filter.Statuses, evt.Status) {
		return false
	}
	if !filter.From.IsZero() && evt.Start.Before(filter.From) {
		return false
	}
	if !filter.To.IsZero() && evt.Start.After(filter.To) {
		return false
	}
	return true
}

func contains(set []string, val string) bool {
	for _, s := range set {
		if s == val {
			return true
		}
	}
	return false
}
