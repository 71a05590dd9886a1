package schedule

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/trezcool/ratiba/core"
)

var (
	// errors
	ErrNotFound = errors.New("event not found")
)

type (
	Repository interface {
		CreateEvent(evt Event) (Event, error)
		QueryAllEvents() ([]Event, error)
		GetEventByID(id string) (Event, error)
		// FilterEvents applies AND operation on available QueryFilter fields.
		// QueryFilter.Search does a case-insensitive match on one of Event.Title,
		// Event.Location or Event.Description.
		FilterEvents(filter QueryFilter) ([]Event, error)
		UpdateEvent(evt Event) (Event, error)
		DeleteEventsByID(ids ...string) error
	}

	// Mutator is the single owner of event mutations. The drag-placement and
	// form controllers emit typed requests through it instead of patching a
	// shared event list; the owner applies them and republishes the list.
	Mutator interface {
		CreateEvent(ne NewEvent) (Event, error)
		UpdateEvent(id string, ue UpdateEvent) (Event, error)
		MoveEvent(id string, mv MoveEvent) (Event, error)
		DeleteEvent(id string) error
	}

	Service struct {
		repo Repository
	}
)

var _ Mutator = (*Service)(nil)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (svc *Service) CreateEvent(ne NewEvent) (Event, error) {
	start, end, err := parseTimes(ne.Start, ne.End)
	if err != nil {
		return Event{}, err
	}
	now := time.Now().UTC()
	evt := Event{
		ID:          uuid.New().String(),
		TeacherID:   ne.TeacherID,
		Title:       ne.Title,
		Type:        ne.Type,
		Start:       start,
		End:         end,
		Location:    ne.Location,
		Description: ne.Description,
		Status:      ne.Status,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	return svc.repo.CreateEvent(evt)
}

func (svc *Service) UpdateEvent(id string, ue UpdateEvent) (Event, error) {
	evt, err := svc.repo.GetEventByID(id)
	if err != nil {
		return Event{}, err
	}

	start, end, err := parseTimes(ue.Start, ue.End)
	if err != nil {
		return Event{}, err
	}
	evt.Title = ue.Title
	evt.Type = ue.Type
	evt.Start = start
	evt.End = end
	if ue.Location != nil {
		evt.Location = *ue.Location
	}
	if ue.Description != nil {
		evt.Description = *ue.Description
	}
	evt.Status = ue.Status
	evt.UpdatedAt = time.Now().UTC()
	return svc.repo.UpdateEvent(evt)
}

func (svc *Service) MoveEvent(id string, mv MoveEvent) (Event, error) {
	evt, err := svc.repo.GetEventByID(id)
	if err != nil {
		return Event{}, err
	}
	evt.Start = mv.Start
	evt.End = mv.End
	evt.UpdatedAt = time.Now().UTC()
	return svc.repo.UpdateEvent(evt)
}

func (svc *Service) DeleteEvent(id string) error {
	return svc.repo.DeleteEventsByID(id)
}

func (svc *Service) QueryAll() ([]Event, error) {
	return svc.repo.QueryAllEvents()
}

func (svc *Service) GetByID(id string) (Event, error) {
	return svc.repo.GetEventByID(id)
}

func (svc *Service) Filter(filter QueryFilter) ([]Event, error) {
	return svc.repo.FilterEvents(filter)
}

func (svc *Service) Delete(ids ...string) error {
	return svc.repo.DeleteEventsByID(ids...)
}

// parseTimes materializes validated wall-clock inputs. A daylight-savings gap
// can still surface here; it is reported as a field error, not a fault.
func parseTimes(startVal, endVal string) (start, end time.Time, err error) {
	if start, err = ParseLocal(startVal); err != nil {
		return start, end, core.NewValidationError(err, core.FieldError{Field: "start", Error: err.Error()})
	}
	if end, err = ParseLocal(endVal); err != nil {
		return start, end, core.NewValidationError(err, core.FieldError{Field: "end", Error: err.Error()})
	}
	return start, end, nil
}
