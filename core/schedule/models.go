package schedule

import (
	"strings"
	"time"

	"github.com/trezcool/ratiba/core"
)

// Event types
const (
	TypeClass       = "class"
	TypeOfficeHours = "office_hours"
	TypeMeeting     = "meeting"
	TypeExam        = "exam"
)

// Event statuses
const (
	StatusScheduled  = "scheduled"
	StatusInProgress = "in_progress"
	StatusCompleted  = "completed"
	StatusCancelled  = "cancelled"
)

var (
	AllTypes    = []string{TypeClass, TypeOfficeHours, TypeMeeting, TypeExam}
	AllStatuses = []string{StatusScheduled, StatusInProgress, StatusCompleted, StatusCancelled}

	Types = []EventType{
		{Name: "Class", Value: TypeClass},
		{Name: "Office Hours", Value: TypeOfficeHours},
		{Name: "Meeting", Value: TypeMeeting},
		{Name: "Exam", Value: TypeExam},
	}
)

type EventType struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// TempIDPrefix marks client-side identifiers minted for optimistic display
// of unsaved drafts. The repository remains the ID authority: an event only
// gets its real ID on create.
const TempIDPrefix = "tmp-"

type Event struct {
	ID          string    `json:"id"`
	TeacherID   string    `json:"teacher_id"`
	Title       string    `json:"title"`
	Type        string    `json:"type"`
	Start       time.Time `json:"start"`
	End         time.Time `json:"end"`
	Location    string    `json:"location"`
	Description string    `json:"description"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"` // UTC
	UpdatedAt   time.Time `json:"updated_at"` // UTC
}

// Duration is always positive for a valid Event.
func (e Event) Duration() time.Duration {
	return e.End.Sub(e.Start)
}

func (e Event) IsPersisted() bool {
	return e.ID != "" && !strings.HasPrefix(e.ID, TempIDPrefix)
}

// NewEvent contains information needed to create a new Event.
// Start/End are wall-clock inputs in the rendering locale (see LocalLayout).
type NewEvent struct {
	TeacherID   string `json:"teacher_id"`
	Title       string `json:"title" validate:"required,notblank"`
	Type        string `json:"type" validate:"omitempty,eventtype"`
	Start       string `json:"start" validate:"required,localtime"`
	End         string `json:"end" validate:"required,localtime"`
	Location    string `json:"location"`
	Description string `json:"description"`
	Status      string `json:"status" validate:"omitempty,eventstatus"`
}

func (ne *NewEvent) Validate() error {
	ne.Title = core.CleanString(ne.Title)
	ne.Location = core.CleanString(ne.Location)
	if ne.Type == "" {
		ne.Type = TypeClass
	}
	if ne.Status == "" {
		ne.Status = StatusScheduled
	}
	return core.Validate.Struct(ne)
}

// UpdateEvent defines what information may be provided to modify an existing Event.
// Empty fields fall back to the original's values; Location and Description are
// pointers so they can be cleared explicitly. A whitespace-only Title is a
// blanked field, not an absent one, and fails validation instead of reverting.
type UpdateEvent struct {
	Title       string  `json:"title" validate:"omitempty,notblank"`
	Type        string  `json:"type" validate:"omitempty,eventtype"`
	Start       string  `json:"start" validate:"omitempty,localtime"`
	End         string  `json:"end" validate:"omitempty,localtime"`
	Location    *string `json:"location"`
	Description *string `json:"description"`
	Status      string  `json:"status" validate:"omitempty,eventstatus"`
}

func (ue *UpdateEvent) Validate(origEvt Event) error {
	if ue.Title == "" {
		ue.Title = origEvt.Title
	} else if title := core.CleanString(ue.Title); title != "" {
		ue.Title = title
	} // whitespace-only stays put so notblank reports it

	if ue.Type == "" {
		ue.Type = origEvt.Type
	}
	if ue.Status == "" {
		ue.Status = origEvt.Status
	}
	if ue.Start == "" {
		ue.Start = FormatLocal(origEvt.Start)
	}
	if ue.End == "" {
		ue.End = FormatLocal(origEvt.End)
	}
	return core.Validate.Struct(ue)
}

// MoveEvent is the mutation emitted by a drag-placement drop: new start/end
// instants for an existing event, with its duration preserved.
type MoveEvent struct {
	Start time.Time `json:"start" validate:"required"`
	End   time.Time `json:"end" validate:"required,gtfield=Start"`
}

func (me MoveEvent) Validate() error { return core.Validate.Struct(me) }

type QueryFilter struct {
	Search    string    `query:"search"`
	TeacherID string    `query:"teacher_id"`
	Types     []string  `query:"type"`
	Statuses  []string  `query:"status"`
	From      time.Time `query:"from"`
	To        time.Time `query:"to"`

	// Orderings is bound from the `ordering` query param by the API layer.
	Orderings []core.DBOrdering
}

func (qf *QueryFilter) IsEmpty() bool {
	return qf.Search == "" && qf.TeacherID == "" && qf.Types == nil && qf.Statuses == nil &&
		qf.From.IsZero() && qf.To.IsZero()
}

func (qf *QueryFilter) Clean() {
	qf.Search = core.CleanString(qf.Search)
	qf.TeacherID = core.CleanString(qf.TeacherID)
}
