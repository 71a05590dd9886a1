package schedule

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/trezcool/ratiba/core"
)

var (
	ErrUnknownField = errors.New("unknown form field")
	ErrUnsavedDraft = errors.New("draft has not been saved yet")
)

// Draft mirrors the Event shape as raw form inputs. Start/End hold wall-clock
// values in LocalLayout.
type Draft struct {
	Title       string
	Type        string
	Start       string
	End         string
	Location    string
	Description string
	Status      string
}

// Form drives event creation and editing: it owns a draft, validates it on
// submit and emits a create or update request through the Mutator. Field
// edits are not validated until submit, so intermediate invalid states are
// allowed while typing.
type Form struct {
	mut Mutator

	orig     *Event // nil when creating
	clientID string
	draft    Draft
	errors   map[string]string
}

// NewForm seeds a form draft. When editing, existing supplies the draft's
// initial values; when creating, the draft defaults to a one-hour class
// starting now, and gets a temporary client ID for optimistic display until
// the repository assigns the real one.
func NewForm(mut Mutator, existing *Event, now time.Time) *Form {
	f := &Form{mut: mut, errors: make(map[string]string)}
	if existing != nil {
		evt := *existing
		f.orig = &evt
		f.clientID = evt.ID
		f.draft = Draft{
			Title:       evt.Title,
			Type:        evt.Type,
			Start:       FormatLocal(evt.Start),
			End:         FormatLocal(evt.End),
			Location:    evt.Location,
			Description: evt.Description,
			Status:      evt.Status,
		}
		return f
	}

	f.clientID = TempIDPrefix + uuid.New().String()
	f.draft = Draft{
		Type:   TypeClass,
		Start:  FormatLocal(now),
		End:    FormatLocal(now.Add(time.Hour)),
		Status: StatusScheduled,
	}
	return f
}

func (f *Form) EditMode() bool { return f.orig != nil }

// ClientID identifies the draft for display: the persisted event's ID when
// editing, a TempIDPrefix-ed placeholder otherwise.
func (f *Form) ClientID() string { return f.clientID }

func (f *Form) Draft() Draft { return f.draft }

// Errors returns the field-keyed error map populated by the last Submit.
func (f *Form) Errors() map[string]string {
	errs := make(map[string]string, len(f.errors))
	for fld, msg := range f.errors {
		errs[fld] = msg
	}
	return errs
}

// SetField updates one draft field without validating.
func (f *Form) SetField(name, value string) error {
	switch name {
	case "title":
		f.draft.Title = value
	case "type":
		f.draft.Type = value
	case "start":
		f.draft.Start = value
	case "end":
		f.draft.End = value
	case "location":
		f.draft.Location = value
	case "description":
		f.draft.Description = value
	case "status":
		f.draft.Status = value
	default:
		return ErrUnknownField
	}
	return nil
}

// Submit validates the draft and emits a create request (no prior ID) or an
// update request (prior ID present) carrying the full draft. On validation
// failure the error map is populated and nothing is emitted; the caller keeps
// the form open. A repository rejection preserves the draft so no input is
// lost.
func (f *Form) Submit() (Event, error) {
	f.errors = make(map[string]string)

	if f.orig != nil {
		// The draft carries the full event, so an empty title here was blanked
		// by the user; it must not fall back to the original's.
		if core.CleanString(f.draft.Title) == "" {
			err := core.NewValidationError(errors.New(blankTitleText), core.FieldError{Field: "title", Error: blankTitleText})
			f.collectErrors(err)
			return Event{}, err
		}

		ue := UpdateEvent{
			Title:       f.draft.Title,
			Type:        f.draft.Type,
			Start:       f.draft.Start,
			End:         f.draft.End,
			Location:    &f.draft.Location,
			Description: &f.draft.Description,
			Status:      f.draft.Status,
		}
		if err := ue.Validate(*f.orig); err != nil {
			f.collectErrors(err)
			return Event{}, err
		}
		return f.mut.UpdateEvent(f.orig.ID, ue)
	}

	ne := NewEvent{
		Title:       f.draft.Title,
		Type:        f.draft.Type,
		Start:       f.draft.Start,
		End:         f.draft.End,
		Location:    f.draft.Location,
		Description: f.draft.Description,
		Status:      f.draft.Status,
	}
	if err := ne.Validate(); err != nil {
		f.collectErrors(err)
		return Event{}, err
	}
	return f.mut.CreateEvent(ne)
}

// Delete emits a delete request for the edited event. Never offered for an
// unsaved draft.
func (f *Form) Delete() error {
	if f.orig == nil {
		return ErrUnsavedDraft
	}
	return f.mut.DeleteEvent(f.orig.ID)
}

func (f *Form) collectErrors(err error) {
	switch err := err.(type) {
	case validator.ValidationErrors:
		for _, vErr := range err {
			f.errors[vErr.Field()] = vErr.Translate(core.Translator)
		}
	case *core.ValidationError:
		for _, fErr := range err.Fields {
			f.errors[fErr.Field] = fErr.Error
		}
	}
}
