package schedule

import (
	"strings"
	"testing"
	"time"
)

func TestNewFormDefaults(t *testing.T) {
	now := time.Date(2024, time.March, 4, 9, 0, 0, 0, time.UTC)
	f := NewForm(&mutationRecorder{}, nil, now)

	if f.EditMode() {
		t.Error("EditMode() = true for a create form")
	}
	draft := f.Draft()
	if draft.Type != TypeClass {
		t.Errorf("Type = %q, want %q", draft.Type, TypeClass)
	}
	if draft.Status != StatusScheduled {
		t.Errorf("Status = %q, want %q", draft.Status, StatusScheduled)
	}
	if draft.Start != FormatLocal(now) {
		t.Errorf("Start = %q, want %q", draft.Start, FormatLocal(now))
	}
	if draft.End != FormatLocal(now.Add(time.Hour)) {
		t.Errorf("End = %q, want now + 1 hour", draft.End)
	}
	if !strings.HasPrefix(f.ClientID(), TempIDPrefix) {
		t.Errorf("ClientID() = %q, want a %q temp id", f.ClientID(), TempIDPrefix)
	}
}

func TestNewFormSeedsFromExisting(t *testing.T) {
	start, _ := ParseLocal("2024-03-04T09:00")
	end, _ := ParseLocal("2024-03-04T10:30")
	evt := Event{
		ID:       "evt-42",
		Title:    "Algebra Review",
		Type:     TypeExam,
		Start:    start,
		End:      end,
		Location: "Room A1",
		Status:   StatusScheduled,
	}
	f := NewForm(&mutationRecorder{}, &evt, time.Now())

	if !f.EditMode() {
		t.Error("EditMode() = false for an edit form")
	}
	if f.ClientID() != "evt-42" {
		t.Errorf("ClientID() = %q, want evt-42", f.ClientID())
	}
	draft := f.Draft()
	if draft.Title != evt.Title || draft.Type != evt.Type || draft.Location != evt.Location {
		t.Errorf("draft = %+v, want seeded from event", draft)
	}
	if draft.Start != "2024-03-04T09:00" || draft.End != "2024-03-04T10:30" {
		t.Errorf("draft times = %q/%q, want event's wall-clock values", draft.Start, draft.End)
	}
}

// Submitting a create form whose end precedes its start fails on the end field
// and emits zero create requests.
func TestFormSubmitEndBeforeStart(t *testing.T) {
	rec := &mutationRecorder{}
	f := NewForm(rec, nil, time.Now())

	_ = f.SetField("title", "Algebra Review")
	_ = f.SetField("start", "2024-03-04T09:00")
	_ = f.SetField("end", "2024-03-04T08:00")

	if _, err := f.Submit(); err == nil {
		t.Fatal("Submit() error = nil, want validation failure")
	}
	if msg, ok := f.Errors()["end"]; !ok || msg == "" {
		t.Errorf("Errors() = %v, want keyed on end", f.Errors())
	}
	if rec.emissions() != 0 {
		t.Errorf("Submit() emitted %d mutations, want 0", rec.emissions())
	}
}

// Intermediate invalid states are allowed while typing; only Submit validates.
func TestFormSetFieldDoesNotValidate(t *testing.T) {
	f := NewForm(&mutationRecorder{}, nil, time.Now())

	if err := f.SetField("start", "garbage"); err != nil {
		t.Fatalf("SetField() error = %v", err)
	}
	if len(f.Errors()) != 0 {
		t.Errorf("Errors() = %v before submit, want empty", f.Errors())
	}
	if err := f.SetField("teacher", "x"); err != ErrUnknownField {
		t.Errorf("SetField(unknown) error = %v, want ErrUnknownField", err)
	}
}

func TestFormSubmitCreate(t *testing.T) {
	rec := &mutationRecorder{}
	f := NewForm(rec, nil, time.Now())

	_ = f.SetField("title", "Algebra Review")
	_ = f.SetField("type", TypeOfficeHours)
	_ = f.SetField("start", "2024-03-04T09:00")
	_ = f.SetField("end", "2024-03-04T10:00")
	_ = f.SetField("location", "Room B12")

	evt, err := f.Submit()
	if err != nil {
		t.Fatalf("Submit() error = %v", err)
	}
	if len(rec.created) != 1 || rec.emissions() != 1 {
		t.Fatalf("emissions = %d created of %d total, want exactly 1 create", len(rec.created), rec.emissions())
	}
	ne := rec.created[0]
	if ne.Title != "Algebra Review" || ne.Type != TypeOfficeHours || ne.Location != "Room B12" {
		t.Errorf("create request = %+v", ne)
	}
	if evt.ID == "" || strings.HasPrefix(evt.ID, TempIDPrefix) {
		t.Errorf("created event id = %q, want repository-assigned", evt.ID)
	}
}

// Editing only the location emits an update carrying the unchanged id, start,
// end and the new location.
func TestFormSubmitUpdateLocationOnly(t *testing.T) {
	start, _ := ParseLocal("2024-03-04T09:00")
	end, _ := ParseLocal("2024-03-04T10:30")
	evt := Event{
		ID:       "evt-42",
		Title:    "Algebra Review",
		Type:     TypeClass,
		Start:    start,
		End:      end,
		Location: "Room A1",
		Status:   StatusScheduled,
	}

	rec := &mutationRecorder{}
	f := NewForm(rec, &evt, time.Now())
	_ = f.SetField("location", "Room B12")

	if _, err := f.Submit(); err != nil {
		t.Fatalf("Submit() error = %v", err)
	}
	if len(rec.updated) != 1 || rec.emissions() != 1 {
		t.Fatalf("emissions = %d updated of %d total, want exactly 1 update", len(rec.updated), rec.emissions())
	}
	up := rec.updated[0]
	if up.id != "evt-42" {
		t.Errorf("update id = %q, want unchanged evt-42", up.id)
	}
	if up.ue.Start != "2024-03-04T09:00" || up.ue.End != "2024-03-04T10:30" {
		t.Errorf("update times = %q/%q, want unchanged", up.ue.Start, up.ue.End)
	}
	if up.ue.Title != "Algebra Review" {
		t.Errorf("update title = %q, want unchanged", up.ue.Title)
	}
	if up.ue.Location == nil || *up.ue.Location != "Room B12" {
		t.Errorf("update location = %v, want Room B12", up.ue.Location)
	}
}

// Blanking the title in an edit form fails on the title field like it does on
// a create form; it never silently reverts to the saved value, and nothing is
// emitted.
func TestFormSubmitBlankedTitle(t *testing.T) {
	start, _ := ParseLocal("2024-03-04T09:00")
	end, _ := ParseLocal("2024-03-04T10:30")
	evt := Event{
		ID:     "evt-42",
		Title:  "Algebra Review",
		Type:   TypeClass,
		Start:  start,
		End:    end,
		Status: StatusScheduled,
	}

	for _, title := range []string{"", "   \t "} {
		rec := &mutationRecorder{}
		f := NewForm(rec, &evt, time.Now())
		_ = f.SetField("title", title)

		if _, err := f.Submit(); err == nil {
			t.Fatalf("Submit() error = nil for title %q, want validation failure", title)
		}
		if msg, ok := f.Errors()["title"]; !ok || msg == "" {
			t.Errorf("Errors() = %v for title %q, want keyed on title", f.Errors(), title)
		}
		if rec.emissions() != 0 {
			t.Errorf("Submit() emitted %d mutations for title %q, want 0", rec.emissions(), title)
		}
		if f.Draft().Title != title {
			t.Errorf("draft title = %q, want kept as %q", f.Draft().Title, title)
		}
	}
}

func TestFormDelete(t *testing.T) {
	start, _ := ParseLocal("2024-03-04T09:00")
	evt := Event{ID: "evt-42", Title: "Algebra Review", Start: start, End: start.Add(time.Hour)}

	t.Run("edit mode", func(t *testing.T) {
		rec := &mutationRecorder{}
		f := NewForm(rec, &evt, time.Now())
		if err := f.Delete(); err != nil {
			t.Fatalf("Delete() error = %v", err)
		}
		if len(rec.deleted) != 1 || rec.deleted[0] != "evt-42" {
			t.Errorf("deletes = %v, want exactly [evt-42]", rec.deleted)
		}
		if rec.emissions() != 1 {
			t.Errorf("emissions = %d, want the delete only", rec.emissions())
		}
	})

	t.Run("unsaved draft", func(t *testing.T) {
		rec := &mutationRecorder{}
		f := NewForm(rec, nil, time.Now())
		if err := f.Delete(); err != ErrUnsavedDraft {
			t.Errorf("Delete() error = %v, want ErrUnsavedDraft", err)
		}
		if rec.emissions() != 0 {
			t.Errorf("emissions = %d, want 0", rec.emissions())
		}
	})
}

// A repository rejection surfaces as a retryable error; the draft is kept so
// the user loses nothing.
func TestFormSubmitRejected(t *testing.T) {
	rec := &mutationRecorder{err: ErrNotFound}
	f := NewForm(rec, nil, time.Now())

	_ = f.SetField("title", "Algebra Review")
	_ = f.SetField("start", "2024-03-04T09:00")
	_ = f.SetField("end", "2024-03-04T10:00")

	if _, err := f.Submit(); err != ErrNotFound {
		t.Fatalf("Submit() error = %v, want rejection passed through", err)
	}
	if f.Draft().Title != "Algebra Review" {
		t.Errorf("draft lost after rejection: %+v", f.Draft())
	}

	// retry succeeds once the collaborator recovers
	rec.err = nil
	if _, err := f.Submit(); err != nil {
		t.Fatalf("retry Submit() error = %v", err)
	}
	if len(rec.created) != 1 {
		t.Errorf("creates = %d, want 1 after retry", len(rec.created))
	}
}
