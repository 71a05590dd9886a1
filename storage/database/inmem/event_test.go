package inmemdb

import (
	"testing"
	"time"

	"github.com/trezcool/ratiba/core"
	"github.com/trezcool/ratiba/core/schedule"
	"github.com/trezcool/ratiba/tests"
)

func setup(t *testing.T) schedule.Repository {
	t.Helper()
	db, err := Open()
	if err != nil {
		t.Fatalf("setup() failed: %v", err)
	}
	return NewEventRepository(db)
}

func TestEventRepositoryCRUD(t *testing.T) {
	repo := setup(t)
	start := time.Date(2024, time.March, 4, 9, 0, 0, 0, time.UTC)

	evt := testutil.CreateEvent(t, repo, "t-1", "Algebra I", schedule.TypeClass, start, time.Hour)
	if evt.ID == "" {
		t.Fatal("CreateEvent() assigned no id")
	}

	got, err := repo.GetEventByID(evt.ID)
	if err != nil {
		t.Fatalf("GetEventByID() error = %v", err)
	}
	if got.Title != "Algebra I" {
		t.Errorf("Title = %q", got.Title)
	}

	got.Location = "Room A1"
	if _, err = repo.UpdateEvent(got); err != nil {
		t.Fatalf("UpdateEvent() error = %v", err)
	}
	got, _ = repo.GetEventByID(evt.ID)
	if got.Location != "Room A1" {
		t.Errorf("Location = %q after update", got.Location)
	}

	if _, err := repo.UpdateEvent(schedule.Event{ID: "nope"}); err != schedule.ErrNotFound {
		t.Errorf("UpdateEvent(unknown) error = %v, want ErrNotFound", err)
	}

	if err := repo.DeleteEventsByID(evt.ID); err != nil {
		t.Fatalf("DeleteEventsByID() error = %v", err)
	}
	if _, err := repo.GetEventByID(evt.ID); err != schedule.ErrNotFound {
		t.Errorf("GetEventByID() after delete error = %v, want ErrNotFound", err)
	}
}

func TestEventRepositoryFilter(t *testing.T) {
	repo := setup(t)
	mon := time.Date(2024, time.March, 4, 9, 0, 0, 0, time.UTC)

	algebra := testutil.CreateEvent(t, repo, "t-1", "Algebra I", schedule.TypeClass, mon, time.Hour)
	office := testutil.CreateEvent(t, repo, "t-1", "Office Hours", schedule.TypeOfficeHours, mon.Add(26*time.Hour), 90*time.Minute)
	exam := testutil.CreateEvent(t, repo, "t-2", "Midterm Exam", schedule.TypeExam, mon.Add(4*24*time.Hour), 2*time.Hour)

	tests := []struct {
		name    string
		filter  schedule.QueryFilter
		wantIDs []string
	}{
		{name: "empty returns all by start", filter: schedule.QueryFilter{}, wantIDs: []string{algebra.ID, office.ID, exam.ID}},
		{name: "search title", filter: schedule.QueryFilter{Search: "algebra"}, wantIDs: []string{algebra.ID}},
		{name: "teacher", filter: schedule.QueryFilter{TeacherID: "t-2"}, wantIDs: []string{exam.ID}},
		{
			name:    "types",
			filter:  schedule.QueryFilter{Types: []string{schedule.TypeClass, schedule.TypeExam}},
			wantIDs: []string{algebra.ID, exam.ID},
		},
		{
			name:    "time window",
			filter:  schedule.QueryFilter{From: mon.Add(time.Hour), To: mon.Add(48 * time.Hour)},
			wantIDs: []string{office.ID},
		},
		{
			name: "ordering by title desc",
			filter: schedule.QueryFilter{
				Orderings: []core.DBOrdering{{Field: "title", Ascending: false}},
			},
			wantIDs: []string{office.ID, exam.ID, algebra.ID},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			events, err := repo.FilterEvents(tt.filter)
			if err != nil {
				t.Fatalf("FilterEvents() error = %v", err)
			}
			if len(events) != len(tt.wantIDs) {
				t.Fatalf("FilterEvents() returned %d events, want %d", len(events), len(tt.wantIDs))
			}
			for i, id := range tt.wantIDs {
				if events[i].ID != id {
					t.Errorf("events[%d].ID = %q, want %q", i, events[i].ID, id)
				}
			}
		})
	}
}
