package testutil

import (
	"bytes"
	"encoding/json"
	"reflect"
	"testing"
	"time"

	"github.com/pmezard/go-difflib/difflib"

	"github.com/trezcool/ratiba/core/schedule"
)

func CreateEvent(
	t *testing.T,
	repo schedule.Repository,
	teacherID, title, typ string,
	start time.Time,
	duration time.Duration,
	createdAt ...time.Time,
) schedule.Event {
	t.Helper()

	tstamp := time.Now().UTC()
	if len(createdAt) > 0 {
		tstamp = createdAt[0].UTC()
	}
	evt := schedule.Event{
		TeacherID: teacherID,
		Title:     title,
		Type:      typ,
		Start:     start,
		End:       start.Add(duration),
		Status:    schedule.StatusScheduled,
		CreatedAt: tstamp,
		UpdatedAt: tstamp,
	}
	evt, err := repo.CreateEvent(evt)
	if err != nil {
		t.Fatalf("CreateEvent() failed: %v", err)
	}
	return evt
}

// AssertJSONEqual compares two JSON documents structurally and fails with a
// readable unified diff of their pretty-printed forms.
func AssertJSONEqual(t *testing.T, want, got []byte) {
	t.Helper()

	var wantVal, gotVal interface{}
	if err := json.Unmarshal(want, &wantVal); err != nil {
		t.Fatalf("unmarshalling want: %v", err)
	}
	if err := json.Unmarshal(got, &gotVal); err != nil {
		t.Fatalf("unmarshalling got: %v", err)
	}
	if reflect.DeepEqual(wantVal, gotVal) {
		return
	}

	diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(prettyJSON(t, wantVal)),
		B:        difflib.SplitLines(prettyJSON(t, gotVal)),
		FromFile: "want",
		ToFile:   "got",
		Context:  2,
	})
	if err != nil {
		t.Fatalf("diffing JSON: %v", err)
	}
	t.Errorf("JSON mismatch:\n%s", diff)
}

func prettyJSON(t *testing.T, val interface{}) string {
	t.Helper()
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	if err := enc.Encode(val); err != nil {
		t.Fatalf("encoding JSON: %v", err)
	}
	return buf.String()
}
