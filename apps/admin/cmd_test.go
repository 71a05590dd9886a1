package main

import (
	"io/ioutil"
	"log"
	"testing"

	"github.com/trezcool/ratiba/core/schedule"
	"github.com/trezcool/ratiba/storage/database/inmem"
)

func setup(t *testing.T) (*commandLine, schedule.Repository) {
	t.Helper()
	logger = log.New(ioutil.Discard, "", 0)

	db, err := inmemdb.Open()
	if err != nil {
		t.Fatalf("setup() failed: %v", err)
	}
	repo := inmemdb.NewEventRepository(db)
	return &commandLine{evtSvc: schedule.NewService(repo)}, repo
}

func TestCommandLineRun(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr error
	}{
		{name: "no command", args: []string{"admin"}, wantErr: errHelp},
		{name: "unknown command", args: []string{"admin", "dropdb"}, wantErr: errHelp},
		{name: "seedevents without teacher", args: []string{"admin", "seedevents"}, wantErr: errHelp},
		{name: "seedevents bad weeks", args: []string{"admin", "seedevents", "-teacher", "t-1", "-weeks", "0"}, wantErr: errHelp},
		{name: "seedevents", args: []string{"admin", "seedevents", "-teacher", "t-1"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cli, _ := setup(t)
			if err := cli.run(tt.args); err != tt.wantErr {
				t.Errorf("run() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestSeedEvents(t *testing.T) {
	cli, repo := setup(t)

	if err := cli.run([]string{"admin", "seedevents", "-teacher", "t-1", "-weeks", "2"}); err != nil {
		t.Fatalf("run() error = %v", err)
	}

	events, err := repo.QueryAllEvents()
	if err != nil {
		t.Fatalf("QueryAllEvents() error = %v", err)
	}
	if want := 2 * len(demoWeek); len(events) != want {
		t.Errorf("seeded %d events, want %d", len(events), want)
	}
	for _, evt := range events {
		if evt.TeacherID != "t-1" {
			t.Errorf("event %q teacher = %q, want t-1", evt.Title, evt.TeacherID)
		}
		if !evt.End.After(evt.Start) {
			t.Errorf("event %q has non-positive duration", evt.Title)
		}
	}
}
