package inmemdb

import (
	"sync"

	"github.com/trezcool/ratiba/core/schedule"
)

type (
	DB struct {
		event *eventTable
	}

	eventTable struct {
		table map[string]*schedule.Event
		mutex sync.RWMutex
	}
)

func Open() (*DB, error) {
	db := &DB{
		event: &eventTable{table: make(map[string]*schedule.Event)},
	}
	return db, nil
}
