package database

import (
	"database/sql"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	"github.com/volatiletech/null/v8"

	"github.com/trezcool/ratiba/core"
	"github.com/trezcool/ratiba/core/schedule"
)

type eventRepository struct {
	db *sqlx.DB
}

var _ schedule.Repository = (*eventRepository)(nil) // interface compliance check

func NewEventRepository(db *sqlx.DB) *eventRepository {
	return &eventRepository{db: db}
}

// eventRow maps the "event" table. Optional free-text columns are nullable.
type eventRow struct {
	ID          string      `db:"id"`
	TeacherID   null.String `db:"teacher_id"`
	Title       string      `db:"title"`
	Type        string      `db:"type"`
	StartTime   time.Time   `db:"start_time"`
	EndTime     time.Time   `db:"end_time"`
	Location    null.String `db:"location"`
	Description null.String `db:"description"`
	Status      string      `db:"status"`
	CreatedAt   time.Time   `db:"created_at"`
	UpdatedAt   time.Time   `db:"updated_at"`
}

func (repo eventRepository) row(evt schedule.Event) eventRow {
	return eventRow{
		ID:          evt.ID,
		TeacherID:   null.NewString(evt.TeacherID, evt.TeacherID != ""),
		Title:       evt.Title,
		Type:        evt.Type,
		StartTime:   evt.Start.UTC(),
		EndTime:     evt.End.UTC(),
		Location:    null.NewString(evt.Location, evt.Location != ""),
		Description: null.NewString(evt.Description, evt.Description != ""),
		Status:      evt.Status,
		CreatedAt:   evt.CreatedAt.UTC(),
		UpdatedAt:   evt.UpdatedAt.UTC(),
	}
}

func (repo eventRepository) unrow(row eventRow) schedule.Event {
	return schedule.Event{
		ID:          row.ID,
		TeacherID:   row.TeacherID.String,
		Title:       row.Title,
		Type:        row.Type,
		Start:       row.StartTime,
		End:         row.EndTime,
		Location:    row.Location.String,
		Description: row.Description.String,
		Status:      row.Status,
		CreatedAt:   row.CreatedAt,
		UpdatedAt:   row.UpdatedAt,
	}
}

func (repo eventRepository) unrows(rows []eventRow) []schedule.Event {
	events := make([]schedule.Event, 0, len(rows))
	for _, row := range rows {
		events = append(events, repo.unrow(row))
	}
	return events
}

func (repo eventRepository) CreateEvent(evt schedule.Event) (schedule.Event, error) {
	if evt.ID == "" {
		evt.ID = uuid.New().String()
	}
	row := repo.row(evt)
	_, err := repo.db.NamedExec(`
		INSERT INTO event (id, teacher_id, title, type, start_time, end_time, location, description, status, created_at, updated_at)
		VALUES (:id, :teacher_id, :title, :type, :start_time, :end_time, :location, :description, :status, :created_at, :updated_at)`,
		row,
	)
	if err != nil {
		return schedule.Event{}, errors.Wrap(err, "creating event")
	}
	return repo.unrow(row), nil
}

func (repo eventRepository) QueryAllEvents() ([]schedule.Event, error) {
	var rows []eventRow
	if err := repo.db.Select(&rows, "SELECT * FROM event ORDER BY start_time"); err != nil {
		return nil, errors.Wrap(err, "querying events")
	}
	return repo.unrows(rows), nil
}

func (repo eventRepository) GetEventByID(id string) (schedule.Event, error) {
	var row eventRow
	if err := repo.db.Get(&row, "SELECT * FROM event WHERE id = $1", id); err != nil {
		if err == sql.ErrNoRows {
			return schedule.Event{}, schedule.ErrNotFound
		}
		return schedule.Event{}, errors.Wrap(err, "getting event")
	}
	return repo.unrow(row), nil
}

func (repo eventRepository) FilterEvents(filter schedule.QueryFilter) ([]schedule.Event, error) {
	query := "SELECT * FROM event WHERE true"
	args := make([]interface{}, 0, 6)

	if filter.Search != "" {
		query += " AND (title ILIKE ? OR location ILIKE ? OR description ILIKE ?)"
		search := "%" + filter.Search + "%"
		args = append(args, search, search, search)
	}
	if filter.TeacherID != "" {
		query += " AND teacher_id = ?"
		args = append(args, filter.TeacherID)
	}
	if filter.Types != nil {
		query += " AND type IN (?)"
		args = append(args, filter.Types)
	}
	if filter.Statuses != nil {
		query += " AND status IN (?)"
		args = append(args, filter.Statuses)
	}
	if !filter.From.IsZero() {
		query += " AND start_time >= ?"
		args = append(args, filter.From.UTC())
	}
	if !filter.To.IsZero() {
		query += " AND start_time <= ?"
		args = append(args, filter.To.UTC())
	}
	query += orderBy(filter.Orderings)

	query, inArgs, err := sqlx.In(query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "building events filter")
	}

	var rows []eventRow
	if err := repo.db.Select(&rows, repo.db.Rebind(query), inArgs...); err != nil {
		return nil, errors.Wrap(err, "filtering events")
	}
	return repo.unrows(rows), nil
}

// orderableColumns whitelists the fields the `ordering` query param may sort on.
var orderableColumns = map[string]string{
	"title":      "title",
	"type":       "type",
	"status":     "status",
	"start":      "start_time",
	"end":        "end_time",
	"created_at": "created_at",
}

func orderBy(orderings []core.DBOrdering) string {
	cols := make([]string, 0, len(orderings))
	for _, ord := range orderings {
		if col, ok := orderableColumns[ord.Field]; ok {
			cols = append(cols, core.DBOrdering{Field: col, Ascending: ord.Ascending}.String())
		}
	}
	if len(cols) == 0 {
		return " ORDER BY start_time"
	}
	return " ORDER BY " + strings.Join(cols, ", ")
}

func (repo eventRepository) UpdateEvent(evt schedule.Event) (schedule.Event, error) {
	row := repo.row(evt)
	res, err := repo.db.NamedExec(`
		UPDATE event
		SET teacher_id = :teacher_id, title = :title, type = :type, start_time = :start_time, end_time = :end_time,
		    location = :location, description = :description, status = :status, updated_at = :updated_at
		WHERE id = :id`,
		row,
	)
	if err != nil {
		return schedule.Event{}, errors.Wrap(err, "updating event")
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return schedule.Event{}, schedule.ErrNotFound
	}
	return repo.GetEventByID(evt.ID)
}

func (repo eventRepository) DeleteEventsByID(ids ...string) error {
	if len(ids) == 0 {
		return nil
	}
	query, args, err := sqlx.In("DELETE FROM event WHERE id IN (?)", ids)
	if err != nil {
		return errors.Wrap(err, "building events delete")
	}
	if _, err := repo.db.Exec(repo.db.Rebind(query), args...); err != nil {
		return errors.Wrap(err, "deleting events")
	}
	return nil
}
