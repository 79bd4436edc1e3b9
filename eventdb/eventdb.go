package eventdb

import (
	"database/sql"

	sqlite3 "github.com/mattn/go-sqlite3"

	"github.com/CAGS295/stacks-core/stacks"
)

// Event is one recorded delegation event.
type Event struct {
	BurnHeight uint64           `json:"burnHeight"`
	Index      uint32           `json:"eventIndex"`
	Origin     stacks.Principal `json:"origin"`
	Name       string           `json:"name"`
	Data       []byte           `json:"data"` // RLP encoding of the delegation record
}

type OrderType string

const (
	ASC  OrderType = "ASC"
	DESC OrderType = "DESC"
)

// Range limits results to burn heights in [From, To].
type Range struct {
	From uint64 `json:"from"`
	To   uint64 `json:"to"`
}

type Options struct {
	Offset uint64 `json:"offset"`
	Limit  uint64 `json:"limit"`
}

// Filter filters recorded events.
type Filter struct {
	Origin  *stacks.Principal `json:"origin"`
	Name    string            `json:"name"` // empty matches any event name
	Order   OrderType         `json:"order"`
	Range   *Range
	Options *Options
}

// EventDB manages recorded delegation events.
type EventDB struct {
	path          string
	db            *sql.DB
	sqliteVersion string
}

// New opens an event db.
func New(path string) (*EventDB, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}
	if _, err := db.Exec(eventTableSchema); err != nil {
		return nil, err
	}
	s, _, _ := sqlite3.Version()
	return &EventDB{
		path:          path,
		db:            db,
		sqliteVersion: s,
	}, nil
}

// NewMem creates a memory backed sqlite db.
func NewMem() (*EventDB, error) {
	return New(":memory:")
}

// Close closes the db.
func (db *EventDB) Close() error {
	return db.db.Close()
}

func (db *EventDB) Path() string {
	return db.path
}

// Insert inserts events into the db in one transaction.
func (db *EventDB) Insert(events []*Event) error {
	if len(events) == 0 {
		return nil
	}
	tx, err := db.db.Begin()
	if err != nil {
		return err
	}
	for _, event := range events {
		if _, err = tx.Exec(
			"INSERT OR REPLACE INTO event(burnHeight, eventIndex, origin, name, data) VALUES (?, ?, ?, ?, ?);",
			event.BurnHeight,
			event.Index,
			event.Origin.Bytes(),
			event.Name,
			event.Data,
		); err != nil {
			tx.Rollback()
			return err
		}
	}
	return tx.Commit()
}

// Filter returns events matching the filter. A nil filter returns everything.
func (db *EventDB) Filter(filter *Filter) ([]*Event, error) {
	if filter == nil {
		return db.query("SELECT * FROM event ORDER BY burnHeight, eventIndex ASC")
	}
	var args []any
	stmt := "SELECT * FROM event WHERE 1"
	if filter.Range != nil {
		args = append(args, filter.Range.From)
		stmt += " AND burnHeight >= ? "
		if filter.Range.To >= filter.Range.From {
			args = append(args, filter.Range.To)
			stmt += " AND burnHeight <= ? "
		}
	}
	if filter.Origin != nil {
		args = append(args, filter.Origin.Bytes())
		stmt += " AND origin = ? "
	}
	if filter.Name != "" {
		args = append(args, filter.Name)
		stmt += " AND name = ? "
	}

	if filter.Order == DESC {
		stmt += " ORDER BY burnHeight DESC, eventIndex DESC "
	} else {
		stmt += " ORDER BY burnHeight ASC, eventIndex ASC "
	}

	if filter.Options != nil {
		stmt += " limit ?, ? "
		args = append(args, filter.Options.Offset, filter.Options.Limit)
	}
	return db.query(stmt, args...)
}

func (db *EventDB) query(stmt string, args ...any) ([]*Event, error) {
	rows, err := db.db.Query(stmt, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []*Event
	for rows.Next() {
		var (
			burnHeight uint64
			index      uint32
			origin     []byte
			name       string
			data       []byte
		)
		if err := rows.Scan(
			&burnHeight,
			&index,
			&origin,
			&name,
			&data,
		); err != nil {
			return nil, err
		}
		events = append(events, &Event{
			BurnHeight: burnHeight,
			Index:      index,
			Origin:     stacks.BytesToPrincipal(origin),
			Name:       name,
			Data:       data,
		})
	}
	return events, rows.Err()
}
