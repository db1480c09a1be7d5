// Package store provides a SQLite archive of parsed machine history.
package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/theirongolddev/cnchist/internal/model"

	_ "modernc.org/sqlite" // register sqlite driver
)

// Archive persists a parsed history so it outlives log rotation and
// can be queried with plain SQL.
type Archive struct {
	db *sql.DB
}

// DefaultPath returns the archive location under the user data dir.
func DefaultPath() string {
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, "cnchist", "archive.db")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".local", "share", "cnchist", "archive.db")
}

// Open opens or creates the archive database at the given path.
func Open(dbPath string) (*Archive, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("creating archive dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=synchronous(normal)&_pragma=foreign_keys(on)")
	if err != nil {
		return nil, fmt.Errorf("opening archive db: %w", err)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &Archive{db: db}, nil
}

// Close closes the archive database.
func (a *Archive) Close() error {
	return a.db.Close()
}

// Export replaces the archive contents with the given history in one
// transaction.
func (a *Archive) Export(h model.History) error {
	tx, err := a.db.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	// Commands first so the foreign key stays satisfied.
	if _, err := tx.Exec("DELETE FROM commands"); err != nil {
		return err
	}
	if _, err := tx.Exec("DELETE FROM sessions"); err != nil {
		return err
	}

	now := time.Now().UTC().Format(time.RFC3339)
	for i, s := range h {
		end, closed := s.End()
		closedFlag := 0
		if closed {
			closedFlag = 1
		}

		_, err = tx.Exec(`INSERT INTO sessions
			(session_id, position, start_time, end_time, closed,
			 commands, command_files, user_files,
			 total_secs, actual_secs, end_of_day_secs, between_secs, exported_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			s.ID.String(), i, timeText(s.StartTime), timeText(end), closedFlag,
			s.Totals.Commands, s.Totals.CommandFiles, s.Totals.UserFiles,
			int64(s.Totals.Total.Seconds()), int64(s.Totals.Actual.Seconds()),
			int64(s.Totals.EndOfDay.Seconds()), int64(s.Totals.Between.Seconds()), now,
		)
		if err != nil {
			return err
		}

		for j, c := range s.Commands {
			_, err = tx.Exec(`INSERT INTO commands
				(command_id, session_id, position, filename, status,
				 minutes, seconds, start_time, end_time,
				 rapid_secs, feed_secs, laser_secs,
				 axes, outputs, inputs, atc)
				VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
				c.ID.String(), s.ID.String(), j, c.Filename, c.Status,
				c.Minutes, c.Seconds, timeText(c.Start), timeText(c.End),
				int64(c.Rapid.Seconds()), int64(c.Feed.Seconds()), int64(c.Laser.Seconds()),
				strings.Join(c.Axes[:], ","), strings.Join(c.Outputs[:], ","),
				strings.Join(c.Inputs[:], ","), strings.Join(c.ATC[:], ","),
			)
			if err != nil {
				return err
			}
		}
	}

	return tx.Commit()
}

// Load reconstructs the archived history. Aggregates are recomputed
// from the command rows rather than read back.
func (a *Archive) Load() (model.History, error) {
	rows, err := a.db.Query(`SELECT session_id, start_time, end_time, closed
		FROM sessions ORDER BY position`)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var history model.History
	index := make(map[string]*model.Session)

	for rows.Next() {
		var idStr, startStr, endStr string
		var closed int
		if err := rows.Scan(&idStr, &startStr, &endStr, &closed); err != nil {
			return nil, err
		}

		id, err := model.ParseID(idStr)
		if err != nil {
			return nil, err
		}
		s := model.NewSession(parseTimeText(startStr))
		s.ID = id
		if closed != 0 {
			s.Close(parseTimeText(endStr))
		}

		history = append(history, s)
		index[idStr] = s
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	cmdRows, err := a.db.Query(`SELECT
		command_id, session_id, filename, status, minutes, seconds,
		start_time, end_time, rapid_secs, feed_secs, laser_secs,
		axes, outputs, inputs, atc
		FROM commands ORDER BY session_id, position`)
	if err != nil {
		return nil, err
	}
	defer func() { _ = cmdRows.Close() }()

	for cmdRows.Next() {
		var idStr, sid, axes, outputs, inputs, atc string
		var startStr, endStr string
		var rapid, feed, laser int64
		c := &model.Command{}

		err := cmdRows.Scan(&idStr, &sid, &c.Filename, &c.Status, &c.Minutes, &c.Seconds,
			&startStr, &endStr, &rapid, &feed, &laser,
			&axes, &outputs, &inputs, &atc)
		if err != nil {
			return nil, err
		}

		c.ID, err = model.ParseID(idStr)
		if err != nil {
			return nil, err
		}
		c.Start = parseTimeText(startStr)
		c.End = parseTimeText(endStr)
		c.Rapid = time.Duration(rapid) * time.Second
		c.Feed = time.Duration(feed) * time.Second
		c.Laser = time.Duration(laser) * time.Second
		c.Duration = c.Rapid + c.Feed + c.Laser
		copyState(c.Axes[:], axes)
		copyState(c.Outputs[:], outputs)
		copyState(c.Inputs[:], inputs)
		copyState(c.ATC[:], atc)

		s, ok := index[sid]
		if !ok {
			return nil, fmt.Errorf("command %s references unknown session %s", idStr, sid)
		}
		s.Append(c)
	}
	if err := cmdRows.Err(); err != nil {
		return nil, err
	}

	for _, s := range history {
		s.Recalculate()
	}

	return history, nil
}

// Counts returns the number of archived sessions and commands.
func (a *Archive) Counts() (sessions, commands int, err error) {
	if err = a.db.QueryRow("SELECT COUNT(*) FROM sessions").Scan(&sessions); err != nil {
		return 0, 0, err
	}
	if err = a.db.QueryRow("SELECT COUNT(*) FROM commands").Scan(&commands); err != nil {
		return 0, 0, err
	}
	return sessions, commands, nil
}

func timeText(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}

func parseTimeText(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	t, _ := time.Parse(time.RFC3339, s)
	return t
}

func copyState(dst []string, packed string) {
	parts := strings.Split(packed, ",")
	for i := range dst {
		if i < len(parts) {
			dst[i] = parts[i]
		}
	}
}
