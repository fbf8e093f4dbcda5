package store

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/ashishakkumar/resource-allocator/internal/plan"
)

// Run summarizes one scheduling run.
type Run struct {
	ID         int64
	Seed       int64
	Days       int
	Placements int
	Backups    int
	Conflicts  int
	CreatedAt  time.Time
}

// SaveRun persists a finalized schedule with its residual conflicts and
// returns the new run ID.
func (db *DB) SaveRun(seed int64, schedule plan.Schedule, conflicts []plan.Conflict) (int64, error) {
	tx, err := db.Begin()
	if err != nil {
		return 0, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	result, err := tx.Exec(
		`INSERT INTO runs (seed, days, placements, backups, conflicts) VALUES (?, ?, ?, ?, ?)`,
		seed, len(schedule), schedule.Total(), schedule.BackupCount(), len(conflicts),
	)
	if err != nil {
		return 0, fmt.Errorf("inserting run: %w", err)
	}
	runID, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("reading run id: %w", err)
	}

	for _, date := range schedule.Dates() {
		for _, sa := range schedule[date] {
			var original sql.NullString
			if sa.IsBackup {
				original = sql.NullString{String: sa.OriginalActivity, Valid: true}
			}
			_, err := tx.Exec(
				`INSERT INTO placements (run_id, date, time, name, type, facilitator, location, duration_minutes, is_backup, original_activity)
				 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
				runID, date, sa.Time, sa.Name, string(sa.Type), sa.Facilitator, sa.Location,
				sa.Duration(), sa.IsBackup, original,
			)
			if err != nil {
				return 0, fmt.Errorf("inserting placement: %w", err)
			}
		}
	}

	for _, c := range conflicts {
		_, err := tx.Exec(
			`INSERT INTO conflicts (run_id, date, activity1, time1, duration1, activity2, time2)
			 VALUES (?, ?, ?, ?, ?, ?, ?)`,
			runID, c.Date, c.Activity1, c.Time1, c.Duration1, c.Activity2, c.Time2,
		)
		if err != nil {
			return 0, fmt.Errorf("inserting conflict: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("committing run: %w", err)
	}
	return runID, nil
}

// ListRuns returns run summaries, most recent first.
func (db *DB) ListRuns() ([]Run, error) {
	rows, err := db.Query(
		`SELECT id, seed, days, placements, backups, conflicts, created_at
		 FROM runs ORDER BY created_at DESC, id DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("querying runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		var createdStr string
		if err := rows.Scan(&r.ID, &r.Seed, &r.Days, &r.Placements, &r.Backups, &r.Conflicts, &createdStr); err != nil {
			return nil, fmt.Errorf("scanning run: %w", err)
		}
		if t, err := time.Parse("2006-01-02 15:04:05", createdStr); err == nil {
			r.CreatedAt = t
		} else if t, err := time.Parse(time.RFC3339, createdStr); err == nil {
			r.CreatedAt = t
		}
		runs = append(runs, r)
	}

	return runs, rows.Err()
}

// GetRunSchedule reconstructs the stored schedule for a run. The rebuilt
// document carries placement fields only; catalog details are not persisted.
func (db *DB) GetRunSchedule(runID int64) (plan.Schedule, error) {
	rows, err := db.Query(
		`SELECT date, time, name, type, facilitator, location, duration_minutes, is_backup, original_activity
		 FROM placements WHERE run_id = ? ORDER BY date ASC, time ASC`,
		runID,
	)
	if err != nil {
		return nil, fmt.Errorf("querying placements: %w", err)
	}
	defer rows.Close()

	schedule := make(plan.Schedule)
	for rows.Next() {
		var sa plan.ScheduledActivity
		var date, typeStr string
		var original sql.NullString
		if err := rows.Scan(&date, &sa.Time, &sa.Name, &typeStr, &sa.Facilitator, &sa.Location,
			&sa.DurationMinutes, &sa.IsBackup, &original); err != nil {
			return nil, fmt.Errorf("scanning placement: %w", err)
		}
		sa.Type = plan.ActivityType(typeStr)
		sa.OriginalActivity = original.String
		schedule[date] = append(schedule[date], sa)
	}

	return schedule, rows.Err()
}
