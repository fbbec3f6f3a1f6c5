package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/mattn/go-sqlite3"

	"tip-tracker/internal/domain"
	"tip-tracker/pkg/calendar"
)

const insertShift = `
INSERT INTO tips (shift_id, date, day_of_week, am_or_pm, hours_worked, tips_earned)
VALUES (?, ?, ?, ?, ?, ?)
`

type SqliteTipRepo struct {
	db *sql.DB
}

func NewSqliteTipRepo(db *sql.DB) *SqliteTipRepo {
	return &SqliteTipRepo{db: db}
}

// InsertShifts stores the whole batch in one transaction. If any row fails
// nothing from the batch is kept.
func (r *SqliteTipRepo) InsertShifts(ctx context.Context, shifts []domain.Shift) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer rollback(tx)

	stmt, err := tx.PrepareContext(ctx, insertShift)
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, s := range shifts {
		_, err := stmt.ExecContext(ctx,
			s.ID,
			calendar.FormatDate(s.Date),
			s.DayOfWeek,
			string(s.Period),
			s.HoursWorked,
			s.TipsEarned,
		)
		if err != nil {
			if isConstraintViolation(err) {
				return fmt.Errorf("insert shift %d: %w: %w", s.ID, domain.ErrDuplicateShift, err)
			}
			return fmt.Errorf("insert shift %d: %w", s.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

func isConstraintViolation(err error) bool {
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.ExtendedCode == sqlite3.ErrConstraintPrimaryKey ||
			sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique
	}
	return false
}

// rollback is a no-op once tx has been committed.
func rollback(tx *sql.Tx) { _ = tx.Rollback() }
