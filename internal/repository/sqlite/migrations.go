package sqlite

import (
	"database/sql"
)

const createTipsTable = `
CREATE TABLE IF NOT EXISTS tips (
    shift_id INTEGER PRIMARY KEY,
    date TEXT NOT NULL,
    day_of_week TEXT NOT NULL,
    am_or_pm TEXT NOT NULL,
    hours_worked DECIMAL NOT NULL,
    tips_earned DECIMAL NOT NULL
);
`

func Migrate(db *sql.DB) error {
	if _, err := db.Exec(createTipsTable); err != nil {
		return err
	}
	return nil
}
