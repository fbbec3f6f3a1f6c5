package domain

import (
	"context"
	"errors"
	"time"
)

// Period is the half of the day a shift was worked in.
type Period string

const (
	PeriodAM Period = "AM"
	PeriodPM Period = "PM"
)

// Shift is one row of the tips table.
type Shift struct {
	ID          int
	Date        time.Time
	DayOfWeek   string
	Period      Period
	HoursWorked float64
	TipsEarned  float64
}

// ErrDuplicateShift is returned when a shift id is already stored.
var ErrDuplicateShift = errors.New("shift already exists")

type TipRepo interface {
	InsertShifts(ctx context.Context, shifts []Shift) error
}
