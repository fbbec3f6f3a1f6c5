package service

import (
	"context"
	"fmt"

	"tip-tracker/internal/domain"
	"tip-tracker/pkg/calendar"
)

type initialShift struct {
	id     int
	date   string
	period domain.Period
	hours  float64
	tips   float64
}

var initialData = []initialShift{
	{1, "2025-09-30", domain.PeriodAM, 3.83, 64.57},
	{2, "2025-10-01", domain.PeriodPM, 4.98, 54.06},
	{3, "2025-10-02", domain.PeriodAM, 3.84, 63.18},
	{4, "2025-10-03", domain.PeriodAM, 3.20, 46.99},
	{5, "2025-10-04", domain.PeriodPM, 4.71, 83.61},
}

// InitialShifts returns a fresh copy of the seed batch, with the weekday
// derived from each date.
func InitialShifts() ([]domain.Shift, error) {
	shifts := make([]domain.Shift, 0, len(initialData))
	for _, d := range initialData {
		date, err := calendar.ParseDate(d.date)
		if err != nil {
			return nil, fmt.Errorf("seed shift %d: %w", d.id, err)
		}
		shifts = append(shifts, domain.Shift{
			ID:          d.id,
			Date:        date,
			DayOfWeek:   calendar.ShortWeekday(date),
			Period:      d.period,
			HoursWorked: d.hours,
			TipsEarned:  d.tips,
		})
	}
	return shifts, nil
}

type Initializer struct {
	Repo domain.TipRepo
}

func NewInitializer(repo domain.TipRepo) *Initializer {
	return &Initializer{Repo: repo}
}

// Populate inserts the seed batch and reports how many rows were written.
// It is not idempotent: a second call against the same store fails with
// domain.ErrDuplicateShift.
func (i *Initializer) Populate(ctx context.Context) (int, error) {
	shifts, err := InitialShifts()
	if err != nil {
		return 0, err
	}
	if err := i.Repo.InsertShifts(ctx, shifts); err != nil {
		return 0, err
	}
	return len(shifts), nil
}
