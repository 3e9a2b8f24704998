package api

import (
	"context"
	"math"
	"sort"

	"pytick/internal/domain"
)

// DefaultTargetHours is the daily report target when none is supplied.
const DefaultTargetHours = 8.0

// QueryEntries fetches entries matching the given options and reshapes them
// into the fixed reporting projection.
func (a *apiImpl) QueryEntries(ctx context.Context, opts domain.QueryOptions) ([]domain.Entry, error) {
	entries, err := a.service.GetEntries(ctx, a.mapper.QueryOptions.ToService(opts))
	if err != nil {
		return nil, err
	}
	return a.mapper.Entry.FromServiceSlice(entries), nil
}

// DailyReport aggregates entries per (date, user) pair: hours are summed and
// rounded to two decimals, remaining_hours is the target minus that sum,
// rounded the same way. Rows come back ascending by date, then user_id.
func (a *apiImpl) DailyReport(entries []domain.Entry, targetHours float64) []domain.DailyReportRow {
	type key struct {
		date   string
		userID int64
	}

	sums := make(map[key]float64)
	for _, e := range entries {
		k := key{date: e.Date, userID: e.UserID}
		sums[k] += e.Hours
	}

	report := make([]domain.DailyReportRow, 0, len(sums))
	for k, total := range sums {
		hours := round2(total)
		report = append(report, domain.DailyReportRow{
			Date:           k.date,
			UserID:         k.userID,
			Hours:          hours,
			RemainingHours: round2(targetHours - hours),
		})
	}

	sort.Slice(report, func(i, j int) bool {
		if report[i].Date != report[j].Date {
			return report[i].Date < report[j].Date
		}
		return report[i].UserID < report[j].UserID
	})
	return report
}

// round2 rounds half away from zero to two decimal places.
func round2(f float64) float64 {
	return math.Round(f*100) / 100
}
