package report

import (
	"time"

	"github.com/shopspring/decimal"

	"mini-ledger/internal/domain"
)

// DailySeries resamples transactions into one point per day of [start, end].
// Days without Income or Expense records are zero. start after end yields nil.
func DailySeries(transactions []domain.Transaction, start, end time.Time) []domain.DailyPoint {
	start, end = domain.DateOf(start), domain.DateOf(end)
	if start.After(end) {
		return nil
	}

	series := make([]domain.DailyPoint, 0, dayIndex(start, end)+1)
	for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
		series = append(series, domain.DailyPoint{
			Date:    day,
			Income:  decimal.Zero,
			Expense: decimal.Zero,
		})
	}

	for _, tx := range transactions {
		day := domain.DateOf(tx.Date)
		if day.Before(start) || day.After(end) {
			continue
		}
		if !tx.Category.IsReserved() {
			continue
		}
		i := dayIndex(start, day)
		if tx.Category == domain.CategoryIncome {
			series[i].Income = series[i].Income.Add(tx.Amount)
		} else {
			series[i].Expense = series[i].Expense.Add(tx.Amount)
		}
	}
	return series
}

// dayIndex counts calendar days from start to day. Both must be UTC midnights.
func dayIndex(start, day time.Time) int {
	return int((day.Unix() - start.Unix()) / secondsPerDay)
}

const secondsPerDay = 24 * 60 * 60
