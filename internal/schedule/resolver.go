// Package schedule resolves betting round windows from a lottery product's
// configured schedule. All functions are pure and safe to call on every
// countdown tick.
package schedule

import (
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/huaydee/lotto-admin-backend/internal/models"
)

// timeOfDay is minutes since midnight
type timeOfDay int

// parseTimeOfDay parses "HH:MM" or "HH:MM:SS". A missing or malformed value
// reports ok=false, which consumers treat as "perpetually closed", never an error.
func parseTimeOfDay(s string) (timeOfDay, bool) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) < 2 {
		return 0, false
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return 0, false
	}
	min, err := strconv.Atoi(parts[1])
	if err != nil || min < 0 || min > 59 {
		return 0, false
	}
	return timeOfDay(hour*60 + min), true
}

// closeInstant anchors a time of day onto the calendar day of ref
func closeInstant(ref time.Time, tod timeOfDay) time.Time {
	return time.Date(ref.Year(), ref.Month(), ref.Day(), int(tod)/60, int(tod)%60, 0, 0, ref.Location())
}

// minutesOfDay returns now's time of day at minute granularity
func minutesOfDay(now time.Time) timeOfDay {
	return timeOfDay(now.Hour()*60 + now.Minute())
}

// IsOpen reports whether the product accepts bets at the given instant.
//
// MONTHLY products are open on every day not listed in closeDates (advance
// purchase for the next scheduled round); on a listed day they close at
// closeTime. WEEKLY products recur daily: with no openTime they are open until
// closeTime, with an openTime they are open inside the openTime..closeTime
// window, which may cross midnight. At the exact close instant the round
// counts as already closed.
func IsOpen(p *models.LotteryProduct, now time.Time) bool {
	closeTod, ok := parseTimeOfDay(p.CloseTime)
	if !ok {
		return false
	}

	if p.ScheduleType == models.ScheduleMonthly {
		if !containsDay(p.CloseDates, now.Day()) {
			return true
		}
		return now.Before(closeInstant(now, closeTod))
	}

	openTod, hasOpen := parseTimeOfDay(p.OpenTime)
	if !hasOpen {
		return now.Before(closeInstant(now, closeTod))
	}

	tod := minutesOfDay(now)
	if openTod < closeTod {
		return tod >= openTod && tod <= closeTod
	}
	// window crosses midnight
	return tod >= openTod || tod <= closeTod
}

// NextClose returns the instant the current round closes, or nil when the
// product has no parsable closeTime and therefore never opens.
func NextClose(p *models.LotteryProduct, now time.Time) *time.Time {
	closeTod, ok := parseTimeOfDay(p.CloseTime)
	if !ok {
		return nil
	}

	if p.ScheduleType == models.ScheduleMonthly {
		return nextMonthlyClose(p.CloseDates, closeTod, now)
	}

	target := closeInstant(now, closeTod)
	if !now.Before(target) {
		target = closeInstant(now.AddDate(0, 0, 1), closeTod)
	}
	return &target
}

// nextMonthlyClose scans the scheduled days ascending for the first one still
// ahead of now, wrapping to the smallest day of the following month when the
// current month is exhausted.
func nextMonthlyClose(closeDates []int, closeTod timeOfDay, now time.Time) *time.Time {
	if len(closeDates) == 0 {
		return nil
	}
	days := append([]int(nil), closeDates...)
	sort.Ints(days)

	for _, d := range days {
		if d < now.Day() {
			continue
		}
		target := time.Date(now.Year(), now.Month(), d, int(closeTod)/60, int(closeTod)%60, 0, 0, now.Location())
		if d > now.Day() || now.Before(target) {
			return &target
		}
	}

	// wrap to the first scheduled day next month; time.Date normalizes
	// month 13 into January of the following year
	target := time.Date(now.Year(), now.Month()+1, days[0], int(closeTod)/60, int(closeTod)%60, 0, 0, now.Location())
	return &target
}

func containsDay(days []int, day int) bool {
	for _, d := range days {
		if d == day {
			return true
		}
	}
	return false
}
