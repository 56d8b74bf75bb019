// Package service provides business logic and orchestration on top of the
// repositories: auth, donations, the daily streak rules, and autopay.
package service

import "time"

// streakWindow is the wall-clock window that keeps a streak alive.
const streakWindow = 24 * time.Hour

// NextStreak applies the daily-streak rules for a donation made at now:
//
//   - no prior donation          -> 1
//   - same calendar date         -> unchanged
//   - new date, within 24 hours  -> current + 1
//   - more than 24 hours elapsed -> 1
//
// The calendar-date check runs before the 24h window, so two donations a few
// minutes apart across midnight count as consecutive days and increment.
func NextStreak(current int, last *time.Time, now time.Time) int {
	if last == nil {
		return 1
	}
	if sameDate(*last, now) {
		return current
	}
	if now.Sub(*last) <= streakWindow {
		return current + 1
	}
	return 1
}

// StreakBroken reports whether the passive inactivity check (run on dashboard
// refresh, independent of any donation) should reset the streak to zero.
func StreakBroken(last *time.Time, now time.Time) bool {
	if last == nil {
		return false
	}
	return now.Sub(*last) > streakWindow
}

func sameDate(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
