package analysis

import (
	"math"
	"sort"
	"time"
)

// Streak is a maximal run of consecutive active calendar days.
type Streak struct {
	Days  int
	Start time.Time
	End   time.Time
}

// DayBucket is one calendar day with its accumulated activity time.
type DayBucket struct {
	Date    string // ISO date
	Seconds int
}

// WeekdayTotals accumulates activity across all occurrences of one weekday.
type WeekdayTotals struct {
	Weekday  time.Weekday
	Seconds  int
	Sessions int
}

// LongestStreak walks the distinct active days in calendar order and returns
// the longest run of consecutive dates. Days with no positive accumulated
// duration do not count as active. Returns nil for empty input.
func LongestStreak(days map[string]int) *Streak {
	var dates []time.Time
	for day, seconds := range days {
		if seconds <= 0 {
			continue
		}
		if t, err := time.Parse("2006-01-02", day); err == nil {
			dates = append(dates, t)
		}
	}
	if len(dates) == 0 {
		return nil
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })

	best := Streak{Days: 1, Start: dates[0], End: dates[0]}
	cur := best
	for i := 1; i < len(dates); i++ {
		gap := math.Round(dates[i].Sub(dates[i-1]).Hours() / 24)
		if gap == 1 {
			cur.Days++
			cur.End = dates[i]
		} else {
			cur = Streak{Days: 1, Start: dates[i], End: dates[i]}
		}
		if cur.Days > best.Days {
			best = cur
		}
	}
	return &best
}

// BusiestWeek returns the week with the most accumulated duration. The input
// is sorted by week start, so an exact tie keeps the earliest week rather
// than depending on map iteration order.
func BusiestWeek(weeks []WeekBucket) *WeekBucket {
	var e extremum[WeekBucket]
	for _, w := range weeks {
		e.consider(w, float64(w.Seconds))
	}
	return e.value()
}

// FullestWeek returns the week with the most sessions, earliest week on ties.
func FullestWeek(weeks []WeekBucket) *WeekBucket {
	var e extremum[WeekBucket]
	for _, w := range weeks {
		e.consider(w, float64(w.Sessions))
	}
	return e.value()
}

// BusiestDay returns the single day with the most accumulated duration,
// earliest day on ties.
func BusiestDay(days map[string]int) *DayBucket {
	keys := make([]string, 0, len(days))
	for day := range days {
		keys = append(keys, day)
	}
	sort.Strings(keys) // ISO dates sort chronologically

	var e extremum[DayBucket]
	for _, day := range keys {
		e.consider(DayBucket{Date: day, Seconds: days[day]}, float64(days[day]))
	}
	return e.value()
}

// GrindDay aggregates every activity into its day of the week across all
// years and returns the weekday with the most sessions, tie-broken by total
// duration. This is distinct from the calendar streak, which tracks
// consecutive dates.
func GrindDay(records []Activity) *WeekdayTotals {
	var totals [7]WeekdayTotals
	for i := range totals {
		totals[i].Weekday = time.Weekday(i)
	}
	for _, a := range records {
		wd := a.Date.Weekday()
		totals[wd].Seconds += a.Seconds
		totals[wd].Sessions++
	}

	var best *WeekdayTotals
	for i := range totals {
		t := totals[i]
		if t.Sessions == 0 {
			continue
		}
		if best == nil || t.Sessions > best.Sessions ||
			(t.Sessions == best.Sessions && t.Seconds > best.Seconds) {
			b := t
			best = &b
		}
	}
	return best
}
