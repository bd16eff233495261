package analysis

import (
	"errors"
	"sort"
	"time"

	"garmin-wrapped/internal/export"
	"garmin-wrapped/internal/parse"
	"garmin-wrapped/internal/sport"
)

// ErrNoData is returned when an export contains no rows with any
// recognizable content.
var ErrNoData = errors.New("no usable rows")

// Column name alternatives probed in priority order.
var (
	sportColumns    = []string{"Activity Type", "Type", "Sport"}
	dateColumns     = []string{"Date", "Activity Date", "Start Time", "Begin Timestamp"}
	timeColumns     = []string{"Time", "Moving Time", "Elapsed Time", "Duration"}
	distanceColumns = []string{"Distance"}
	calorieColumns  = []string{"Calories", "Active Calories"}
	hrColumns       = []string{"Avg HR", "Average Heart Rate", "Avg. HR", "Average HR"}
)

// Activity is one normalized record derived from a raw export row.
type Activity struct {
	Date     time.Time
	Label    string // original free-text activity label
	Sport    sport.Category
	Seconds  int
	Miles    float64
	Calories float64
}

// SportTotals accumulates per-category sums.
type SportTotals struct {
	Sport    sport.Category
	Miles    float64
	Seconds  int
	Sessions int
}

// WeekBucket accumulates time and session count for one Monday-start week.
type WeekBucket struct {
	Label    string // e.g. "Jan 06 – Jan 12"
	Start    time.Time
	Seconds  int
	Sessions int
}

// ActivitySnapshot is the complete output of one aggregation pass over an
// activities export. Pointer fields are nil when no qualifying record
// existed; the presentation layer renders those as placeholders.
type ActivitySnapshot struct {
	Sessions int
	Miles    float64
	Seconds  int
	Calories float64

	// Averages, present only when a denominator exists.
	AvgHR      *float64 // mean over rows with positive HR only
	AvgMiles   *float64 // per session
	AvgSeconds *float64 // per session
	First      *time.Time
	Last       *time.Time

	// Sports in order of first occurrence in the export.
	Sports []SportTotals

	// Time buckets. Days maps ISO dates to accumulated seconds; Weeks is
	// sorted by week start.
	Days  map[string]int
	Weeks []WeekBucket

	// Best-of pointers.
	LongestActivity *Activity
	HighestCalories *Activity
	LongestRun      *Activity
	LongestRide     *Activity
	LongestSwim     *Activity

	Streak      *Streak
	BusiestWeek *WeekBucket // by accumulated duration
	FullestWeek *WeekBucket // by session count
	BusiestDay  *DayBucket  // by accumulated duration
	GrindDay    *WeekdayTotals
}

// AggregateActivities runs one forward pass over raw activity rows and
// produces a snapshot. Rows without a resolvable date are discarded entirely:
// they cannot be placed in day or week buckets. ErrNoData is returned when no
// row carries any recognizable field at all.
func AggregateActivities(rows []export.Row) (*ActivitySnapshot, error) {
	if !anyRecognizable(rows) {
		return nil, ErrNoData
	}

	snap := &ActivitySnapshot{
		Days: make(map[string]int),
	}

	sportIdx := make(map[sport.Category]int)
	weekIdx := make(map[string]int)

	var longest, hottest, longestRun, longestRide, longestSwim extremum[Activity]
	var hrSum float64
	var hrCount int
	var records []Activity

	for _, row := range rows {
		date, ok := parse.Date(row.Get(dateColumns...))
		if !ok {
			continue
		}

		label := row.Get(sportColumns...)
		a := Activity{
			Date:     date,
			Label:    label,
			Sport:    sport.Classify(label),
			Seconds:  parse.ClockDuration(row.Get(timeColumns...)),
			Miles:    parse.Distance(parse.Number(row.Get(distanceColumns...)), label),
			Calories: parse.Number(row.Get(calorieColumns...)),
		}
		records = append(records, a)

		snap.Sessions++
		snap.Miles += a.Miles
		snap.Seconds += a.Seconds
		snap.Calories += a.Calories

		if hr := parse.Number(row.Get(hrColumns...)); hr > 0 {
			hrSum += hr
			hrCount++
		}

		// Per-sport totals, first occurrence order.
		i, seen := sportIdx[a.Sport]
		if !seen {
			i = len(snap.Sports)
			sportIdx[a.Sport] = i
			snap.Sports = append(snap.Sports, SportTotals{Sport: a.Sport})
		}
		snap.Sports[i].Miles += a.Miles
		snap.Sports[i].Seconds += a.Seconds
		snap.Sports[i].Sessions++

		// Day and week buckets.
		day := date.Format("2006-01-02")
		snap.Days[day] += a.Seconds

		start := getMonday(date)
		wk := weekLabel(start)
		j, seen := weekIdx[wk]
		if !seen {
			j = len(snap.Weeks)
			weekIdx[wk] = j
			snap.Weeks = append(snap.Weeks, WeekBucket{Label: wk, Start: start})
		}
		snap.Weeks[j].Seconds += a.Seconds
		snap.Weeks[j].Sessions++

		// Best-of trackers.
		longest.consider(a, float64(a.Seconds))
		hottest.consider(a, a.Calories)
		switch a.Sport {
		case sport.Run:
			longestRun.consider(a, a.Miles)
		case sport.Bike:
			longestRide.consider(a, a.Miles)
		case sport.Swim:
			longestSwim.consider(a, a.Miles)
		}

		if snap.First == nil || date.Before(*snap.First) {
			d := date
			snap.First = &d
		}
		if snap.Last == nil || date.After(*snap.Last) {
			d := date
			snap.Last = &d
		}
	}

	snap.LongestActivity = longest.value()
	snap.HighestCalories = hottest.value()
	snap.LongestRun = longestRun.value()
	snap.LongestRide = longestRide.value()
	snap.LongestSwim = longestSwim.value()

	if hrCount > 0 {
		avg := hrSum / float64(hrCount)
		snap.AvgHR = &avg
	}
	if snap.Sessions > 0 {
		avgMi := snap.Miles / float64(snap.Sessions)
		avgSec := float64(snap.Seconds) / float64(snap.Sessions)
		snap.AvgMiles = &avgMi
		snap.AvgSeconds = &avgSec
	}

	// Weeks keep a deterministic order for selection and display.
	sort.Slice(snap.Weeks, func(i, j int) bool {
		return snap.Weeks[i].Start.Before(snap.Weeks[j].Start)
	})

	snap.Streak = LongestStreak(snap.Days)
	snap.BusiestWeek = BusiestWeek(snap.Weeks)
	snap.FullestWeek = FullestWeek(snap.Weeks)
	snap.BusiestDay = BusiestDay(snap.Days)
	snap.GrindDay = GrindDay(records)

	return snap, nil
}

// TopSports returns the n categories with the most sessions. Ties keep the
// order of first occurrence in the export.
func (s *ActivitySnapshot) TopSports(n int) []SportTotals {
	top := make([]SportTotals, len(s.Sports))
	copy(top, s.Sports)
	sort.SliceStable(top, func(i, j int) bool {
		return top[i].Sessions > top[j].Sessions
	})
	if n < len(top) {
		top = top[:n]
	}
	return top
}

// anyRecognizable reports whether at least one row carries a sport, distance,
// time or calorie value.
func anyRecognizable(rows []export.Row) bool {
	for _, row := range rows {
		if row.Get(sportColumns...) != "" ||
			row.Get(distanceColumns...) != "" ||
			row.Get(timeColumns...) != "" ||
			row.Get(calorieColumns...) != "" {
			return true
		}
	}
	return false
}

// getMonday returns the Monday of the week containing t, at midnight.
func getMonday(t time.Time) time.Time {
	daysFromMonday := (int(t.Weekday()) + 6) % 7 // Monday = 0
	monday := t.AddDate(0, 0, -daysFromMonday)
	return time.Date(monday.Year(), monday.Month(), monday.Day(), 0, 0, 0, 0, monday.Location())
}

// weekLabel formats a Monday-start week as a human-readable range.
func weekLabel(start time.Time) string {
	end := start.AddDate(0, 0, 6)
	return start.Format("Jan 02") + " – " + end.Format("Jan 02, 2006")
}
