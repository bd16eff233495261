package analysis

import (
	"strings"

	"garmin-wrapped/internal/export"
	"garmin-wrapped/internal/parse"
)

// DefaultStepsPerMile is the fixed conversion used for the step-distance
// equivalent when the config does not override it.
const DefaultStepsPerMile = 2000.0

var (
	stepLabelColumns = []string{"Week", "Date", "Period"}
	stepCountColumns = []string{"Steps", "Step Count", "Total Steps", "Actual"}
	dayCountColumns  = []string{"Days"}
)

// StepsPeriod is one contributing period of the steps table.
type StepsPeriod struct {
	Label string
	Steps int
}

// StepsSnapshot is the output of one pass over a periodic steps export.
type StepsSnapshot struct {
	TotalSteps    int
	Periods       int // rows with a positive step count
	DaysPerPeriod int
	TotalDays     int
	AvgPerDay     float64
	Best          *StepsPeriod
	Miles         float64 // distance equivalent at stepsPerMile
}

// periodRule is one granularity detection heuristic. Rules are evaluated in
// priority order over the full row sample; the first that applies decides
// the days-per-period. The fallback is daily.
type periodRule struct {
	name  string
	apply func(rows []export.Row) (days int, ok bool)
}

var periodRules = []periodRule{
	// An explicit day-count column is authoritative.
	{"days-column", func(rows []export.Row) (int, bool) {
		if len(rows) == 0 || !rows[0].Has(dayCountColumns...) {
			return 0, false
		}
		for _, row := range rows {
			if d := int(parse.Number(row.Get(dayCountColumns...))); d > 0 {
				return d, true
			}
		}
		return 0, false
	}},
	// A date-range separator in the period label means weekly grouping.
	{"range-label", func(rows []export.Row) (int, bool) {
		for _, row := range rows {
			label := stepLabel(row)
			if strings.Contains(label, " - ") || strings.Contains(label, "–") ||
				strings.Contains(strings.ToLower(label), " to ") {
				return 7, true
			}
		}
		return 0, false
	}},
	// A small table is a weekly export; a multi-year daily export runs to
	// hundreds of rows.
	{"small-table", func(rows []export.Row) (int, bool) {
		if len(rows) <= 60 {
			return 7, true
		}
		return 0, false
	}},
}

// detectPeriodDays infers whether each steps row covers one day or a week.
func detectPeriodDays(rows []export.Row) int {
	for _, rule := range periodRules {
		if days, ok := rule.apply(rows); ok {
			return days
		}
	}
	return 1
}

// AggregateSteps runs one pass over a periodic steps export. Rows with a
// zero, negative or unparseable count are excluded from the period
// denominator, not counted as zero. The average divides by accumulated days
// rather than periods, so it stays correct for both daily and weekly tables.
// When a row carries an explicit day count its own value is accumulated,
// which keeps a trailing partial week from counting as a full one.
func AggregateSteps(rows []export.Row, stepsPerMile float64) (*StepsSnapshot, error) {
	if stepsPerMile <= 0 {
		stepsPerMile = DefaultStepsPerMile
	}

	snap := &StepsSnapshot{
		DaysPerPeriod: detectPeriodDays(rows),
	}

	var best extremum[StepsPeriod]
	for _, row := range rows {
		steps := int(parse.Number(stepValue(row)))
		if steps <= 0 {
			continue
		}
		snap.TotalSteps += steps
		snap.Periods++
		if d := int(parse.Number(row.Get(dayCountColumns...))); d > 0 {
			snap.TotalDays += d
		} else {
			snap.TotalDays += snap.DaysPerPeriod
		}
		best.consider(StepsPeriod{Label: stepLabel(row), Steps: steps}, float64(steps))
	}

	if snap.Periods == 0 {
		return nil, ErrNoData
	}

	snap.AvgPerDay = float64(snap.TotalSteps) / float64(snap.TotalDays)
	snap.Best = best.value()
	snap.Miles = float64(snap.TotalSteps) / stepsPerMile

	return snap, nil
}

// stepLabel resolves the period label, falling back to the first positional
// field for headerless or blank-labeled tables.
func stepLabel(row export.Row) string {
	if v := row.Get(stepLabelColumns...); v != "" {
		return v
	}
	return row.Field(0)
}

// stepValue resolves the step count, falling back to the second positional
// field.
func stepValue(row export.Row) string {
	if v := row.Get(stepCountColumns...); v != "" {
		return v
	}
	return row.Field(1)
}
