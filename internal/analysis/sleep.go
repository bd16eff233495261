package analysis

import (
	"garmin-wrapped/internal/export"
	"garmin-wrapped/internal/parse"
)

var (
	sleepLabelColumns    = []string{"Date", "Week", "Period"}
	sleepScoreColumns    = []string{"Score", "Avg Score", "Average Score", "Sleep Score"}
	sleepDurationColumns = []string{"Duration", "Avg Duration", "Average Duration"}
)

// SleepPeriod is one contributing period of the sleep table.
type SleepPeriod struct {
	Label   string
	Score   float64
	Minutes int
}

// SleepSnapshot is the output of one pass over a periodic sleep export.
type SleepSnapshot struct {
	Periods    int      // rows that contributed a positive measurement
	AvgScore   *float64 // mean over positive scores only
	AvgMinutes *float64 // mean over positive durations only

	BestScore    *SleepPeriod
	WorstScore   *SleepPeriod
	LongestSleep *SleepPeriod
}

// AggregateSleep runs one pass over a periodic sleep export. A row with
// neither a parseable score nor a parseable duration is skipped entirely and
// does not count toward the period denominator. Scores and durations are
// averaged over their own positive contributors.
func AggregateSleep(rows []export.Row) (*SleepSnapshot, error) {
	snap := &SleepSnapshot{}

	var bestScore, worstScore, longest extremum[SleepPeriod]
	var scoreSum float64
	var scoreCount int
	var minuteSum int
	var minuteCount int

	for _, row := range rows {
		p := SleepPeriod{
			Label:   sleepLabel(row),
			Score:   parse.Number(sleepScore(row)),
			Minutes: parse.HourMin(sleepDuration(row)),
		}
		if p.Score <= 0 && p.Minutes <= 0 {
			continue
		}

		snap.Periods++
		if p.Score > 0 {
			scoreSum += p.Score
			scoreCount++
			bestScore.consider(p, p.Score)
			// Lowest score as an extremum over the reciprocal keeps the
			// same first-wins tie-break as every other tracker.
			worstScore.consider(p, 1/p.Score)
		}
		if p.Minutes > 0 {
			minuteSum += p.Minutes
			minuteCount++
			longest.consider(p, float64(p.Minutes))
		}
	}

	if snap.Periods == 0 {
		return nil, ErrNoData
	}

	if scoreCount > 0 {
		avg := scoreSum / float64(scoreCount)
		snap.AvgScore = &avg
	}
	if minuteCount > 0 {
		avg := float64(minuteSum) / float64(minuteCount)
		snap.AvgMinutes = &avg
	}
	snap.BestScore = bestScore.value()
	snap.WorstScore = worstScore.value()
	snap.LongestSleep = longest.value()

	return snap, nil
}

func sleepLabel(row export.Row) string {
	if v := row.Get(sleepLabelColumns...); v != "" {
		return v
	}
	return row.Field(0)
}

func sleepScore(row export.Row) string {
	if v := row.Get(sleepScoreColumns...); v != "" {
		return v
	}
	return row.Field(1)
}

func sleepDuration(row export.Row) string {
	if v := row.Get(sleepDurationColumns...); v != "" {
		return v
	}
	return row.Field(2)
}
