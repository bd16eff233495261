package analysis

import (
	"errors"
	"math"
	"reflect"
	"testing"

	"garmin-wrapped/internal/export"
	"garmin-wrapped/internal/sport"
)

func activityRow(date, label, distance, duration, calories, hr string) export.Row {
	return export.NewRow(
		[]string{"Date", "Activity Type", "Distance", "Time", "Calories", "Avg HR"},
		[]string{date, label, distance, duration, calories, hr},
	)
}

func TestAggregateActivities(t *testing.T) {
	tests := []struct {
		name    string
		rows    []export.Row
		wantErr error
		checkFn func(t *testing.T, snap *ActivitySnapshot)
	}{
		{
			name: "two consecutive runs",
			rows: []export.Row{
				activityRow("2025-01-01", "Running", "3.1", "0:28:00", "300", "150"),
				activityRow("2025-01-02", "Running", "3.1", "0:28:00", "310", "155"),
			},
			checkFn: func(t *testing.T, snap *ActivitySnapshot) {
				if snap.Sessions != 2 {
					t.Errorf("Sessions = %d, want 2", snap.Sessions)
				}
				if math.Abs(snap.Miles-6.2) > 0.001 {
					t.Errorf("Miles = %v, want ~6.2", snap.Miles)
				}
				if snap.Seconds != 2*1680 {
					t.Errorf("Seconds = %d, want 3360", snap.Seconds)
				}
				if snap.Streak == nil {
					t.Fatal("Streak should not be nil")
				}
				if snap.Streak.Days != 2 {
					t.Errorf("Streak.Days = %d, want 2", snap.Streak.Days)
				}
				if got := snap.Streak.Start.Format("2006-01-02"); got != "2025-01-01" {
					t.Errorf("Streak.Start = %s, want 2025-01-01", got)
				}
				if got := snap.Streak.End.Format("2006-01-02"); got != "2025-01-02" {
					t.Errorf("Streak.End = %s, want 2025-01-02", got)
				}
			},
		},
		{
			name: "totals equal sum of per-sport totals",
			rows: []export.Row{
				activityRow("2025-01-01", "Running", "3.1", "0:28:00", "300", ""),
				activityRow("2025-01-02", "Cycling", "20", "1:10:00", "600", ""),
				activityRow("2025-01-03", "Pool Swim", "1609.34", "0:40:00", "400", ""),
				activityRow("2025-01-04", "Strength Training", "", "0:45:00", "250", ""),
			},
			checkFn: func(t *testing.T, snap *ActivitySnapshot) {
				var miles float64
				var seconds int
				for _, st := range snap.Sports {
					miles += st.Miles
					seconds += st.Seconds
				}
				if math.Abs(miles-snap.Miles) > 1e-9 {
					t.Errorf("sum of sport miles %v != total %v", miles, snap.Miles)
				}
				if seconds != snap.Seconds {
					t.Errorf("sum of sport seconds %d != total %d", seconds, snap.Seconds)
				}
			},
		},
		{
			name: "meter-denominated sports convert, others do not",
			rows: []export.Row{
				activityRow("2025-01-01", "Open Water Swimming", "1609.34", "0:40:00", "", ""),
				activityRow("2025-01-02", "Cycling", "1609.34", "1:00:00", "", ""),
			},
			checkFn: func(t *testing.T, snap *ActivitySnapshot) {
				if snap.LongestSwim == nil {
					t.Fatal("LongestSwim should not be nil")
				}
				if math.Abs(snap.LongestSwim.Miles-1.0) > 0.001 {
					t.Errorf("swim miles = %v, want ~1.0", snap.LongestSwim.Miles)
				}
				if snap.LongestRide == nil {
					t.Fatal("LongestRide should not be nil")
				}
				if math.Abs(snap.LongestRide.Miles-1609.34) > 0.001 {
					t.Errorf("ride miles = %v, want 1609.34 (no conversion)", snap.LongestRide.Miles)
				}
			},
		},
		{
			name: "rows without resolvable date are discarded",
			rows: []export.Row{
				activityRow("not a date", "Running", "5", "0:50:00", "500", ""),
				activityRow("2025-01-01", "Running", "3.1", "0:28:00", "300", ""),
			},
			checkFn: func(t *testing.T, snap *ActivitySnapshot) {
				if snap.Sessions != 1 {
					t.Errorf("Sessions = %d, want 1 (dateless row discarded)", snap.Sessions)
				}
				if math.Abs(snap.Miles-3.1) > 0.001 {
					t.Errorf("Miles = %v, want 3.1", snap.Miles)
				}
			},
		},
		{
			name: "best pointers absent when nothing qualifies",
			rows: []export.Row{
				activityRow("2025-01-01", "Running", "3.1", "", "0", ""),
				activityRow("2025-01-02", "Running", "2.0", "", "", ""),
			},
			checkFn: func(t *testing.T, snap *ActivitySnapshot) {
				if snap.LongestActivity != nil {
					t.Error("LongestActivity should be nil when every duration is 0")
				}
				if snap.HighestCalories != nil {
					t.Error("HighestCalories should be nil when every calorie value is 0")
				}
				// Distance still qualified for the per-sport tracker.
				if snap.LongestRun == nil {
					t.Error("LongestRun should be set from positive distances")
				}
			},
		},
		{
			name: "equal durations keep the first in input order",
			rows: []export.Row{
				activityRow("2025-01-05", "Running", "4", "1:00:00", "", ""),
				activityRow("2025-01-06", "Cycling", "15", "1:00:00", "", ""),
			},
			checkFn: func(t *testing.T, snap *ActivitySnapshot) {
				if snap.LongestActivity == nil {
					t.Fatal("LongestActivity should not be nil")
				}
				if snap.LongestActivity.Sport != sport.Run {
					t.Errorf("tie should keep the first activity, got %v", snap.LongestActivity.Sport)
				}
			},
		},
		{
			name: "avg HR ignores rows without a positive reading",
			rows: []export.Row{
				activityRow("2025-01-01", "Running", "3", "0:30:00", "", "150"),
				activityRow("2025-01-02", "Running", "3", "0:30:00", "", "0"),
				activityRow("2025-01-03", "Running", "3", "0:30:00", "", ""),
				activityRow("2025-01-04", "Running", "3", "0:30:00", "", "160"),
			},
			checkFn: func(t *testing.T, snap *ActivitySnapshot) {
				if snap.AvgHR == nil {
					t.Fatal("AvgHR should not be nil")
				}
				if math.Abs(*snap.AvgHR-155) > 0.001 {
					t.Errorf("AvgHR = %v, want 155 (mean of 150 and 160)", *snap.AvgHR)
				}
			},
		},
		{
			name: "earliest and latest dates ignore input order",
			rows: []export.Row{
				activityRow("2025-06-15", "Running", "3", "0:30:00", "", ""),
				activityRow("2025-01-04", "Running", "3", "0:30:00", "", ""),
				activityRow("2025-03-10", "Running", "3", "0:30:00", "", ""),
			},
			checkFn: func(t *testing.T, snap *ActivitySnapshot) {
				if snap.First == nil || snap.Last == nil {
					t.Fatal("First/Last should not be nil")
				}
				if got := snap.First.Format("2006-01-02"); got != "2025-01-04" {
					t.Errorf("First = %s, want 2025-01-04", got)
				}
				if got := snap.Last.Format("2006-01-02"); got != "2025-06-15" {
					t.Errorf("Last = %s, want 2025-06-15", got)
				}
			},
		},
		{
			name: "no recognizable content",
			rows: []export.Row{
				export.NewRow([]string{"Foo", "Bar"}, []string{"x", "y"}),
				export.NewRow([]string{"Foo", "Bar"}, []string{"", ""}),
			},
			wantErr: ErrNoData,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			snap, err := AggregateActivities(tt.rows)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("AggregateActivities() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("AggregateActivities() error = %v", err)
			}
			tt.checkFn(t, snap)
		})
	}
}

func TestAggregateActivities_Idempotent(t *testing.T) {
	rows := []export.Row{
		activityRow("2025-01-01", "Running", "3.1", "0:28:00", "300", "150"),
		activityRow("2025-01-02", "Cycling", "20", "1:10:00", "600", ""),
		activityRow("2025-01-03", "Pool Swim", "1500", "0:40:00", "400", "140"),
	}

	first, err := AggregateActivities(rows)
	if err != nil {
		t.Fatalf("first pass error = %v", err)
	}
	second, err := AggregateActivities(rows)
	if err != nil {
		t.Fatalf("second pass error = %v", err)
	}

	if !reflect.DeepEqual(first, second) {
		t.Error("re-running the aggregator on the same rows produced a different snapshot")
	}
}

func TestTopSports(t *testing.T) {
	rows := []export.Row{
		activityRow("2025-01-01", "Cycling", "20", "1:00:00", "", ""),
		activityRow("2025-01-02", "Running", "3", "0:30:00", "", ""),
		activityRow("2025-01-03", "Running", "3", "0:30:00", "", ""),
		activityRow("2025-01-04", "Pool Swim", "1500", "0:40:00", "", ""),
		activityRow("2025-01-05", "Cycling", "18", "1:00:00", "", ""),
	}

	snap, err := AggregateActivities(rows)
	if err != nil {
		t.Fatalf("AggregateActivities() error = %v", err)
	}

	top := snap.TopSports(2)
	if len(top) != 2 {
		t.Fatalf("len(top) = %d, want 2", len(top))
	}
	// Bike and Run both have 2 sessions; Bike appeared first in the input.
	if top[0].Sport != sport.Bike {
		t.Errorf("top[0] = %v, want Bike (first occurrence wins the tie)", top[0].Sport)
	}
	if top[1].Sport != sport.Run {
		t.Errorf("top[1] = %v, want Run", top[1].Sport)
	}

	// Asking for more than exists returns everything.
	if got := len(snap.TopSports(10)); got != 3 {
		t.Errorf("TopSports(10) returned %d entries, want 3", got)
	}
}

func TestAggregateActivities_WeekBuckets(t *testing.T) {
	// Mon Jan 6 and Sun Jan 12 share a week; Mon Jan 13 starts the next.
	rows := []export.Row{
		activityRow("2025-01-06", "Running", "3", "0:30:00", "", ""),
		activityRow("2025-01-12", "Running", "3", "0:30:00", "", ""),
		activityRow("2025-01-13", "Running", "3", "1:30:00", "", ""),
	}

	snap, err := AggregateActivities(rows)
	if err != nil {
		t.Fatalf("AggregateActivities() error = %v", err)
	}

	if len(snap.Weeks) != 2 {
		t.Fatalf("len(Weeks) = %d, want 2", len(snap.Weeks))
	}
	if snap.Weeks[0].Sessions != 2 || snap.Weeks[0].Seconds != 3600 {
		t.Errorf("week 1 = %d sessions / %ds, want 2 / 3600", snap.Weeks[0].Sessions, snap.Weeks[0].Seconds)
	}
	if !snap.Weeks[0].Start.Before(snap.Weeks[1].Start) {
		t.Error("weeks should be sorted by start date")
	}
	if snap.BusiestWeek == nil {
		t.Fatal("BusiestWeek should not be nil")
	}
	// 90 minutes in the second week beats 60 in the first.
	if snap.BusiestWeek.Seconds != 5400 {
		t.Errorf("BusiestWeek.Seconds = %d, want 5400", snap.BusiestWeek.Seconds)
	}
	if snap.FullestWeek == nil || snap.FullestWeek.Sessions != 2 {
		t.Error("FullestWeek should be the two-session week")
	}
}
