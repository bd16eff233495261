package sport

import "strings"

// Category is a canonical sport bucket. Free-text activity labels from the
// export are folded into one of these.
type Category string

const (
	Run      Category = "Run"
	Bike     Category = "Bike"
	Swim     Category = "Swim"
	WalkHike Category = "Walk/Hike"
	Strength Category = "Strength"
	Other    Category = "Other"
)

// Categories lists every category in display order.
var Categories = []Category{Run, Bike, Swim, WalkHike, Strength, Other}

// keywordRule maps a set of label substrings to a category. Rules are
// evaluated in order and the first match wins.
type keywordRule struct {
	keywords []string
	category Category
}

var keywordRules = []keywordRule{
	{[]string{"run"}, Run},
	{[]string{"bike", "cycling"}, Bike},
	{[]string{"swim"}, Swim},
	{[]string{"walk", "hike", "treadmill"}, WalkHike},
	{[]string{"strength", "lift"}, Strength},
}

// Classify maps a free-text activity label to its canonical category using
// case-insensitive substring matching. Labels that match nothing degrade to
// Other rather than failing; this is a heuristic, not a validation.
func Classify(label string) Category {
	l := strings.ToLower(label)
	for _, rule := range keywordRules {
		for _, kw := range rule.keywords {
			if strings.Contains(l, kw) {
				return rule.category
			}
		}
	}
	return Other
}
