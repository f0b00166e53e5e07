package scoring

// gradeThresholds are inclusive upper bounds on the composite score; lower
// composites earn better grades.
var gradeThresholds = []struct {
	limit float64
	grade string
}{
	{20, "A+"},
	{30, "A"},
	{40, "B+"},
	{50, "B"},
	{60, "C+"},
	{70, "C"},
	{80, "D+"},
	{90, "D"},
}

// Grade converts a composite score into a letter grade.
func Grade(composite float64) string {
	for _, t := range gradeThresholds {
		if composite <= t.limit {
			return t.grade
		}
	}
	return "F"
}
