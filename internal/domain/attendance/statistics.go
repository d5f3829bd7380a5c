package attendance

// Statistics is the per-employee aggregate computed over a record set and a
// fixed total-day denominator. It is recomputed on every query, never stored.
type Statistics struct {
	PresentDays       int     `json:"present_days"`
	AbsentDays        int     `json:"absent_days"`
	LateDays          int     `json:"late_days"`
	WFHDays           int     `json:"wfh_days"`
	TotalHours        float64 `json:"total_hours"`
	AvgHours          float64 `json:"avg_hours"`
	PresentPercentage float64 `json:"present_percentage"`
}

// ComputeStatistics derives attendance statistics from a set of records over
// a period of totalDays calendar days. Late records still count as present:
// lateness is an attribute of a present day, not a kind of absence. Worked
// hours that fail numeric coercion are skipped silently.
func ComputeStatistics(records []Attendance, totalDays int) Statistics {
	var stats Statistics

	for _, record := range records {
		if record.Status == StatusPresent || record.Status == StatusLate {
			stats.PresentDays++
		}
		if record.Status == StatusLate {
			stats.LateDays++
		}
		if record.IsWorkFromHome {
			stats.WFHDays++
		}
		if hours, ok := CoerceHours(record.TotalWorkingHours); ok {
			stats.TotalHours += hours
		}
	}

	stats.AbsentDays = totalDays - stats.PresentDays
	if stats.PresentDays > 0 {
		stats.AvgHours = stats.TotalHours / float64(stats.PresentDays)
	}
	if totalDays > 0 {
		stats.PresentPercentage = float64(stats.PresentDays) / float64(totalDays) * 100
	}

	return stats
}

// Grade maps an attendance percentage to a letter grade.
func Grade(percentage float64) string {
	switch {
	case percentage >= 95:
		return "A+ Excellent"
	case percentage >= 90:
		return "A Outstanding"
	case percentage >= 85:
		return "B+ Very Good"
	case percentage >= 80:
		return "B Good"
	case percentage >= 75:
		return "C+ Satisfactory"
	case percentage >= 70:
		return "C Needs Attention"
	case percentage >= 60:
		return "D Below Standard"
	default:
		return "F Critical"
	}
}

// Insight returns the narrative line shown under an attendance summary.
// The decision points are fixed policy constants.
func Insight(percentage float64) string {
	switch {
	case percentage >= 95:
		return "Excellent attendance! Keep up the great work."
	case percentage >= 85:
		return "Good attendance record."
	default:
		return "Attendance needs improvement."
	}
}
