package attendance

import (
	"strconv"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Status string

const (
	StatusPresent Status = "Present"
	StatusLate    Status = "Late"
	StatusAbsent  Status = "Absent"
	StatusLeave   Status = "Leave"
)

// StatusValues lists every status a stored record may carry.
func StatusValues() []string {
	return []string{
		string(StatusPresent),
		string(StatusLate),
		string(StatusAbsent),
		string(StatusLeave),
	}
}

// Punch-in at or before 09:30 counts as Present; strictly after is Late.
const (
	LateThresholdHour   = 9
	LateThresholdMinute = 30
	StandardStartTime   = "09:30"
)

type Attendance struct {
	ID         primitive.ObjectID `bson:"_id,omitempty"`
	EmployeeID primitive.ObjectID `bson:"employee_id"`
	// Date is the working day, truncated to midnight. At most one record
	// exists per (employee_id, date); the store enforces it.
	Date     time.Time `bson:"date"`
	PunchIn  string    `bson:"punch_in"`
	PunchOut *string   `bson:"punch_out"`
	Status   Status    `bson:"status"`
	// TotalWorkingHours arrives from the store as either a number or a
	// numeric string. Readers go through CoerceHours.
	TotalWorkingHours interface{} `bson:"total_working_hours"`
	IsWorkFromHome    bool        `bson:"is_work_from_home"`
	CreatedAt         time.Time   `bson:"created_at"`
	UpdatedAt         time.Time   `bson:"updated_at"`
}

// StatusForPunchIn applies the lateness policy to a punch-in wall-clock time.
func StatusForPunchIn(hour, minute int) Status {
	if hour > LateThresholdHour || (hour == LateThresholdHour && minute > LateThresholdMinute) {
		return StatusLate
	}
	return StatusPresent
}

// CoerceHours converts a stored worked-hours value to a float64. Numeric
// strings are accepted; anything else reports false and is skipped by
// callers rather than failing the computation.
func CoerceHours(v interface{}) (float64, bool) {
	switch h := v.(type) {
	case float64:
		return h, true
	case float32:
		return float64(h), true
	case int:
		return float64(h), true
	case int32:
		return float64(h), true
	case int64:
		return float64(h), true
	case string:
		f, err := strconv.ParseFloat(h, 64)
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}
