package attendance

import (
	"context"
	"fmt"
	"time"

	"github.com/attendly/attendly-backend-go/internal/domain/attendance"
	"github.com/attendly/attendly-backend-go/internal/domain/employee"
	"github.com/attendly/attendly-backend-go/internal/pkg/validator"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type AttendanceServiceImpl struct {
	attendance.AttendanceRepository
	employee.EmployeeRepository

	// now is swappable so the marking transition can be pinned in tests.
	now func() time.Time
}

func NewAttendanceService(
	attendanceRepo attendance.AttendanceRepository,
	employeeRepo employee.EmployeeRepository,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		AttendanceRepository: attendanceRepo,
		EmployeeRepository:   employeeRepo,
		now:                  time.Now,
	}
}

// Mark implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) Mark(ctx context.Context, req attendance.MarkAttendanceRequest) (attendance.MarkAttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.MarkAttendanceResponse{}, err
	}

	now := s.now()

	// Parsing doubles as the only clock-time check; nothing upstream
	// re-validates the format.
	hour, minute := now.Hour(), now.Minute()
	if req.PunchInTime != "" {
		var ok bool
		hour, minute, ok = validator.ParseClockTime(req.PunchInTime)
		if !ok {
			return attendance.MarkAttendanceResponse{}, attendance.ErrInvalidPunchTime
		}
	}
	punchIn := fmt.Sprintf("%02d:%02d", hour, minute)

	emp, err := s.EmployeeRepository.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return attendance.MarkAttendanceResponse{}, err
	}

	existing, err := s.AttendanceRepository.GetByEmployeeAndDate(ctx, req.EmployeeID, now)
	if err != nil {
		return attendance.MarkAttendanceResponse{}, err
	}
	if existing != nil {
		return attendance.MarkAttendanceResponse{}, attendance.ErrAlreadyMarked
	}

	status := attendance.StatusForPunchIn(hour, minute)

	employeeOID, err := primitive.ObjectIDFromHex(req.EmployeeID)
	if err != nil {
		return attendance.MarkAttendanceResponse{}, employee.ErrInvalidEmployeeID
	}

	record := attendance.Attendance{
		EmployeeID:        employeeOID,
		Date:              time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()),
		PunchIn:           punchIn,
		PunchOut:          nil,
		Status:            status,
		TotalWorkingHours: float64(0),
		IsWorkFromHome:    emp.IsWorkFromHome,
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	// The existence check above is advisory; the unique index behind Create
	// is what actually closes the concurrent double-mark race.
	created, err := s.AttendanceRepository.Create(ctx, record)
	if err != nil {
		return attendance.MarkAttendanceResponse{}, err
	}

	return attendance.MarkAttendanceResponse{
		AttendanceID: created.ID.Hex(),
		EmployeeID:   req.EmployeeID,
		EmployeeName: emp.Name,
		Date:         created.Date.Format("2006-01-02"),
		PunchIn:      created.PunchIn,
		Status:       created.Status,
	}, nil
}
