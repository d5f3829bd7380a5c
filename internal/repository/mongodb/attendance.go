package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/attendly/attendly-backend-go/internal/domain/attendance"
	"github.com/attendly/attendly-backend-go/internal/domain/employee"
	"github.com/attendly/attendly-backend-go/internal/pkg/database"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepository{db: db}
}

// Create implements attendance.AttendanceRepository.
func (r *attendanceRepository) Create(ctx context.Context, record attendance.Attendance) (attendance.Attendance, error) {
	result, err := r.db.Collection(database.AttendancesCollection).InsertOne(ctx, record)
	if err != nil {
		// The unique (employee_id, date) index rejects a concurrent second
		// mark; translate it instead of surfacing a write error.
		if mongo.IsDuplicateKeyError(err) {
			return attendance.Attendance{}, attendance.ErrAlreadyMarked
		}
		return attendance.Attendance{}, fmt.Errorf("failed to create attendance: %w: %w", database.ErrUnavailable, err)
	}

	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		record.ID = oid
	}

	return record, nil
}

// GetByEmployeeAndDate implements attendance.AttendanceRepository.
func (r *attendanceRepository) GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*attendance.Attendance, error) {
	oid, err := primitive.ObjectIDFromHex(employeeID)
	if err != nil {
		return nil, employee.ErrInvalidEmployeeID
	}

	startOfDay := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	endOfDay := startOfDay.AddDate(0, 0, 1).Add(-time.Nanosecond)

	filter := bson.M{
		"employee_id": oid,
		"date":        bson.M{"$gte": startOfDay, "$lte": endOfDay},
	}

	var record attendance.Attendance
	err = r.db.Collection(database.AttendancesCollection).FindOne(ctx, filter).Decode(&record)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil // no record for this day
		}
		return nil, fmt.Errorf("failed to get attendance by employee and date: %w: %w", database.ErrUnavailable, err)
	}

	return &record, nil
}

// ListByEmployeeAndRange implements attendance.AttendanceRepository.
func (r *attendanceRepository) ListByEmployeeAndRange(ctx context.Context, employeeID string, start, end time.Time) ([]attendance.Attendance, error) {
	oid, err := primitive.ObjectIDFromHex(employeeID)
	if err != nil {
		return nil, employee.ErrInvalidEmployeeID
	}

	filter := bson.M{
		"employee_id": oid,
		"date":        bson.M{"$gte": start, "$lte": end},
	}
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}})

	cursor, err := r.db.Collection(database.AttendancesCollection).Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance range: %w: %w", database.ErrUnavailable, err)
	}
	defer cursor.Close(ctx)

	var records []attendance.Attendance
	if err := cursor.All(ctx, &records); err != nil {
		return nil, fmt.Errorf("failed to decode attendance records: %w: %w", database.ErrUnavailable, err)
	}

	return records, nil
}

// GroupByStatus implements attendance.AttendanceRepository.
func (r *attendanceRepository) GroupByStatus(ctx context.Context, filter attendance.StatusFilter) (attendance.StatusBreakdown, error) {
	match := bson.M{}

	if filter.EmployeeID != "" {
		oid, err := primitive.ObjectIDFromHex(filter.EmployeeID)
		if err != nil {
			return nil, employee.ErrInvalidEmployeeID
		}
		match["employee_id"] = oid
	}

	if !filter.Start.IsZero() || !filter.End.IsZero() {
		dateQuery := bson.M{}
		if !filter.Start.IsZero() {
			dateQuery["$gte"] = filter.Start
		}
		if !filter.End.IsZero() {
			dateQuery["$lte"] = filter.End
		}
		match["date"] = dateQuery
	}

	if filter.Status != "" {
		match["status"] = filter.Status
	}

	// $convert coerces hours stored as numeric strings and silently zeroes
	// anything non-numeric, so one bad document never fails the aggregate.
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: match}},
		{{Key: "$group", Value: bson.M{
			"_id":   "$status",
			"count": bson.M{"$sum": 1},
			"total_hours": bson.M{"$sum": bson.M{"$convert": bson.M{
				"input":   "$total_working_hours",
				"to":      "double",
				"onError": 0,
				"onNull":  0,
			}}},
		}}},
	}

	cursor, err := r.db.Collection(database.AttendancesCollection).Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to group attendance by status: %w: %w", database.ErrUnavailable, err)
	}
	defer cursor.Close(ctx)

	var rows []struct {
		Status     string  `bson:"_id"`
		Count      int64   `bson:"count"`
		TotalHours float64 `bson:"total_hours"`
	}
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, fmt.Errorf("failed to decode status groups: %w: %w", database.ErrUnavailable, err)
	}

	breakdown := make(attendance.StatusBreakdown, len(rows))
	for _, row := range rows {
		breakdown[attendance.Status(row.Status)] = attendance.StatusAggregate{
			Count:      row.Count,
			TotalHours: row.TotalHours,
		}
	}

	return breakdown, nil
}

// ListLateArrivals implements attendance.AttendanceRepository.
func (r *attendanceRepository) ListLateArrivals(ctx context.Context, start, end time.Time) ([]attendance.LateArrival, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{
			"status": attendance.StatusLate,
			"date":   bson.M{"$gte": start, "$lte": end},
		}}},
		{{Key: "$lookup", Value: bson.M{
			"from":         database.EmployeesCollection,
			"localField":   "employee_id",
			"foreignField": "_id",
			"as":           "employee_info",
		}}},
		{{Key: "$unwind", Value: "$employee_info"}},
		{{Key: "$project", Value: bson.M{
			"employee_name":  "$employee_info.name",
			"employee_email": "$employee_info.email",
			"date":           1,
			"punch_in":       1,
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "date", Value: -1}}}},
	}

	cursor, err := r.db.Collection(database.AttendancesCollection).Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to list late arrivals: %w: %w", database.ErrUnavailable, err)
	}
	defer cursor.Close(ctx)

	var rows []struct {
		EmployeeName  string    `bson:"employee_name"`
		EmployeeEmail string    `bson:"employee_email"`
		Date          time.Time `bson:"date"`
		PunchIn       string    `bson:"punch_in"`
	}
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, fmt.Errorf("failed to decode late arrivals: %w: %w", database.ErrUnavailable, err)
	}

	arrivals := make([]attendance.LateArrival, 0, len(rows))
	for _, row := range rows {
		arrivals = append(arrivals, attendance.LateArrival{
			EmployeeName:  row.EmployeeName,
			EmployeeEmail: row.EmployeeEmail,
			Date:          row.Date.Format("2006-01-02"),
			PunchIn:       row.PunchIn,
		})
	}

	return arrivals, nil
}
