package main

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"strconv"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/attendly/attendly-backend-go/internal/config"
	"github.com/attendly/attendly-backend-go/internal/domain/attendance"
	"github.com/attendly/attendly-backend-go/internal/domain/employee"
	"github.com/attendly/attendly-backend-go/internal/pkg/database"
)

const seedDays = 60

// attendanceRate is the per-weekday probability of a record existing.
const attendanceRate = 0.92

func sampleEmployees(now time.Time) []employee.Employee {
	base := employee.Employee{
		PasswordHash: "$2b$10$hashedpassword",
		Role:         "employee",
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	mk := func(name, email, designation, phone, joined, born, blood, emergency string, wfh bool) employee.Employee {
		e := base
		e.Name = name
		e.Email = email
		e.Designation = designation
		e.Phone = phone
		e.DateOfJoining = joined
		e.DateOfBirth = born
		e.BloodGroup = blood
		e.EmergencyContactNumber = emergency
		e.IsWorkFromHome = wfh
		return e
	}

	employees := []employee.Employee{
		mk("John Smith", "john.smith@company.com", "Engineering", "+1-555-0101", "2023-01-15", "1990-05-20", "A+", "+1-555-0199", false),
		mk("Sarah Johnson", "sarah.johnson@company.com", "Engineering", "+1-555-0102", "2023-02-01", "1992-08-15", "B+", "+1-555-0198", false),
		mk("Michael Chen", "michael.chen@company.com", "Sales", "+1-555-0103", "2023-03-10", "1988-12-05", "O+", "+1-555-0197", false),
		mk("Emily Davis", "emily.davis@company.com", "Marketing", "+1-555-0104", "2023-04-05", "1995-03-12", "AB+", "+1-555-0196", true),
		mk("David Wilson", "david.wilson@company.com", "Engineering", "+1-555-0105", "2023-05-20", "1987-11-30", "O-", "+1-555-0195", false),
		mk("Lisa Anderson", "lisa.anderson@company.com", "HR", "+1-555-0106", "2022-11-01", "1985-07-18", "A-", "+1-555-0194", false),
		mk("Robert Martinez", "robert.martinez@company.com", "Sales", "+1-555-0107", "2023-06-15", "1993-09-25", "B-", "+1-555-0193", false),
		mk("Jennifer Taylor", "jennifer.taylor@company.com", "Marketing", "+1-555-0108", "2023-07-01", "1991-04-08", "A+", "+1-555-0192", false),
	}
	employees[5].Role = "hr"

	return employees
}

// randomAttendance rolls one day's record for an employee, or nil for an
// absence. Roughly one in ten hour values is stored as a numeric string,
// matching what the production collections accumulated over time.
func randomAttendance(rng *rand.Rand, emp employee.Employee, day time.Time) *attendance.Attendance {
	if rng.Float64() >= attendanceRate {
		return nil
	}

	punchInHour := 8 + rng.Intn(3)
	var punchInMinute int
	if punchInHour == 10 {
		punchInMinute = rng.Intn(31)
	} else {
		punchInMinute = rng.Intn(60)
	}

	punchOutHour := 17 + rng.Intn(4)
	punchOutMinute := rng.Intn(60)

	totalMinutes := (punchOutHour*60 + punchOutMinute) - (punchInHour*60 + punchInMinute)
	workHours := float64(totalMinutes) / 60

	var hours interface{} = workHours
	if rng.Intn(10) == 0 {
		hours = strconv.FormatFloat(workHours, 'f', 2, 64)
	}

	punchOut := fmt.Sprintf("%02d:%02d", punchOutHour, punchOutMinute)

	return &attendance.Attendance{
		EmployeeID:        emp.ID,
		Date:              day,
		PunchIn:           fmt.Sprintf("%02d:%02d", punchInHour, punchInMinute),
		PunchOut:          &punchOut,
		Status:            attendance.StatusForPunchIn(punchInHour, punchInMinute),
		TotalWorkingHours: hours,
		IsWorkFromHome:    emp.IsWorkFromHome,
		CreatedAt:         day,
		UpdatedAt:         day,
	}
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Error loading config:", err)
	}

	ctx := context.Background()

	fmt.Println("📡 Connecting to MongoDB...")
	db, err := database.NewMongoDB(cfg.Database.URI, cfg.Database.Name, cfg.Database.QueryTimeout)
	if err != nil {
		log.Fatal("Error connecting to database:", err)
	}
	defer func() {
		if err := db.Close(ctx); err != nil {
			log.Println("Error closing database:", err)
		}
	}()

	employees := db.Collection(database.EmployeesCollection)
	attendances := db.Collection(database.AttendancesCollection)

	fmt.Println("🗑️  Clearing existing data...")
	if _, err := employees.DeleteMany(ctx, bson.M{}); err != nil {
		log.Fatal("Failed to clear employees:", err)
	}
	if _, err := attendances.DeleteMany(ctx, bson.M{}); err != nil {
		log.Fatal("Failed to clear attendances:", err)
	}

	now := time.Now()
	sample := sampleEmployees(now)

	fmt.Println("👥 Creating sample employees...")
	docs := make([]interface{}, 0, len(sample))
	for i := range sample {
		docs = append(docs, &sample[i])
	}
	inserted, err := employees.InsertMany(ctx, docs)
	if err != nil {
		log.Fatal("Failed to insert employees:", err)
	}
	for i, id := range inserted.InsertedIDs {
		if oid, ok := id.(primitive.ObjectID); ok {
			sample[i].ID = oid
		}
	}

	fmt.Println("📅 Generating attendance records...")
	rng := rand.New(rand.NewSource(now.UnixNano()))
	recordCount := 0
	for _, emp := range sample {
		for daysAgo := 0; daysAgo < seedDays; daysAgo++ {
			day := now.AddDate(0, 0, -daysAgo)
			if day.Weekday() == time.Saturday || day.Weekday() == time.Sunday {
				continue
			}
			day = time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())

			record := randomAttendance(rng, emp, day)
			if record == nil {
				continue
			}
			if _, err := attendances.InsertOne(ctx, record); err != nil {
				log.Fatal("Failed to insert attendance:", err)
			}
			recordCount++
		}
	}

	fmt.Println("🔍 Creating database indexes...")
	if err := db.EnsureIndexes(ctx); err != nil {
		log.Fatal("Failed to create indexes:", err)
	}

	fmt.Println("✅ Database seeding completed!")
	fmt.Printf("   • Total employees: %d\n", len(sample))
	fmt.Printf("   • Total attendance records: %d\n", recordCount)
}
