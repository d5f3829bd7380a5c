package mongodb

import (
	"context"
	"errors"
	"fmt"

	"github.com/attendly/attendly-backend-go/internal/domain/employee"
	"github.com/attendly/attendly-backend-go/internal/pkg/database"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type employeeRepository struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepository{db: db}
}

// notDeleted excludes soft-deleted documents from every employee query.
var notDeleted = bson.M{"$ne": true}

// GetByID implements employee.EmployeeRepository.
func (r *employeeRepository) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return employee.Employee{}, employee.ErrInvalidEmployeeID
	}

	filter := bson.M{"_id": oid, "is_deleted": notDeleted}

	var emp employee.Employee
	err = r.db.Collection(database.EmployeesCollection).FindOne(ctx, filter).Decode(&emp)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee by ID: %w: %w", database.ErrUnavailable, err)
	}

	return emp, nil
}

// GetByEmail implements employee.EmployeeRepository.
func (r *employeeRepository) GetByEmail(ctx context.Context, email string) (employee.Employee, error) {
	filter := bson.M{"email": email, "is_deleted": notDeleted}

	var emp employee.Employee
	err := r.db.Collection(database.EmployeesCollection).FindOne(ctx, filter).Decode(&emp)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee by email: %w: %w", database.ErrUnavailable, err)
	}

	return emp, nil
}

// ListByDesignation implements employee.EmployeeRepository.
func (r *employeeRepository) ListByDesignation(ctx context.Context, designation string) ([]employee.Employee, error) {
	filter := bson.M{"designation": designation, "is_deleted": notDeleted}

	cursor, err := r.db.Collection(database.EmployeesCollection).Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees by designation: %w: %w", database.ErrUnavailable, err)
	}
	defer cursor.Close(ctx)

	var employees []employee.Employee
	if err := cursor.All(ctx, &employees); err != nil {
		return nil, fmt.Errorf("failed to decode employees: %w: %w", database.ErrUnavailable, err)
	}

	return employees, nil
}
