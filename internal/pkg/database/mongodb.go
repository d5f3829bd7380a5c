package database

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	EmployeesCollection   = "employees"
	AttendancesCollection = "attendances"
)

type DB struct {
	Client  *mongo.Client
	mongoDB *mongo.Database
	Timeout time.Duration
}

func NewMongoDB(uri, dbName string, timeout time.Duration) (*DB, error) {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}

	opts := options.Client().
		ApplyURI(uri).
		SetServerSelectionTimeout(timeout).
		SetConnectTimeout(timeout).
		SetTimeout(timeout)

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("failed to ping mongodb: %w", err)
	}

	return &DB{
		Client:  client,
		mongoDB: client.Database(dbName),
		Timeout: timeout,
	}, nil
}

func (db *DB) Collection(name string) *mongo.Collection {
	return db.mongoDB.Collection(name)
}

func (db *DB) Close(ctx context.Context) error {
	return db.Client.Disconnect(ctx)
}

// EnsureIndexes creates the indexes both collections rely on. The unique
// compound index on (employee_id, date) is what makes attendance marking
// safe against two concurrent submissions for the same day.
func (db *DB) EnsureIndexes(ctx context.Context) error {
	employeeIndexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{Keys: bson.D{{Key: "role", Value: 1}}},
		{Keys: bson.D{{Key: "designation", Value: 1}}},
		{Keys: bson.D{{Key: "is_deleted", Value: 1}}},
	}

	if _, err := db.Collection(EmployeesCollection).Indexes().CreateMany(ctx, employeeIndexes); err != nil {
		return fmt.Errorf("failed to create employee indexes: %w", err)
	}

	attendanceIndexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "employee_id", Value: 1}}},
		{Keys: bson.D{{Key: "date", Value: -1}}},
		{Keys: bson.D{{Key: "status", Value: 1}}},
		{
			Keys:    bson.D{{Key: "employee_id", Value: 1}, {Key: "date", Value: -1}},
			Options: options.Index().SetUnique(true),
		},
	}

	if _, err := db.Collection(AttendancesCollection).Indexes().CreateMany(ctx, attendanceIndexes); err != nil {
		return fmt.Errorf("failed to create attendance indexes: %w", err)
	}

	return nil
}
