package employee

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Employee struct {
	ID                     primitive.ObjectID `bson:"_id,omitempty"`
	Name                   string             `bson:"name"`
	Email                  string             `bson:"email"`
	PasswordHash           string             `bson:"password,omitempty"`
	Role                   string             `bson:"role"`
	Designation            string             `bson:"designation"`
	Phone                  string             `bson:"phone,omitempty"`
	DateOfJoining          string             `bson:"date_of_joining,omitempty"`
	DateOfBirth            string             `bson:"date_of_birth,omitempty"`
	BloodGroup             string             `bson:"blood_group,omitempty"`
	EmergencyContactNumber string             `bson:"emergency_contact_number,omitempty"`
	IsDisabled             bool               `bson:"is_disabled"`
	IsDeleted              bool               `bson:"is_deleted"`
	IsWorkFromHome         bool               `bson:"is_work_from_home"`
	CreatedAt              time.Time          `bson:"created_at"`
	UpdatedAt              time.Time          `bson:"updated_at"`
}
