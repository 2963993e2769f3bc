package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User roles
const (
	RoleUser   = "USER"
	RoleAdmin  = "ADMIN"
	RoleSeller = "SELLER"
)

// User account statuses
const (
	StatusActive              = "ACTIVE"
	StatusInactive            = "INACTIVE"
	StatusSuspended           = "SUSPENDED"
	StatusPendingVerification = "PENDING_VERIFICATION"
)

type User struct {
	ID                 primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	FirstName          string             `json:"firstName" bson:"firstName"`
	LastName           string             `json:"lastName" bson:"lastName"`
	Email              string             `json:"email" bson:"email"`
	Phone              string             `json:"phone,omitempty" bson:"phone,omitempty"`
	Password           string             `json:"-" bson:"password"`
	OTP                string             `json:"-" bson:"otp,omitempty"`
	TempTokenExpiredAt *time.Time         `json:"-" bson:"tempTokenExpiredAt,omitempty"`
	StateOfResidence   string             `json:"stateOfResidence,omitempty" bson:"stateOfResidence,omitempty"`
	EducationLevel     string             `json:"educationLevel,omitempty" bson:"educationLevel,omitempty"`
	BirthDate          *time.Time         `json:"birthDate,omitempty" bson:"birthDate,omitempty"`
	Gender             string             `json:"gender,omitempty" bson:"gender,omitempty"`
	ImageLink          string             `json:"imageLink,omitempty" bson:"imageLink,omitempty"`
	Role               string             `json:"role" bson:"role"`
	Status             string             `json:"status" bson:"status"`
	Credit             float64            `json:"credit" bson:"credit"`
	Language           string             `json:"language,omitempty" bson:"language,omitempty"`
	CurrencyCode       string             `json:"currencyCode,omitempty" bson:"currencyCode,omitempty"`
	CountryCode        string             `json:"countryCode,omitempty" bson:"countryCode,omitempty"`
	CityName           string             `json:"cityName,omitempty" bson:"cityName,omitempty"`
	CreatedAt          time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt          time.Time          `json:"updatedAt" bson:"updatedAt"`
}
