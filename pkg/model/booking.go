package model

import (
	"time"
)

// Booking statuses drive which notification content goes out on update.
const (
	StatusScheduled = "Scheduled"
	StatusConfirmed = "Confirmed"
	StatusCancelled = "Cancelled"
	StatusCompleted = "Completed"
)

// Address is the nested service address value object.
type Address struct {
	Street string `json:"street" bson:"street" validate:"omitempty,max=200"`
	City   string `json:"city" bson:"city" validate:"omitempty,max=100"`
	State  string `json:"state" bson:"state" validate:"omitempty,max=100"`
	Zip    string `json:"zip" bson:"zip" validate:"omitempty,max=20"`
}

// ContactInfo carries the customer's (or cleaner's) reachable endpoints.
// Both fields are required on booking creation so notifications can be sent.
type ContactInfo struct {
	Phone string `json:"phone" bson:"phone" validate:"required,max=30"`
	Email string `json:"email" bson:"email" validate:"required,email,max=200"`
}

// Booking is one customer cleaning request. Field names match the documents
// already in the store, so json and bson tags stay camelCase.
type Booking struct {
	ID              string      `json:"_id,omitempty" bson:"_id,omitempty" validate:"omitempty,mongodb"`
	ZipCode         string      `json:"zipCode" bson:"zipCode" validate:"omitempty,max=20"`
	SquareFeet      int         `json:"squareFeet" bson:"squareFeet" validate:"omitempty,gte=0"`
	Bedrooms        string      `json:"bedrooms" bson:"bedrooms" validate:"omitempty,max=10"`
	LivingRooms     string      `json:"livingRooms" bson:"livingRooms" validate:"omitempty,max=10"`
	Bathrooms       string      `json:"bathrooms" bson:"bathrooms" validate:"omitempty,max=10"`
	CleaningType    string      `json:"cleaningType" bson:"cleaningType" validate:"omitempty,max=100"`
	HomeCondition   string      `json:"homeCondition" bson:"homeCondition" validate:"omitempty,max=100"`
	Pets            string      `json:"pets" bson:"pets" validate:"omitempty,oneof=yes no"`
	Frequency       string      `json:"frequency" bson:"frequency" validate:"omitempty,max=50"`
	AddOnServices   []string    `json:"addOnServices" bson:"addOnServices" validate:"omitempty,dive,max=100"`
	AppointmentDate string      `json:"appointmentDate" bson:"appointmentDate" validate:"omitempty,max=30"`
	AppointmentTime string      `json:"appointmentTime" bson:"appointmentTime" validate:"omitempty,max=30"`
	Address         Address     `json:"address" bson:"address"`
	ContactInfo     ContactInfo `json:"contactInfo" bson:"contactInfo" validate:"required"`
	PaymentType     string      `json:"paymentType" bson:"paymentType" validate:"omitempty,max=50"`
	TotalPrice      float64     `json:"totalPrice" bson:"totalPrice" validate:"gte=0"`
	BookingStatus   string      `json:"bookingStatus" bson:"bookingStatus" validate:"omitempty,oneof=Scheduled Confirmed Cancelled Completed"`

	// Cleaner is a reference to the assigned cleaner document; the two
	// fields below are a snapshot of that cleaner's name and phone taken
	// at assignment time. They are only refreshed by a new assignment.
	Cleaner               string `json:"cleaner,omitempty" bson:"cleaner,omitempty" validate:"omitempty,mongodb"`
	AssignedCleaner       string `json:"assignedCleaner,omitempty" bson:"assignedCleaner,omitempty"`
	AssignedCleanerNumber string `json:"assignedCleanerNumber,omitempty" bson:"assignedCleanerNumber,omitempty"`

	CreatedAt time.Time `json:"createdAt,omitempty" bson:"createdAt,omitempty" validate:"omitempty"`
}

// BookingUpdate is a partial-update payload; nil fields are left untouched.
// A non-nil Cleaner set to the empty string clears the cleaner reference.
type BookingUpdate struct {
	ZipCode         *string      `json:"zipCode,omitempty" validate:"omitempty,max=20"`
	SquareFeet      *int         `json:"squareFeet,omitempty" validate:"omitempty,gte=0"`
	Bedrooms        *string      `json:"bedrooms,omitempty" validate:"omitempty,max=10"`
	LivingRooms     *string      `json:"livingRooms,omitempty" validate:"omitempty,max=10"`
	Bathrooms       *string      `json:"bathrooms,omitempty" validate:"omitempty,max=10"`
	CleaningType    *string      `json:"cleaningType,omitempty" validate:"omitempty,max=100"`
	HomeCondition   *string      `json:"homeCondition,omitempty" validate:"omitempty,max=100"`
	Pets            *string      `json:"pets,omitempty" validate:"omitempty,oneof=yes no"`
	Frequency       *string      `json:"frequency,omitempty" validate:"omitempty,max=50"`
	AddOnServices   *[]string    `json:"addOnServices,omitempty" validate:"omitempty,dive,max=100"`
	AppointmentDate *string      `json:"appointmentDate,omitempty" validate:"omitempty,max=30"`
	AppointmentTime *string      `json:"appointmentTime,omitempty" validate:"omitempty,max=30"`
	Address         *Address     `json:"address,omitempty"`
	ContactInfo     *ContactInfo `json:"contactInfo,omitempty"`
	PaymentType     *string      `json:"paymentType,omitempty" validate:"omitempty,max=50"`
	TotalPrice      *float64     `json:"totalPrice,omitempty" validate:"omitempty,gte=0"`
	BookingStatus   *string      `json:"bookingStatus,omitempty" validate:"omitempty,oneof=Scheduled Confirmed Cancelled Completed"`
	Cleaner         *string      `json:"cleaner,omitempty"`
}

func IsValidStatus(status string) bool {
	switch status {
	case StatusScheduled, StatusConfirmed, StatusCancelled, StatusCompleted:
		return true
	}
	return false
}
