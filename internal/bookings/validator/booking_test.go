package validator

import (
	"testing"

	"cleanbook/pkg/logger"
	"cleanbook/pkg/model"
)

func newTestValidator() *BookingValidator {
	return NewBookingValidator(logger.New(logger.Config{Level: "error", Service: "test"}))
}

func validBooking() *model.Booking {
	return &model.Booking{
		ZipCode:         "62704",
		AppointmentDate: "2024-06-01",
		AppointmentTime: "10am",
		ContactInfo:     model.ContactInfo{Email: "a@b.com", Phone: "555-1111"},
		TotalPrice:      120,
		BookingStatus:   model.StatusScheduled,
	}
}

func TestValidate_ValidBooking(t *testing.T) {
	v := newTestValidator()
	if err := v.Validate(validBooking()); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestValidate_MissingContactInfo(t *testing.T) {
	v := newTestValidator()

	b := validBooking()
	b.ContactInfo.Email = ""
	if err := v.Validate(b); err == nil {
		t.Error("expected error for missing email")
	}

	b = validBooking()
	b.ContactInfo.Phone = ""
	if err := v.Validate(b); err == nil {
		t.Error("expected error for missing phone")
	}
}

func TestValidate_NegativePrice(t *testing.T) {
	v := newTestValidator()
	b := validBooking()
	b.TotalPrice = -5
	if err := v.Validate(b); err == nil {
		t.Error("expected error for negative total price")
	}
}

func TestValidate_UnknownStatus(t *testing.T) {
	v := newTestValidator()
	b := validBooking()
	b.BookingStatus = "Pending"
	if err := v.Validate(b); err == nil {
		t.Error("expected error for unknown status")
	}
}

func TestValidateUpdate_PartialContactInfoRejected(t *testing.T) {
	v := newTestValidator()
	update := &model.BookingUpdate{
		ContactInfo: &model.ContactInfo{Email: "a@b.com"},
	}
	if err := v.ValidateUpdate(update); err == nil {
		t.Error("expected error for contact info without phone")
	}
}

func TestValidateUpdate_EmptyUpdateAllowed(t *testing.T) {
	v := newTestValidator()
	if err := v.ValidateUpdate(&model.BookingUpdate{}); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}
