package notify

import (
	"fmt"

	"cleanbook/pkg/model"
)

// Email subjects. "Job Cancellation Notice" is load-bearing: the admin
// dashboard filters its inbox on it.
const (
	SubjectBookingConfirmation      = "Booking Confirmation"
	SubjectAdminBookingConfirmation = "Admin Booking Confirmation"
	SubjectBookingUpdate            = "Booking Update"
	SubjectBookingConfirmed         = "Booking Confirmed"
	SubjectJobCancellation          = "Job Cancellation Notice"
	SubjectBookingCompleted         = "Thank You for Choosing Our Service"
	SubjectCleanerAssignment        = "New Job Assignment"
	SubjectCleanerAssigned          = "A Cleaner Has Been Assigned to Your Booking"
	SubjectCleanerWelcome           = "Welcome to the Team"
)

// EmailContent is one rendered outbound email.
type EmailContent struct {
	Subject string
	HTML    string
}

func appointmentSummary(b *model.Booking) string {
	return fmt.Sprintf(`
      <p><strong>Date:</strong> %s</p>
      <p><strong>Time:</strong> %s</p>
      <p><strong>Address:</strong> %s, %s, %s</p>`,
		b.AppointmentDate, b.AppointmentTime,
		b.Address.Street, b.Address.City, b.Address.State)
}

func bookingLink(baseURL string, b *model.Booking) string {
	return fmt.Sprintf("%s/bookings/%s", baseURL, b.ID)
}

// BookingCreatedEmail is the customer confirmation sent on creation.
func BookingCreatedEmail(baseURL string, b *model.Booking) EmailContent {
	html := fmt.Sprintf(`
      <h1>Booking Confirmation</h1>
      <p>Hi %s,</p>
      <p>Your booking has been confirmed!</p>%s
      <p>You can view the details of your booking by clicking the link below:</p>
      <p><a href="%s" target="_blank">View Booking Details</a></p>
      <p>Thank you for choosing our service!</p>`,
		b.ContactInfo.Email, appointmentSummary(b), bookingLink(baseURL, b))
	return EmailContent{Subject: SubjectBookingConfirmation, HTML: html}
}

// AdminBookingCreatedEmail is the copy sent to the configured admin address.
func AdminBookingCreatedEmail(baseURL string, b *model.Booking) EmailContent {
	html := fmt.Sprintf(`
      <h1>Booking Confirmation</h1>
      <p>Booking has been confirmed!</p>
      <p>For: %s, %s</p>%s
      <p>You can view the details of your booking by clicking the link below:</p>
      <p><a href="%s/admin/bookings/%s" target="_blank">View Booking Details</a></p>
      <p><a href="%s/admin/booking" target="_blank">View All Bookings</a></p>`,
		b.ContactInfo.Email, b.ContactInfo.Phone, appointmentSummary(b), baseURL, b.ID, baseURL)
	return EmailContent{Subject: SubjectAdminBookingConfirmation, HTML: html}
}

// BookingUpdatedEmail selects content from the status transition: the
// previous status is compared against the booking's new status, and
// Confirmed/Cancelled/Completed get dedicated messages. Any other
// transition, including an unchanged status, falls back to the generic
// update email.
func BookingUpdatedEmail(baseURL, previousStatus string, b *model.Booking) EmailContent {
	if previousStatus == b.BookingStatus {
		return genericUpdateEmail(baseURL, b)
	}

	switch b.BookingStatus {
	case model.StatusConfirmed:
		return confirmedEmail(baseURL, b)
	case model.StatusCancelled:
		return cancelledEmail(b)
	case model.StatusCompleted:
		return completedEmail(b)
	default:
		return genericUpdateEmail(baseURL, b)
	}
}

func genericUpdateEmail(baseURL string, b *model.Booking) EmailContent {
	html := fmt.Sprintf(`
      <h1>Booking Update</h1>
      <p>Hi %s,</p>
      <p>Your booking has been updated!</p>%s
      <p>You can view the details of your booking by clicking the link below:</p>
      <p><a href="%s" target="_blank">View Booking Details</a></p>
      <p>Thank you for choosing our service!</p>`,
		b.ContactInfo.Email, appointmentSummary(b), bookingLink(baseURL, b))
	return EmailContent{Subject: SubjectBookingUpdate, HTML: html}
}

func confirmedEmail(baseURL string, b *model.Booking) EmailContent {
	cleanerLine := ""
	if b.AssignedCleaner != "" {
		cleanerLine = fmt.Sprintf("\n      <p><strong>Your cleaner:</strong> %s</p>", b.AssignedCleaner)
	}
	html := fmt.Sprintf(`
      <h1>Booking Confirmed</h1>
      <p>Hi %s,</p>
      <p>Great news - your booking is confirmed!</p>%s%s
      <p>You can view the details of your booking by clicking the link below:</p>
      <p><a href="%s" target="_blank">View Booking Details</a></p>
      <p>Thank you for choosing our service!</p>`,
		b.ContactInfo.Email, appointmentSummary(b), cleanerLine, bookingLink(baseURL, b))
	return EmailContent{Subject: SubjectBookingConfirmed, HTML: html}
}

func cancelledEmail(b *model.Booking) EmailContent {
	html := fmt.Sprintf(`
      <h1>Job Cancellation Notice</h1>
      <p>Hi %s,</p>
      <p>Your booking scheduled for %s at %s has been cancelled.</p>
      <p>If this was unexpected, please contact us and we will be happy to help.</p>`,
		b.ContactInfo.Email, b.AppointmentDate, b.AppointmentTime)
	return EmailContent{Subject: SubjectJobCancellation, HTML: html}
}

func completedEmail(b *model.Booking) EmailContent {
	html := fmt.Sprintf(`
      <h1>Thank You!</h1>
      <p>Hi %s,</p>
      <p>Your cleaning on %s is complete. We hope everything sparkles!</p>
      <p>We would love to hear how we did - reply to this email with any feedback.</p>`,
		b.ContactInfo.Email, b.AppointmentDate)
	return EmailContent{Subject: SubjectBookingCompleted, HTML: html}
}

// CleanerAssignmentEmail goes to the cleaner who was just assigned.
func CleanerAssignmentEmail(baseURL string, b *model.Booking, c *model.Cleaner) EmailContent {
	html := fmt.Sprintf(`
      <h1>New Job Assignment</h1>
      <p>Hi %s,</p>
      <p>You have been assigned a new cleaning job.</p>%s
      <p><a href="%s" target="_blank">View Booking Details</a></p>`,
		c.Name, appointmentSummary(b), bookingLink(baseURL, b))
	return EmailContent{Subject: SubjectCleanerAssignment, HTML: html}
}

// CustomerAssignmentEmail tells the customer who is coming.
func CustomerAssignmentEmail(baseURL string, b *model.Booking, c *model.Cleaner) EmailContent {
	html := fmt.Sprintf(`
      <h1>Cleaner Assigned</h1>
      <p>Hi %s,</p>
      <p>%s has been assigned to your booking.</p>%s
      <p><a href="%s" target="_blank">View Booking Details</a></p>
      <p>Thank you for choosing our service!</p>`,
		b.ContactInfo.Email, c.Name, appointmentSummary(b), bookingLink(baseURL, b))
	return EmailContent{Subject: SubjectCleanerAssigned, HTML: html}
}

// CleanerWelcomeEmail is sent once when a cleaner is created.
func CleanerWelcomeEmail(c *model.Cleaner) EmailContent {
	html := fmt.Sprintf(`
      <h1>Welcome to the Team</h1>
      <p>Hi %s,</p>
      <p>Your cleaner profile has been created. You will receive an email
      whenever a job is assigned to you.</p>`,
		c.Name)
	return EmailContent{Subject: SubjectCleanerWelcome, HTML: html}
}

// BookingCreatedSMS is the customer confirmation text.
func BookingCreatedSMS(b *model.Booking) string {
	return fmt.Sprintf(
		"Hi %s, your booking is confirmed! Date: %s Time: %s Address: %s, %s, %s",
		b.ContactInfo.Phone, b.AppointmentDate, b.AppointmentTime,
		b.Address.Street, b.Address.City, b.Address.State)
}

// BookingUpdatedSMS is the generic update text; SMS content does not vary
// by status transition.
func BookingUpdatedSMS(b *model.Booking) string {
	return fmt.Sprintf(
		"Hi %s, your booking has been updated! Date: %s Time: %s Address: %s, %s, %s",
		b.ContactInfo.Phone, b.AppointmentDate, b.AppointmentTime,
		b.Address.Street, b.Address.City, b.Address.State)
}
