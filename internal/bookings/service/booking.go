package service

import (
	"context"
	"errors"
	"sync"

	"cleanbook/internal/auth"
	bookingserrors "cleanbook/internal/bookings/errors"
	"cleanbook/internal/bookings/repository"
	"cleanbook/internal/bookings/validator"
	cleanerserrors "cleanbook/internal/cleaners/errors"
	apperrors "cleanbook/pkg/errors"
	"cleanbook/pkg/events"
	"cleanbook/pkg/logger"
	"cleanbook/pkg/model"
	"cleanbook/pkg/sanitizer"

	"go.mongodb.org/mongo-driver/mongo"
)

// CleanerDirectory is the slice of the cleaner repository the booking
// service needs for assignment and booking-set maintenance.
type CleanerDirectory interface {
	FindByID(ctx context.Context, id string) (*model.Cleaner, error)
	AddBooking(ctx context.Context, cleanerID, bookingID string) error
	RemoveBooking(ctx context.Context, cleanerID, bookingID string) error
}

// Notifier is the outbound notification surface; all calls are best-effort
// and never fail the mutation that triggered them.
type Notifier interface {
	BookingCreated(ctx context.Context, b *model.Booking)
	BookingUpdated(ctx context.Context, previousStatus string, b *model.Booking)
	CleanerAssigned(ctx context.Context, b *model.Booking, c *model.Cleaner)
}

// Assignment is the cleaner summary returned by AssignCleaner.
type Assignment struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

type BookingService interface {
	Create(ctx context.Context, booking *model.Booking) (*model.Booking, error)
	GetByID(ctx context.Context, id string) (*model.Booking, error)
	GetAll(ctx context.Context, limit int, offset int64) ([]*model.Booking, int64, error)
	Update(ctx context.Context, id string, update *model.BookingUpdate) (*model.Booking, error)
	AssignCleaner(ctx context.Context, bookingID, cleanerID, adminCode string) (*Assignment, error)
	Delete(ctx context.Context, id string) error
}

type bookingService struct {
	repo      repository.BookingRepository
	cleaners  CleanerDirectory
	validator *validator.BookingValidator
	guard     *auth.Guard
	notifier  Notifier
	publisher *events.Publisher
	logger    *logger.Logger
}

func NewBookingService(
	repo repository.BookingRepository,
	cleaners CleanerDirectory,
	bookingValidator *validator.BookingValidator,
	guard *auth.Guard,
	notifier Notifier,
	publisher *events.Publisher,
	log *logger.Logger,
) BookingService {
	return &bookingService{
		repo:      repo,
		cleaners:  cleaners,
		validator: bookingValidator,
		guard:     guard,
		notifier:  notifier,
		publisher: publisher,
		logger:    log,
	}
}

func (s *bookingService) Create(ctx context.Context, booking *model.Booking) (*model.Booking, error) {
	sanitizeBooking(booking)

	if booking.BookingStatus == "" {
		booking.BookingStatus = model.StatusScheduled
	}
	// Cleaner assignment has its own endpoint; a fresh booking never
	// carries one.
	booking.ID = ""
	booking.Cleaner = ""
	booking.AssignedCleaner = ""
	booking.AssignedCleanerNumber = ""

	if err := s.validator.Validate(booking); err != nil {
		return nil, validationError(err)
	}

	if err := s.repo.Create(ctx, booking); err != nil {
		s.logger.Error("Failed to create booking", "error", err)
		return nil, apperrors.Internal("Failed to process booking", err)
	}

	s.logger.Info("Booking created", "booking_id", booking.ID, "email", booking.ContactInfo.Email)

	s.notifier.BookingCreated(ctx, booking)
	s.publisher.Publish(ctx, events.TypeBookingCreated, events.BookingEvent{
		BookingID:     booking.ID,
		BookingStatus: booking.BookingStatus,
	})

	return booking, nil
}

func (s *bookingService) GetByID(ctx context.Context, id string) (*model.Booking, error) {
	booking, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, translateBookingError(err, id)
	}
	return booking, nil
}

func (s *bookingService) GetAll(ctx context.Context, limit int, offset int64) ([]*model.Booking, int64, error) {
	var (
		wg       sync.WaitGroup
		bookings []*model.Booking
		count    int64
		findErr  error
		countErr error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		bookings, findErr = s.repo.FindAll(ctx, limit, offset)
	}()
	go func() {
		defer wg.Done()
		count, countErr = s.repo.Count(ctx)
	}()
	wg.Wait()

	if findErr != nil {
		s.logger.Error("Failed to list bookings", "error", findErr)
		return nil, 0, apperrors.Internal("Failed to retrieve bookings", findErr)
	}
	if countErr != nil {
		s.logger.Error("Failed to count bookings", "error", countErr)
		return nil, 0, apperrors.Internal("Failed to retrieve bookings", countErr)
	}

	if bookings == nil {
		bookings = []*model.Booking{}
	}
	return bookings, count, nil
}

func (s *bookingService) Update(ctx context.Context, id string, update *model.BookingUpdate) (*model.Booking, error) {
	if err := s.validator.ValidateUpdate(update); err != nil {
		return nil, validationError(err)
	}

	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, translateBookingError(err, id)
	}

	previousStatus := existing.BookingStatus
	previousCleaner := existing.Cleaner

	merged := *existing
	applyBookingUpdate(&merged, update)
	sanitizeBooking(&merged)

	if err := s.validator.Validate(&merged); err != nil {
		return nil, validationError(err)
	}

	// Work out which cleaner booking-set entries this update invalidates.
	// A booking leaves a cleaner's active set when the cleaner reference
	// is cleared or when the booking reaches a terminal status.
	removeFrom := ""
	if previousCleaner != "" {
		terminal := merged.BookingStatus == model.StatusCancelled || merged.BookingStatus == model.StatusCompleted
		if merged.Cleaner == "" || (terminal && previousStatus != merged.BookingStatus) {
			removeFrom = previousCleaner
		}
	}

	if removeFrom != "" {
		err = s.repo.ExecuteTransaction(ctx, func(sessCtx mongo.SessionContext) error {
			if err := s.repo.Update(sessCtx, id, &merged); err != nil {
				return err
			}
			if err := s.cleaners.RemoveBooking(sessCtx, removeFrom, id); err != nil {
				// A deleted cleaner leaves nothing to prune.
				if errors.Is(err, cleanerserrors.ErrNotFound) {
					return nil
				}
				return err
			}
			return nil
		})
	} else {
		err = s.repo.Update(ctx, id, &merged)
	}
	if err != nil {
		return nil, translateBookingError(err, id)
	}

	s.logger.Info("Booking updated",
		"booking_id", id,
		"previous_status", previousStatus,
		"status", merged.BookingStatus,
	)

	s.notifier.BookingUpdated(ctx, previousStatus, &merged)
	s.publisher.Publish(ctx, events.TypeBookingUpdated, events.BookingEvent{
		BookingID:      id,
		BookingStatus:  merged.BookingStatus,
		PreviousStatus: previousStatus,
	})

	return &merged, nil
}

func (s *bookingService) AssignCleaner(ctx context.Context, bookingID, cleanerID, adminCode string) (*Assignment, error) {
	if err := s.guard.AuthorizeMutation(adminCode); err != nil {
		return nil, err
	}

	var (
		booking *model.Booking
		cleaner *model.Cleaner
	)

	err := s.repo.ExecuteTransaction(ctx, func(sessCtx mongo.SessionContext) error {
		var err error

		cleaner, err = s.cleaners.FindByID(sessCtx, cleanerID)
		if err != nil {
			return translateCleanerError(err, cleanerID)
		}

		booking, err = s.repo.FindByID(sessCtx, bookingID)
		if err != nil {
			return translateBookingError(err, bookingID)
		}

		if booking.Cleaner != "" && booking.Cleaner != cleanerID {
			if err := s.cleaners.RemoveBooking(sessCtx, booking.Cleaner, bookingID); err != nil {
				if !errors.Is(err, cleanerserrors.ErrNotFound) {
					return err
				}
			}
		}

		if err := s.cleaners.AddBooking(sessCtx, cleanerID, bookingID); err != nil {
			return translateCleanerError(err, cleanerID)
		}

		return s.repo.SetCleaner(sessCtx, bookingID, cleanerID, cleaner.Name, cleaner.ContactInfo.Phone)
	})
	if err != nil {
		if apperrors.IsAppError(err) {
			return nil, err
		}
		s.logger.Error("Failed to assign cleaner", "booking_id", bookingID, "cleaner_id", cleanerID, "error", err)
		return nil, apperrors.Internal("Failed to assign cleaner", err)
	}

	booking.Cleaner = cleanerID
	booking.AssignedCleaner = cleaner.Name
	booking.AssignedCleanerNumber = cleaner.ContactInfo.Phone

	s.logger.Info("Cleaner assigned", "booking_id", bookingID, "cleaner_id", cleanerID)

	s.notifier.CleanerAssigned(ctx, booking, cleaner)
	s.publisher.Publish(ctx, events.TypeCleanerAssigned, events.BookingEvent{
		BookingID:     bookingID,
		BookingStatus: booking.BookingStatus,
		CleanerID:     cleanerID,
	})

	return &Assignment{Name: cleaner.Name, Phone: cleaner.ContactInfo.Phone}, nil
}

func (s *bookingService) Delete(ctx context.Context, id string) error {
	booking, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return translateBookingError(err, id)
	}

	if booking.Cleaner != "" {
		err = s.repo.ExecuteTransaction(ctx, func(sessCtx mongo.SessionContext) error {
			if err := s.cleaners.RemoveBooking(sessCtx, booking.Cleaner, id); err != nil {
				if !errors.Is(err, cleanerserrors.ErrNotFound) {
					return err
				}
			}
			return s.repo.Delete(sessCtx, id)
		})
	} else {
		err = s.repo.Delete(ctx, id)
	}
	if err != nil {
		return translateBookingError(err, id)
	}

	s.logger.Info("Booking deleted", "booking_id", id)

	s.publisher.Publish(ctx, events.TypeBookingDeleted, events.BookingEvent{
		BookingID:     id,
		BookingStatus: booking.BookingStatus,
	})

	return nil
}

func sanitizeBooking(b *model.Booking) {
	b.ZipCode = sanitizer.TrimAndNormalize(b.ZipCode)
	b.Bedrooms = sanitizer.TrimAndNormalize(b.Bedrooms)
	b.LivingRooms = sanitizer.TrimAndNormalize(b.LivingRooms)
	b.Bathrooms = sanitizer.TrimAndNormalize(b.Bathrooms)
	b.CleaningType = sanitizer.TrimAndNormalize(b.CleaningType)
	b.HomeCondition = sanitizer.TrimAndNormalize(b.HomeCondition)
	b.Pets = sanitizer.TrimAndNormalize(b.Pets)
	b.Frequency = sanitizer.TrimAndNormalize(b.Frequency)
	b.AddOnServices = sanitizer.NormalizeServices(b.AddOnServices)
	b.AppointmentDate = sanitizer.TrimAndNormalize(b.AppointmentDate)
	b.AppointmentTime = sanitizer.TrimAndNormalize(b.AppointmentTime)
	b.Address.Street = sanitizer.TrimAndNormalize(b.Address.Street)
	b.Address.City = sanitizer.TrimAndNormalize(b.Address.City)
	b.Address.State = sanitizer.TrimAndNormalize(b.Address.State)
	b.Address.Zip = sanitizer.TrimAndNormalize(b.Address.Zip)
	b.ContactInfo.Email = sanitizer.NormalizeEmail(b.ContactInfo.Email)
	b.ContactInfo.Phone = sanitizer.NormalizePhone(b.ContactInfo.Phone)
	b.PaymentType = sanitizer.TrimAndNormalize(b.PaymentType)
}

func applyBookingUpdate(b *model.Booking, u *model.BookingUpdate) {
	if u.ZipCode != nil {
		b.ZipCode = *u.ZipCode
	}
	if u.SquareFeet != nil {
		b.SquareFeet = *u.SquareFeet
	}
	if u.Bedrooms != nil {
		b.Bedrooms = *u.Bedrooms
	}
	if u.LivingRooms != nil {
		b.LivingRooms = *u.LivingRooms
	}
	if u.Bathrooms != nil {
		b.Bathrooms = *u.Bathrooms
	}
	if u.CleaningType != nil {
		b.CleaningType = *u.CleaningType
	}
	if u.HomeCondition != nil {
		b.HomeCondition = *u.HomeCondition
	}
	if u.Pets != nil {
		b.Pets = *u.Pets
	}
	if u.Frequency != nil {
		b.Frequency = *u.Frequency
	}
	if u.AddOnServices != nil {
		b.AddOnServices = *u.AddOnServices
	}
	if u.AppointmentDate != nil {
		b.AppointmentDate = *u.AppointmentDate
	}
	if u.AppointmentTime != nil {
		b.AppointmentTime = *u.AppointmentTime
	}
	if u.Address != nil {
		b.Address = *u.Address
	}
	if u.ContactInfo != nil {
		b.ContactInfo = *u.ContactInfo
	}
	if u.PaymentType != nil {
		b.PaymentType = *u.PaymentType
	}
	if u.TotalPrice != nil {
		b.TotalPrice = *u.TotalPrice
	}
	if u.BookingStatus != nil {
		b.BookingStatus = *u.BookingStatus
	}
	if u.Cleaner != nil {
		b.Cleaner = *u.Cleaner
		if b.Cleaner == "" {
			b.AssignedCleaner = ""
			b.AssignedCleanerNumber = ""
		}
	}
}

func validationError(err error) error {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		return apperrors.Validation("Invalid booking data", map[string]any{"errors": verrs})
	}
	return apperrors.Validation(err.Error(), nil)
}

func translateBookingError(err error, id string) error {
	switch {
	case errors.Is(err, bookingserrors.ErrNotFound):
		return apperrors.NotFoundWithID("Booking", id)
	case errors.Is(err, bookingserrors.ErrInvalidID):
		return apperrors.InvalidInput("Invalid booking ID format")
	case apperrors.IsAppError(err):
		return err
	}
	return apperrors.Internal("Failed to process booking", err)
}

func translateCleanerError(err error, id string) error {
	switch {
	case errors.Is(err, cleanerserrors.ErrNotFound):
		return apperrors.NotFoundWithID("Cleaner", id)
	case errors.Is(err, cleanerserrors.ErrInvalidID):
		return apperrors.InvalidInput("Invalid cleaner ID format")
	case apperrors.IsAppError(err):
		return err
	}
	return apperrors.Internal("Failed to process cleaner", err)
}
