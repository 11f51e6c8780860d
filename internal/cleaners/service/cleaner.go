package service

import (
	"context"
	"errors"
	"sync"

	cleanerserrors "cleanbook/internal/cleaners/errors"
	"cleanbook/internal/cleaners/repository"
	"cleanbook/internal/cleaners/validator"
	apperrors "cleanbook/pkg/errors"
	"cleanbook/pkg/logger"
	"cleanbook/pkg/model"
	"cleanbook/pkg/sanitizer"
)

// Notifier is the outbound notification surface; best-effort, never fails
// the mutation that triggered it.
type Notifier interface {
	CleanerWelcome(ctx context.Context, c *model.Cleaner)
}

type CleanerService interface {
	Create(ctx context.Context, cleaner *model.Cleaner) (*model.Cleaner, error)
	GetByID(ctx context.Context, id string) (*model.Cleaner, error)
	GetAll(ctx context.Context, limit int, offset int64) ([]*model.Cleaner, int64, error)
	Update(ctx context.Context, id string, update *model.CleanerUpdate) (*model.Cleaner, error)
	Delete(ctx context.Context, id string) error
}

type cleanerService struct {
	repo      repository.CleanerRepository
	validator *validator.CleanerValidator
	notifier  Notifier
	logger    *logger.Logger
}

func NewCleanerService(
	repo repository.CleanerRepository,
	cleanerValidator *validator.CleanerValidator,
	notifier Notifier,
	log *logger.Logger,
) CleanerService {
	return &cleanerService{
		repo:      repo,
		validator: cleanerValidator,
		notifier:  notifier,
		logger:    log,
	}
}

func (s *cleanerService) Create(ctx context.Context, cleaner *model.Cleaner) (*model.Cleaner, error) {
	sanitizeCleaner(cleaner)

	cleaner.ID = ""
	// The booking set is owned by the assignment flow; clients never
	// seed it.
	cleaner.CurrentBookings = []string{}

	if err := s.validator.Validate(cleaner); err != nil {
		return nil, validationError(err)
	}

	cleaner.Availability = model.NormalizeAvailability(cleaner.Availability)

	if err := s.repo.Create(ctx, cleaner); err != nil {
		s.logger.Error("Failed to create cleaner", "error", err)
		return nil, apperrors.Internal("Failed to create cleaner", err)
	}

	s.logger.Info("Cleaner created", "cleaner_id", cleaner.ID, "name", cleaner.Name)

	s.notifier.CleanerWelcome(ctx, cleaner)

	return cleaner, nil
}

func (s *cleanerService) GetByID(ctx context.Context, id string) (*model.Cleaner, error) {
	cleaner, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, translateCleanerError(err, id)
	}
	return cleaner, nil
}

func (s *cleanerService) GetAll(ctx context.Context, limit int, offset int64) ([]*model.Cleaner, int64, error) {
	var (
		wg       sync.WaitGroup
		cleaners []*model.Cleaner
		count    int64
		findErr  error
		countErr error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		cleaners, findErr = s.repo.FindAll(ctx, limit, offset)
	}()
	go func() {
		defer wg.Done()
		count, countErr = s.repo.Count(ctx)
	}()
	wg.Wait()

	if findErr != nil {
		s.logger.Error("Failed to list cleaners", "error", findErr)
		return nil, 0, apperrors.Internal("Failed to retrieve cleaners", findErr)
	}
	if countErr != nil {
		s.logger.Error("Failed to count cleaners", "error", countErr)
		return nil, 0, apperrors.Internal("Failed to retrieve cleaners", countErr)
	}

	if cleaners == nil {
		cleaners = []*model.Cleaner{}
	}
	return cleaners, count, nil
}

func (s *cleanerService) Update(ctx context.Context, id string, update *model.CleanerUpdate) (*model.Cleaner, error) {
	if err := s.validator.ValidateUpdate(update); err != nil {
		return nil, validationError(err)
	}

	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, translateCleanerError(err, id)
	}

	merged := *existing
	applyCleanerUpdate(&merged, update)
	sanitizeCleaner(&merged)

	if err := s.validator.Validate(&merged); err != nil {
		return nil, validationError(err)
	}

	merged.Availability = model.NormalizeAvailability(merged.Availability)

	if err := s.repo.Update(ctx, id, &merged); err != nil {
		return nil, translateCleanerError(err, id)
	}

	s.logger.Info("Cleaner updated", "cleaner_id", id)

	return &merged, nil
}

func (s *cleanerService) Delete(ctx context.Context, id string) error {
	cleaner, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return translateCleanerError(err, id)
	}

	if len(cleaner.CurrentBookings) > 0 {
		s.logger.Warn("Deleting cleaner with active bookings",
			"cleaner_id", id,
			"booking_count", len(cleaner.CurrentBookings),
		)
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return translateCleanerError(err, id)
	}

	s.logger.Info("Cleaner deleted", "cleaner_id", id)

	return nil
}

func sanitizeCleaner(c *model.Cleaner) {
	c.Name = sanitizer.NormalizeName(c.Name)
	c.NationalID = sanitizer.TrimAndNormalize(c.NationalID)
	c.Address.Street = sanitizer.TrimAndNormalize(c.Address.Street)
	c.Address.City = sanitizer.TrimAndNormalize(c.Address.City)
	c.Address.State = sanitizer.TrimAndNormalize(c.Address.State)
	c.Address.Zip = sanitizer.TrimAndNormalize(c.Address.Zip)
	c.ContactInfo.Email = sanitizer.NormalizeEmail(c.ContactInfo.Email)
	c.ContactInfo.Phone = sanitizer.NormalizePhone(c.ContactInfo.Phone)
	c.Availability = sanitizer.NormalizeStringSlice(c.Availability, sanitizer.TrimAndNormalize)
}

func applyCleanerUpdate(c *model.Cleaner, u *model.CleanerUpdate) {
	if u.Name != nil {
		c.Name = *u.Name
	}
	if u.NationalID != nil {
		c.NationalID = *u.NationalID
	}
	if u.Address != nil {
		c.Address = *u.Address
	}
	if u.ContactInfo != nil {
		c.ContactInfo = *u.ContactInfo
	}
	if u.Availability != nil {
		c.Availability = *u.Availability
	}
}

func validationError(err error) error {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		return apperrors.Validation("Invalid cleaner data", map[string]any{"errors": verrs})
	}
	return apperrors.Validation(err.Error(), nil)
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
