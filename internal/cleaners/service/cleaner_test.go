package service

import (
	"context"
	"errors"
	"net/http"
	"reflect"
	"testing"

	cleanerserrors "cleanbook/internal/cleaners/errors"
	"cleanbook/internal/cleaners/validator"
	mongotx "cleanbook/pkg/db/mongo"
	apperrors "cleanbook/pkg/errors"
	"cleanbook/pkg/logger"
	"cleanbook/pkg/model"

	"go.mongodb.org/mongo-driver/mongo"
)

const cleanerID = "1111111111abcdef01234567"

type mockCleanerRepo struct {
	createFn        func(ctx context.Context, c *model.Cleaner) error
	findByIDFn      func(ctx context.Context, id string) (*model.Cleaner, error)
	findAllFn       func(ctx context.Context, limit int, offset int64) ([]*model.Cleaner, error)
	countFn         func(ctx context.Context) (int64, error)
	updateFn        func(ctx context.Context, id string, c *model.Cleaner) error
	addBookingFn    func(ctx context.Context, cleanerID, bookingID string) error
	removeBookingFn func(ctx context.Context, cleanerID, bookingID string) error
	deleteFn        func(ctx context.Context, id string) error
}

func (m *mockCleanerRepo) Create(ctx context.Context, c *model.Cleaner) error {
	return m.createFn(ctx, c)
}

func (m *mockCleanerRepo) FindByID(ctx context.Context, id string) (*model.Cleaner, error) {
	return m.findByIDFn(ctx, id)
}

func (m *mockCleanerRepo) FindAll(ctx context.Context, limit int, offset int64) ([]*model.Cleaner, error) {
	return m.findAllFn(ctx, limit, offset)
}

func (m *mockCleanerRepo) Count(ctx context.Context) (int64, error) {
	return m.countFn(ctx)
}

func (m *mockCleanerRepo) Update(ctx context.Context, id string, c *model.Cleaner) error {
	return m.updateFn(ctx, id, c)
}

func (m *mockCleanerRepo) AddBooking(ctx context.Context, cleanerID, bookingID string) error {
	return m.addBookingFn(ctx, cleanerID, bookingID)
}

func (m *mockCleanerRepo) RemoveBooking(ctx context.Context, cleanerID, bookingID string) error {
	return m.removeBookingFn(ctx, cleanerID, bookingID)
}

func (m *mockCleanerRepo) Delete(ctx context.Context, id string) error {
	return m.deleteFn(ctx, id)
}

func (m *mockCleanerRepo) ExecuteTransaction(ctx context.Context, fn mongotx.TransactionFunc) error {
	return fn(mongo.NewSessionContext(ctx, nil))
}

type mockNotifier struct {
	welcomed []string
}

func (m *mockNotifier) CleanerWelcome(_ context.Context, c *model.Cleaner) {
	m.welcomed = append(m.welcomed, c.ContactInfo.Email)
}

func newTestService(repo *mockCleanerRepo, notifier *mockNotifier) CleanerService {
	log := logger.New(logger.Config{Level: "error", Service: "test"})
	return NewCleanerService(repo, validator.NewCleanerValidator(log), notifier, log)
}

func testCleaner() *model.Cleaner {
	return &model.Cleaner{
		Name:         "Dana Smith",
		ContactInfo:  model.ContactInfo{Email: "Dana@Example.com", Phone: "555-9999"},
		Availability: []string{model.AvailabilityMorning},
	}
}

func TestCreate_NormalizesAndWelcomes(t *testing.T) {
	repo := &mockCleanerRepo{
		createFn: func(_ context.Context, c *model.Cleaner) error {
			c.ID = cleanerID
			return nil
		},
	}
	notifier := &mockNotifier{}
	svc := newTestService(repo, notifier)

	c := testCleaner()
	c.Availability = []string{model.AvailabilityMorning, model.AvailabilityAfternoon, model.AvailabilityEvening}
	created, err := svc.Create(context.Background(), c)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.ID != cleanerID {
		t.Errorf("expected id %q, got %q", cleanerID, created.ID)
	}
	if created.ContactInfo.Email != "dana@example.com" {
		t.Errorf("expected normalized email, got %q", created.ContactInfo.Email)
	}
	want := []string{
		model.AvailabilityFullTime,
		model.AvailabilityMorning,
		model.AvailabilityAfternoon,
		model.AvailabilityEvening,
	}
	if !reflect.DeepEqual(created.Availability, want) {
		t.Errorf("expected availability %v, got %v", want, created.Availability)
	}
	if len(created.CurrentBookings) != 0 {
		t.Errorf("expected empty booking set, got %v", created.CurrentBookings)
	}
	if !reflect.DeepEqual(notifier.welcomed, []string{"dana@example.com"}) {
		t.Errorf("expected welcome email, got %v", notifier.welcomed)
	}
}

func TestCreate_FullTimeAliasExpands(t *testing.T) {
	repo := &mockCleanerRepo{
		createFn: func(_ context.Context, c *model.Cleaner) error {
			c.ID = cleanerID
			return nil
		},
	}
	svc := newTestService(repo, &mockNotifier{})

	c := testCleaner()
	c.Availability = []string{model.AvailabilityFullTime}
	created, err := svc.Create(context.Background(), c)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{
		model.AvailabilityFullTime,
		model.AvailabilityMorning,
		model.AvailabilityAfternoon,
		model.AvailabilityEvening,
	}
	if !reflect.DeepEqual(created.Availability, want) {
		t.Errorf("expected availability %v, got %v", want, created.Availability)
	}
}

func TestCreate_UnknownAvailabilityRejected(t *testing.T) {
	svc := newTestService(&mockCleanerRepo{}, &mockNotifier{})

	c := testCleaner()
	c.Availability = []string{"Nights"}
	_, err := svc.Create(context.Background(), c)
	if err == nil {
		t.Fatal("expected validation error")
	}
	if apperrors.AsAppError(err).HTTPStatus != http.StatusUnprocessableEntity {
		t.Errorf("expected 422, got %d", apperrors.AsAppError(err).HTTPStatus)
	}
}

func TestCreate_PersistenceFailureSkipsWelcome(t *testing.T) {
	repo := &mockCleanerRepo{
		createFn: func(_ context.Context, _ *model.Cleaner) error {
			return errors.New("write failed")
		},
	}
	notifier := &mockNotifier{}
	svc := newTestService(repo, notifier)

	if _, err := svc.Create(context.Background(), testCleaner()); err == nil {
		t.Fatal("expected error")
	}
	if len(notifier.welcomed) != 0 {
		t.Errorf("expected no welcome email, got %v", notifier.welcomed)
	}
}

func TestUpdate_DeselectingSlotDropsFullTime(t *testing.T) {
	existing := testCleaner()
	existing.ID = cleanerID
	existing.Availability = []string{
		model.AvailabilityFullTime,
		model.AvailabilityMorning,
		model.AvailabilityAfternoon,
		model.AvailabilityEvening,
	}

	var persisted *model.Cleaner
	repo := &mockCleanerRepo{
		findByIDFn: func(_ context.Context, _ string) (*model.Cleaner, error) {
			c := *existing
			return &c, nil
		},
		updateFn: func(_ context.Context, _ string, c *model.Cleaner) error {
			persisted = c
			return nil
		},
	}
	svc := newTestService(repo, &mockNotifier{})

	availability := []string{model.AvailabilityMorning, model.AvailabilityAfternoon}
	updated, err := svc.Update(context.Background(), cleanerID, &model.CleanerUpdate{Availability: &availability})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{model.AvailabilityMorning, model.AvailabilityAfternoon}
	if !reflect.DeepEqual(updated.Availability, want) {
		t.Errorf("expected availability %v, got %v", want, updated.Availability)
	}
	if persisted == nil || !reflect.DeepEqual(persisted.Availability, want) {
		t.Error("expected normalized availability persisted")
	}
}

func TestGetByID_NotFound(t *testing.T) {
	repo := &mockCleanerRepo{
		findByIDFn: func(_ context.Context, _ string) (*model.Cleaner, error) {
			return nil, cleanerserrors.ErrNotFound
		},
	}
	svc := newTestService(repo, &mockNotifier{})

	_, err := svc.GetByID(context.Background(), cleanerID)
	if err == nil {
		t.Fatal("expected error")
	}
	if apperrors.AsAppError(err).HTTPStatus != http.StatusNotFound {
		t.Errorf("expected 404, got %d", apperrors.AsAppError(err).HTTPStatus)
	}
}

func TestDelete_AllowsActiveBookings(t *testing.T) {
	deleted := false
	repo := &mockCleanerRepo{
		findByIDFn: func(_ context.Context, _ string) (*model.Cleaner, error) {
			c := testCleaner()
			c.ID = cleanerID
			c.CurrentBookings = []string{"6543210987abcdef01234567"}
			return c, nil
		},
		deleteFn: func(_ context.Context, _ string) error {
			deleted = true
			return nil
		},
	}
	svc := newTestService(repo, &mockNotifier{})

	if err := svc.Delete(context.Background(), cleanerID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !deleted {
		t.Error("expected cleaner deleted")
	}
}
