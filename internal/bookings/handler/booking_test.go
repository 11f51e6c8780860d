package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"cleanbook/internal/auth"
	"cleanbook/internal/bookings/service"
	apperrors "cleanbook/pkg/errors"
	"cleanbook/pkg/logger"
	"cleanbook/pkg/model"

	"github.com/julienschmidt/httprouter"
)

const testAdminCode = "secret-code"

type mockBookingService struct {
	createFn        func(ctx context.Context, b *model.Booking) (*model.Booking, error)
	getByIDFn       func(ctx context.Context, id string) (*model.Booking, error)
	getAllFn        func(ctx context.Context, limit int, offset int64) ([]*model.Booking, int64, error)
	updateFn        func(ctx context.Context, id string, u *model.BookingUpdate) (*model.Booking, error)
	assignCleanerFn func(ctx context.Context, bookingID, cleanerID, adminCode string) (*service.Assignment, error)
	deleteFn        func(ctx context.Context, id string) error
}

func (m *mockBookingService) Create(ctx context.Context, b *model.Booking) (*model.Booking, error) {
	return m.createFn(ctx, b)
}

func (m *mockBookingService) GetByID(ctx context.Context, id string) (*model.Booking, error) {
	return m.getByIDFn(ctx, id)
}

func (m *mockBookingService) GetAll(ctx context.Context, limit int, offset int64) ([]*model.Booking, int64, error) {
	return m.getAllFn(ctx, limit, offset)
}

func (m *mockBookingService) Update(ctx context.Context, id string, u *model.BookingUpdate) (*model.Booking, error) {
	return m.updateFn(ctx, id, u)
}

func (m *mockBookingService) AssignCleaner(ctx context.Context, bookingID, cleanerID, adminCode string) (*service.Assignment, error) {
	return m.assignCleanerFn(ctx, bookingID, cleanerID, adminCode)
}

func (m *mockBookingService) Delete(ctx context.Context, id string) error {
	return m.deleteFn(ctx, id)
}

func newTestRouter(svc service.BookingService) *httprouter.Router {
	h := NewBookingHandler(svc, auth.NewGuard(testAdminCode), logger.New(logger.Config{Level: "error", Service: "test"}))
	router := httprouter.New()
	h.RegisterRoutes(router)
	return router
}

func TestCreate_Returns201(t *testing.T) {
	svc := &mockBookingService{
		createFn: func(_ context.Context, b *model.Booking) (*model.Booking, error) {
			b.ID = "6543210987abcdef01234567"
			return b, nil
		},
	}
	router := newTestRouter(svc)

	body := `{"zipCode":"62704","contactInfo":{"email":"a@b.com","phone":"555-1111"},"totalPrice":120}`
	req := httptest.NewRequest(http.MethodPost, "/api/bookings", strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		Data model.Booking `json:"data"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Data.ID == "" {
		t.Error("expected booking id in response")
	}
}

func TestCreate_InvalidBody(t *testing.T) {
	router := newTestRouter(&mockBookingService{})

	req := httptest.NewRequest(http.MethodPost, "/api/bookings", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}
}

func TestGetByID_NotFound(t *testing.T) {
	svc := &mockBookingService{
		getByIDFn: func(_ context.Context, id string) (*model.Booking, error) {
			return nil, apperrors.NotFoundWithID("Booking", id)
		},
	}
	router := newTestRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/bookings/6543210987abcdef01234567", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", rec.Code)
	}
}

func TestAssignCleaner_ResponseShape(t *testing.T) {
	svc := &mockBookingService{
		assignCleanerFn: func(_ context.Context, bookingID, cleanerID, adminCode string) (*service.Assignment, error) {
			if adminCode != testAdminCode {
				t.Errorf("expected admin code forwarded, got %q", adminCode)
			}
			return &service.Assignment{Name: "Dana Smith", Phone: "555-9999"}, nil
		},
	}
	router := newTestRouter(svc)

	body := `{"cleanerId":"1111111111abcdef01234567","adminCode":"secret-code"}`
	req := httptest.NewRequest(http.MethodPost, "/api/bookings/6543210987abcdef01234567/assign-cleaner", strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp assignCleanerResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Message != "Cleaner assigned successfully." {
		t.Errorf("unexpected message: %q", resp.Message)
	}
	if resp.Cleaner == nil || resp.Cleaner.Name != "Dana Smith" || resp.Cleaner.Phone != "555-9999" {
		t.Errorf("unexpected cleaner: %+v", resp.Cleaner)
	}
}

func TestAssignCleaner_MissingCleanerID(t *testing.T) {
	router := newTestRouter(&mockBookingService{})

	body := `{"adminCode":"secret-code"}`
	req := httptest.NewRequest(http.MethodPost, "/api/bookings/6543210987abcdef01234567/assign-cleaner", strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}
}

func TestValidateAdmin(t *testing.T) {
	router := newTestRouter(&mockBookingService{})

	req := httptest.NewRequest(http.MethodPost, "/api/validate-admin", strings.NewReader(`{"adminCode":"secret-code"}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Errorf("expected 200 for valid code, got %d", rec.Code)
	}

	req = httptest.NewRequest(http.MethodPost, "/api/validate-admin", strings.NewReader(`{"adminCode":"wrong"}`))
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 for invalid code, got %d", rec.Code)
	}
}

func TestAdminRoutes_RequireHeader(t *testing.T) {
	svc := &mockBookingService{
		getAllFn: func(_ context.Context, limit int, offset int64) ([]*model.Booking, int64, error) {
			return []*model.Booking{}, 0, nil
		},
	}
	router := newTestRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/admin/bookings", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 without header, got %d", rec.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/admin/bookings", nil)
	req.Header.Set(AdminCodeHeader, testAdminCode)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Errorf("expected 200 with header, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestDelete_ReturnsMessage(t *testing.T) {
	svc := &mockBookingService{
		deleteFn: func(_ context.Context, _ string) error {
			return nil
		},
	}
	router := newTestRouter(svc)

	req := httptest.NewRequest(http.MethodDelete, "/api/admin/bookings/6543210987abcdef01234567", nil)
	req.Header.Set(AdminCodeHeader, testAdminCode)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Booking deleted successfully") {
		t.Errorf("unexpected body: %s", rec.Body.String())
	}
}
