package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"cleanbook/internal/auth"
	"cleanbook/internal/bookings/service"
	"cleanbook/pkg/config"
	apperrors "cleanbook/pkg/errors"
	httpx "cleanbook/pkg/http"
	"cleanbook/pkg/logger"
	"cleanbook/pkg/model"

	"github.com/julienschmidt/httprouter"
)

// AdminCodeHeader carries the shared secret on admin resource routes.
const AdminCodeHeader = "Admin-Code"

type BookingHandler struct {
	service service.BookingService
	guard   *auth.Guard
	logger  *logger.Logger
}

func NewBookingHandler(svc service.BookingService, guard *auth.Guard, log *logger.Logger) *BookingHandler {
	return &BookingHandler{
		service: svc,
		guard:   guard,
		logger:  log,
	}
}

func (h *BookingHandler) RegisterRoutes(router *httprouter.Router) {
	router.POST("/api/bookings", h.Create)
	router.GET("/api/bookings/:id", h.GetByID)
	router.PUT("/api/bookings/:id", h.Update)
	router.POST("/api/bookings/:id/assign-cleaner", h.AssignCleaner)

	router.POST("/api/validate-admin", h.ValidateAdmin)

	router.GET("/api/admin/bookings", h.adminOnly(h.List))
	router.DELETE("/api/admin/bookings/:id", h.adminOnly(h.Delete))
}

// adminOnly rejects requests whose Admin-Code header does not match the
// configured secret.
func (h *BookingHandler) adminOnly(next httprouter.Handle) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		if err := h.guard.Authorize(r.Header.Get(AdminCodeHeader)); err != nil {
			httpx.WriteError(w, err)
			return
		}
		next(w, r, ps)
	}
}

func (h *BookingHandler) Create(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var booking model.Booking
	if err := json.NewDecoder(r.Body).Decode(&booking); err != nil {
		httpx.WriteError(w, apperrors.InvalidInput("Invalid request body"))
		return
	}

	created, err := h.service.Create(r.Context(), &booking)
	if err != nil {
		httpx.WriteError(w, err)
		return
	}

	httpx.WriteCreated(w, created)
}

func (h *BookingHandler) GetByID(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	booking, err := h.service.GetByID(r.Context(), ps.ByName("id"))
	if err != nil {
		httpx.WriteError(w, err)
		return
	}

	httpx.WriteSuccess(w, booking)
}

func (h *BookingHandler) List(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	limit, offset := paginationParams(r)

	bookings, count, err := h.service.GetAll(r.Context(), limit, int64(offset))
	if err != nil {
		httpx.WriteError(w, err)
		return
	}

	httpx.WritePaginated(w, bookings, count, limit, offset)
}

func (h *BookingHandler) Update(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	var update model.BookingUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		httpx.WriteError(w, apperrors.InvalidInput("Invalid request body"))
		return
	}

	booking, err := h.service.Update(r.Context(), ps.ByName("id"), &update)
	if err != nil {
		httpx.WriteError(w, err)
		return
	}

	httpx.WriteSuccess(w, booking)
}

type assignCleanerRequest struct {
	CleanerID string `json:"cleanerId"`
	AdminCode string `json:"adminCode"`
}

type assignCleanerResponse struct {
	Message string              `json:"message"`
	Cleaner *service.Assignment `json:"cleaner"`
}

func (h *BookingHandler) AssignCleaner(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	var req assignCleanerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, apperrors.InvalidInput("Invalid request body"))
		return
	}
	if req.CleanerID == "" {
		httpx.WriteError(w, apperrors.InvalidInput("cleanerId is required"))
		return
	}

	assignment, err := h.service.AssignCleaner(r.Context(), ps.ByName("id"), req.CleanerID, req.AdminCode)
	if err != nil {
		httpx.WriteError(w, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, assignCleanerResponse{
		Message: "Cleaner assigned successfully.",
		Cleaner: assignment,
	})
}

func (h *BookingHandler) Delete(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	if err := h.service.Delete(r.Context(), ps.ByName("id")); err != nil {
		httpx.WriteError(w, err)
		return
	}

	httpx.WriteMessage(w, http.StatusOK, "Booking deleted successfully")
}

type validateAdminRequest struct {
	AdminCode string `json:"adminCode"`
}

func (h *BookingHandler) ValidateAdmin(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req validateAdminRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, apperrors.InvalidInput("Invalid request body"))
		return
	}

	if err := h.guard.Authorize(req.AdminCode); err != nil {
		httpx.WriteError(w, err)
		return
	}

	httpx.WriteMessage(w, http.StatusOK, "Admin code validated successfully")
}

func paginationParams(r *http.Request) (int, int) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))
	limit = config.NormalizePaginationLimit(limit)
	offset = int(config.NormalizeOffset(int64(offset)))
	return limit, offset
}
