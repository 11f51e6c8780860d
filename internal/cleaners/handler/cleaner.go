package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"cleanbook/internal/auth"
	"cleanbook/internal/cleaners/service"
	"cleanbook/pkg/config"
	apperrors "cleanbook/pkg/errors"
	httpx "cleanbook/pkg/http"
	"cleanbook/pkg/logger"
	"cleanbook/pkg/model"

	"github.com/julienschmidt/httprouter"
)

const AdminCodeHeader = "Admin-Code"

type CleanerHandler struct {
	service service.CleanerService
	guard   *auth.Guard
	logger  *logger.Logger
}

func NewCleanerHandler(svc service.CleanerService, guard *auth.Guard, log *logger.Logger) *CleanerHandler {
	return &CleanerHandler{
		service: svc,
		guard:   guard,
		logger:  log,
	}
}

func (h *CleanerHandler) RegisterRoutes(router *httprouter.Router) {
	router.GET("/api/cleaners", h.List)
	router.GET("/api/cleaners/:id", h.GetByID)

	router.POST("/api/cleaners", h.adminOnly(h.Create))
	router.PUT("/api/cleaners/:id", h.adminOnly(h.Update))
	router.DELETE("/api/cleaners/:id", h.adminOnly(h.Delete))
}

func (h *CleanerHandler) adminOnly(next httprouter.Handle) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		if err := h.guard.Authorize(r.Header.Get(AdminCodeHeader)); err != nil {
			httpx.WriteError(w, err)
			return
		}
		next(w, r, ps)
	}
}

func (h *CleanerHandler) Create(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var cleaner model.Cleaner
	if err := json.NewDecoder(r.Body).Decode(&cleaner); err != nil {
		httpx.WriteError(w, apperrors.InvalidInput("Invalid request body"))
		return
	}

	created, err := h.service.Create(r.Context(), &cleaner)
	if err != nil {
		httpx.WriteError(w, err)
		return
	}

	httpx.WriteCreated(w, created)
}

func (h *CleanerHandler) GetByID(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	cleaner, err := h.service.GetByID(r.Context(), ps.ByName("id"))
	if err != nil {
		httpx.WriteError(w, err)
		return
	}

	httpx.WriteSuccess(w, cleaner)
}

func (h *CleanerHandler) List(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	limit, offset := paginationParams(r)

	cleaners, count, err := h.service.GetAll(r.Context(), limit, int64(offset))
	if err != nil {
		httpx.WriteError(w, err)
		return
	}

	httpx.WritePaginated(w, cleaners, count, limit, offset)
}

func (h *CleanerHandler) Update(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	var update model.CleanerUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		httpx.WriteError(w, apperrors.InvalidInput("Invalid request body"))
		return
	}

	cleaner, err := h.service.Update(r.Context(), ps.ByName("id"), &update)
	if err != nil {
		httpx.WriteError(w, err)
		return
	}

	httpx.WriteSuccess(w, cleaner)
}

func (h *CleanerHandler) Delete(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	if err := h.service.Delete(r.Context(), ps.ByName("id")); err != nil {
		httpx.WriteError(w, err)
		return
	}

	httpx.WriteMessage(w, http.StatusOK, "Cleaner deleted successfully")
}

func paginationParams(r *http.Request) (int, int) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))
	limit = config.NormalizePaginationLimit(limit)
	offset = int(config.NormalizeOffset(int64(offset)))
	return limit, offset
}
