package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/groomshop/grooming-scheduler/internal/apperr"
	domain "github.com/groomshop/grooming-scheduler/internal/domain/appointment"
	"github.com/groomshop/grooming-scheduler/internal/httpresp"
	"github.com/groomshop/grooming-scheduler/internal/middleware"
	ucAppointment "github.com/groomshop/grooming-scheduler/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	createUC      *ucAppointment.Create
	getUC         *ucAppointment.Get
	getDetailUC   *ucAppointment.GetDetail
	listUC        *ucAppointment.List
	updateUC      *ucAppointment.Update
	deleteUC      *ucAppointment.Delete
	setStatusUC   *ucAppointment.SetStatus
	permissionsUC *ucAppointment.Permissions
}

func NewAppointmentHandler(
	createUC *ucAppointment.Create,
	getUC *ucAppointment.Get,
	getDetailUC *ucAppointment.GetDetail,
	listUC *ucAppointment.List,
	updateUC *ucAppointment.Update,
	deleteUC *ucAppointment.Delete,
	setStatusUC *ucAppointment.SetStatus,
	permissionsUC *ucAppointment.Permissions,
) *AppointmentHandler {
	return &AppointmentHandler{
		createUC:      createUC,
		getUC:         getUC,
		getDetailUC:   getDetailUC,
		listUC:        listUC,
		updateUC:      updateUC,
		deleteUC:      deleteUC,
		setStatusUC:   setStatusUC,
		permissionsUC: permissionsUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateAppointmentRequest struct {
	ServiceTypeID uint      `json:"service_type_id" binding:"required"`
	ScheduledAt   time.Time `json:"scheduled_at" binding:"required"`
}

type UpdateAppointmentRequest struct {
	ServiceTypeID uint      `json:"service_type_id" binding:"required"`
	ScheduledAt   time.Time `json:"scheduled_at" binding:"required"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// ======================================================
// HELPERS
// ======================================================

func currentUserID(c *gin.Context) uint {
	return c.MustGet(middleware.ContextUserID).(uint)
}

func appointmentID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		apperr.BadRequest(c, "invalid_id", "Invalid appointment id.")
		return 0, false
	}
	return uint(id), true
}

// ======================================================
// CREATE
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	userID := currentUserID(c)

	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	summary, err := h.createUC.Execute(c.Request.Context(), ucAppointment.CreateInput{
		UserID:        userID,
		ServiceTypeID: req.ServiceTypeID,
		ScheduledAt:   req.ScheduledAt,
	})
	if err != nil {
		apperr.WriteHTTP(c, err)
		return
	}

	httpresp.Created(c, summary)
}

// ======================================================
// READ
// ======================================================

func (h *AppointmentHandler) Get(c *gin.Context) {
	id, ok := appointmentID(c)
	if !ok {
		return
	}

	summary, err := h.getUC.Execute(c.Request.Context(), id)
	if err != nil {
		apperr.WriteHTTP(c, err)
		return
	}

	httpresp.OK(c, summary)
}

func (h *AppointmentHandler) GetDetails(c *gin.Context) {
	id, ok := appointmentID(c)
	if !ok {
		return
	}

	det, err := h.getDetailUC.Execute(c.Request.Context(), id)
	if err != nil {
		apperr.WriteHTTP(c, err)
		return
	}

	httpresp.OK(c, det)
}

// List is intentionally not scoped to the caller: it returns the whole
// book, optionally filtered by calendar date and customer name.
func (h *AppointmentHandler) List(c *gin.Context) {
	var filter domain.ListFilter

	if dateStr := c.Query("date"); dateStr != "" {
		date, err := time.Parse("2006-01-02", dateStr)
		if err != nil {
			apperr.BadRequest(c, "invalid_date", "Date must be YYYY-MM-DD.")
			return
		}
		filter.Date = &date
	}

	filter.NameSubstring = c.Query("customer_name")

	summaries, err := h.listUC.Execute(c.Request.Context(), filter)
	if err != nil {
		apperr.WriteHTTP(c, err)
		return
	}

	httpresp.List(c, summaries)
}

// ======================================================
// UPDATE
// ======================================================

func (h *AppointmentHandler) Update(c *gin.Context) {
	userID := currentUserID(c)

	id, ok := appointmentID(c)
	if !ok {
		return
	}

	var req UpdateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	summary, err := h.updateUC.Execute(c.Request.Context(), ucAppointment.UpdateInput{
		ID:            id,
		UserID:        userID,
		ServiceTypeID: req.ServiceTypeID,
		ScheduledAt:   req.ScheduledAt,
	})
	if err != nil {
		apperr.WriteHTTP(c, err)
		return
	}

	httpresp.OK(c, summary)
}

// ======================================================
// DELETE
// ======================================================

func (h *AppointmentHandler) Delete(c *gin.Context) {
	userID := currentUserID(c)

	id, ok := appointmentID(c)
	if !ok {
		return
	}

	err := h.deleteUC.Execute(c.Request.Context(), ucAppointment.DeleteInput{
		ID:     id,
		UserID: userID,
	})
	if err != nil {
		apperr.WriteHTTP(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// ======================================================
// STATUS
// ======================================================

func (h *AppointmentHandler) SetStatus(c *gin.Context) {
	userID := currentUserID(c)

	id, ok := appointmentID(c)
	if !ok {
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	summary, err := h.setStatusUC.Execute(c.Request.Context(), ucAppointment.SetStatusInput{
		ID:     id,
		UserID: userID,
		Status: req.Status,
	})
	if err != nil {
		apperr.WriteHTTP(c, err)
		return
	}

	httpresp.OK(c, summary)
}

// ======================================================
// PERMISSIONS
// ======================================================

func (h *AppointmentHandler) Permissions(c *gin.Context) {
	userID := currentUserID(c)

	id, ok := appointmentID(c)
	if !ok {
		return
	}

	flags, err := h.permissionsUC.Execute(c.Request.Context(), id, userID)
	if err != nil {
		apperr.WriteHTTP(c, err)
		return
	}

	httpresp.OK(c, flags)
}
