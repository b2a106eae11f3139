package http

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"rentnest/internal/http/middleware"
	"rentnest/internal/model"
	"rentnest/internal/service"
)

type Handler struct {
	agreements *service.AgreementService
	properties *service.PropertyService
	log        zerolog.Logger
}

func NewHandler(agreements *service.AgreementService, properties *service.PropertyService, log zerolog.Logger) *Handler {
	return &Handler{agreements: agreements, properties: properties, log: log}
}

func (h *Handler) Register(router *gin.Engine, authMiddleware gin.HandlerFunc) {
	router.GET("/agreements/dates", h.agreementDates)
	router.GET("/properties", h.availableProperties)
	router.GET("/properties/by-id", h.propertyByID)

	tenant := router.Group("/", authMiddleware, middleware.RequireRole(model.RoleTenant))
	tenant.POST("/agreements", h.createAgreement)
	tenant.GET("/agreements/my", h.tenantAgreements)
	tenant.DELETE("/agreements", h.deleteAgreement)

	landlord := router.Group("/", authMiddleware, middleware.RequireRole(model.RoleLandlord))
	landlord.GET("/agreements/pending", h.pendingAgreements)
	landlord.GET("/agreements/pending/export", h.exportPendingAgreements)
	landlord.PATCH("/agreements/approve", h.approveAgreement)
	landlord.POST("/properties", h.createProperty)
	landlord.GET("/properties/my", h.landlordProperties)

	authed := router.Group("/", authMiddleware)
	authed.GET("/agreements/document", h.agreementDocument)
}

type createAgreementRequest struct {
	PropertyID string  `json:"propertyId" binding:"required"`
	StartDate  string  `json:"startDate" binding:"required"`
	EndDate    string  `json:"endDate" binding:"required"`
	Rent       float64 `json:"rent" binding:"required"`
}

func (h *Handler) createAgreement(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing principal"})
		return
	}

	var req createAgreementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	propertyID, err := uuid.Parse(strings.TrimSpace(req.PropertyID))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid propertyId"})
		return
	}

	start, err := parseDate(req.StartDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid startDate"})
		return
	}

	end, err := parseDate(req.EndDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid endDate"})
		return
	}

	agreement, err := h.agreements.Create(c.Request.Context(), service.CreateAgreementInput{
		PropertyID: propertyID,
		StartDate:  start,
		EndDate:    end,
		Rent:       req.Rent,
		Principal:  principal,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, agreement)
}

func (h *Handler) tenantAgreements(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing principal"})
		return
	}

	rows, err := h.agreements.ListForTenant(c.Request.Context(), principal)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

type deleteAgreementRequest struct {
	ID string `json:"id" binding:"required"`
}

func (h *Handler) deleteAgreement(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing principal"})
		return
	}

	var req deleteAgreementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	id, err := uuid.Parse(strings.TrimSpace(req.ID))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	if err := h.agreements.Delete(c.Request.Context(), principal, id); err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Agreement deleted"})
}

func (h *Handler) pendingAgreements(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing principal"})
		return
	}

	rows, err := h.agreements.ListPendingForLandlord(c.Request.Context(), principal)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

func (h *Handler) exportPendingAgreements(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing principal"})
		return
	}

	result, err := h.agreements.ExportPending(c.Request.Context(), principal)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.Header("Content-Disposition", "attachment; filename=\""+result.FileName+"\"")
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", result.Content)
}

func (h *Handler) agreementDates(c *gin.Context) {
	raw := strings.TrimSpace(c.Query("id"))
	if raw == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Property ID is required"})
		return
	}
	propertyID, err := uuid.Parse(raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	intervals, err := h.agreements.Intervals(c.Request.Context(), propertyID)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, intervals)
}

func (h *Handler) approveAgreement(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing principal"})
		return
	}

	raw := strings.TrimSpace(c.Query("applicationId"))
	if raw == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Application ID is required"})
		return
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid applicationId"})
		return
	}

	if err := h.agreements.Approve(c.Request.Context(), principal, id); err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Agreement approved"})
}

func (h *Handler) agreementDocument(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing principal"})
		return
	}

	raw := strings.TrimSpace(c.Query("id"))
	if raw == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Agreement ID is required"})
		return
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	result, err := h.agreements.Document(c.Request.Context(), principal, id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.Header("Content-Disposition", "attachment; filename=\""+result.FileName+"\"")
	c.Data(http.StatusOK, "application/pdf", result.Content)
}

type createPropertyRequest struct {
	Name        string  `json:"name" binding:"required"`
	AddressLine string  `json:"addressLine"`
	City        string  `json:"city"`
	State       string  `json:"state"`
	Rent        float64 `json:"rent" binding:"required"`
}

func (h *Handler) createProperty(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing principal"})
		return
	}

	var req createPropertyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	property, err := h.properties.Create(c.Request.Context(), service.CreatePropertyInput{
		Name:        req.Name,
		AddressLine: req.AddressLine,
		City:        req.City,
		State:       req.State,
		Rent:        req.Rent,
		Principal:   principal,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, property)
}

func (h *Handler) landlordProperties(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing principal"})
		return
	}

	properties, err := h.properties.ListOwned(c.Request.Context(), principal)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, properties)
}

func (h *Handler) availableProperties(c *gin.Context) {
	properties, err := h.properties.ListAvailable(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, properties)
}

func (h *Handler) propertyByID(c *gin.Context) {
	raw := strings.TrimSpace(c.Query("id"))
	if raw == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Property ID is required"})
		return
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	property, err := h.properties.Get(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, property)
}

func (h *Handler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrNoPending):
		c.Status(http.StatusNoContent)
	case errors.Is(err, service.ErrPermissionDenied):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrAgreementExists),
		errors.Is(err, service.ErrPeriodUnavailable),
		errors.Is(err, service.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		h.log.Error().Err(err).Str("path", c.FullPath()).Msg("request failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}

func parseDate(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, service.ErrInvalidInput
	}
	layouts := []string{
		time.RFC3339,
		"2006-01-02",
		"2006-01-02T15:04:05",
	}
	for _, layout := range layouts {
		if parsed, err := time.Parse(layout, raw); err == nil {
			return parsed, nil
		}
	}
	return time.Time{}, service.ErrInvalidInput
}
