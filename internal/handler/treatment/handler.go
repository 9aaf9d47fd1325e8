package treatment

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ecnhealth/clinical-api/internal/handler"
	"github.com/ecnhealth/clinical-api/internal/model"
	"github.com/ecnhealth/clinical-api/internal/service/treatment"
)

type Handler struct {
	service treatment.Service
}

func NewHandler(service treatment.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	treatments := r.Group("/treatments")
	{
		treatments.POST("/", h.CreateTreatment)
		treatments.GET("/", h.ListTreatments)
		treatments.GET("/patient/:patientId", h.ListPatientTreatments)
		treatments.GET("/:id", h.GetTreatment)
		treatments.PATCH("/:id", h.UpdateTreatment)
		treatments.DELETE("/:id", h.DeleteTreatment)
	}
}

func (h *Handler) CreateTreatment(c *gin.Context) {
	var req model.CreateTreatmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		handler.BindingError(c, err)
		return
	}

	t, err := h.service.CreateTreatment(c.Request.Context(), &req)
	if err != nil {
		handler.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, t)
}

func (h *Handler) ListTreatments(c *gin.Context) {
	skip, limit, err := handler.PaginationParams(c)
	if err != nil {
		handler.Error(c, err)
		return
	}

	treatments, err := h.service.ListTreatments(c.Request.Context(), skip, limit)
	if err != nil {
		handler.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, treatments)
}

func (h *Handler) ListPatientTreatments(c *gin.Context) {
	patientID, err := handler.IDParam(c, "patientId")
	if err != nil {
		handler.Error(c, err)
		return
	}

	treatments, err := h.service.ListPatientTreatments(c.Request.Context(), patientID)
	if err != nil {
		handler.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, treatments)
}

func (h *Handler) GetTreatment(c *gin.Context) {
	id, err := handler.IDParam(c, "id")
	if err != nil {
		handler.Error(c, err)
		return
	}

	t, err := h.service.GetTreatment(c.Request.Context(), id)
	if err != nil {
		handler.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, t)
}

func (h *Handler) UpdateTreatment(c *gin.Context) {
	id, err := handler.IDParam(c, "id")
	if err != nil {
		handler.Error(c, err)
		return
	}

	var req model.UpdateTreatmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		handler.BindingError(c, err)
		return
	}

	t, err := h.service.UpdateTreatment(c.Request.Context(), id, &req)
	if err != nil {
		handler.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, t)
}

func (h *Handler) DeleteTreatment(c *gin.Context) {
	id, err := handler.IDParam(c, "id")
	if err != nil {
		handler.Error(c, err)
		return
	}

	if err := h.service.DeleteTreatment(c.Request.Context(), id); err != nil {
		handler.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"detail": "Treatment deleted successfully"})
}
