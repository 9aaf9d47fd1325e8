package assessment

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ecnhealth/clinical-api/internal/handler"
	"github.com/ecnhealth/clinical-api/internal/model"
	"github.com/ecnhealth/clinical-api/internal/service/assessment"
)

type Handler struct {
	service assessment.Service
}

func NewHandler(service assessment.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	assessments := r.Group("/assessments")
	{
		assessments.POST("/", h.CreateAssessment)
		assessments.GET("/", h.ListAssessments)
		assessments.GET("/patient/:patientId", h.ListPatientAssessments)
		assessments.GET("/:id", h.GetAssessment)
		assessments.PATCH("/:id", h.UpdateAssessment)
		assessments.DELETE("/:id", h.DeleteAssessment)
	}
}

func (h *Handler) CreateAssessment(c *gin.Context) {
	var req model.CreateAssessmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		handler.BindingError(c, err)
		return
	}

	a, err := h.service.CreateAssessment(c.Request.Context(), &req)
	if err != nil {
		handler.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, a)
}

func (h *Handler) ListAssessments(c *gin.Context) {
	skip, limit, err := handler.PaginationParams(c)
	if err != nil {
		handler.Error(c, err)
		return
	}

	assessments, err := h.service.ListAssessments(c.Request.Context(), skip, limit)
	if err != nil {
		handler.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, assessments)
}

func (h *Handler) ListPatientAssessments(c *gin.Context) {
	patientID, err := handler.IDParam(c, "patientId")
	if err != nil {
		handler.Error(c, err)
		return
	}

	assessments, err := h.service.ListPatientAssessments(c.Request.Context(), patientID)
	if err != nil {
		handler.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, assessments)
}

func (h *Handler) GetAssessment(c *gin.Context) {
	id, err := handler.IDParam(c, "id")
	if err != nil {
		handler.Error(c, err)
		return
	}

	a, err := h.service.GetAssessment(c.Request.Context(), id)
	if err != nil {
		handler.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, a)
}

func (h *Handler) UpdateAssessment(c *gin.Context) {
	id, err := handler.IDParam(c, "id")
	if err != nil {
		handler.Error(c, err)
		return
	}

	var req model.UpdateAssessmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		handler.BindingError(c, err)
		return
	}

	a, err := h.service.UpdateAssessment(c.Request.Context(), id, &req)
	if err != nil {
		handler.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, a)
}

func (h *Handler) DeleteAssessment(c *gin.Context) {
	id, err := handler.IDParam(c, "id")
	if err != nil {
		handler.Error(c, err)
		return
	}

	if err := h.service.DeleteAssessment(c.Request.Context(), id); err != nil {
		handler.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"detail": "Assessment deleted successfully"})
}
