package handler

import (
	"net/http"

	"quotecraft/internal/apierror"
	"quotecraft/internal/dto"
	"quotecraft/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ProjectCostsHandler struct{ svc service.ProjectCostService }

func NewProjectCostsHandler(svc service.ProjectCostService) *ProjectCostsHandler {
	return &ProjectCostsHandler{svc: svc}
}

// Create godoc
// @Summary Record an actual project cost
// @Description Tracks real spend against a project, optionally linked to a quote, with separate client-facing and contractor costs.
// @Tags project-costs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body dto.CreateProjectCostRequest true "Cost details"
// @Success 201 {object} dto.ProjectCostResponse
// @Failure 400 {object} apierror.APIError
// @Router /v1/project-costs [post]
func (h *ProjectCostsHandler) Create(c *gin.Context) {
	var req dto.CreateProjectCostRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Create(c.Request.Context(), userID(c), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *ProjectCostsHandler) List(c *gin.Context) {
	var filter dto.ProjectCostFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	resp, err := h.svc.List(c.Request.Context(), userID(c), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Failed to list project costs"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ProjectCostsHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Invalid ID"))
		return
	}
	var req dto.UpdateProjectCostRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Update(c.Request.Context(), userID(c), id, req)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ProjectCostsHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Invalid ID"))
		return
	}
	if err := h.svc.Delete(c.Request.Context(), userID(c), id); err != nil {
		respondErr(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
