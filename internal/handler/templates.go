package handler

import (
	"net/http"

	"quotecraft/internal/apierror"
	"quotecraft/internal/dto"
	"quotecraft/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type TemplatesHandler struct{ svc service.TemplateService }

func NewTemplatesHandler(svc service.TemplateService) *TemplatesHandler {
	return &TemplatesHandler{svc: svc}
}

// Create godoc
// @Summary Create a quote template
// @Description Stores a reusable set of pre-priced lines for recurring job types.
// @Tags templates
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body dto.CreateTemplateRequest true "Template details"
// @Success 201 {object} dto.TemplateResponse
// @Failure 400 {object} apierror.APIError
// @Router /v1/templates [post]
func (h *TemplatesHandler) Create(c *gin.Context) {
	var req dto.CreateTemplateRequest
	if !bindAndValidate(c, &req) {
		return
	}
	if !requireLineNames(c, req.Items) {
		return
	}
	resp, err := h.svc.Create(c.Request.Context(), userID(c), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *TemplatesHandler) List(c *gin.Context) {
	resp, err := h.svc.List(c.Request.Context(), userID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Failed to list templates"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *TemplatesHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Invalid ID"))
		return
	}
	resp, err := h.svc.GetByID(c.Request.Context(), userID(c), id)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *TemplatesHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Invalid ID"))
		return
	}
	var req dto.UpdateTemplateRequest
	if !bindAndValidate(c, &req) {
		return
	}
	if req.Items != nil && !requireLineNames(c, *req.Items) {
		return
	}
	resp, err := h.svc.Update(c.Request.Context(), userID(c), id, req)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *TemplatesHandler) Deactivate(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Invalid ID"))
		return
	}
	if err := h.svc.Deactivate(c.Request.Context(), userID(c), id); err != nil {
		respondErr(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
