package handler

import (
	"net/http"

	"quotecraft/internal/apierror"
	"quotecraft/internal/dto"
	"quotecraft/internal/service"

	"github.com/gin-gonic/gin"
)

type DefaultsHandler struct{ svc service.DefaultsService }

func NewDefaultsHandler(svc service.DefaultsService) *DefaultsHandler {
	return &DefaultsHandler{svc: svc}
}

// List godoc
// @Summary List per-category pricing defaults
// @Description Returns the caller's stored overrides. Categories without a row fall back to built-in defaults at compute time.
// @Tags defaults
// @Produce json
// @Security BearerAuth
// @Success 200 {array} dto.DefaultsResponse
// @Router /v1/defaults [get]
func (h *DefaultsHandler) List(c *gin.Context) {
	resp, err := h.svc.ListAll(c.Request.Context(), userID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Failed to list defaults"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *DefaultsHandler) Get(c *gin.Context) {
	resp, err := h.svc.Get(c.Request.Context(), userID(c), c.Param("key"))
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Upsert godoc
// @Summary Set pricing defaults for a category
// @Description Creates or replaces the caller's override row for the given category key.
// @Tags defaults
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param key path string true "Category key"
// @Param body body dto.UpsertDefaultsRequest true "Default values"
// @Success 200 {object} dto.DefaultsResponse
// @Failure 400 {object} apierror.APIError
// @Router /v1/defaults/{key} [put]
func (h *DefaultsHandler) Upsert(c *gin.Context) {
	var req dto.UpsertDefaultsRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Upsert(c.Request.Context(), userID(c), c.Param("key"), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *DefaultsHandler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), userID(c), c.Param("key")); err != nil {
		respondErr(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
