package handler

import (
	"net/http"

	"quotecraft/internal/apierror"
	"quotecraft/internal/dto"
	"quotecraft/internal/middleware"
	"quotecraft/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CatalogHandler struct{ svc service.CatalogService }

func NewCatalogHandler(svc service.CatalogService) *CatalogHandler {
	return &CatalogHandler{svc: svc}
}

func userID(c *gin.Context) uuid.UUID {
	claims := middleware.GetClaims(c)
	id, _ := uuid.Parse(claims.UserID)
	return id
}

// Create godoc
// @Summary Create a catalog item
// @Description Adds a reusable price-book entry (material or service) to the caller's catalog.
// @Tags catalog
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body dto.CreateCatalogItemRequest true "Item details"
// @Success 201 {object} dto.CatalogItemResponse
// @Failure 400 {object} apierror.APIError
// @Router /v1/catalog [post]
func (h *CatalogHandler) Create(c *gin.Context) {
	var req dto.CreateCatalogItemRequest
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

// List godoc
// @Summary List catalog items
// @Tags catalog
// @Produce json
// @Security BearerAuth
// @Param category query string false "Filter by category key"
// @Param sub_category query string false "Filter by sub-category"
// @Param name query string false "Partial name match (case-insensitive)"
// @Param page query int false "Page (default 1)"
// @Param limit query int false "Rows per page (default 50)"
// @Success 200 {object} dto.CatalogItemListResponse
// @Router /v1/catalog [get]
func (h *CatalogHandler) List(c *gin.Context) {
	var filter dto.CatalogItemFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	resp, err := h.svc.List(c.Request.Context(), userID(c), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Failed to list catalog items"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ListByCategory serves the quote editor's item picker. Results are cached
// in Redis per user and category.
func (h *CatalogHandler) ListByCategory(c *gin.Context) {
	resp, err := h.svc.ListByCategory(c.Request.Context(), userID(c), c.Param("key"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Failed to list catalog items"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *CatalogHandler) Get(c *gin.Context) {
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

func (h *CatalogHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Invalid ID"))
		return
	}
	var req dto.UpdateCatalogItemRequest
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

func (h *CatalogHandler) Deactivate(c *gin.Context) {
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

// Reactivate restores a soft-deleted item so it shows up in the picker again.
func (h *CatalogHandler) Reactivate(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Invalid ID"))
		return
	}
	if err := h.svc.Reactivate(c.Request.Context(), userID(c), id); err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Catalog item reactivated"})
}
