package handler

import (
	"net/http"

	"quotecraft/internal/apierror"
	"quotecraft/internal/dto"
	"quotecraft/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type QuotesHandler struct{ svc service.QuoteService }

func NewQuotesHandler(svc service.QuoteService) *QuotesHandler {
	return &QuotesHandler{svc: svc}
}

// Create godoc
// @Summary Create a quote
// @Description Builds and prices every line server-side, assigns a sequential quote number and stores the result as a draft.
// @Tags quotes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body dto.CreateQuoteRequest true "Quote details"
// @Success 201 {object} dto.QuoteResponse
// @Failure 400 {object} apierror.APIError
// @Router /v1/quotes [post]
func (h *QuotesHandler) Create(c *gin.Context) {
	var req dto.CreateQuoteRequest
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

// CreateFromTemplate godoc
// @Summary Create a draft quote from a template
// @Tags quotes
// @Produce json
// @Security BearerAuth
// @Param id path string true "Template UUID"
// @Success 201 {object} dto.QuoteResponse
// @Failure 404 {object} apierror.APIError
// @Router /v1/quotes/from-template/{id} [post]
func (h *QuotesHandler) CreateFromTemplate(c *gin.Context) {
	templateID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Invalid ID"))
		return
	}
	resp, err := h.svc.CreateFromTemplate(c.Request.Context(), userID(c), templateID)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// List godoc
// @Summary List quotes
// @Tags quotes
// @Produce json
// @Security BearerAuth
// @Param status query string false "draft | sent | approved | rejected | expired"
// @Param client query string false "Partial client name match"
// @Param page query int false "Page (default 1)"
// @Param limit query int false "Rows per page (default 50)"
// @Success 200 {object} dto.QuoteListResponse
// @Router /v1/quotes [get]
func (h *QuotesHandler) List(c *gin.Context) {
	var filter dto.QuoteFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	resp, err := h.svc.List(c.Request.Context(), userID(c), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Failed to list quotes"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *QuotesHandler) Get(c *gin.Context) {
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

// Update godoc
// @Summary Update a quote
// @Description Replaces the provided fields; when items, extras, increase or discount change, every line and total is repriced server-side. Status changes follow the draft→sent→approved/rejected lifecycle.
// @Tags quotes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Quote UUID"
// @Param body body dto.UpdateQuoteRequest true "Fields to update"
// @Success 200 {object} dto.QuoteResponse
// @Failure 400 {object} apierror.APIError
// @Router /v1/quotes/{id} [put]
func (h *QuotesHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Invalid ID"))
		return
	}
	var req dto.UpdateQuoteRequest
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

func (h *QuotesHandler) Delete(c *gin.Context) {
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

// Send godoc
// @Summary Send a quote by email
// @Description Marks the quote as sent and enqueues an async job that renders the PDF and emails it to the client.
// @Tags quotes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Quote UUID"
// @Param body body dto.SendQuoteRequest true "Optional recipient override and message"
// @Success 200 {object} dto.QuoteResponse
// @Failure 400 {object} apierror.APIError
// @Router /v1/quotes/{id}/send [post]
func (h *QuotesHandler) Send(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Invalid ID"))
		return
	}
	var req dto.SendQuoteRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Send(c.Request.Context(), userID(c), id, req)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
