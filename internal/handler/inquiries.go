package handler

import (
	"net/http"

	"quotecraft/internal/apierror"
	"quotecraft/internal/dto"
	"quotecraft/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type InquiriesHandler struct{ svc service.InquiryService }

func NewInquiriesHandler(svc service.InquiryService) *InquiriesHandler {
	return &InquiriesHandler{svc: svc}
}

// Create godoc
// @Summary Submit a customer inquiry
// @Description Public endpoint for the contact form. Notifies the configured address asynchronously.
// @Tags inquiries
// @Accept json
// @Produce json
// @Param body body dto.CreateInquiryRequest true "Inquiry details"
// @Success 201 {object} dto.InquiryResponse
// @Failure 400 {object} apierror.APIError
// @Router /v1/inquiries [post]
func (h *InquiriesHandler) Create(c *gin.Context) {
	var req dto.CreateInquiryRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *InquiriesHandler) List(c *gin.Context) {
	var filter dto.InquiryFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	resp, err := h.svc.List(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Failed to list inquiries"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *InquiriesHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Invalid ID"))
		return
	}
	resp, err := h.svc.GetByID(c.Request.Context(), id)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Update transitions an inquiry through new → contacted → converted/closed
// and lets staff attach follow-up notes.
func (h *InquiriesHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Invalid ID"))
		return
	}
	var req dto.UpdateInquiryRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Update(c.Request.Context(), id, req)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *InquiriesHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Invalid ID"))
		return
	}
	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		respondErr(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
