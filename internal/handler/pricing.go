package handler

import (
	"net/http"

	"quotecraft/internal/apierror"
	"quotecraft/internal/dto"
	"quotecraft/internal/service"

	"github.com/gin-gonic/gin"
)

// PricingHandler exposes the stateless computation endpoints used by the
// quote editor for live previews. Nothing here writes to the database.
type PricingHandler struct{ svc service.PricingService }

func NewPricingHandler(svc service.PricingService) *PricingHandler {
	return &PricingHandler{svc: svc}
}

// ComputeLine godoc
// @Summary Compute one quote line
// @Description Runs the cost model for a single line (direct cost, hours based or material plus hours) using the caller's stored defaults as fallback.
// @Tags pricing
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body dto.ComputeLineRequest true "Line inputs"
// @Success 200 {object} dto.ComputeLineResponse
// @Failure 400 {object} apierror.APIError
// @Router /v1/pricing/line [post]
func (h *PricingHandler) ComputeLine(c *gin.Context) {
	var req dto.ComputeLineRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.ComputeLine(c.Request.Context(), userID(c), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ComputeTiling godoc
// @Summary Compute a tiling line
// @Description Runs the composite tiling model: wastage on material, complexity-scaled workdays, markup-based profit.
// @Tags pricing
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body dto.ComputeTilingRequest true "Tiling inputs"
// @Success 200 {object} dto.ComputeTilingResponse
// @Failure 400 {object} apierror.APIError
// @Router /v1/pricing/tiling [post]
func (h *PricingHandler) ComputeTiling(c *gin.Context) {
	var req dto.ComputeTilingRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.ComputeTiling(c.Request.Context(), userID(c), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// SummarizeTiling godoc
// @Summary Aggregate tiling lines into a project summary
// @Description Sums workdays across tiling lines, optionally rounding up to whole days, and recomputes the blended labor price.
// @Tags pricing
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body dto.TilingSummaryRequest true "Tiling lines"
// @Success 200 {object} dto.TilingSummaryResponse
// @Router /v1/pricing/tiling/summary [post]
func (h *PricingHandler) SummarizeTiling(c *gin.Context) {
	var req dto.TilingSummaryRequest
	if !bindAndValidate(c, &req) {
		return
	}
	c.JSON(http.StatusOK, h.svc.SummarizeTiling(req))
}

// QuoteTotals godoc
// @Summary Compute quote totals
// @Description Applies the global increase then the discount over the line subtotal plus additional costs.
// @Tags pricing
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body dto.QuoteTotalsRequest true "Totals inputs"
// @Success 200 {object} dto.QuoteTotalsResponse
// @Router /v1/pricing/quote-totals [post]
func (h *PricingHandler) QuoteTotals(c *gin.Context) {
	var req dto.QuoteTotalsRequest
	if !bindAndValidate(c, &req) {
		return
	}
	c.JSON(http.StatusOK, h.svc.QuoteTotals(req))
}

// ComplexityOptions returns the tiling complexity levels, tile sizes and
// work types the editor renders as dropdowns.
func (h *PricingHandler) ComplexityOptions(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.ComplexityOptions())
}
