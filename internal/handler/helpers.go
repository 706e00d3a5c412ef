package handler

import (
	"fmt"
	"net/http"
	"reflect"
	"strings"

	"quotecraft/internal/apierror"
	"quotecraft/internal/dto"
	"quotecraft/internal/pricing"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var validate = validator.New()

func init() {
	// Register decimal.Decimal as a numeric type so that validator tags like
	// min=0, gt=0, required work without panicking ("Bad field type decimal.Decimal").
	validate.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if v, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := v.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})
}

// bindAndValidate binds JSON body and runs go-playground/validator tags.
// Returns false and writes the error response if validation fails —
// the caller should return immediately without writing another response.
func bindAndValidate(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Invalid JSON: "+err.Error()))
		return false
	}
	if err := validate.Struct(req); err != nil {
		fields := make(map[string]string)
		for _, fe := range err.(validator.ValidationErrors) {
			fields[fe.Field()] = fe.Tag()
		}
		c.JSON(http.StatusUnprocessableEntity, apierror.NewValidation(fields))
		return false
	}
	return true
}

// requireLineNames rejects lines whose category config demands a named item
// before any pricing runs. Returns false after writing the 422 response.
func requireLineNames(c *gin.Context, lines []dto.QuoteLineInput) bool {
	fields := make(map[string]string)
	for i, li := range lines {
		if pricing.ConfigFor(li.CategoryKey).RequireName && strings.TrimSpace(li.Name) == "" {
			fields[fmt.Sprintf("items[%d].name", i)] = "required"
		}
	}
	if len(fields) > 0 {
		c.JSON(http.StatusUnprocessableEntity, apierror.NewValidation(fields))
		return false
	}
	return true
}

// respondErr maps service errors to HTTP status codes. Services signal
// missing records with a "not found" message; everything else is a 400.
func respondErr(c *gin.Context, err error) {
	status := http.StatusBadRequest
	if strings.Contains(err.Error(), "not found") {
		status = http.StatusNotFound
	}
	c.JSON(status, apierror.New(err.Error()))
}
