package handler

import (
	"errors"
	"net/http"
	"reflect"
	"strconv"

	"renascer/internal/apierror"
	"renascer/internal/middleware"
	"renascer/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

var validate = validator.New()

func init() {
	// Register decimal.Decimal as a numeric type so that validator tags like
	// gt=0, required work without panicking ("Bad field type decimal.Decimal").
	validate.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if v, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := v.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})
}

// bindAndValidate binds the JSON body and runs go-playground/validator tags.
// Returns false and writes the 400 response if either step fails — the
// caller should return immediately without writing another response.
func bindAndValidate(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Invalid JSON: "+err.Error()))
		return false
	}
	if err := validate.Struct(req); err != nil {
		details := make(map[string]string)
		for _, fe := range err.(validator.ValidationErrors) {
			details[fe.Field()] = fe.Tag()
		}
		c.JSON(http.StatusBadRequest, apierror.NewValidation(details))
		return false
	}
	return true
}

// parseID extracts the :id path parameter as an unsigned integer.
// Writes the 400 response and returns false on malformed input.
func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Invalid ID"))
		return 0, false
	}
	return uint(id), true
}

// respondError maps service errors to HTTP statuses. Anything outside the
// typed taxonomy is logged with context and answered with a generic 500.
func respondError(c *gin.Context, err error) {
	var nf *service.NotFoundError
	var cf *service.ConflictError
	var br *service.BadRequestError
	switch {
	case errors.As(err, &nf):
		c.JSON(http.StatusNotFound, apierror.New(nf.Error()))
	case errors.As(err, &cf):
		c.JSON(http.StatusConflict, apierror.New(cf.Error()))
	case errors.As(err, &br):
		c.JSON(http.StatusBadRequest, apierror.New(br.Error()))
	default:
		log.Error().
			Str("request_id", c.GetString(middleware.RequestIDKey)).
			Str("path", c.FullPath()).
			Str("method", c.Request.Method).
			Err(err).
			Msg("request failed")
		c.JSON(http.StatusInternalServerError, apierror.New("Internal server error"))
	}
}
