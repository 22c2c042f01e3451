package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/munjed80/Fancy-foods-app/internal/apierror"
	"github.com/munjed80/Fancy-foods-app/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

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

// parseID reads the :id path param as an unsigned integer. Writes the 400
// response itself on failure.
func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Invalid ID"))
		return 0, false
	}
	return uint(id), true
}

var notFoundErrs = []error{
	service.ErrDealNotFound,
	service.ErrOrderNotFound,
	service.ErrShipmentNotFound,
	service.ErrProductNotFound,
	service.ErrClientNotFound,
	service.ErrSupplierNotFound,
	service.ErrTemplateNotFound,
}

// writeServiceError maps the service error taxonomy onto HTTP responses:
// rejected input → 422, missing target → 404, anything else is a dependency
// failure → 500 with a generic envelope (detail stays in the logs).
func writeServiceError(c *gin.Context, err error) {
	var ve *service.ValidationError
	if errors.As(err, &ve) {
		c.JSON(http.StatusUnprocessableEntity, apierror.NewValidation(map[string]string{ve.Field: ve.Message}))
		return
	}
	for _, sentinel := range notFoundErrs {
		if errors.Is(err, sentinel) {
			c.JSON(http.StatusNotFound, apierror.New(sentinel.Error()))
			return
		}
	}
	_ = c.Error(err)
	c.JSON(http.StatusInternalServerError, apierror.New("Internal server error"))
}
