package utils

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// BindAndValidate binds the request body to the given object and
// validates it. If binding or validation fails, it sends a 400 error
// response and returns false.
func BindAndValidate(c *gin.Context, obj interface{}) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		c.JSON(http.StatusBadRequest, NewErrorResponse(validationMessage(err)))
		return false
	}
	return true
}

func validationMessage(err error) string {
	errs, ok := err.(validator.ValidationErrors)
	if !ok || len(errs) == 0 {
		return "invalid request body"
	}

	e := errs[0]
	switch e.Tag() {
	case "required":
		return fmt.Sprintf("field '%s' is required", e.Field())
	case "gt":
		return fmt.Sprintf("field '%s' must be greater than %s", e.Field(), e.Param())
	case "min":
		return fmt.Sprintf("field '%s' must have at least %s elements", e.Field(), e.Param())
	case "oneof":
		return fmt.Sprintf("field '%s' must be one of: %s", e.Field(), e.Param())
	default:
		return fmt.Sprintf("field '%s' failed validation on '%s'", e.Field(), e.Tag())
	}
}
