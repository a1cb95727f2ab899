package httpx

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/MikeMC777/mercado-granja/internal/errs"
	"github.com/MikeMC777/mercado-granja/internal/sqlerr"
)

// Fail writes {"error": msg} with the status carried by err and logs server-side causes.
func Fail(c *gin.Context, err error) {
	httpErr := errs.As(err)
	if httpErr.Status >= http.StatusInternalServerError {
		l := LoggerFrom(c)
		ev := l.Error().Err(err).Str("path", c.FullPath())
		if sqlerr.IsForeignKeyViolation(err) {
			ev = ev.Str("constraint", sqlerr.Constraint(err))
		}
		ev.Msg(httpErr.Message)
	}
	c.AbortWithStatusJSON(httpErr.Status, gin.H{"error": httpErr.Message})
}

// ParseID reads a positive integer path parameter.
func ParseID(c *gin.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, errs.NewValidationError("invalid " + name)
	}
	return id, nil
}

// Bind decodes the JSON body into dst, turning binding failures into a 400.
// Absent fields win over out-of-range ones; the latter are named.
func Bind(c *gin.Context, dst any) error {
	err := c.ShouldBindJSON(dst)
	if err == nil {
		return nil
	}
	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		for _, fe := range ve {
			if fe.Tag() == "required" {
				return errs.NewValidationError("Missing required fields")
			}
		}
		return errs.NewValidationError("Invalid " + lowerFirst(ve[0].Field()))
	}
	return errs.NewValidationError("Missing required fields")
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}
