package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"strings"
	"sync"

	"sheetcrm/internal/logger"
	"sheetcrm/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

var registerOnce sync.Once

// RegisterValidation makes binding errors report JSON field names instead of Go field names
func RegisterValidation() {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name == "" {
				return f.Name
			}
			return name
		})
	})
}

// validationError is one entry of a 422 response body
type validationError struct {
	Loc  []string `json:"loc"`
	Msg  string   `json:"msg"`
	Type string   `json:"type"`
}

func unprocessable(c *gin.Context, details ...validationError) {
	c.JSON(http.StatusUnprocessableEntity, gin.H{"detail": details})
}

// bindingErrors translates a decode or validation failure into 422 entries
func bindingErrors(err error) []validationError {
	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		out := make([]validationError, 0, len(ve))
		for _, fe := range ve {
			out = append(out, fieldError(fe))
		}
		return out
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		return []validationError{{
			Loc:  bodyLoc(typeErr.Field),
			Msg:  fmt.Sprintf("value is not a valid %s", typeErr.Type),
			Type: "type_error." + typeErr.Type.Kind().String(),
		}}
	}

	var syntaxErr *json.SyntaxError
	if errors.As(err, &syntaxErr) || errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return []validationError{{Loc: []string{"body"}, Msg: "request body is not valid JSON", Type: "value_error.jsondecode"}}
	}

	return []validationError{{Loc: []string{"body"}, Msg: err.Error(), Type: "value_error"}}
}

func fieldError(fe validator.FieldError) validationError {
	// Namespace is "Bill.quantities[0]"; drop the struct name
	path := fe.Namespace()
	if i := strings.IndexByte(path, '.'); i >= 0 {
		path = path[i+1:]
	}
	if fe.Tag() == "required" {
		return validationError{Loc: bodyLoc(path), Msg: "field required", Type: "value_error.missing"}
	}
	msg := fmt.Sprintf("failed on the '%s' rule", fe.Tag())
	if fe.Param() != "" {
		msg = fmt.Sprintf("failed on the '%s=%s' rule", fe.Tag(), fe.Param())
	}
	return validationError{Loc: bodyLoc(path), Msg: msg, Type: "value_error." + fe.Tag()}
}

func bodyLoc(path string) []string {
	loc := []string{"body"}
	if path == "" {
		return loc
	}
	return append(loc, strings.Split(path, ".")...)
}

// respondError maps service errors onto HTTP responses
func respondError(c *gin.Context, err error) {
	var nf *service.NotFoundError
	switch {
	case errors.As(err, &nf):
		c.JSON(http.StatusNotFound, gin.H{"detail": nf.Message})
	case errors.Is(err, service.ErrLengthMismatch):
		unprocessable(c, validationError{
			Loc:  []string{"body", "quantities"},
			Msg:  err.Error(),
			Type: "value_error.length_mismatch",
		})
	default:
		logger.FromContext(c.Request.Context()).Error("Request failed",
			zap.String("path", c.FullPath()),
			zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Internal Server Error"})
	}
}
