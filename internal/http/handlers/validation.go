package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/tbourn/go-career-backend/internal/auth"
	"github.com/tbourn/go-career-backend/internal/domain"
)

// FieldError is one rejected request field.
type FieldError struct {
	Field   string `json:"field" example:"targetCareer"`
	Rule    string `json:"rule" example:"min"`
	Message string `json:"message" example:"must be at least 2 characters"`
}

var registerOnce sync.Once

// RegisterValidators installs the custom rules and JSON field naming on Gin's
// validator engine. Safe to call more than once.
func RegisterValidators() {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterTagNameFunc(jsonFieldName)
		_ = v.RegisterValidation("chatmode", func(fl validator.FieldLevel) bool {
			return domain.IsChatMode(fl.Field().String())
		})
		_ = v.RegisterValidation("pathstatus", func(fl validator.FieldLevel) bool {
			return domain.IsPathStatus(fl.Field().String())
		})
		_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
			return strings.TrimSpace(fl.Field().String()) != ""
		})
		// max counts runes; bcrypt limits bytes.
		_ = v.RegisterValidation("pwbytes", func(fl validator.FieldLevel) bool {
			return len(fl.Field().String()) <= auth.MaxPasswordBytes
		})
	})
}

func jsonFieldName(f reflect.StructField) string {
	name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
	switch name {
	case "-":
		return ""
	case "":
		return f.Name
	}
	return name
}

// bindJSON decodes and validates the body into dst. On failure it writes the
// error response and returns false.
func bindJSON(c *gin.Context, dst any) bool {
	err := c.ShouldBindJSON(dst)
	if err == nil {
		return true
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		failDetails(c, http.StatusBadRequest, ErrCodeValidation, "request validation failed", fieldErrors(verrs))
		return false
	}
	fail(c, http.StatusBadRequest, ErrCodeBadRequest, "invalid JSON body")
	return false
}

// bindOptionalJSON is bindJSON for endpoints whose body may be omitted.
func bindOptionalJSON(c *gin.Context, dst any) bool {
	if c.Request.ContentLength == 0 {
		if err := binding.Validator.ValidateStruct(dst); err != nil {
			var verrs validator.ValidationErrors
			if errors.As(err, &verrs) {
				failDetails(c, http.StatusBadRequest, ErrCodeValidation, "request validation failed", fieldErrors(verrs))
				return false
			}
		}
		return true
	}
	return bindJSON(c, dst)
}

func fieldErrors(verrs validator.ValidationErrors) []FieldError {
	out := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, FieldError{
			Field:   fieldPath(fe),
			Rule:    fe.Tag(),
			Message: ruleMessage(fe),
		})
	}
	return out
}

// fieldPath drops the top-level struct name from the namespace, so
// "CreateSkillRequest.skillName" becomes "skillName".
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return fe.Field()
}

func ruleMessage(fe validator.FieldError) string {
	unit := "characters"
	switch fe.Kind() {
	case reflect.Slice, reflect.Array, reflect.Map:
		unit = "items"
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		unit = ""
	}

	switch fe.Tag() {
	case "required", "notblank":
		return "is required"
	case "required_without":
		return fmt.Sprintf("is required when %s is missing", lowerFirst(fe.Param()))
	case "min", "gte":
		if unit == "" {
			return "must be at least " + fe.Param()
		}
		return fmt.Sprintf("must be at least %s %s", fe.Param(), unit)
	case "max", "lte":
		if unit == "" {
			return "must be at most " + fe.Param()
		}
		return fmt.Sprintf("must be at most %s %s", fe.Param(), unit)
	case "pwbytes":
		return fmt.Sprintf("must be at most %d bytes", auth.MaxPasswordBytes)
	case "email":
		return "must be a valid email address"
	case "url":
		return "must be a valid URL"
	case "chatmode":
		return fmt.Sprintf("must be one of %s, %s, %s",
			domain.ChatModeStandard, domain.ChatModeEnhanced, domain.ChatModeMagicLoops)
	case "pathstatus":
		return fmt.Sprintf("must be one of %s, %s, %s",
			domain.PathNotStarted, domain.PathInProgress, domain.PathCompleted)
	}
	return "failed " + fe.Tag() + " rule"
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}
