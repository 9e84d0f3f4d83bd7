package controller

import (
	"encoding/json"
	"errors"
	"net/http"
	"reflect"
	"strings"
	"sync"

	"github/itish2003/companion/models"
	"github/itish2003/companion/services"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
	"go.uber.org/zap"
)

const (
	internalErrorMessage = "Internal server error"
	invalidBodyMessage   = "Invalid request body"
	usernameRequired     = "Username is required"
	infoRequired         = "Information is required"
	messageRequired      = "Message is required"
)

// requiredMessages maps a json field name to the message a client sees
// when that field is missing, blank or of the wrong type.
var requiredMessages = map[string]string{
	"username": usernameRequired,
	"info":     infoRequired,
	"message":  messageRequired,
}

var registerOnce sync.Once

// registerValidators teaches gin's validator the notblank tag and makes it
// report fields by their json name.
func registerValidators() {
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
			return name
		})
		_ = v.RegisterValidation("notblank", validators.NotBlank)
	})
}

// bindJSON decodes and validates the body into obj. On failure it writes
// the error envelope and returns false.
func bindJSON(ctx *gin.Context, obj any, log *zap.Logger) bool {
	err := ctx.ShouldBindJSON(obj)
	if err == nil {
		return true
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		respondError(ctx, http.StatusBadRequest, messageForField(verrs[0].Field()))
		return false
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		respondError(ctx, http.StatusBadRequest, messageForField(typeErr.Field))
		return false
	}

	// Unparseable bodies are treated as unexpected faults.
	log.Error("failed to decode request body", zap.String("path", ctx.FullPath()), zap.Error(err))
	respondError(ctx, http.StatusInternalServerError, internalErrorMessage)
	return false
}

func messageForField(field string) string {
	if msg, ok := requiredMessages[field]; ok {
		return msg
	}
	return invalidBodyMessage
}

// respondServiceError maps a service error to the envelope. Sentinel input
// errors are client errors, everything else is logged and hidden.
func respondServiceError(ctx *gin.Context, err error, log *zap.Logger) {
	switch {
	case errors.Is(err, services.ErrUsernameRequired):
		respondError(ctx, http.StatusBadRequest, usernameRequired)
	case errors.Is(err, services.ErrNoteRequired):
		respondError(ctx, http.StatusBadRequest, infoRequired)
	default:
		log.Error("request failed", zap.String("path", ctx.FullPath()), zap.Error(err))
		respondError(ctx, http.StatusInternalServerError, internalErrorMessage)
	}
}

func respondError(ctx *gin.Context, status int, message string) {
	ctx.AbortWithStatusJSON(status, models.ErrorResponse{Success: false, Error: message})
}
