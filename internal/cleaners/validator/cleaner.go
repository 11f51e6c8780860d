package validator

import (
	"errors"
	"fmt"
	"strings"

	"cleanbook/pkg/logger"
	"cleanbook/pkg/model"

	"github.com/go-playground/validator/v10"
)

type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (v ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", v.Field, v.Message)
}

type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	if len(v) == 0 {
		return ""
	}
	var messages []string
	for _, err := range v {
		messages = append(messages, err.Error())
	}
	return fmt.Sprintf("validation failed: %d error(s): [%s]", len(v), strings.Join(messages, "; "))
}

type CleanerValidator struct {
	validate *validator.Validate
	logger   *logger.Logger
}

func NewCleanerValidator(log *logger.Logger) *CleanerValidator {
	return &CleanerValidator{
		validate: validator.New(),
		logger:   log,
	}
}

func (v *CleanerValidator) Validate(cleaner *model.Cleaner) error {
	if err := v.validate.Struct(cleaner); err != nil {
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) {
			return translateValidationErrors(validationErrs)
		}
		return err
	}

	return validateAvailability(cleaner.Availability)
}

func (v *CleanerValidator) ValidateUpdate(update *model.CleanerUpdate) error {
	if err := v.validate.Struct(update); err != nil {
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) {
			return translateValidationErrors(validationErrs)
		}
		return err
	}

	if update.ContactInfo != nil {
		if update.ContactInfo.Email == "" || update.ContactInfo.Phone == "" {
			return ValidationErrors{
				ValidationError{
					Field:   "ContactInfo",
					Message: "contact info must include both email and phone",
				},
			}
		}
	}

	if update.Availability != nil {
		return validateAvailability(*update.Availability)
	}
	return nil
}

func validateAvailability(tags []string) error {
	for _, tag := range tags {
		switch tag {
		case model.AvailabilityFullTime, model.AvailabilityMorning,
			model.AvailabilityAfternoon, model.AvailabilityEvening:
		default:
			return ValidationErrors{
				ValidationError{
					Field:   "Availability",
					Message: fmt.Sprintf("unknown availability tag: %s", tag),
				},
			}
		}
	}
	return nil
}

func translateValidationErrors(errs validator.ValidationErrors) ValidationErrors {
	var validationErrors ValidationErrors

	for _, err := range errs {
		message := err.Error()

		switch err.Tag() {
		case "required":
			message = fmt.Sprintf("%s is required", err.Field())
		case "min":
			message = fmt.Sprintf("%s must be at least %s", err.Field(), err.Param())
		case "max":
			message = fmt.Sprintf("%s must be at most %s", err.Field(), err.Param())
		case "email":
			message = fmt.Sprintf("%s must be a valid email address", err.Field())
		case "mongodb":
			message = fmt.Sprintf("%s must be a valid MongoDB ObjectID", err.Field())
		}

		validationErrors = append(validationErrors, ValidationError{
			Field:   err.Field(),
			Message: message,
		})
	}

	return validationErrors
}
