package config

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// ValidateConfig validates the entire configuration and returns all validation errors
func (c *Config) ValidateConfig() error {
	var validationErrors ValidationErrors

	// Validate general config
	if c.General == nil {
		validationErrors = append(validationErrors, ValidationError{
			FieldPath: "general",
			Message:   "configuration must contain 'general' section",
		})
		return validationErrors
	}

	// Use validator to validate General config
	if err := validate.Struct(c.General); err != nil {
		validationErrors = append(validationErrors, convertValidatorErrors(err, "general", "")...)
	}

	if c.Compile != nil {
		if err := validate.Struct(c.Compile); err != nil {
			validationErrors = append(validationErrors, convertValidatorErrors(err, "compile", "")...)
		}
	}
	if c.Publish != nil {
		if err := validate.Struct(c.Publish); err != nil {
			validationErrors = append(validationErrors, convertValidatorErrors(err, "publish", "")...)
		}
	}
	if c.Server != nil {
		if err := validate.Struct(c.Server); err != nil {
			validationErrors = append(validationErrors, convertValidatorErrors(err, "server", "")...)
		}
	}
	if c.Check != nil {
		if err := validate.Struct(c.Check); err != nil {
			validationErrors = append(validationErrors, convertValidatorErrors(err, "check", "")...)
		}
	}

	// Validate lists
	if len(c.Lists) == 0 {
		validationErrors = append(validationErrors, ValidationError{
			FieldPath: "list",
			Message:   "configuration must contain at least one list",
		})
	} else {
		validationErrors = append(validationErrors, c.validateLists()...)
	}

	if len(validationErrors) > 0 {
		return validationErrors
	}

	return nil
}

func (c *Config) validateLists() ValidationErrors {
	var validationErrors ValidationErrors
	seenNames := make(map[string]bool)

	for i, list := range c.Lists {
		itemName := list.Name
		if itemName == "" {
			itemName = fmt.Sprintf("list[%d]", i)
		}

		// Validate struct fields
		if err := validate.Struct(list); err != nil {
			validationErrors = append(validationErrors, convertValidatorErrors(err, fmt.Sprintf("list.%d", i), itemName)...)
		}

		// Check duplicate list name. Artifact paths derive from the name,
		// so duplicates would race on the same output files.
		if seenNames[list.Name] {
			validationErrors = append(validationErrors, ValidationError{
				ItemName:  itemName,
				FieldPath: "name",
				Message:   fmt.Sprintf("duplicate list name: %s", list.Name),
			})
		}
		seenNames[list.Name] = true

		// Validate that at least one source is specified
		hasSource := len(list.Sources) > 0 || len(list.Files) > 0 || len(list.URLs) > 0 || len(list.Entries) > 0
		if !hasSource {
			validationErrors = append(validationErrors, ValidationError{
				ItemName:  itemName,
				FieldPath: "source",
				Message:   "must specify at least one of: sources, file, url, or entries",
			})
		}
	}

	return validationErrors
}

// convertValidatorErrors converts go-playground/validator errors to our ValidationError format
func convertValidatorErrors(err error, fieldPrefix string, itemName string) ValidationErrors {
	var validationErrors ValidationErrors

	var validatorErrs validator.ValidationErrors
	if errors.As(err, &validatorErrs) {
		for _, e := range validatorErrs {
			fieldPath := fieldPrefix
			if e.Field() != "" {
				// e.Field() returns the TOML tag name because we registered TagNameFunc
				fieldName := e.Field()

				if fieldPrefix != "" {
					fieldPath = fieldPrefix + "." + fieldName
				} else {
					fieldPath = fieldName
				}
			}

			message := getValidationMessage(e)

			validationErrors = append(validationErrors, ValidationError{
				ItemName:  itemName,
				FieldPath: fieldPath,
				Message:   message,
			})
		}
	}

	return validationErrors
}
