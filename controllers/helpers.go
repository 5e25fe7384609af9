// Copyright 2025 l3montree GmbH.
// SPDX-License-Identifier: 	AGPL-3.0-or-later

package controllers

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
)

// fieldErrorMap flattens validator errors into a json-field -> message map
// the frontend can render next to each input. Unknown fields fall back to a
// generic message.
func fieldErrorMap(err error, messages map[string]string) map[string]string {
	result := map[string]string{}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		result["form"] = "Invalid request"
		return result
	}

	for _, fieldErr := range validationErrs {
		message, ok := messages[fieldErr.Field()]
		if !ok {
			message = "Invalid value"
		}
		result[lowerFirst(fieldErr.Field())] = message
	}
	return result
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}
