// Package handler holds the echo handlers of the public API.
package handler

import (
	"heyfarmer/internal/domain/county"
	domainerrors "heyfarmer/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// bindAndValidate decodes the request into req and validates it. Failures are
// ErrValidationFailed so handlers render them with response.HandleAppError.
func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("request could not be decoded")
	}

	return c.Validate(req)
}

// pathUUID parses the named path parameter.
func pathUUID(c echo.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, domainerrors.ErrValidationFailed.WithDetails("invalid " + name)
	}

	return id, nil
}

// normalizeCounty turns a slug into a county id and leaves ids and unknown
// values untouched for validation downstream.
func normalizeCounty(value string) string {
	if id, ok := county.Unslugify(value); ok {
		return string(id)
	}

	return value
}
