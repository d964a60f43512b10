// Package handler contains the HTTP handlers for the application.
package handler

import (
	"net/http"

	"feira/internal/delivery/http/response"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// profileIDFromContext reads the authenticated profile ID that the auth
// middleware stored on the request.
func profileIDFromContext(c echo.Context) (uuid.UUID, bool) {
	profileID, ok := c.Get("profileID").(uuid.UUID)

	return profileID, ok
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}
