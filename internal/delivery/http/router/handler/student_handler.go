// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"

	"registrar/internal/delivery/http/response"
	"registrar/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// RegisterResponse is the body returned after a successful registration.
type RegisterResponse struct {
	Message   string `json:"message"`
	StudentID string `json:"student_id"`
}

// LoginResponse is the body returned after a successful login.
type LoginResponse struct {
	Message   string `json:"message"`
	StudentID string `json:"student_id"`
	Name      string `json:"name"`
}

// StudentHandler holds dependencies for student-related handlers.
type StudentHandler struct {
	uc     usecase.StudentUsecase
	logger *slog.Logger
}

// NewStudentHandler is the constructor for StudentHandler, injected by Fx.
func NewStudentHandler(uc usecase.StudentUsecase, logger *slog.Logger) *StudentHandler {
	return &StudentHandler{
		uc:     uc,
		logger: logger,
	}
}

// Register handles the student registration request.
func (h *StudentHandler) Register(c echo.Context) error {
	var input *usecase.RegisterInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid registration input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.Register(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	// Only the generated id goes back; never the password or its hash.
	return c.JSON(http.StatusOK, RegisterResponse{
		Message:   "Registration successful",
		StudentID: output.ID,
	})
}

// Login handles the student login request.
func (h *StudentHandler) Login(c echo.Context) error {
	var input *usecase.LoginInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.Login(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, LoginResponse{
		Message:   "Login successful",
		StudentID: output.ID,
		Name:      output.Name,
	})
}

// GetProfile handles the public profile lookup by opaque id.
func (h *StudentHandler) GetProfile(c echo.Context) error {
	id := c.Param("id")

	profile, err := h.uc.GetProfile(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, profile)
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
