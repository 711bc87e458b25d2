package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/example/mebel/internal/models"
	"github.com/example/mebel/internal/services"
)

// OTPHandler exposes the contact-verification endpoints.
type OTPHandler struct {
	otp *services.OTPService
}

// NewOTPHandler constructs an OTPHandler.
func NewOTPHandler(otp *services.OTPService) *OTPHandler {
	return &OTPHandler{otp: otp}
}

type otpCreateRequest struct {
	Email string `json:"email" form:"email"`
}

// Create re-issues a registration challenge for an existing user. There
// is no delivery channel yet, so the code is returned in the response.
// TODO: move code delivery to email once an SMTP sender is wired in.
func (h *OTPHandler) Create(c *fiber.Ctx) error {
	var req otpCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	if req.Email == "" {
		return fiber.NewError(fiber.StatusBadRequest, "email is required")
	}

	challenge, err := h.otp.IssueForEmail(req.Email)
	if err != nil {
		if errors.Is(err, services.ErrOTPUserNotFound) {
			return fiber.NewError(fiber.StatusBadRequest, "no such user")
		}
		return err
	}

	return c.JSON(fiber.Map{
		"success":    true,
		"otp_code":   challenge.Code,
		"expires_at": challenge.ExpiresAt,
	})
}

type otpCheckRequest struct {
	UserUUID uuid.UUID         `json:"user_uuid"`
	Email    string            `json:"email"`
	Purpose  models.OTPPurpose `json:"purpose"`
	OTPCode  int               `json:"otp_code"`
}

// Check validates a presented code. Each failure kind gets its own 400
// message so clients can tell them apart.
func (h *OTPHandler) Check(c *fiber.Ctx) error {
	var req otpCheckRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	if req.Purpose == "" {
		req.Purpose = models.PurposeUserRegister
	}

	err := h.otp.Check(req.UserUUID, req.Email, req.Purpose, req.OTPCode)
	switch {
	case err == nil:
		return c.JSON(fiber.Map{"success": true, "verified": true})
	case errors.Is(err, services.ErrOTPUserNotFound):
		return fiber.NewError(fiber.StatusBadRequest, "no such user")
	case errors.Is(err, services.ErrOTPNotIssued):
		return fiber.NewError(fiber.StatusBadRequest, "no otp issued for user")
	case errors.Is(err, services.ErrOTPExpired):
		return fiber.NewError(fiber.StatusBadRequest, "otp code time is expired")
	case errors.Is(err, services.ErrOTPCodeMismatch):
		return fiber.NewError(fiber.StatusBadRequest, "wrong otp code")
	default:
		return err
	}
}
