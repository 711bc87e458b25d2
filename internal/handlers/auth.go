package handlers

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/example/mebel/internal/config"
	"github.com/example/mebel/internal/middleware"
	"github.com/example/mebel/internal/models"
	"github.com/example/mebel/internal/services"
	"github.com/example/mebel/internal/utils"
)

// AuthHandler bundles dependencies for authentication endpoints.
type AuthHandler struct {
	db  *gorm.DB
	cfg *config.Config
	otp *services.OTPService
}

// NewAuthHandler constructs an AuthHandler.
func NewAuthHandler(db *gorm.DB, cfg *config.Config, otp *services.OTPService) *AuthHandler {
	return &AuthHandler{db: db, cfg: cfg, otp: otp}
}

type registerRequest struct {
	FullName string `json:"fullname" form:"fullname"`
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password"`
}

// Register creates a new user account pending contact verification,
// starts a session and issues a registration OTP challenge.
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req registerRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	if req.Email == "" || req.Password == "" {
		return fiber.NewError(fiber.StatusBadRequest, "missing required fields")
	}

	passwordHash, err := utils.HashPassword(req.Password)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to hash password")
	}

	user := models.User{
		FullName:     req.FullName,
		Email:        req.Email,
		PasswordHash: passwordHash,
		Status:       models.StatusContactVerification,
	}

	// The unique index on email decides races between concurrent
	// registrations; no lookup beforehand.
	if err := h.db.Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return fiber.NewError(fiber.StatusConflict, "user already exists")
		}
		return err
	}

	token, err := utils.GenerateToken(h.cfg.JWTSecret, user.ID, user.Email, h.cfg.TokenExpires)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to generate token")
	}

	if _, err := h.otp.Issue(user.ID, models.PurposeUserRegister); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to issue otp")
	}

	h.setSessionCookie(c, token)
	c.Set("Authorization", "Bearer "+token)

	return c.Redirect("/api/main", fiber.StatusSeeOther)
}

type loginRequest struct {
	Username string `json:"username" form:"username"`
	Password string `json:"password" form:"password"`
}

// Login authenticates an existing user by email and password.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	var user models.User
	if err := h.db.Where("email = ?", req.Username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusUnauthorized, "invalid username or password")
		}
		return err
	}

	if !utils.CheckPassword(user.PasswordHash, req.Password) {
		return fiber.NewError(fiber.StatusUnauthorized, "invalid username or password")
	}

	token, err := utils.GenerateToken(h.cfg.JWTSecret, user.ID, user.Email, h.cfg.TokenExpires)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to generate token")
	}

	h.setSessionCookie(c, token)
	c.Set("Authorization", "Bearer "+token)

	return c.Redirect("/api/main", fiber.StatusSeeOther)
}

// Main is the authenticated landing route targeted by the post-auth
// redirects. It echoes the session identity validated by the gate.
func (h *AuthHandler) Main(c *fiber.Ctx) error {
	claims, ok := middleware.SessionClaims(c)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "not authenticated")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"user_id": claims.Subject,
		"email":   claims.Email,
	})
}

func (h *AuthHandler) setSessionCookie(c *fiber.Ctx, token string) {
	cookie := &fiber.Cookie{
		Name:     middleware.SessionCookie,
		Value:    "Bearer " + token,
		Expires:  time.Now().Add(h.cfg.TokenExpires),
		HTTPOnly: true,
	}
	if h.cfg.CookieSecure {
		cookie.Secure = true
		cookie.SameSite = fiber.CookieSameSiteLaxMode
	}
	c.Cookie(cookie)
}
