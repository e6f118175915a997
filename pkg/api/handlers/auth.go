package handlers

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"net/http"
	"time"

	"github.com/cliptokk/api/config"
	"github.com/cliptokk/api/ent"
	"github.com/cliptokk/api/ent/user"
	"github.com/cliptokk/api/pkg/api/errors"
	"github.com/cliptokk/api/pkg/audit"
	"github.com/cliptokk/api/pkg/auth"
	"github.com/cliptokk/api/pkg/email"
	"github.com/cliptokk/api/pkg/metrics"
	"github.com/cliptokk/api/pkg/models"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// AuthHandler handles authentication endpoints
type AuthHandler struct {
	db           *ent.Client
	config       *config.Config
	blacklist    *auth.TokenBlacklist
	auditLogger  *audit.Service
	emailService *email.Service
	metrics      *metrics.Metrics
	validator    *validator.Validate
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(db *ent.Client, cfg *config.Config, blacklist *auth.TokenBlacklist, auditLogger *audit.Service, emailService *email.Service, m *metrics.Metrics) *AuthHandler {
	return &AuthHandler{
		db:           db,
		config:       cfg,
		blacklist:    blacklist,
		auditLogger:  auditLogger,
		emailService: emailService,
		metrics:      m,
		validator:    validator.New(),
	}
}

// homeForRole is the landing path the frontend routes to after login.
func homeForRole(role user.Role) string {
	switch role {
	case user.RoleAdmin:
		return "/admin"
	case user.RoleCreator:
		return "/dashboard/creator"
	default:
		return "/dashboard/clipper"
	}
}

func toUserInfo(u *ent.User) *models.UserInfo {
	info := &models.UserInfo{
		ID:                  u.ID,
		Email:               u.Email,
		Pseudo:              u.Pseudo,
		Role:                string(u.Role),
		Home:                homeForRole(u.Role),
		TotalEarnings:       u.TotalEarnings,
		EmailVerified:       u.EmailVerified,
		OnboardingCompleted: u.OnboardingCompleted,
	}
	if u.TiktokUsername != nil {
		info.TiktokUsername = *u.TiktokUsername
	}
	if u.AvatarURL != nil {
		info.AvatarURL = *u.AvatarURL
	}
	return info
}

// Register godoc
// @Summary Register a new user
// @Description Create a creator or clipper account with email and password
// @Tags Authentication
// @Accept json
// @Produce json
// @Param request body models.RegisterRequest true "Registration data"
// @Success 201 {object} models.AuthResponse "User registered successfully"
// @Failure 400 {object} models.ErrorResponse "Invalid request"
// @Failure 409 {object} models.ErrorResponse "User already exists"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req models.RegisterRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_request",
			Message: "Invalid request body",
		})
	}

	if err := h.validator.Struct(req); err != nil {
		return errors.ValidationError(c, err)
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	exists, err := h.db.User.Query().Where(user.EmailEQ(req.Email)).Exist(ctx)
	if err != nil {
		return errors.DatabaseError(c, err)
	}
	if exists {
		return c.JSON(http.StatusConflict, models.ErrorResponse{
			Error:   "user_exists",
			Message: "User with this email already exists",
		})
	}

	hashedPassword, err := auth.HashPassword(req.Password)
	if err != nil {
		return errors.InternalError(c, err)
	}

	verificationToken, err := generateVerificationToken()
	if err != nil {
		return errors.InternalError(c, err)
	}

	newUser, err := h.db.User.Create().
		SetEmail(req.Email).
		SetPasswordHash(hashedPassword).
		SetPseudo(req.Pseudo).
		SetRole(user.Role(req.Role)).
		SetEmailVerificationToken(verificationToken).
		SetEmailVerificationTokenExpiresAt(time.Now().Add(24 * time.Hour)).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return c.JSON(http.StatusConflict, models.ErrorResponse{
				Error:   "pseudo_taken",
				Message: "This pseudo is already in use",
			})
		}
		return errors.DatabaseError(c, err)
	}

	ipAddress, userAgent := audit.GetRequestContext(c)
	go h.auditLogger.LogUserRegister(context.Background(), newUser.ID, ipAddress, userAgent)
	go h.emailService.SendVerificationEmail(newUser.Email, newUser.Pseudo, verificationToken)
	h.metrics.RecordUserRegistered(string(newUser.Role))

	token, err := auth.GenerateJWT(
		newUser.ID,
		newUser.Email,
		string(newUser.Role),
		h.config.JWTSecret,
		h.config.JWTExpirationHours,
	)
	if err != nil {
		return errors.InternalError(c, err)
	}

	return c.JSON(http.StatusCreated, models.AuthResponse{
		Token: token,
		User:  toUserInfo(newUser),
	})
}

// Login godoc
// @Summary Login user
// @Description Authenticate with email and password, returns JWT token
// @Tags Authentication
// @Accept json
// @Produce json
// @Param request body models.LoginRequest true "Login credentials"
// @Success 200 {object} models.AuthResponse "Login successful"
// @Failure 400 {object} models.ErrorResponse "Invalid request"
// @Failure 401 {object} models.ErrorResponse "Invalid credentials"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req models.LoginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_request",
			Message: "Invalid request body",
		})
	}

	if err := h.validator.Struct(req); err != nil {
		return errors.ValidationError(c, err)
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	u, err := h.db.User.Query().
		Where(user.EmailEQ(req.Email), user.DeletedAtIsNil()).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			h.metrics.RecordLoginAttempt(false)
			return c.JSON(http.StatusUnauthorized, models.ErrorResponse{
				Error:   "invalid_credentials",
				Message: "Invalid email or password",
			})
		}
		return errors.DatabaseError(c, err)
	}

	if !auth.CheckPassword(u.PasswordHash, req.Password) {
		h.metrics.RecordLoginAttempt(false)
		return c.JSON(http.StatusUnauthorized, models.ErrorResponse{
			Error:   "invalid_credentials",
			Message: "Invalid email or password",
		})
	}

	// Best effort, failures must not block the login
	_, _ = h.db.User.UpdateOneID(u.ID).
		SetLastLoginAt(time.Now()).
		Save(ctx)

	ipAddress, userAgent := audit.GetRequestContext(c)
	go h.auditLogger.LogUserLogin(context.Background(), u.ID, ipAddress, userAgent)
	h.metrics.RecordLoginAttempt(true)

	token, err := auth.GenerateJWT(
		u.ID,
		u.Email,
		string(u.Role),
		h.config.JWTSecret,
		h.config.JWTExpirationHours,
	)
	if err != nil {
		return errors.InternalError(c, err)
	}

	return c.JSON(http.StatusOK, models.AuthResponse{
		Token: token,
		User:  toUserInfo(u),
	})
}

// Me returns the current user's information
func (h *AuthHandler) Me(c echo.Context) error {
	userID, ok := c.Get("user_id").(int)
	if !ok {
		return errors.UnauthorizedError(c, "")
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	u, err := h.db.User.Get(ctx, userID)
	if err != nil {
		if ent.IsNotFound(err) {
			return errors.NotFoundError(c, "user")
		}
		return errors.DatabaseError(c, err)
	}

	return c.JSON(http.StatusOK, toUserInfo(u))
}

// Logout revokes the current JWT token
func (h *AuthHandler) Logout(c echo.Context) error {
	token, ok := c.Get("token").(string)
	if !ok || token == "" {
		return c.JSON(http.StatusUnauthorized, models.ErrorResponse{
			Error:   "missing_token",
			Message: "No token found in request",
		})
	}

	userID, _ := c.Get("user_id").(int)

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	expiration := time.Duration(h.config.JWTExpirationHours) * time.Hour
	if err := h.blacklist.Add(ctx, token, expiration); err != nil {
		return c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "logout_error",
			Message: "Failed to revoke token",
		})
	}

	if userID > 0 {
		ipAddress, userAgent := audit.GetRequestContext(c)
		go h.auditLogger.LogUserLogout(context.Background(), userID, ipAddress, userAgent)
	}

	return c.JSON(http.StatusOK, models.SuccessResponse{
		Success: true,
		Message: "Successfully logged out",
	})
}

// VerifyEmail marks the account verified using the emailed token
func (h *AuthHandler) VerifyEmail(c echo.Context) error {
	token := c.Param("token")
	if token == "" {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "missing_token",
			Message: "Verification token is required",
		})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	u, err := h.db.User.Query().
		Where(user.EmailVerificationTokenEQ(token)).
		Only(ctx)
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_token",
			Message: "Invalid or expired verification token",
		})
	}

	if u.EmailVerificationTokenExpiresAt != nil && time.Now().After(*u.EmailVerificationTokenExpiresAt) {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "expired_token",
			Message: "Verification token has expired",
		})
	}

	if u.EmailVerified {
		return c.JSON(http.StatusOK, models.SuccessResponse{
			Success: true,
			Message: "Email already verified",
		})
	}

	_, err = h.db.User.UpdateOneID(u.ID).
		SetEmailVerified(true).
		SetEmailVerifiedAt(time.Now()).
		ClearEmailVerificationToken().
		ClearEmailVerificationTokenExpiresAt().
		Save(ctx)
	if err != nil {
		return errors.DatabaseError(c, err)
	}

	return c.JSON(http.StatusOK, models.SuccessResponse{
		Success: true,
		Message: "Email verified successfully",
	})
}

// ResendVerificationEmail resends the verification email
func (h *AuthHandler) ResendVerificationEmail(c echo.Context) error {
	userID, ok := c.Get("user_id").(int)
	if !ok {
		return errors.UnauthorizedError(c, "")
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	u, err := h.db.User.Get(ctx, userID)
	if err != nil {
		return errors.NotFoundError(c, "user")
	}

	if u.EmailVerified {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "already_verified",
			Message: "Email is already verified",
		})
	}

	verificationToken, err := generateVerificationToken()
	if err != nil {
		return errors.InternalError(c, err)
	}

	_, err = h.db.User.UpdateOneID(userID).
		SetEmailVerificationToken(verificationToken).
		SetEmailVerificationTokenExpiresAt(time.Now().Add(24 * time.Hour)).
		Save(ctx)
	if err != nil {
		return errors.DatabaseError(c, err)
	}

	go h.emailService.SendVerificationEmail(u.Email, u.Pseudo, verificationToken)

	return c.JSON(http.StatusOK, models.SuccessResponse{
		Success: true,
		Message: "Verification email sent",
	})
}

func generateVerificationToken() (string, error) {
	bytes := make([]byte, 32)
	if _, err := rand.Read(bytes); err != nil {
		return "", err
	}
	return hex.EncodeToString(bytes), nil
}
