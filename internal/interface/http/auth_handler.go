package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oualidazemray/Bellavista1.0-sub002/config"
	"github.com/oualidazemray/Bellavista1.0-sub002/internal/application"
	"github.com/oualidazemray/Bellavista1.0-sub002/internal/domain/entity"
	"github.com/oualidazemray/Bellavista1.0-sub002/internal/interface/middleware"
	"github.com/oualidazemray/Bellavista1.0-sub002/pkg/helpers"
	"github.com/oualidazemray/Bellavista1.0-sub002/pkg/response"
	"github.com/oualidazemray/Bellavista1.0-sub002/pkg/validation"
)

type AuthHandler struct {
	Svc     *application.AuthService
	Logger  *logrus.Logger
	Cfg     *config.Config
	Cookies *helpers.CookieManager
}

func NewAuthHandler(svc *application.AuthService, logger *logrus.Logger, cfg *config.Config) *AuthHandler {
	return &AuthHandler{
		Svc:     svc,
		Logger:  logger,
		Cfg:     cfg,
		Cookies: helpers.NewCookie(cfg.CookieDomain, cfg.CookieSecure),
	}
}

type signupRequest struct {
	FirstName      string `json:"firstName" binding:"required"`
	LastName       string `json:"lastName" binding:"required"`
	Email          string `json:"email" binding:"required,email"`
	Phone          string `json:"phone"`
	Password       string `json:"password" binding:"required"`
	VerifyPassword string `json:"verifyPassword" binding:"required"`
}

func userProjection(u *entity.User) gin.H {
	return gin.H{
		"id":       u.ID,
		"email":    u.Email,
		"name":     u.Name,
		"phone":    u.Phone,
		"role":     u.Role,
		"verified": u.IsVerified,
	}
}

// Signup POST /api/signup
// Creates an unverified CLIENT account and sends the verification email.
// A failed email send still answers 201: the account exists, the client
// can re-request verification.
func (h *AuthHandler) Signup(c *gin.Context) {
	var req signupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	if len(req.Password) < 8 {
		response.Error[any](c, http.StatusBadRequest, "Password must be at least 8 characters", nil)
		return
	}
	if req.Password != req.VerifyPassword {
		response.Error[any](c, http.StatusBadRequest, "Passwords do not match", nil)
		return
	}

	u, err := h.Svc.Signup(c.Request.Context(), application.SignupInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
		Password:  req.Password,
	})
	switch {
	case errors.Is(err, application.ErrEmailTaken):
		response.Error[any](c, http.StatusBadRequest, "Email already registered", nil)
		return
	case errors.Is(err, application.ErrMailNotSent):
		// User row is committed; report the partial success.
		response.Success(c, http.StatusCreated, userProjection(u),
			"account created; verification email could not be sent", gin.H{"email_sent": false})
		return
	case err != nil:
		h.Logger.WithError(err).WithField("email", req.Email).Error("signup failed")
		response.Error[any](c, http.StatusInternalServerError, "internal error", err.Error())
		return
	}
	response.Success(c, http.StatusCreated, userProjection(u),
		"account created; verification email sent", gin.H{"email_sent": true})
}

// Verify GET /api/verify?token=...
// Redeems a verification token and redirects to the success page.
func (h *AuthHandler) Verify(c *gin.Context) {
	token := strings.TrimSpace(c.Query("token"))
	if token == "" {
		response.Error[any](c, http.StatusBadRequest, "Missing verification token", nil)
		return
	}
	_, err := h.Svc.ConsumeVerification(c.Request.Context(), token)
	switch {
	case errors.Is(err, application.ErrTokenExpired):
		response.Error[any](c, http.StatusBadRequest, "Verification token expired", nil)
		return
	case errors.Is(err, application.ErrTokenNotFound):
		response.Error[any](c, http.StatusBadRequest, "Invalid verification token", nil)
		return
	case err != nil:
		h.Logger.WithError(err).Error("verification failed")
		response.Error[any](c, http.StatusInternalServerError, "internal error", err.Error())
		return
	}
	c.Redirect(http.StatusFound, h.Cfg.VerifiedRedirectURL)
}

// VerifyResend POST /api/verify/resend (auth required, any role)
// Re-issues a verification token for accounts whose token expired.
func (h *AuthHandler) VerifyResend(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserIDKey)
	u, err := h.Svc.Repo.GetByID(c.Request.Context(), uid)
	if err != nil {
		response.Error[any](c, http.StatusNotFound, "user not found", nil)
		return
	}
	if u.IsVerified {
		response.Success(c, http.StatusOK, gin.H{"already_verified": true}, "already verified", nil)
		return
	}
	if err := h.Svc.IssueVerification(c.Request.Context(), u); err != nil {
		if errors.Is(err, application.ErrMailNotSent) {
			response.Success[any](c, http.StatusOK, gin.H{"email_sent": false}, "verification token reissued; email could not be sent", nil)
			return
		}
		h.Logger.WithError(err).WithField("user_id", uid).Error("verification reissue failed")
		response.Error[any](c, http.StatusInternalServerError, "internal error", err.Error())
		return
	}
	response.Success[any](c, http.StatusOK, gin.H{"email_sent": true}, "verification email sent", nil)
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Login POST /api/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	res, token, exp, err := h.Svc.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		// Same answer for unknown email and wrong password.
		response.Error[any](c, http.StatusUnauthorized, "invalid credentials", nil)
		return
	}
	h.Cookies.SetSession(c, token, exp)
	response.Success(c, http.StatusOK, res, "login successful", gin.H{"expires_at": exp})
}

// Logout POST /api/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	h.Cookies.Clear(c)
	response.Success[any](c, http.StatusOK, gin.H{"logged_out": true}, "logged out", nil)
}

type resetInitRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// ResetInit POST /api/auth/reset/init
// Always answers OK so the endpoint cannot enumerate accounts.
func (h *AuthHandler) ResetInit(c *gin.Context) {
	var req resetInitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	if _, err := h.Svc.ResetInit(c.Request.Context(), req.Email); err != nil && !errors.Is(err, application.ErrMailNotSent) {
		h.Logger.WithError(err).Error("reset init failed")
		response.Error[any](c, http.StatusInternalServerError, "internal error", err.Error())
		return
	}
	response.Success[any](c, http.StatusOK, gin.H{"requested": true}, "if the account exists, a reset email was sent", nil)
}

type resetConfirmRequest struct {
	Token       string `json:"token" binding:"required"`
	NewPassword string `json:"newPassword" binding:"required,pwd"`
}

// ResetConfirm POST /api/auth/reset/confirm
func (h *AuthHandler) ResetConfirm(c *gin.Context) {
	var req resetConfirmRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	if err := h.Svc.ResetConfirm(c.Request.Context(), req.Token, req.NewPassword); err != nil {
		if errors.Is(err, application.ErrTokenNotFound) {
			response.Error[any](c, http.StatusBadRequest, "invalid or expired token", nil)
			return
		}
		h.Logger.WithError(err).Error("reset confirm failed")
		response.Error[any](c, http.StatusInternalServerError, "internal error", err.Error())
		return
	}
	response.Success[any](c, http.StatusOK, gin.H{"reset": true}, "password updated", nil)
}
