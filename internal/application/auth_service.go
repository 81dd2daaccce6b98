package application

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/oualidazemray/Bellavista1.0-sub002/config"
	"github.com/oualidazemray/Bellavista1.0-sub002/internal/domain/entity"
	repo "github.com/oualidazemray/Bellavista1.0-sub002/internal/domain/repository"
	"github.com/oualidazemray/Bellavista1.0-sub002/pkg/helpers"
	"github.com/oualidazemray/Bellavista1.0-sub002/pkg/mailer"
)

// AuthService owns signup, login, email verification, and password reset.
type AuthService struct {
	Repo   repo.UserRepository
	JWT    *helpers.JWTManager
	Redis  *redis.Client
	Logger *logrus.Logger
	Pub    *helpers.RabbitPublisher
	Cfg    *config.Config
}

func NewAuthService(r repo.UserRepository, jwt *helpers.JWTManager, rdb *redis.Client, logger *logrus.Logger, pub *helpers.RabbitPublisher, cfg *config.Config) *AuthService {
	return &AuthService{Repo: r, JWT: jwt, Redis: rdb, Logger: logger, Pub: pub, Cfg: cfg}
}

// LoginResponse is the identity projection handed back to the client.
type LoginResponse struct {
	UserID string      `json:"user_id"`
	Email  string      `json:"email"`
	Name   string      `json:"name"`
	Role   entity.Role `json:"role"`
}

func nowRFC3339() string {
	return time.Now().UTC().Format(time.RFC3339Nano)
}

// Authenticate validates email/password. Unknown email and wrong password
// both come back as ErrInvalidCredentials; the distinction only reaches
// the log.
func (s *AuthService) Authenticate(ctx context.Context, email, password string) (*entity.User, error) {
	u, err := s.Repo.GetByEmail(ctx, email)
	if err != nil || u == nil {
		if s.Logger != nil {
			s.Logger.WithField("reason", "unknown email").Debug("authentication failed")
		}
		return nil, ErrInvalidCredentials
	}
	if !helpers.CompareHashAndPassword(u.Password, password) {
		if s.Logger != nil {
			s.Logger.WithField("reason", "password mismatch").Debug("authentication failed")
		}
		return nil, ErrInvalidCredentials
	}
	return u, nil
}

// Login authenticates and issues a session token. A best-effort session
// hash is written to Redis for ops visibility; the token itself is the
// sole credential and there is no server-side revocation list.
func (s *AuthService) Login(ctx context.Context, email, password string) (*LoginResponse, string, time.Time, error) {
	u, err := s.Authenticate(ctx, email, password)
	if err != nil {
		return nil, "", time.Time{}, err
	}
	token, exp, err := s.JWT.GenerateSessionToken(u)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("user_id", u.ID).Error("generate session token failed")
		}
		return nil, "", time.Time{}, err
	}

	if s.Redis != nil {
		key := helpers.KeySession(u.ID)
		pipe := s.Redis.Pipeline()
		pipe.HSet(ctx, key, map[string]any{
			"user_id":    u.ID,
			"email":      u.Email,
			"name":       u.Name,
			"role":       string(u.Role),
			"logged_in":  true,
			"created_at": nowRFC3339(),
		})
		pipe.Expire(ctx, key, s.JWT.SessionTTL)
		if _, rErr := pipe.Exec(ctx); rErr != nil && s.Logger != nil {
			s.Logger.WithError(rErr).WithField("key", key).Warn("redis pipeline failed")
		}
	}

	resp := &LoginResponse{UserID: u.ID, Email: u.Email, Name: u.Name, Role: u.Role}
	return resp, token, exp, nil
}

// SignupInput carries the validated signup form. Name-level validation
// (password length, confirmation match) happens at the handler so the
// messages stay stable; uniqueness is enforced here.
type SignupInput struct {
	FirstName string
	LastName  string
	Email     string
	Phone     string
	Password  string
}

// Signup creates an unverified CLIENT account and issues its verification
// token. The user row is committed before any email is attempted, so a
// failed send returns the created user together with ErrMailNotSent.
func (s *AuthService) Signup(ctx context.Context, in SignupInput) (*entity.User, error) {
	hash, err := helpers.HashPassword(in.Password)
	if err != nil {
		return nil, err
	}
	u := &entity.User{
		Email:    in.Email,
		Password: hash,
		Name:     strings.TrimSpace(in.FirstName + " " + in.LastName),
		Phone:    in.Phone,
		Role:     entity.RoleClient,
	}
	if err := s.Repo.Create(ctx, u); err != nil {
		return nil, err
	}
	if err := s.IssueVerification(ctx, u); err != nil {
		return u, err
	}
	return u, nil
}

// IssueVerification generates a fresh opaque token, stores it with its
// expiry on the user row, and enqueues the verification email. Reissuing
// replaces any previous token.
func (s *AuthService) IssueVerification(ctx context.Context, u *entity.User) error {
	tok, err := helpers.GenOpaqueToken(32)
	if err != nil {
		return err
	}
	expiresAt := time.Now().Add(s.Cfg.VerificationTTL)
	if err := s.Repo.SetVerificationToken(ctx, u.ID, tok, expiresAt); err != nil {
		return err
	}

	link := s.Cfg.VerifyEmailURL + "?token=" + tok
	return s.enqueueMail(ctx, u, mailer.TemplateVerifyEmail, link, s.Cfg.VerificationTTL)
}

// ConsumeVerification redeems a verification token. The repository claims
// and clears it in one statement, so replaying a consumed token reports
// ErrTokenNotFound and an outdated one ErrTokenExpired.
func (s *AuthService) ConsumeVerification(ctx context.Context, token string) (string, error) {
	userID, err := s.Repo.ConsumeVerificationToken(ctx, token)
	if err != nil {
		return "", err
	}
	if s.Logger != nil {
		s.Logger.WithField("user_id", userID).Info("email verified")
	}
	return userID, nil
}

// ResetInit issues a password reset token for the given email. The empty
// return on unknown email is deliberate: callers answer OK either way so
// the endpoint cannot be used to enumerate accounts.
func (s *AuthService) ResetInit(ctx context.Context, email string) (string, error) {
	u, err := s.Repo.GetByEmail(ctx, email)
	if err != nil || u == nil {
		if s.Logger != nil {
			s.Logger.WithField("reason", "unknown email").Debug("reset requested")
		}
		return "", nil
	}
	tok, err := helpers.GenOpaqueToken(32)
	if err != nil {
		return "", err
	}
	if s.Redis == nil {
		return "", errors.New("reset unavailable: redis not configured")
	}
	if err := s.Redis.Set(ctx, helpers.KeyResetToken(tok), u.ID, s.Cfg.ResetTTL).Err(); err != nil {
		return "", err
	}
	link := s.Cfg.ResetPasswordURL + "?token=" + tok
	if err := s.enqueueMail(ctx, u, mailer.TemplateResetPassword, link, s.Cfg.ResetTTL); err != nil {
		return link, err
	}
	return link, nil
}

// ResetConfirm redeems a reset token and updates the password hash.
func (s *AuthService) ResetConfirm(ctx context.Context, token, newPassword string) error {
	if s.Redis == nil {
		return errors.New("reset unavailable: redis not configured")
	}
	uid, err := s.Redis.Get(ctx, helpers.KeyResetToken(token)).Result()
	if err != nil || uid == "" {
		return ErrTokenNotFound
	}
	hash, err := helpers.HashPassword(newPassword)
	if err != nil {
		return err
	}
	if err := s.Repo.UpdatePassword(ctx, uid, hash); err != nil {
		return err
	}
	s.Redis.Del(ctx, helpers.KeyResetToken(token))
	return nil
}

func (s *AuthService) enqueueMail(ctx context.Context, u *entity.User, template, link string, ttl time.Duration) error {
	if s.Cfg != nil && !s.Cfg.MailSendEnabled {
		return nil
	}
	if s.Pub == nil {
		return ErrMailNotSent
	}
	job := mailer.EmailJob{
		To:       u.Email,
		Template: template,
		Data: map[string]any{
			"Name":      u.Name,
			"Link":      link,
			"ExpiresIn": ttl.String(),
		},
	}
	if err := s.Pub.PublishJSON(ctx, job); err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithFields(logrus.Fields{"user_id": u.ID, "template": template}).Warn("failed to enqueue email")
		}
		return ErrMailNotSent
	}
	return nil
}
