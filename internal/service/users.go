package service

import (
	"context"
	"errors"
	"strings"

	"skillport-api/internal/apperr"
	"skillport-api/internal/models"
	"skillport-api/internal/storage"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const (
	HealthStatusUp       = "UP"
	HealthStatusDegraded = "DEGRADED"
)

// UserFields is the writable part of a user. Nil fields are left untouched.
type UserFields struct {
	FirstName *string `json:"firstName"`
	LastName  *string `json:"lastName"`
	Email     *string `json:"email"`
	Password  *string `json:"password"`
	Role      *string `json:"role"`
	Bio       *string `json:"bio"`
	Location  *string `json:"location"`
	Github    *string `json:"github"`
	Linkedin  *string `json:"linkedin"`
	Website   *string `json:"website"`

	Language          *string `json:"language"`
	DarkMode          *bool   `json:"darkMode"`
	NotifMessages     *bool   `json:"notifMessages"`
	NotifApplications *bool   `json:"notifApplications"`
	NotifMarketing    *bool   `json:"notifMarketing"`
}

type Credentials struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type Health struct {
	Status  string `json:"status"`
	Users   *int   `json:"users,omitempty"`
	Message string `json:"message,omitempty"`
}

type UserService struct {
	repo             UserRepository
	limiter          LoginLimiter
	bcryptCost       int
	loginMaxAttempts int64
	logger           *zap.Logger
}

// NewUserService builds the service. limiter may be nil, which disables
// login attempt limiting.
func NewUserService(repo UserRepository, limiter LoginLimiter, bcryptCost, loginMaxAttempts int, logger *zap.Logger) *UserService {
	return &UserService{
		repo:             repo,
		limiter:          limiter,
		bcryptCost:       bcryptCost,
		loginMaxAttempts: int64(loginMaxAttempts),
		logger:           logger,
	}
}

func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// List returns every user, or only those whose role matches role ignoring case.
func (s *UserService) List(ctx context.Context, role string) ([]models.User, error) {
	var (
		users []models.User
		err   error
	)

	if role = strings.TrimSpace(role); role == "" {
		users, err = s.repo.ListUsers(ctx)
	} else {
		users, err = s.repo.ListUsersByRole(ctx, role)
	}
	if err != nil {
		return nil, apperr.Server("Failed to load users", err)
	}

	return users, nil
}

func (s *UserService) Signup(ctx context.Context, in UserFields) (*models.User, error) {
	var email string
	if in.Email != nil {
		email = NormalizeEmail(*in.Email)
	}
	if email == "" {
		return nil, apperr.Validation("Email is required")
	}

	existing, err := s.repo.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, apperr.Server("Error saving user: "+err.Error(), err)
	}
	if existing != nil {
		return nil, apperr.Conflict("User already exists with this email")
	}

	user := models.NewUser()
	if err := s.apply(user, in); err != nil {
		return nil, err
	}
	user.Email = email

	if err := s.repo.CreateUser(ctx, user); err != nil {
		// lost a race against a concurrent signup for the same email
		if errors.Is(err, storage.ErrDuplicate) {
			return nil, apperr.Conflict("User already exists with this email")
		}
		return nil, apperr.Server("Error saving user: "+err.Error(), err)
	}

	s.logger.Info("user signed up",
		zap.Int64("user_id", user.ID),
		zap.String("role", user.Role),
	)

	return user, nil
}

func (s *UserService) Login(ctx context.Context, creds Credentials) (*models.User, error) {
	email := NormalizeEmail(creds.Email)
	if email == "" || creds.Password == "" {
		return nil, apperr.Validation("Email and password are required")
	}

	if s.limiter != nil {
		failures, err := s.limiter.LoginFailures(ctx, email)
		if err != nil {
			s.logger.Warn("failed to read login failures", zap.Error(err))
		} else if failures >= s.loginMaxAttempts {
			s.logger.Warn("login blocked",
				zap.String("email", email),
				zap.Int64("failures", failures),
			)
			return nil, apperr.RateLimited("Too many failed login attempts, try again later")
		}
	}

	user, err := s.repo.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, apperr.Server("Login failed", err)
	}

	if user == nil || bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(creds.Password)) != nil {
		s.registerFailure(ctx, email)
		return nil, apperr.Auth("Invalid email or password")
	}

	if s.limiter != nil {
		if err := s.limiter.ResetLoginFailures(ctx, email); err != nil {
			s.logger.Warn("failed to reset login failures", zap.Error(err))
		}
	}

	s.logger.Info("user logged in", zap.Int64("user_id", user.ID))
	return user, nil
}

func (s *UserService) registerFailure(ctx context.Context, email string) {
	if s.limiter == nil {
		return
	}

	failures, err := s.limiter.RegisterLoginFailure(ctx, email)
	if err != nil {
		s.logger.Warn("failed to register login failure", zap.Error(err))
		return
	}

	s.logger.Info("login failed",
		zap.String("email", email),
		zap.Int64("failures", failures),
	)
}

func (s *UserService) Get(ctx context.Context, userID int64) (*models.User, error) {
	user, err := s.repo.GetUser(ctx, userID)
	if err != nil {
		return nil, apperr.Server("Failed to load user", err)
	}
	if user == nil {
		return nil, apperr.NotFound("User not found")
	}

	return user, nil
}

// Update overwrites the fields present in in. An empty password keeps the old one.
func (s *UserService) Update(ctx context.Context, userID int64, in UserFields) (*models.User, error) {
	user, err := s.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	if in.Email != nil {
		email := NormalizeEmail(*in.Email)
		if email == "" {
			return nil, apperr.Validation("Email cannot be empty")
		}
		if email != user.Email {
			other, err := s.repo.GetUserByEmail(ctx, email)
			if err != nil {
				return nil, apperr.Server("Failed to update user", err)
			}
			if other != nil {
				return nil, apperr.Conflict("User already exists with this email")
			}
		}
		in.Email = &email
	}

	if err := s.apply(user, in); err != nil {
		return nil, err
	}

	if err := s.repo.UpdateUser(ctx, user); err != nil {
		switch {
		case errors.Is(err, storage.ErrNotFound):
			return nil, apperr.NotFound("User not found")
		case errors.Is(err, storage.ErrDuplicate):
			return nil, apperr.Conflict("User already exists with this email")
		default:
			return nil, apperr.Server("Failed to update user", err)
		}
	}

	return user, nil
}

func (s *UserService) Delete(ctx context.Context, userID int64) error {
	deleted, err := s.repo.DeleteUser(ctx, userID)
	if err != nil {
		return apperr.Server("Failed to delete user", err)
	}
	if !deleted {
		return apperr.NotFound("User not found")
	}

	return nil
}

// Health never fails; an unreachable database is reported as degraded.
func (s *UserService) Health(ctx context.Context) Health {
	count, err := s.repo.CountUsers(ctx)
	if err != nil {
		s.logger.Warn("health check failed", zap.Error(err))
		return Health{Status: HealthStatusDegraded, Message: "database unreachable"}
	}

	return Health{Status: HealthStatusUp, Users: &count}
}

func (s *UserService) apply(user *models.User, in UserFields) error {
	setString(&user.FirstName, in.FirstName)
	setString(&user.LastName, in.LastName)
	setString(&user.Email, in.Email)
	setString(&user.Role, in.Role)
	setString(&user.Bio, in.Bio)
	setString(&user.Location, in.Location)
	setString(&user.Github, in.Github)
	setString(&user.Linkedin, in.Linkedin)
	setString(&user.Website, in.Website)
	setString(&user.Language, in.Language)

	setBool(&user.DarkMode, in.DarkMode)
	setBool(&user.NotifMessages, in.NotifMessages)
	setBool(&user.NotifApplications, in.NotifApplications)
	setBool(&user.NotifMarketing, in.NotifMarketing)

	if in.Password != nil && *in.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(*in.Password), s.bcryptCost)
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return apperr.Validation("Password must be at most 72 bytes")
		}
		if err != nil {
			return apperr.Server("Failed to hash password", err)
		}
		user.Password = string(hash)
	}

	return nil
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}

func setBool(dst *bool, v *bool) {
	if v != nil {
		*dst = *v
	}
}
