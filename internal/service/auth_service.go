package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/spec-kit/animal-catalog/internal/auth"
	"github.com/spec-kit/animal-catalog/internal/config"
	"github.com/spec-kit/animal-catalog/internal/domain"
	"github.com/spec-kit/animal-catalog/internal/events"
	"github.com/spec-kit/animal-catalog/internal/observability"
	"github.com/spec-kit/animal-catalog/internal/repository"
)

// InvalidCredentialsMessage is the single message returned for every failed
// authentication, whether the username or the password was wrong.
const InvalidCredentialsMessage = "Invalid credentials"

var (
	// ErrMissingCredentials means username or password was empty.
	ErrMissingCredentials = errors.New("username and password required")
	// ErrInvalidCredentials covers unknown usernames and wrong passwords alike.
	ErrInvalidCredentials = errors.New(InvalidCredentialsMessage)
	// ErrSigningUnavailable means the server has no token signing secret.
	ErrSigningUnavailable = auth.ErrSigningUnavailable
	// ErrUsernameTaken means the customer store already holds the username.
	ErrUsernameTaken = errors.New("username already exists")
	// ErrPasswordTooLong means a new password exceeds what bcrypt can hash.
	ErrPasswordTooLong = auth.ErrPasswordTooLong
)

// LoginResult is the outcome of a successful login.
type LoginResult struct {
	Identity  domain.Identity
	Token     string
	ExpiresAt time.Time
}

// AuthService resolves logins against the customer and admin stores and
// registers new customers.
type AuthService struct {
	customers  repository.CustomerRepository
	admins     repository.AdminRepository
	tokens     *auth.TokenIssuer
	dispatcher events.Dispatcher
	metrics    *observability.Metrics
	logger     *zap.Logger
	bcryptCost int
	decoyHash  string
	verify     func(plain, hashed string) bool
}

// AuthDependencies encapsulates repo requirements for auth service.
type AuthDependencies struct {
	CustomerRepo repository.CustomerRepository
	AdminRepo    repository.AdminRepository
	Dispatcher   events.Dispatcher
	Metrics      *observability.Metrics
	Logger       *zap.Logger
}

// NewAuthService builds the service.
func NewAuthService(cfg config.Config, deps AuthDependencies) *AuthService {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AuthService{
		customers:  deps.CustomerRepo,
		admins:     deps.AdminRepo,
		tokens:     auth.NewTokenIssuer(cfg.Auth.JWTSecret),
		dispatcher: deps.Dispatcher,
		metrics:    deps.Metrics,
		logger:     logger,
		bcryptCost: cfg.Auth.BcryptCost,
		decoyHash:  auth.DecoyHash(cfg.Auth.BcryptCost),
		verify:     auth.VerifyPassword,
	}
}

// Login authenticates username/password.
//
// The customer store is consulted first and decides the outcome whenever it
// holds the username: a wrong customer password fails even if an admin with
// the same username would have matched. Only usernames unknown to the
// customer store are looked up in the admin store. A username unknown to
// both stores is still checked against a decoy hash, so it costs as much as
// a wrong password.
func (s *AuthService) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	if username == "" || password == "" {
		return nil, ErrMissingCredentials
	}
	if !s.tokens.Configured() {
		return nil, ErrSigningUnavailable
	}

	customer, err := s.customers.FindByUsername(ctx, username)
	switch {
	case err == nil:
		if !s.verify(password, customer.PasswordHash) {
			return nil, s.reject(ctx, username, "customer_password_mismatch")
		}
		return s.grant(ctx, customer, domain.RoleCustomer)
	case errors.Is(err, pgx.ErrNoRows):
	default:
		return nil, fmt.Errorf("lookup customer: %w", err)
	}

	admin, err := s.admins.FindByUsername(ctx, username)
	switch {
	case err == nil:
		if !s.verify(password, admin.PasswordHash) {
			return nil, s.reject(ctx, username, "admin_password_mismatch")
		}
		return s.grant(ctx, admin, domain.RoleAdmin)
	case errors.Is(err, pgx.ErrNoRows):
		s.verify(password, s.decoyHash)
		return nil, s.reject(ctx, username, "unknown_username")
	default:
		return nil, fmt.Errorf("lookup admin: %w", err)
	}
}

// RegisterCustomer creates a customer account. It does not log the customer in.
// Usernames are only checked against the customer store.
func (s *AuthService) RegisterCustomer(ctx context.Context, username, password string) (*domain.Customer, error) {
	if username == "" || password == "" {
		return nil, ErrMissingCredentials
	}
	if len(password) > auth.MaxPasswordBytes {
		return nil, ErrPasswordTooLong
	}

	exists, err := s.customers.Exists(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("check customer: %w", err)
	}
	if exists {
		return nil, ErrUsernameTaken
	}

	hash, err := auth.HashPassword(password, s.bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	customer := &domain.Customer{
		ID:           uuid.NewString(),
		Username:     username,
		PasswordHash: hash,
	}
	if err := s.customers.Create(ctx, customer); err != nil {
		if errors.Is(err, repository.ErrDuplicateUsername) {
			return nil, ErrUsernameTaken
		}
		return nil, fmt.Errorf("create customer: %w", err)
	}

	s.publish(ctx, events.NewEvent(events.EventCustomerRegistered, username,
		events.CustomerRegisteredPayload{CustomerID: customer.ID}))
	return customer, nil
}

// TokenIssuer exposes the underlying issuer for middleware usage.
func (s *AuthService) TokenIssuer() *auth.TokenIssuer {
	return s.tokens
}

func (s *AuthService) grant(ctx context.Context, record *domain.CredentialRecord, role domain.Role) (*LoginResult, error) {
	identity := domain.Identity{ID: record.ID, Username: record.Username, Role: role}

	token, exp, err := s.tokens.Issue(auth.IdentityClaims{
		Sub:      identity.ID,
		Role:     identity.Role,
		Username: identity.Username,
	})
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}

	s.metrics.RecordLogin(string(role))
	s.publish(ctx, events.NewEvent(events.EventLoginSucceeded, identity.Username,
		events.LoginSucceededPayload{SubjectID: identity.ID, Role: role}))
	return &LoginResult{Identity: identity, Token: token, ExpiresAt: exp}, nil
}

func (s *AuthService) reject(ctx context.Context, username, reason string) error {
	s.metrics.RecordLogin("invalid")
	s.publish(ctx, events.NewEvent(events.EventLoginFailed, username,
		events.LoginFailedPayload{Reason: reason}))
	return ErrInvalidCredentials
}

func (s *AuthService) publish(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	if err := s.dispatcher.Publish(ctx, event); err != nil {
		s.logger.Warn("auth event handler failed", zap.String("event_type", string(event.Type)), zap.Error(err))
	}
}
