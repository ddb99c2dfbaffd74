package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
)

const defaultRequestTimeout = 15 * time.Second

// API is the remote side of a session.
type API interface {
	Login(ctx context.Context, username, password string) (*LoginReply, error)
	Register(ctx context.Context, username, password string) error
}

// LoginReply is a validated successful login response.
type LoginReply struct {
	Token string
	User  AuthUser
}

// RequestError is a failed API call. Message is the server's error text
// when it sent one, otherwise "<operation> failed (<status>)".
type RequestError struct {
	Status  int
	Message string
}

func (e *RequestError) Error() string {
	return e.Message
}

type credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type envelope struct {
	OK    bool      `json:"ok"`
	Token string    `json:"token"`
	User  *AuthUser `json:"user"`
	Error string    `json:"error"`
}

// APIClient calls the catalog API over HTTP.
type APIClient struct {
	baseURL string
	timeout time.Duration
}

// NewAPIClient targets the server at baseURL, e.g. "http://localhost:3000".
func NewAPIClient(baseURL string) *APIClient {
	return &APIClient{baseURL: strings.TrimRight(baseURL, "/"), timeout: defaultRequestTimeout}
}

// WithTimeout sets the per-request timeout used when ctx has no deadline.
func (c *APIClient) WithTimeout(d time.Duration) *APIClient {
	if d > 0 {
		c.timeout = d
	}
	return c
}

// Login posts credentials to /api/login.
func (c *APIClient) Login(ctx context.Context, username, password string) (*LoginReply, error) {
	status, data, err := c.post(ctx, "/api/login", credentials{Username: username, Password: password})
	if err != nil {
		return nil, fmt.Errorf("login request: %w", err)
	}

	if !isSuccess(status) || data == nil || !data.OK || data.Token == "" || data.User == nil || !validRole(data.User.Role) {
		return nil, failure(status, data, "Login failed")
	}
	return &LoginReply{Token: data.Token, User: *data.User}, nil
}

// Register posts credentials to /api/customers/register.
func (c *APIClient) Register(ctx context.Context, username, password string) error {
	status, data, err := c.post(ctx, "/api/customers/register", credentials{Username: username, Password: password})
	if err != nil {
		return fmt.Errorf("register request: %w", err)
	}

	if !isSuccess(status) || data == nil || !data.OK {
		return failure(status, data, "Registration failed")
	}
	return nil
}

// post sends body as JSON. A non-JSON reply yields a nil envelope, not an error.
func (c *APIClient) post(ctx context.Context, path string, body any) (int, *envelope, error) {
	if err := ctx.Err(); err != nil {
		return 0, nil, err
	}

	timeout := c.timeout
	if deadline, ok := ctx.Deadline(); ok {
		timeout = time.Until(deadline)
		if timeout <= 0 {
			return 0, nil, context.DeadlineExceeded
		}
	}

	agent := fiber.Post(c.baseURL + path).JSON(body).Timeout(timeout)
	status, raw, errs := agent.Bytes()
	if len(errs) > 0 {
		return 0, nil, errors.Join(errs...)
	}

	var data envelope
	if err := json.Unmarshal(raw, &data); err != nil {
		return status, nil, nil
	}
	return status, &data, nil
}

func failure(status int, data *envelope, op string) *RequestError {
	if data != nil && data.Error != "" {
		return &RequestError{Status: status, Message: data.Error}
	}
	return &RequestError{Status: status, Message: fmt.Sprintf("%s (%d)", op, status)}
}

func isSuccess(status int) bool {
	return status >= 200 && status < 300
}

func validRole(role string) bool {
	return role == RoleCustomer || role == RoleAdmin
}
