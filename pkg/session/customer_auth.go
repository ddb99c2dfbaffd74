package session

import (
	"encoding/json"
	"errors"

	"go.uber.org/zap"
)

// CustomerAuth is the legacy customer-only view of the session. It reads
// customerToken and customerUser and never looks at the unified keys.
type CustomerAuth struct {
	storage Storage
	nav     Navigator
	logger  *zap.Logger
	user    *Cell[*CustomerUser]
}

// NewCustomerAuth loads the legacy view from storage.
func NewCustomerAuth(storage Storage, nav Navigator, logger *zap.Logger) *CustomerAuth {
	if nav == nil {
		nav = noopNavigator
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	c := &CustomerAuth{storage: storage, nav: nav, logger: logger}
	c.user = NewCell(c.loadUser())
	return c
}

// User is the reactive legacy user cell.
func (c *CustomerAuth) User() *Cell[*CustomerUser] {
	return c.user
}

// Token returns customerToken, or "" when absent.
func (c *CustomerAuth) Token() string {
	token, ok, err := c.storage.Get(KeyCustomerToken)
	if err != nil {
		c.logger.Warn("read customer token", zap.Error(err))
		return ""
	}
	if !ok {
		return ""
	}
	return token
}

// IsLoggedIn reports whether customerToken is present and the legacy cell holds a user.
func (c *CustomerAuth) IsLoggedIn() bool {
	return c.Token() != "" && c.user.Get() != nil
}

// SyncFromStorage reloads the legacy cell from customerUser.
func (c *CustomerAuth) SyncFromStorage() {
	c.user.Set(c.loadUser())
}

// Logout removes the customer pair only and navigates to the root.
func (c *CustomerAuth) Logout() error {
	err := errors.Join(
		c.storage.Remove(KeyCustomerToken),
		c.storage.Remove(KeyCustomerUser),
	)
	c.user.Set(nil)
	c.nav.Navigate(RootPath)
	return err
}

func (c *CustomerAuth) loadUser() *CustomerUser {
	raw, ok, err := c.storage.Get(KeyCustomerUser)
	if err != nil {
		c.logger.Warn("read customer user", zap.Error(err))
		return nil
	}
	if !ok {
		return nil
	}
	var u CustomerUser
	if err := json.Unmarshal([]byte(raw), &u); err != nil {
		c.logger.Warn("discarding unreadable customer user", zap.Error(err))
		return nil
	}
	return &u
}
