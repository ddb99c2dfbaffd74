package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"go.uber.org/zap"
)

// Options configures an Auth.
type Options struct {
	API       API
	Storage   Storage
	Navigator Navigator
	Logger    *zap.Logger
}

// Auth is the unified session: it logs in against the API, persists the
// token and identity, mirrors them into the legacy keys, and answers the
// questions the route guards ask.
type Auth struct {
	api      API
	storage  Storage
	nav      Navigator
	logger   *zap.Logger
	user     *Cell[*AuthUser]
	customer *CustomerAuth
}

// New builds an Auth and its legacy CustomerAuth over the same storage,
// restoring any identity already persisted.
func New(opts Options) *Auth {
	storage := opts.Storage
	if storage == nil {
		storage = NewMemoryStorage()
	}
	nav := opts.Navigator
	if nav == nil {
		nav = noopNavigator
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	a := &Auth{
		api:      opts.API,
		storage:  storage,
		nav:      nav,
		logger:   logger,
		customer: NewCustomerAuth(storage, nav, logger),
	}
	a.user = NewCell(a.loadUser())
	return a
}

// User is the reactive unified user cell.
func (a *Auth) User() *Cell[*AuthUser] {
	return a.user
}

// Customer is the legacy customer view sharing this session's storage.
func (a *Auth) Customer() *CustomerAuth {
	return a.customer
}

// Token returns authToken, or "" when absent.
func (a *Auth) Token() string {
	token, ok, err := a.storage.Get(KeyAuthToken)
	if err != nil {
		a.logger.Warn("read auth token", zap.Error(err))
		return ""
	}
	if !ok {
		return ""
	}
	return token
}

// IsLoggedIn reports whether authToken is present and the user cell is set.
// A missing token means logged out even if authUser is still stored.
func (a *Auth) IsLoggedIn() bool {
	return a.Token() != "" && a.user.Get() != nil
}

// IsAdmin reports whether the current user has the admin role.
func (a *Auth) IsAdmin() bool {
	u := a.user.Get()
	return u != nil && u.Role == RoleAdmin
}

// Login authenticates and replaces the stored session, then navigates to
// the role's landing page. If the API rejects the login, the stored session
// is left as it was. If writing the new session to storage fails, the whole
// session is cleared and the write error returned.
func (a *Auth) Login(ctx context.Context, username, password string) error {
	if a.api == nil {
		return errors.New("session: no API configured")
	}
	reply, err := a.api.Login(ctx, username, password)
	if err != nil {
		return err
	}

	if err := a.persist(reply); err != nil {
		a.logger.Error("persist session", zap.Error(err))
		a.clear()
		return err
	}

	user := reply.User
	a.user.Set(&user)
	a.customer.SyncFromStorage()

	if user.Role == RoleAdmin {
		a.nav.Navigate(AdminPath)
	} else {
		a.nav.Navigate(RootPath)
	}
	return nil
}

// Register creates a customer account. It does not log in.
func (a *Auth) Register(ctx context.Context, username, password string) error {
	if a.api == nil {
		return errors.New("session: no API configured")
	}
	return a.api.Register(ctx, username, password)
}

// Logout removes all six keys, clears both cells and navigates to the root.
func (a *Auth) Logout() error {
	err := a.clear()
	a.nav.Navigate(RootPath)
	return err
}

// persist writes the unified pair, clears the four legacy keys, then writes
// the legacy pair matching the role.
func (a *Auth) persist(reply *LoginReply) error {
	userJSON, err := json.Marshal(reply.User)
	if err != nil {
		return fmt.Errorf("encode user: %w", err)
	}
	legacyJSON, err := json.Marshal(CustomerUser{ID: reply.User.ID, Username: reply.User.Username})
	if err != nil {
		return fmt.Errorf("encode legacy user: %w", err)
	}

	if err := a.storage.Set(KeyAuthToken, reply.Token); err != nil {
		return fmt.Errorf("write %s: %w", KeyAuthToken, err)
	}
	if err := a.storage.Set(KeyAuthUser, string(userJSON)); err != nil {
		return fmt.Errorf("write %s: %w", KeyAuthUser, err)
	}
	if err := a.removeKeys(legacyKeys...); err != nil {
		return err
	}

	tokenKey, userKey := KeyCustomerToken, KeyCustomerUser
	if reply.User.Role == RoleAdmin {
		tokenKey, userKey = KeyAdminToken, KeyAdminUser
	}
	if err := a.storage.Set(tokenKey, reply.Token); err != nil {
		return fmt.Errorf("write %s: %w", tokenKey, err)
	}
	if err := a.storage.Set(userKey, string(legacyJSON)); err != nil {
		return fmt.Errorf("write %s: %w", userKey, err)
	}
	return nil
}

// clear removes every session key and resets both cells. Every key is
// attempted even if an earlier removal fails.
func (a *Auth) clear() error {
	err := a.removeKeys(AllKeys()...)
	a.user.Set(nil)
	a.customer.SyncFromStorage()
	return err
}

func (a *Auth) removeKeys(keys ...string) error {
	var errs []error
	for _, key := range keys {
		if err := a.storage.Remove(key); err != nil {
			errs = append(errs, fmt.Errorf("remove %s: %w", key, err))
		}
	}
	return errors.Join(errs...)
}

func (a *Auth) loadUser() *AuthUser {
	raw, ok, err := a.storage.Get(KeyAuthUser)
	if err != nil {
		a.logger.Warn("read auth user", zap.Error(err))
		return nil
	}
	if !ok {
		return nil
	}
	var u AuthUser
	if err := json.Unmarshal([]byte(raw), &u); err != nil {
		a.logger.Warn("discarding unreadable auth user", zap.Error(err))
		return nil
	}
	return &u
}
