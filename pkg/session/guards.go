package session

// State is what the guards read. *Auth implements it.
type State interface {
	IsLoggedIn() bool
	IsAdmin() bool
}

// AuthGuard permits logged-in users and sends everyone else to the login page.
func AuthGuard(state State, nav Navigator) bool {
	if state.IsLoggedIn() {
		return true
	}
	nav.Navigate(LoginPath)
	return false
}

// AdminGuard permits logged-in admins and sends everyone else to the root.
func AdminGuard(state State, nav Navigator) bool {
	if state.IsLoggedIn() && state.IsAdmin() {
		return true
	}
	nav.Navigate(RootPath)
	return false
}

// Guard decides, synchronously, whether a navigation may proceed.
type Guard func() bool

// RequireLogin binds AuthGuard to a session.
func RequireLogin(state State, nav Navigator) Guard {
	return func() bool { return AuthGuard(state, nav) }
}

// RequireAdmin binds AdminGuard to a session.
func RequireAdmin(state State, nav Navigator) Guard {
	return func() bool { return AdminGuard(state, nav) }
}

// Chain runs guards in order and stops at the first denial.
func Chain(guards ...Guard) Guard {
	return func() bool {
		for _, g := range guards {
			if !g() {
				return false
			}
		}
		return true
	}
}
