package domain

// Role identifies which identity store authenticated a subject.
type Role string

const (
	RoleCustomer Role = "customer"
	RoleAdmin    Role = "admin"
)

// CredentialRecord is the read-only view of an account used to authenticate it.
type CredentialRecord struct {
	ID           string
	Username     string
	PasswordHash string
}

// Identity is the authenticated subject returned by a successful login.
type Identity struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Role     Role   `json:"role"`
}
