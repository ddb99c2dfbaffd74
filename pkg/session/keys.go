package session

// Storage keys shared with existing clients. Do not rename.
const (
	KeyAuthToken     = "authToken"
	KeyAuthUser      = "authUser"
	KeyCustomerToken = "customerToken"
	KeyCustomerUser  = "customerUser"
	KeyAdminToken    = "adminToken"
	KeyAdminUser     = "adminUser"
)

// Navigation targets.
const (
	RootPath  = "/"
	AdminPath = "/admin"
	LoginPath = "/login"
)

// Role names as issued by the server.
const (
	RoleCustomer = "customer"
	RoleAdmin    = "admin"
)

var legacyKeys = []string{KeyCustomerToken, KeyCustomerUser, KeyAdminToken, KeyAdminUser}

// AllKeys lists every key a session may write.
func AllKeys() []string {
	return append([]string{KeyAuthToken, KeyAuthUser}, legacyKeys...)
}

// AuthUser is the unified identity stored under authUser.
type AuthUser struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

// CustomerUser is the role-less identity stored under customerUser and adminUser.
type CustomerUser struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}
