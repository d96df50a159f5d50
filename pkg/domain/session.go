package domain

// Role is the account category. It decides which screen stack the client
// presents and which backend endpoints the account may call.
type Role string

const (
	RoleConsumer Role = "consumer"
	RoleSalon    Role = "salon"
)

// Valid returns true if the role is one of the known account categories.
func (r Role) Valid() bool {
	return r == RoleConsumer || r == RoleSalon
}

// Session is the persisted authentication state: an opaque bearer token and
// the role it was issued for. Role is meaningful only when Token is non-empty.
type Session struct {
	Token string `json:"token"`
	Role  Role   `json:"role"`
}

// Authenticated reports whether the session carries a token.
func (s Session) Authenticated() bool {
	return s.Token != ""
}

// RegistrationStatus mirrors the backend's account lifecycle. Consumers go
// pending_otp -> active; salons go pending_otp -> pending_approval -> active.
// The rejected state is backend-driven and terminal.
type RegistrationStatus string

const (
	StatusPendingOTP      RegistrationStatus = "pending_otp"
	StatusPendingApproval RegistrationStatus = "pending_approval"
	StatusActive          RegistrationStatus = "active"
	StatusRejected        RegistrationStatus = "rejected"
)
