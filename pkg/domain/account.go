package domain

import "time"

// Credentials is a transient login input. Never persisted.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     Role   `json:"role"`
}

// Registration is a transient sign-up input. A business license file is
// required iff Role is salon; the file itself travels as a multipart field,
// not in this struct.
type Registration struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     Role   `json:"role"`
}

// OTPChallenge identifies a pending registration awaiting a 6-digit code.
// Expiry is backend-owned.
type OTPChallenge struct {
	Email     string    `json:"email"`
	Role      Role      `json:"role"`
	IssuedAt  time.Time `json:"issued_at,omitempty"`
	ExpiresAt time.Time `json:"expires_at,omitempty"`
}
