package service

import "transbook/shared/constant"

// FallbackAccount is one of the demo identities accepted when the primary
// store cannot answer a login.
type FallbackAccount struct {
	Password string
	Role     string
	Name     string
}

// FallbackCredentials is the demo credential table, keyed by email. It is
// constructed once and injected into the auth service rather than living as
// a package-level table.
type FallbackCredentials map[string]FallbackAccount

func NewFallbackCredentials() FallbackCredentials {
	return FallbackCredentials{
		"user@example.com": {
			Password: "user123",
			Role:     constant.RoleUser,
			Name:     "John Doe",
		},
		"admin@example.com": {
			Password: "admin123",
			Role:     constant.RoleAdmin,
			Name:     "Admin User",
		},
	}
}
