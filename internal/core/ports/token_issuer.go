package ports

import (
	"time"

	"github.com/tpi-backend/e-commerce-api/internal/core/domain"
)

// Claims is the decoded payload of a verified token.
type Claims struct {
	Email     string
	Role      domain.Role
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// TokenIssuer mints and verifies signed, time-bounded identity tokens.
// Tokens are stateless: anyone holding the signing key can verify offline,
// and there is no revocation before expiry.
type TokenIssuer interface {
	Issue(email string, role domain.Role) (string, error)
	// Verify returns domain.ErrInvalidToken when the token is malformed, the
	// signature does not check out, or the expiry has passed.
	Verify(token string) (*Claims, error)
}
