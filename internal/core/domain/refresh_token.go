package domain

import "time"

// RefreshToken is a ledger entry for an issued refresh token. The signed
// token itself is never stored; only its SHA-256 hash is kept so a leaked
// database cannot be replayed. An entry is usable while IsActive is true and
// ExpiresAt is in the future. Logout flips IsActive instead of deleting the
// row, keeping the ledger auditable.
type RefreshToken struct {
	TokenID   string
	TokenHash string
	UserID    string
	ExpiresAt time.Time
	IsActive  bool
	IPAddress *string
	UserAgent *string
	CreatedAt time.Time
}

// IsExpired reports whether the token's expiry time has passed.
func (t RefreshToken) IsExpired() bool {
	return time.Now().After(t.ExpiresAt)
}
