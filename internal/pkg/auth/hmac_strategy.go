package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// HMACStrategy implements token creation/verification using HMAC-SHA256
// signatures over a compact colon-separated payload.
type HMACStrategy struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewHMACStrategy builds HMACStrategy with provided secret and options.
func NewHMACStrategy(secret string, opts Options) *HMACStrategy {
	ttl := opts.TTL
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &HMACStrategy{secret: []byte(secret), ttl: ttl, now: time.Now}
}

// IssueToken generates a signed session token for the identity.
func (s *HMACStrategy) IssueToken(identity Identity) (string, error) {
	issued := s.now()
	expires := issued.Add(s.ttl).Unix()
	// Username is base64-encoded so the payload stays colon-delimited.
	name := base64.RawURLEncoding.EncodeToString([]byte(identity.Username))
	payload := fmt.Sprintf("%d:%s:%d:%d", identity.ID, name, issued.Unix(), expires)
	token := fmt.Sprintf("%s:%s", payload, s.sign(payload))
	return base64.StdEncoding.EncodeToString([]byte(token)), nil
}

// ParseToken validates the token and returns the embedded identity. The
// signature is checked before expiry so tampered tokens never report Expired.
func (s *HMACStrategy) ParseToken(token string) (Identity, error) {
	raw, err := base64.StdEncoding.DecodeString(token)
	if err != nil {
		return Identity{}, ErrTokenInvalid
	}

	parts := strings.Split(string(raw), ":")
	if len(parts) != 5 {
		return Identity{}, ErrTokenInvalid
	}

	payload := strings.Join(parts[:4], ":")
	if !hmac.Equal([]byte(s.sign(payload)), []byte(parts[4])) {
		return Identity{}, ErrTokenInvalid
	}

	userID, err := strconv.ParseInt(parts[0], 10, 64)
	if err != nil {
		return Identity{}, ErrTokenInvalid
	}

	name, err := base64.RawURLEncoding.DecodeString(parts[1])
	if err != nil {
		return Identity{}, ErrTokenInvalid
	}

	expires, err := strconv.ParseInt(parts[3], 10, 64)
	if err != nil {
		return Identity{}, ErrTokenInvalid
	}

	if time.Unix(expires, 0).Before(s.now()) {
		return Identity{}, ErrTokenExpired
	}

	return Identity{ID: userID, Username: string(name)}, nil
}

func (s *HMACStrategy) Name() string {
	return "hmac"
}

func (s *HMACStrategy) sign(payload string) string {
	mac := hmac.New(sha256.New, s.secret)
	mac.Write([]byte(payload))
	return base64.StdEncoding.EncodeToString(mac.Sum(nil))
}
