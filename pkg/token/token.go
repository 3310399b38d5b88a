package token

import (
	"errors"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
)

// Verification failures collapse into exactly two cases. The messages are part
// of the HTTP contract and are returned to clients verbatim.
var (
	ErrTokenExpired   = errors.New("Token has expired")
	ErrTokenMalformed = errors.New("Invalid token")
)

// Claims is the identity payload carried by an access token.
type Claims struct {
	SubjectID   string `json:"id"`
	DisplayName string `json:"name"`
	jwt.RegisteredClaims
}

// Codec mints and verifies signed access tokens. The secret is fixed at
// construction; rotating it invalidates every previously issued token.
type Codec struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewCodec builds a codec signing with HS256.
func NewCodec(secret string, ttlMinutes int) *Codec {
	if ttlMinutes <= 0 {
		ttlMinutes = 60
	}
	return &Codec{
		secret: []byte(secret),
		ttl:    time.Duration(ttlMinutes) * time.Minute,
		now:    time.Now,
	}
}

// Issue signs a token for the subject, expiring after the configured TTL.
func (c *Codec) Issue(subjectID, displayName string) (string, error) {
	now := c.now()
	claims := &Claims{
		SubjectID:   subjectID,
		DisplayName: displayName,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(c.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return tok.SignedString(c.secret)
}

// Verify parses the token, checks the signature and the expiry, and returns
// the embedded claims. Expiry is reported as ErrTokenExpired; every other
// failure (bad signature, wrong algorithm, garbage input) is ErrTokenMalformed
// so that forged tokens learn nothing from the response. Strict decoding makes
// any altered byte of a segment fail, including base64 trailing bits.
func (c *Codec) Verify(tokenString string) (*Claims, error) {
	parsed, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if t.Method != jwt.SigningMethodHS256 {
			return nil, errors.New("unexpected signing method")
		}
		return c.secret, nil
	}, jwt.WithTimeFunc(c.now), jwt.WithStrictDecoding())
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrTokenMalformed
	}

	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid {
		return nil, ErrTokenMalformed
	}
	return claims, nil
}
