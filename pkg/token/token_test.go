package token

import (
	"strings"
	"testing"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueVerifyRoundTrip(t *testing.T) {
	codec := NewCodec("test-secret", 60)

	tok, err := codec.Issue("42", "Alice")
	require.NoError(t, err)
	assert.Equal(t, 3, len(strings.Split(tok, ".")), "token should have three segments")

	claims, err := codec.Verify(tok)
	require.NoError(t, err)
	assert.Equal(t, "42", claims.SubjectID)
	assert.Equal(t, "Alice", claims.DisplayName)
	assert.True(t, claims.ExpiresAt.After(claims.IssuedAt.Time))
}

func TestVerifyExpired(t *testing.T) {
	codec := NewCodec("test-secret", 30)

	issuedAt := time.Now()
	codec.now = func() time.Time { return issuedAt }
	tok, err := codec.Issue("42", "Alice")
	require.NoError(t, err)

	// Just before expiry the token is still good
	codec.now = func() time.Time { return issuedAt.Add(29 * time.Minute) }
	_, err = codec.Verify(tok)
	require.NoError(t, err)

	// At and past expiry it is rejected with the expiry error specifically
	codec.now = func() time.Time { return issuedAt.Add(31 * time.Minute) }
	_, err = codec.Verify(tok)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestVerifyTamperedSignature(t *testing.T) {
	codec := NewCodec("test-secret", 60)

	tok, err := codec.Issue("42", "Alice")
	require.NoError(t, err)

	parts := strings.Split(tok, ".")
	require.Len(t, parts, 3)

	// Flip every character of the signature segment in turn; each variant
	// must fail as malformed, never as expired.
	sig := parts[2]
	for i := 0; i < len(sig); i++ {
		flipped := []byte(sig)
		if flipped[i] == 'A' {
			flipped[i] = 'B'
		} else {
			flipped[i] = 'A'
		}
		if string(flipped) == sig {
			continue
		}
		tampered := parts[0] + "." + parts[1] + "." + string(flipped)
		_, err := codec.Verify(tampered)
		assert.ErrorIs(t, err, ErrTokenMalformed, "flipped signature byte %d", i)
	}
}

func TestVerifyTamperedPayload(t *testing.T) {
	codec := NewCodec("test-secret", 60)

	tok, err := codec.Issue("42", "Alice")
	require.NoError(t, err)

	other, err := codec.Issue("43", "Mallory")
	require.NoError(t, err)

	// Splice the payload of one token onto the signature of another
	a := strings.Split(tok, ".")
	b := strings.Split(other, ".")
	spliced := a[0] + "." + b[1] + "." + a[2]

	_, err = codec.Verify(spliced)
	assert.ErrorIs(t, err, ErrTokenMalformed)
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	codec := NewCodec("test-secret", 60)
	forged := NewCodec("other-secret", 60)

	tok, err := forged.Issue("42", "Alice")
	require.NoError(t, err)

	_, err = codec.Verify(tok)
	assert.ErrorIs(t, err, ErrTokenMalformed)
}

func TestVerifyRejectsWrongAlgorithm(t *testing.T) {
	codec := NewCodec("test-secret", 60)

	// Unsigned token: alg "none" must never verify
	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, &Claims{
		SubjectID:   "42",
		DisplayName: "Alice",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})
	tok, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = codec.Verify(tok)
	assert.ErrorIs(t, err, ErrTokenMalformed)
}

func TestVerifyGarbage(t *testing.T) {
	codec := NewCodec("test-secret", 60)

	for _, garbage := range []string{"", "garbage", "a.b", "a.b.c.d", "...."} {
		_, err := codec.Verify(garbage)
		assert.ErrorIs(t, err, ErrTokenMalformed, "input %q", garbage)
	}
}
