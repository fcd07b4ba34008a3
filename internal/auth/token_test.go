package auth

import (
	"testing"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManager_IssueAndVerify(t *testing.T) {
	m := NewManager("secret", time.Hour)

	token, err := m.Issue("a@x.com", "Alice")
	require.NoError(t, err)

	claims, err := m.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", claims.Email)
	assert.Equal(t, "Alice", claims.Name)
	assert.Equal(t, "a@x.com", claims.Subject)
}

func TestManager_DefaultTTLIsOneHour(t *testing.T) {
	m := NewManager("secret", 0)
	issuedAt := time.Date(2026, 1, 1, 10, 0, 0, 0, time.UTC)
	m.now = func() time.Time { return issuedAt }

	token, err := m.Issue("a@x.com", "")
	require.NoError(t, err)

	claims, err := m.Verify(token)
	require.NoError(t, err)
	assert.WithinDuration(t, issuedAt.Add(time.Hour), claims.ExpiresAt.Time, 0)
	assert.WithinDuration(t, issuedAt, claims.IssuedAt.Time, 0)
}

func TestManager_Verify_Expired(t *testing.T) {
	m := NewManager("secret", time.Hour)
	issuedAt := time.Now().Add(-2 * time.Hour)
	m.now = func() time.Time { return issuedAt }

	token, err := m.Issue("a@x.com", "")
	require.NoError(t, err)

	m.now = time.Now
	_, err = m.Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestManager_Verify_WrongSecret(t *testing.T) {
	token, err := NewManager("secret", time.Hour).Issue("a@x.com", "")
	require.NoError(t, err)

	_, err = NewManager("other", time.Hour).Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestManager_Verify_Garbage(t *testing.T) {
	_, err := NewManager("secret", time.Hour).Verify("not.a.token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestManager_Verify_Empty(t *testing.T) {
	_, err := NewManager("secret", time.Hour).Verify("")
	assert.ErrorIs(t, err, ErrMissingToken)
}

func TestManager_Verify_NoExpiry(t *testing.T) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{Email: "a@x.com"})
	signed, err := token.SignedString([]byte("secret"))
	require.NoError(t, err)

	_, err = NewManager("secret", time.Hour).Verify(signed)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestManager_Verify_NoEmail(t *testing.T) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour))},
	})
	signed, err := token.SignedString([]byte("secret"))
	require.NoError(t, err)

	_, err = NewManager("secret", time.Hour).Verify(signed)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestManager_Issue_RequiresEmail(t *testing.T) {
	_, err := NewManager("secret", time.Hour).Issue(" ", "")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestBearerToken(t *testing.T) {
	tests := []struct {
		name    string
		header  string
		want    string
		wantErr bool
	}{
		{name: "valid", header: "Bearer abc", want: "abc"},
		{name: "lowercase scheme", header: "bearer abc", want: "abc"},
		{name: "empty", header: "", wantErr: true},
		{name: "no token", header: "Bearer ", wantErr: true},
		{name: "wrong scheme", header: "Basic abc", wantErr: true},
		{name: "bare token", header: "abc", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := BearerToken(tt.header)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrMissingToken)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
