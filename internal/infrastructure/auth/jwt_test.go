package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestJWTService_GenerateAndVerify(t *testing.T) {
	svc := NewJWTService("test-secret", 15, 7)

	pair, err := svc.Generate("usr_abc")
	require.NoError(t, err)
	assert.Equal(t, int64(900), pair.ExpiresIn)

	claims, err := svc.VerifyAccess(pair.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "usr_abc", claims.UserSID)
	assert.NotEmpty(t, claims.ID)

	_, err = svc.VerifyAccess(pair.RefreshToken)
	assert.ErrorIs(t, err, ErrWrongTokenType)
}

func TestJWTService_WrongSecret(t *testing.T) {
	pair, err := NewJWTService("one", 15, 7).Generate("usr_abc")
	require.NoError(t, err)

	_, err = NewJWTService("two", 15, 7).Verify(pair.AccessToken)
	assert.Error(t, err)
}

func TestJWTService_Expired(t *testing.T) {
	svc := NewJWTService("test-secret", 15, 7)
	past := time.Now().Add(-time.Hour)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{
		UserSID:   "usr_abc",
		TokenType: TokenTypeAccess,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(past),
			IssuedAt:  jwt.NewNumericDate(past.Add(-time.Minute)),
		},
	})
	signed, err := token.SignedString([]byte("test-secret"))
	require.NoError(t, err)

	_, err = svc.Verify(signed)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestJWTService_Refresh(t *testing.T) {
	svc := NewJWTService("test-secret", 15, 7)
	pair, err := svc.Generate("usr_abc")
	require.NoError(t, err)

	claims, next, err := svc.Refresh(pair.RefreshToken)
	require.NoError(t, err)
	assert.Equal(t, "usr_abc", claims.UserSID)
	assert.NotEqual(t, pair.AccessToken, next.AccessToken)
	require.NotEmpty(t, claims.FamilyID)

	nextClaims, err := svc.VerifyAccess(next.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, claims.FamilyID, nextClaims.FamilyID)

	other, err := svc.Generate("usr_abc")
	require.NoError(t, err)
	otherClaims, err := svc.VerifyAccess(other.AccessToken)
	require.NoError(t, err)
	assert.NotEqual(t, claims.FamilyID, otherClaims.FamilyID)

	_, _, err = svc.Refresh(pair.AccessToken)
	assert.ErrorIs(t, err, ErrWrongTokenType)
}

func TestBcryptPasswordHasher(t *testing.T) {
	h := NewBcryptPasswordHasher(4)

	hash, err := h.Hash("pw1234")
	require.NoError(t, err)
	assert.NotEqual(t, "pw1234", hash)

	assert.NoError(t, h.Verify("pw1234", hash))
	assert.ErrorIs(t, h.Verify("pw12345", hash), ErrPasswordMismatch)
	assert.ErrorIs(t, h.Verify("pw1234", "not-a-hash"), ErrPasswordMismatch)
}

func TestBcryptPasswordHasher_NeedsRehash(t *testing.T) {
	weak := NewBcryptPasswordHasher(4)
	hash, err := weak.Hash("pw1234")
	require.NoError(t, err)

	assert.False(t, weak.NeedsRehash(hash))
	assert.True(t, NewBcryptPasswordHasher(5).NeedsRehash(hash))
	assert.False(t, weak.NeedsRehash("not-a-hash"))
}

func TestNewBcryptPasswordHasher_ClampsCost(t *testing.T) {
	assert.Equal(t, bcrypt.DefaultCost, NewBcryptPasswordHasher(0).cost)
	assert.Equal(t, bcrypt.DefaultCost, NewBcryptPasswordHasher(bcrypt.MaxCost+1).cost)
}
