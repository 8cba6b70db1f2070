package authsvc

import (
	"errors"
	"testing"
	"time"

	models "github.com/tanavishali52/BE-saleman/internal/api/auth/models"
	"github.com/tanavishali52/BE-saleman/internal/common"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func newTestTokenService() *TokenService {
	return NewTokenService("access-secret", "refresh-secret", 0, 0)
}

func TestTokenService_AccessRoundTrip(t *testing.T) {
	ts := newTestTokenService()
	user := models.User{ID: primitive.NewObjectID(), Role: models.RoleSalesman}

	token, err := ts.IssueAccessToken(user)
	require.NoError(t, err)

	p, err := ts.ParseAccessToken(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, p.ID)
	assert.Equal(t, models.RoleSalesman, p.Role)
}

func TestTokenService_RejectsWrongSecretAndKind(t *testing.T) {
	ts := newTestTokenService()
	user := models.User{ID: primitive.NewObjectID(), Role: models.RoleAdmin}

	refresh, err := ts.IssueRefreshToken(user)
	require.NoError(t, err)

	// refresh token không dùng được như access token
	_, err = ts.ParseAccessToken(refresh)
	assert.True(t, errors.Is(err, common.ErrTokenInvalid))

	other := NewTokenService("other", "other", 0, 0)
	access, err := other.IssueAccessToken(user)
	require.NoError(t, err)
	_, err = ts.ParseAccessToken(access)
	assert.True(t, errors.Is(err, common.ErrTokenInvalid))

	_, err = ts.ParseAccessToken("not-a-jwt")
	assert.True(t, errors.Is(err, common.ErrTokenInvalid))
}

func TestTokenService_Expired(t *testing.T) {
	ts := newTestTokenService()
	issuedAt := time.Now().Add(-time.Hour)
	ts.now = func() time.Time { return issuedAt }

	user := models.User{ID: primitive.NewObjectID(), Role: models.RoleAdmin}
	token, err := ts.IssueAccessToken(user)
	require.NoError(t, err)

	ts.now = time.Now
	_, err = ts.ParseAccessToken(token)
	require.Error(t, err)

	var appErr *common.Error
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, map[string]string{"reason": "expired"}, appErr.Details)
}

func TestTokenService_RejectsUnknownRoleAndAlgNone(t *testing.T) {
	ts := newTestTokenService()

	claims := models.AccessClaims{
		ID:   primitive.NewObjectID().Hex(),
		Role: models.Role("root"),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Minute)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("access-secret"))
	require.NoError(t, err)
	_, err = ts.ParseAccessToken(token)
	assert.True(t, errors.Is(err, common.ErrTokenInvalid))

	claims.Role = models.RoleAdmin
	none, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)
	_, err = ts.ParseAccessToken(none)
	assert.True(t, errors.Is(err, common.ErrTokenInvalid))
}

func TestTokenService_RefreshRoundTrip(t *testing.T) {
	ts := newTestTokenService()
	user := models.User{ID: primitive.NewObjectID(), Role: models.RoleAdmin}

	token, err := ts.IssueRefreshToken(user)
	require.NoError(t, err)

	id, err := ts.ParseRefreshToken(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, id)

	// Hai refresh token liên tiếp phải khác nhau (jti ngẫu nhiên)
	again, err := ts.IssueRefreshToken(user)
	require.NoError(t, err)
	assert.NotEqual(t, token, again)
}
