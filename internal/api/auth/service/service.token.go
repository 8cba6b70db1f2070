package authsvc

import (
	"errors"
	"time"

	models "github.com/tanavishali52/BE-saleman/internal/api/auth/models"
	"github.com/tanavishali52/BE-saleman/internal/common"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Thời hạn mặc định của token
const (
	DefaultAccessTokenTTL  = 15 * time.Minute
	DefaultRefreshTokenTTL = 7 * 24 * time.Hour
)

// TokenService ký và kiểm tra access/refresh token (HS256)
type TokenService struct {
	accessSecret  []byte
	refreshSecret []byte
	accessTTL     time.Duration
	refreshTTL    time.Duration
	now           func() time.Time
}

// NewTokenService tạo TokenService. TTL <= 0 dùng giá trị mặc định.
func NewTokenService(accessSecret, refreshSecret string, accessTTL, refreshTTL time.Duration) *TokenService {
	if accessTTL <= 0 {
		accessTTL = DefaultAccessTokenTTL
	}
	if refreshTTL <= 0 {
		refreshTTL = DefaultRefreshTokenTTL
	}
	return &TokenService{
		accessSecret:  []byte(accessSecret),
		refreshSecret: []byte(refreshSecret),
		accessTTL:     accessTTL,
		refreshTTL:    refreshTTL,
		now:           time.Now,
	}
}

func (s *TokenService) registeredClaims(ttl time.Duration) jwt.RegisteredClaims {
	now := s.now()
	return jwt.RegisteredClaims{
		ID:        uuid.NewString(),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	}
}

// IssueAccessToken ký access token với payload {id, role}
func (s *TokenService) IssueAccessToken(user models.User) (string, error) {
	claims := models.AccessClaims{
		ID:               user.ID.Hex(),
		Role:             user.Role,
		RegisteredClaims: s.registeredClaims(s.accessTTL),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.accessSecret)
}

// IssueRefreshToken ký refresh token với payload {id}
func (s *TokenService) IssueRefreshToken(user models.User) (string, error) {
	claims := models.RefreshClaims{
		ID:               user.ID.Hex(),
		RegisteredClaims: s.registeredClaims(s.refreshTTL),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.refreshSecret)
}

func (s *TokenService) parserOptions() []jwt.ParserOption {
	return []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	}
}

// ParseAccessToken kiểm tra chữ ký, hạn dùng và role của access token.
// Mọi lỗi đều trả về common.ErrTokenInvalid.
func (s *TokenService) ParseAccessToken(token string) (models.Principal, error) {
	var claims models.AccessClaims
	_, err := jwt.ParseWithClaims(token, &claims, func(*jwt.Token) (interface{}, error) {
		return s.accessSecret, nil
	}, s.parserOptions()...)
	if err != nil {
		return models.Principal{}, common.WithDetails(common.ErrTokenInvalid, tokenErrorReason(err))
	}

	id, err := primitive.ObjectIDFromHex(claims.ID)
	if err != nil || !claims.Role.Valid() {
		return models.Principal{}, common.ErrTokenInvalid
	}
	return models.Principal{ID: id, Role: claims.Role}, nil
}

// ParseRefreshToken kiểm tra chữ ký và hạn dùng của refresh token, trả về user ID
func (s *TokenService) ParseRefreshToken(token string) (primitive.ObjectID, error) {
	var claims models.RefreshClaims
	_, err := jwt.ParseWithClaims(token, &claims, func(*jwt.Token) (interface{}, error) {
		return s.refreshSecret, nil
	}, s.parserOptions()...)
	if err != nil {
		return primitive.NilObjectID, common.WithDetails(common.ErrTokenInvalid, tokenErrorReason(err))
	}

	id, err := primitive.ObjectIDFromHex(claims.ID)
	if err != nil {
		return primitive.NilObjectID, common.ErrTokenInvalid
	}
	return id, nil
}

// tokenErrorReason trả về lý do ngắn gọn (không lộ chi tiết chữ ký)
func tokenErrorReason(err error) map[string]string {
	reason := "invalid"
	if errors.Is(err, jwt.ErrTokenExpired) {
		reason = "expired"
	}
	return map[string]string{"reason": reason}
}
