// Package models - claims của JWT thuộc domain auth.
package models

import "github.com/golang-jwt/jwt/v5"

// AccessClaims là payload của access token: {id, role}
type AccessClaims struct {
	ID   string `json:"id"`
	Role Role   `json:"role"`
	jwt.RegisteredClaims
}

// RefreshClaims là payload của refresh token: {id}
type RefreshClaims struct {
	ID string `json:"id"`
	jwt.RegisteredClaims
}

// TokenPair là cặp token trả về khi đăng nhập
type TokenPair struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}
