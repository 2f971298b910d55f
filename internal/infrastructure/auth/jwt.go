package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/vpndash/vpndash/internal/shared/biztime"
)

type TokenType string

const (
	TokenTypeAccess  TokenType = "access"
	TokenTypeRefresh TokenType = "refresh"
)

// ErrWrongTokenType is returned when a refresh token is used as an access token or vice versa.
var ErrWrongTokenType = errors.New("wrong token type")

// Claims identify the user by external SID. The registered ID (jti) lets a
// single token be revoked. FamilyID is shared by every token descended from
// one login, so revoking it ends the whole login.
type Claims struct {
	UserSID   string    `json:"user_sid"`
	TokenType TokenType `json:"token_type"`
	FamilyID  string    `json:"fid,omitempty"`
	jwt.RegisteredClaims
}

type TokenPair struct {
	AccessToken  string
	RefreshToken string
	ExpiresIn    int64
}

type JWTService struct {
	secret           []byte
	accessExpMinutes int
	refreshExpDays   int
}

func NewJWTService(secret string, accessExpMinutes, refreshExpDays int) *JWTService {
	return &JWTService{
		secret:           []byte(secret),
		accessExpMinutes: accessExpMinutes,
		refreshExpDays:   refreshExpDays,
	}
}

func (s *JWTService) sign(userSID, familyID string, tokenType TokenType, now time.Time, ttl time.Duration) (string, error) {
	claims := &Claims{
		UserSID:   userSID,
		TokenType: tokenType,
		FamilyID:  familyID,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   userSID,
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign %s token: %w", tokenType, err)
	}
	return signed, nil
}

// Generate issues an access and a refresh token for the user in a new family.
func (s *JWTService) Generate(userSID string) (*TokenPair, error) {
	return s.issue(userSID, uuid.NewString())
}

func (s *JWTService) issue(userSID, familyID string) (*TokenPair, error) {
	now := biztime.NowUTC()

	access, err := s.sign(userSID, familyID, TokenTypeAccess, now, time.Duration(s.accessExpMinutes)*time.Minute)
	if err != nil {
		return nil, err
	}

	refresh, err := s.sign(userSID, familyID, TokenTypeRefresh, now, s.RefreshLifetime())
	if err != nil {
		return nil, err
	}

	return &TokenPair{
		AccessToken:  access,
		RefreshToken: refresh,
		ExpiresIn:    int64(s.accessExpMinutes * 60),
	}, nil
}

func (s *JWTService) Verify(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))

	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims, nil
	}

	return nil, fmt.Errorf("invalid token")
}

// VerifyAccess accepts only access tokens.
func (s *JWTService) VerifyAccess(tokenString string) (*Claims, error) {
	claims, err := s.Verify(tokenString)
	if err != nil {
		return nil, err
	}
	if claims.TokenType != TokenTypeAccess {
		return nil, ErrWrongTokenType
	}
	return claims, nil
}

// Refresh verifies a refresh token and returns its claims with a new token pair
// in the same family.
func (s *JWTService) Refresh(refreshTokenString string) (*Claims, *TokenPair, error) {
	claims, err := s.Verify(refreshTokenString)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid refresh token: %w", err)
	}

	if claims.TokenType != TokenTypeRefresh {
		return nil, nil, ErrWrongTokenType
	}

	familyID := claims.FamilyID
	if familyID == "" {
		familyID = uuid.NewString()
	}
	pair, err := s.issue(claims.UserSID, familyID)
	if err != nil {
		return nil, nil, err
	}
	return claims, pair, nil
}

// RefreshLifetime is the longest any token of a family can stay valid after
// the last refresh.
func (s *JWTService) RefreshLifetime() time.Duration {
	return time.Duration(s.refreshExpDays) * 24 * time.Hour
}

// AccessExpMinutes returns the access token expiration time in minutes
func (s *JWTService) AccessExpMinutes() int {
	return s.accessExpMinutes
}
