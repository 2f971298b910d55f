package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/vpndash/vpndash/internal/infrastructure/auth"
	"github.com/vpndash/vpndash/internal/shared/constants"
	"github.com/vpndash/vpndash/internal/shared/logger"
	"github.com/vpndash/vpndash/internal/shared/utils"
)

type AuthMiddleware struct {
	jwtService *auth.JWTService
	revoker    auth.TokenRevoker
	logger     logger.Interface
}

func NewAuthMiddleware(jwtService *auth.JWTService, revoker auth.TokenRevoker, logger logger.Interface) *AuthMiddleware {
	if revoker == nil {
		revoker = auth.NoopTokenRevoker{}
	}
	return &AuthMiddleware{
		jwtService: jwtService,
		revoker:    revoker,
		logger:     logger,
	}
}

// RequireAuth accepts only a bearer access token and stores the caller's SID
// under constants.ContextKeyUserID.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader(constants.HeaderAuthorization)
		if authHeader == "" {
			utils.ErrorResponse(c, http.StatusUnauthorized, "missing authorization token")
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
			utils.ErrorResponse(c, http.StatusUnauthorized, "invalid authorization header format")
			c.Abort()
			return
		}

		claims, err := m.jwtService.VerifyAccess(parts[1])
		if err != nil {
			m.logger.Warnw("failed to verify token", "error", err)
			utils.ErrorResponse(c, http.StatusUnauthorized, "invalid or expired token")
			c.Abort()
			return
		}

		revoked, err := auth.IsClaimsRevoked(c.Request.Context(), m.revoker, claims)
		if err != nil {
			// revocation store outage does not lock everybody out
			m.logger.Errorw("failed to check token revocation", "error", err)
		} else if revoked {
			utils.ErrorResponse(c, http.StatusUnauthorized, "token has been revoked")
			c.Abort()
			return
		}

		c.Set(constants.ContextKeyUserID, claims.UserSID)
		c.Set(constants.ContextKeyTokenID, claims.ID)
		c.Set(constants.ContextKeyTokenFamily, claims.FamilyID)
		if claims.ExpiresAt != nil {
			c.Set(constants.ContextKeyTokenExpiresAt, claims.ExpiresAt.Time)
		}

		c.Next()
	}
}
