package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/vpndash/vpndash/internal/shared/constants"
	"github.com/vpndash/vpndash/internal/shared/logger"
	"github.com/vpndash/vpndash/internal/shared/utils"
)

// currentUserSID reads the user set by the auth middleware. It writes a 401 and
// returns false when the request carries no identity.
func currentUserSID(c *gin.Context, log logger.Interface) (string, bool) {
	v, exists := c.Get(constants.ContextKeyUserID)
	if !exists {
		log.Warnw("user_id not found in context", "path", c.FullPath())
		utils.ErrorResponse(c, http.StatusUnauthorized, constants.ErrMsgUnauthorized)
		return "", false
	}

	sid, ok := v.(string)
	if !ok || sid == "" {
		log.Error("invalid user_id type in context")
		utils.ErrorResponse(c, http.StatusUnauthorized, constants.ErrMsgUnauthorized)
		return "", false
	}
	return sid, true
}

// currentToken returns the jti, family and expiry of the access token the
// auth middleware accepted.
func currentToken(c *gin.Context) (tokenID, familyID string, expiresAt time.Time) {
	exp, _ := c.Get(constants.ContextKeyTokenExpiresAt)
	expiresAt, _ = exp.(time.Time)
	return c.GetString(constants.ContextKeyTokenID), c.GetString(constants.ContextKeyTokenFamily), expiresAt
}
