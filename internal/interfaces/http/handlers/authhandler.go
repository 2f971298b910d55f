package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vpndash/vpndash/internal/application/user/dto"
	"github.com/vpndash/vpndash/internal/application/user/usecases"
	"github.com/vpndash/vpndash/internal/shared/errors"
	"github.com/vpndash/vpndash/internal/shared/logger"
	"github.com/vpndash/vpndash/internal/shared/utils"
)

type AuthHandler struct {
	registerUseCase     registerUseCase
	loginUseCase        loginUseCase
	refreshTokenUseCase refreshTokenUseCase
	logoutUseCase       logoutUseCase
	logger              logger.Interface
}

func NewAuthHandler(
	registerUC registerUseCase,
	loginUC loginUseCase,
	refreshTokenUC refreshTokenUseCase,
	logoutUC logoutUseCase,
	logger logger.Interface,
) *AuthHandler {
	return &AuthHandler{
		registerUseCase:     registerUC,
		loginUseCase:        loginUC,
		refreshTokenUseCase: refreshTokenUC,
		logoutUseCase:       logoutUC,
		logger:              logger,
	}
}

type RegisterRequest struct {
	Name            string `json:"name" example:"Alice"`
	Email           string `json:"email" example:"alice@example.com"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}

type LoginRequest struct {
	Email    string `json:"email" example:"alice@example.com"`
	Password string `json:"password"`
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refreshToken" binding:"required" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
}

// Register handles POST /api/auth/register
//
//	@Summary		Register a new account
//	@Tags			auth
//	@Accept			json
//	@Produce		json
//	@Param			body	body		RegisterRequest		true	"Registration data"
//	@Success		201		{object}	utils.APIResponse	"Registration successful"
//	@Failure		400		{object}	utils.APIResponse	"Missing field or password mismatch"
//	@Failure		409		{object}	utils.APIResponse	"Email already registered"
//	@Failure		429		{object}	utils.APIResponse	"Too many requests"
//	@Router			/api/auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, errors.NewBadRequestError("Invalid request body", err.Error()))
		return
	}

	newUser, err := h.registerUseCase.Execute(c.Request.Context(), usecases.RegisterCommand{
		Name:            req.Name,
		Email:           req.Email,
		Password:        req.Password,
		ConfirmPassword: req.ConfirmPassword,
	})
	if err != nil {
		h.logger.Warnw("registration failed", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, gin.H{"user": dto.ToUserResponse(newUser)}, "Registration successful")
}

// Login handles POST /api/auth/login
//
//	@Summary		Log in with email and password
//	@Tags			auth
//	@Accept			json
//	@Produce		json
//	@Param			body	body		LoginRequest										true	"Credentials"
//	@Success		200		{object}	utils.APIResponse{data=dto.LoginResponse}	"Login successful"
//	@Failure		400		{object}	utils.APIResponse									"Missing field"
//	@Failure		401		{object}	utils.APIResponse									"Invalid credentials"
//	@Failure		429		{object}	utils.APIResponse									"Too many requests"
//	@Router			/api/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, errors.NewBadRequestError("Invalid request body", err.Error()))
		return
	}

	result, err := h.loginUseCase.Execute(c.Request.Context(), usecases.LoginCommand{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Login successful", dto.LoginResponse{
		User:         dto.ToUserResponse(result.User),
		Token:        result.AccessToken,
		RefreshToken: result.RefreshToken,
		ExpiresIn:    result.ExpiresIn,
	})
}

// RefreshToken handles POST /api/auth/refresh
//
//	@Summary		Exchange a refresh token for a new token pair
//	@Tags			auth
//	@Accept			json
//	@Produce		json
//	@Param			body	body		RefreshTokenRequest								true	"Refresh token"
//	@Success		200		{object}	utils.APIResponse{data=dto.TokenResponse}	"New token pair"
//	@Failure		400		{object}	utils.APIResponse								"Missing refresh token"
//	@Failure		401		{object}	utils.APIResponse								"Invalid or expired refresh token"
//	@Router			/api/auth/refresh [post]
func (h *AuthHandler) RefreshToken(c *gin.Context) {
	var req RefreshTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, errors.NewBadRequestError("Refresh token is required", err.Error()))
		return
	}

	pair, err := h.refreshTokenUseCase.Execute(c.Request.Context(), req.RefreshToken)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", dto.TokenResponse{
		Token:        pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		ExpiresIn:    pair.ExpiresIn,
	})
}

// Logout handles POST /api/auth/logout
//
//	@Summary		Revoke the current access token and its refresh tokens
//	@Tags			auth
//	@Produce		json
//	@Security		Bearer
//	@Success		200	{object}	utils.APIResponse	"Logged out"
//	@Failure		401	{object}	utils.APIResponse	"Unauthorized"
//	@Router			/api/auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	userSID, ok := currentUserSID(c, h.logger)
	if !ok {
		return
	}
	tokenID, familyID, expiresAt := currentToken(c)

	if err := h.logoutUseCase.Execute(c.Request.Context(), usecases.LogoutCommand{
		UserSID:   userSID,
		TokenID:   tokenID,
		FamilyID:  familyID,
		ExpiresAt: expiresAt,
	}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Logged out successfully", nil)
}
