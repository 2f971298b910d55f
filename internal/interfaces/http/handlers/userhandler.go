package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vpndash/vpndash/internal/application/user/dto"
	"github.com/vpndash/vpndash/internal/application/user/usecases"
	"github.com/vpndash/vpndash/internal/domain/user"
	"github.com/vpndash/vpndash/internal/shared/errors"
	"github.com/vpndash/vpndash/internal/shared/logger"
	"github.com/vpndash/vpndash/internal/shared/utils"
)

type getProfileUseCase interface {
	Execute(ctx context.Context, query usecases.GetProfileQuery) (*user.User, error)
}

type updateProfileUseCase interface {
	Execute(ctx context.Context, cmd usecases.UpdateProfileCommand) (*user.User, error)
}

type changePasswordUseCase interface {
	Execute(ctx context.Context, cmd usecases.ChangePasswordCommand) error
}

// UserHandler serves the caller's own profile.
type UserHandler struct {
	getProfileUseCase     getProfileUseCase
	updateProfileUseCase  updateProfileUseCase
	changePasswordUseCase changePasswordUseCase
	logger                logger.Interface
}

func NewUserHandler(
	getProfileUC getProfileUseCase,
	updateProfileUC updateProfileUseCase,
	changePasswordUC changePasswordUseCase,
	logger logger.Interface,
) *UserHandler {
	return &UserHandler{
		getProfileUseCase:     getProfileUC,
		updateProfileUseCase:  updateProfileUC,
		changePasswordUseCase: changePasswordUC,
		logger:                logger,
	}
}

type UpdateProfileRequest struct {
	Name  *string `json:"name,omitempty" example:"Alice"`
	Email *string `json:"email,omitempty" example:"alice@example.com"`
}

type ChangePasswordRequest struct {
	OldPassword string `json:"oldPassword"`
	NewPassword string `json:"newPassword"`
}

// GetProfile handles GET /api/user/profile
//
//	@Summary		Get the current user's profile
//	@Tags			user
//	@Produce		json
//	@Security		Bearer
//	@Param			userId	query		string										false	"Must name the caller when given"
//	@Success		200		{object}	utils.APIResponse{data=dto.UserResponse}	"Profile"
//	@Failure		401		{object}	utils.APIResponse							"Unauthorized"
//	@Failure		404		{object}	utils.APIResponse							"User not found"
//	@Router			/api/user/profile [get]
func (h *UserHandler) GetProfile(c *gin.Context) {
	userSID, ok := currentUserSID(c, h.logger)
	if !ok {
		return
	}

	u, err := h.getProfileUseCase.Execute(c.Request.Context(), usecases.GetProfileQuery{
		UserSID:      userSID,
		RequestedSID: c.Query("userId"),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", dto.ToUserResponse(u))
}

// UpdateProfile handles PUT /api/user/profile
//
//	@Summary		Update name and/or email
//	@Tags			user
//	@Accept			json
//	@Produce		json
//	@Security		Bearer
//	@Param			body	body		UpdateProfileRequest						true	"Fields to change"
//	@Success		200		{object}	utils.APIResponse{data=dto.UserResponse}	"Updated profile"
//	@Failure		400		{object}	utils.APIResponse							"Invalid name or email"
//	@Failure		409		{object}	utils.APIResponse							"Email already in use"
//	@Router			/api/user/profile [put]
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	userSID, ok := currentUserSID(c, h.logger)
	if !ok {
		return
	}

	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update profile", "user_id", userSID, "error", err)
		utils.ErrorResponseWithError(c, errors.NewBadRequestError("Invalid request body", err.Error()))
		return
	}

	h.logger.Infow("update profile request",
		"user_id", userSID,
		"has_name", req.Name != nil,
		"has_email", req.Email != nil)

	u, err := h.updateProfileUseCase.Execute(c.Request.Context(), usecases.UpdateProfileCommand{
		UserSID: userSID,
		Name:    req.Name,
		Email:   req.Email,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Profile updated successfully", dto.ToUserResponse(u))
}

// ChangePassword handles POST /api/user/change-password
//
//	@Summary		Change the current user's password
//	@Tags			user
//	@Accept			json
//	@Produce		json
//	@Security		Bearer
//	@Param			body	body		ChangePasswordRequest	true	"Old and new password"
//	@Success		200		{object}	utils.APIResponse		"Password changed"
//	@Failure		400		{object}	utils.APIResponse		"Missing field"
//	@Failure		401		{object}	utils.APIResponse		"Old password does not match"
//	@Router			/api/user/change-password [post]
func (h *UserHandler) ChangePassword(c *gin.Context) {
	userSID, ok := currentUserSID(c, h.logger)
	if !ok {
		return
	}

	var req ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, errors.NewBadRequestError("Invalid request body", err.Error()))
		return
	}

	if err := h.changePasswordUseCase.Execute(c.Request.Context(), usecases.ChangePasswordCommand{
		UserSID:     userSID,
		OldPassword: req.OldPassword,
		NewPassword: req.NewPassword,
	}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Password changed successfully", nil)
}
