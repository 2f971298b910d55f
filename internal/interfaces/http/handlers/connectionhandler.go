package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/vpndash/vpndash/internal/application/connection/dto"
	"github.com/vpndash/vpndash/internal/application/connection/usecases"
	"github.com/vpndash/vpndash/internal/domain/connection"
	"github.com/vpndash/vpndash/internal/shared/constants"
	"github.com/vpndash/vpndash/internal/shared/errors"
	"github.com/vpndash/vpndash/internal/shared/logger"
	"github.com/vpndash/vpndash/internal/shared/utils"
)

type listLogsUseCase interface {
	Execute(ctx context.Context, query usecases.ListLogsQuery) ([]*connection.Log, error)
}

type getConnectionStatsUseCase interface {
	Execute(ctx context.Context, userSID string) (connection.Summary, error)
}

// ConnectionHandler serves the caller's connection history.
type ConnectionHandler struct {
	listLogsUseCase           listLogsUseCase
	getConnectionStatsUseCase getConnectionStatsUseCase
	logger                    logger.Interface
}

func NewConnectionHandler(listLogsUC listLogsUseCase, getStatsUC getConnectionStatsUseCase, logger logger.Interface) *ConnectionHandler {
	return &ConnectionHandler{
		listLogsUseCase:           listLogsUC,
		getConnectionStatsUseCase: getStatsUC,
		logger:                    logger,
	}
}

// ListLogs handles GET /api/connections/logs
//
//	@Summary		List connection logs, newest first
//	@Tags			connections
//	@Produce		json
//	@Security		Bearer
//	@Param			limit	query		int														false	"Maximum entries (1-50, default 50)"
//	@Success		200		{object}	utils.APIResponse{data=[]dto.ConnectionLogResponse}	"Connection logs"
//	@Failure		400		{object}	utils.APIResponse										"Invalid limit"
//	@Router			/api/connections/logs [get]
func (h *ConnectionHandler) ListLogs(c *gin.Context) {
	userSID, ok := currentUserSID(c, h.logger)
	if !ok {
		return
	}

	limit := constants.DefaultLogLimit
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			utils.ErrorResponseWithError(c, errors.NewBadRequestError("Invalid limit", "limit must be an integer"))
			return
		}
		limit = n
	}

	logs, err := h.listLogsUseCase.Execute(c.Request.Context(), usecases.ListLogsQuery{
		UserSID: userSID,
		Limit:   limit,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", dto.ToConnectionLogResponses(logs))
}

// GetStats handles GET /api/connections/stats
//
//	@Summary		Summarize the caller's connection history
//	@Tags			connections
//	@Produce		json
//	@Security		Bearer
//	@Success		200	{object}	utils.APIResponse{data=dto.ConnectionStatsResponse}	"Connection summary"
//	@Router			/api/connections/stats [get]
func (h *ConnectionHandler) GetStats(c *gin.Context) {
	userSID, ok := currentUserSID(c, h.logger)
	if !ok {
		return
	}

	summary, err := h.getConnectionStatsUseCase.Execute(c.Request.Context(), userSID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", dto.ToConnectionStatsResponse(summary))
}
