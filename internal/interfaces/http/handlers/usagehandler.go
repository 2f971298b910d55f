package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vpndash/vpndash/internal/application/usage/dto"
	"github.com/vpndash/vpndash/internal/domain/usage"
	"github.com/vpndash/vpndash/internal/shared/logger"
	"github.com/vpndash/vpndash/internal/shared/utils"
)

type getUsageStatsUseCase interface {
	Execute(ctx context.Context, userSID string) (*usage.Stats, error)
}

type getTrendsUseCase interface {
	Execute() []usage.TrendPoint
}

type UsageHandler struct {
	getUsageStatsUseCase getUsageStatsUseCase
	getTrendsUseCase     getTrendsUseCase
	logger               logger.Interface
}

func NewUsageHandler(getUsageStatsUC getUsageStatsUseCase, getTrendsUC getTrendsUseCase, logger logger.Interface) *UsageHandler {
	return &UsageHandler{
		getUsageStatsUseCase: getUsageStatsUC,
		getTrendsUseCase:     getTrendsUC,
		logger:               logger,
	}
}

// GetStats handles GET /api/usage/stats
//
//	@Summary		Get usage statistics
//	@Tags			usage
//	@Produce		json
//	@Security		Bearer
//	@Success		200	{object}	utils.APIResponse{data=dto.UsageStatsResponse}	"Usage statistics"
//	@Failure		404	{object}	utils.APIResponse								"No usage stats"
//	@Router			/api/usage/stats [get]
func (h *UsageHandler) GetStats(c *gin.Context) {
	userSID, ok := currentUserSID(c, h.logger)
	if !ok {
		return
	}

	stats, err := h.getUsageStatsUseCase.Execute(c.Request.Context(), userSID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", dto.ToUsageStatsResponse(stats))
}

// GetTrends handles GET /api/usage/trends
//
//	@Summary		Get the hourly usage trend
//	@Tags			usage
//	@Produce		json
//	@Security		Bearer
//	@Success		200	{object}	utils.APIResponse{data=[]dto.TrendPointResponse}	"Trend points"
//	@Router			/api/usage/trends [get]
func (h *UsageHandler) GetTrends(c *gin.Context) {
	utils.SuccessResponse(c, http.StatusOK, "", dto.ToTrendResponses(h.getTrendsUseCase.Execute()))
}
