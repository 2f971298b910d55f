package handlers

import (
	"context"
	stderrors "errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vpndash/vpndash/internal/application/connection/dto"
	"github.com/vpndash/vpndash/internal/application/connection/usecases"
	"github.com/vpndash/vpndash/internal/domain/connection"
	"github.com/vpndash/vpndash/internal/shared/errors"
	"github.com/vpndash/vpndash/internal/shared/logger"
	"github.com/vpndash/vpndash/internal/shared/utils"
)

type startSessionUseCase interface {
	Execute(ctx context.Context, cmd usecases.StartSessionCommand) (*connection.Connection, error)
}

type stopSessionUseCase interface {
	Execute(ctx context.Context, cmd usecases.StopSessionCommand) (*connection.Connection, error)
}

type getStatusUseCase interface {
	Execute(ctx context.Context, userSID string) (usecases.StatusResult, error)
}

// VPNHandler opens and closes VPN sessions.
type VPNHandler struct {
	startSessionUseCase startSessionUseCase
	stopSessionUseCase  stopSessionUseCase
	getStatusUseCase    getStatusUseCase
	logger              logger.Interface
}

func NewVPNHandler(
	startSessionUC startSessionUseCase,
	stopSessionUC stopSessionUseCase,
	getStatusUC getStatusUseCase,
	logger logger.Interface,
) *VPNHandler {
	return &VPNHandler{
		startSessionUseCase: startSessionUC,
		stopSessionUseCase:  stopSessionUC,
		getStatusUseCase:    getStatusUC,
		logger:              logger,
	}
}

type StartSessionRequest struct {
	ServerID string `json:"serverId" example:"server1"`
}

type StopSessionRequest struct {
	ConnectionID string `json:"connectionId" example:"conn_8Fk2mQ1xZp"`
}

// Start handles POST /api/vpn/start
//
//	@Summary		Start a VPN session
//	@Tags			vpn
//	@Accept			json
//	@Produce		json
//	@Security		Bearer
//	@Param			body	body		StartSessionRequest									false	"Server to connect to (default server1)"
//	@Success		200		{object}	utils.APIResponse{data=dto.StartSessionResponse}	"Session started"
//	@Failure		400		{object}	utils.APIResponse									"Unknown server"
//	@Failure		409		{object}	utils.APIResponse									"Already connected"
//	@Router			/api/vpn/start [post]
func (h *VPNHandler) Start(c *gin.Context) {
	userSID, ok := currentUserSID(c, h.logger)
	if !ok {
		return
	}

	// The body is optional.
	var req StartSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil && !stderrors.Is(err, io.EOF) {
		utils.ErrorResponseWithError(c, errors.NewBadRequestError("Invalid request body", err.Error()))
		return
	}

	conn, err := h.startSessionUseCase.Execute(c.Request.Context(), usecases.StartSessionCommand{
		UserSID:  userSID,
		ServerID: req.ServerID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "VPN connected", dto.ToStartSessionResponse(conn))
}

// Stop handles POST /api/vpn/stop
//
//	@Summary		Stop a VPN session
//	@Tags			vpn
//	@Accept			json
//	@Produce		json
//	@Security		Bearer
//	@Param			body	body		StopSessionRequest								true	"Connection to close"
//	@Success		200		{object}	utils.APIResponse{data=dto.StopSessionResponse}	"Session stopped"
//	@Failure		400		{object}	utils.APIResponse								"Missing connection id"
//	@Failure		404		{object}	utils.APIResponse								"Connection not found"
//	@Failure		409		{object}	utils.APIResponse								"Already stopped"
//	@Router			/api/vpn/stop [post]
func (h *VPNHandler) Stop(c *gin.Context) {
	userSID, ok := currentUserSID(c, h.logger)
	if !ok {
		return
	}

	var req StopSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, errors.NewBadRequestError("Invalid request body", err.Error()))
		return
	}
	if req.ConnectionID == "" {
		utils.ErrorResponseWithError(c, errors.NewBadRequestError("Connection ID is required"))
		return
	}

	conn, err := h.stopSessionUseCase.Execute(c.Request.Context(), usecases.StopSessionCommand{
		UserSID:      userSID,
		ConnectionID: req.ConnectionID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "VPN disconnected", dto.ToStopSessionResponse(conn))
}

// Status handles GET /api/vpn/status
//
//	@Summary		Get the current VPN session
//	@Tags			vpn
//	@Produce		json
//	@Security		Bearer
//	@Success		200	{object}	utils.APIResponse{data=dto.StatusResponse}	"Session status"
//	@Router			/api/vpn/status [get]
func (h *VPNHandler) Status(c *gin.Context) {
	userSID, ok := currentUserSID(c, h.logger)
	if !ok {
		return
	}

	result, err := h.getStatusUseCase.Execute(c.Request.Context(), userSID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	resp := dto.StatusResponse{IsConnected: result.IsConnected()}
	if result.IsConnected() {
		conn := result.Connection
		connectionTime := result.ConnectionTime
		dataUsed := conn.DataUsed()
		resp.ConnectionID = conn.SID()
		resp.ServerID = conn.ServerID()
		resp.ConnectionTime = &connectionTime
		resp.DataUsed = &dataUsed
	}

	utils.SuccessResponse(c, http.StatusOK, "", resp)
}
