package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vpndash/vpndash/internal/application/server/dto"
	"github.com/vpndash/vpndash/internal/domain/server"
	"github.com/vpndash/vpndash/internal/shared/utils"
)

type listServersUseCase interface {
	Execute() []server.Server
}

type listLocationsUseCase interface {
	Execute() []string
}

type getRecommendedServerUseCase interface {
	Execute() (server.Server, error)
}

// ServerHandler exposes the server catalog. None of its routes need a user.
type ServerHandler struct {
	listServersUseCase    listServersUseCase
	listLocationsUseCase  listLocationsUseCase
	getRecommendedUseCase getRecommendedServerUseCase
}

func NewServerHandler(listUC listServersUseCase, locationsUC listLocationsUseCase, recommendedUC getRecommendedServerUseCase) *ServerHandler {
	return &ServerHandler{
		listServersUseCase:    listUC,
		listLocationsUseCase:  locationsUC,
		getRecommendedUseCase: recommendedUC,
	}
}

// List handles GET /api/servers
//
//	@Summary		List VPN servers
//	@Tags			servers
//	@Produce		json
//	@Success		200	{object}	utils.APIResponse{data=[]dto.ServerResponse}	"Servers"
//	@Router			/api/servers [get]
func (h *ServerHandler) List(c *gin.Context) {
	utils.SuccessResponse(c, http.StatusOK, "", dto.ToServerResponses(h.listServersUseCase.Execute()))
}

// Locations handles GET /api/servers/locations
//
//	@Summary		List server locations
//	@Tags			servers
//	@Produce		json
//	@Success		200	{object}	utils.APIResponse{data=[]string}	"Location labels"
//	@Router			/api/servers/locations [get]
func (h *ServerHandler) Locations(c *gin.Context) {
	utils.SuccessResponse(c, http.StatusOK, "", h.listLocationsUseCase.Execute())
}

// Recommended handles GET /api/servers/recommended
//
//	@Summary		Get the least loaded online server
//	@Tags			servers
//	@Produce		json
//	@Success		200	{object}	utils.APIResponse{data=dto.ServerResponse}	"Recommended server"
//	@Failure		404	{object}	utils.APIResponse							"No server online"
//	@Router			/api/servers/recommended [get]
func (h *ServerHandler) Recommended(c *gin.Context) {
	s, err := h.getRecommendedUseCase.Execute()
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", dto.ToServerResponse(s))
}
