package usecases

import (
	"github.com/vpndash/vpndash/internal/domain/server"
	"github.com/vpndash/vpndash/internal/shared/errors"
)

type GetRecommendedServerUseCase struct {
	catalog server.Catalog
}

func NewGetRecommendedServerUseCase(catalog server.Catalog) *GetRecommendedServerUseCase {
	return &GetRecommendedServerUseCase{catalog: catalog}
}

// Execute samples the catalog and picks the least loaded online server.
func (uc *GetRecommendedServerUseCase) Execute() (server.Server, error) {
	best, ok := server.Recommend(uc.catalog.List())
	if !ok {
		return server.Server{}, errors.NewNotFoundError("No online server available")
	}
	return best, nil
}
