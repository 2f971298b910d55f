package usecases

import "github.com/vpndash/vpndash/internal/domain/server"

type ListLocationsUseCase struct {
	catalog server.Catalog
}

func NewListLocationsUseCase(catalog server.Catalog) *ListLocationsUseCase {
	return &ListLocationsUseCase{catalog: catalog}
}

func (uc *ListLocationsUseCase) Execute() []string {
	return uc.catalog.Locations()
}
