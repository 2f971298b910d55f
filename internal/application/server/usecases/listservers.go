package usecases

import "github.com/vpndash/vpndash/internal/domain/server"

type ListServersUseCase struct {
	catalog server.Catalog
}

func NewListServersUseCase(catalog server.Catalog) *ListServersUseCase {
	return &ListServersUseCase{catalog: catalog}
}

func (uc *ListServersUseCase) Execute() []server.Server {
	return uc.catalog.List()
}
