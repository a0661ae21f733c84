package category

import "gorm.io/gorm"

type CategoryContainer struct {
	Handler *Handler
	Repo    CategoryRepository
	Service CategoryService
}

func NewCategoryContainer(db *gorm.DB) *CategoryContainer {
	repo := NewRepository(db)
	service := NewService(repo)
	handler := NewHandler(service)

	return &CategoryContainer{
		Handler: handler,
		Repo:    repo,
		Service: service,
	}
}
