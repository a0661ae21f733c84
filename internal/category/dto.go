package category

type CategoryResponse struct {
	ID   uint   `json:"id"`
	Type string `json:"type"`
}

type CategoryListResponse struct {
	Success         bool               `json:"success"`
	Categories      []CategoryResponse `json:"categories"`
	TotalCategories int                `json:"total_categories"`
}

func ToResponse(c *Category) CategoryResponse {
	return CategoryResponse{ID: c.ID, Type: c.Type}
}

func ToResponses(categories []*Category) []CategoryResponse {
	responses := make([]CategoryResponse, 0, len(categories))
	for _, c := range categories {
		responses = append(responses, ToResponse(c))
	}
	return responses
}
