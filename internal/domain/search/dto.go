package search

type CreateSavedSearchInput struct {
	SearchType string                 `json:"searchType" binding:"required"`
	Keywords   string                 `json:"keywords"`
	SearchName string                 `json:"searchName"`
	Filters    map[string]interface{} `json:"filters"`
}
