package article

// ListArticlesQuery carries the optional list filters.
type ListArticlesQuery struct {
	Status     *int
	CategoryID *uint
	Keyword    string
}

// SearchArticlesQuery carries the public search parameters.
type SearchArticlesQuery struct {
	Keyword string
	Tag     string
	SortBy  string
	SortDir string
}

type CreateArticleDTO struct {
	Title      string `json:"title"      binding:"required"`
	Content    string `json:"content"    binding:"required"`
	Summary    string `json:"summary"`
	Thumbnail  string `json:"thumbnail"`
	Tags       string `json:"tags"`
	CategoryID uint   `json:"categoryId" binding:"required"`
	Status     *int   `json:"status"`
}

type UpdateArticleDTO struct {
	Title      *string `json:"title"`
	Content    *string `json:"content"`
	Summary    *string `json:"summary"`
	Thumbnail  *string `json:"thumbnail"`
	Tags       *string `json:"tags"`
	CategoryID *uint   `json:"categoryId"`
	Status     *int    `json:"status"`
}
