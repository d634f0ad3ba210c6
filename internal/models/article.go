package models

// Article status values. Draft articles stay invisible to visitors.
const (
	ArticleStatusDraft     = 0
	ArticleStatusPublished = 1
)

// ArticleModel is a blog article.
type ArticleModel struct {
	Base
	Title      string         `json:"title"      gorm:"not null"`
	Content    string         `json:"content"    gorm:"type:longtext"`
	Summary    string         `json:"summary"    gorm:"type:text"`
	Thumbnail  string         `json:"thumbnail"`
	Tags       string         `json:"tags"` // comma-delimited
	CategoryID uint           `json:"categoryId" gorm:"index;not null"`
	Category   *CategoryModel `json:"category,omitempty" gorm:"foreignKey:CategoryID"`
	ViewCount  int            `json:"viewCount"  gorm:"default:0"`
	Status     int            `json:"status"     gorm:"type:tinyint;default:1;index"`
}

func (ArticleModel) TableName() string { return "articles" }
