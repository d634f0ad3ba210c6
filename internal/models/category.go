package models

// CategoryModel groups articles.
type CategoryModel struct {
	Base
	Name        string `json:"name"        gorm:"uniqueIndex;not null"`
	Description string `json:"description"`
	Sort        int    `json:"sort"        gorm:"default:0"`
	Status      int    `json:"status"      gorm:"type:tinyint;default:1"`

	Articles []ArticleModel `json:"articles,omitempty" gorm:"foreignKey:CategoryID"`
}

func (CategoryModel) TableName() string { return "categories" }
