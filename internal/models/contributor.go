package models

// ContributorModel is a site author shown on the contributors page.
type ContributorModel struct {
	Base
	Name         string `json:"name"         gorm:"uniqueIndex;not null"`
	Avatar       string `json:"avatar"`
	Introduction string `json:"introduction" gorm:"type:text"`
	Sort         int    `json:"sort"         gorm:"default:0"`
	Status       int    `json:"status"       gorm:"type:tinyint;default:1"`
}

func (ContributorModel) TableName() string { return "contributors" }
