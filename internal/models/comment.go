package models

// Comment moderation states.
const (
	CommentStatusPending  = "PENDING"
	CommentStatusApproved = "APPROVED"
	CommentStatusRejected = "REJECTED"
)

// CommentModel is a visitor comment on an article.
type CommentModel struct {
	Base
	ArticleID uint   `json:"articleId" gorm:"index;not null"`
	Content   string `json:"content"   gorm:"type:text;not null"`
	Author    string `json:"author"    gorm:"not null"`
	Email     string `json:"email"`
	Status    string `json:"status"    gorm:"type:varchar(16);default:PENDING;index"`
}

func (CommentModel) TableName() string { return "comments" }
