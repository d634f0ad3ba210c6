package models

// SettingModel is the singleton row holding site-wide settings.
type SettingModel struct {
	Base
	SiteName        string `json:"siteName"`
	SiteDescription string `json:"siteDescription" gorm:"type:text"`
	SiteKeywords    string `json:"siteKeywords"`
	SiteLogo        string `json:"siteLogo"`
	SiteFavicon     string `json:"siteFavicon"`
	SiteICP         string `json:"siteIcp"`
	SiteEmail       string `json:"siteEmail"`
	FooterInfo      string `json:"footerInfo"      gorm:"type:text"`
	AllowComments   bool   `json:"allowComments"   gorm:"default:true"`
	CommentAudit    bool   `json:"commentAudit"    gorm:"default:true"`
}

func (SettingModel) TableName() string { return "settings" }
