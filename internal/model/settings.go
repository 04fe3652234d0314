package model

import "time"

// SettingsID is the fixed primary key of the singleton settings row.
const SettingsID = "global_settings"

// Settings holds the shop-wide storefront settings.
type Settings struct {
	ID              string    `gorm:"primaryKey;size:36" json:"id"`
	LogoURL         string    `gorm:"size:512" json:"logo_url"`
	PixQRURL        string    `gorm:"size:512" json:"pix_qr_url"`
	InstagramHandle string    `gorm:"size:128" json:"instagram_handle"`
	UpdatedAt       time.Time `gorm:"not null" json:"updated_at"`
}
