package settings

import "time"

// Settings is the single-row site configuration rendered in the page footer
// and contact section.
type Settings struct {
	SiteName     string
	Tagline      string
	Phone        string
	Email        string
	Address      string
	FacebookURL  string
	InstagramURL string
	WorkingHours string
	UpdatedAt    time.Time
}

type UpdateSettingsInput struct {
	SiteName     string
	Tagline      string
	Phone        string
	Email        string
	Address      string
	FacebookURL  string
	InstagramURL string
	WorkingHours string
}
