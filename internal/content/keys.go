// Package content is the portfolio CMS layer: typed collections persisted as
// one JSON blob per key, with seed data used until the first save.
package content

// Storage keys, one per collection.
const (
	ProjectsKey    = "portfolio-projects"
	ServicesKey    = "portfolio-services"
	ExperiencesKey = "portfolio-experiences"
	MessagesKey    = "portfolio-messages"
	SettingsKey    = "portfolio-settings"
)
