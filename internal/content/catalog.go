package content

import (
	"context"
	"sort"

	"github.com/Zachkp/portfolio/internal/common"
)

// Catalog bundles every collection of the site. Collections are saved
// independently; nothing spans two keys atomically.
type Catalog struct {
	Projects    *Collection[Project]
	Services    *Collection[Service]
	Experiences *Collection[Experience]
	Messages    *Messages
	Settings    *Document[Settings]
}

func NewCatalog(store *Store, ids IDGenerator, clock common.Clock) *Catalog {
	return &Catalog{
		Projects:    NewCollection(ProjectsKey, store, ids, SeedProjects),
		Services:    NewCollection(ServicesKey, store, ids, SeedServices),
		Experiences: NewCollection(ExperiencesKey, store, ids, SeedExperiences),
		Messages:    NewMessages(store, ids, clock),
		Settings:    NewDocument(SettingsKey, store, DefaultSettings),
	}
}

// Seed writes seed data for every key that has nothing usable stored (or for
// all of them when force is set) and returns the keys it wrote.
func (c *Catalog) Seed(ctx context.Context, force bool) []string {
	var written []string
	for key, seed := range map[string]func(context.Context, bool) bool{
		ProjectsKey:    c.Projects.Seed,
		ServicesKey:    c.Services.Seed,
		ExperiencesKey: c.Experiences.Seed,
		MessagesKey:    c.Messages.Seed,
		SettingsKey:    c.Settings.Seed,
	} {
		if seed(ctx, force) {
			written = append(written, key)
		}
	}
	sort.Strings(written)
	return written
}
