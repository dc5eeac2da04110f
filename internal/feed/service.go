// Package feed is the portal's mock data layer: a set of named resources
// served from static seed data, behind a fetch primitive that simulates
// backend latency and failure.
package feed

import (
	"context"
	"slices"
	"strings"

	"github.com/atriumhq/atrium/internal/logging"
	"github.com/atriumhq/atrium/internal/resource"
)

// Service provides asynchronous accessors over the portal's mock payloads.
// Every accessor goes through the simulated fetch primitive and so incurs its
// latency and failure characteristics.
type Service struct {
	sim    *Simulator
	logger logging.Interface
	data   Data
}

type ServiceOptions struct {
	Simulator *Simulator
	Logger    logging.Interface
}

func NewService(opts ServiceOptions) (*Service, error) {
	data, err := loadSeed()
	if err != nil {
		return nil, err
	}
	return &Service{
		sim:    opts.Simulator,
		logger: opts.Logger,
		data:   data,
	}, nil
}

// Briefing fetches the daily briefing.
func (s *Service) Briefing(ctx context.Context) (Briefing, error) {
	return Fetch(ctx, s.sim, s.logger, resource.Briefing, s.data.Briefing)
}

// News fetches company news articles, narrowed by the filter. Filtering is
// applied before the simulated delay, mimicking a backend that filters
// server-side.
func (s *Service) News(ctx context.Context, f NewsFilter) ([]Article, error) {
	return Fetch(ctx, s.sim, s.logger, resource.News, filterArticles(s.data.Articles, f))
}

// QuickLinks fetches the quick links directory.
func (s *Service) QuickLinks(ctx context.Context) ([]QuickLink, error) {
	return Fetch(ctx, s.sim, s.logger, resource.QuickLinks, s.data.QuickLinks)
}

// TeamUpdates fetches the latest team updates.
func (s *Service) TeamUpdates(ctx context.Context) ([]TeamUpdate, error) {
	return Fetch(ctx, s.sim, s.logger, resource.TeamUpdates, s.data.TeamUpdates)
}

// Events fetches upcoming company events.
func (s *Service) Events(ctx context.Context) ([]Event, error) {
	return Fetch(ctx, s.sim, s.logger, resource.Events, s.data.Events)
}

// Spotlight fetches the employee spotlight.
func (s *Service) Spotlight(ctx context.Context) (Spotlight, error) {
	return Fetch(ctx, s.sim, s.logger, resource.Spotlight, s.data.Spotlight)
}

// Announcements returns the carousel's announcement slides. Announcements are
// rendered inline on page load rather than fetched.
func (s *Service) Announcements() []Announcement {
	return s.data.Announcements
}

// Categories returns the distinct article categories, sorted, prefixed with
// the CategoryAll sentinel. Used by the news panel to cycle through category
// filters.
func (s *Service) Categories() []string {
	seen := make(map[string]struct{})
	categories := []string{CategoryAll}
	for _, a := range s.data.Articles {
		if _, ok := seen[a.Category]; ok {
			continue
		}
		seen[a.Category] = struct{}{}
		categories = append(categories, a.Category)
	}
	slices.SortFunc(categories[1:], func(a, b string) int {
		return strings.Compare(a, b)
	})
	return categories
}
