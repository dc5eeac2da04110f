package feed

import (
	"context"
	"testing"

	"github.com/atriumhq/atrium/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestService constructs a service with zero latency and no failures.
func newTestService(t *testing.T) *Service {
	t.Helper()

	svc, err := NewService(ServiceOptions{
		Simulator: NewSimulator(SimulatorOptions{Sleep: skipSleep(nil)}),
		Logger:    logging.Discard,
	})
	require.NoError(t, err)
	return svc
}

func TestService_news(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	t.Run("no filter returns all articles", func(t *testing.T) {
		articles, err := svc.News(ctx, NewsFilter{})
		require.NoError(t, err)
		assert.Len(t, articles, 5)
	})

	t.Run("category filter is case-insensitive exact match", func(t *testing.T) {
		articles, err := svc.News(ctx, NewsFilter{Category: "hr"})
		require.NoError(t, err)
		require.Len(t, articles, 1)
		assert.Equal(t, "New Employee Onboarding Program Launched", articles[0].Title)
	})

	t.Run("category all is a sentinel", func(t *testing.T) {
		articles, err := svc.News(ctx, NewsFilter{Category: "all"})
		require.NoError(t, err)
		assert.Len(t, articles, 5)
	})

	t.Run("query matches preview text", func(t *testing.T) {
		articles, err := svc.News(ctx, NewsFilter{Query: "quarter"})
		require.NoError(t, err)
		require.Len(t, articles, 1)
		assert.Equal(t, "Q2 Financial Results Exceed Expectations", articles[0].Title)
	})

	t.Run("query matches title", func(t *testing.T) {
		articles, err := svc.News(ctx, NewsFilter{Query: "onboarding"})
		require.NoError(t, err)
		require.Len(t, articles, 1)
		assert.Equal(t, "New Employee Onboarding Program Launched", articles[0].Title)
	})

	t.Run("category and query are conjunctive", func(t *testing.T) {
		articles, err := svc.News(ctx, NewsFilter{Category: "Finance", Query: "onboarding"})
		require.NoError(t, err)
		assert.Empty(t, articles)
	})

	t.Run("no matches", func(t *testing.T) {
		articles, err := svc.News(ctx, NewsFilter{Query: "zzzzz"})
		require.NoError(t, err)
		assert.Empty(t, articles)
	})
}

func TestService_briefing(t *testing.T) {
	svc := newTestService(t)

	briefing, err := svc.Briefing(context.Background())
	require.NoError(t, err)
	assert.NotEmpty(t, briefing.Headline)
	assert.NotEmpty(t, briefing.Summary)
}

func TestService_quickLinks(t *testing.T) {
	svc := newTestService(t)

	links, err := svc.QuickLinks(context.Background())
	require.NoError(t, err)
	assert.Len(t, links, 6)
}

func TestService_teamUpdates(t *testing.T) {
	svc := newTestService(t)

	updates, err := svc.TeamUpdates(context.Background())
	require.NoError(t, err)
	assert.Len(t, updates, 4)
}

func TestService_events(t *testing.T) {
	svc := newTestService(t)

	events, err := svc.Events(context.Background())
	require.NoError(t, err)
	assert.Len(t, events, 4)
}

func TestService_spotlight(t *testing.T) {
	svc := newTestService(t)

	spotlight, err := svc.Spotlight(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Rosa Jiménez", spotlight.Name)
}

func TestService_announcements(t *testing.T) {
	svc := newTestService(t)

	assert.Len(t, svc.Announcements(), 4)
}

func TestService_categories(t *testing.T) {
	svc := newTestService(t)

	assert.Equal(t,
		[]string{"all", "Company", "Facilities", "Finance", "HR", "IT"},
		svc.Categories(),
	)
}

func TestService_failuresApplyToFilteredFetches(t *testing.T) {
	// Failure injection is independent per call, including derived fetchers.
	svc, err := NewService(ServiceOptions{
		Simulator: NewSimulator(SimulatorOptions{FailureRate: 1, Sleep: skipSleep(nil)}),
		Logger:    logging.Discard,
	})
	require.NoError(t, err)

	_, err = svc.News(context.Background(), NewsFilter{Category: "HR"})
	var fetchErr FetchError
	require.ErrorAs(t, err, &fetchErr)
	assert.Equal(t, "news", fetchErr.Resource)
}
