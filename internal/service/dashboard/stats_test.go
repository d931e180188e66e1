package dashboard

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sharankona/CompanyPortal-sub000/internal/domain"
	"github.com/sharankona/CompanyPortal-sub000/pkg/ctxutil"
)

var statsNow = time.Date(2024, 3, 31, 15, 0, 0, 0, time.UTC)

// fixedCounter answers totals and the two monthly windows from fixed values.
func fixedCounter(total, current, previous int) *counterMock {
	oneMonthAgo := statsNow.AddDate(0, -1, 0)
	return &counterMock{
		CountFunc: func(context.Context) (int, error) { return total, nil },
		CountCreatedBetweenFunc: func(_ context.Context, after, _ time.Time) (int, error) {
			if after.Equal(oneMonthAgo) {
				return current, nil
			}
			return previous, nil
		},
	}
}

func fixedActivity(day, current, previous int) *activityRepoMock {
	w := windowsAt(statsNow)
	return &activityRepoMock{
		CountDistinctUsersBetweenFunc: func(_ context.Context, after, _ time.Time) (int, error) {
			switch {
			case after.Equal(w.oneDayAgo):
				return day, nil
			case after.Equal(w.oneMonthAgo):
				return current, nil
			default:
				return previous, nil
			}
		},
	}
}

func newStatsService(docs, users, ann *counterMock, act *activityRepoMock) *Service {
	svc := NewService(slog.Default(), docs, users, ann, act, 0)
	svc.now = func() time.Time { return statsNow }
	return svc
}

func authed() context.Context {
	return ctxutil.WithUserID(context.Background(), 1)
}

func TestService_Stats(t *testing.T) {
	t.Parallel()

	docs := fixedCounter(20, 8, 4)
	svc := newStatsService(docs, fixedCounter(10, 0, 0), fixedCounter(6, 5, 10), fixedActivity(3, 4, 0))

	stats, err := svc.Stats(authed())
	require.NoError(t, err)

	assert.Equal(t, domain.DashboardStats{
		TotalDocuments:     20,
		TotalUsers:         10,
		ActiveUsers:        3,
		TotalAnnouncements: 6,
		DocumentsTrend:     100,
		UsersTrend:         0,
		ActiveUsersTrend:   100,
		AnnouncementsTrend: -50,
	}, *stats)
}

func TestService_Stats_Windows(t *testing.T) {
	t.Parallel()

	docs := fixedCounter(0, 0, 0)
	svc := newStatsService(docs, fixedCounter(0, 0, 0), fixedCounter(0, 0, 0), fixedActivity(0, 0, 0))

	_, err := svc.Stats(authed())
	require.NoError(t, err)

	oneMonthAgo := statsNow.AddDate(0, -1, 0)
	twoMonthsAgo := statsNow.AddDate(0, -2, 0)
	assert.ElementsMatch(t, []window{
		{oneMonthAgo, statsNow},
		{twoMonthsAgo, oneMonthAgo},
	}, docs.CountCreatedBetweenCalls())
}

func TestService_Stats_StoreFailure(t *testing.T) {
	t.Parallel()

	boom := errors.New("connection reset")
	users := &counterMock{
		CountFunc: func(context.Context) (int, error) { return 0, boom },
		CountCreatedBetweenFunc: func(context.Context, time.Time, time.Time) (int, error) {
			return 0, nil
		},
	}
	svc := newStatsService(fixedCounter(1, 1, 1), users, fixedCounter(1, 1, 1), fixedActivity(1, 1, 1))

	stats, err := svc.Stats(authed())
	assert.ErrorIs(t, err, boom)
	assert.Nil(t, stats)
}

func TestService_Stats_Unauthorized(t *testing.T) {
	t.Parallel()

	svc := newStatsService(fixedCounter(0, 0, 0), fixedCounter(0, 0, 0), fixedCounter(0, 0, 0), fixedActivity(0, 0, 0))
	_, err := svc.Stats(context.Background())
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestService_RecentActivity_Limits(t *testing.T) {
	t.Parallel()

	act := &activityRepoMock{
		RecentFunc: func(context.Context, int) ([]domain.ActivityEntry, error) { return nil, nil },
	}
	svc := NewService(slog.Default(), nil, nil, nil, act, 25)

	for _, limit := range []int{0, -3, 5, 25, 500} {
		entries, err := svc.RecentActivity(authed(), limit)
		require.NoError(t, err)
		assert.NotNil(t, entries)
	}
	assert.Equal(t, []int{DefaultActivityLimit, DefaultActivityLimit, 5, 25, 25}, act.RecentCalls())
}
