package dashboard

import (
	"context"
	"sync"
	"time"

	"github.com/sharankona/CompanyPortal-sub000/internal/domain"
)

type counterMock struct {
	CountFunc               func(ctx context.Context) (int, error)
	CountCreatedBetweenFunc func(ctx context.Context, after, until time.Time) (int, error)

	lock  sync.RWMutex
	calls []window
}

type window struct{ after, until time.Time }

var _ counter = &counterMock{}

func (m *counterMock) Count(ctx context.Context) (int, error) {
	if m.CountFunc == nil {
		panic("counterMock.CountFunc: method is nil but counter.Count was just called")
	}
	return m.CountFunc(ctx)
}

func (m *counterMock) CountCreatedBetween(ctx context.Context, after, until time.Time) (int, error) {
	if m.CountCreatedBetweenFunc == nil {
		panic("counterMock.CountCreatedBetweenFunc: method is nil but counter.CountCreatedBetween was just called")
	}
	m.lock.Lock()
	m.calls = append(m.calls, window{after, until})
	m.lock.Unlock()
	return m.CountCreatedBetweenFunc(ctx, after, until)
}

func (m *counterMock) CountCreatedBetweenCalls() []window {
	m.lock.RLock()
	defer m.lock.RUnlock()
	return m.calls
}

type activityRepoMock struct {
	RecentFunc                    func(ctx context.Context, limit int) ([]domain.ActivityEntry, error)
	CountDistinctUsersBetweenFunc func(ctx context.Context, after, until time.Time) (int, error)

	lock        sync.RWMutex
	recentCalls []int
}

var _ activityRepo = &activityRepoMock{}

func (m *activityRepoMock) Recent(ctx context.Context, limit int) ([]domain.ActivityEntry, error) {
	if m.RecentFunc == nil {
		panic("activityRepoMock.RecentFunc: method is nil but activityRepo.Recent was just called")
	}
	m.lock.Lock()
	m.recentCalls = append(m.recentCalls, limit)
	m.lock.Unlock()
	return m.RecentFunc(ctx, limit)
}

func (m *activityRepoMock) RecentCalls() []int {
	m.lock.RLock()
	defer m.lock.RUnlock()
	return m.recentCalls
}

func (m *activityRepoMock) CountDistinctUsersBetween(ctx context.Context, after, until time.Time) (int, error) {
	if m.CountDistinctUsersBetweenFunc == nil {
		panic("activityRepoMock.CountDistinctUsersBetweenFunc: method is nil but activityRepo.CountDistinctUsersBetween was just called")
	}
	return m.CountDistinctUsersBetweenFunc(ctx, after, until)
}
