package content

import (
	"context"
	"sync"

	"github.com/sharankona/CompanyPortal-sub000/internal/domain"
	"github.com/sharankona/CompanyPortal-sub000/pkg/ctxutil"
)

type mockContentRepo struct {
	listFunc         func(ctx context.Context, f domain.ContentFilter) ([]domain.ContentItem, error)
	getByIDFunc      func(ctx context.Context, id int64) (*domain.ContentItem, error)
	getForUpdateFunc func(ctx context.Context, id int64) (*domain.ContentItem, error)
	createFunc       func(ctx context.Context, item domain.ContentItem) (*domain.ContentItem, error)
	updateFunc       func(ctx context.Context, item domain.ContentItem) (*domain.ContentItem, error)
	deleteFunc       func(ctx context.Context, id int64) error

	mu      sync.Mutex
	updates []domain.ContentItem
	deletes []int64
}

var _ contentRepo = &mockContentRepo{}

func (m *mockContentRepo) List(ctx context.Context, f domain.ContentFilter) ([]domain.ContentItem, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, f)
	}
	return nil, nil
}

func (m *mockContentRepo) GetByID(ctx context.Context, id int64) (*domain.ContentItem, error) {
	if m.getByIDFunc != nil {
		return m.getByIDFunc(ctx, id)
	}
	return nil, domain.ErrNotFound
}

func (m *mockContentRepo) GetForUpdate(ctx context.Context, id int64) (*domain.ContentItem, error) {
	if m.getForUpdateFunc != nil {
		return m.getForUpdateFunc(ctx, id)
	}
	return nil, domain.ErrNotFound
}

func (m *mockContentRepo) Create(ctx context.Context, item domain.ContentItem) (*domain.ContentItem, error) {
	if m.createFunc != nil {
		return m.createFunc(ctx, item)
	}
	item.ID = 1
	return &item, nil
}

func (m *mockContentRepo) Update(ctx context.Context, item domain.ContentItem) (*domain.ContentItem, error) {
	m.mu.Lock()
	m.updates = append(m.updates, item)
	m.mu.Unlock()
	if m.updateFunc != nil {
		return m.updateFunc(ctx, item)
	}
	return &item, nil
}

func (m *mockContentRepo) Delete(ctx context.Context, id int64) error {
	m.mu.Lock()
	m.deletes = append(m.deletes, id)
	m.mu.Unlock()
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, id)
	}
	return nil
}

type mockHistoryRepo struct {
	createFunc          func(ctx context.Context, e domain.ContentHistoryEntry) (*domain.ContentHistoryEntry, error)
	listByContentFunc   func(ctx context.Context, contentID int64) ([]domain.ContentHistoryEntry, error)
	deleteByContentFunc func(ctx context.Context, contentID int64) (int64, error)

	mu      sync.Mutex
	entries []domain.ContentHistoryEntry
}

var _ historyRepo = &mockHistoryRepo{}

func (m *mockHistoryRepo) Create(ctx context.Context, e domain.ContentHistoryEntry) (*domain.ContentHistoryEntry, error) {
	if m.createFunc != nil {
		return m.createFunc(ctx, e)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	e.ID = int64(len(m.entries) + 1)
	m.entries = append(m.entries, e)
	return &e, nil
}

func (m *mockHistoryRepo) ListByContent(ctx context.Context, contentID int64) ([]domain.ContentHistoryEntry, error) {
	if m.listByContentFunc != nil {
		return m.listByContentFunc(ctx, contentID)
	}
	return nil, nil
}

func (m *mockHistoryRepo) DeleteByContent(ctx context.Context, contentID int64) (int64, error) {
	if m.deleteByContentFunc != nil {
		return m.deleteByContentFunc(ctx, contentID)
	}
	return 0, nil
}

type mockActivityLogger struct {
	logFunc func(ctx context.Context, e domain.ActivityEntry) error

	mu      sync.Mutex
	entries []domain.ActivityEntry
}

var _ activityLogger = &mockActivityLogger{}

func (m *mockActivityLogger) Log(ctx context.Context, e domain.ActivityEntry) error {
	if m.logFunc != nil {
		return m.logFunc(ctx, e)
	}
	m.mu.Lock()
	m.entries = append(m.entries, e)
	m.mu.Unlock()
	return nil
}

type mockTxManager struct {
	runInTxFunc func(ctx context.Context, fn func(ctx context.Context) error) error
}

func (m *mockTxManager) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if m.runInTxFunc != nil {
		return m.runInTxFunc(ctx, fn)
	}
	// Default: pass-through
	return fn(ctx)
}

type mockWorkflowLookup struct {
	latestByTypeFunc func(ctx context.Context, contentType domain.ContentType) (*domain.WorkflowDefinition, error)
}

func (m *mockWorkflowLookup) LatestByType(ctx context.Context, contentType domain.ContentType) (*domain.WorkflowDefinition, error) {
	if m.latestByTypeFunc != nil {
		return m.latestByTypeFunc(ctx, contentType)
	}
	return nil, domain.ErrNotFound
}

func withUser(ctx context.Context, userID int64, name string) context.Context {
	ctx = ctxutil.WithUserID(ctx, userID)
	return ctxutil.WithUserName(ctx, name)
}

func ptr[T any](v T) *T { return &v }
