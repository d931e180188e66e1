package workflow

import (
	"context"
	"sync"

	"github.com/sharankona/CompanyPortal-sub000/internal/domain"
)

type workflowRepoMock struct {
	CreateFunc       func(ctx context.Context, wf domain.WorkflowDefinition) (*domain.WorkflowDefinition, error)
	ListFunc         func(ctx context.Context, contentType *domain.ContentType) ([]domain.WorkflowDefinition, error)
	GetByIDFunc      func(ctx context.Context, id int64) (*domain.WorkflowDefinition, error)
	LatestByTypeFunc func(ctx context.Context, contentType domain.ContentType) (*domain.WorkflowDefinition, error)
	UpdateFunc       func(ctx context.Context, wf domain.WorkflowDefinition) (*domain.WorkflowDefinition, error)
	DeleteFunc       func(ctx context.Context, id int64) error

	lock        sync.RWMutex
	createCalls []domain.WorkflowDefinition
	updateCalls []domain.WorkflowDefinition
	deleteCalls []int64
}

var _ workflowRepo = &workflowRepoMock{}

func (m *workflowRepoMock) Create(ctx context.Context, wf domain.WorkflowDefinition) (*domain.WorkflowDefinition, error) {
	if m.CreateFunc == nil {
		panic("workflowRepoMock.CreateFunc: method is nil but workflowRepo.Create was just called")
	}
	m.lock.Lock()
	m.createCalls = append(m.createCalls, wf)
	m.lock.Unlock()
	return m.CreateFunc(ctx, wf)
}

func (m *workflowRepoMock) CreateCalls() []domain.WorkflowDefinition {
	m.lock.RLock()
	defer m.lock.RUnlock()
	return m.createCalls
}

func (m *workflowRepoMock) List(ctx context.Context, contentType *domain.ContentType) ([]domain.WorkflowDefinition, error) {
	if m.ListFunc == nil {
		panic("workflowRepoMock.ListFunc: method is nil but workflowRepo.List was just called")
	}
	return m.ListFunc(ctx, contentType)
}

func (m *workflowRepoMock) GetByID(ctx context.Context, id int64) (*domain.WorkflowDefinition, error) {
	if m.GetByIDFunc == nil {
		panic("workflowRepoMock.GetByIDFunc: method is nil but workflowRepo.GetByID was just called")
	}
	return m.GetByIDFunc(ctx, id)
}

func (m *workflowRepoMock) LatestByType(ctx context.Context, contentType domain.ContentType) (*domain.WorkflowDefinition, error) {
	if m.LatestByTypeFunc == nil {
		panic("workflowRepoMock.LatestByTypeFunc: method is nil but workflowRepo.LatestByType was just called")
	}
	return m.LatestByTypeFunc(ctx, contentType)
}

func (m *workflowRepoMock) Update(ctx context.Context, wf domain.WorkflowDefinition) (*domain.WorkflowDefinition, error) {
	if m.UpdateFunc == nil {
		panic("workflowRepoMock.UpdateFunc: method is nil but workflowRepo.Update was just called")
	}
	m.lock.Lock()
	m.updateCalls = append(m.updateCalls, wf)
	m.lock.Unlock()
	return m.UpdateFunc(ctx, wf)
}

func (m *workflowRepoMock) UpdateCalls() []domain.WorkflowDefinition {
	m.lock.RLock()
	defer m.lock.RUnlock()
	return m.updateCalls
}

func (m *workflowRepoMock) Delete(ctx context.Context, id int64) error {
	if m.DeleteFunc == nil {
		panic("workflowRepoMock.DeleteFunc: method is nil but workflowRepo.Delete was just called")
	}
	m.lock.Lock()
	m.deleteCalls = append(m.deleteCalls, id)
	m.lock.Unlock()
	return m.DeleteFunc(ctx, id)
}

func (m *workflowRepoMock) DeleteCalls() []int64 {
	m.lock.RLock()
	defer m.lock.RUnlock()
	return m.deleteCalls
}

type activityLoggerMock struct {
	LogFunc func(ctx context.Context, e domain.ActivityEntry) error

	lock     sync.RWMutex
	logCalls []domain.ActivityEntry
}

var _ activityLogger = &activityLoggerMock{}

func (m *activityLoggerMock) Log(ctx context.Context, e domain.ActivityEntry) error {
	if m.LogFunc == nil {
		panic("activityLoggerMock.LogFunc: method is nil but activityLogger.Log was just called")
	}
	m.lock.Lock()
	m.logCalls = append(m.logCalls, e)
	m.lock.Unlock()
	return m.LogFunc(ctx, e)
}

func (m *activityLoggerMock) LogCalls() []domain.ActivityEntry {
	m.lock.RLock()
	defer m.lock.RUnlock()
	return m.logCalls
}

type txManagerMock struct {
	RunInTxFunc func(ctx context.Context, fn func(ctx context.Context) error) error
}

var _ txManager = &txManagerMock{}

func (m *txManagerMock) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if m.RunInTxFunc == nil {
		panic("txManagerMock.RunInTxFunc: method is nil but txManager.RunInTx was just called")
	}
	return m.RunInTxFunc(ctx, fn)
}
