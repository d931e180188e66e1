package finance

import (
	"context"
	"sync"

	"github.com/sharankona/CompanyPortal-sub000/internal/domain"
)

type financeRepoMock struct {
	ListRevenueFunc   func(ctx context.Context, dr domain.DateRange) ([]domain.Revenue, error)
	ListExpensesFunc  func(ctx context.Context, dr domain.DateRange) ([]domain.Expense, error)
	CreateRevenueFunc func(ctx context.Context, rev domain.Revenue) (*domain.Revenue, error)
	CreateExpenseFunc func(ctx context.Context, e domain.Expense) (*domain.Expense, error)
	UpdateRevenueFunc func(ctx context.Context, id int64, patch domain.RevenuePatch) (*domain.Revenue, error)
	UpdateExpenseFunc func(ctx context.Context, e domain.Expense) (*domain.Expense, error)
	DeleteRevenueFunc func(ctx context.Context, id int64) error
	DeleteExpenseFunc func(ctx context.Context, id int64) error

	lock               sync.RWMutex
	createRevenueCalls []domain.Revenue
	createExpenseCalls []domain.Expense
	updateRevenueCalls []domain.RevenuePatch
}

var _ financeRepo = &financeRepoMock{}

func (m *financeRepoMock) ListRevenue(ctx context.Context, dr domain.DateRange) ([]domain.Revenue, error) {
	if m.ListRevenueFunc == nil {
		panic("financeRepoMock.ListRevenueFunc: method is nil but financeRepo.ListRevenue was just called")
	}
	return m.ListRevenueFunc(ctx, dr)
}

func (m *financeRepoMock) ListExpenses(ctx context.Context, dr domain.DateRange) ([]domain.Expense, error) {
	if m.ListExpensesFunc == nil {
		panic("financeRepoMock.ListExpensesFunc: method is nil but financeRepo.ListExpenses was just called")
	}
	return m.ListExpensesFunc(ctx, dr)
}

func (m *financeRepoMock) CreateRevenue(ctx context.Context, rev domain.Revenue) (*domain.Revenue, error) {
	if m.CreateRevenueFunc == nil {
		panic("financeRepoMock.CreateRevenueFunc: method is nil but financeRepo.CreateRevenue was just called")
	}
	m.lock.Lock()
	m.createRevenueCalls = append(m.createRevenueCalls, rev)
	m.lock.Unlock()
	return m.CreateRevenueFunc(ctx, rev)
}

func (m *financeRepoMock) CreateRevenueCalls() []domain.Revenue {
	m.lock.RLock()
	defer m.lock.RUnlock()
	return m.createRevenueCalls
}

func (m *financeRepoMock) CreateExpense(ctx context.Context, e domain.Expense) (*domain.Expense, error) {
	if m.CreateExpenseFunc == nil {
		panic("financeRepoMock.CreateExpenseFunc: method is nil but financeRepo.CreateExpense was just called")
	}
	m.lock.Lock()
	m.createExpenseCalls = append(m.createExpenseCalls, e)
	m.lock.Unlock()
	return m.CreateExpenseFunc(ctx, e)
}

func (m *financeRepoMock) CreateExpenseCalls() []domain.Expense {
	m.lock.RLock()
	defer m.lock.RUnlock()
	return m.createExpenseCalls
}

func (m *financeRepoMock) UpdateRevenue(ctx context.Context, id int64, patch domain.RevenuePatch) (*domain.Revenue, error) {
	if m.UpdateRevenueFunc == nil {
		panic("financeRepoMock.UpdateRevenueFunc: method is nil but financeRepo.UpdateRevenue was just called")
	}
	m.lock.Lock()
	m.updateRevenueCalls = append(m.updateRevenueCalls, patch)
	m.lock.Unlock()
	return m.UpdateRevenueFunc(ctx, id, patch)
}

func (m *financeRepoMock) UpdateRevenueCalls() []domain.RevenuePatch {
	m.lock.RLock()
	defer m.lock.RUnlock()
	return m.updateRevenueCalls
}

func (m *financeRepoMock) UpdateExpense(ctx context.Context, e domain.Expense) (*domain.Expense, error) {
	if m.UpdateExpenseFunc == nil {
		panic("financeRepoMock.UpdateExpenseFunc: method is nil but financeRepo.UpdateExpense was just called")
	}
	return m.UpdateExpenseFunc(ctx, e)
}

func (m *financeRepoMock) DeleteRevenue(ctx context.Context, id int64) error {
	if m.DeleteRevenueFunc == nil {
		panic("financeRepoMock.DeleteRevenueFunc: method is nil but financeRepo.DeleteRevenue was just called")
	}
	return m.DeleteRevenueFunc(ctx, id)
}

func (m *financeRepoMock) DeleteExpense(ctx context.Context, id int64) error {
	if m.DeleteExpenseFunc == nil {
		panic("financeRepoMock.DeleteExpenseFunc: method is nil but financeRepo.DeleteExpense was just called")
	}
	return m.DeleteExpenseFunc(ctx, id)
}
