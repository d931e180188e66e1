// Package seeder fills an empty portal database with demo users, documents,
// announcements, activity, financial records and default workflows.
package seeder

import (
	"context"

	"github.com/sharankona/CompanyPortal-sub000/internal/domain"
)

type UserRepo interface {
	Create(ctx context.Context, u domain.User) (*domain.User, error)
}

type DocumentRepo interface {
	Create(ctx context.Context, d domain.Document) (*domain.Document, error)
}

type AnnouncementRepo interface {
	Create(ctx context.Context, a domain.Announcement) (*domain.Announcement, error)
}

type ActivityRepo interface {
	Create(ctx context.Context, e domain.ActivityEntry) (*domain.ActivityEntry, error)
}

type FinanceRepo interface {
	CreateRevenue(ctx context.Context, r domain.Revenue) (*domain.Revenue, error)
	CreateExpense(ctx context.Context, e domain.Expense) (*domain.Expense, error)
}

type WorkflowRepo interface {
	List(ctx context.Context, contentType *domain.ContentType) ([]domain.WorkflowDefinition, error)
	Create(ctx context.Context, wf domain.WorkflowDefinition) (*domain.WorkflowDefinition, error)
}

// Repos bundles the stores the pipeline writes to.
type Repos struct {
	Users         UserRepo
	Documents     DocumentRepo
	Announcements AnnouncementRepo
	Activity      ActivityRepo
	Finance       FinanceRepo
	Workflows     WorkflowRepo
}
