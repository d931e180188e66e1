package dashboard

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/sharankona/CompanyPortal-sub000/internal/domain"
	"github.com/sharankona/CompanyPortal-sub000/pkg/ctxutil"
)

// windows are the period boundaries relative to now.
type windows struct {
	now          time.Time
	oneDayAgo    time.Time
	oneMonthAgo  time.Time
	twoMonthsAgo time.Time
}

func windowsAt(now time.Time) windows {
	return windows{
		now:          now,
		oneDayAgo:    now.AddDate(0, 0, -1),
		oneMonthAgo:  now.AddDate(0, -1, 0),
		twoMonthsAgo: now.AddDate(0, -2, 0),
	}
}

// periodCounts holds a store's total with its current and previous month.
type periodCounts struct {
	total, current, previous int
}

// Stats computes the headline counters and their month-over-month trends.
// Every query runs against the stores on each call; the first failure
// cancels the rest and is returned.
func (s *Service) Stats(ctx context.Context) (*domain.DashboardStats, error) {
	if _, ok := ctxutil.UserIDFromCtx(ctx); !ok {
		return nil, domain.ErrUnauthorized
	}

	w := windowsAt(s.now().UTC())

	var (
		docs, users, announcements     periodCounts
		active, activeCur, activePrev int
	)

	g, gctx := errgroup.WithContext(ctx)
	countPeriods(gctx, g, "documents", s.documents, w, &docs)
	countPeriods(gctx, g, "users", s.users, w, &users)
	countPeriods(gctx, g, "announcements", s.announcements, w, &announcements)

	g.Go(func() error {
		n, err := s.activity.CountDistinctUsersBetween(gctx, w.oneDayAgo, w.now)
		if err != nil {
			return fmt.Errorf("count active users: %w", err)
		}
		active = n
		return nil
	})
	g.Go(func() error {
		n, err := s.activity.CountDistinctUsersBetween(gctx, w.oneMonthAgo, w.now)
		if err != nil {
			return fmt.Errorf("count active users this month: %w", err)
		}
		activeCur = n
		return nil
	})
	g.Go(func() error {
		n, err := s.activity.CountDistinctUsersBetween(gctx, w.twoMonthsAgo, w.oneMonthAgo)
		if err != nil {
			return fmt.Errorf("count active users last month: %w", err)
		}
		activePrev = n
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	stats := &domain.DashboardStats{
		TotalDocuments:     docs.total,
		TotalUsers:         users.total,
		ActiveUsers:        active,
		TotalAnnouncements: announcements.total,

		DocumentsTrend:     Trend(docs.current, docs.previous),
		UsersTrend:         Trend(users.current, users.previous),
		ActiveUsersTrend:   Trend(activeCur, activePrev),
		AnnouncementsTrend: Trend(announcements.current, announcements.previous),
	}

	s.log.DebugContext(ctx, "dashboard stats computed",
		slog.Int("documents", stats.TotalDocuments),
		slog.Int("users", stats.TotalUsers),
		slog.Int("active_users", stats.ActiveUsers),
	)
	return stats, nil
}

func countPeriods(ctx context.Context, g *errgroup.Group, name string, c counter, w windows, out *periodCounts) {
	g.Go(func() error {
		n, err := c.Count(ctx)
		if err != nil {
			return fmt.Errorf("count %s: %w", name, err)
		}
		out.total = n
		return nil
	})
	g.Go(func() error {
		n, err := c.CountCreatedBetween(ctx, w.oneMonthAgo, w.now)
		if err != nil {
			return fmt.Errorf("count %s this month: %w", name, err)
		}
		out.current = n
		return nil
	})
	g.Go(func() error {
		n, err := c.CountCreatedBetween(ctx, w.twoMonthsAgo, w.oneMonthAgo)
		if err != nil {
			return fmt.Errorf("count %s last month: %w", name, err)
		}
		out.previous = n
		return nil
	})
}

// RecentActivity returns the newest activity entries. A non-positive limit
// selects DefaultActivityLimit; larger limits are capped.
func (s *Service) RecentActivity(ctx context.Context, limit int) ([]domain.ActivityEntry, error) {
	if _, ok := ctxutil.UserIDFromCtx(ctx); !ok {
		return nil, domain.ErrUnauthorized
	}
	if limit <= 0 {
		limit = DefaultActivityLimit
	}
	if limit > s.activityMax {
		limit = s.activityMax
	}

	entries, err := s.activity.Recent(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("recent activity: %w", err)
	}
	if entries == nil {
		entries = []domain.ActivityEntry{}
	}
	return entries, nil
}
