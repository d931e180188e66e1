package seeder

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"

	"github.com/sharankona/CompanyPortal-sub000/internal/domain"
)

// allPhases defines the canonical execution order. Later phases reference
// the users created by the first one.
var allPhases = []string{"users", "documents", "announcements", "activity", "finance", "workflows"}

// disabledPasswordHash never matches a bcrypt comparison, so demo accounts
// cannot log in.
const disabledPasswordHash = "!"

var (
	firstNames    = []string{"Ava", "Ben", "Chloe", "Dev", "Elena", "Farid", "Grace", "Hiro", "Ines", "Jonas"}
	lastNames     = []string{"Okafor", "Lindqvist", "Moreau", "Patel", "Nakamura", "Silva", "Novak", "Haddad"}
	documentNames = []string{"Quarterly Report", "Brand Guidelines", "Onboarding Checklist", "Travel Policy", "Security Handbook", "Roadmap", "Budget Plan"}
	docStatuses   = []string{"draft", "in_review", "approved"}
	announceTitle = []string{"Office closed on Friday", "New benefits portal", "Town hall this week", "Welcome our new hires", "Quarterly results", "IT maintenance window"}
	announceCats  = []string{"General", "HR", "IT", "Events"}
	revenueSrc    = []string{"Consulting", "Subscriptions", "Licensing", "Training"}
	expenseCats   = []string{"Payroll", "Rent", "Software", "Travel", "Marketing"}
)

// defaultWorkflows are inserted for content types that have none yet.
var defaultWorkflows = []domain.WorkflowDefinition{
	{Name: "Blog editorial", ContentType: domain.ContentTypeBlog, Steps: []string{"draft", "review", "approved", "scheduled", "published"}},
	{Name: "Instagram post", ContentType: domain.ContentTypeInstagram, Steps: []string{"draft", "review", "scheduled", "published"}},
	{Name: "LinkedIn update", ContentType: domain.ContentTypeLinkedIn, Steps: []string{"draft", "review", "approved", "published"}},
	{Name: "YouTube video", ContentType: domain.ContentTypeYouTube, Steps: []string{"draft", "review", "approved", "scheduled", "published"}},
	{Name: "Product page", ContentType: domain.ContentTypeProduct, Steps: []string{"draft", "review", "approved", "published"}},
}

// PhaseResult holds the outcome of a single pipeline phase.
type PhaseResult struct {
	Inserted int
	Skipped  int
	Duration time.Duration
	Err      error
}

// Pipeline seeds the demo data set phase by phase.
type Pipeline struct {
	log     *slog.Logger
	repos   Repos
	cfg     Config
	rng     *rand.Rand
	now     func() time.Time
	results map[string]PhaseResult

	users     []domain.User
	documents []domain.Document
}

// NewPipeline creates a new Pipeline.
func NewPipeline(log *slog.Logger, repos Repos, cfg Config) *Pipeline {
	seed := uint64(cfg.RandSeed)
	return &Pipeline{
		log:     log,
		repos:   repos,
		cfg:     cfg,
		rng:     rand.New(rand.NewPCG(seed, seed)),
		now:     time.Now,
		results: make(map[string]PhaseResult),
	}
}

// Results returns phase results after Run completes.
func (p *Pipeline) Results() map[string]PhaseResult {
	return p.results
}

// HasErrors returns true if any phase recorded errors.
func (p *Pipeline) HasErrors() bool {
	for _, r := range p.results {
		if r.Err != nil {
			return true
		}
	}
	return false
}

// Run executes the pipeline. If phases is non-empty, only the listed phases
// run. A failed phase is recorded and the remaining phases still run.
func (p *Pipeline) Run(ctx context.Context, phases []string) error {
	toRun := allPhases
	if len(phases) > 0 {
		filter := make(map[string]bool, len(phases))
		for _, ph := range phases {
			filter[ph] = true
		}
		var filtered []string
		for _, ph := range allPhases {
			if filter[ph] {
				filtered = append(filtered, ph)
				delete(filter, ph)
			}
		}
		for unknown := range filter {
			return fmt.Errorf("unknown phase %q", unknown)
		}
		toRun = filtered
	}

	for _, phase := range toRun {
		if err := ctx.Err(); err != nil {
			return err
		}

		start := time.Now()
		p.log.Info("starting phase", slog.String("phase", phase))

		var result PhaseResult
		switch phase {
		case "users":
			result = p.runUsers(ctx)
		case "documents":
			result = p.runDocuments(ctx)
		case "announcements":
			result = p.runAnnouncements(ctx)
		case "activity":
			result = p.runActivity(ctx)
		case "finance":
			result = p.runFinance(ctx)
		case "workflows":
			result = p.runWorkflows(ctx)
		}
		result.Duration = time.Since(start)
		p.results[phase] = result

		if result.Err != nil {
			p.log.Warn("phase failed",
				slog.String("phase", phase),
				slog.String("error", result.Err.Error()),
				slog.Duration("duration", result.Duration),
			)
		} else {
			p.log.Info("phase completed",
				slog.String("phase", phase),
				slog.Int("inserted", result.Inserted),
				slog.Int("skipped", result.Skipped),
				slog.Duration("duration", result.Duration),
			)
		}
	}

	p.log.Info("pipeline completed", slog.Int("phases_run", len(toRun)))
	return nil
}

var errNoOwner = errors.New("no users seeded and owner_id not configured")

// owner picks the creator for a seeded record.
func (p *Pipeline) owner() (domain.User, error) {
	if len(p.users) > 0 {
		return p.users[p.rng.IntN(len(p.users))], nil
	}
	if p.cfg.OwnerID > 0 {
		return domain.User{ID: p.cfg.OwnerID, FullName: fmt.Sprintf("User %d", p.cfg.OwnerID)}, nil
	}
	return domain.User{}, errNoOwner
}

// past returns a random instant within the configured spread, in UTC.
func (p *Pipeline) past() time.Time {
	days := max(p.cfg.SpreadDays, 1)
	offset := time.Duration(p.rng.Int64N(int64(days) * int64(24*time.Hour)))
	return p.now().UTC().Add(-offset).Truncate(time.Second)
}

func (p *Pipeline) amount(lo, hi float64) float64 {
	return math.Round((lo+p.rng.Float64()*(hi-lo))*100) / 100
}

func pick[T any](rng *rand.Rand, items []T) T {
	return items[rng.IntN(len(items))]
}

func (p *Pipeline) runUsers(ctx context.Context) PhaseResult {
	if p.cfg.DryRun {
		return PhaseResult{Skipped: p.cfg.Users}
	}

	var result PhaseResult
	for range p.cfg.Users {
		first, last := pick(p.rng, firstNames), pick(p.rng, lastNames)
		u, err := p.repos.Users.Create(ctx, domain.User{
			Username:     fmt.Sprintf("demo-%s", uuid.New().String()[:8]),
			FullName:     first + " " + last,
			Role:         domain.UserRoleUser,
			PasswordHash: disabledPasswordHash,
			CreatedAt:    p.past(),
		})
		if err != nil {
			result.Err = fmt.Errorf("create user: %w", err)
			return result
		}
		p.users = append(p.users, *u)
		result.Inserted++
	}
	return result
}

func (p *Pipeline) runDocuments(ctx context.Context) PhaseResult {
	if p.cfg.DryRun {
		return PhaseResult{Skipped: p.cfg.Documents}
	}

	var result PhaseResult
	for i := range p.cfg.Documents {
		owner, err := p.owner()
		if err != nil {
			result.Err = err
			return result
		}
		created := p.past()
		d, err := p.repos.Documents.Create(ctx, domain.Document{
			Name:      fmt.Sprintf("%s #%d", pick(p.rng, documentNames), i+1),
			Status:    pick(p.rng, docStatuses),
			CreatedBy: owner.ID,
			CreatedAt: created,
			UpdatedAt: created,
		})
		if err != nil {
			result.Err = fmt.Errorf("create document: %w", err)
			return result
		}
		p.documents = append(p.documents, *d)
		result.Inserted++
	}
	return result
}

func (p *Pipeline) runAnnouncements(ctx context.Context) PhaseResult {
	if p.cfg.DryRun {
		return PhaseResult{Skipped: p.cfg.Announcements}
	}

	var result PhaseResult
	for range p.cfg.Announcements {
		owner, err := p.owner()
		if err != nil {
			result.Err = err
			return result
		}
		if _, err := p.repos.Announcements.Create(ctx, domain.Announcement{
			Title:     pick(p.rng, announceTitle),
			Category:  pick(p.rng, announceCats),
			CreatedBy: owner.ID,
			CreatedAt: p.past(),
		}); err != nil {
			result.Err = fmt.Errorf("create announcement: %w", err)
			return result
		}
		result.Inserted++
	}
	return result
}

// runActivity writes a join entry per seeded user, then random document
// uploads so the active-user counters have data.
func (p *Pipeline) runActivity(ctx context.Context) PhaseResult {
	if p.cfg.DryRun {
		return PhaseResult{Skipped: p.cfg.Activity}
	}

	var result PhaseResult
	for _, u := range p.users {
		if _, err := p.repos.Activity.Create(ctx, domain.ActivityEntry{
			Type:        domain.ActivityUserJoined,
			Description: fmt.Sprintf("%s joined the portal", u.FullName),
			UserID:      u.ID,
			CreatedAt:   u.CreatedAt,
		}); err != nil {
			result.Err = fmt.Errorf("create activity: %w", err)
			return result
		}
		result.Inserted++
	}

	for range p.cfg.Activity {
		owner, err := p.owner()
		if err != nil {
			result.Err = err
			return result
		}
		entry := domain.ActivityEntry{
			Type:        domain.ActivityAnnouncementCreated,
			Description: fmt.Sprintf("%s posted an announcement", owner.FullName),
			UserID:      owner.ID,
			CreatedAt:   p.past(),
		}
		if len(p.documents) > 0 {
			doc := pick(p.rng, p.documents)
			entry.Type = domain.ActivityDocumentCreated
			entry.Description = fmt.Sprintf("%s uploaded %s", owner.FullName, doc.Name)
			entry.DocumentID = &doc.ID
		}
		if _, err := p.repos.Activity.Create(ctx, entry); err != nil {
			result.Err = fmt.Errorf("create activity: %w", err)
			return result
		}
		result.Inserted++
	}
	return result
}

func (p *Pipeline) runFinance(ctx context.Context) PhaseResult {
	if p.cfg.DryRun {
		return PhaseResult{Skipped: p.cfg.Revenue + p.cfg.Expenses}
	}

	var result PhaseResult
	for range p.cfg.Revenue {
		if _, err := p.repos.Finance.CreateRevenue(ctx, domain.Revenue{
			Source: pick(p.rng, revenueSrc),
			Amount: p.amount(500, 25000),
			Date:   dateOnly(p.past()),
		}); err != nil {
			result.Err = fmt.Errorf("create revenue: %w", err)
			return result
		}
		result.Inserted++
	}
	for range p.cfg.Expenses {
		if _, err := p.repos.Finance.CreateExpense(ctx, domain.Expense{
			Category: pick(p.rng, expenseCats),
			Amount:   p.amount(50, 12000),
			Date:     dateOnly(p.past()),
		}); err != nil {
			result.Err = fmt.Errorf("create expense: %w", err)
			return result
		}
		result.Inserted++
	}
	return result
}

func (p *Pipeline) runWorkflows(ctx context.Context) PhaseResult {
	var result PhaseResult
	for _, wf := range defaultWorkflows {
		ct := wf.ContentType
		existing, err := p.repos.Workflows.List(ctx, &ct)
		if err != nil {
			result.Err = fmt.Errorf("list workflows: %w", err)
			return result
		}
		if len(existing) > 0 || p.cfg.DryRun {
			result.Skipped++
			continue
		}

		now := p.now().UTC()
		wf.Steps = append([]string(nil), wf.Steps...)
		wf.CreatedAt, wf.UpdatedAt = now, now
		if _, err := p.repos.Workflows.Create(ctx, wf); err != nil {
			result.Err = fmt.Errorf("create workflow: %w", err)
			return result
		}
		result.Inserted++
	}
	return result
}

func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
