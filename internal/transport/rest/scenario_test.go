package rest

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"slices"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sharankona/CompanyPortal-sub000/internal/auth"
	"github.com/sharankona/CompanyPortal-sub000/internal/domain"
	"github.com/sharankona/CompanyPortal-sub000/internal/service/content"
	"github.com/sharankona/CompanyPortal-sub000/internal/transport/middleware"
)

// memStore backs the content service with maps so the HTTP flow can be
// exercised without a database.
type memStore struct {
	mu       sync.Mutex
	nextID   int64
	items    map[int64]domain.ContentItem
	history  []domain.ContentHistoryEntry
	activity []domain.ActivityEntry
}

func newMemStore() *memStore {
	return &memStore{items: make(map[int64]domain.ContentItem)}
}

type memItems struct{ s *memStore }

func (r memItems) List(_ context.Context, f domain.ContentFilter) ([]domain.ContentItem, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []domain.ContentItem
	for _, it := range r.s.items {
		if f.ContentType != nil && it.ContentType != *f.ContentType {
			continue
		}
		if f.Status != nil && it.Status != *f.Status {
			continue
		}
		out = append(out, it)
	}
	return out, nil
}

func (r memItems) GetByID(_ context.Context, id int64) (*domain.ContentItem, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	it, ok := r.s.items[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &it, nil
}

func (r memItems) GetForUpdate(ctx context.Context, id int64) (*domain.ContentItem, error) {
	return r.GetByID(ctx, id)
}

func (r memItems) Create(_ context.Context, it domain.ContentItem) (*domain.ContentItem, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.nextID++
	it.ID = r.s.nextID
	r.s.items[it.ID] = it
	return &it, nil
}

func (r memItems) Update(_ context.Context, it domain.ContentItem) (*domain.ContentItem, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.items[it.ID]; !ok {
		return nil, domain.ErrNotFound
	}
	r.s.items[it.ID] = it
	return &it, nil
}

func (r memItems) Delete(_ context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.items[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.s.items, id)
	return nil
}

type memHistory struct{ s *memStore }

func (r memHistory) Create(_ context.Context, e domain.ContentHistoryEntry) (*domain.ContentHistoryEntry, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	e.ID = int64(len(r.s.history) + 1)
	r.s.history = append(r.s.history, e)
	return &e, nil
}

func (r memHistory) ListByContent(_ context.Context, contentID int64) ([]domain.ContentHistoryEntry, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []domain.ContentHistoryEntry
	for _, e := range r.s.history {
		if e.ContentID == contentID {
			out = append(out, e)
		}
	}
	slices.Reverse(out)
	return out, nil
}

func (r memHistory) DeleteByContent(_ context.Context, contentID int64) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	before := len(r.s.history)
	r.s.history = slices.DeleteFunc(r.s.history, func(e domain.ContentHistoryEntry) bool {
		return e.ContentID == contentID
	})
	return int64(before - len(r.s.history)), nil
}

func (s *memStore) Log(_ context.Context, e domain.ActivityEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.activity = append(s.activity, e)
	return nil
}

func (s *memStore) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func newScenarioServer(t *testing.T) (http.Handler, *auth.JWTManager, *memStore) {
	t.Helper()

	store := newMemStore()
	clock := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	svc := content.NewService(discardLogger(),
		memItems{store}, memHistory{store}, store, store,
		content.WithClock(func() time.Time {
			clock = clock.Add(time.Minute)
			return clock
		}),
	)

	mux := NewRouter(Handlers{
		Health:  NewHealthHandler("test"),
		Content: NewContentHandler(svc, discardLogger()),
	}, nil)

	jwt := auth.NewJWTManager("scenario-secret-at-least-32-bytes!", "portal", time.Hour)
	handler := middleware.Chain(
		middleware.RequestID(),
		middleware.ForPrefix("/api/", middleware.Auth(jwt)),
	)(mux)
	return handler, jwt, store
}

func do(t *testing.T, h http.Handler, token, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestScenario_LaunchPost(t *testing.T) {
	t.Parallel()

	h, jwt, store := newScenarioServer(t)
	token, err := jwt.GenerateAccessToken(auth.Identity{UserID: 1, Role: "user", Name: "Alice"})
	require.NoError(t, err)

	rec := do(t, h, token, http.MethodPost, "/api/content", `{"title":"  Launch Post  ","contentType":"blog"}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var created contentItemResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&created))
	assert.Equal(t, "Launch Post", created.Title)
	assert.Equal(t, "draft", created.Status)
	assert.Equal(t, int64(1), created.CreatedBy)

	target := "/api/content/" + jsonID(created.ID)

	rec = do(t, h, token, http.MethodPut, target, `{"status":"review"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var updated contentItemResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&updated))
	assert.Equal(t, "review", updated.Status)
	assert.True(t, updated.UpdatedAt.After(updated.CreatedAt))

	rec = do(t, h, token, http.MethodGet, target, "")
	require.Equal(t, http.StatusOK, rec.Code)
	var got contentWithHistoryResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
	require.Len(t, got.History, 2)
	assert.Equal(t, "review", got.History[0].Status)
	require.NotNil(t, got.History[0].Notes)
	assert.Equal(t, "Status changed to review", *got.History[0].Notes)
	assert.Equal(t, "draft", got.History[1].Status)

	// Same status again writes no new history.
	rec = do(t, h, token, http.MethodPut, target, `{"status":"review","title":"Launch Post v2"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	rec = do(t, h, token, http.MethodGet, target, "")
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
	assert.Len(t, got.History, 2)
	assert.Equal(t, "Launch Post v2", got.Title)

	rec = do(t, h, token, http.MethodGet, "/api/content?status=review", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var listed []contentItemResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&listed))
	assert.Len(t, listed, 1)

	rec = do(t, h, token, http.MethodDelete, target, "")
	require.Equal(t, http.StatusOK, rec.Code)

	rec = do(t, h, token, http.MethodGet, target, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	store.mu.Lock()
	defer store.mu.Unlock()
	assert.Empty(t, store.history)
	require.Len(t, store.activity, 3)
	assert.Equal(t, domain.ActivityContentCreated, store.activity[0].Type)
	assert.Equal(t, `Alice created blog content "Launch Post"`, store.activity[0].Description)
	assert.Equal(t, domain.ActivityContentUpdated, store.activity[1].Type)
	assert.Equal(t, domain.ActivityContentDeleted, store.activity[2].Type)
}

func TestScenario_RequiresToken(t *testing.T) {
	t.Parallel()

	h, _, _ := newScenarioServer(t)

	rec := do(t, h, "", http.MethodGet, "/api/content", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = do(t, h, "garbage", http.MethodGet, "/api/content", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	// Probes stay public.
	rec = do(t, h, "", http.MethodGet, "/live", "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestScenario_ValidationErrorsListFields(t *testing.T) {
	t.Parallel()

	h, jwt, _ := newScenarioServer(t)
	token, err := jwt.GenerateAccessToken(auth.Identity{UserID: 2, Role: "user"})
	require.NoError(t, err)

	rec := do(t, h, token, http.MethodPost, "/api/content", `{"title":"   ","contentType":"podcast"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	resp := decodeError(t, rec)
	fields := make([]string, 0, len(resp.Errors))
	for _, fe := range resp.Errors {
		fields = append(fields, fe.Field)
	}
	assert.ElementsMatch(t, []string{"title", "contentType"}, fields)
}

func jsonID(id int64) string {
	b, _ := json.Marshal(id)
	return string(b)
}
