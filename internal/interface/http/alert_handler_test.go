package handlers_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oualidazemray/Bellavista1.0-sub002/internal/application"
	"github.com/oualidazemray/Bellavista1.0-sub002/internal/domain/entity"
	repo "github.com/oualidazemray/Bellavista1.0-sub002/internal/domain/repository"
	handlers "github.com/oualidazemray/Bellavista1.0-sub002/internal/interface/http"
)

// fakeAlertRepo reproduces the listing contract of the postgres
// repository: admin scope, unread first, newest first within each group.
type fakeAlertRepo struct {
	mu     sync.Mutex
	alerts []entity.Alert
}

func (r *fakeAlertRepo) Create(_ context.Context, a *entity.Alert) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	a.ID = uuid.NewString()
	r.alerts = append(r.alerts, *a)
	return nil
}

func (r *fakeAlertRepo) List(_ context.Context, filter repo.AlertFilter, offset, limit int) ([]entity.Alert, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	matched := []entity.Alert{}
	for _, a := range r.alerts {
		if !a.ForAdmin {
			continue
		}
		switch filter {
		case repo.AlertFilterRead:
			if !a.Read {
				continue
			}
		case repo.AlertFilterUnread:
			if a.Read {
				continue
			}
		}
		matched = append(matched, a)
	}
	sort.SliceStable(matched, func(i, j int) bool {
		if matched[i].Read != matched[j].Read {
			return !matched[i].Read
		}
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})

	total := int64(len(matched))
	if offset >= len(matched) {
		return []entity.Alert{}, total, nil
	}
	end := offset + limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[offset:end], total, nil
}

func (r *fakeAlertRepo) SetRead(_ context.Context, id string, read bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.alerts {
		if r.alerts[i].ID == id && r.alerts[i].ForAdmin {
			r.alerts[i].Read = read
			return nil
		}
	}
	return application.ErrNotFound
}

func (r *fakeAlertRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.alerts {
		if r.alerts[i].ID == id && r.alerts[i].ForAdmin {
			r.alerts = append(r.alerts[:i], r.alerts[i+1:]...)
			return nil
		}
	}
	return application.ErrNotFound
}

func (r *fakeAlertRepo) MarkAllRead(_ context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	for i := range r.alerts {
		if r.alerts[i].ForAdmin && !r.alerts[i].Read {
			r.alerts[i].Read = true
			n++
		}
	}
	return n, nil
}

func newAlertRouter(t *testing.T) (*gin.Engine, *fakeAlertRepo) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	fake := &fakeAlertRepo{}
	svc := application.NewAlertService(fake, quietLogger())
	h := handlers.NewAlertHandler(svc, quietLogger())

	r := gin.New()
	r.GET("/api/admin/alerts", h.List)
	r.PUT("/api/admin/alerts/:id", h.Update)
	r.DELETE("/api/admin/alerts/:id", h.Delete)
	r.POST("/api/admin/alerts", h.MarkAllRead)
	return r, fake
}

func seedAlerts(t *testing.T, fake *fakeAlertRepo, n int, read func(i int) bool) []entity.Alert {
	t.Helper()
	base := time.Now().Add(-24 * time.Hour)
	out := make([]entity.Alert, 0, n)
	for i := 0; i < n; i++ {
		a := entity.Alert{
			Type:      "NEW_RESERVATION",
			Message:   fmt.Sprintf("alert-%02d", i),
			Read:      read(i),
			ForAdmin:  true,
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		}
		require.NoError(t, fake.Create(context.Background(), &a))
		out = append(out, a)
	}
	return out
}

func getJSON(r *gin.Engine, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w
}

func alertMessages(t *testing.T, env envelope) []string {
	t.Helper()
	raw, ok := env.Data["alerts"].([]any)
	require.True(t, ok, "alerts field missing")
	out := make([]string, 0, len(raw))
	for _, item := range raw {
		m, ok := item.(map[string]any)
		require.True(t, ok)
		out = append(out, m["message"].(string))
	}
	return out
}

func TestListAlertsSecondPage(t *testing.T) {
	r, fake := newAlertRouter(t)
	seedAlerts(t, fake, 30, func(int) bool { return false })

	w := getJSON(r, "/api/admin/alerts?page=2&limit=15")
	require.Equal(t, http.StatusOK, w.Code)

	env := decodeEnvelope(t, w)
	assert.EqualValues(t, 2, env.Data["total_pages"])
	assert.EqualValues(t, 2, env.Data["current_page"])
	assert.EqualValues(t, 30, env.Data["total_alerts"])

	msgs := alertMessages(t, env)
	require.Len(t, msgs, 15)
	// newest-first over 30 alerts: page two holds the 15 oldest
	assert.Equal(t, "alert-14", msgs[0])
	assert.Equal(t, "alert-00", msgs[14])
}

func TestListAlertsUnreadFirst(t *testing.T) {
	r, fake := newAlertRouter(t)
	// even indexes read, odd unread; higher index is newer
	seedAlerts(t, fake, 6, func(i int) bool { return i%2 == 0 })

	w := getJSON(r, "/api/admin/alerts")
	require.Equal(t, http.StatusOK, w.Code)

	msgs := alertMessages(t, decodeEnvelope(t, w))
	assert.Equal(t, []string{
		"alert-05", "alert-03", "alert-01",
		"alert-04", "alert-02", "alert-00",
	}, msgs)
}

func TestListAlertsUnreadFilter(t *testing.T) {
	r, fake := newAlertRouter(t)
	seedAlerts(t, fake, 6, func(i int) bool { return i%2 == 0 })

	w := getJSON(r, "/api/admin/alerts?filter=unread")
	require.Equal(t, http.StatusOK, w.Code)

	env := decodeEnvelope(t, w)
	assert.EqualValues(t, 3, env.Data["total_alerts"])
	assert.Equal(t, []string{"alert-05", "alert-03", "alert-01"}, alertMessages(t, env))
}

func TestListAlertsClampsBadParams(t *testing.T) {
	r, fake := newAlertRouter(t)
	seedAlerts(t, fake, 3, func(int) bool { return false })

	w := getJSON(r, "/api/admin/alerts?page=0&limit=-5")
	require.Equal(t, http.StatusOK, w.Code)

	env := decodeEnvelope(t, w)
	assert.EqualValues(t, 1, env.Data["current_page"])
	assert.Len(t, env.Data["alerts"], 3)
}

func TestUpdateAlertNotFound(t *testing.T) {
	r, _ := newAlertRouter(t)

	w := postJSONMethod(r, http.MethodPut, "/api/admin/alerts/"+uuid.NewString(), map[string]any{"readStatus": true})
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "alert not found", decodeEnvelope(t, w).Message)
}

func TestUpdateAlertTogglesRead(t *testing.T) {
	r, fake := newAlertRouter(t)
	alerts := seedAlerts(t, fake, 1, func(int) bool { return false })

	w := postJSONMethod(r, http.MethodPut, "/api/admin/alerts/"+alerts[0].ID, map[string]any{"readStatus": true})
	require.Equal(t, http.StatusOK, w.Code)

	listed, _, err := fake.List(context.Background(), repo.AlertFilterRead, 0, 10)
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.True(t, listed[0].Read)
}

func TestUpdateAlertMissingReadStatus(t *testing.T) {
	r, fake := newAlertRouter(t)
	alerts := seedAlerts(t, fake, 1, func(int) bool { return false })

	w := postJSONMethod(r, http.MethodPut, "/api/admin/alerts/"+alerts[0].ID, map[string]any{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDeleteAlertNotFound(t *testing.T) {
	r, _ := newAlertRouter(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/api/admin/alerts/"+uuid.NewString(), nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "alert not found", decodeEnvelope(t, w).Message)
}

func TestDeleteAlertRemovesRow(t *testing.T) {
	r, fake := newAlertRouter(t)
	alerts := seedAlerts(t, fake, 2, func(int) bool { return false })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/api/admin/alerts/"+alerts[0].ID, nil))
	require.Equal(t, http.StatusOK, w.Code)

	_, total, err := fake.List(context.Background(), repo.AlertFilterAll, 0, 10)
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
}

func TestMarkAllReadIdempotent(t *testing.T) {
	r, fake := newAlertRouter(t)
	seedAlerts(t, fake, 4, func(i int) bool { return i == 0 })

	w := postJSONMethod(r, http.MethodPost, "/api/admin/alerts", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.EqualValues(t, 3, decodeEnvelope(t, w).Data["marked_read"])

	// second run finds nothing unread
	w = postJSONMethod(r, http.MethodPost, "/api/admin/alerts", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.EqualValues(t, 0, decodeEnvelope(t, w).Data["marked_read"])
}
