package controller_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"golang.org/x/time/rate"

	"github.com/unclebandit/lifecare-cockpit/internal/controller"
	"github.com/unclebandit/lifecare-cockpit/internal/model"
	"github.com/unclebandit/lifecare-cockpit/internal/service"
	"github.com/unclebandit/lifecare-cockpit/internal/store"
)

var testNow = time.Date(2026, 10, 14, 11, 0, 0, 0, time.UTC)

func newTestRouter(limiter *rate.Limiter) (http.Handler, *store.Store) {
	n := 0
	ids := func() string {
		n++
		return fmt.Sprintf("id-%d", n)
	}
	st := store.New(store.DefaultSeed(testNow, ids),
		store.WithClock(func() time.Time { return testNow }),
		store.WithIDGenerator(ids))

	ctrl := &controller.CockpitController{
		CockpitService:   &service.CockpitService{Store: st},
		AssistantLimiter: limiter,
	}
	r := chi.NewRouter()
	ctrl.Mount(r)
	return r, st
}

func do(t *testing.T, h http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatal(err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func TestCreateCampaignHandler(t *testing.T) {
	h, st := newTestRouter(nil)

	w := do(t, h, "POST", "/campaigns", map[string]any{
		"name":      "Metabolic Health Month",
		"objective": "Register 80 diabetes screenings",
		"channels":  []string{"Instagram", "WhatsApp"},
		"priority":  "high",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}

	var c model.Campaign
	if err := json.NewDecoder(w.Body).Decode(&c); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if c.ID == "" || c.Priority != model.CampaignHigh || c.Status != model.CampaignPlanning {
		t.Errorf("unexpected campaign %+v", c)
	}
	if len(st.Campaigns()) != 3 {
		t.Errorf("campaign not stored")
	}
}

func TestCreateCampaignRejectsInvalidRange(t *testing.T) {
	h, _ := newTestRouter(nil)

	w := do(t, h, "POST", "/campaigns", map[string]any{
		"name":       "Backwards",
		"objective":  "Time travel",
		"channels":   []string{"Blog"},
		"start_date": testNow.Format(time.RFC3339),
		"end_date":   testNow.Add(-time.Hour).Format(time.RFC3339),
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "end_date") {
		t.Errorf("expected end_date in error, got %s", w.Body.String())
	}
}

func TestInvalidBody(t *testing.T) {
	h, _ := newTestRouter(nil)
	req := httptest.NewRequest("POST", "/tasks", strings.NewReader("{not json"))
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

func TestAdvanceTaskHandler(t *testing.T) {
	h, st := newTestRouter(nil)
	task := st.Tasks()[2] // Ideation

	w := do(t, h, "POST", "/tasks/"+task.ID+"/advance", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var got model.Task
	json.NewDecoder(w.Body).Decode(&got)
	if got.Stage != model.StageDrafting {
		t.Errorf("expected Drafting, got %s", got.Stage)
	}

	w = do(t, h, "POST", "/tasks/missing/advance", nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", w.Code)
	}
}

func TestPostStatusHandlers(t *testing.T) {
	h, st := newTestRouter(nil)
	post := st.ScheduledPosts()[0]

	w := do(t, h, "PUT", "/posts/"+post.ID+"/status", map[string]string{"status": "published"})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	w = do(t, h, "POST", "/posts/"+post.ID+"/toggle", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if got, _ := st.Post(post.ID); got != post {
		t.Errorf("expected post restored, got %+v", got)
	}

	w = do(t, h, "PUT", "/posts/"+post.ID+"/status", map[string]string{"status": "archived"})
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

func TestSendAssistantMessageHandler(t *testing.T) {
	h, _ := newTestRouter(nil)

	w := do(t, h, "POST", "/assistant/messages", map[string]string{"content": "Show me the calendar"})
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}

	var res service.AssistantExchange
	if err := json.NewDecoder(w.Body).Decode(&res); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if res.Prompt.Role != model.RoleUser || res.Reply.Role != model.RoleAssistant {
		t.Errorf("unexpected roles %s / %s", res.Prompt.Role, res.Reply.Role)
	}
	if !strings.Contains(res.Reply.Content, "Reel for Instagram") {
		t.Errorf("expected next post in reply, got %q", res.Reply.Content)
	}
}

func TestSendAssistantMessageRateLimited(t *testing.T) {
	h, _ := newTestRouter(rate.NewLimiter(rate.Every(time.Hour), 1))

	if w := do(t, h, "POST", "/assistant/messages", map[string]string{"content": "ideas"}); w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", w.Code)
	}
	if w := do(t, h, "POST", "/assistant/messages", map[string]string{"content": "ideas"}); w.Code != http.StatusTooManyRequests {
		t.Errorf("expected 429, got %d", w.Code)
	}
}

func TestPreferencesHandlers(t *testing.T) {
	h, st := newTestRouter(nil)

	w := do(t, h, "PATCH", "/preferences", map[string]any{"tone": "expert", "channels": []string{"Blog", "X"}})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	prefs := st.Preferences()
	if prefs.Tone != model.ToneExpert || len(prefs.Channels) != 2 || prefs.Audience != model.AudienceFamilies {
		t.Errorf("unexpected preferences %+v", prefs)
	}

	w = do(t, h, "POST", "/preferences/keywords", map[string]string{"keyword": "Diabetes"})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if kw := st.Preferences().Keywords; kw[len(kw)-1] != "Diabetes" {
		t.Errorf("keyword not appended: %v", kw)
	}

	w = do(t, h, "PATCH", "/preferences", map[string]any{"audience": "pets"})
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

func TestRegenerateIdeasHandler(t *testing.T) {
	h, st := newTestRouter(nil)

	w := do(t, h, "POST", "/ideas/regenerate", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var res struct {
		Data []model.ContentIdea `json:"data"`
	}
	json.NewDecoder(w.Body).Decode(&res)
	if len(res.Data) != 3 || len(st.IdeaBank()) != 3 {
		t.Errorf("expected 3 ideas, got %d", len(res.Data))
	}
}
