// internal/handler/dashboard_handler.go
package handler

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/unclebandit/lifecare-cockpit/internal/controller"
	"github.com/unclebandit/lifecare-cockpit/internal/model"
	"github.com/unclebandit/lifecare-cockpit/internal/queue"
	"github.com/unclebandit/lifecare-cockpit/internal/service"
)

// DashboardHandler holds the dependencies for the read-only endpoints
type DashboardHandler struct {
	Service  *service.CockpitService
	Activity *queue.ActivityFeed
	Logger   *zap.Logger
}

// Mount registers the read routes on r.
func (h *DashboardHandler) Mount(r chi.Router) {
	r.Get("/campaigns", h.ListCampaigns)
	r.Get("/campaigns/{id}", h.GetCampaign)
	r.Get("/tasks", h.ListTasks)
	r.Get("/tasks/{id}", h.GetTask)
	r.Get("/board", h.GetBoard)
	r.Get("/posts", h.ListPosts)
	r.Get("/posts/{id}", h.GetPost)
	r.Get("/metrics", h.ListMetrics)
	r.Get("/assistant/messages", h.ListAssistantMessages)
	r.Get("/ideas", h.ListIdeas)
	r.Get("/preferences", h.GetPreferences)
	r.Get("/cadence", h.GetCadence)
	r.Get("/dashboard", h.GetDashboard)
	r.Get("/activity", h.ListActivity)
	r.Get("/state", h.GetState)
}

func data(v any) map[string]any {
	return map[string]any{"data": v}
}

// ListCampaigns returns campaigns by start date; ?status= filters them
func (h *DashboardHandler) ListCampaigns(w http.ResponseWriter, r *http.Request) {
	campaigns := h.Service.UpcomingCampaigns()

	if status := model.CampaignStatus(r.URL.Query().Get("status")); status != "" {
		filtered := make([]model.Campaign, 0, len(campaigns))
		for _, c := range campaigns {
			if c.Status == status {
				filtered = append(filtered, c)
			}
		}
		campaigns = filtered
	}
	controller.RespondJSON(w, http.StatusOK, data(campaigns))
}

func (h *DashboardHandler) GetCampaign(w http.ResponseWriter, r *http.Request) {
	campaign, err := h.Service.Campaign(chi.URLParam(r, "id"))
	if err != nil {
		controller.RespondError(w, err)
		return
	}
	controller.RespondJSON(w, http.StatusOK, campaign)
}

func (h *DashboardHandler) GetTask(w http.ResponseWriter, r *http.Request) {
	task, err := h.Service.Task(chi.URLParam(r, "id"))
	if err != nil {
		controller.RespondError(w, err)
		return
	}
	controller.RespondJSON(w, http.StatusOK, task)
}

func (h *DashboardHandler) GetPost(w http.ResponseWriter, r *http.Request) {
	post, err := h.Service.Post(chi.URLParam(r, "id"))
	if err != nil {
		controller.RespondError(w, err)
		return
	}
	controller.RespondJSON(w, http.StatusOK, post)
}

func (h *DashboardHandler) ListTasks(w http.ResponseWriter, r *http.Request) {
	controller.RespondJSON(w, http.StatusOK, data(h.Service.Store.Tasks()))
}

func (h *DashboardHandler) GetBoard(w http.ResponseWriter, r *http.Request) {
	controller.RespondJSON(w, http.StatusOK, data(h.Service.Board()))
}

func (h *DashboardHandler) ListPosts(w http.ResponseWriter, r *http.Request) {
	controller.RespondJSON(w, http.StatusOK, data(h.Service.Timeline()))
}

func (h *DashboardHandler) ListMetrics(w http.ResponseWriter, r *http.Request) {
	controller.RespondJSON(w, http.StatusOK, map[string]any{
		"data":   h.Service.Store.Metrics(),
		"totals": h.Service.MetricTotals(),
	})
}

func (h *DashboardHandler) ListAssistantMessages(w http.ResponseWriter, r *http.Request) {
	controller.RespondJSON(w, http.StatusOK, data(h.Service.Store.Thread()))
}

// ListIdeas returns the idea bank, generating it on first view
func (h *DashboardHandler) ListIdeas(w http.ResponseWriter, r *http.Request) {
	controller.RespondJSON(w, http.StatusOK, data(h.Service.EnsureIdeas()))
}

func (h *DashboardHandler) GetPreferences(w http.ResponseWriter, r *http.Request) {
	controller.RespondJSON(w, http.StatusOK, h.Service.Store.Preferences())
}

func (h *DashboardHandler) GetCadence(w http.ResponseWriter, r *http.Request) {
	controller.RespondJSON(w, http.StatusOK, data(h.Service.Cadence()))
}

func (h *DashboardHandler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	d := h.Service.Dashboard()
	if h.Logger != nil {
		h.Logger.Debug("dashboard requested", zap.Int("active_campaigns", d.Summary.ActiveCampaigns))
	}
	controller.RespondJSON(w, http.StatusOK, d)
}

// ListActivity returns recent workflow events; ?limit= keeps the newest n
func (h *DashboardHandler) ListActivity(w http.ResponseWriter, r *http.Request) {
	events := []queue.WorkflowEvent{}
	if h.Activity != nil {
		events = h.Activity.Recent()
	}

	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		limit, err := strconv.Atoi(limitStr)
		if err != nil || limit < 1 {
			controller.RespondJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid limit"})
			return
		}
		if limit < len(events) {
			events = events[len(events)-limit:]
		}
	}
	controller.RespondJSON(w, http.StatusOK, data(events))
}

// GetState exports the whole workspace in one document
func (h *DashboardHandler) GetState(w http.ResponseWriter, r *http.Request) {
	controller.RespondJSON(w, http.StatusOK, h.Service.State())
}
