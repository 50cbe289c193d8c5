// internal/controller/cockpit_controller.go
package controller

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"golang.org/x/time/rate"

	"github.com/unclebandit/lifecare-cockpit/internal/model"
	"github.com/unclebandit/lifecare-cockpit/internal/service"
)

// CockpitController serves the command endpoints.
type CockpitController struct {
	CockpitService *service.CockpitService
	// AssistantLimiter throttles prompts; nil means unlimited.
	AssistantLimiter *rate.Limiter
}

// Mount registers the command routes on r.
func (c *CockpitController) Mount(r chi.Router) {
	r.Post("/campaigns", c.CreateCampaign)
	r.Post("/tasks", c.CreateTask)
	r.Post("/tasks/{id}/advance", c.AdvanceTask)
	r.Post("/posts", c.SchedulePost)
	r.Put("/posts/{id}/status", c.UpdatePostStatus)
	r.Post("/posts/{id}/toggle", c.TogglePostStatus)
	r.Post("/assistant/messages", c.SendAssistantMessage)
	r.Post("/assistant/refresh", c.RefreshAssistant)
	r.Post("/ideas/regenerate", c.RegenerateIdeas)
	r.Patch("/preferences", c.UpdatePreferences)
	r.Post("/preferences/keywords", c.AddKeyword)
}

func (c *CockpitController) CreateCampaign(w http.ResponseWriter, r *http.Request) {
	var body service.NewCampaign
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		badRequest(w, "invalid body")
		return
	}

	campaign, err := c.CockpitService.AddCampaign(body)
	if err != nil {
		RespondError(w, err)
		return
	}
	RespondJSON(w, http.StatusCreated, campaign)
}

func (c *CockpitController) CreateTask(w http.ResponseWriter, r *http.Request) {
	var body service.NewTask
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		badRequest(w, "invalid body")
		return
	}

	task, err := c.CockpitService.AddTask(body)
	if err != nil {
		RespondError(w, err)
		return
	}
	RespondJSON(w, http.StatusCreated, task)
}

func (c *CockpitController) AdvanceTask(w http.ResponseWriter, r *http.Request) {
	task, err := c.CockpitService.AdvanceTask(chi.URLParam(r, "id"))
	if err != nil {
		RespondError(w, err)
		return
	}
	RespondJSON(w, http.StatusOK, task)
}

func (c *CockpitController) SchedulePost(w http.ResponseWriter, r *http.Request) {
	var body service.NewPost
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		badRequest(w, "invalid body")
		return
	}

	post, err := c.CockpitService.SchedulePost(body)
	if err != nil {
		RespondError(w, err)
		return
	}
	RespondJSON(w, http.StatusCreated, post)
}

func (c *CockpitController) UpdatePostStatus(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Status model.PostStatus `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		badRequest(w, "invalid body")
		return
	}

	post, err := c.CockpitService.UpdatePostStatus(chi.URLParam(r, "id"), body.Status)
	if err != nil {
		RespondError(w, err)
		return
	}
	RespondJSON(w, http.StatusOK, post)
}

func (c *CockpitController) TogglePostStatus(w http.ResponseWriter, r *http.Request) {
	post, err := c.CockpitService.TogglePostStatus(chi.URLParam(r, "id"))
	if err != nil {
		RespondError(w, err)
		return
	}
	RespondJSON(w, http.StatusOK, post)
}

func (c *CockpitController) SendAssistantMessage(w http.ResponseWriter, r *http.Request) {
	if c.AssistantLimiter != nil && !c.AssistantLimiter.Allow() {
		RespondJSON(w, http.StatusTooManyRequests, map[string]string{"error": "assistant is still syncing, try again shortly"})
		return
	}

	var body struct {
		Content string `json:"content"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		badRequest(w, "invalid body")
		return
	}

	exchange, err := c.CockpitService.AskAssistant(r.Context(), body.Content)
	if err != nil {
		RespondError(w, err)
		return
	}
	RespondJSON(w, http.StatusCreated, exchange)
}

func (c *CockpitController) RefreshAssistant(w http.ResponseWriter, r *http.Request) {
	RespondJSON(w, http.StatusCreated, c.CockpitService.RefreshAssistant())
}

func (c *CockpitController) RegenerateIdeas(w http.ResponseWriter, r *http.Request) {
	RespondJSON(w, http.StatusOK, map[string]any{
		"data": c.CockpitService.RegenerateIdeas(),
	})
}

func (c *CockpitController) UpdatePreferences(w http.ResponseWriter, r *http.Request) {
	var patch model.PreferencesPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		badRequest(w, "invalid body")
		return
	}

	prefs, err := c.CockpitService.UpdatePreferences(patch)
	if err != nil {
		RespondError(w, err)
		return
	}
	RespondJSON(w, http.StatusOK, prefs)
}

func (c *CockpitController) AddKeyword(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Keyword string `json:"keyword"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		badRequest(w, "invalid body")
		return
	}

	prefs, err := c.CockpitService.AddKeyword(body.Keyword)
	if err != nil {
		RespondError(w, err)
		return
	}
	RespondJSON(w, http.StatusOK, prefs)
}
