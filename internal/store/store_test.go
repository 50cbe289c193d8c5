package store

import (
	"fmt"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/unclebandit/lifecare-cockpit/internal/model"
	"github.com/unclebandit/lifecare-cockpit/internal/strategy"
)

var testNow = time.Date(2026, 10, 14, 9, 30, 0, 0, time.UTC)

func counterIDs(prefix string) func() string {
	var mu sync.Mutex
	n := 0
	return func() string {
		mu.Lock()
		defer mu.Unlock()
		n++
		return fmt.Sprintf("%s-%d", prefix, n)
	}
}

func newTestStore(t *testing.T) *Store {
	t.Helper()
	seed := DefaultSeed(testNow, counterIDs("seed"))
	return New(seed,
		WithClock(func() time.Time { return testNow }),
		WithIDGenerator(counterIDs("id")),
	)
}

func TestSeedHasTwoActiveCampaigns(t *testing.T) {
	s := newTestStore(t)

	campaigns := s.Campaigns()
	require.Len(t, campaigns, 2)
	active := 0
	for _, c := range campaigns {
		if c.Active() {
			active++
		}
	}
	assert.Equal(t, 2, active)
	assert.Equal(t, model.CampaignLive, campaigns[0].Status)
	assert.Equal(t, model.CampaignPlanning, campaigns[1].Status)

	require.Len(t, s.Thread(), 1)
	assert.Equal(t, model.RoleAssistant, s.Thread()[0].Role)
	assert.Empty(t, s.IdeaBank())
}

func TestAddCampaignAndTaskAppendWithGeneratedIDs(t *testing.T) {
	s := newTestStore(t)

	c := s.AddCampaign(model.Campaign{ID: "ignored", Name: "Metabolic Health Month", Status: model.CampaignPlanning})
	assert.Equal(t, "id-1", c.ID)
	campaigns := s.Campaigns()
	require.Len(t, campaigns, 3)
	assert.Equal(t, c, campaigns[2])

	task := s.AddTask(model.Task{Title: "Shoot clinic b-roll", Stage: model.StageIdeation, CampaignID: "dangling"})
	assert.Equal(t, "id-2", task.ID)
	tasks := s.Tasks()
	require.Len(t, tasks, 4)
	assert.Equal(t, task, tasks[3])
	assert.Equal(t, UnknownCampaign, s.CampaignName(task.CampaignID))
	assert.Equal(t, "Metabolic Health Month", s.CampaignName(c.ID))
}

func TestAdvanceTaskUnknownIDLeavesTasksUnchanged(t *testing.T) {
	s := newTestStore(t)
	before := s.Tasks()

	_, ok := s.AdvanceTask("missing", model.StagePublished)
	assert.False(t, ok)

	if diff := cmp.Diff(before, s.Tasks()); diff != "" {
		t.Errorf("tasks changed (-before +after):\n%s", diff)
	}
}

func TestAdvanceTaskReplacesOnlyMatchingTask(t *testing.T) {
	s := newTestStore(t)
	before := s.Tasks()
	target := before[1]

	updated, ok := s.AdvanceTask(target.ID, model.NextStage(target.Stage))
	require.True(t, ok)
	assert.Equal(t, model.StageReview, updated.Stage)

	after := s.Tasks()
	want := append([]model.Task(nil), before...)
	want[1].Stage = model.StageReview
	if diff := cmp.Diff(want, after); diff != "" {
		t.Errorf("unexpected tasks (-want +got):\n%s", diff)
	}
	assert.Equal(t, model.StageDrafting, before[1].Stage, "earlier snapshot must not change")
}

func TestAdvanceTaskAtTerminalStageStaysPublished(t *testing.T) {
	s := newTestStore(t)
	task := s.AddTask(model.Task{Title: "Done", Stage: model.StagePublished})

	updated, ok := s.AdvanceTask(task.ID, model.NextStage(task.Stage))
	require.True(t, ok)
	assert.Equal(t, model.StagePublished, updated.Stage)
}

func TestUpdatePostStatusRoundTrip(t *testing.T) {
	s := newTestStore(t)
	original := s.ScheduledPosts()[0]
	require.Equal(t, model.PostScheduled, original.Status)

	published, ok := s.UpdatePostStatus(original.ID, original.Status.Toggled())
	require.True(t, ok)
	assert.Equal(t, model.PostPublished, published.Status)

	restored, ok := s.UpdatePostStatus(original.ID, published.Status.Toggled())
	require.True(t, ok)
	if diff := cmp.Diff(original, restored); diff != "" {
		t.Errorf("post changed after two toggles (-want +got):\n%s", diff)
	}

	_, ok = s.UpdatePostStatus("missing", model.PostPublished)
	assert.False(t, ok)
}

func TestSchedulePostAppends(t *testing.T) {
	s := newTestStore(t)
	p := s.SchedulePost(model.ScheduledPost{Channel: model.X, Format: model.FormatShort, Status: model.PostDraft})

	posts := s.ScheduledPosts()
	require.Len(t, posts, 4)
	assert.Equal(t, p, posts[3])
	assert.Equal(t, "id-1", p.ID)
}

func TestPushAssistantMessageAppendsUserAndReply(t *testing.T) {
	s := newTestStore(t)

	user, reply := s.PushAssistantMessage("What is on the schedule?")
	thread := s.Thread()
	require.Len(t, thread, 3)
	assert.Equal(t, user, thread[1])
	assert.Equal(t, reply, thread[2])
	assert.Equal(t, model.RoleUser, user.Role)
	assert.Equal(t, testNow, user.Timestamp)
	assert.Equal(t, model.RoleAssistant, reply.Role)

	next := s.ScheduledPosts()[0]
	assert.Contains(t, reply.Content, string(next.Channel))
	assert.Contains(t, reply.Content, string(next.Format))
	assert.Contains(t, reply.Content, "Your next content drop is a Reel for Instagram")
}

func TestRefreshAssistantAppendsReplyOnly(t *testing.T) {
	s := newTestStore(t)
	s.PushAssistantMessage("share the roi report")

	reply := s.RefreshAssistant()
	thread := s.Thread()
	require.Len(t, thread, 4)
	assert.Equal(t, reply, thread[3])
	assert.Contains(t, reply.Content, "ROI highlight: LinkedIn")
}

func TestRegenerateIdeasUsesFirstActiveCampaign(t *testing.T) {
	s := New(Seed{
		Campaigns: []model.Campaign{
			{ID: "done", Name: "Old Campaign", Summary: "Old", Status: model.CampaignCompleted},
			{ID: "live", Name: "Test Campaign", Summary: "Sample summary", Status: model.CampaignLive},
		},
		Preferences: model.StrategyPreferences{
			Tone:      model.ToneWarm,
			FocusArea: model.FocusPreventive,
			Audience:  model.AudienceFamilies,
			Keywords:  []string{"HeartHealth"},
			Channels:  []model.Channel{model.Instagram, model.LinkedIn},
		},
	}, WithIDGenerator(counterIDs("idea")))

	ideas := s.RegenerateIdeas()
	require.Len(t, ideas, strategy.IdeaCount)
	for _, idea := range ideas {
		assert.True(t, strings.HasPrefix(idea.Headline, "Test Campaign:"), idea.Headline)
		assert.NotEmpty(t, idea.Hashtags)
	}
	assert.Equal(t, ideas, s.IdeaBank())

	again := s.RegenerateIdeas()
	assert.NotEqual(t, ideas[0].ID, again[0].ID, "bank is replaced, not merged")
	assert.Len(t, s.IdeaBank(), strategy.IdeaCount)
}

func TestRegenerateIdeasFallsBackToFirstCampaign(t *testing.T) {
	s := New(Seed{Campaigns: []model.Campaign{
		{ID: "a", Name: "Archive A", Status: model.CampaignCompleted},
		{ID: "b", Name: "Archive B", Status: model.CampaignCompleted},
	}})
	ideas := s.RegenerateIdeas()
	require.Len(t, ideas, 3)
	assert.True(t, strings.HasPrefix(ideas[0].Headline, "Archive A:"))
}

func TestRegenerateIdeasWithoutCampaignsEmptiesBank(t *testing.T) {
	s := New(Seed{})
	ideas := s.RegenerateIdeas()
	assert.NotNil(t, ideas, "an empty bank is an empty list, not nil")
	assert.Empty(t, ideas)
	assert.Empty(t, s.IdeaBank())
}

func TestUpdateTaskReturnsBeforeAndAfter(t *testing.T) {
	s := newTestStore(t)
	target := s.Tasks()[0]

	before, after, ok := s.UpdateTask(target.ID, func(task model.Task) model.Task {
		task.Stage = model.NextStage(task.Stage)
		task.ID = "rewritten"
		return task
	})
	require.True(t, ok)
	assert.Equal(t, target, before)
	assert.Equal(t, model.StageApproval, after.Stage)
	assert.Equal(t, target.ID, after.ID, "ids are not rewritable")

	_, _, ok = s.UpdateTask("missing", func(task model.Task) model.Task { return task })
	assert.False(t, ok)
}

func TestUpdatePostAppliesUnderLock(t *testing.T) {
	s := newTestStore(t)
	post := s.ScheduledPosts()[0]

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.UpdatePost(post.ID, func(p model.ScheduledPost) model.ScheduledPost {
				p.Status = p.Status.Toggled()
				return p
			})
		}()
	}
	wg.Wait()

	got, ok := s.Post(post.ID)
	require.True(t, ok)
	assert.Equal(t, model.PostScheduled, got.Status)
}

func TestStateSeedRoundTrip(t *testing.T) {
	s := newTestStore(t)
	s.RegenerateIdeas()

	st := s.State()
	assert.Len(t, st.IdeaBank, strategy.IdeaCount)

	restored := New(st.Seed())
	if diff := cmp.Diff(st.Campaigns, restored.Campaigns()); diff != "" {
		t.Errorf("campaigns mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, st.Preferences, restored.Preferences())
	assert.Empty(t, restored.IdeaBank())
}

func TestUpdatePreferencesShallowMerge(t *testing.T) {
	s := newTestStore(t)
	tone := model.ToneEnergetic
	channels := []model.Channel{model.YouTube}

	got := s.UpdatePreferences(model.PreferencesPatch{Tone: &tone, Channels: &channels})
	assert.Equal(t, model.ToneEnergetic, got.Tone)
	assert.Equal(t, []model.Channel{model.YouTube}, got.Channels)
	assert.Equal(t, DefaultPreferences().Keywords, got.Keywords)
	assert.Equal(t, got, s.Preferences())
}

func TestReadsAreCopies(t *testing.T) {
	s := newTestStore(t)
	campaigns := s.Campaigns()
	campaigns[0].Channels[0] = model.X
	campaigns[0].Name = "changed"

	fresh := s.Campaigns()
	assert.Equal(t, model.Instagram, fresh[0].Channels[0])
	assert.Equal(t, "Heartbeat of Preventive Care Week", fresh[0].Name)
}

func TestConcurrentMutations(t *testing.T) {
	s := newTestStore(t)
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			s.AddTask(model.Task{Title: fmt.Sprintf("task %d", i)})
			s.PushAssistantMessage("ideas?")
		}(i)
	}
	wg.Wait()

	assert.Len(t, s.Tasks(), 23)
	assert.Len(t, s.Thread(), 41)
}

func TestSeedFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.yaml")
	seed := DefaultSeed(testNow, counterIDs("seed"))

	require.NoError(t, WriteSeedFile(path, seed))
	loaded, err := LoadSeedFile(path)
	require.NoError(t, err)

	require.Len(t, loaded.Campaigns, 2)
	assert.Equal(t, seed.Campaigns[0].Name, loaded.Campaigns[0].Name)
	assert.True(t, seed.Campaigns[0].EndDate.Equal(loaded.Campaigns[0].EndDate))
	assert.Equal(t, seed.Tasks[0].CampaignID, loaded.Tasks[0].CampaignID)
	assert.Equal(t, seed.Metrics[1].ROAS, loaded.Metrics[1].ROAS)
	assert.Equal(t, seed.Preferences, loaded.Preferences)
}

func TestLoadSeedFileMissing(t *testing.T) {
	_, err := LoadSeedFile(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
