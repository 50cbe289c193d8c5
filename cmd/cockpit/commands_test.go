package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/unclebandit/lifecare-cockpit/internal/store"
)

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestSummaryCommand(t *testing.T) {
	out, err := runCLI(t, "summary")
	require.NoError(t, err)
	assert.Contains(t, out, "Active campaigns: 2")
	assert.Contains(t, out, "Momentum channel: Instagram (5.4% engagement)")
	assert.Contains(t, out, "Conversions: 99")
}

func TestIdeasCommandWithFlags(t *testing.T) {
	out, err := runCLI(t, "ideas", "--tone", "expert", "--audience", "corporate", "--keyword", "HeartHealth", "--channel", "LinkedIn")
	require.NoError(t, err)
	assert.Contains(t, out, "1. Heartbeat of Preventive Care Week: routine screenings spotlight")
	assert.Contains(t, out, "For organisations seeking trustworthy care")
	assert.Contains(t, out, "#HeartHealth")
	assert.Contains(t, out, "Recommended: LinkedIn")
	assert.Equal(t, 3, strings.Count(out, "CTA:"))
}

func TestIdeasCommandRejectsUnknownTone(t *testing.T) {
	_, err := runCLI(t, "ideas", "--tone", "sarcastic")
	assert.Error(t, err)
}

func TestCadenceCommand(t *testing.T) {
	out, err := runCLI(t, "cadence", "Blog", "TikTok")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "Weekly long-form guide")
	assert.Contains(t, lines[1], "Maintain presence with contextual storytelling")
}

func TestAskCommand(t *testing.T) {
	out, err := runCLI(t, "ask", "what", "about", "ROI?")
	require.NoError(t, err)
	assert.Contains(t, out, "ROI highlight: LinkedIn is compounding returns at 4.10x")
}

func TestBoardCommand(t *testing.T) {
	out, err := runCLI(t, "board")
	require.NoError(t, err)
	assert.Contains(t, out, "Review (1)")
	assert.Contains(t, out, "[URGENT] Source cardiologist testimonial for reel")
	assert.Contains(t, out, "Published (0)")
}

func TestExportCommandWritesLoadableSeed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "export.yaml")

	out, err := runCLI(t, "export", "--out", path)
	require.NoError(t, err)
	assert.Contains(t, out, path)

	seed, err := store.LoadSeedFile(path)
	require.NoError(t, err)
	assert.Len(t, seed.Campaigns, 2)
	assert.Len(t, seed.Tasks, 3)
	assert.Equal(t, store.DefaultPreferences(), seed.Preferences)

	again, err := runCLI(t, "--seed", path, "summary")
	require.NoError(t, err)
	assert.Contains(t, again, "Active campaigns: 2")
}
