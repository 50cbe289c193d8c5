package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/unclebandit/lifecare-cockpit/internal/store"
)

func TestSeederWritesLoadableFile(t *testing.T) {
	out := filepath.Join(t.TempDir(), "nested", "workspace.yaml")

	cmd := newSeederCmd()
	var stdout bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetArgs([]string{"--out", out})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("execute: %v", err)
	}
	if !strings.Contains(stdout.String(), "2 campaigns, 3 tasks, 3 posts, 3 metrics") {
		t.Errorf("unexpected output %q", stdout.String())
	}

	seed, err := store.LoadSeedFile(out)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(seed.Campaigns) != 2 || seed.Tasks[0].CampaignID != seed.Campaigns[0].ID {
		t.Errorf("seed lost campaign references: %+v", seed.Tasks)
	}
}
