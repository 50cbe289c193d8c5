package main

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/unclebandit/lifecare-cockpit/internal/model"
	"github.com/unclebandit/lifecare-cockpit/internal/service"
	"github.com/unclebandit/lifecare-cockpit/internal/store"
	"github.com/unclebandit/lifecare-cockpit/internal/strategy"
)

// cliEnv is shared by every subcommand; the service is built lazily from
// the persistent flags.
type cliEnv struct {
	seedFile string
	svc      *service.CockpitService
}

func (e *cliEnv) service() (*service.CockpitService, error) {
	if e.svc != nil {
		return e.svc, nil
	}

	seed := store.DefaultSeed(time.Now(), uuid.NewString)
	if e.seedFile != "" {
		loaded, err := store.LoadSeedFile(e.seedFile)
		if err != nil {
			return nil, err
		}
		seed = loaded
	}
	e.svc = &service.CockpitService{Store: store.New(seed)}
	return e.svc, nil
}

func newRootCmd() *cobra.Command {
	env := &cliEnv{}
	root := &cobra.Command{
		Use:          "cockpit",
		Short:        "Bharat Life Care social media cockpit",
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVar(&env.seedFile, "seed", "", "YAML seed file (defaults to the built-in sample workspace)")

	root.AddCommand(
		newSummaryCmd(env),
		newIdeasCmd(env),
		newCadenceCmd(),
		newAskCmd(env),
		newBoardCmd(env),
		newExportCmd(env),
	)
	return root
}

func newSummaryCmd(env *cliEnv) *cobra.Command {
	return &cobra.Command{
		Use:   "summary",
		Short: "Print the cockpit headline numbers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := env.service()
			if err != nil {
				return err
			}
			d := svc.Dashboard()
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Active campaigns: %d\n", d.Summary.ActiveCampaigns)
			fmt.Fprintf(out, "Urgent tasks:     %d\n", d.Summary.UrgentTasks)
			fmt.Fprintf(out, "Scheduled posts:  %d\n", d.Summary.ScheduledPosts)
			if d.Insights.MomentumChannel != "" {
				fmt.Fprintf(out, "Momentum channel: %s (%.1f%% engagement)\n", d.Insights.MomentumChannel, d.Insights.MomentumEngagement)
			}
			fmt.Fprintf(out, "Conversions: %d  Net followers: +%d  Avg engagement: %.1f%%\n",
				d.Totals.TotalConversions, d.Totals.NetFollowers, d.Totals.AverageEngagement)
			return nil
		},
	}
}

func newIdeasCmd(env *cliEnv) *cobra.Command {
	var (
		tone     string
		focus    string
		audience string
		keywords []string
		channels []string
	)

	cmd := &cobra.Command{
		Use:   "ideas",
		Short: "Generate content ideas for the primary campaign",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := env.service()
			if err != nil {
				return err
			}

			var patch model.PreferencesPatch
			if cmd.Flags().Changed("tone") {
				t := model.Tone(tone)
				patch.Tone = &t
			}
			if cmd.Flags().Changed("focus") {
				f := model.FocusArea(focus)
				patch.FocusArea = &f
			}
			if cmd.Flags().Changed("audience") {
				a := model.Audience(audience)
				patch.Audience = &a
			}
			if cmd.Flags().Changed("keyword") {
				patch.Keywords = &keywords
			}
			if cmd.Flags().Changed("channel") {
				list := toChannels(channels)
				patch.Channels = &list
			}
			if _, err := svc.UpdatePreferences(patch); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for i, idea := range svc.RegenerateIdeas() {
				fmt.Fprintf(out, "%d. %s\n", i+1, idea.Headline)
				fmt.Fprintf(out, "   %s\n", idea.Caption)
				fmt.Fprintf(out, "   %s\n", strings.Join(idea.Hashtags, " "))
				fmt.Fprintf(out, "   CTA: %s\n", idea.CallToAction)
				fmt.Fprintf(out, "   Recommended: %s\n", joinChannels(idea.RecommendedChannels))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&tone, "tone", "", "warm, expert or energetic")
	cmd.Flags().StringVar(&focus, "focus", "", "preventive, wellness, chronic-care or surgical")
	cmd.Flags().StringVar(&audience, "audience", "", "families, millennials, seniors or corporate")
	cmd.Flags().StringSliceVar(&keywords, "keyword", nil, "hero keywords (repeatable)")
	cmd.Flags().StringSliceVar(&channels, "channel", nil, "channels (repeatable)")
	return cmd
}

func newCadenceCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "cadence [channel...]",
		Short: "Suggest a posting cadence per channel",
		RunE: func(cmd *cobra.Command, args []string) error {
			channels := model.AllChannels
			if len(args) > 0 {
				channels = toChannels(args)
			}
			for _, s := range strategy.CadenceSuggestions(channels) {
				fmt.Fprintf(cmd.OutOrStdout(), "%-10s %s\n", s.Channel, s.Cadence)
			}
			return nil
		},
	}
}

func newAskCmd(env *cliEnv) *cobra.Command {
	return &cobra.Command{
		Use:   "ask <prompt>",
		Short: "Ask the cockpit steward a question",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := env.service()
			if err != nil {
				return err
			}
			exchange, err := svc.AskAssistant(context.Background(), strings.Join(args, " "))
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), exchange.Reply.Content)
			return nil
		},
	}
}

func newBoardCmd(env *cliEnv) *cobra.Command {
	return &cobra.Command{
		Use:   "board",
		Short: "Show tasks by workflow stage",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := env.service()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, col := range svc.Board() {
				fmt.Fprintf(out, "%s (%d)\n", col.Stage, len(col.Tasks))
				for _, t := range col.Tasks {
					fmt.Fprintf(out, "  - [%s] %s · %s · %s\n",
						strings.ToUpper(string(t.Priority)), t.Title, t.Owner, t.CampaignName)
				}
			}
			return nil
		},
	}
}

func newExportCmd(env *cliEnv) *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the workspace as a YAML seed file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := env.service()
			if err != nil {
				return err
			}
			if err := store.WriteSeedFile(out, svc.State().Seed()); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Workspace written to %s\n", out)
			return nil
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "workspace.yaml", "destination file")
	return cmd
}

func toChannels(names []string) []model.Channel {
	out := make([]model.Channel, 0, len(names))
	for _, n := range names {
		out = append(out, model.Channel(n))
	}
	return out
}

func joinChannels(channels []model.Channel) string {
	names := make([]string, 0, len(channels))
	for _, c := range channels {
		names = append(names, string(c))
	}
	return strings.Join(names, " • ")
}
