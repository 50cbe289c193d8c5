//cmd/seeder/main.go
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/unclebandit/lifecare-cockpit/internal/store"
)

func main() {
	if err := newSeederCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// newSeederCmd writes the built-in sample workspace to a YAML file that the
// server can load through SEED_FILE.
func newSeederCmd() *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "seeder",
		Short: "Write the sample Bharat Life Care workspace as a YAML seed file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := os.MkdirAll(filepath.Dir(out), 0o755); err != nil {
				return fmt.Errorf("create seed directory: %w", err)
			}

			seed := store.DefaultSeed(time.Now(), uuid.NewString)
			if err := store.WriteSeedFile(out, seed); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Seeded: %s (%d campaigns, %d tasks, %d posts, %d metrics)\n",
				out, len(seed.Campaigns), len(seed.Tasks), len(seed.ScheduledPosts), len(seed.Metrics))
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "seed/workspace.yaml", "where to write the seed file")
	return cmd
}
