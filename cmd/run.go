package cmd

import (
	"fmt"
	"os"

	"github.com/abhisek/sprinklerprep/internal/app"
	"github.com/abhisek/sprinklerprep/internal/bank"
	"github.com/abhisek/sprinklerprep/internal/llm"
	"github.com/abhisek/sprinklerprep/internal/progress"
	"github.com/abhisek/sprinklerprep/internal/store"
	"github.com/abhisek/sprinklerprep/internal/tutor"
	"github.com/spf13/cobra"
)

// runApp opens the store, loads the question bank, builds dependencies,
// and launches the TUI.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()

	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	eventRepo, err := st.EventRepo()
	if err != nil {
		return fmt.Errorf("init event repo: %w", err)
	}

	b := loadBank(cmd)

	deps := app.Deps{
		Bank:      b,
		Tracker:   progress.NewTracker(ctx, st.ProgressRepo()),
		EventRepo: eventRepo,
	}

	provider, err := llm.NewProviderFromEnv(ctx, eventRepo)
	if err != nil {
		fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
		fmt.Fprintln(os.Stderr, "The AI Tutor will be unavailable.")
	} else {
		deps.TutorSvc = tutor.NewService(provider, tutor.DefaultConfig())
	}

	return app.Run(deps)
}

// loadBank performs the one-time bank load. Failures degrade to an
// empty bank; the app starts regardless.
func loadBank(cmd *cobra.Command) *bank.Bank {
	explicit, _ := cmd.Flags().GetString("bank")
	source := bank.ResolveSource(explicit)

	b, err := bank.NewLoader(source).Load(cmd.Context())
	if err != nil {
		fmt.Fprintln(os.Stderr, "warning: failed to load question bank:", err)
	}
	return b
}
