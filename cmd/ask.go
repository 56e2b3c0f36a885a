package cmd

import (
	"fmt"
	"strings"

	"github.com/abhisek/sprinklerprep/internal/llm"
	"github.com/abhisek/sprinklerprep/internal/store"
	"github.com/abhisek/sprinklerprep/internal/tutor"
	"github.com/spf13/cobra"
)

var askCmd = &cobra.Command{
	Use:   "ask <question>",
	Short: "Ask the AI tutor a one-shot question",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		query := strings.Join(args, " ")

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}

		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer st.Close()

		eventRepo, err := st.EventRepo()
		if err != nil {
			return fmt.Errorf("init event repo: %w", err)
		}

		provider, err := llm.NewProviderFromEnv(cmd.Context(), eventRepo)
		if err != nil {
			return fmt.Errorf("no LLM provider configured: %w", err)
		}

		svc := tutor.NewService(provider, tutor.DefaultConfig())
		reply, err := svc.Ask(cmd.Context(), query, nil)
		if err != nil {
			return err
		}

		fmt.Println(reply)
		return nil
	},
}
