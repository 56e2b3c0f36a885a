package cmd

import (
	"fmt"
	"strconv"

	"github.com/abhisek/sprinklerprep/internal/bank"
	"github.com/abhisek/sprinklerprep/internal/llm"
	"github.com/abhisek/sprinklerprep/internal/store"
	"github.com/abhisek/sprinklerprep/internal/tutor"
	"github.com/spf13/cobra"
)

var mnemonicCmd = &cobra.Command{
	Use:   "mnemonic <question-id>",
	Short: "Generate a memory aid for a question",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid question ID %q: %w", args[0], err)
		}

		b := loadBank(cmd)
		q, ok := findQuestion(b, id)
		if !ok {
			return fmt.Errorf("question %d not found in the bank", id)
		}

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
		m, err := svc.GenerateMnemonic(cmd.Context(), q)
		if err != nil {
			return err
		}

		fmt.Println(m.Mnemonic)
		fmt.Println()
		fmt.Println(m.Expansion)
		return nil
	},
}

func findQuestion(b *bank.Bank, id int) (bank.Question, bool) {
	for _, q := range b.Questions() {
		if q.ID == id {
			return q, true
		}
	}
	return bank.Question{}, false
}
