package cmd

import (
	"fmt"
	"sort"
	"strings"

	"github.com/abhisek/sprinklerprep/internal/progress"
	"github.com/abhisek/sprinklerprep/internal/store"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Print study statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}

		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer st.Close()

		tracker := progress.NewTracker(cmd.Context(), st.ProgressRepo())
		p := tracker.Current()

		accuracy := progress.MasteryLevel(p.TotalCorrect, p.TotalQuestionsAnswered)
		fmt.Printf("Questions answered:  %d\n", p.TotalQuestionsAnswered)
		fmt.Printf("Correct:             %d (%d%%)\n", p.TotalCorrect, accuracy)
		fmt.Printf("Flashcards learned:  %d\n", p.FlashcardsLearned)
		fmt.Printf("Missed questions:    %d\n", len(p.MissedQuestionIDs))
		if p.TargetExamDate != nil {
			fmt.Printf("Target exam date:    %s\n", *p.TargetExamDate)
		}

		if len(p.StatsByCategory) == 0 {
			return nil
		}

		fmt.Println()
		fmt.Printf("%-40s  %9s  %8s  %7s  %7s\n", "Category", "Answered", "Correct", "Streak", "Mastery")
		fmt.Println(strings.Repeat("─", 80))

		categories := make([]string, 0, len(p.StatsByCategory))
		for cat := range p.StatsByCategory {
			categories = append(categories, cat)
		}
		sort.Strings(categories)

		for _, cat := range categories {
			cs := p.StatsByCategory[cat]
			name := cat
			if len(name) > 40 {
				name = name[:40]
			}
			fmt.Printf("%-40s  %9d  %8d  %7d  %6d%%\n",
				name, cs.Answered, cs.Correct, cs.Streak, cs.MasteryLevel)
		}
		return nil
	},
}
