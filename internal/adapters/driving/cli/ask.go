package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/ansa-cli/internal/core/domain"
)

var (
	askLocal bool
	askTop   int
	askJSON  bool
)

var askCmd = &cobra.Command{
	Use:   "ask [question]",
	Short: "Ask a question against the corpus",
	Long: `Answers a question from the indexed corpus. The best-matching
passages are selected by TF-IDF ranking and offered to the configured
generation backend; without a backend (or with --local) the answer is
extracted directly from the top passage.`,
	Args: cobra.ExactArgs(1),
	RunE: runAsk,
}

func init() {
	askCmd.Flags().BoolVar(&askLocal, "local", false, "answer extractively, skipping any generation backend")
	askCmd.Flags().IntVar(&askTop, "top", 0, "override how many passages are offered as context (0 = configured default)")
	askCmd.Flags().BoolVar(&askJSON, "json", false, "output the answer as JSON")
	rootCmd.AddCommand(askCmd)
}

func runAsk(cmd *cobra.Command, args []string) error {
	question := args[0]

	if askService == nil {
		return errors.New("ask service not configured")
	}

	ctx := context.Background()
	opts := domain.AskOptions{
		TopK:      askTop,
		LocalOnly: askLocal,
	}

	answer, err := askService.Ask(ctx, question, opts)
	if err != nil {
		return fmt.Errorf("ask failed: %w", err)
	}

	if askJSON {
		return outputAskJSON(cmd, answer)
	}

	return outputAskText(cmd, answer)
}

func outputAskJSON(cmd *cobra.Command, answer *domain.Answer) error {
	contexts := answer.Contexts
	if contexts == nil {
		contexts = []domain.ContextItem{}
	}

	payload := struct {
		Answer   string               `json:"answer"`
		Source   string               `json:"source"`
		Contexts []domain.ContextItem `json:"contexts"`
	}{
		Answer:   answer.Text,
		Source:   string(answer.Source),
		Contexts: contexts,
	}

	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal answer: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

func outputAskText(cmd *cobra.Command, answer *domain.Answer) error {
	if answer.Source == domain.AnswerNone {
		cmd.Println("No answer: nothing in the corpus matches the question.")
		return nil
	}

	cmd.Printf("Answer (%s):\n\n", answer.Source)
	cmd.Println(answer.Text)

	if len(answer.Contexts) == 0 {
		return nil
	}

	cmd.Println()
	cmd.Println("Sources:")
	for i := range answer.Contexts {
		title := answer.Contexts[i].Title
		if title == "" {
			title = "(untitled)"
		}
		cmd.Printf("  [%d] %s\n", i+1, title)
		if answer.Contexts[i].URL != "" {
			cmd.Printf("      %s\n", answer.Contexts[i].URL)
		}
	}

	return nil
}
