package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var documentCmd = &cobra.Command{
	Use:   "document",
	Short: "Manage corpus documents",
	Long:  `Add, list, view, or delete documents in the corpus.`,
}

var documentAddCmd = &cobra.Command{
	Use:   "add [content]",
	Short: "Add a document to the corpus",
	Long:  `Stores the given text as a new corpus document.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runDocumentAdd,
}

var documentListCmd = &cobra.Command{
	Use:   "list",
	Short: "List corpus documents",
	Args:  cobra.NoArgs,
	RunE:  runDocumentList,
}

var documentShowCmd = &cobra.Command{
	Use:   "show [doc-id]",
	Short: "Show a document and its content",
	Args:  cobra.ExactArgs(1),
	RunE:  runDocumentShow,
}

var documentDeleteCmd = &cobra.Command{
	Use:   "delete [doc-id]",
	Short: "Delete a document from the corpus",
	Args:  cobra.ExactArgs(1),
	RunE:  runDocumentDelete,
}

// Flags for the add command.
var (
	documentTitle string
	documentURL   string
)

func init() {
	documentAddCmd.Flags().StringVarP(&documentTitle, "title", "t", "", "Document title")
	documentAddCmd.Flags().StringVarP(&documentURL, "url", "u", "", "Source URL for the document")

	documentCmd.AddCommand(documentAddCmd)
	documentCmd.AddCommand(documentListCmd)
	documentCmd.AddCommand(documentShowCmd)
	documentCmd.AddCommand(documentDeleteCmd)
	rootCmd.AddCommand(documentCmd)
}

func runDocumentAdd(cmd *cobra.Command, args []string) error {
	if corpusService == nil {
		return errors.New("corpus service not configured")
	}

	ctx := context.Background()

	doc, err := corpusService.Add(ctx, documentTitle, documentURL, args[0])
	if err != nil {
		return fmt.Errorf("failed to add document: %w", err)
	}

	cmd.Printf("Added document %s\n", doc.ID)
	if doc.Title != "" {
		cmd.Printf("  Title: %s\n", doc.Title)
	}
	return nil
}

func runDocumentList(cmd *cobra.Command, _ []string) error {
	if corpusService == nil {
		return errors.New("corpus service not configured")
	}

	ctx := context.Background()

	docs, err := corpusService.List(ctx)
	if err != nil {
		return fmt.Errorf("failed to list documents: %w", err)
	}

	if len(docs) == 0 {
		cmd.Println("No documents in the corpus.")
		return nil
	}

	cmd.Println("Documents:")
	cmd.Println()
	for i := range docs {
		cmd.Printf("  %s\n", docs[i].ID)
		cmd.Printf("    Title: %s\n", docs[i].Title)
		if docs[i].URL != "" {
			cmd.Printf("    URL: %s\n", docs[i].URL)
		}
		cmd.Println()
	}

	cmd.Printf("Total: %d documents\n", len(docs))
	return nil
}

func runDocumentShow(cmd *cobra.Command, args []string) error {
	if corpusService == nil {
		return errors.New("corpus service not configured")
	}

	docID := args[0]
	ctx := context.Background()

	doc, err := corpusService.Get(ctx, docID)
	if err != nil {
		return fmt.Errorf("failed to get document: %w", err)
	}

	cmd.Printf("Document: %s\n\n", doc.ID)
	cmd.Printf("  Title:  %s\n", doc.Title)
	if doc.URL != "" {
		cmd.Printf("  URL:    %s\n", doc.URL)
	}
	cmd.Printf("  Added:  %s\n", doc.AddedAt.Format("2006-01-02 15:04:05"))
	cmd.Println()
	cmd.Println(doc.Content)

	return nil
}

func runDocumentDelete(cmd *cobra.Command, args []string) error {
	if corpusService == nil {
		return errors.New("corpus service not configured")
	}

	docID := args[0]
	ctx := context.Background()

	if err := corpusService.Delete(ctx, docID); err != nil {
		return fmt.Errorf("failed to delete document: %w", err)
	}

	cmd.Printf("Document %s deleted.\n", docID)
	return nil
}
