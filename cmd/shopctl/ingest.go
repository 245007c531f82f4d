package main

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"shop-assistant/internal/faq"
	"shop-assistant/internal/faq/watcher"
)

var (
	flagIngestMode   string
	flagIngestSource string
	flagIngestWatch  bool
)

var ingestCmd = &cobra.Command{
	Use:   "ingest",
	Short: "Load the FAQ CSV corpus into the vector index",
	Args:  cobra.NoArgs,
	RunE:  runIngest,
}

func init() {
	ingestCmd.Flags().StringVar(&flagIngestMode, "mode", "", "Ingestion mode: existence, content_hash or force (default from config)")
	ingestCmd.Flags().StringVar(&flagIngestSource, "source", "", "CSV file or doublestar glob (default from config)")
	ingestCmd.Flags().BoolVar(&flagIngestWatch, "watch", false, "Re-ingest whenever a source file changes")
	rootCmd.AddCommand(ingestCmd)
}

func runIngest(cmd *cobra.Command, _ []string) error {
	a, err := loadApp(cmd)
	if err != nil {
		return err
	}
	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	input := faq.IngestInput{Source: flagIngestSource, Mode: faq.IngestMode(flagIngestMode)}
	if input.Mode == "" {
		input.Mode = faq.IngestMode(a.Config.FAQ.IngestMode)
	}

	res, err := a.FAQ.Ingest(ctx, input)
	if err != nil {
		return err
	}
	printIngest(out, res)

	if !flagIngestWatch {
		return nil
	}

	// An existing collection would make every re-ingest a skip.
	if input.Mode == faq.IngestExistence {
		input.Mode = faq.IngestContentHash
		fmt.Fprintln(out, "watch: using content_hash mode for re-ingestion")
	}

	w, err := watcher.New(a.Logger, res.Files, 0)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "watching %s (Ctrl+C to stop)\n", strings.Join(res.Files, ", "))
	return w.Run(ctx, func(ctx context.Context) error {
		res, err := a.FAQ.Ingest(ctx, input)
		if err != nil {
			return err
		}
		printIngest(out, res)
		return nil
	})
}

func printIngest(w io.Writer, res faq.IngestOutput) {
	if res.Skipped {
		fmt.Fprintf(w, "collection %s already exists, skipped\n", res.Collection)
	} else {
		fmt.Fprintf(w, "ingested %d entries into %s\n", res.Entries, res.Collection)
	}
	for _, name := range res.Pruned {
		fmt.Fprintf(w, "removed stale collection %s\n", name)
	}
}
