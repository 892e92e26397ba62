package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/go-resty/resty/v2"
	"github.com/spf13/cobra"

	"github.com/okabe/verbbook/internal/database"
	"github.com/okabe/verbbook/internal/verbs"
)

func newImportCommand() *cobra.Command {
	var mode string
	var delim string

	cmd := &cobra.Command{
		Use:   "import <file-or-url>",
		Short: "Import verb rows from delimiter-separated text",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			insertMode := verbs.InsertSkip
			switch mode {
			case string(verbs.InsertSkip):
			case string(verbs.InsertOverwrite):
				insertMode = verbs.InsertOverwrite
			default:
				return fmt.Errorf("unknown mode %q: want %q or %q", mode, verbs.InsertSkip, verbs.InsertOverwrite)
			}

			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			db, err := database.Open(cfg.Database)
			if err != nil {
				return fmt.Errorf("open database: %w", err)
			}
			defer func() { _ = db.Close() }()

			content, err := readSource(ctx, args[0])
			if err != nil {
				return err
			}

			entries := parseRows(string(content), delim)
			if len(entries) == 0 {
				return fmt.Errorf("no rows found in %s", args[0])
			}

			repo := verbs.NewDBRepository(db)
			added, err := repo.BatchInsert(ctx, entries, insertMode)
			if err != nil {
				return fmt.Errorf("import rows: %w", err)
			}

			color.Green("Imported %d rows (%d lines read)", added, len(entries))
			return nil
		},
	}

	cmd.Flags().StringVar(&mode, "mode", "skip", `conflict policy: "skip" keeps existing rows, "update" overwrites them`)
	cmd.Flags().StringVar(&delim, "delim", ",", "field delimiter")
	return cmd
}

// readSource reads the import payload from a local file or, for
// http(s) sources, over the network.
func readSource(ctx context.Context, source string) ([]byte, error) {
	if strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://") {
		resp, err := resty.New().R().SetContext(ctx).Get(source)
		if err != nil {
			return nil, fmt.Errorf("fetch %s: %w", source, err)
		}
		if resp.IsError() {
			return nil, fmt.Errorf("fetch %s: unexpected status %s", source, resp.Status())
		}
		return resp.Body(), nil
	}

	content, err := os.ReadFile(source)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", source, err)
	}
	return content, nil
}

// parseRows parses delimiter-separated lines in the export column
// order: base, past tense, past participle, definition, note.
// Blank lines are skipped.
func parseRows(content, delim string) []verbs.Entry {
	content = strings.TrimPrefix(content, "\uFEFF")

	var entries []verbs.Entry
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}

		fields := strings.Split(line, delim)
		entry := verbs.Entry{
			BaseWord:       field(fields, 0),
			PastTense:      field(fields, 1),
			PastParticiple: field(fields, 2),
			Definition:     field(fields, 3),
		}
		if note := field(fields, 4); note != "" {
			entry.Note = &note
		}
		entries = append(entries, entry)
	}
	return entries
}

func field(fields []string, i int) string {
	if i >= len(fields) {
		return ""
	}
	return strings.TrimSpace(fields[i])
}
