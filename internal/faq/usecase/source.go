package usecase

import (
	"bytes"
	"crypto/sha256"
	"encoding/csv"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"golang.org/x/text/encoding/charmap"

	"shop-assistant/internal/faq"
)

// resolveSources expands a doublestar pattern, or checks that a plain path exists.
func resolveSources(pattern string) ([]string, error) {
	if !strings.ContainsAny(pattern, "*?[{") {
		if _, err := os.Stat(pattern); err != nil {
			return nil, fmt.Errorf("%w: %w", faq.ErrNoSourceFiles, err)
		}
		return []string{pattern}, nil
	}

	matches, err := doublestar.FilepathGlob(pattern)
	if err != nil {
		return nil, fmt.Errorf("invalid source pattern %q: %w", pattern, err)
	}
	files := matches[:0]
	for _, m := range matches {
		if info, err := os.Stat(m); err == nil && !info.IsDir() {
			files = append(files, m)
		}
	}
	matches = files
	if len(matches) == 0 {
		return nil, fmt.Errorf("%w: %s", faq.ErrNoSourceFiles, pattern)
	}
	sort.Strings(matches)
	return matches, nil
}

// loadCorpus reads every file matched by pattern. Files are Latin-1 encoded CSV
// with Question and Answer header columns; rows keep file then line order.
func loadCorpus(pattern string) (corpus, error) {
	files, err := resolveSources(pattern)
	if err != nil {
		return corpus{}, err
	}

	h := sha256.New()
	out := corpus{files: files}
	for _, path := range files {
		raw, err := os.ReadFile(path)
		if err != nil {
			return corpus{}, fmt.Errorf("read %s: %w", path, err)
		}
		decoded, err := charmap.ISO8859_1.NewDecoder().Bytes(raw)
		if err != nil {
			return corpus{}, fmt.Errorf("decode %s: %w", path, err)
		}
		h.Write(decoded)

		rows, err := parseFAQ(bytes.NewReader(decoded))
		if err != nil {
			return corpus{}, fmt.Errorf("parse %s: %w", path, err)
		}
		out.rows = append(out.rows, rows...)
	}
	out.digest = hex.EncodeToString(h.Sum(nil))

	if len(out.rows) == 0 {
		return corpus{}, fmt.Errorf("%w: %s", faq.ErrEmptySource, pattern)
	}
	return out, nil
}

// parseFAQ locates the Question and Answer columns by header name. Short rows
// yield empty cells.
func parseFAQ(r io.Reader) ([]faqRow, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	qIdx, aIdx := -1, -1
	for i, name := range header {
		switch strings.TrimSpace(name) {
		case faq.ColumnQuestion:
			qIdx = i
		case faq.ColumnAnswer:
			aIdx = i
		}
	}
	if qIdx < 0 {
		return nil, fmt.Errorf("%w: %s", faq.ErrMissingColumn, faq.ColumnQuestion)
	}
	if aIdx < 0 {
		return nil, fmt.Errorf("%w: %s", faq.ErrMissingColumn, faq.ColumnAnswer)
	}

	var rows []faqRow
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		rows = append(rows, faqRow{
			question: cell(record, qIdx),
			answer:   cell(record, aIdx),
		})
	}
	return rows, nil
}

func cell(record []string, i int) string {
	if i < len(record) {
		return record[i]
	}
	return ""
}
