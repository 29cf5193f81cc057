package source

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"
)

// LoadDir parses every .json and .jsonl export under dir, one file per
// goroutine, and returns the combined records ordered by timestamp. Missing
// directories yield an empty slice rather than an error so a fresh install
// produces an empty report instead of a failure.
func LoadDir(ctx context.Context, dir string) ([]*UsageRecord, error) {
	entries, err := os.ReadDir(dir)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var paths []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		switch filepath.Ext(e.Name()) {
		case ".json", ".jsonl":
			paths = append(paths, filepath.Join(dir, e.Name()))
		}
	}

	var (
		mu      sync.Mutex
		records []*UsageRecord
	)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(8)

	for _, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			recs, err := loadFile(path)
			if err != nil {
				return err
			}
			mu.Lock()
			records = append(records, recs...)
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.Slice(records, func(i, j int) bool {
		if records[i].Timestamp != records[j].Timestamp {
			return records[i].Timestamp < records[j].Timestamp
		}
		return records[i].SessionID < records[j].SessionID
	})

	return records, nil
}

// loadFile parses a single export file by extension.
func loadFile(path string) ([]*UsageRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	if strings.HasSuffix(path, ".jsonl") {
		return ParseRecords(f)
	}
	return ParseReport(f)
}
