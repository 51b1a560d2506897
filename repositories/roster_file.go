package repositories

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

type fileRosterRepo struct {
	path      string
	hasHeader bool
}

// NewFileRosterRepository reads a CSV or XLSX roster from disk.
func NewFileRosterRepository(path string, hasHeader bool) RosterRepository {
	return &fileRosterRepo{path: path, hasHeader: hasHeader}
}

func (r *fileRosterRepo) Names(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	f, err := os.Open(r.path)
	if err != nil {
		return nil, fmt.Errorf("open roster %s: %w", r.path, err)
	}
	defer f.Close()
	return parseRoster(f, filepath.Ext(r.path), r.hasHeader)
}
