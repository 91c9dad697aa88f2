package db

import (
	"context"
	"errors"
	"slices"
	"strings"
	"time"

	"github.com/mithrel/minid/internal/util"
	"github.com/mithrel/minid/pkg/minid"
)

var (
	ErrNotFound  = errors.New("not found")
	ErrDuplicate = errors.New("id already recorded")
)

// Record is one minted ID kept in the registry.
type Record struct {
	ID        minid.ID  `json:"id"`
	Label     string    `json:"label,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// ListOptions narrows List. Match is a fuzzy pattern over labels.
type ListOptions struct {
	Match string
	Limit int
}

// Store is the registry of recorded IDs.
type Store interface {
	Put(ctx context.Context, recs ...Record) error
	Get(ctx context.Context, id minid.ID) (Record, error)
	List(ctx context.Context, opts ListOptions) ([]Record, error)
	Close() error
}

// Open returns a Store for url. "memory://" gives an in-memory store,
// "sqlite://path" or a bare path gives the sqlite registry.
func Open(ctx context.Context, url string) (Store, error) {
	if url == "memory://" {
		return newMemStore(), nil
	}
	return openSQLite(ctx, strings.TrimPrefix(url, "sqlite://"))
}

// finish sorts records by ID, applies the label filter and the limit.
// With a Match pattern, records keep fuzzy rank order instead.
func finish(recs []Record, opts ListOptions) []Record {
	sortRecords(recs)
	if opts.Match != "" {
		labels := make([]string, len(recs))
		for i, r := range recs {
			labels[i] = r.Label
		}
		idx := util.RankMatches(opts.Match, labels)
		ranked := make([]Record, 0, len(idx))
		for _, i := range idx {
			ranked = append(ranked, recs[i])
		}
		recs = ranked
	}
	if opts.Limit > 0 && len(recs) > opts.Limit {
		recs = recs[:opts.Limit]
	}
	return recs
}

func sortRecords(recs []Record) {
	slices.SortFunc(recs, func(a, b Record) int { return a.ID.Compare(b.ID) })
}
