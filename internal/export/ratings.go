// Package export publishes static rating summaries for the site build.
package export

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/pageza/rezeptblog/backend/internal/service"
)

// RatingsMaxAge is how far back ratings count towards a published summary.
const RatingsMaxAge = 365 * 24 * time.Hour

// Uploader stores a published file, e.g. in an S3 bucket.
type Uploader interface {
	PutObject(ctx context.Context, key, contentType string, body []byte) error
}

// Summary is the published rating file of one recipe.
type Summary struct {
	Average      float64        `json:"average"`
	TotalRatings int            `json:"totalRatings"`
	Distribution map[string]int `json:"distribution"`
}

// RatingsExporter writes one summary file per rated recipe.
type RatingsExporter struct {
	ratings  service.IRatingService
	outDir   string
	uploader Uploader
	prefix   string
}

// NewRatingsExporter creates an exporter writing to outDir. uploader may be nil.
func NewRatingsExporter(ratings service.IRatingService, outDir string, uploader Uploader) *RatingsExporter {
	return &RatingsExporter{
		ratings:  ratings,
		outDir:   outDir,
		uploader: uploader,
		prefix:   "ratings/",
	}
}

// Export writes the summaries of ratings newer than since and returns the exported slugs.
func (e *RatingsExporter) Export(ctx context.Context, since time.Time) ([]string, error) {
	aggregates, err := e.ratings.AggregateAll(ctx, since)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate ratings: %w", err)
	}

	if err := os.MkdirAll(e.outDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	slugs := make([]string, 0, len(aggregates))
	for slug := range aggregates {
		slugs = append(slugs, slug)
	}
	sort.Strings(slugs)

	exported := make([]string, 0, len(slugs))
	for _, slug := range slugs {
		agg := aggregates[slug]
		if agg.TotalRatings == 0 {
			continue
		}
		data, err := json.MarshalIndent(NewSummary(agg), "", "  ")
		if err != nil {
			return exported, fmt.Errorf("failed to encode ratings for %s: %w", slug, err)
		}

		name := slug + ".json"
		if err := os.WriteFile(filepath.Join(e.outDir, name), data, 0644); err != nil {
			return exported, fmt.Errorf("failed to write ratings for %s: %w", slug, err)
		}
		if e.uploader != nil {
			if err := e.uploader.PutObject(ctx, e.prefix+name, "application/json", data); err != nil {
				return exported, fmt.Errorf("failed to upload ratings for %s: %w", slug, err)
			}
		}
		exported = append(exported, slug)
	}

	log.WithFields(log.Fields{"recipes": len(exported), "dir": e.outDir}).Info("Exported rating summaries")
	return exported, nil
}

// NewSummary converts an aggregate to its published form.
func NewSummary(agg service.Aggregate) Summary {
	dist := make(map[string]int, service.MaxRating)
	for v := service.MaxRating; v >= service.MinRating; v-- {
		key := strconv.Itoa(v)
		dist[key] = agg.Ratings[key]
	}
	return Summary{
		Average:      agg.AverageRating,
		TotalRatings: agg.TotalRatings,
		Distribution: dist,
	}
}
