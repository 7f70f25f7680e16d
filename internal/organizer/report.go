package organizer

import (
	"fmt"
	"time"
)

// Organization modes.
const (
	ModeCategory = "category"
	ModeDate     = "date"
)

// Bucket is one category or date key with its aggregate counts.
type Bucket struct {
	Key   string `json:"key"`
	Count int    `json:"count"`
	Bytes int64  `json:"bytes"`
}

// Report summarizes one organize run. It is created fresh per run, mutated
// only by the Organizer during that run, and returned to the caller.
type Report struct {
	RunID          string        `json:"run_id"`
	Directory      string        `json:"directory"`
	Mode           string        `json:"mode"`
	DryRun         bool          `json:"dry_run"`
	TotalFiles     int           `json:"total_files"`
	OrganizedFiles int           `json:"organized_files"`
	SkippedFiles   int           `json:"skipped_files"`
	BytesOrganized int64         `json:"bytes_organized"`
	Buckets        []Bucket      `json:"buckets"`
	Errors         []string      `json:"errors"`
	StartedAt      time.Time     `json:"started_at"`
	Duration       time.Duration `json:"duration"`

	bucketIndex map[string]int
}

func newReport(runID, directory, mode string, dryRun bool) *Report {
	return &Report{
		RunID:       runID,
		Directory:   directory,
		Mode:        mode,
		DryRun:      dryRun,
		StartedAt:   time.Now(),
		bucketIndex: map[string]int{},
	}
}

// addToBucket counts one organized file against key, preserving first-seen
// bucket order.
func (r *Report) addToBucket(key string, size int64) {
	r.OrganizedFiles++
	r.BytesOrganized += size
	if i, ok := r.bucketIndex[key]; ok {
		r.Buckets[i].Count++
		r.Buckets[i].Bytes += size
		return
	}
	r.bucketIndex[key] = len(r.Buckets)
	r.Buckets = append(r.Buckets, Bucket{Key: key, Count: 1, Bytes: size})
}

// recordFailure appends a per-file error in the user-facing format.
func (r *Report) recordFailure(name string, err error) {
	r.Errors = append(r.Errors, fmt.Sprintf("Failed to organize %s: %v", name, err))
}

// BucketCount returns the count recorded for key, or zero.
func (r *Report) BucketCount(key string) int {
	if i, ok := r.bucketIndex[key]; ok {
		return r.Buckets[i].Count
	}
	return 0
}
