package organizer

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"organize/internal/config"
	"organize/internal/logging"
	"organize/internal/scan"
)

// Options is the run policy, fixed at construction. The zero value is not
// useful; start from DefaultOptions or FromConfig.
type Options struct {
	CreateSubfolders bool
	// PreserveStructure is reserved and not consulted by the move logic.
	PreserveStructure bool
	SkipHidden        bool
	DryRun            bool
}

// DefaultOptions returns the documented defaults.
func DefaultOptions() Options {
	return Options{
		CreateSubfolders:  true,
		PreserveStructure: false,
		SkipHidden:        true,
		DryRun:            false,
	}
}

// FromConfig derives run options from the loaded configuration.
func FromConfig(cfg *config.Config) Options {
	if cfg == nil {
		return DefaultOptions()
	}
	return Options{
		CreateSubfolders:  cfg.Organizer.CreateSubfolders,
		PreserveStructure: cfg.Organizer.PreserveStructure,
		SkipHidden:        cfg.Organizer.SkipHidden,
	}
}

// Organizer runs the scan → classify → move pipeline over one directory.
type Organizer struct {
	opts   Options
	logger *slog.Logger
}

// New constructs an Organizer with a fixed option set.
func New(opts Options, logger *slog.Logger) *Organizer {
	return &Organizer{
		opts:   opts,
		logger: logging.NewComponentLogger(logger, "organizer"),
	}
}

// ByCategory organizes the direct file children of dir into extension-derived
// category subfolders. A missing directory is fatal; per-file failures are
// recorded on the Report and the run continues.
func (o *Organizer) ByCategory(ctx context.Context, dir string) (*Report, error) {
	return o.run(ctx, dir, ModeCategory)
}

// ByDate organizes the direct file children of dir into <YYYY>/<YYYY>-<MM>
// subfolders derived from each file's modification time.
func (o *Organizer) ByDate(ctx context.Context, dir string) (*Report, error) {
	return o.run(ctx, dir, ModeDate)
}

func (o *Organizer) run(ctx context.Context, dir, mode string) (*Report, error) {
	runID := uuid.NewString()
	ctx = logging.WithRunID(ctx, runID)
	logger := logging.WithContext(ctx, o.logger).With(
		logging.String(logging.FieldMode, mode),
		logging.Bool("dry_run", o.opts.DryRun),
	)

	abs, err := scan.Directory(dir)
	if err != nil {
		return nil, err
	}
	logger = logger.With(logging.String(logging.FieldDirectory, abs))
	logger.Info("starting organize run")

	records, err := scan.Files(abs, o.opts.SkipHidden)
	if err != nil {
		return nil, err
	}

	report := newReport(runID, abs, mode, o.opts.DryRun)
	report.TotalFiles = len(records)

	for _, rec := range records {
		switch mode {
		case ModeDate:
			o.organizeOneByDate(rec, abs, report, logger)
		default:
			o.organizeOneByCategory(rec, abs, report, logger)
		}
	}

	report.Duration = time.Since(report.StartedAt)
	logger.Info("organize run finished",
		logging.Int("total", report.TotalFiles),
		logging.Int("organized", report.OrganizedFiles),
		logging.Int("skipped", report.SkippedFiles),
		logging.Int("errors", len(report.Errors)),
		logging.Duration("duration", report.Duration),
	)
	return report, nil
}

func (o *Organizer) organizeOneByCategory(rec scan.FileRecord, base string, report *Report, logger *slog.Logger) {
	target, moved, err := o.placeByCategory(rec, base)
	if err != nil {
		report.recordFailure(rec.Name, err)
		logger.Warn("file not organized", logging.String(logging.FieldFile, rec.Name), logging.Error(err))
		return
	}
	if !moved {
		report.SkippedFiles++
		logger.Debug("file skipped", logging.String(logging.FieldFile, rec.Name))
		return
	}
	report.addToBucket(rec.Category, rec.Size)
	if o.opts.DryRun {
		logger.Info("would move file", logging.String(logging.FieldFile, rec.Name), logging.String("target", target))
	} else {
		logger.Info("moved file", logging.String(logging.FieldFile, rec.Name), logging.String("target", target))
	}
}

func (o *Organizer) organizeOneByDate(rec scan.FileRecord, base string, report *Report, logger *slog.Logger) {
	target, key, err := o.placeByDate(rec, base)
	if err != nil {
		report.recordFailure(rec.Name, err)
		logger.Warn("file not organized", logging.String(logging.FieldFile, rec.Name), logging.Error(err))
		return
	}
	report.addToBucket(key, rec.Size)
	if o.opts.DryRun {
		logger.Info("would move file", logging.String(logging.FieldFile, rec.Name), logging.String("target", target))
	} else {
		logger.Info("moved file", logging.String(logging.FieldFile, rec.Name), logging.String("target", target))
	}
}
