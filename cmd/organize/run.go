package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"organize/internal/logging"
	"organize/internal/organizer"
	"organize/internal/runlock"
	"organize/internal/scan"
)

type runFlags struct {
	dryRun        bool
	byDate        bool
	includeHidden bool
	noSubfolders  bool
	jsonOut       bool
	logLevel      string
}

func runOrganize(cmd *cobra.Command, cctx *commandContext, dir string, flags runFlags) error {
	cfg, err := cctx.ensureConfig()
	if err != nil {
		return err
	}

	logCfg := *cfg
	if level := flags.logLevel; level != "" {
		logCfg.Logging.Level = level
	}
	logger, err := logging.NewFromConfig(&logCfg)
	if err != nil {
		return fmt.Errorf("set up logging: %w", err)
	}

	target, err := scan.Directory(dir)
	if err != nil {
		return err
	}

	lock, err := runlock.Acquire(cfg.Paths.LockDir, target)
	if err != nil {
		return err
	}
	defer func() {
		_ = lock.Release()
	}()

	opts := organizer.FromConfig(cfg)
	if flags.dryRun {
		opts.DryRun = true
	}
	if flags.includeHidden {
		opts.SkipHidden = false
	}
	if flags.noSubfolders {
		opts.CreateSubfolders = false
	}

	org := organizer.New(opts, logger)

	var report *organizer.Report
	if flags.byDate {
		report, err = org.ByDate(cmd.Context(), target)
	} else {
		report, err = org.ByCategory(cmd.Context(), target)
	}
	if err != nil {
		return err
	}

	if flags.jsonOut {
		return writeJSON(cmd, report)
	}
	fmt.Fprint(cmd.OutOrStdout(), renderReport(report, stdoutIsTerminal()))
	return nil
}
