package main

import (
	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	var configFlag string
	var logLevelFlag string
	var flags runFlags

	ctx := newCommandContext(&configFlag)

	rootCmd := &cobra.Command{
		Use:   "organize <directory>",
		Short: "Sort a directory's files into category or date subfolders",
		Long: `organize moves the files directly inside a directory into subfolders,
either by extension-derived category (images, documents, ...) or by
modification date (<YYYY>/<YYYY>-<MM>). Files inside subdirectories are
never touched.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return cmd.Help()
			}
			flags.logLevel = logLevelFlag
			return runOrganize(cmd, ctx, args[0], flags)
		},
	}

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		// The bare usage invocation needs no config.
		if shouldSkipConfig(cmd) || (cmd == rootCmd && len(args) == 0) {
			return nil
		}
		_, err := ctx.ensureConfig()
		return err
	}

	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "Configuration file path")
	rootCmd.PersistentFlags().StringVar(&logLevelFlag, "log-level", "", "Override the configured log level")

	rootCmd.Flags().BoolVar(&flags.dryRun, "dry-run", false, "Report intended moves without touching the filesystem")
	rootCmd.Flags().BoolVar(&flags.byDate, "by-date", false, "Organize by modification date instead of category")
	rootCmd.Flags().BoolVar(&flags.includeHidden, "include-hidden", false, "Include dot-prefixed files")
	rootCmd.Flags().BoolVar(&flags.noSubfolders, "no-subfolders", false, "Disable category subfolder creation (category mode only)")
	rootCmd.Flags().BoolVar(&flags.jsonOut, "json", false, "Emit the report as JSON")

	rootCmd.AddCommand(newConfigCommand())

	return rootCmd
}
