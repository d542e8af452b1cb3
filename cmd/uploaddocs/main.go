// Package main provides the CLI entry point for uploaddocs.
package main

import (
	"context"
	"os"

	"github.com/scalehub/calibration-tools/pkg/importclient"
	"github.com/scalehub/calibration-tools/pkg/logging"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var (
	configFile string
	verbose    bool

	logger = zap.NewNop()
)

func main() {
	if err := newRootCmd(viper.New()).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(v *viper.Viper) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "uploaddocs [archive.zip]",
		Short: "Upload a zip of calibration documents to the import API",
		Long: `uploaddocs logs in to the calibration API and uploads a zip archive of
.docx documents to the import route, then prints how many documents were
processed and any per-document errors.`,
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			l, err := logging.New(verbose)
			if err != nil {
				return err
			}
			logger = l
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			logging.Sync(logger)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			// run prints its own failures; usage errors are left to cobra.
			cmd.SilenceErrors = true
			return run(cmd, args, v)
		},
	}

	defaults := importclient.DefaultOptions()
	flags := rootCmd.Flags()
	flags.StringVar(&configFile, "config", "", "Config file (yaml, json or toml)")
	flags.String("api-url", defaults.APIURL, "Base URL of the calibration API")
	flags.String("email", defaults.Email, "Login email")
	flags.String("password", defaults.Password, "Login password")
	flags.Duration("timeout", defaults.Timeout, "HTTP request timeout (0 means no timeout)")
	flags.BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	_ = v.BindPFlag("api_url", flags.Lookup("api-url"))
	_ = v.BindPFlag("email", flags.Lookup("email"))
	_ = v.BindPFlag("password", flags.Lookup("password"))
	_ = v.BindPFlag("timeout", flags.Lookup("timeout"))

	return rootCmd
}

func run(cmd *cobra.Command, args []string, v *viper.Viper) error {
	opts, err := importclient.LoadOptions(v, configFile)
	if err != nil {
		cmd.PrintErrln("Error:", err)
		return err
	}

	zipPath := importclient.DefaultZipPath
	if len(args) > 0 {
		zipPath = args[0]
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	return importclient.Run(ctx, opts, zipPath, cmd.OutOrStdout(), logger)
}
