package cmd

import (
	"os"

	"metaapi/logutils"

	"github.com/spf13/cobra"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:          "metaapi",
	Short:        "REST API over projects, datasets, patients, samples and raw files",
	SilenceUsage: true,
	// serve is the default action
	RunE: func(cmd *cobra.Command, args []string) error {
		return serveCmd.RunE(cmd, args)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "",
		"path to the YAML config (default ./etc/config.yaml)")
	rootCmd.AddCommand(serveCmd, pingCmd)
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		logutils.Log.Error(err)
		os.Exit(1)
	}
}
