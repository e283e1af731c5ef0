package cmd

import (
	"github.com/spf13/cobra"

	"hebtex-setup/internal/logger"
)

// debug indicates whether debug logging should be enabled.
// It can be toggled via the `--debug` command-line flag.
var debug bool

// configPath optionally points at a YAML file overriding the compiled-in
// defaults (font URL, directories). Empty means: behave exactly like the
// original hardcoded setup script.
var configPath string

// rootCmd is the base command for the CLI tool `hebtex-setup`.
// Invoked with no subcommand it runs the full provisioning pipeline,
// preserving the original single-entry-point contract.
var rootCmd = &cobra.Command{
	Use:   "hebtex-setup",
	Short: "Configure TeXstudio for Hebrew right-to-left typesetting",

	// PersistentPreRun is a hook that runs before any subcommand.
	// Here, we initialize the logger based on the debug flag.
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger.Init(debug)
	},

	RunE: func(cmd *cobra.Command, args []string) error {
		return runSetup()
	},

	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute initializes flags, registers subcommands, and starts command
// execution. The returned error is non-nil only for hard failures, so main
// can translate it into exit status 1.
func Execute() error {
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Optional YAML file overriding built-in defaults")

	rootCmd.AddCommand(verifyCmd)

	return rootCmd.Execute()
}
