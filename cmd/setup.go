package cmd

import (
	"github.com/spf13/cobra"

	"hebtex-setup/internal/config"
	"hebtex-setup/internal/logger"
	"hebtex-setup/internal/provision"
	"hebtex-setup/internal/state"
)

// verifyCmd runs only the verification pass: PATH and cask re-checks, TeX
// support file lookups, and the smoke-test compilation. Verification never
// fails the process; it reports.
var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Re-check installed tools, fonts, and run a smoke-test compilation",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(configPath)
		if err != nil {
			logger.Error("[ERROR] %v\n", err)
			return err
		}

		p := provision.New(cfg, state.Load(cfg.StatePath))
		summarize(provision.Warnings(p.Verify()))
		return nil
	},
}

// runSetup executes the full provisioning pipeline and then the
// verification pass. Only hard failures propagate as an error (exit 1);
// soft failures from both phases end up in one warnings summary.
func runSetup() error {
	cfg, err := config.Load(configPath)
	if err != nil {
		logger.Error("[ERROR] %v\n", err)
		return err
	}

	st := state.Load(cfg.StatePath)
	p := provision.New(cfg, st)

	results, err := p.Run()
	if err != nil {
		// Hard failure: nothing after the failed step ran, and with a
		// failed precondition nothing was mutated, so saving state here
		// would itself be a mutation.
		return err
	}

	// State records what this run installed; write it before verification
	// so a failed smoke test cannot lose the install record.
	state.Save(cfg.StatePath, st)

	warnings := append(provision.Warnings(results), provision.Warnings(p.Verify())...)
	summarize(warnings)
	return nil
}

// summarize prints the aggregated soft failures, or a clean all-good line.
func summarize(warnings []provision.Result) {
	if len(warnings) == 0 {
		logger.Ok("[OK] Setup complete. TeXstudio is ready for Hebrew typesetting.\n")
		return
	}
	logger.Warn("[WARN] Setup finished with %d warning(s):\n", len(warnings))
	for _, w := range warnings {
		logger.Warn("[WARN]   %s: %s\n", w.Step, w.Message)
	}
}
