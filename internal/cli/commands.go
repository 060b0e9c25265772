package cli

import (
	"os"

	"github.com/rileyhilliard/sinewave/internal/errors"
	"github.com/spf13/cobra"
)

// Command-specific flags
var (
	plotPhaseFlag      float64
	plotAskFlag        bool
	snapshotPhaseFlag  float64
	snapshotFormatFlag string
	initForce          bool
)

// plotCmd opens the interactive plot
var plotCmd = &cobra.Command{
	Use:   "plot",
	Short: "Open the interactive sine wave plot",
	Long: `Open the interactive plot. Use ←/→ to move the phase slider; press ? for
all keys. Frames captured with the save tool (s) are printed after exit.

Examples:
  sinewave plot
  sinewave plot --phase 3.14
  sinewave plot --ask`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPlot(cmd)
	},
}

// snapshotCmd prints the dataset for one phase
var snapshotCmd = &cobra.Command{
	Use:   "snapshot",
	Short: "Print the sampled dataset",
	Long: `Compute the wave for a phase and print its samples.

Formats: table (default), json, yaml, csv.

Examples:
  sinewave snapshot
  sinewave snapshot --phase 1.57 --format json
  sinewave snapshot --format csv > wave.csv`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		log := commandLogger()
		cfg, err := loadConfig(log)
		if err != nil {
			return err
		}
		return Snapshot(cfg, SnapshotOptions{
			Phase:    snapshotPhaseFlag,
			PhaseSet: cmd.Flags().Changed("phase"),
			Format:   snapshotFormatFlag,
			Logger:   log,
		}, cmd.OutOrStdout())
	},
}

// initCmd writes a default .sinewave.yaml
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create .sinewave.yaml configuration",
	Long: `Write a .sinewave.yaml with the default settings to the current directory.

Examples:
  sinewave init
  sinewave init --force`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return Init(InitOptions{
			Overwrite:      initForce,
			NonInteractive: !stdinIsTerminal(),
		}, cmd.OutOrStdout())
	},
}

// completionCmd generates shell completion scripts
var completionCmd = &cobra.Command{
	Use:   "completion [bash|zsh|fish|powershell]",
	Short: "Generate shell completion script",
	Long: `Generate a shell completion script for sinewave.

Examples:
  # Bash
  sinewave completion bash > /etc/bash_completion.d/sinewave

  # Zsh
  sinewave completion zsh > "${fpath[1]}/_sinewave"

  # Fish
  sinewave completion fish > ~/.config/fish/completions/sinewave.fish`,
	ValidArgs: []string{"bash", "zsh", "fish", "powershell"},
	Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	RunE: func(cmd *cobra.Command, args []string) error {
		switch args[0] {
		case "bash":
			return rootCmd.GenBashCompletion(os.Stdout)
		case "zsh":
			return rootCmd.GenZshCompletion(os.Stdout)
		case "fish":
			return rootCmd.GenFishCompletion(os.Stdout, true)
		case "powershell":
			return rootCmd.GenPowerShellCompletion(os.Stdout)
		default:
			return errors.New(errors.ErrInput,
				"Unknown shell: "+args[0],
				"Supported shells: bash, zsh, fish, powershell")
		}
	},
}

func init() {
	// plot flags live on the root too, since bare `sinewave` plots
	for _, cmd := range []*cobra.Command{rootCmd, plotCmd} {
		cmd.Flags().Float64Var(&plotPhaseFlag, "phase", 0, "initial phase in radians (default from config)")
		cmd.Flags().BoolVar(&plotAskFlag, "ask", false, "prompt for the initial phase")
	}

	// snapshot flags
	snapshotCmd.Flags().Float64Var(&snapshotPhaseFlag, "phase", 0, "phase in radians (default from config)")
	snapshotCmd.Flags().StringVarP(&snapshotFormatFlag, "format", "o", FormatTable, "output format: table, json, yaml, csv")

	// init flags
	initCmd.Flags().BoolVarP(&initForce, "force", "f", false, "overwrite existing config")

	rootCmd.AddCommand(plotCmd)
	rootCmd.AddCommand(snapshotCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(completionCmd)
}
