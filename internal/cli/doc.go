// Package cli implements the sinewave command-line interface.
//
// Commands are Cobra commands that load the config and hand off to an
// exported function doing the work (Plot, Snapshot, Init), so the work can be
// tested without going through flag parsing.
//
// # Command Structure
//
//	sinewave                 - Interactive plot (same as plot)
//	sinewave plot            - Interactive plot, static render when piped
//	sinewave snapshot        - Print the dataset as table, json, yaml or csv
//	sinewave init            - Create .sinewave.yaml
//	sinewave version         - Version info
//	sinewave completion      - Shell completion scripts
//
// # Flag Handling
//
// Global flags (--config, --verbose, --no-color) are persistent flags on the
// root command. --phase and --ask are registered on both the root and plot
// commands because a bare `sinewave` plots.
//
// # Errors
//
// Commands return structured errors from internal/errors. Execute prints
// them in the ✗/cause/suggestion format and exits 1. Cobra's own usage
// errors are converted to the same format.
package cli
