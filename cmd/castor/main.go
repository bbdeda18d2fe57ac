package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"castor/internal/config"
	"castor/internal/promote"
	"castor/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "castor",
	Short: "Numeric kind promotion resolver and toolchain",
	Long:  `Castor resolves scalar and array kind promotion, including weak scalar promotion, with tooling to inspect and verify the promotion table`,
}

// main initializes the CLI by setting the command version, registering
// subcommands and persistent flags, and then executes the root command.
// If command execution returns an error, the process exits with status code 1.
func main() {
	rootCmd.Version = version.Version

	rootCmd.AddCommand(resolveCmd)
	rootCmd.AddCommand(tableCmd)
	rootCmd.AddCommand(verifyCmd)
	rootCmd.AddCommand(versionCmd)

	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().Bool("quiet", false, "suppress non-essential output")
	rootCmd.PersistentFlags().String("mode", "", "promotion mode (legacy|weak|weak_and_warn)")

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		applyColorFlag(cmd)
		loadManifest(cmd)
		return applyModeFlag(cmd)
	}

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func applyColorFlag(cmd *cobra.Command) {
	switch mode, _ := cmd.Flags().GetString("color"); mode {
	case "on":
		color.NoColor = false
	case "off":
		color.NoColor = true
	default:
		color.NoColor = !isTerminal(os.Stdout)
	}
}

// loadManifest applies castor.toml from the working tree, when present.
// Manifest problems are reported but never block the command.
func loadManifest(cmd *cobra.Command) {
	path, ok, err := config.Find(".")
	if err != nil || !ok {
		return
	}
	cfg, ok, err := config.Load(path)
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "%s: %v\n", path, err)
		return
	}
	if !ok {
		return
	}
	for _, d := range cfg.Apply().Items() {
		fmt.Fprintf(cmd.ErrOrStderr(), "%s: %s\n", path, renderDiagnostic(d))
	}
}

// applyModeFlag lets --mode override both the built-in default and the
// manifest for this one invocation.
func applyModeFlag(cmd *cobra.Command) error {
	name, _ := cmd.Flags().GetString("mode")
	if name == "" {
		return nil
	}
	m, ok := promote.ModeFromName(name)
	if !ok {
		return fmt.Errorf("unknown promotion mode %q (legacy, weak, weak_and_warn)", name)
	}
	promote.Set(m)
	return nil
}

// isTerminal reports whether the file is attached to a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
