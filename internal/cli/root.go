// Package cli wires the inkwheel command tree.
package cli

import (
	"os"

	"github.com/spf13/cobra"

	"inkwheel/internal/config"
	"inkwheel/internal/palette"
	"inkwheel/internal/ui"
)

// Version is stamped at build time via -ldflags
var Version = "v1.0.0"

var rootCmd = &cobra.Command{
	Use:   "inkwheel",
	Short: "CMYK color harmonies in the terminal",
	Long: `Inkwheel computes color relationships in the CMYK print color model:
pick a base color, derive harmonies (complementary, monochromatic,
analogous, triadic, tetradic), mix two colors subtractively, and keep
named palettes for later.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		ui.EmitBanner(Version, "Subtractive color, additive joy")
	},
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		ui.LogStatus("error", err.Error())
		os.Exit(1)
	}
}

// openStore opens the palette database from the resolved config. The
// caller owns the returned store and must Close it.
func openStore() (palette.Store, error) {
	cfg := config.Load()
	return palette.NewBolt(cfg.StorePath)
}
