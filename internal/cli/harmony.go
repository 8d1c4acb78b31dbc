package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"inkwheel/internal/colormath"
	"inkwheel/internal/harmony"
	"inkwheel/internal/palette"
	"inkwheel/internal/ui"
)

var (
	harmonyBase string
	harmonySave string
)

var harmonyCmd = &cobra.Command{
	Use:   "harmony <kind>",
	Short: "Derive a harmony sequence from a base color",
	Long: `Generate the harmony sequence for a base CMYK color. The base color
comes first, followed by the derived colors in generation order.
Kinds: ` + harmony.KindNames() + `.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		kind, err := harmony.ParseKind(args[0])
		if err != nil {
			return err
		}
		base, err := colormath.ParseCMYK(harmonyBase)
		if err != nil {
			return fmt.Errorf("--base: %w", err)
		}

		colors := harmony.Generate(base, kind)
		labels := harmonyLabels(kind)

		ui.LogSection(string(kind))
		fmt.Println("  " + ui.SwatchRow(colors))
		fmt.Println()
		for i, c := range colors {
			fmt.Println(ui.SwatchLine(labels[i], c))
		}
		fmt.Println()

		if harmonySave != "" {
			store, err := openStore()
			if err != nil {
				return err
			}
			defer store.Close()

			if err := store.Put(palette.New(harmonySave, colors, kind)); err != nil {
				return err
			}
			ui.LogStatus("success", fmt.Sprintf("Saved palette %q (%d colors)", harmonySave, len(colors)))
		}
		return nil
	},
}

// harmonyLabels names each entry of a generated sequence, base first.
func harmonyLabels(kind harmony.Kind) []string {
	switch kind {
	case harmony.Complementary:
		return []string{"base", "complement"}
	case harmony.Monochromatic:
		return []string{"base", "25%", "50%", "75%", "100%"}
	case harmony.Analogous:
		return []string{"base", "-30°", "+30°"}
	case harmony.Triadic:
		return []string{"base", "+120°", "+240°"}
	case harmony.Tetradic:
		return []string{"base", "+90°", "+180°", "+270°"}
	}
	return nil
}

func init() {
	rootCmd.AddCommand(harmonyCmd)
	harmonyCmd.Flags().StringVar(&harmonyBase, "base", "", "Base color as c,m,y,k percentages (required)")
	harmonyCmd.Flags().StringVar(&harmonySave, "save", "", "Save the result as a named palette")
	_ = harmonyCmd.MarkFlagRequired("base")
}
