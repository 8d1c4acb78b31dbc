package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"inkwheel/internal/colormath"
	"inkwheel/internal/ui"
)

var (
	convertCMYK string
	convertHex  string
)

var convertCmd = &cobra.Command{
	Use:   "convert",
	Short: "Convert a color between CMYK, RGB, HSL and hex",
	RunE: func(cmd *cobra.Command, args []string) error {
		var cmyk colormath.CMYK

		switch {
		case convertCMYK != "":
			c, err := colormath.ParseCMYK(convertCMYK)
			if err != nil {
				return fmt.Errorf("--cmyk: %w", err)
			}
			cmyk = c
		case convertHex != "":
			rgb, err := colormath.ParseHex(convertHex)
			if err != nil {
				return fmt.Errorf("--hex: %w", err)
			}
			cmyk = rgb.CMYK()
		default:
			return errors.New("pass either --cmyk c,m,y,k or --hex '#rrggbb'")
		}

		rgb := cmyk.RGB()
		hsl := rgb.HSL()

		ui.LogSection("convert")
		fmt.Println("  " + ui.Swatch(cmyk))
		fmt.Println()
		fmt.Printf("  %s %s\n", ui.Muted("%s", padLabel("cmyk")), ui.Bold("%d, %d, %d, %d", cmyk.C, cmyk.M, cmyk.Y, cmyk.K))
		fmt.Printf("  %s %s\n", ui.Muted("%s", padLabel("rgb")), ui.Bold("%d, %d, %d", rgb.R, rgb.G, rgb.B))
		fmt.Printf("  %s %s\n", ui.Muted("%s", padLabel("hsl")), ui.Bold("%.0f°, %.2f, %.2f", hsl.H, hsl.S, hsl.L))
		fmt.Printf("  %s %s\n", ui.Muted("%s", padLabel("hex")), ui.Bold("%s", rgb.Hex()))
		fmt.Println()
		return nil
	},
}

// padLabel right-pads a field label for aligned output
func padLabel(s string) string {
	return ui.PadRight(s+":", 6)
}

func init() {
	rootCmd.AddCommand(convertCmd)
	convertCmd.Flags().StringVar(&convertCMYK, "cmyk", "", "Color as c,m,y,k percentages")
	convertCmd.Flags().StringVar(&convertHex, "hex", "", "Color as #rrggbb")
}
