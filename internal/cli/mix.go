package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"inkwheel/internal/colormath"
	"inkwheel/internal/ui"
)

var mixCmd = &cobra.Command{
	Use:   "mix <c,m,y,k> <c,m,y,k>",
	Short: "Mix two colors subtractively",
	Long: `Mix two CMYK colors using the per-channel maximum rule: whichever
color lays down more of an ink wins that channel. A simplified
subtractive approximation, not a physical ink model.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := colormath.ParseCMYK(args[0])
		if err != nil {
			return fmt.Errorf("first color: %w", err)
		}
		b, err := colormath.ParseCMYK(args[1])
		if err != nil {
			return fmt.Errorf("second color: %w", err)
		}

		mixed := colormath.Mix(a, b)

		ui.LogSection("mix")
		fmt.Println(ui.SwatchLine("a", a))
		fmt.Println(ui.SwatchLine("b", b))
		fmt.Println(ui.SwatchLine("mixed", mixed))
		fmt.Println()
		return nil
	},
}

func init() {
	rootCmd.AddCommand(mixCmd)
}
