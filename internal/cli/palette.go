package cli

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"inkwheel/internal/palette"
	"inkwheel/internal/ui"
)

var paletteCmd = &cobra.Command{
	Use:   "palette",
	Short: "Manage saved palettes",
}

var paletteListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all saved palettes",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()

		palettes, err := store.List()
		if err != nil {
			return err
		}
		if len(palettes) == 0 {
			ui.LogStatus("info", "No saved palettes yet. Try: inkwheel harmony triadic --base 30,60,90,10 --save mine")
			return nil
		}

		rows := make([]map[string]string, len(palettes))
		for i, p := range palettes {
			rows[i] = map[string]string{
				"name":    p.Name,
				"method":  string(p.Method),
				"colors":  ui.SwatchRow(p.Colors),
				"created": p.CreatedAt().Format(time.DateTime),
			}
		}

		fmt.Print(ui.RenderTable(ui.RenderTableOptions{
			Columns: []ui.TableColumn{
				{Key: "name", Header: "NAME"},
				{Key: "method", Header: "METHOD"},
				{Key: "colors", Header: "COLORS"},
				{Key: "created", Header: "CREATED"},
			},
			Rows: rows,
		}))
		return nil
	},
}

var paletteShowCmd = &cobra.Command{
	Use:   "show <name>",
	Short: "Show one saved palette",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()

		p, err := store.Get(args[0])
		if errors.Is(err, palette.ErrNotFound) {
			return fmt.Errorf("no palette named %q", args[0])
		}
		if err != nil {
			return err
		}

		ui.LogSection(p.Name)
		fmt.Printf("  %s %s   %s %s\n",
			ui.Muted("method:"), ui.Subtle("%s", string(p.Method)),
			ui.Muted("created:"), ui.Subtle("%s", p.CreatedAt().Format(time.DateTime)))
		fmt.Println()
		for i, c := range p.Colors {
			label := "base"
			if i > 0 {
				label = fmt.Sprintf("derived %d", i)
			}
			fmt.Println(ui.SwatchLine(label, c))
		}
		fmt.Println()
		return nil
	},
}

var paletteDeleteCmd = &cobra.Command{
	Use:   "delete <name>",
	Short: "Delete a saved palette",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()

		if err := store.Delete(args[0]); err != nil {
			if errors.Is(err, palette.ErrNotFound) {
				return fmt.Errorf("no palette named %q", args[0])
			}
			return err
		}
		ui.LogStatus("success", fmt.Sprintf("Deleted palette %q", args[0]))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(paletteCmd)
	paletteCmd.AddCommand(paletteListCmd)
	paletteCmd.AddCommand(paletteShowCmd)
	paletteCmd.AddCommand(paletteDeleteCmd)
}
