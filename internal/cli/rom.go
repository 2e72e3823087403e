package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/BlitterStudio/amiberry-mcp-server/internal/romdb"
)

func (a *App) romCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rom",
		Short: "Identify and catalog Kickstart ROM files",
	}

	var recursive bool
	scanCmd := &cobra.Command{
		Use:   "scan [dir]",
		Short: "Scan a directory for Kickstart ROMs",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := a.loaded.Config.Paths.Kickstarts
			if len(args) == 1 {
				dir = args[0]
			}
			roms, err := romdb.Scan(dir, recursive)
			if err != nil {
				return err
			}
			if len(roms) == 0 {
				a.printf("no ROMs found in %s\n", dir)
				return nil
			}
			for _, rom := range roms {
				if rom.Identified {
					a.printf("%-30s Kickstart %s (Rev %s) %s\n", rom.Filename, rom.Version, rom.Revision, rom.Model)
				} else {
					a.printf("%-30s %s\n", rom.Filename, rom.ProbableType)
				}
			}
			return nil
		},
	}
	scanCmd.Flags().BoolVar(&recursive, "recursive", false, "descend into subdirectories")
	cmd.AddCommand(scanCmd)

	cmd.AddCommand(&cobra.Command{
		Use:   "identify <path>",
		Short: "Identify one ROM file by checksum",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rom, err := romdb.Identify(args[0])
			if err != nil {
				return err
			}
			a.printf("%s\n", romdb.Summary(rom))
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "find <model> [dir]",
		Short: "Find the best ROM for an Amiga model",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := a.loaded.Config.Paths.Kickstarts
			if len(args) == 2 {
				dir = args[1]
			}
			roms, err := romdb.Scan(dir, true)
			if err != nil {
				return err
			}
			rom := romdb.FindForModel(roms, args[0])
			if rom == nil {
				return fmt.Errorf("no ROM for model %s in %s", args[0], dir)
			}
			a.printf("%s\n", rom.File)
			a.printf("Kickstart %s (Rev %s), %s\n", rom.Version, rom.Revision, rom.Model)
			return nil
		},
	})

	return cmd
}
