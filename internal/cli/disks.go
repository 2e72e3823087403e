package cli

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/spf13/cobra"

	"github.com/BlitterStudio/amiberry-mcp-server/internal/config"
)

func classifyImage(path string) string {
	switch {
	case config.IsFloppyImage(path):
		return "floppy"
	case config.IsHardfile(path):
		return "hardfile"
	case config.IsArchive(path):
		return "archive"
	case config.IsCDImage(path):
		return "cd"
	default:
		return ""
	}
}

func (a *App) disksCmd() *cobra.Command {
	var kind string
	cmd := &cobra.Command{
		Use:   "disks [dir]",
		Short: "List disk images in the configured image directories",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dirs := a.loaded.Config.Paths.DiskImages
			if len(args) == 1 {
				dirs = []string{args[0]}
			}

			switch kind {
			case "", "floppy", "hardfile", "archive", "cd":
			default:
				return fmt.Errorf("unknown image type %q (floppy, hardfile, archive, cd)", kind)
			}

			var found []string
			kinds := make(map[string]string)
			for _, dir := range dirs {
				err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
					if err != nil || d.IsDir() {
						return nil
					}
					imageKind := classifyImage(path)
					if imageKind == "" || (kind != "" && imageKind != kind) {
						return nil
					}
					found = append(found, path)
					kinds[path] = imageKind
					return nil
				})
				if err != nil && !os.IsNotExist(err) {
					return err
				}
			}

			if len(found) == 0 {
				a.printf("no disk images found\n")
				return nil
			}
			sort.Strings(found)
			for _, path := range found {
				a.printf("%-8s %s\n", kinds[path], path)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&kind, "type", "", "only list one image type (floppy, hardfile, archive, cd)")
	return cmd
}
