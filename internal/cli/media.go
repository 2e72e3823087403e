package cli

import (
	"strconv"

	"github.com/spf13/cobra"
)

func parseDrive(s string) (int, error) {
	return strconv.Atoi(s)
}

func (a *App) floppyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "floppy",
		Short: "Manage floppy drives",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "insert <drive> <path>",
		Short: "Insert a disk image into a drive",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			drive, err := parseDrive(args[0])
			if err != nil {
				return err
			}
			if err := a.client.InsertFloppy(cmd.Context(), drive, args[1]); err != nil {
				return err
			}
			a.printf("DF%d: %s\n", drive, args[1])
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "eject <drive>",
		Short: "Eject the disk from a drive",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			drive, err := parseDrive(args[0])
			if err != nil {
				return err
			}
			if err := a.client.EjectFloppy(cmd.Context(), drive); err != nil {
				return err
			}
			a.printf("DF%d ejected\n", drive)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List all drive slots",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			drives, err := a.client.Floppies(cmd.Context())
			if err != nil {
				return err
			}
			for _, drive := range drives {
				image := drive.Image
				if image == "" {
					image = "(empty)"
				}
				flags := ""
				if drive.WriteProtected {
					flags += " [wp]"
				}
				if drive.MotorOn {
					flags += " [motor]"
				}
				a.printf("DF%d: %s track=%d%s\n", drive.Drive, image, drive.Track, flags)
			}
			return nil
		},
	})

	return cmd
}

func (a *App) cdCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cd",
		Short: "Manage the CD drive",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "insert <path>",
		Short: "Insert a CD image",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.client.InsertCD(cmd.Context(), args[0]); err != nil {
				return err
			}
			a.printf("CD: %s\n", args[0])
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "eject",
		Short: "Eject the CD image",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.client.EjectCD(cmd.Context()); err != nil {
				return err
			}
			a.printf("CD ejected\n")
			return nil
		},
	})

	return cmd
}

func (a *App) swapCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "swap",
		Short: "Work with the disk swapper list",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "use <index> <drive>",
		Short: "Insert a swapper entry into a drive",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			index, err := strconv.Atoi(args[0])
			if err != nil {
				return err
			}
			drive, err := parseDrive(args[1])
			if err != nil {
				return err
			}
			if err := a.client.DiskSwap(cmd.Context(), index, drive); err != nil {
				return err
			}
			a.printf("swapper entry %d inserted into DF%d\n", index, drive)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "query <drive>",
		Short: "Show which swapper entry occupies a drive",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			drive, err := parseDrive(args[0])
			if err != nil {
				return err
			}
			index, err := a.client.QueryDiskSwap(cmd.Context(), drive)
			if err != nil {
				return err
			}
			if index < 0 {
				a.printf("DF%d holds no swapper disk\n", drive)
			} else {
				a.printf("DF%d holds swapper entry %d\n", drive, index)
			}
			return nil
		},
	})

	return cmd
}
