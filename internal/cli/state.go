package cli

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/BlitterStudio/amiberry-mcp-server/internal/savestate"
)

func (a *App) stateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "state",
		Short: "Save and restore machine state",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "save <state-path> <config-path>",
		Short: "Save the machine state with its config snapshot",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.client.SaveState(cmd.Context(), args[0], args[1]); err != nil {
				return err
			}
			a.printf("state saved to %s\n", args[0])
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "load <state-path>",
		Short: "Restore a savestate",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.client.LoadState(cmd.Context(), args[0]); err != nil {
				return err
			}
			a.printf("state loaded from %s\n", args[0])
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "quicksave <slot>",
		Short: "Save into a numbered quick slot (0-9)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			slot, err := strconv.Atoi(args[0])
			if err != nil {
				return err
			}
			if err := a.client.QuickSave(cmd.Context(), slot); err != nil {
				return err
			}
			a.printf("saved to slot %d\n", slot)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "quickload <slot>",
		Short: "Restore from a numbered quick slot (0-9)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			slot, err := strconv.Atoi(args[0])
			if err != nil {
				return err
			}
			if err := a.client.QuickLoad(cmd.Context(), slot); err != nil {
				return err
			}
			a.printf("loaded from slot %d\n", slot)
			return nil
		},
	})

	return cmd
}

func (a *App) savestateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "savestate",
		Short: "Inspect .uss savestate files offline",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "inspect <path>",
		Short: "Show the metadata of a savestate file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			md, err := savestate.Inspect(args[0])
			if err != nil {
				return err
			}
			a.printf("%s\n", savestate.Summary(md))
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "chunks <path>",
		Short: "List the chunk table of a savestate file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			chunks, err := savestate.ListChunks(args[0])
			if err != nil {
				return err
			}
			for _, chunk := range chunks {
				a.printf("%-4s offset=%-8d size=%d\n", chunk.Name, chunk.Offset, chunk.DataSize)
			}
			return nil
		},
	})

	return cmd
}
