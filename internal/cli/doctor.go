package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/BlitterStudio/amiberry-mcp-server/internal/doctor"
)

func (a *App) doctorCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Check the host setup for running Amiberry",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			report := doctor.Run(cmd.Context(), a.loaded)
			a.printf("%s\n", report.String())
			if !report.OK() {
				return errors.New("some checks failed")
			}
			return nil
		},
	}
}
