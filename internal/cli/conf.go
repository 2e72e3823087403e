package cli

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/BlitterStudio/amiberry-mcp-server/internal/uaeconf"
)

// resolveConfigPath turns a bare config name into a path under the configs
// directory, appending .uae when no extension is given. Explicit paths pass
// through untouched.
func (a *App) resolveConfigPath(name string) string {
	if filepath.Ext(name) == "" {
		name += ".uae"
	}
	if filepath.IsAbs(name) || strings.ContainsRune(name, filepath.Separator) {
		return name
	}
	return filepath.Join(a.loaded.Config.Paths.Configs, name)
}

func parseAssignments(pairs []string) (uaeconf.Config, error) {
	set := make(uaeconf.Config, len(pairs))
	for _, pair := range pairs {
		key, value, found := strings.Cut(pair, "=")
		if !found || strings.TrimSpace(key) == "" {
			return nil, fmt.Errorf("expected key=value, got %q", pair)
		}
		set[strings.TrimSpace(key)] = strings.TrimSpace(value)
	}
	return set, nil
}

func (a *App) confCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "conf",
		Short: "Create and edit .uae configuration files",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "show <name>",
		Short: "Summarize a .uae configuration",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := a.resolveConfigPath(args[0])
			cfg, err := uaeconf.ParseFile(path)
			if err != nil {
				return err
			}
			s := uaeconf.Summarize(cfg)
			a.printf("Config: %s\n", path)
			if s.CPUModel != "" {
				a.printf("CPU: %s\n", s.CPUModel)
			}
			if s.Chipset != "" {
				a.printf("Chipset: %s\n", strings.ToUpper(s.Chipset))
			}
			if s.ChipKB > 0 {
				a.printf("Chip RAM: %d KB\n", s.ChipKB)
			}
			if s.FastKB > 0 {
				a.printf("Fast RAM: %d KB\n", s.FastKB)
			}
			if s.Kickstart != "" {
				a.printf("Kickstart: %s\n", s.Kickstart)
			}
			for _, slot := range s.Floppies {
				a.printf("%s: %s\n", slot.Drive, slot.Image)
			}
			if s.Width != "" && s.Height != "" {
				a.printf("Display: %sx%s\n", s.Width, s.Height)
			}
			return nil
		},
	})

	var template string
	var setPairs []string
	createCmd := &cobra.Command{
		Use:   "create <name>",
		Short: "Create a .uae configuration from a machine template",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			overrides, err := parseAssignments(setPairs)
			if err != nil {
				return err
			}
			path := a.resolveConfigPath(args[0])
			if _, err := uaeconf.FromTemplate(path, template, overrides); err != nil {
				return err
			}
			a.printf("created %s from %s template\n", path, template)
			return nil
		},
	}
	createCmd.Flags().StringVar(&template, "template", "A500", "machine template")
	createCmd.Flags().StringArrayVar(&setPairs, "set", nil, "override key=value")
	cmd.AddCommand(createCmd)

	var modifySet []string
	var modifyUnset []string
	modifyCmd := &cobra.Command{
		Use:   "modify <name>",
		Short: "Change keys in an existing .uae configuration",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			set, err := parseAssignments(modifySet)
			if err != nil {
				return err
			}
			if len(set) == 0 && len(modifyUnset) == 0 {
				return fmt.Errorf("nothing to change, pass --set or --unset")
			}
			path := a.resolveConfigPath(args[0])
			if _, err := uaeconf.ModifyFile(path, set, modifyUnset); err != nil {
				return err
			}
			a.printf("updated %s\n", path)
			return nil
		},
	}
	modifyCmd.Flags().StringArrayVar(&modifySet, "set", nil, "set key=value")
	modifyCmd.Flags().StringArrayVar(&modifyUnset, "unset", nil, "remove key")
	cmd.AddCommand(modifyCmd)

	cmd.AddCommand(&cobra.Command{
		Use:   "templates",
		Short: "List the available machine templates",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range uaeconf.TemplateNames() {
				a.printf("%s\n", name)
			}
		},
	})

	return cmd
}
