package uaeconf

import (
	"fmt"
	"sort"
)

// templates holds the baseline machine configurations for quick creation.
// Memory sizes follow .uae conventions: chipmem_size and bogomem_size in
// 512KB units, fastmem_size in MB.
var templates = map[string]Config{
	"A500": {
		"cpu_model":    "68000",
		"chipset":      "ocs",
		"chipmem_size": "1",
		"bogomem_size": "1",
		"fastmem_size": "0",
	},
	"A500P": {
		"cpu_model":    "68000",
		"chipset":      "ecs",
		"chipmem_size": "2",
		"bogomem_size": "0",
		"fastmem_size": "0",
	},
	"A600": {
		"cpu_model":    "68000",
		"chipset":      "ecs",
		"chipmem_size": "2",
		"fastmem_size": "0",
	},
	"A1200": {
		"cpu_model":    "68020",
		"chipset":      "aga",
		"chipmem_size": "4",
		"fastmem_size": "0",
	},
	"A4000": {
		"cpu_model":    "68040",
		"chipset":      "aga",
		"chipmem_size": "4",
		"fastmem_size": "8",
	},
	"CD32": {
		"cpu_model":    "68020",
		"chipset":      "aga",
		"chipmem_size": "4",
		"cd32cd":       "true",
		"cd32nvram":    "true",
	},
	"CDTV": {
		"cpu_model":    "68000",
		"chipset":      "ecs",
		"chipmem_size": "2",
		"cdtvcd":       "true",
	},
}

// TemplateNames lists the available machine templates in sorted order.
func TemplateNames() []string {
	names := make([]string, 0, len(templates))
	for name := range templates {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// FromTemplate writes a new .uae file based on a machine template, with
// optional overriding keys, and returns the resulting config.
func FromTemplate(path, model string, overrides Config) (Config, error) {
	base, ok := templates[model]
	if !ok {
		return nil, fmt.Errorf("unknown machine template %q (have %v)", model, TemplateNames())
	}

	cfg := make(Config, len(base)+len(overrides))
	for key, value := range base {
		cfg[key] = value
	}
	for key, value := range overrides {
		cfg[key] = value
	}

	if err := WriteFile(path, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
