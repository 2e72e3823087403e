package uaeconf

import (
	"strconv"
	"strings"
)

// FloppySlot is one configured floppy drive.
type FloppySlot struct {
	Drive string // DF0 through DF3
	Image string
}

// Summary is the human-oriented digest of a parsed configuration.
type Summary struct {
	CPUModel   string
	CPUSpeed   string
	Chipset    string
	ChipKB     int
	FastKB     int
	Floppies   []FloppySlot
	Kickstart  string
	Width      string
	Height     string
	Fullscreen bool
}

// Summarize condenses a parsed config into the fields shown by the CLI.
// chipmem_size counts 512KB units and fastmem_size counts MB, per .uae
// conventions.
func Summarize(cfg Config) Summary {
	s := Summary{
		CPUModel:  normalizeCPUModel(cfg["cpu_model"]),
		CPUSpeed:  cfg["cpu_speed"],
		Chipset:   cfg["chipset"],
		Kickstart: cfg["kickstart_rom_file"],
		Width:     cfg["gfx_width"],
		Height:    cfg["gfx_height"],
	}

	if chip, err := strconv.Atoi(cfg["chipmem_size"]); err == nil {
		s.ChipKB = chip * 512
	}
	if fast, err := strconv.Atoi(cfg["fastmem_size"]); err == nil {
		s.FastKB = fast * 1024
	}

	for drive := 0; drive < 4; drive++ {
		key := "floppy" + strconv.Itoa(drive)
		if image := cfg[key]; image != "" {
			s.Floppies = append(s.Floppies, FloppySlot{
				Drive: "DF" + strconv.Itoa(drive),
				Image: image,
			})
		}
	}

	s.Fullscreen = cfg["gfx_fullscreen_amiga"] == "true"
	return s
}

// normalizeCPUModel ensures a 68xxx model name regardless of whether the
// config stores "68020" or just "020".
func normalizeCPUModel(model string) string {
	if model == "" || strings.HasPrefix(model, "68") {
		return model
	}
	return "68" + model
}
