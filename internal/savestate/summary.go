package savestate

import (
	"fmt"
	"strings"
)

// Summary renders the metadata as the multi-line digest shown by the CLI.
func Summary(md Metadata) string {
	var lines []string
	lines = append(lines, "Savestate: "+md.Filename)
	lines = append(lines, fmt.Sprintf("Size: %.1f KB", float64(md.SizeBytes)/1024))

	if md.Description != "" {
		lines = append(lines, "Description: "+md.Description)
	}
	if md.Emulator != "" {
		created := md.Emulator
		if md.EmulatorVersion != "" {
			created += " " + md.EmulatorVersion
		}
		lines = append(lines, "Created by: "+created)
	}

	if md.CPU != nil {
		cpu := md.CPU.Model
		if cpu == "" {
			cpu = "Unknown"
		}
		if md.CPU.FPU != "" {
			cpu += " + " + md.CPU.FPU + " FPU"
		}
		if md.CPU.Chipset != "" {
			cpu += " (" + md.CPU.Chipset + ")"
		}
		lines = append(lines, "CPU: "+cpu)
	}

	var mem []string
	if md.Memory.Chip > 0 {
		mem = append(mem, fmt.Sprintf("%dKB Chip", md.Memory.Chip))
	}
	if md.Memory.Bogo > 0 {
		mem = append(mem, fmt.Sprintf("%dKB Slow", md.Memory.Bogo))
	}
	if md.Memory.Fast > 0 {
		mem = append(mem, fmt.Sprintf("%dKB Fast", md.Memory.Fast))
	}
	if md.Memory.Z3 > 0 {
		mem = append(mem, fmt.Sprintf("%dKB Z3", md.Memory.Z3))
	}
	if len(mem) > 0 {
		lines = append(lines, "Memory: "+strings.Join(mem, ", "))
	}

	if md.ROM != nil {
		rom := fmt.Sprintf("v%d.%d", md.ROM.Version, md.ROM.Revision)
		if md.ROM.ID != "" {
			rom += " (" + md.ROM.ID + ")"
		}
		if md.ROM.CRC != "" {
			rom += " [CRC: " + md.ROM.CRC + "]"
		}
		lines = append(lines, "Kickstart: "+rom)
	}

	for _, disk := range md.Disks {
		entry := disk.Drive
		switch {
		case disk.Image != "":
			entry += ": " + disk.Image
		case disk.MotorOn():
			entry += ": (motor on)"
		}
		lines = append(lines, "Floppy "+entry)
	}

	return strings.Join(lines, "\n")
}
