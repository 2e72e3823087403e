package romdb

// Entry describes one known Kickstart ROM build.
type Entry struct {
	Version  string
	Revision string
	Model    string
	Size     int64
}

// knownROMs maps uppercase CRC32 checksums to the most common Kickstart
// builds.
var knownROMs = map[string]Entry{
	// Kickstart 1.2
	"A6CE1636": {Version: "1.2", Revision: "33.180", Model: "A500/A1000/A2000", Size: 262144},
	// Kickstart 1.3
	"C4F0F55F": {Version: "1.3", Revision: "34.5", Model: "A500/A1000/A2000", Size: 262144},
	"E40A5DFB": {Version: "1.3", Revision: "34.5", Model: "A500/A1000/A2000 (alt)", Size: 262144},
	// Kickstart 2.04
	"C3BDB240": {Version: "2.04", Revision: "37.175", Model: "A500+", Size: 524288},
	// Kickstart 2.05
	"83028FB5": {Version: "2.05", Revision: "37.299", Model: "A600", Size: 524288},
	"64466C2A": {Version: "2.05", Revision: "37.300", Model: "A600HD", Size: 524288},
	"43B0DF7B": {Version: "2.05", Revision: "37.350", Model: "A600HD", Size: 524288},
	// Kickstart 3.0
	"6C9B07D2": {Version: "3.0", Revision: "39.106", Model: "A1200", Size: 524288},
	"FC24AE0D": {Version: "3.0", Revision: "39.106", Model: "A4000", Size: 524288},
	// Kickstart 3.1
	"1483A091": {Version: "3.1", Revision: "40.63", Model: "A500/A600/A2000", Size: 524288},
	"D6BAE334": {Version: "3.1", Revision: "40.68", Model: "A1200", Size: 524288},
	"B7CC148B": {Version: "3.1", Revision: "40.68", Model: "A3000", Size: 524288},
	"2B4566F1": {Version: "3.1", Revision: "40.70", Model: "A4000", Size: 524288},
	"9E6AC152": {Version: "3.1", Revision: "40.70", Model: "A4000T", Size: 524288},
	// Kickstart 3.1.4
	"AFE0A9C3": {Version: "3.1.4", Revision: "46.143", Model: "A500/A600/A2000", Size: 524288},
	"D52B52FD": {Version: "3.1.4", Revision: "46.143", Model: "A1200", Size: 524288},
	"FCA4B7E2": {Version: "3.1.4", Revision: "46.143", Model: "A3000", Size: 524288},
	"C3C48116": {Version: "3.1.4", Revision: "46.143", Model: "A4000/A4000T", Size: 524288},
	// Kickstart 3.2
	"C96B41EA": {Version: "3.2", Revision: "47.96", Model: "A500/A600/A2000", Size: 524288},
	"26D37C36": {Version: "3.2", Revision: "47.96", Model: "A1200", Size: 524288},
	"F2BA9D52": {Version: "3.2", Revision: "47.96", Model: "A3000", Size: 524288},
	"5BB85713": {Version: "3.2", Revision: "47.96", Model: "A4000/A4000T", Size: 524288},
	// CD32 / CDTV
	"1E5C4FE2": {Version: "3.1", Revision: "40.60", Model: "CD32", Size: 524288},
	"3525BE88": {Version: "CD32", Revision: "ext", Model: "CD32 Extended", Size: 524288},
	"8D28A7D9": {Version: "1.0", Revision: "1.0", Model: "CDTV", Size: 262144},
	"7BA40FFA": {Version: "2.30", Revision: "2.30", Model: "CDTV Extended", Size: 262144},
	// AROS
	"E4FED7D0": {Version: "AROS", Revision: "ROM", Model: "AROS Kickstart replacement", Size: 524288},
}

// Extensions lists file suffixes treated as ROM candidates during scans.
var Extensions = []string{".rom", ".bin", ".adf", ".a500", ".a600", ".a1200", ".a4000"}

// compatibleModels maps a machine to the ROM model names it can boot with, in
// preference order.
var compatibleModels = map[string][]string{
	"A500":  {"A500", "A1000", "A2000"},
	"A500+": {"A500+", "A500"},
	"A600":  {"A600", "A500+"},
	"A1200": {"A1200"},
	"A3000": {"A3000", "A4000"},
	"A4000": {"A4000", "A4000T", "A3000"},
	"CD32":  {"CD32"},
	"CDTV":  {"CDTV"},
}
