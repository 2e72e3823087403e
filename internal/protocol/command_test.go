package protocol

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEncodeWireForm(t *testing.T) {
	require.Equal(t, "PING\n", string(Ping().Encode()))
	require.Equal(t, "RESET\tHARD\n", string(Reset(true).Encode()))
	require.Equal(t, "RESET\tSOFT\n", string(Reset(false).Encode()))

	cmd, err := InsertFloppy(0, "/data/Workbench 3.1.adf")
	require.NoError(t, err)
	require.Equal(t, "INSERT_FLOPPY\t0\t/data/Workbench 3.1.adf\n", string(cmd.Encode()))

	cmd, err = WriteMemory(0xdff180, 2, 0x0fff)
	require.NoError(t, err)
	require.Equal(t, "WRITE_MEM\t0xdff180\t2\t0xfff\n", string(cmd.Encode()))
}

func TestPathsWithBlanksSurviveEncoding(t *testing.T) {
	cmd, err := LoadState("/saves/my game.uss")
	require.NoError(t, err)
	require.Equal(t, []string{"/saves/my game.uss"}, cmd.Args)
}

func TestConstructorValidation(t *testing.T) {
	tests := []struct {
		name  string
		build func() (Command, error)
		param string
	}{
		{"frame advance zero", func() (Command, error) { return FrameAdvance(0) }, "frames"},
		{"frame advance negative", func() (Command, error) { return FrameAdvance(-3) }, "frames"},
		{"screenshot empty path", func() (Command, error) { return Screenshot("  ") }, "path"},
		{"floppy drive high", func() (Command, error) { return InsertFloppy(4, "/a.adf") }, "drive"},
		{"floppy drive negative", func() (Command, error) { return EjectFloppy(-1) }, "drive"},
		{"floppy path with tab", func() (Command, error) { return InsertFloppy(0, "a\tb.adf") }, "path"},
		{"disk swap negative index", func() (Command, error) { return DiskSwap(-1, 0) }, "index"},
		{"quick save slot high", func() (Command, error) { return QuickSave(10) }, "slot"},
		{"quick load slot negative", func() (Command, error) { return QuickLoad(-1) }, "slot"},
		{"volume above range", func() (Command, error) { return SetVolume(101) }, "volume"},
		{"volume below range", func() (Command, error) { return SetVolume(-1) }, "volume"},
		{"keycode out of range", func() (Command, error) { return SendKey(256, true) }, "keycode"},
		{"joystick port out of range", func() (Command, error) { return SendJoy(2, 0) }, "port"},
		{"joystick state out of range", func() (Command, error) { return SendJoy(0, 300) }, "state"},
		{"mouse buttons out of range", func() (Command, error) { return SendMouse(0, 0, 8) }, "buttons"},
		{"option key empty", func() (Command, error) { return GetOption("") }, "option key"},
		{"option value with newline", func() (Command, error) { return SetOption("cpu_model", "a\nb") }, "option value"},
		{"memory width three", func() (Command, error) { return ReadMemory(0x1000, 3) }, "width"},
		{"memory width zero", func() (Command, error) { return ReadMemory(0x1000, 0) }, "width"},
		{"write value exceeds width", func() (Command, error) { return WriteMemory(0x1000, 1, 0x100) }, "value"},
		{"block read zero length", func() (Command, error) { return ReadMemoryBlock(0, 0) }, "length"},
		{"block read oversized", func() (Command, error) { return ReadMemoryBlock(0, maxBlockRead+1) }, "length"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := tc.build()
			require.Error(t, err)
			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			require.Equal(t, tc.param, verr.Param)
		})
	}
}

func TestWriteMemoryWidthBoundaries(t *testing.T) {
	for _, tc := range []struct {
		width int
		max   uint32
	}{
		{1, 0xff},
		{2, 0xffff},
		{4, 0xffffffff},
	} {
		_, err := WriteMemory(0x1000, tc.width, tc.max)
		require.NoError(t, err, "width %d at max", tc.width)
	}

	_, err := WriteMemory(0x1000, 2, 0x10000)
	require.Error(t, err)
}

func TestBreakpointCommandAddressFormat(t *testing.T) {
	cmd := SetBreakpoint(0xFC0000)
	require.Equal(t, "SET_BREAKPOINT\t0xfc0000\n", string(cmd.Encode()))

	cmd = ClearBreakpoint(0)
	require.Equal(t, "CLEAR_BREAKPOINT\t0x0\n", string(cmd.Encode()))
}

func TestShapeFraming(t *testing.T) {
	require.Equal(t, FrameLine, Status().Shape.Framing())
	require.Equal(t, FrameLines, ListFloppies().Shape.Framing())
	require.Equal(t, FrameLines, ListBreakpoints().Shape.Framing())

	cmd, err := ReadMemoryBlock(0x1000, 256)
	require.NoError(t, err)
	require.Equal(t, FrameBlob, cmd.Shape.Framing())
}

func TestParseAddress(t *testing.T) {
	for _, tc := range []struct {
		in   string
		want uint32
	}{
		{"0xdff180", 0xdff180},
		{"0XDFF180", 0xdff180},
		{"dff180", 0xdff180},
		{" 0x0 ", 0},
		{"ffffffff", 0xffffffff},
	} {
		got, err := ParseAddress(tc.in)
		require.NoError(t, err, tc.in)
		require.Equal(t, tc.want, got, tc.in)
	}

	for _, in := range []string{"", "0x", "xyz", "0x100000000"} {
		_, err := ParseAddress(in)
		require.Error(t, err, in)
	}
}
