package port

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempCSV(t *testing.T, contents string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "seaports.csv")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestLoadSeaportsFiltersByFunction(t *testing.T) {
	// S4: Rotterdam (seaport) kept, Berlin (no seaport function) rejected.
	csv := "" +
		`,NL,RTM,Rotterdam,Rotterdam,,1--3----,AI,,,5155N 00430E` + "\n" +
		`,DE,BER,Berlin,Berlin,,--3-----,AI,,,5231N 01323E` + "\n"
	path := writeTempCSV(t, csv)

	ports, err := LoadSeaports(path)
	require.NoError(t, err)
	require.Len(t, ports, 1)
	assert.Equal(t, "NLRTM", ports[0].Unlocode)
}

func TestLoadSeaportsSkipsChangeIndicatorX(t *testing.T) {
	csv := `X,NL,RTM,Rotterdam,Rotterdam,,1--3----,AI,,,5155N 00430E` + "\n"
	ports, err := LoadSeaports(writeTempCSV(t, csv))
	require.NoError(t, err)
	assert.Empty(t, ports)
}

func TestLoadSeaportsSkipsInvalidStatus(t *testing.T) {
	csv := `,NL,RTM,Rotterdam,Rotterdam,,1--3----,ZZ,,,5155N 00430E` + "\n"
	ports, err := LoadSeaports(writeTempCSV(t, csv))
	require.NoError(t, err)
	assert.Empty(t, ports)
}

func TestLoadSeaportsSkipsBadCoordinates(t *testing.T) {
	csv := `,NL,RTM,Rotterdam,Rotterdam,,1--3----,AI,,,garbage` + "\n"
	ports, err := LoadSeaports(writeTempCSV(t, csv))
	require.NoError(t, err)
	assert.Empty(t, ports)
}

func TestLoadSeaportsSkipsShortRecords(t *testing.T) {
	csv := "a,b,c\n"
	ports, err := LoadSeaports(writeTempCSV(t, csv))
	require.NoError(t, err)
	assert.Empty(t, ports)
}

func TestLoadSeaportsNameFallback(t *testing.T) {
	// ASCII name (col 4) empty, falls back to col 3.
	csv := `,NL,RTM,Rotterdam,,,1--3----,AI,,,5155N 00430E` + "\n"
	ports, err := LoadSeaports(writeTempCSV(t, csv))
	require.NoError(t, err)
	require.Len(t, ports, 1)
	assert.Equal(t, "Rotterdam", ports[0].Name)
}

func TestLoadSeaportsDedupesByUnlocode(t *testing.T) {
	csv := "" +
		`,NL,RTM,Rotterdam,Rotterdam,,1--3----,AI,,,5155N 00430E` + "\n" +
		`,NL,RTM,Rotterdam2,Rotterdam2,,1--3----,AI,,,5155N 00430E` + "\n"
	ports, err := LoadSeaports(writeTempCSV(t, csv))
	require.NoError(t, err)
	require.Len(t, ports, 1)
	assert.Equal(t, "Rotterdam", ports[0].Name)
}

func TestLoadSeaportsQuotedFieldsWithCommas(t *testing.T) {
	csv := `,NL,RTM,"Rotterdam, Haven",Rotterdam,,1--3----,AI,,,5155N 00430E` + "\n"
	ports, err := LoadSeaports(writeTempCSV(t, csv))
	require.NoError(t, err)
	require.Len(t, ports, 1)
}

func TestLoadSeaportsMissingFileSkipped(t *testing.T) {
	ports, err := LoadSeaports(filepath.Join(t.TempDir(), "does-not-exist.csv"))
	require.NoError(t, err)
	assert.Empty(t, ports)
}

func TestLoadSeaportsEmptyFile(t *testing.T) {
	ports, err := LoadSeaports(writeTempCSV(t, ""))
	require.NoError(t, err)
	assert.Empty(t, ports)
}

func TestParseCSVLineDoubledQuoteEscape(t *testing.T) {
	fields := parseCSVLine(`a,"b""c",d`)
	require.Equal(t, []string{"a", `b"c`, "d"}, fields)
}
