package loader

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alecthomas/assert/v2"

	"github.com/robinvdvleuten/salesagg/ledger"
)

// writeFiles creates the named files with the given content in dir.
func writeFiles(t *testing.T, dir string, files map[string]string) {
	t.Helper()
	for name, content := range files {
		err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0644)
		assert.NoError(t, err)
	}
}

func TestParseTable(t *testing.T) {
	t.Run("Branch", func(t *testing.T) {
		table, err := ParseTable(strings.NewReader("001,Tokyo\n002,Osaka\n"), ledger.DimensionBranch)
		assert.NoError(t, err)
		assert.Equal(t, 2, table.Len())

		name, ok := table.Name("002")
		assert.True(t, ok)
		assert.Equal(t, "Osaka", name)
	})

	t.Run("NoTrailingNewline", func(t *testing.T) {
		table, err := ParseTable(strings.NewReader("001,Tokyo\n002,Osaka"), ledger.DimensionBranch)
		assert.NoError(t, err)
		assert.Equal(t, 2, table.Len())
	})

	t.Run("CRLF", func(t *testing.T) {
		table, err := ParseTable(strings.NewReader("001,Tokyo\r\n002,Osaka\r\n"), ledger.DimensionBranch)
		assert.NoError(t, err)
		name, _ := table.Name("001")
		assert.Equal(t, "Tokyo", name)
	})

	t.Run("Commodity", func(t *testing.T) {
		table, err := ParseTable(strings.NewReader("SFD00001,Notebook\nSFD00002,Monitor\n"), ledger.DimensionCommodity)
		assert.NoError(t, err)
		assert.Equal(t, ledger.DimensionCommodity, table.Dimension)
		assert.Equal(t, 2, table.Len())
	})

	t.Run("Empty", func(t *testing.T) {
		table, err := ParseTable(strings.NewReader(""), ledger.DimensionBranch)
		assert.NoError(t, err)
		assert.Equal(t, 0, table.Len())
	})

	t.Run("Duplicates", func(t *testing.T) {
		table, err := ParseTable(strings.NewReader("001,Tokyo\n002,Osaka\n001,Shinjuku\n"), ledger.DimensionBranch)
		assert.NoError(t, err)
		assert.Equal(t, 2, table.Len())
		name, _ := table.Name("001")
		assert.Equal(t, "Shinjuku", name)
	})

	invalid := []struct {
		name    string
		dim     ledger.Dimension
		content string
		line    int
	}{
		{"OneField", ledger.DimensionBranch, "001,Tokyo\n002\n", 2},
		{"ThreeFields", ledger.DimensionBranch, "001,Tokyo,Japan\n", 1},
		{"EmptyName", ledger.DimensionBranch, "001,\n", 1},
		{"BlankLine", ledger.DimensionBranch, "001,Tokyo\n\n002,Osaka\n", 2},
		{"ShortBranchCode", ledger.DimensionBranch, "01,Tokyo\n", 1},
		{"AlphaBranchCode", ledger.DimensionBranch, "A01,Tokyo\n", 1},
		{"ShortCommodityCode", ledger.DimensionCommodity, "SFD0001,Notebook\n", 1},
		{"SymbolCommodityCode", ledger.DimensionCommodity, "SFD_0001,Notebook\n", 1},
	}

	for _, tt := range invalid {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseTable(strings.NewReader(tt.content), tt.dim)

			var formatErr *ledger.LookupFormatError
			assert.True(t, errors.As(err, &formatErr), "got %v", err)
			assert.Equal(t, tt.dim, formatErr.Dimension)
			assert.Equal(t, tt.line, formatErr.Line)
		})
	}
}

func TestLoadTable(t *testing.T) {
	t.Run("Missing", func(t *testing.T) {
		dir := t.TempDir()
		_, err := LoadTable(dir, ledger.DimensionCommodity)

		var missing *ledger.MissingFileError
		assert.True(t, errors.As(err, &missing))
		assert.Equal(t, ledger.DimensionCommodity, missing.Dimension)
		assert.Equal(t, filepath.Join(dir, "commodity.lst"), missing.Path)
	})

	t.Run("FormatErrorCarriesPath", func(t *testing.T) {
		dir := t.TempDir()
		writeFiles(t, dir, map[string]string{"branch.lst": "1,Tokyo\n"})

		_, err := LoadTable(dir, ledger.DimensionBranch)
		var formatErr *ledger.LookupFormatError
		assert.True(t, errors.As(err, &formatErr))
		assert.Equal(t, filepath.Join(dir, "branch.lst"), formatErr.Path)
	})

	t.Run("Directory", func(t *testing.T) {
		dir := t.TempDir()
		assert.NoError(t, os.Mkdir(filepath.Join(dir, "branch.lst"), 0755))

		_, err := LoadTable(dir, ledger.DimensionBranch)
		assert.IsError(t, err, ledger.ErrUnexpected)
	})
}

func TestDiscover(t *testing.T) {
	t.Run("FiltersAndSorts", func(t *testing.T) {
		dir := t.TempDir()
		writeFiles(t, dir, map[string]string{
			"00000002.rcd":  "",
			"00000001.rcd":  "",
			"00000003.rcd":  "",
			"0000004.rcd":   "",
			"000000005.rcd": "",
			"00000006.RCD":  "",
			"00000007.rcd~": "",
			"a0000008.rcd":  "",
			"00000009.txt":  "",
			"branch.lst":    "",
		})
		assert.NoError(t, os.Mkdir(filepath.Join(dir, "00000004.rcd"), 0755))

		files, err := Discover(context.Background(), dir)
		assert.NoError(t, err)

		var names []string
		for _, f := range files {
			names = append(names, f.Name)
		}
		assert.Equal(t, []string{"00000001.rcd", "00000002.rcd", "00000003.rcd"}, names)
		assert.Equal(t, 3, files[2].Seq)
		assert.Equal(t, filepath.Join(dir, "00000003.rcd"), files[2].Path)
	})

	t.Run("Empty", func(t *testing.T) {
		files, err := Discover(context.Background(), t.TempDir())
		assert.NoError(t, err)
		assert.Equal(t, 0, len(files))
	})

	t.Run("SingleFileAnywhere", func(t *testing.T) {
		dir := t.TempDir()
		writeFiles(t, dir, map[string]string{"00000042.rcd": ""})

		files, err := Discover(context.Background(), dir)
		assert.NoError(t, err)
		assert.Equal(t, 1, len(files))
		assert.Equal(t, 42, files[0].Seq)
	})

	t.Run("Gap", func(t *testing.T) {
		dir := t.TempDir()
		writeFiles(t, dir, map[string]string{"00000001.rcd": "", "00000003.rcd": ""})

		_, err := Discover(context.Background(), dir)
		var gap *ledger.SequenceGapError
		assert.True(t, errors.As(err, &gap))
		assert.Equal(t, "00000001.rcd", gap.Prev)
		assert.Equal(t, "00000003.rcd", gap.Next)
	})

	t.Run("DirectoryFillsNoGap", func(t *testing.T) {
		dir := t.TempDir()
		writeFiles(t, dir, map[string]string{"00000001.rcd": "", "00000003.rcd": ""})
		assert.NoError(t, os.Mkdir(filepath.Join(dir, "00000002.rcd"), 0755))

		_, err := Discover(context.Background(), dir)
		var gap *ledger.SequenceGapError
		assert.True(t, errors.As(err, &gap))
	})

	t.Run("MissingDirectory", func(t *testing.T) {
		_, err := Discover(context.Background(), filepath.Join(t.TempDir(), "nope"))
		assert.IsError(t, err, ledger.ErrUnexpected)
	})
}

func TestCheckSequence(t *testing.T) {
	files := func(seqs ...int) []ledger.RecordFile {
		out := make([]ledger.RecordFile, len(seqs))
		for i, s := range seqs {
			out[i] = ledger.RecordFile{Seq: s}
		}
		return out
	}

	tests := []struct {
		name  string
		files []ledger.RecordFile
		ok    bool
	}{
		{"None", nil, true},
		{"One", files(7), true},
		{"Contiguous", files(1, 2, 3, 4), true},
		{"ContiguousFromOffset", files(99999998, 99999999), true},
		{"Gap", files(1, 2, 4), false},
		{"Duplicate", files(1, 1), false},
		{"Backwards", files(2, 1), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckSequence(tt.files)
			if tt.ok {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestReadLines(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    []string
	}{
		{"TrailingNewline", "001\n500\n", []string{"001", "500"}},
		{"NoTrailingNewline", "001\n500", []string{"001", "500"}},
		{"CRLF", "001\r\nSFD00001\r\n500\r\n", []string{"001", "SFD00001", "500"}},
		{"BlankLineCounts", "001\n\n500\n", []string{"001", "", "500"}},
		{"Empty", "", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "00000001.rcd")
			assert.NoError(t, os.WriteFile(path, []byte(tt.content), 0644))

			lines, err := ReadLines(path)
			assert.NoError(t, err)
			assert.Equal(t, tt.want, lines)
		})
	}

	t.Run("Missing", func(t *testing.T) {
		_, err := ReadLines(filepath.Join(t.TempDir(), "00000001.rcd"))
		assert.Error(t, err)
	})
}

func TestLoad(t *testing.T) {
	t.Run("BranchCommodity", func(t *testing.T) {
		dir := t.TempDir()
		writeFiles(t, dir, map[string]string{
			"branch.lst":    "001,Tokyo\n002,Osaka\n",
			"commodity.lst": "SFD00001,Notebook\n",
			"00000001.rcd":  "001\nSFD00001\n100\n",
		})

		result, err := New().Load(context.Background(), dir)
		assert.NoError(t, err)
		assert.Equal(t, ledger.BranchCommodity, result.Ledger.Schema())
		assert.Equal(t, 2, len(result.Ledger.Tables()))
		assert.Equal(t, 1, len(result.Files))
		assert.Equal(t, dir, result.Dir)
	})

	t.Run("BranchOnlyIgnoresCommodity", func(t *testing.T) {
		dir := t.TempDir()
		writeFiles(t, dir, map[string]string{"branch.lst": "001,Tokyo\n"})

		result, err := New(WithSchema(ledger.BranchOnly)).Load(context.Background(), dir)
		assert.NoError(t, err)
		assert.Equal(t, 1, len(result.Ledger.Tables()))
	})

	t.Run("BranchCheckedFirst", func(t *testing.T) {
		dir := t.TempDir()

		_, err := New().Load(context.Background(), dir)
		var missing *ledger.MissingFileError
		assert.True(t, errors.As(err, &missing))
		assert.Equal(t, ledger.DimensionBranch, missing.Dimension)
	})

	t.Run("MissingCommodity", func(t *testing.T) {
		dir := t.TempDir()
		writeFiles(t, dir, map[string]string{"branch.lst": "001,Tokyo\n"})

		_, err := New().Load(context.Background(), dir)
		var missing *ledger.MissingFileError
		assert.True(t, errors.As(err, &missing))
		assert.Equal(t, ledger.DimensionCommodity, missing.Dimension)
	})

	t.Run("TablesBeforeSequence", func(t *testing.T) {
		dir := t.TempDir()
		writeFiles(t, dir, map[string]string{
			"branch.lst":   "1,Tokyo\n",
			"00000001.rcd": "",
			"00000005.rcd": "",
		})

		_, err := New(WithSchema(ledger.BranchOnly)).Load(context.Background(), dir)
		var formatErr *ledger.LookupFormatError
		assert.True(t, errors.As(err, &formatErr))
	})
}
