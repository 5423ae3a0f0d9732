package library

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/OpenTraceLab/nfcant/pkg/kicad/footprint"
)

func testFootprint(name string) *footprint.Footprint {
	return &footprint.Footprint{
		Name:  name,
		Layer: footprint.LayerFrontCopper,
		Tedit: 0x5DCE6A1B,
		Lines: []footprint.Line{{
			End:   footprint.Position{X: 10},
			Layer: footprint.LayerFrontSilk,
			Width: 0.15,
		}},
	}
}

func TestNewDefault(t *testing.T) {
	if got := New("").Dir; got != DefaultDir {
		t.Errorf("New(\"\").Dir = %q, want %q", got, DefaultDir)
	}
	if got := New("lib.pretty").Path("ant"); got != filepath.Join("lib.pretty", "ant.kicad_mod") {
		t.Errorf("Path() = %q", got)
	}
}

func TestSave(t *testing.T) {
	tests := []struct {
		name    string
		dialect footprint.Dialect
		root    string
	}{
		{"legacy", footprint.Legacy, "(module ant_a "},
		{"v6", footprint.V6, `(footprint "ant_a" `},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := filepath.Join(t.TempDir(), "nested", "nfc_ant.pretty")
			lib := New(dir)

			path, err := lib.Save("ant_a", "# header\n", testFootprint("ant_a"), tt.dialect)
			if err != nil {
				t.Fatalf("Save() unexpected error: %v", err)
			}
			if path != filepath.Join(dir, "ant_a.kicad_mod") {
				t.Errorf("Save() path = %q", path)
			}

			data, err := os.ReadFile(path)
			if err != nil {
				t.Fatalf("ReadFile() unexpected error: %v", err)
			}
			text := string(data)
			if !strings.HasPrefix(text, "# header\n"+tt.root) {
				t.Errorf("file does not start with header and footprint:\n%s", text)
			}

			fp, dialect, err := footprint.ParseFile(path)
			if err != nil {
				t.Fatalf("ParseFile() unexpected error: %v", err)
			}
			if dialect != tt.dialect || fp.Name != "ant_a" || len(fp.Lines) != 1 {
				t.Errorf("read back %s %q with %d lines", dialect, fp.Name, len(fp.Lines))
			}
		})
	}
}

func TestSaveOverwrites(t *testing.T) {
	lib := New(t.TempDir())

	if _, err := lib.Save("ant", "# first\n", testFootprint("ant"), footprint.Legacy); err != nil {
		t.Fatalf("Save() unexpected error: %v", err)
	}
	path, err := lib.Save("ant", "# second\n", testFootprint("ant"), footprint.Legacy)
	if err != nil {
		t.Fatalf("Save() unexpected error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() unexpected error: %v", err)
	}
	if strings.Contains(string(data), "# first") {
		t.Error("old content survived overwrite")
	}
}

func TestSaveErrors(t *testing.T) {
	base := t.TempDir()
	blocker := filepath.Join(base, "file")
	if err := os.WriteFile(blocker, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	lib := New(filepath.Join(blocker, "lib.pretty"))
	if _, err := lib.Save("ant", "", testFootprint("ant"), footprint.Legacy); err == nil {
		t.Error("Save() below a regular file should fail")
	}

	lib = New(base)
	if _, err := lib.Save("ant", "", nil, footprint.Legacy); err == nil {
		t.Error("Save() of nil footprint should fail")
	}
}

func TestFootprints(t *testing.T) {
	lib := New(t.TempDir())
	for _, name := range []string{"b_ant", "a_ant"} {
		if _, err := lib.Save(name, "", testFootprint(name), footprint.Legacy); err != nil {
			t.Fatalf("Save(%s) unexpected error: %v", name, err)
		}
	}

	names, err := lib.Footprints()
	if err != nil {
		t.Fatalf("Footprints() unexpected error: %v", err)
	}
	if strings.Join(names, ",") != "a_ant,b_ant" {
		t.Errorf("Footprints() = %v, want [a_ant b_ant]", names)
	}
}
