package quirkml

import (
	"compress/gzip"
	"os"
	"path/filepath"
	"testing"

	"github.com/ulikunitz/xz"

	"github.com/hstranslate/quirk/core/errors"
)

const loadTestDoc = `<?xml version="1.0" encoding="utf-8"?>
<document>
  <rule name="Aradia" color="#a10000">
    <alias value="AA"/>
    <quirk from="[oO]" to="0"/>
    <dequirk from="0" to="o"/>
  </rule>
</document>`

func checkLoaded(t *testing.T, path string) {
	t.Helper()
	quirks, err := LoadList(path)
	if err != nil {
		t.Fatalf("LoadList(%s) failed: %v", path, err)
	}
	if len(quirks) != 1 || quirks[0].Name() != "Aradia" {
		t.Fatalf("LoadList(%s) = %v, want one quirk named Aradia", path, quirks)
	}
}

func TestLoadListPlain(t *testing.T) {
	path := filepath.Join(t.TempDir(), "quirks.xml")
	if err := os.WriteFile(path, []byte(loadTestDoc), 0o644); err != nil {
		t.Fatal(err)
	}
	checkLoaded(t, path)
}

func TestLoadListGzip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "quirks.xml.gz")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	gw := gzip.NewWriter(f)
	if _, err := gw.Write([]byte(loadTestDoc)); err != nil {
		t.Fatal(err)
	}
	if err := gw.Close(); err != nil {
		t.Fatal(err)
	}
	if err := f.Close(); err != nil {
		t.Fatal(err)
	}
	checkLoaded(t, path)
}

func TestLoadListXz(t *testing.T) {
	path := filepath.Join(t.TempDir(), "quirks.xml.xz")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	xw, err := xz.NewWriter(f)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := xw.Write([]byte(loadTestDoc)); err != nil {
		t.Fatal(err)
	}
	if err := xw.Close(); err != nil {
		t.Fatal(err)
	}
	if err := f.Close(); err != nil {
		t.Fatal(err)
	}
	checkLoaded(t, path)
}

func TestLoadListMissingFile(t *testing.T) {
	_, err := LoadList(filepath.Join(t.TempDir(), "absent.xml"))
	if err == nil {
		t.Fatal("LoadList should fail for a missing file")
	}
	var ioErr *errors.IOError
	if !errors.As(err, &ioErr) {
		t.Errorf("error = %v, want IOError", err)
	}
}

func TestLoadMap(t *testing.T) {
	path := filepath.Join(t.TempDir(), "quirks.xml")
	if err := os.WriteFile(path, []byte(loadTestDoc), 0o644); err != nil {
		t.Fatal(err)
	}
	m, err := LoadMap(path)
	if err != nil {
		t.Fatalf("LoadMap failed: %v", err)
	}
	if _, ok := m["Aradia"]; !ok {
		t.Error("LoadMap missing expected entry")
	}
}
