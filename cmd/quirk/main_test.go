package main

import (
	"os"
	"path/filepath"
	"testing"
)

// Test helper functions

func createTestFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to create test file: %v", err)
	}
	return path
}

const testXMLDoc = `<?xml version="1.0" encoding="utf-8"?>
<document>
  <rule name="Terezi" color="#008282">
    <alias value="GC"/>
    <quirk from="[eE]" to="3"/>
    <dequirk from="3" to="e"/>
  </rule>
</document>`

const testDefsDoc = `quirk "Terezi" color "#008282" {
    alias "GC"
    sub "[eE]" -> "3"
    unsub "3" -> "e"
}`

func TestLoadQuirksXML(t *testing.T) {
	path := createTestFile(t, t.TempDir(), "quirks.xml", testXMLDoc)
	quirks, err := loadQuirks(path, false)
	if err != nil {
		t.Fatalf("loadQuirks failed: %v", err)
	}
	if len(quirks) != 1 || quirks[0].Name() != "Terezi" {
		t.Fatalf("loadQuirks = %v, want one quirk named Terezi", quirks)
	}
}

// TestLoadQuirksDefs verifies .quirks files dispatch to the definition
// parser and produce the same model as the XML form.
func TestLoadQuirksDefs(t *testing.T) {
	dir := t.TempDir()
	xmlPath := createTestFile(t, dir, "quirks.xml", testXMLDoc)
	defsPath := createTestFile(t, dir, "quirks.quirks", testDefsDoc)

	fromXML, err := loadQuirks(xmlPath, false)
	if err != nil {
		t.Fatalf("loadQuirks(xml) failed: %v", err)
	}
	fromDefs, err := loadQuirks(defsPath, false)
	if err != nil {
		t.Fatalf("loadQuirks(defs) failed: %v", err)
	}

	if fromDefs[0].Name() != fromXML[0].Name() {
		t.Errorf("names differ: %q vs %q", fromDefs[0].Name(), fromXML[0].Name())
	}
	wantStyled, err := fromXML[0].Quirkify("believe")
	if err != nil {
		t.Fatal(err)
	}
	gotStyled, err := fromDefs[0].Quirkify("believe")
	if err != nil {
		t.Fatal(err)
	}
	if gotStyled != wantStyled {
		t.Errorf("transformations differ: %q vs %q", gotStyled, wantStyled)
	}
}

func TestLoadQuirksMissingFile(t *testing.T) {
	if _, err := loadQuirks(filepath.Join(t.TempDir(), "absent.xml"), false); err == nil {
		t.Error("loadQuirks should fail for a missing file")
	}
}

func TestGatherTextFromArgs(t *testing.T) {
	got, err := gatherText([]string{"h3y", "c00lkid"})
	if err != nil {
		t.Fatalf("gatherText failed: %v", err)
	}
	if got != "h3y c00lkid" {
		t.Errorf("gatherText = %q, want args joined with spaces", got)
	}
}

func TestConvertCmd(t *testing.T) {
	dir := t.TempDir()
	in := createTestFile(t, dir, "in.quirks", testDefsDoc)
	out := filepath.Join(dir, "out.xml")

	cmd := &ConvertCmd{In: in, Out: out, Compact: true}
	if err := cmd.Run(); err != nil {
		t.Fatalf("convert failed: %v", err)
	}

	quirks, err := loadQuirks(out, false)
	if err != nil {
		t.Fatalf("loading converted output failed: %v", err)
	}
	if len(quirks) != 1 || quirks[0].Name() != "Terezi" {
		t.Errorf("converted document = %v, want one quirk named Terezi", quirks)
	}
}
