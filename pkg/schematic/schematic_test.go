package schematic

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"testing"
)

// buildFixtureSchematic writes a minimal schematic JSON with n labelled
// sub-chips plus one unrelated sub-chip and one untouched top-level key,
// to verify round-tripping of content this package doesn't own.
func buildFixtureSchematic(t *testing.T, path string, labels []string) {
	t.Helper()
	subChips := make([]map[string]any, 0, len(labels)+1)
	for _, label := range labels {
		subChips = append(subChips, map[string]any{
			"Label":        label,
			"InternalData": []int{0, 0, 0},
		})
	}
	subChips = append(subChips, map[string]any{
		"Label":        "unrelated_chip",
		"InternalData": []int{9, 9, 9},
	})
	doc := map[string]any{
		"Version":  1,
		"SubChips": subChips,
	}
	data, err := json.Marshal(doc)
	if err != nil {
		t.Fatalf("marshal fixture: %v", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
}

func writeRomFile(t *testing.T, dir, name string) {
	t.Helper()
	var buf []byte
	for i := 0; i < 256; i++ {
		buf = append(buf, []byte(fmt.Sprintf("%04X\n", i))...)
	}
	if err := os.WriteFile(filepath.Join(dir, name), buf, 0o644); err != nil {
		t.Fatalf("write rom file %s: %v", name, err)
	}
}

// TestInjectAllLabelsPresent verifies the full happy path from §8: 24
// labelled sub-chips and 24 matching .rom files all inject cleanly, and
// the unrelated sub-chip is left untouched.
func TestInjectAllLabelsPresent(t *testing.T) {
	dir := t.TempDir()
	labels := expectedLabels()

	schematicPath := filepath.Join(dir, "cpu.schem.json")
	buildFixtureSchematic(t, schematicPath, labels)

	romDir := filepath.Join(dir, "rom")
	if err := os.Mkdir(romDir, 0o755); err != nil {
		t.Fatal(err)
	}
	for _, label := range labels {
		var p, b int
		fmt.Sscanf(label, "w%db%d", &p, &b)
		writeRomFile(t, romDir, fmt.Sprintf("w%db%d.rom", p, b))
	}

	report, err := Inject(schematicPath, romDir)
	if err != nil {
		t.Fatalf("Inject: %v", err)
	}
	if len(report.Missing) != 0 {
		t.Errorf("expected no missing labels, got %v", report.Missing)
	}
	if len(report.Injected) != 24 {
		t.Errorf("expected 24 injected labels, got %d", len(report.Injected))
	}
	if !report.Written {
		t.Error("expected schematic to be written")
	}

	out, err := os.ReadFile(schematicPath)
	if err != nil {
		t.Fatalf("reading back schematic: %v", err)
	}
	var doc map[string]json.RawMessage
	if err := json.Unmarshal(out, &doc); err != nil {
		t.Fatalf("parsing written schematic: %v", err)
	}
	var subChips []map[string]json.RawMessage
	if err := json.Unmarshal(doc["SubChips"], &subChips); err != nil {
		t.Fatalf("parsing written SubChips: %v", err)
	}

	for _, chip := range subChips {
		var label string
		json.Unmarshal(chip["Label"], &label)
		var data []int
		json.Unmarshal(chip["InternalData"], &data)
		if label == "unrelated_chip" {
			if len(data) != 3 || data[0] != 9 {
				t.Errorf("unrelated_chip InternalData was modified: %v", data)
			}
			continue
		}
		if len(data) != 256 {
			t.Errorf("%s: InternalData has %d entries, want 256", label, len(data))
		}
		if data[1] != 1 {
			t.Errorf("%s: InternalData[1] = %d, want 1", label, data[1])
		}
	}
}

// TestInjectReportsMissingLabels verifies a schematic missing a sub-chip
// still injects the labels it can, and reports the rest as missing rather
// than failing the whole run.
func TestInjectReportsMissingLabels(t *testing.T) {
	dir := t.TempDir()
	labels := expectedLabels()[:1] // only w0b0

	schematicPath := filepath.Join(dir, "cpu.schem.json")
	buildFixtureSchematic(t, schematicPath, labels)

	romDir := filepath.Join(dir, "rom")
	if err := os.Mkdir(romDir, 0o755); err != nil {
		t.Fatal(err)
	}
	writeRomFile(t, romDir, "w0b0.rom")

	report, err := Inject(schematicPath, romDir)
	if err != nil {
		t.Fatalf("Inject: %v", err)
	}
	if len(report.Injected) != 1 {
		t.Errorf("expected 1 injected label, got %d", len(report.Injected))
	}
	if len(report.Missing) != 23 {
		t.Errorf("expected 23 missing labels, got %d", len(report.Missing))
	}
}

// TestInjectUnmatchedRomFileWarnsNotFails verifies a ROM file with no
// corresponding labelled sub-chip produces a warning, not an error.
func TestInjectUnmatchedRomFileWarnsNotFails(t *testing.T) {
	dir := t.TempDir()

	schematicPath := filepath.Join(dir, "cpu.schem.json")
	buildFixtureSchematic(t, schematicPath, nil)

	romDir := filepath.Join(dir, "rom")
	if err := os.Mkdir(romDir, 0o755); err != nil {
		t.Fatal(err)
	}
	writeRomFile(t, romDir, "w0b0.rom")

	report, err := Inject(schematicPath, romDir)
	if err != nil {
		t.Fatalf("Inject: %v", err)
	}
	if len(report.Warnings) != 1 {
		t.Errorf("expected 1 warning, got %d: %v", len(report.Warnings), report.Warnings)
	}
	if report.Written {
		t.Error("expected no write when nothing was injected")
	}
}

// TestInjectMissingSchematicIsError verifies a missing schematic file
// aborts with an error rather than a partial/empty report.
func TestInjectMissingSchematicIsError(t *testing.T) {
	dir := t.TempDir()
	_, err := Inject(filepath.Join(dir, "nope.json"), dir)
	if err == nil {
		t.Error("expected error for missing schematic file")
	}
}
