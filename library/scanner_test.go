package library

import (
	"os"
	"path/filepath"
	"testing"
)

// writeFile creates a file with placeholder content, creating parent
// directories as necessary.
func writeFile(t *testing.T, path string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("mkdir failed: %v", err)
	}
	if err := os.WriteFile(path, []byte("x"), 0644); err != nil {
		t.Fatalf("write failed: %v", err)
	}
}

func TestScanFindsGamesRecursively(t *testing.T) {
	root := t.TempDir()

	writeFile(t, filepath.Join(root, "pong.sh"))
	writeFile(t, filepath.Join(root, "pong.png"))
	writeFile(t, filepath.Join(root, "arcade", "breakout.exe"))
	writeFile(t, filepath.Join(root, "arcade", "deep", "tetris.app"))
	writeFile(t, filepath.Join(root, "arcade", "deep", "tetris.png"))
	writeFile(t, filepath.Join(root, "docs", "readme.txt"))
	writeFile(t, filepath.Join(root, "notes.png"))

	catalog, err := NewScanner(root, nil).Scan()
	if err != nil {
		t.Fatalf("Scan failed: %v", err)
	}

	if catalog.Len() != 3 {
		t.Fatalf("expected 3 games, got %d: %+v", catalog.Len(), catalog.Games)
	}

	// filepath.Walk visits entries in lexical order per directory
	wantOrder := []string{"breakout", "tetris", "pong"}
	for i, name := range wantOrder {
		if catalog.Games[i].Name != name {
			t.Errorf("record %d: expected %s, got %s", i, name, catalog.Games[i].Name)
		}
	}
}

func TestScanThumbnailPairing(t *testing.T) {
	root := t.TempDir()

	writeFile(t, filepath.Join(root, "pong.sh"))
	writeFile(t, filepath.Join(root, "pong.png"))
	writeFile(t, filepath.Join(root, "solo.sh"))

	catalog, err := NewScanner(root, nil).Scan()
	if err != nil {
		t.Fatalf("Scan failed: %v", err)
	}

	byName := make(map[string]string)
	for _, g := range catalog.Games {
		byName[g.Name] = g.Thumbnail
	}

	if byName["pong"] != filepath.Join(root, "pong.png") {
		t.Errorf("pong: expected sibling thumbnail, got %q", byName["pong"])
	}
	if byName["solo"] != "" {
		t.Errorf("solo: expected empty thumbnail, got %q", byName["solo"])
	}
}

func TestScanThumbnailMustBeRegularFile(t *testing.T) {
	root := t.TempDir()

	writeFile(t, filepath.Join(root, "maze.sh"))
	if err := os.MkdirAll(filepath.Join(root, "maze.png"), 0755); err != nil {
		t.Fatalf("mkdir failed: %v", err)
	}

	catalog, err := NewScanner(root, nil).Scan()
	if err != nil {
		t.Fatalf("Scan failed: %v", err)
	}

	if catalog.Len() != 1 {
		t.Fatalf("expected 1 game, got %d", catalog.Len())
	}
	if catalog.Games[0].Thumbnail != "" {
		t.Errorf("directory must not count as thumbnail, got %q", catalog.Games[0].Thumbnail)
	}
}

func TestScanExtensionMatchingIsCaseInsensitive(t *testing.T) {
	root := t.TempDir()

	writeFile(t, filepath.Join(root, "legacy.EXE"))
	writeFile(t, filepath.Join(root, "setup.Sh"))

	catalog, err := NewScanner(root, nil).Scan()
	if err != nil {
		t.Fatalf("Scan failed: %v", err)
	}

	if catalog.Len() != 2 {
		t.Errorf("expected 2 games for uppercase extensions, got %d", catalog.Len())
	}
}

func TestScanCustomExtensions(t *testing.T) {
	root := t.TempDir()

	writeFile(t, filepath.Join(root, "rom.bin"))
	writeFile(t, filepath.Join(root, "game.sh"))

	catalog, err := NewScanner(root, []string{".bin"}).Scan()
	if err != nil {
		t.Fatalf("Scan failed: %v", err)
	}

	if catalog.Len() != 1 || catalog.Games[0].Name != "rom" {
		t.Errorf("expected only rom.bin with custom allow-list, got %+v", catalog.Games)
	}
}

func TestScanIgnoresNonMatchingFiles(t *testing.T) {
	root := t.TempDir()

	for _, f := range []string{"a.txt", "b.png", "c.json", "d", "e.shx"} {
		writeFile(t, filepath.Join(root, f))
	}

	catalog, err := NewScanner(root, nil).Scan()
	if err != nil {
		t.Fatalf("Scan failed: %v", err)
	}

	if catalog.Len() != 0 {
		t.Errorf("expected 0 games, got %+v", catalog.Games)
	}
}

func TestScanEmptyDirectory(t *testing.T) {
	catalog, err := NewScanner(t.TempDir(), nil).Scan()
	if err != nil {
		t.Fatalf("Scan failed: %v", err)
	}
	if catalog.Len() != 0 {
		t.Errorf("expected empty catalog, got %d records", catalog.Len())
	}
	if catalog.Games == nil {
		t.Error("expected non-nil games slice for empty scan")
	}
}

func TestScanMissingRoot(t *testing.T) {
	_, err := NewScanner(filepath.Join(t.TempDir(), "nope"), nil).Scan()
	if err == nil {
		t.Error("expected error for missing root directory")
	}
}

func TestScanRootIsFile(t *testing.T) {
	root := filepath.Join(t.TempDir(), "file.sh")
	writeFile(t, root)

	_, err := NewScanner(root, nil).Scan()
	if err == nil {
		t.Error("expected error when root is not a directory")
	}
}

func TestScanUniqueExecutablePaths(t *testing.T) {
	root := t.TempDir()

	writeFile(t, filepath.Join(root, "a", "pong.sh"))
	writeFile(t, filepath.Join(root, "b", "pong.sh"))

	catalog, err := NewScanner(root, nil).Scan()
	if err != nil {
		t.Fatalf("Scan failed: %v", err)
	}

	// Same name in different directories is two records with distinct paths
	if catalog.Len() != 2 {
		t.Fatalf("expected 2 records, got %d", catalog.Len())
	}
	if catalog.Games[0].Path == catalog.Games[1].Path {
		t.Error("records share an executable path")
	}
	if catalog.Games[0].Name != "pong" || catalog.Games[1].Name != "pong" {
		t.Error("name collisions should be preserved, not deduplicated")
	}
}
