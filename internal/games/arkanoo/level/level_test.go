package level

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/vovakirdan/arkanoo/internal/games/arkanoo/entity"
)

func TestFixedLevelCounts(t *testing.T) {
	tests := []struct {
		level int
		want  int
	}{
		{1, 200},
		{2, 100},
		{3, 100},
		{5, 100},
	}

	for _, tc := range tests {
		t.Run(Name(tc.level), func(t *testing.T) {
			if got := len(Generate(tc.level)); got != tc.want {
				t.Errorf("level %d has %d blocks, expected %d", tc.level, got, tc.want)
			}
		})
	}
}

func TestFixedLevelsArePure(t *testing.T) {
	for n := 1; n <= FixedLevels; n++ {
		a, b := Generate(n), Generate(n)
		if !reflect.DeepEqual(a, b) {
			t.Errorf("level %d differs between calls", n)
		}
		if len(a) < MinBlocks {
			t.Errorf("level %d has only %d blocks", n, len(a))
		}
		for _, blk := range a {
			if blk.Kind != entity.KindNormal {
				t.Errorf("level %d: fixed layouts use normal blocks only, got %s", n, blk.Kind)
				break
			}
			if blk.Color != blk.Row%6 {
				t.Errorf("level %d: block at row %d has color %d", n, blk.Row, blk.Color)
				break
			}
		}
	}
}

func TestProceduralLevelsDeterministic(t *testing.T) {
	for n := 10; n < 120; n++ {
		a := Generate(n)
		if len(a) < MinBlocks {
			t.Errorf("level %d has %d blocks, expected at least %d", n, len(a), MinBlocks)
		}
		if !reflect.DeepEqual(a, Generate(n)) {
			t.Errorf("level %d is not deterministic", n)
		}
	}
}

func TestProceduralLevelsVary(t *testing.T) {
	seen := map[family]bool{}
	for n := 10; n < 300; n++ {
		seen[familyFor(n, attemptFor(n))] = true
	}
	if len(seen) < int(familyCount)/2 {
		t.Errorf("only %d of %d families appeared", len(seen), familyCount)
	}
	if reflect.DeepEqual(Generate(10), Generate(11)) {
		t.Error("consecutive procedural levels should differ")
	}
}

func TestProceduralLevelsUseSpecialBlocks(t *testing.T) {
	kinds := map[entity.Kind]int{}
	for n := 10; n < 40; n++ {
		for _, b := range Generate(n) {
			kinds[b.Kind]++
		}
	}
	for _, k := range []entity.Kind{entity.KindNormal, entity.KindIce, entity.KindExplosive, entity.KindIndestructible} {
		if kinds[k] == 0 {
			t.Errorf("no %s blocks across 30 procedural levels", k)
		}
	}
}

func TestGenerateClampsLowLevels(t *testing.T) {
	if !reflect.DeepEqual(Generate(0), Generate(1)) || !reflect.DeepEqual(Generate(-3), Generate(1)) {
		t.Error("levels below 1 should fall back to level 1")
	}
}

func TestBlocksStayOnGrid(t *testing.T) {
	for _, n := range []int{1, 7, 9, 10, 25, 99} {
		for _, b := range Generate(n) {
			if b.Row < 0 || b.Row >= entity.GridRows || b.Col < 0 || b.Col >= entity.GridCols {
				t.Fatalf("level %d: block off grid at (%d, %d)", n, b.Row, b.Col)
			}
			if b.Bounds().Right() > entity.FieldWidth {
				t.Fatalf("level %d: block past the right wall", n)
			}
		}
	}
}

func TestParsePattern(t *testing.T) {
	text := `# Fortress
012345**************
678
I*E*U
`
	p, err := ParsePattern("fortress", text)
	if err != nil {
		t.Fatalf("ParsePattern() error = %v", err)
	}
	if p.Count() != 12 {
		t.Errorf("Count() = %d, expected 12", p.Count())
	}

	checks := []struct {
		row, col int
		want     Cell
	}{
		{0, 3, Cell{Filled: true, Kind: entity.KindNormal, Color: 3}},
		{1, 0, Cell{Filled: true, Kind: entity.KindIce}},
		{1, 1, Cell{Filled: true, Kind: entity.KindExplosive}},
		{1, 2, Cell{Filled: true, Kind: entity.KindIndestructible}},
		{2, 4, Cell{Filled: true, Kind: entity.KindIndestructible}},
		{2, 1, Cell{}},
		{9, 19, Cell{}},
	}
	for _, c := range checks {
		if got := p.Cells[c.row][c.col]; got != c.want {
			t.Errorf("cell (%d, %d) = %+v, expected %+v", c.row, c.col, got, c.want)
		}
	}
}

func TestParsePatternErrors(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"unknown char", "01x"},
		{"too wide", strings.Repeat("0", entity.GridCols+1)},
		{"too tall", strings.Repeat("0\n", entity.GridRows+1)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := ParsePattern("bad", tc.text); err == nil {
				t.Error("expected an error")
			}
		})
	}
}

func TestPatternFormatRoundTrip(t *testing.T) {
	orig := FromBlocks("level 12", Generate(12))
	parsed, err := ParsePattern("copy", orig.Format())
	if err != nil {
		t.Fatalf("ParsePattern(Format()) error = %v", err)
	}
	if parsed.Cells != orig.Cells {
		t.Error("formatted pattern did not parse back to the same cells")
	}
	if !strings.HasPrefix(orig.Format(), "# level 12\n") {
		t.Error("Format() should start with the name as a comment")
	}
}

func TestPatternBlocks(t *testing.T) {
	p := NewPattern("test")
	p.Cells[0][0] = Cell{Filled: true, Kind: entity.KindIce}
	p.Cells[3][7] = Cell{Filled: true, Kind: entity.KindNormal, Color: 4}

	blocks := p.Blocks(3)
	if len(blocks) != 2 {
		t.Fatalf("Blocks() returned %d blocks, expected 2", len(blocks))
	}
	if blocks[0].Health != 3 {
		t.Errorf("ice health = %d, expected 3", blocks[0].Health)
	}
	if blocks[1].Row != 3 || blocks[1].Col != 7 || blocks[1].Color != 4 {
		t.Errorf("unexpected block %+v", blocks[1])
	}
}

func TestParsePatternYAML(t *testing.T) {
	data := []byte("name: Gate\nauthor: someone\nrows:\n  - \"8888\"\n  - \"*77*\"\n")
	p, err := ParsePatternYAML(data)
	if err != nil {
		t.Fatalf("ParsePatternYAML() error = %v", err)
	}
	if p.Name != "Gate" || p.Count() != 6 {
		t.Errorf("got name %q with %d cells", p.Name, p.Count())
	}

	if _, err := ParsePatternYAML([]byte("name: Empty\n")); err == nil {
		t.Error("pattern without rows should be rejected")
	}
}

func TestLoadDirAndSave(t *testing.T) {
	dir := t.TempDir()

	p := NewPattern("alpha")
	p.Cells[0][0] = Cell{Filled: true, Kind: entity.KindExplosive}
	if err := SavePattern(filepath.Join(dir, "a.txt"), p); err != nil {
		t.Fatalf("SavePattern() error = %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "b.yaml"), []byte("rows:\n  - \"0000\"\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "notes.md"), []byte("ignored"), 0o600); err != nil {
		t.Fatal(err)
	}

	patterns, err := LoadDir(dir)
	if err != nil {
		t.Fatalf("LoadDir() error = %v", err)
	}
	if len(patterns) != 2 {
		t.Fatalf("LoadDir() returned %d patterns, expected 2", len(patterns))
	}
	if patterns[0].Cells[0][0].Kind != entity.KindExplosive {
		t.Error("saved pattern lost its explosive block")
	}
	if patterns[1].Name != "b" || patterns[1].Count() != 4 {
		t.Errorf("yaml pattern = %q with %d cells", patterns[1].Name, patterns[1].Count())
	}
}
