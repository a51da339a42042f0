package level

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/arkanoo/internal/games/arkanoo/entity"
)

// Cell is one grid position of a pattern.
type Cell struct {
	Filled bool
	Kind   entity.Kind
	Color  int // Palette index, used by normal blocks
}

// ParseCell decodes a pattern character.
//
//	'*' or '.' = empty
//	'0'-'5'    = normal block with that palette color
//	'6' or 'I' = ice
//	'7' or 'E' = explosive
//	'8' or 'U' = indestructible
func ParseCell(ch rune) (Cell, error) {
	switch {
	case ch == '*' || ch == '.':
		return Cell{}, nil
	case ch >= '0' && ch <= '5':
		return Cell{Filled: true, Kind: entity.KindNormal, Color: int(ch - '0')}, nil
	case ch == '6' || ch == 'I':
		return Cell{Filled: true, Kind: entity.KindIce}, nil
	case ch == '7' || ch == 'E':
		return Cell{Filled: true, Kind: entity.KindExplosive}, nil
	case ch == '8' || ch == 'U':
		return Cell{Filled: true, Kind: entity.KindIndestructible}, nil
	default:
		return Cell{}, fmt.Errorf("unknown cell %q", ch)
	}
}

// Rune encodes a cell using the digit alphabet.
func (c Cell) Rune() rune {
	if !c.Filled {
		return '*'
	}
	switch c.Kind {
	case entity.KindIce:
		return '6'
	case entity.KindExplosive:
		return '7'
	case entity.KindIndestructible:
		return '8'
	default:
		return rune('0' + c.Color%paletteColors)
	}
}

// Pattern is a full-grid layout, usually authored in the level editor.
type Pattern struct {
	Name  string
	Cells [entity.GridRows][entity.GridCols]Cell
}

// NewPattern creates an empty pattern.
func NewPattern(name string) *Pattern {
	return &Pattern{Name: name}
}

// FromBlocks captures active blocks into a pattern.
func FromBlocks(name string, blocks []entity.Block) *Pattern {
	p := NewPattern(name)
	for _, b := range blocks {
		if !b.Active || b.Row < 0 || b.Row >= entity.GridRows || b.Col < 0 || b.Col >= entity.GridCols {
			continue
		}
		c := Cell{Filled: true, Kind: b.Kind}
		if b.Kind == entity.KindNormal {
			c.Color = b.Color
		}
		p.Cells[b.Row][b.Col] = c
	}
	return p
}

// Count returns the number of filled cells.
func (p *Pattern) Count() int {
	n := 0
	for row := range p.Cells {
		for col := range p.Cells[row] {
			if p.Cells[row][col].Filled {
				n++
			}
		}
	}
	return n
}

// Blocks converts the pattern into fresh blocks. Ice blocks get iceHealth hit points.
func (p *Pattern) Blocks(iceHealth int) []entity.Block {
	blocks := make([]entity.Block, 0, p.Count())
	for row := range p.Cells {
		for col, c := range p.Cells[row] {
			if !c.Filled {
				continue
			}
			color := c.Color
			if c.Kind != entity.KindNormal {
				color = colorFor(row)
			}
			blocks = append(blocks, entity.NewBlock(row, col, color, c.Kind, iceHealth))
		}
	}
	return blocks
}

// Format renders the pattern in the text file format.
func (p *Pattern) Format() string {
	var sb strings.Builder
	if p.Name != "" {
		sb.WriteString("# " + p.Name + "\n")
	}
	for row := range p.Cells {
		for _, c := range p.Cells[row] {
			sb.WriteRune(c.Rune())
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// ParsePattern reads the text format. Lines starting with '#' are comments
// and blank lines are skipped. Short rows and missing rows are empty.
func ParsePattern(name, text string) (*Pattern, error) {
	p := NewPattern(name)
	row := 0
	for i, line := range strings.Split(text, "\n") {
		line = strings.TrimRight(line, "\r \t")
		if strings.TrimSpace(line) == "" || strings.HasPrefix(strings.TrimSpace(line), "#") {
			continue
		}
		if err := p.setRow(row, line); err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		row++
	}
	return p, nil
}

func (p *Pattern) setRow(row int, line string) error {
	if row >= entity.GridRows {
		return fmt.Errorf("more than %d rows", entity.GridRows)
	}
	runes := []rune(line)
	if len(runes) > entity.GridCols {
		return fmt.Errorf("row has %d cells, max %d", len(runes), entity.GridCols)
	}
	for col, ch := range runes {
		c, err := ParseCell(ch)
		if err != nil {
			return fmt.Errorf("col %d: %w", col+1, err)
		}
		p.Cells[row][col] = c
	}
	return nil
}

// yamlPattern is the YAML layout file structure.
type yamlPattern struct {
	Name   string   `yaml:"name"`
	Author string   `yaml:"author,omitempty"`
	Rows   []string `yaml:"rows"`
}

// ParsePatternYAML reads a YAML layout with a name and a list of rows.
func ParsePatternYAML(data []byte) (*Pattern, error) {
	var yp yamlPattern
	if err := yaml.Unmarshal(data, &yp); err != nil {
		return nil, fmt.Errorf("yaml unmarshal: %w", err)
	}
	if len(yp.Rows) == 0 {
		return nil, errors.New("pattern has no rows")
	}

	p := NewPattern(yp.Name)
	for i, line := range yp.Rows {
		if err := p.setRow(i, line); err != nil {
			return nil, fmt.Errorf("row %d: %w", i+1, err)
		}
	}
	return p, nil
}

// LoadPattern reads a pattern file, choosing the format by extension.
func LoadPattern(path string) (*Pattern, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read pattern %s: %w", path, err)
	}

	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	var p *Pattern
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		p, err = ParsePatternYAML(data)
		if err == nil && p.Name == "" {
			p.Name = name
		}
	default:
		p, err = ParsePattern(name, string(data))
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse pattern %s: %w", path, err)
	}
	return p, nil
}

// SavePattern writes a pattern in the text format.
func SavePattern(path string, p *Pattern) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return fmt.Errorf("failed to create pattern directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(p.Format()), 0o600); err != nil {
		return fmt.Errorf("failed to write pattern %s: %w", path, err)
	}
	return nil
}

// patternExtensions are the file types LoadDir picks up.
var patternExtensions = map[string]bool{
	".txt":     true,
	".pattern": true,
	".yaml":    true,
	".yml":     true,
}

// LoadDir loads every pattern file in dir, sorted by file name.
func LoadDir(dir string) ([]*Pattern, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read pattern dir %s: %w", dir, err)
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if !e.IsDir() && patternExtensions[strings.ToLower(filepath.Ext(e.Name()))] {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)

	patterns := make([]*Pattern, 0, len(names))
	for _, n := range names {
		p, err := LoadPattern(filepath.Join(dir, n))
		if err != nil {
			return nil, err
		}
		patterns = append(patterns, p)
	}
	return patterns, nil
}
