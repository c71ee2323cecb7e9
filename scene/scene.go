package scene

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/graphmat/coord"
	"github.com/katalvlaran/graphmat/direction"
	"github.com/katalvlaran/graphmat/graphmat"
)

// Format names a scene encoding.
type Format string

const (
	YAML Format = "yaml"
	TOML Format = "toml"
)

// Cell is one populated coordinate.
type Cell struct {
	At    [3]int64 `yaml:"at" toml:"at"`
	Value int64    `yaml:"value" toml:"value"`
}

// Walk is a scripted path starting at From. Each entry of Steps reads the
// current cell and then moves one cell that way, so a walk visits at most
// len(Steps) cells.
type Walk struct {
	Name  string                `yaml:"name" toml:"name"`
	From  [3]int64              `yaml:"from" toml:"from"`
	Steps []direction.Direction `yaml:"steps" toml:"steps"`
}

// Scene is the decoded content of a scene file.
type Scene struct {
	Cells []Cell `yaml:"cells" toml:"cells"`
	Walks []Walk `yaml:"walks,omitempty" toml:"walks,omitempty"`
}

// FormatOf guesses the format from a file extension.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return YAML, nil
	case ".toml":
		return TOML, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, path)
}

// Load reads and decodes the scene file at path.
func Load(path string) (*Scene, error) {
	f, err := FormatOf(path)
	if err != nil {
		return nil, err
	}
	fh, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("scene: open %s: %w", path, err)
	}
	defer fh.Close()

	s, err := Decode(fh, f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Decode reads a scene in format f from r.
func Decode(r io.Reader, f Format) (*Scene, error) {
	var s Scene
	switch f {
	case YAML:
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		if err := dec.Decode(&s); err != nil && err != io.EOF {
			return nil, fmt.Errorf("scene: decode yaml: %w", err)
		}
	case TOML:
		md, err := toml.NewDecoder(r).Decode(&s)
		if err != nil {
			return nil, fmt.Errorf("scene: decode toml: %w", err)
		}
		if undec := md.Undecoded(); len(undec) > 0 {
			return nil, fmt.Errorf("scene: decode toml: unknown keys %v", undec)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, f)
	}
	for _, w := range s.Walks {
		if len(w.Steps) == 0 {
			return nil, fmt.Errorf("%w: %q", ErrNoSteps, w.Name)
		}
	}
	return &s, nil
}

// Encode writes s to w in format f.
func Encode(w io.Writer, s *Scene, f Format) error {
	switch f {
	case YAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(s); err != nil {
			return fmt.Errorf("scene: encode yaml: %w", err)
		}
		return enc.Close()
	case TOML:
		var buf bytes.Buffer
		if err := toml.NewEncoder(&buf).Encode(s); err != nil {
			return fmt.Errorf("scene: encode toml: %w", err)
		}
		_, err := w.Write(buf.Bytes())
		return err
	}
	return fmt.Errorf("%w: %q", ErrUnknownFormat, f)
}

// Apply sets every cell of s in g; later cells overwrite earlier ones.
func (s *Scene) Apply(g *graphmat.GraphMat[int64]) {
	for _, c := range s.Cells {
		g.Set(coord.FromArray(c.At), c.Value)
	}
}

// Capture builds a scene holding the values of g at the given coordinates;
// empty coordinates are skipped.
func Capture(g *graphmat.GraphMat[int64], at []coord.Coord) *Scene {
	s := &Scene{}
	for _, c := range at {
		if v, ok := g.Get(c); ok {
			s.Cells = append(s.Cells, Cell{At: c.Array(), Value: v})
		}
	}
	return s
}

// Walk returns the walk named name.
func (s *Scene) Walk(name string) (Walk, error) {
	for _, w := range s.Walks {
		if w.Name == name {
			return w, nil
		}
	}
	return Walk{}, fmt.Errorf("%w: %q", ErrWalkNotFound, name)
}

// Step is one visited cell of a walk.
type Step struct {
	At    coord.Coord
	Value int64
}

// Run follows w over g. Step i resolves the current cell and then moves by
// w.Steps[i]; the walk ends after the last step or at the first empty cell,
// whichever comes first.
func Run(g *graphmat.GraphMat[int64], w Walk) []Step {
	if len(w.Steps) == 0 {
		return nil
	}
	it := g.IterAnyDirection(coord.FromArray(w.From), w.Steps[0])
	var out []Step
	for i := range w.Steps {
		it.SetDirection(w.Steps[i])
		c, v, ok := it.Next()
		if !ok {
			break
		}
		out = append(out, Step{At: c, Value: v})
	}
	return out
}
