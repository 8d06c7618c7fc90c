package mapfile

import (
	"bytes"
	"embed"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/katalvlaran/tilepath/pathsearch"
	"github.com/katalvlaran/tilepath/tilegrid"
)

//go:embed maps/*.toml
var bundled embed.FS

// Load reads and validates a scenario file.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("mapfile: %w", err)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Parse decodes and validates a scenario document. Unknown keys are rejected.
func Parse(data []byte) (*Scenario, error) {
	var doc document
	dec := toml.NewDecoder(bytes.NewReader(data)).DisallowUnknownFields()
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("mapfile: decode: %w", err)
	}
	return doc.scenario()
}

func (d *document) scenario() (*Scenario, error) {
	var (
		g   *tilegrid.Grid
		err error
	)
	switch {
	case d.Layout != "" && len(d.Tiles) == 0:
		g, err = ParseLayout(d.Layout)
	case d.Layout == "" && len(d.Tiles) > 0:
		g, err = tilegrid.New(d.Tiles)
	default:
		return nil, ErrMissingGrid
	}
	if err != nil {
		return nil, err
	}

	s := &Scenario{Name: d.Name, Grid: g, Iterations: DefaultIterations}
	if s.Start, err = endpoint(g, "start", d.Start); err != nil {
		return nil, err
	}
	if s.End, err = endpoint(g, "end", d.End); err != nil {
		return nil, err
	}
	if d.Algorithm != "" {
		if s.Kind, err = pathsearch.ParseKind(d.Algorithm); err != nil {
			return nil, err
		}
	}
	if s.Blocked, err = pathsearch.ParseBlockedPolicy(d.Blocked); err != nil {
		return nil, err
	}
	if d.Iterations != nil {
		if *d.Iterations < 0 {
			return nil, fmt.Errorf("%w: %d", ErrBadIterations, *d.Iterations)
		}
		s.Iterations = *d.Iterations
	}
	return s, nil
}

func endpoint(g *tilegrid.Grid, name string, rc []int) (tilegrid.Cell, error) {
	if len(rc) != 2 {
		return tilegrid.Invalid, fmt.Errorf("%w: %s = %v", ErrBadEndpoint, name, rc)
	}
	c := tilegrid.Cell{Row: rc[0], Col: rc[1]}
	if !g.InBounds(c) {
		return tilegrid.Invalid, fmt.Errorf("%w: %s = %v outside %dx%d grid", ErrBadEndpoint, name, c, g.Rows(), g.Cols())
	}
	return c, nil
}

// Encode writes s as a TOML document using the layout form.
func Encode(s *Scenario) ([]byte, error) {
	it := s.Iterations
	doc := document{
		Name:       s.Name,
		Algorithm:  s.Kind.String(),
		Iterations: &it,
		Blocked:    s.Blocked.String(),
		Start:      []int{s.Start.Row, s.Start.Col},
		End:        []int{s.End.Row, s.End.Col},
		Layout:     FormatLayout(s.Grid),
	}
	out, err := toml.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("mapfile: encode: %w", err)
	}
	return out, nil
}

// Bundled returns a scenario shipped with the package, by name.
func Bundled(name string) (*Scenario, error) {
	data, err := bundled.ReadFile("maps/" + name + ".toml")
	if err != nil {
		return nil, fmt.Errorf("mapfile: no bundled map %q", name)
	}
	return Parse(data)
}

// Default returns the bundled lab map. It panics if the bundled file is
// broken, which only a bad build can cause.
func Default() *Scenario {
	s, err := Bundled("lab")
	if err != nil {
		panic(err)
	}
	return s
}
