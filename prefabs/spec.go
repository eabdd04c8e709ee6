package prefabs

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// WorldSpec is the full tuning document for a world: grid geometry, actor
// motion constants, tile palette, and asset keying. Everything has a sane
// default so a partial yaml file works.
type WorldSpec struct {
	Name    string      `yaml:"name"`
	World   GridSpec    `yaml:"world"`
	Actor   ActorSpec   `yaml:"actor"`
	Palette PaletteSpec `yaml:"palette"`
	// ChromaThreshold is the R+G+B sum at and above which a sprite pixel is
	// keyed out as background.
	ChromaThreshold int `yaml:"chroma_threshold"`
}

type GridSpec struct {
	CellSize float64 `yaml:"cell_size"`
	Columns  int     `yaml:"columns"`
	Rows     int     `yaml:"rows"`
}

type ActorSpec struct {
	Speed        float64 `yaml:"speed"`
	Gravity      float64 `yaml:"gravity"`
	JumpStrength float64 `yaml:"jump_strength"`
	// FrameIntervalMS gates animation frames on the wall clock.
	FrameIntervalMS int `yaml:"frame_interval_ms"`
	// ThrowDurationMS is how long the throw pose lasts.
	ThrowDurationMS int     `yaml:"throw_duration_ms"`
	RenderW         float64 `yaml:"render_w"`
	RenderH         float64 `yaml:"render_h"`
}

type PaletteSpec struct {
	Sky   string `yaml:"sky"`
	Wall  string `yaml:"wall"`
	Floor string `yaml:"floor"`
}

// LoadSpec reads and unmarshals a yaml spec file by name, preferring the
// on-disk copy over the embedded one.
func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

// LoadWorldSpec loads world.yaml and fills in defaults for anything the file
// leaves out.
func LoadWorldSpec() (*WorldSpec, error) {
	spec, err := LoadSpec[WorldSpec]("world.yaml")
	if err != nil {
		return nil, err
	}
	spec.ApplyDefaults()
	return &spec, nil
}

// ApplyDefaults replaces zero values with the stock tuning.
func (s *WorldSpec) ApplyDefaults() {
	if s.World.CellSize <= 0 {
		s.World.CellSize = 80
	}
	if s.World.Columns <= 0 {
		s.World.Columns = 60
	}
	if s.World.Rows <= 0 {
		s.World.Rows = 12
	}
	if s.Actor.Speed <= 0 {
		s.Actor.Speed = 5
	}
	if s.Actor.Gravity <= 0 {
		s.Actor.Gravity = 1.2
	}
	if s.Actor.JumpStrength <= 0 {
		s.Actor.JumpStrength = 20
	}
	if s.Actor.FrameIntervalMS <= 0 {
		s.Actor.FrameIntervalMS = 250
	}
	if s.Actor.ThrowDurationMS <= 0 {
		s.Actor.ThrowDurationMS = 500
	}
	if s.Actor.RenderW <= 0 {
		s.Actor.RenderW = s.World.CellSize
	}
	if s.Actor.RenderH <= 0 {
		s.Actor.RenderH = s.World.CellSize
	}
	if s.Palette.Sky == "" {
		s.Palette.Sky = "#7ec8e3"
	}
	if s.Palette.Wall == "" {
		s.Palette.Wall = "#5a4632"
	}
	if s.Palette.Floor == "" {
		s.Palette.Floor = "#3f7d2e"
	}
	if s.ChromaThreshold <= 0 {
		s.ChromaThreshold = 730
	}
}
