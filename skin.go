package sapling

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Skin is a named registry of the resources widgets are styled from: colors,
// fonts, drawables, and per-widget styles. Drawable lookups fall through to
// the skin's atlas, so atlas regions are usable by name without registration.
type Skin struct {
	atlas *Atlas

	colors       map[string]Color
	fonts        map[string]Font
	drawables    map[string]Drawable
	windowStyles map[string]WindowStyle
	labelStyles  map[string]LabelStyle
}

// NewSkin creates an empty skin backed by the given atlas (may be nil).
func NewSkin(atlas *Atlas) *Skin {
	return &Skin{
		atlas:        atlas,
		colors:       map[string]Color{},
		fonts:        map[string]Font{},
		drawables:    map[string]Drawable{},
		windowStyles: map[string]WindowStyle{},
		labelStyles:  map[string]LabelStyle{},
	}
}

// Atlas returns the skin's atlas, or nil.
func (s *Skin) Atlas() *Atlas { return s.atlas }

// AddColor registers a named color.
func (s *Skin) AddColor(name string, c Color) { s.colors[name] = c }

// AddFont registers a named font.
func (s *Skin) AddFont(name string, f Font) { s.fonts[name] = f }

// AddDrawable registers a named drawable.
func (s *Skin) AddDrawable(name string, d Drawable) { s.drawables[name] = d }

// AddWindowStyle registers a named window style.
func (s *Skin) AddWindowStyle(name string, style WindowStyle) { s.windowStyles[name] = style }

// AddLabelStyle registers a named label style.
func (s *Skin) AddLabelStyle(name string, style LabelStyle) { s.labelStyles[name] = style }

// Color resolves a color by registered name or hex literal.
func (s *Skin) Color(name string) (Color, error) {
	if c, ok := s.colors[name]; ok {
		return c, nil
	}
	if len(name) > 0 && name[0] == '#' {
		return ParseColor(name)
	}
	return Color{}, fmt.Errorf("sapling: skin has no color %q", name)
}

// Font returns a registered font by name.
func (s *Skin) Font(name string) (Font, error) {
	if f, ok := s.fonts[name]; ok {
		return f, nil
	}
	return nil, fmt.Errorf("sapling: skin has no font %q", name)
}

// Drawable resolves a drawable by registered name, falling back to an atlas
// region of the same name.
func (s *Skin) Drawable(name string) (Drawable, error) {
	if d, ok := s.drawables[name]; ok {
		return d, nil
	}
	if s.atlas != nil {
		if d, err := s.atlas.Drawable(name); err == nil {
			return d, nil
		}
	}
	return nil, fmt.Errorf("sapling: skin has no drawable %q", name)
}

// WindowStyle returns a registered window style by name.
func (s *Skin) WindowStyle(name string) (WindowStyle, error) {
	if style, ok := s.windowStyles[name]; ok {
		return style, nil
	}
	return WindowStyle{}, fmt.Errorf("sapling: skin has no window style %q", name)
}

// LabelStyle returns a registered label style by name.
func (s *Skin) LabelStyle(name string) (LabelStyle, error) {
	if style, ok := s.labelStyles[name]; ok {
		return style, nil
	}
	return LabelStyle{}, fmt.Errorf("sapling: skin has no label style %q", name)
}

// --- YAML loading ---

type skinFile struct {
	Colors    map[string]string          `yaml:"colors"`
	Drawables map[string]skinDrawableDef `yaml:"drawables"`
	Windows   map[string]skinWindowDef   `yaml:"windows"`
	Labels    map[string]skinLabelDef    `yaml:"labels"`
}

type skinDrawableDef struct {
	Color  string `yaml:"color"`  // solid fill, hex or named
	Region string `yaml:"region"` // atlas region name
	Tint   string `yaml:"tint"`   // optional tint over the region
}

type skinWindowDef struct {
	Background      string `yaml:"background"`
	TitleFont       string `yaml:"titleFont"`
	TitleFontColor  string `yaml:"titleFontColor"`
	StageBackground string `yaml:"stageBackground"`
}

type skinLabelDef struct {
	Font       string `yaml:"font"`
	FontColor  string `yaml:"fontColor"`
	Background string `yaml:"background"`
}

// LoadSkin parses a YAML skin definition. Fonts cannot be described in YAML,
// so they are passed in and referenced by name. Definition order within the
// file does not matter: colors resolve first, then drawables, then styles.
func LoadSkin(data []byte, atlas *Atlas, fonts map[string]Font) (*Skin, error) {
	var file skinFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("sapling: parsing skin: %w", err)
	}

	s := NewSkin(atlas)
	for name, f := range fonts {
		s.AddFont(name, f)
	}

	for name, hex := range file.Colors {
		c, err := ParseColor(hex)
		if err != nil {
			return nil, fmt.Errorf("sapling: skin color %q: %w", name, err)
		}
		s.AddColor(name, c)
	}

	for name, def := range file.Drawables {
		d, err := s.buildDrawable(name, def)
		if err != nil {
			return nil, err
		}
		s.AddDrawable(name, d)
	}

	for name, def := range file.Labels {
		style, err := s.buildLabelStyle(name, def)
		if err != nil {
			return nil, err
		}
		s.AddLabelStyle(name, style)
	}

	for name, def := range file.Windows {
		style, err := s.buildWindowStyle(name, def)
		if err != nil {
			return nil, err
		}
		s.AddWindowStyle(name, style)
	}

	return s, nil
}

func (s *Skin) buildDrawable(name string, def skinDrawableDef) (Drawable, error) {
	switch {
	case def.Color != "":
		c, err := s.Color(def.Color)
		if err != nil {
			return nil, fmt.Errorf("sapling: skin drawable %q: %w", name, err)
		}
		return NewColorDrawable(c), nil
	case def.Region != "":
		if s.atlas == nil {
			return nil, fmt.Errorf("sapling: skin drawable %q references region %q but skin has no atlas", name, def.Region)
		}
		d, err := s.atlas.Drawable(def.Region)
		if err != nil {
			return nil, fmt.Errorf("sapling: skin drawable %q: %w", name, err)
		}
		if def.Tint != "" {
			tint, err := s.Color(def.Tint)
			if err != nil {
				return nil, fmt.Errorf("sapling: skin drawable %q: %w", name, err)
			}
			return NewTintDrawable(d, tint), nil
		}
		return d, nil
	default:
		return nil, fmt.Errorf("sapling: skin drawable %q needs a color or region", name)
	}
}

func (s *Skin) buildLabelStyle(name string, def skinLabelDef) (LabelStyle, error) {
	var style LabelStyle
	f, err := s.Font(def.Font)
	if err != nil {
		return style, fmt.Errorf("sapling: skin label %q: %w", name, err)
	}
	style.Font = f
	style.FontColor = ColorWhite
	if def.FontColor != "" {
		c, err := s.Color(def.FontColor)
		if err != nil {
			return style, fmt.Errorf("sapling: skin label %q: %w", name, err)
		}
		style.FontColor = c
	}
	if def.Background != "" {
		d, err := s.Drawable(def.Background)
		if err != nil {
			return style, fmt.Errorf("sapling: skin label %q: %w", name, err)
		}
		style.Background = d
	}
	return style, nil
}

func (s *Skin) buildWindowStyle(name string, def skinWindowDef) (WindowStyle, error) {
	var style WindowStyle
	f, err := s.Font(def.TitleFont)
	if err != nil {
		return style, fmt.Errorf("sapling: skin window %q: %w", name, err)
	}
	style.TitleFont = f
	style.TitleFontColor = ColorWhite
	if def.TitleFontColor != "" {
		c, err := s.Color(def.TitleFontColor)
		if err != nil {
			return style, fmt.Errorf("sapling: skin window %q: %w", name, err)
		}
		style.TitleFontColor = c
	}
	if def.Background != "" {
		d, err := s.Drawable(def.Background)
		if err != nil {
			return style, fmt.Errorf("sapling: skin window %q: %w", name, err)
		}
		style.Background = d
	}
	if def.StageBackground != "" {
		d, err := s.Drawable(def.StageBackground)
		if err != nil {
			return style, fmt.Errorf("sapling: skin window %q: %w", name, err)
		}
		style.StageBackground = d
	}
	return style, nil
}
