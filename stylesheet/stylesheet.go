// Package stylesheet loads named layout styles from TOML.
//
// Each table under [styles] defines one style. Values use the text forms
// of the layout vocabulary: dimensions are "50%", "12", "auto" or
// "undefined"; edge groups take CSS shorthand of one to four dimensions.
// A style may extend another and may carry utility classes, applied
// before its own fields.
//
//	[styles.card]
//	direction = "column"
//	width = "50%"
//	padding = "2 4"
//	grow = 1
//
//	[styles.wide-card]
//	extends = "card"
//	classes = "w-full mx-auto"
package stylesheet

import (
	"errors"
	"fmt"
	"os"
	"slices"

	"github.com/BurntSushi/toml"

	"github.com/grindlemire/go-flexbox/internal/classes"
	"github.com/grindlemire/go-flexbox/internal/layout"
)

// ErrUnknownStyle is returned when a style name is not defined.
var ErrUnknownStyle = errors.New("stylesheet: unknown style")

// ErrCycle is returned when styles extend each other in a loop.
var ErrCycle = errors.New("stylesheet: extends cycle")

// Sheet is a set of resolved named styles.
type Sheet struct {
	styles map[string]layout.Style
}

type file struct {
	Styles map[string]definition `toml:"styles"`
}

// definition mirrors one [styles.<name>] table. Unset fields inherit.
type definition struct {
	Extends string `toml:"extends"`
	Classes string `toml:"classes"`

	Width     *string `toml:"width"`
	Height    *string `toml:"height"`
	MinWidth  *string `toml:"min-width"`
	MinHeight *string `toml:"min-height"`
	MaxWidth  *string `toml:"max-width"`
	MaxHeight *string `toml:"max-height"`
	Basis     *string `toml:"basis"`

	Direction        *string `toml:"direction"`
	Wrap             *string `toml:"wrap"`
	Justify          *string `toml:"justify"`
	AlignItems       *string `toml:"align-items"`
	AlignContent     *string `toml:"align-content"`
	AlignSelf        *string `toml:"align-self"`
	WritingDirection *string `toml:"writing-direction"`
	Overflow         *string `toml:"overflow"`
	Position         *string `toml:"position"`
	Display          *string `toml:"display"`

	Grow        *float32 `toml:"grow"`
	Shrink      *float32 `toml:"shrink"`
	AspectRatio *float32 `toml:"aspect-ratio"`

	Inset   *string `toml:"inset"`
	Margin  *string `toml:"margin"`
	Padding *string `toml:"padding"`
	Border  *string `toml:"border"`
}

// Parse decodes a TOML stylesheet and resolves every style in it.
func Parse(data []byte) (*Sheet, error) {
	var f file
	if err := toml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("decode stylesheet: %w", err)
	}

	sheet := &Sheet{styles: make(map[string]layout.Style, len(f.Styles))}
	for name := range f.Styles {
		if _, err := sheet.resolve(f.Styles, name, nil); err != nil {
			return nil, err
		}
	}
	return sheet, nil
}

// Load reads and parses the stylesheet at path.
func Load(path string) (*Sheet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

// Style returns the named style.
func (s *Sheet) Style(name string) (layout.Style, error) {
	st, ok := s.styles[name]
	if !ok {
		return layout.Style{}, fmt.Errorf("%w: %q", ErrUnknownStyle, name)
	}
	return st, nil
}

// MustStyle is like Style but panics on unknown names.
func (s *Sheet) MustStyle(name string) layout.Style {
	st, err := s.Style(name)
	if err != nil {
		panic(err)
	}
	return st
}

// Names returns the defined style names in sorted order.
func (s *Sheet) Names() []string {
	names := make([]string, 0, len(s.styles))
	for name := range s.styles {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

func (s *Sheet) resolve(defs map[string]definition, name string, chain []string) (layout.Style, error) {
	if st, ok := s.styles[name]; ok {
		return st, nil
	}
	if slices.Contains(chain, name) {
		return layout.Style{}, fmt.Errorf("%w: %v -> %s", ErrCycle, chain, name)
	}
	def, ok := defs[name]
	if !ok {
		return layout.Style{}, fmt.Errorf("%w: %q", ErrUnknownStyle, name)
	}

	base := layout.DefaultStyle()
	if def.Extends != "" {
		var err error
		base, err = s.resolve(defs, def.Extends, append(chain, name))
		if err != nil {
			return layout.Style{}, fmt.Errorf("style %q: %w", name, err)
		}
	}

	if def.Classes != "" {
		if err := classes.Apply(&base, def.Classes); err != nil {
			return layout.Style{}, fmt.Errorf("style %q: %w", name, err)
		}
	}
	if err := def.apply(&base); err != nil {
		return layout.Style{}, fmt.Errorf("style %q: %w", name, err)
	}

	s.styles[name] = base
	return base, nil
}

func (d definition) apply(s *layout.Style) error {
	dims := []struct {
		src *string
		dst *layout.Dimension
	}{
		{d.Width, &s.Width},
		{d.Height, &s.Height},
		{d.MinWidth, &s.MinWidth},
		{d.MinHeight, &s.MinHeight},
		{d.MaxWidth, &s.MaxWidth},
		{d.MaxHeight, &s.MaxHeight},
		{d.Basis, &s.FlexBasis},
	}
	for _, f := range dims {
		if err := set(f.src, f.dst, layout.ParseDimension); err != nil {
			return err
		}
	}

	edges := []struct {
		src *string
		dst *layout.Edges
	}{
		{d.Inset, &s.Position},
		{d.Margin, &s.Margin},
		{d.Padding, &s.Padding},
		{d.Border, &s.Border},
	}
	for _, f := range edges {
		if err := set(f.src, f.dst, layout.ParseEdges); err != nil {
			return err
		}
	}

	errs := []error{
		set(d.Direction, &s.Direction, layout.ParseDirection),
		set(d.Wrap, &s.Wrap, layout.ParseWrap),
		set(d.Justify, &s.JustifyContent, layout.ParseJustify),
		set(d.AlignItems, &s.AlignItems, layout.ParseAlign),
		set(d.AlignContent, &s.AlignContent, layout.ParseAlign),
		set(d.AlignSelf, &s.AlignSelf, layout.ParseAlign),
		set(d.WritingDirection, &s.WritingDirection, layout.ParseWritingDirection),
		set(d.Overflow, &s.Overflow, layout.ParseOverflow),
		set(d.Position, &s.PositionType, layout.ParsePositionType),
		set(d.Display, &s.Display, layout.ParseDisplay),
	}
	if err := errors.Join(errs...); err != nil {
		return err
	}

	if d.Grow != nil {
		s.FlexGrow = *d.Grow
	}
	if d.Shrink != nil {
		s.FlexShrink = *d.Shrink
	}
	if d.AspectRatio != nil {
		s.AspectRatio = *d.AspectRatio
	}
	return nil
}

// set parses src into dst when src is present.
func set[T any](src *string, dst *T, parse func(string) (T, error)) error {
	if src == nil {
		return nil
	}
	v, err := parse(*src)
	if err != nil {
		return err
	}
	*dst = v
	return nil
}
