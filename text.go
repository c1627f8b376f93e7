package flexbox

import (
	"math"
	"strings"

	"github.com/mattn/go-runewidth"
)

var (
	_ Content       = (*Text)(nil)
	_ Fingerprinter = (*Text)(nil)
)

// Text is plain text content measured in terminal cells. Under a bounded
// width it wraps at word boundaries, breaking words that do not fit on a
// line of their own. Each line is one unit tall.
type Text struct {
	text   string
	placed *TextLayout
}

// NewText creates Text content.
func NewText(s string) *Text {
	return &Text{text: s}
}

// String returns the text.
func (t *Text) String() string {
	return t.text
}

// Fingerprint lets unchanged text keep its cached measurement.
func (t *Text) Fingerprint() any {
	return t.text
}

// Measure wraps the text to c.MaxWidth and reports the size of the
// wrapped block, clamped into c.
func (t *Text) Measure(c Constraints) Placeable {
	width := math.MaxInt
	if c.HasBoundedWidth() {
		width = int(math.Floor(float64(c.MaxWidth)))
	}

	lines := wrapWords(t.text, width)
	widest := 0
	for _, line := range lines {
		widest = max(widest, runewidth.StringWidth(line))
	}

	return &TextLayout{
		text:  t,
		Lines: lines,
		size:  c.Constrain(Size{Width: float32(widest), Height: float32(len(lines))}),
	}
}

// Placed returns the layout from the latest pass, if the text was placed.
func (t *Text) Placed() (*TextLayout, bool) {
	return t.placed, t.placed != nil
}

// TextLayout is measured, wrapped text.
type TextLayout struct {
	text *Text

	// Lines are the wrapped rows, top to bottom.
	Lines []string

	// Origin is the position the block was placed at.
	Origin Point

	size Size
}

// Size returns the size of the wrapped block.
func (l *TextLayout) Size() Size {
	return l.size
}

// Place records the block's position.
func (l *TextLayout) Place(x, y float32) {
	l.Origin = Point{X: x, Y: y}
	if l.text != nil {
		l.text.placed = l
	}
}

// wrapWords converts text into rows no wider than width cells. Explicit
// newlines always start a new row; runs of spaces collapse.
func wrapWords(text string, width int) []string {
	if width < 1 {
		width = 1
	}

	rows := make([]string, 0, 4)
	for _, para := range strings.Split(text, "\n") {
		var row strings.Builder
		col := 0

		flush := func() {
			rows = append(rows, row.String())
			row.Reset()
			col = 0
		}

		words := strings.Fields(para)
		if len(words) == 0 {
			flush()
			continue
		}

		for _, word := range words {
			w := runewidth.StringWidth(word)
			sep := 0
			if col > 0 {
				sep = 1
			}

			switch {
			case col+sep+w <= width:
				if sep > 0 {
					row.WriteByte(' ')
				}
				row.WriteString(word)
				col += sep + w
			case w <= width:
				flush()
				row.WriteString(word)
				col = w
			default:
				// Break a word wider than the row across rows.
				if col > 0 {
					flush()
				}
				for _, r := range word {
					rw := max(runewidth.RuneWidth(r), 1)
					if col+rw > width && col > 0 {
						flush()
					}
					row.WriteRune(r)
					col += rw
				}
			}
		}
		flush()
	}

	return rows
}
