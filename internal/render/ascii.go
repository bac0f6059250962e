// Package render draws game snapshots: as text for terminals and as pixels
// for the GUI viewer.
package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"pizzacut/internal/game"
)

// Each grid cell occupies rowScale text rows and colScale text columns.
const (
	rowScale = 3
	colScale = 6
)

type kind uint8

const (
	kindBlank kind = iota
	kindOutline
	kindCut
	kindFill
	kindCursor
	kindIngredient // kindIngredient+t for type t
)

var ingredientColors = []lipgloss.Color{"203", "221", "114", "75", "177", "215", "44", "250"}

// Options toggles the optional parts of a frame.
type Options struct {
	Hello  bool
	Legend bool
	// Padding blank lines are printed before the frame.
	Padding int
}

// Renderer turns snapshots into text. The zero value is not usable; see
// NewRenderer.
type Renderer struct {
	plain bool

	title   lipgloss.Style
	label   lipgloss.Style
	value   lipgloss.Style
	outline lipgloss.Style
	cut     lipgloss.Style
	fill    lipgloss.Style
	cursor  lipgloss.Style
	legend  lipgloss.Style
	types   []lipgloss.Style
}

// NewRenderer returns a renderer. With plain set no styling is applied, which
// keeps the output byte-for-byte predictable.
func NewRenderer(plain bool) *Renderer {
	r := &Renderer{
		plain:   plain,
		title:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("215")).Border(lipgloss.RoundedBorder()).Padding(0, 2),
		label:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		value:   lipgloss.NewStyle().Bold(true),
		outline: lipgloss.NewStyle().Foreground(lipgloss.Color("180")),
		cut:     lipgloss.NewStyle().Foreground(lipgloss.Color("231")).Bold(true),
		fill:    lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		cursor:  lipgloss.NewStyle().Foreground(lipgloss.Color("51")).Bold(true),
		legend:  lipgloss.NewStyle().Faint(true),
	}
	for _, c := range ingredientColors {
		r.types = append(r.types, lipgloss.NewStyle().Foreground(c))
	}
	return r
}

func (r *Renderer) apply(s lipgloss.Style, text string) string {
	if r.plain {
		return text
	}
	return s.Render(text)
}

// Frame renders the information panel and the board, plus the optional
// banner and legend.
func (r *Renderer) Frame(env game.Env, opts Options) string {
	var b strings.Builder
	b.WriteString(strings.Repeat("\n", max(opts.Padding, 0)))
	if opts.Hello {
		b.WriteString(r.Hello())
		b.WriteString("\n\n")
	}
	b.WriteString(r.Info(env))
	b.WriteString("\n")
	b.WriteString(r.Board(env))
	if opts.Legend {
		b.WriteString("\n")
		b.WriteString(r.Legend(env.Information.UniqueIngredients))
	}
	b.WriteString("\n")
	return b.String()
}

// Hello returns the banner printed when a game or stream starts.
func (r *Renderer) Hello() string {
	const text = "pizza cutting, live"
	if r.plain {
		return "  == " + text + " =="
	}
	return r.title.Render(text)
}

// Goodbye is printed when a game or stream ends.
func (r *Renderer) Goodbye() string { return "Bon appetit !" }

// Info returns the information panel, one "label value" line per parameter
// with a blank line between groups.
func (r *Renderer) Info(env game.Env) string {
	params := env.Parameters()
	width := max(params.LabelWidth()+3, 33)
	var b strings.Builder
	for _, group := range params.Groups {
		for _, p := range group.Params {
			label := fmt.Sprintf("%-*s", width, p.Label)
			fmt.Fprintf(&b, "  %s %s\n", r.apply(r.label, label), r.apply(r.value, p.Value))
		}
		b.WriteString("\n")
	}
	return b.String()
}

// Legend explains the symbols on the board.
func (r *Renderer) Legend(unique []string) string {
	text := fmt.Sprintf("  Legend: %s - ingredients  [ ] - cursor  < > - cursor in slice mode  +-+ ` - slice boundaries",
		strings.Join(unique, " "))
	return r.apply(r.legend, text)
}

// Board draws the grid with slice cuts and the cursor. Every line is
// indented by four spaces.
func (r *Renderer) Board(env game.Env) string {
	canvas, kinds := drawBoard(env)
	var b strings.Builder
	for i, row := range canvas {
		b.WriteString("    ")
		if r.plain {
			b.WriteString(string(row))
		} else {
			r.writeStyled(&b, row, kinds[i])
		}
		b.WriteString("\n")
	}
	return b.String()
}

// writeStyled renders runs of equal kind with one style call each.
func (r *Renderer) writeStyled(b *strings.Builder, row []rune, kinds []kind) {
	start := 0
	for i := 1; i <= len(row); i++ {
		if i < len(row) && kinds[i] == kinds[start] {
			continue
		}
		b.WriteString(r.styleFor(kinds[start]).Render(string(row[start:i])))
		start = i
	}
}

func (r *Renderer) styleFor(k kind) lipgloss.Style {
	switch k {
	case kindOutline:
		return r.outline
	case kindCut:
		return r.cut
	case kindFill:
		return r.fill
	case kindCursor:
		return r.cursor
	case kindBlank:
		return lipgloss.NewStyle()
	default:
		return r.types[int(k-kindIngredient)%len(r.types)]
	}
}

func drawBoard(env game.Env) ([][]rune, [][]kind) {
	size := env.Size()
	height, width := rowScale*size.Rows+2, colScale*size.Cols+3
	canvas := make([][]rune, height)
	kinds := make([][]kind, height)
	for i := range canvas {
		canvas[i] = []rune(strings.Repeat(" ", width))
		kinds[i] = make([]kind, width)
	}
	set := func(row, col int, ch rune, k kind) {
		canvas[row][col] = ch
		kinds[row][col] = k
	}

	unique := env.Information.UniqueIngredients
	for r, row := range env.State.IngredientsMap {
		for c, t := range row {
			ch := '?'
			if t >= 0 && t < len(unique) && unique[t] != "" {
				ch = []rune(unique[t])[0]
			}
			set(rowScale*r+2, colScale*c+4, ch, kindIngredient+kind(t))
		}
	}

	for col := 1; col < width-1; col++ {
		set(0, col, '-', kindOutline)
		set(height-1, col, '-', kindOutline)
	}
	for row := 1; row < height-1; row++ {
		set(row, 0, '|', kindOutline)
		set(row, width-1, '|', kindOutline)
	}
	for _, row := range []int{0, height - 1} {
		set(row, 0, '+', kindOutline)
		set(row, width-1, '+', kindOutline)
	}

	rects := SlicesFromMap(env.State.SlicesMap)
	for _, s := range rects {
		top, bottom := rowScale*s[0]+1, rowScale*(s[2]+1)
		left, right := colScale*s[1]+2, colScale*(s[3]+1)
		for col := left + 1; col < right; col++ {
			set(top, col, '-', kindCut)
			set(bottom, col, '-', kindCut)
		}
		for row := top + 1; row < bottom; row++ {
			set(row, left, '|', kindCut)
			set(row, right, '|', kindCut)
		}
		for row := top + 1; row < bottom; row++ {
			for col := colScale*s[1] + 4; col < right; col += 3 {
				if canvas[row][col] == ' ' {
					set(row, col, '`', kindFill)
				}
			}
		}
	}
	for _, s := range rects {
		top, bottom := rowScale*s[0]+1, rowScale*(s[2]+1)
		left, right := colScale*s[1]+2, colScale*(s[3]+1)
		for _, row := range []int{top, bottom} {
			set(row, left, '+', kindCut)
			set(row, right, '+', kindCut)
		}
	}

	cur := env.Cursor()
	if size.Contains(cur) {
		open, closed := '[', ']'
		if env.State.SliceMode {
			open, closed = '<', '>'
		}
		set(rowScale*cur.R+2, colScale*cur.C+3, open, kindCursor)
		set(rowScale*cur.R+2, colScale*cur.C+5, closed, kindCursor)
	}
	return canvas, kinds
}

// SlicesFromMap recovers the slice rectangles from an ownership map, ordered
// by first appearance in row-major order.
func SlicesFromMap(owners [][]int) [][4]int {
	index := map[int]int{}
	var out [][4]int
	for r, row := range owners {
		for c, id := range row {
			if id < 0 {
				continue
			}
			i, ok := index[id]
			if !ok {
				index[id] = len(out)
				out = append(out, [4]int{r, c, r, c})
				continue
			}
			out[i][2], out[i][3] = max(out[i][2], r), max(out[i][3], c)
		}
	}
	return out
}
