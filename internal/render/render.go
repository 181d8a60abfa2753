// Package render draws cubes as colored sticker blocks for the terminal.
package render

import (
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/SeamusWaldron/cubeturn"
)

// stickerColors are the background colors used for each sticker color.
var stickerColors = map[cubeturn.Color]lipgloss.Color{
	cubeturn.Green:  lipgloss.Color("#009B48"),
	cubeturn.Red:    lipgloss.Color("#B71234"),
	cubeturn.White:  lipgloss.Color("#FFFFFF"),
	cubeturn.Blue:   lipgloss.Color("#0046AD"),
	cubeturn.Orange: lipgloss.Color("#FF5800"),
	cubeturn.Yellow: lipgloss.Color("#FFD500"),
}

// Renderer draws cubes using lipgloss styles bound to one output.
type Renderer struct {
	stickers map[cubeturn.Color]lipgloss.Style
	label    lipgloss.Style
}

// New returns a Renderer whose color profile is detected from w. Output
// that is not a terminal gets plain letters with no escape codes.
func New(w io.Writer) *Renderer {
	r := lipgloss.NewRenderer(w)

	stickers := make(map[cubeturn.Color]lipgloss.Style, len(stickerColors))
	for c, bg := range stickerColors {
		stickers[c] = r.NewStyle().
			Background(bg).
			Foreground(lipgloss.Color("#000000")).
			Padding(0, 1)
	}

	return &Renderer{
		stickers: stickers,
		label: r.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39")),
	}
}

// Sticker renders a single cell.
func (r *Renderer) Sticker(c cubeturn.Color) string {
	style, ok := r.stickers[c]
	if !ok {
		return " ? "
	}
	return style.Render(c.Letter())
}

// Face renders one face as three rows of stickers.
func (r *Renderer) Face(c cubeturn.Cube, face cubeturn.Face) (string, error) {
	g, err := c.Grid(face)
	if err != nil {
		return "", err
	}

	rows := make([]string, cubeturn.GridSize)
	for row := 0; row < cubeturn.GridSize; row++ {
		var b strings.Builder
		for col := 0; col < cubeturn.GridSize; col++ {
			b.WriteString(r.Sticker(g[row][col]))
		}
		rows[row] = b.String()
	}
	return strings.Join(rows, "\n"), nil
}

// LabeledFace renders a face under a bold heading with its name.
func (r *Renderer) LabeledFace(c cubeturn.Cube, face cubeturn.Face) (string, error) {
	block, err := r.Face(c, face)
	if err != nil {
		return "", err
	}
	return lipgloss.JoinVertical(lipgloss.Left, r.label.Render(face.String()), block), nil
}

// Net renders the whole cube unfolded:
//
//	      U
//	L  F  R  B
//	      D
func (r *Renderer) Net(c cubeturn.Cube) string {
	blocks := make(map[cubeturn.Face]string, 6)
	for _, f := range cubeturn.AllFaces() {
		blocks[f], _ = r.Face(c, f)
	}

	width := lipgloss.Width(blocks[cubeturn.Front])
	blank := strings.TrimSuffix(strings.Repeat(strings.Repeat(" ", width)+"\n", cubeturn.GridSize), "\n")

	top := lipgloss.JoinHorizontal(lipgloss.Top, blank, blocks[cubeturn.Up])
	middle := lipgloss.JoinHorizontal(lipgloss.Top,
		blocks[cubeturn.Left], blocks[cubeturn.Front], blocks[cubeturn.Right], blocks[cubeturn.Back])
	bottom := lipgloss.JoinHorizontal(lipgloss.Top, blank, blocks[cubeturn.Down])

	return lipgloss.JoinVertical(lipgloss.Left, top, middle, bottom)
}
