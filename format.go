package cubeturn

import "strings"

// FormatFace renders one face as a 3x3 text block. Rows are separated by
// newlines and cells within a row by the configured delimiter. There is no
// trailing newline.
func FormatFace(c Cube, face Face, opts ...FormatOption) (string, error) {
	g, err := c.Grid(face)
	if err != nil {
		return "", err
	}

	cfg := defaultFormatConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	rows := make([]string, GridSize)
	cells := make([]string, GridSize)
	for r := 0; r < GridSize; r++ {
		for col := 0; col < GridSize; col++ {
			if cfg.letters {
				cells[col] = g[r][col].Letter()
			} else {
				cells[col] = g[r][col].String()
			}
		}
		rows[r] = strings.Join(cells, cfg.delimiter)
	}
	return strings.Join(rows, "\n"), nil
}

// FormatCube renders every face in declaration order, each headed by its
// name:
//
//	Front face:
//	Green | Green | Green
//	...
func FormatCube(c Cube, opts ...FormatOption) string {
	var b strings.Builder
	for i, face := range AllFaces() {
		if i > 0 {
			b.WriteString("\n\n")
		}
		block, _ := FormatFace(c, face, opts...)
		b.WriteString(face.String() + " face:\n")
		b.WriteString(block)
	}
	b.WriteString("\n")
	return b.String()
}
