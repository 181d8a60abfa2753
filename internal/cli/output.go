package cli

import (
	"fmt"
	"io"

	"github.com/SeamusWaldron/cubeturn"
	"github.com/SeamusWaldron/cubeturn/internal/config"
	"github.com/SeamusWaldron/cubeturn/internal/render"
)

// printCube writes the whole cube in the configured style.
func printCube(w io.Writer, c cubeturn.Cube) {
	switch cfg.Display.Style {
	case config.StylePlain:
		fmt.Fprint(w, cubeturn.FormatCube(c, cubeturn.WithDelimiter(cfg.Display.Delimiter)))
	case config.StyleLetters:
		fmt.Fprint(w, c.String())
	default:
		fmt.Fprintln(w, render.New(w).Net(c))
	}
}

// printFace writes one face in the configured style.
func printFace(w io.Writer, c cubeturn.Cube, face cubeturn.Face) error {
	var (
		out string
		err error
	)
	switch cfg.Display.Style {
	case config.StylePlain:
		out, err = cubeturn.FormatFace(c, face, cubeturn.WithDelimiter(cfg.Display.Delimiter))
	case config.StyleLetters:
		out, err = cubeturn.FormatFace(c, face, cubeturn.WithDelimiter(" "), cubeturn.WithLetters(true))
	default:
		out, err = render.New(w).LabeledFace(c, face)
	}
	if err != nil {
		return err
	}
	if cfg.Display.Style != config.StyleColor {
		fmt.Fprintf(w, "%s face:\n", face)
	}
	fmt.Fprintln(w, out)
	return nil
}

// applySequence applies moves to a new cube, logging each turn.
func applySequence(moves []cubeturn.Move) (cubeturn.Cube, error) {
	tracker := cubeturn.NewTracker()
	for _, m := range moves {
		if err := tracker.Apply(m); err != nil {
			return cubeturn.Cube{}, fmt.Errorf("apply %s: %w", m, err)
		}
		logger.Debug("turn", "face", m.Face.String(), "direction", m.Direction.String())
	}
	return tracker.Cube(), nil
}
