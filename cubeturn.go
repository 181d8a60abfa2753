// Package cubeturn models a 3x3x3 twisty puzzle and turns its faces.
//
// # Features
//
//   - Value-typed cube state: six 3x3 face grids
//   - Quarter turns of any face, clockwise or anticlockwise
//   - Border-sticker movement written as explicit per-turn tables
//   - Move notation parsing and formatting (F, F', R, ...)
//   - Plain text formatting of faces and the whole cube
//
// # Quick Start
//
//	c := cubeturn.New()
//
//	c, err := c.Rotate(cubeturn.Front, cubeturn.Clockwise)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Or from notation
//	moves, _ := cubeturn.ParseMoves("F R' U B' L D'")
//	c, err = c.Apply(moves...)
//
//	block, _ := cubeturn.FormatFace(c, cubeturn.Right)
//	fmt.Println(block)
//
// # Rotation model
//
// A rotation never mutates its input. Rotate reads every new sticker value
// from a snapshot of the old cube and writes into a fresh Cube, so the
// turned face and the twelve border stickers on its four neighbors change
// together or not at all.
//
// The border movement for each of the twelve (face, direction) pairs is a
// literal table of four Transfers, available through AdjacencyRule.
package cubeturn
