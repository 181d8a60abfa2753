package cubeturn

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var sampleFront = FaceGrid{
	{Green, Red, White},
	{Blue, Orange, Yellow},
	{Green, Red, White},
}

func TestRotateGridClockwise(t *testing.T) {
	got, err := RotateGrid(sampleFront, Clockwise)
	require.NoError(t, err)
	assert.Equal(t, FaceGrid{
		{Green, Blue, Green},
		{Red, Orange, Red},
		{White, Yellow, White},
	}, got)
}

func TestRotateGridAnticlockwise(t *testing.T) {
	got, err := RotateGrid(sampleFront, Anticlockwise)
	require.NoError(t, err)
	assert.Equal(t, FaceGrid{
		{White, Yellow, White},
		{Red, Orange, Red},
		{Green, Blue, Green},
	}, got)
}

func TestRotateGridInversePair(t *testing.T) {
	grids := []FaceGrid{
		sampleFront,
		UniformGrid(Blue),
		{{Green, Red, White}, {Blue, Orange, Yellow}, {Yellow, Orange, Blue}},
		{{Red, Red, Green}, {White, Yellow, Orange}, {Blue, Green, White}},
	}
	for _, g := range grids {
		for _, dir := range []Direction{Clockwise, Anticlockwise} {
			once, err := RotateGrid(g, dir)
			require.NoError(t, err)
			back, err := RotateGrid(once, dir.Inverse())
			require.NoError(t, err)
			assert.Equal(t, g, back)
			assert.Equal(t, g[1][1], once[1][1], "center must not move")
		}
	}
}

func TestRotateGridInvalidDirection(t *testing.T) {
	for _, dir := range []Direction{0, 2, -2, 90} {
		_, err := RotateGrid(sampleFront, dir)
		assert.ErrorIs(t, err, ErrInvalidDirection, "direction %d", dir)
	}
}

func TestRotateFaceInPlace(t *testing.T) {
	grids := map[Face]FaceGrid{}
	for _, face := range AllFaces() {
		grids[face] = UniformGrid(face.DefaultColor())
	}
	grids[Front] = sampleFront
	c, err := FromGrids(grids)
	require.NoError(t, err)

	got, err := RotateFaceInPlace(c, Front, Clockwise)
	require.NoError(t, err)
	want, _ := RotateGrid(sampleFront, Clockwise)
	assert.Equal(t, want, got)

	_, err = RotateFaceInPlace(c, Face(12), Clockwise)
	assert.ErrorIs(t, err, ErrInvalidFace)
}

func TestUpdateAdjacentFacesFrontClockwise(t *testing.T) {
	updates, err := UpdateAdjacentFaces(New(), Front, Clockwise)
	require.NoError(t, err)
	require.Len(t, updates, 12)

	byFace := map[Face][]CellUpdate{}
	for _, u := range updates {
		byFace[u.Face] = append(byFace[u.Face], u)
	}
	// Up's bottom row feeds Right's left column, Left feeds Up, Down feeds
	// Left, and Right feeds Down.
	for _, u := range byFace[Right] {
		assert.Equal(t, 0, u.Col)
		assert.Equal(t, White, u.Color)
	}
	for _, u := range byFace[Up] {
		assert.Equal(t, 2, u.Row)
		assert.Equal(t, Orange, u.Color)
	}
	for _, u := range byFace[Left] {
		assert.Equal(t, 2, u.Col)
		assert.Equal(t, Yellow, u.Color)
	}
	for _, u := range byFace[Down] {
		assert.Equal(t, 0, u.Row)
		assert.Equal(t, Red, u.Color)
	}
}

func TestUpdateAdjacentFacesInvalid(t *testing.T) {
	_, err := UpdateAdjacentFaces(New(), Face(7), Clockwise)
	assert.ErrorIs(t, err, ErrInvalidFace)

	_, err = UpdateAdjacentFaces(New(), Front, Direction(0))
	assert.ErrorIs(t, err, ErrInvalidDirection)
}

func TestFrontClockwiseFeedsUpIntoRight(t *testing.T) {
	c, err := Rotate(New(), Front, Clockwise)
	require.NoError(t, err)

	got, err := c.Cell(Right, 2, 0)
	require.NoError(t, err)
	assert.Equal(t, Up.DefaultColor(), got)
}

func TestRotateLeavesInputUntouchedOnError(t *testing.T) {
	start, err := New().Apply(F, RPrime, U)
	require.NoError(t, err)
	before := start

	got, err := Rotate(start, Front, Direction(3))
	assert.ErrorIs(t, err, ErrInvalidDirection)
	assert.Equal(t, before, start)
	assert.Equal(t, before, got)

	got, err = Rotate(start, Face(-3), Clockwise)
	assert.ErrorIs(t, err, ErrInvalidFace)
	assert.Equal(t, before, got)
}

func TestApplyIsAllOrNothing(t *testing.T) {
	start := New()
	got, err := start.Apply(F, R, Move{Face: Up, Direction: 0}, L)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidDirection)
	assert.Contains(t, err.Error(), "move 3")
	assert.True(t, got.IsDefault())
}

// distinctCube returns a cube whose cells are not uniform per face, so
// locality checks notice any stray write.
func distinctCube(t *testing.T) Cube {
	t.Helper()
	c, err := New().Apply(F, RPrime, U, BPrime, L, DPrime, R, U)
	require.NoError(t, err)
	return c
}

func TestRotateLocality(t *testing.T) {
	start := distinctCube(t)
	for _, face := range AllFaces() {
		for _, dir := range []Direction{Clockwise, Anticlockwise} {
			next, err := Rotate(start, face, dir)
			require.NoError(t, err)

			opposite := face.Opposite()
			assert.Equal(t, start.faces[opposite], next.faces[opposite], "%s %s changed opposite face", face, dir)

			rule, err := AdjacencyRule(face, dir)
			require.NoError(t, err)
			border := map[Face]map[Cell]bool{}
			for _, tr := range rule {
				if border[tr.Target] == nil {
					border[tr.Target] = map[Cell]bool{}
				}
				for _, cell := range tr.TargetCells {
					border[tr.Target][cell] = true
				}
			}

			for _, nb := range AllFaces() {
				if nb == face || nb == opposite {
					continue
				}
				for r := 0; r < GridSize; r++ {
					for col := 0; col < GridSize; col++ {
						if border[nb][Cell{r, col}] {
							continue
						}
						assert.Equal(t, start.faces[nb][r][col], next.faces[nb][r][col],
							"%s %s changed non-border cell %s(%d,%d)", face, dir, nb, r, col)
					}
				}
			}
		}
	}
}

func TestClockwiseThenAnticlockwiseIsIdentity(t *testing.T) {
	start := distinctCube(t)
	for _, face := range AllFaces() {
		c, err := start.Apply(Move{face, Clockwise}, Move{face, Anticlockwise})
		require.NoError(t, err)
		assert.Equal(t, start, c, "%s", face)

		c, err = start.Apply(Move{face, Anticlockwise}, Move{face, Clockwise})
		require.NoError(t, err)
		assert.Equal(t, start, c, "%s", face)
	}
}

func TestFourTurnsOnScrambledCube(t *testing.T) {
	start := distinctCube(t)
	for _, face := range AllFaces() {
		for _, dir := range []Direction{Clockwise, Anticlockwise} {
			m := Move{face, dir}
			c, err := start.Apply(m, m, m, m)
			require.NoError(t, err)
			assert.Equal(t, start, c, "%s", m)
		}
	}
}

func TestColorCountsPreserved(t *testing.T) {
	c := distinctCube(t)
	counts := map[Color]int{}
	for _, face := range AllFaces() {
		for r := 0; r < GridSize; r++ {
			for col := 0; col < GridSize; col++ {
				counts[c.faces[face][r][col]]++
			}
		}
	}
	for _, face := range AllFaces() {
		assert.Equal(t, 9, counts[face.DefaultColor()], "%s", face.DefaultColor())
		assert.Equal(t, face.DefaultColor(), c.faces[face][1][1], "center of %s moved", face)
	}
}

func TestChallengeSequenceGolden(t *testing.T) {
	c, err := New().Apply(ChallengeSequence...)
	require.NoError(t, err)

	want := map[Face]FaceGrid{
		Front: {{Orange, Red, Red}, {Orange, Green, White}, {White, White, White}},
		Right: {{Yellow, Blue, Orange}, {Red, Red, White}, {Orange, Yellow, Red}},
		Up:    {{Red, Orange, Green}, {Blue, White, White}, {Blue, Blue, Blue}},
		Back:  {{Yellow, Blue, White}, {Orange, Blue, Yellow}, {Yellow, Yellow, White}},
		Left:  {{Green, Yellow, Yellow}, {Orange, Orange, Green}, {Blue, Green, Orange}},
		Down:  {{Green, Green, Blue}, {Red, Yellow, Red}, {Red, Green, Green}},
	}
	for face, grid := range want {
		got, err := c.Grid(face)
		require.NoError(t, err)
		assert.Equal(t, grid, got, "%s", face)
	}

	golden, err := os.ReadFile(filepath.Join("testdata", "challenge.golden"))
	require.NoError(t, err)
	assert.Equal(t, string(golden), FormatCube(c, WithLetters(true), WithDelimiter(" ")))
}
