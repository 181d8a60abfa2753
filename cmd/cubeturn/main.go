// cubeturn - CLI for turning the faces of a virtual 3x3x3 cube.
package main

import (
	"github.com/SeamusWaldron/cubeturn/internal/cli"
)

func main() {
	cli.Execute()
}
