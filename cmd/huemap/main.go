// Huemap - derive terminal colour themes from images
//
// Huemap quantizes an image down to its dominant colours and maps them onto
// the semantic roles of a terminal colour theme.
package main

import (
	"huemap/internal/cli"
)

func main() {
	cli.Execute()
}
