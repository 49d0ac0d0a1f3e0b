// Package main provides the gnmusic CLI application.
// gnmusic loads flat music catalogs into relational and document stores.
package main

import "github.com/gnames/gnmusic/cmd"

func main() {
	cmd.Execute()
}
