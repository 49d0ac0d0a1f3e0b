// Package gnmusic reshapes flat music-catalog tables into a normalized
// relational schema and into artist-nested or track-centric documents.
package gnmusic

var (
	// Version of the application, set by build flags.
	Version = "v0.1.0"
	// Build timestamp, set by build flags.
	Build = "n/a"
)
