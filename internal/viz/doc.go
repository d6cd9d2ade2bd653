// Package viz renders framebuffers and status text for the terminal.
//
//   - [Preview]: true-colour half-block preview, two pixel rows per line
//   - [Canvas]: Braille canvas, used for a monochrome silhouette of the set
//   - Styles and [Theme] values shared by the CLI and the viewer
//
// Previews sample the framebuffer with nearest-neighbour lookup, so they
// never alter the rendered image itself.
package viz
