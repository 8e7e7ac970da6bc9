// Package viz renders terminal previews for the proxvid CLI.
//
//   - [Heatmap]: color-mapped frame using half-block characters
//   - [SupportMask]: braille dot view of a frame's nonzero pattern
//   - [Summary], [SparklineChart]: styled metric output
//
// Output is styled with lipgloss and degrades to plain text when the
// terminal has no color support.
package viz
