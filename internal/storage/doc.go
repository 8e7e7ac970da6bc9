// Package storage reads and writes data matrices as CSV and keeps a small
// on-disk record of rendered videos.
//
// Matrix files hold one matrix row per line and one snapshot per column.
// Cells may be real ("0.25") or complex ("1.5-2i").
package storage
