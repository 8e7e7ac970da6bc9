// Package export writes single frames to image files.
package export
