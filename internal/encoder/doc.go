// Package encoder wraps an external ffmpeg executable that turns a stream
// of raw RGB frames into an H.264 .mp4 file.
//
// Locate the binary once with [Resolve] and hand the path to [New]; the
// package never reads process-wide state after that. A [Session] owns one
// running ffmpeg process: write frames with [Session.WriteFrame], then
// finish with [Session.Close], or [Session.Abort] to kill the process and
// remove the partial output.
package encoder
