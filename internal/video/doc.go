// Package video renders a 2-D time-series matrix into an .mp4 file.
//
// Each column of the matrix is one snapshot. The column is reshaped into an
// nx-by-ny grid, color-mapped on a single symmetric range [-vmax, vmax]
// shared by every frame, and streamed to ffmpeg at cols/T frames per second
// so the clip lasts T seconds.
//
//	plan, _ := video.NewPlanReal(X, 2.0, 64, 64)
//	res, err := video.MakeVideo2DReal(ctx, X, 2.0, 64, 64, "out/flow",
//		video.WithColormap("RdBu"), video.WithFFmpeg(ffmpegPath))
//
// Complex input is accepted; only the real part is rendered.
//
// # Resources
//
// MakeVideo2D blocks until encoding finishes. The render canvas is released
// on every return path. When encoding fails the partial .mp4 is removed.
package video
