package main

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/san-kum/proxvid/internal/encoder"
	"github.com/san-kum/proxvid/internal/storage"
	"github.com/san-kum/proxvid/internal/video"
	"github.com/san-kum/proxvid/internal/viz"
)

func runVideo(cmd *cobra.Command, args []string) error {
	source := args[0]

	settings, err := videoSettings(cmd)
	if err != nil {
		return err
	}
	opts, err := settings.Options()
	if err != nil {
		return err
	}

	binary, err := encoder.Resolve(cfg.FFmpeg)
	if err != nil {
		return err
	}
	enc := encoder.New(binary,
		encoder.WithCodec(settings.Codec),
		encoder.WithLogger(logger),
	)
	opts = append(opts, video.WithEncoder(enc), video.WithLogger(logger))

	m, err := storage.LoadMatrix(source)
	if err != nil {
		return err
	}

	name := videoOut
	if name == "" {
		name = strings.TrimSuffix(source, filepath.Ext(source))
	}
	name = strings.TrimSuffix(name, ".mp4")

	logger.Info().Str("source", source).Str("ffmpeg", binary).Msg("rendering video")
	start := time.Now()

	res, err := video.MakeVideo2D(cmd.Context(), m.Data, duration, nx, ny, name, opts...)
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	st := storage.New(cfg.DataDir)
	if err := st.Init(); err != nil {
		return err
	}
	runID, err := st.Save(storage.RunMetadata{
		Source:   source,
		Output:   res.Path,
		Frames:   res.Frames,
		FPS:      res.FPS,
		Duration: duration,
		NX:       nx,
		NY:       ny,
		VMax:     res.VMax,
		Colormap: settings.Colormap,
		Order:    settings.Order,
		Width:    res.Width,
		Height:   res.Height,
	})
	if err != nil {
		logger.Warn().Err(err).Msg("failed to record run")
	}

	fmt.Println(viz.Summary("video written", []viz.Metric{
		{Label: "output", Value: res.Path},
		{Label: "run id", Value: runID},
		{Label: "frames", Value: fmt.Sprintf("%d", res.Frames)},
		{Label: "fps", Value: fmt.Sprintf("%.4g", res.FPS)},
		{Label: "size", Value: fmt.Sprintf("%dx%d", res.Width, res.Height)},
		{Label: "color range", Value: fmt.Sprintf("±%.4g", res.VMax)},
		{Label: "complex input", Value: fmt.Sprintf("%t", m.Complex)},
		{Label: "elapsed", Value: elapsed.Round(time.Millisecond).String()},
	}))
	return nil
}
