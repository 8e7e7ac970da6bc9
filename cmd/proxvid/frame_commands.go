package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/san-kum/proxvid/internal/export"
	"github.com/san-kum/proxvid/internal/render"
	"github.com/san-kum/proxvid/internal/storage"
	"github.com/san-kum/proxvid/internal/video"
	"github.com/san-kum/proxvid/internal/viz"
)

// loadPlan builds a frame plan for commands that show single frames. The
// duration is irrelevant there, so one second per frame is used.
func loadPlan(cmd *cobra.Command, path string) (*video.Plan, error) {
	settings, err := videoSettings(cmd)
	if err != nil {
		return nil, err
	}
	opts, err := settings.Options()
	if err != nil {
		return nil, err
	}
	m, err := storage.LoadMatrix(path)
	if err != nil {
		return nil, err
	}
	_, cols := m.Data.Dims()
	plan, err := video.NewPlan(m.Data, float64(cols), nx, ny, opts...)
	if err != nil {
		return nil, err
	}
	if frameIdx < 0 || frameIdx >= plan.Frames() {
		return nil, fmt.Errorf("frame %d out of range [0, %d)", frameIdx, plan.Frames())
	}
	return plan, nil
}

func runPreview(cmd *cobra.Command, args []string) error {
	plan, err := loadPlan(cmd, args[0])
	if err != nil {
		return err
	}
	frame, err := plan.Frame(frameIdx)
	if err != nil {
		return err
	}

	fmt.Println(viz.Title.Render(fmt.Sprintf("frame %d/%d", frameIdx, plan.Frames()-1)) +
		viz.Subtle.Render(fmt.Sprintf("  range ±%.4g", plan.VMax)))
	if showMask {
		fmt.Print(viz.SupportMask(frame, maskTol).String())
		return nil
	}
	fmt.Print(viz.Heatmap(frame, plan.Colormap(), -plan.VMax, plan.VMax))
	return nil
}

func runSnapshot(cmd *cobra.Command, args []string) error {
	plan, err := loadPlan(cmd, args[0])
	if err != nil {
		return err
	}

	if export.IsSVG(snapOut) {
		frame, err := plan.Frame(frameIdx)
		if err != nil {
			return err
		}
		if err := export.WriteSVG(snapOut, frame, plan.Colormap(), -plan.VMax, plan.VMax, 10); err != nil {
			return err
		}
	} else {
		canvas := render.NewCanvas(plan.Figure())
		defer canvas.Close()
		if err := plan.Render(canvas, frameIdx); err != nil {
			return err
		}
		if err := export.WritePNG(snapOut, canvas.Image()); err != nil {
			return err
		}
	}

	logger.Info().Int("frame", frameIdx).Str("output", snapOut).Msg("snapshot written")
	return nil
}
