package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/san-kum/proxvid/internal/config"
	"github.com/san-kum/proxvid/internal/encoder"
	"github.com/san-kum/proxvid/internal/storage"
	"github.com/san-kum/proxvid/internal/viz"
)

func listRuns(cmd *cobra.Command, args []string) error {
	runs, err := storage.New(cfg.DataDir).List()
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	rows := make([][]string, 0, len(runs))
	for _, run := range runs {
		rows = append(rows, []string{
			run.ID,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Output,
			fmt.Sprintf("%d", run.Frames),
			fmt.Sprintf("%.4g", run.FPS),
			fmt.Sprintf("%dx%d", run.NX, run.NY),
			run.Colormap,
		})
	}
	fmt.Println(renderTable(
		[]string{"ID", "TIME", "OUTPUT", "FRAMES", "FPS", "GRID", "CMAP"},
		rows,
		[]columnAlignment{alignLeft, alignLeft, alignLeft, alignRight, alignRight, alignRight, alignLeft},
	))
	return nil
}

func listPresets(cmd *cobra.Command, args []string) error {
	rows := make([][]string, 0, len(config.Presets))
	for _, name := range config.ListPresets() {
		v := cfg.Video
		v.Apply(*config.GetPreset(name))
		rows = append(rows, []string{
			name,
			v.Colormap,
			v.Order,
			fmt.Sprintf("%g", v.Scale),
			fmt.Sprintf("%gx%g in", v.FigWidth, v.FigHeight),
			fmt.Sprintf("%d", v.DPI),
		})
	}
	fmt.Println(renderTable(
		[]string{"PRESET", "CMAP", "ORDER", "SCALE", "FIGURE", "DPI"},
		rows,
		[]columnAlignment{alignLeft, alignLeft, alignLeft, alignRight, alignRight, alignRight},
	))
	return nil
}

func checkDeps(cmd *cobra.Command, args []string) error {
	status := encoder.Check(cfg.FFmpeg)

	state := viz.StatusOK.Render("available")
	if !status.Available {
		state = viz.StatusFail.Render("missing")
	}
	fmt.Println(renderTable(
		[]string{"DEPENDENCY", "STATUS", "COMMAND", "SOURCE", "DETAIL"},
		[][]string{{status.Name, state, status.Command, status.Source, status.Detail}},
		nil,
	))
	if !status.Available {
		return encoder.ErrNotFound
	}
	return nil
}
