package main

import (
	"fmt"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/mat"

	"github.com/san-kum/proxvid/internal/metrics"
	"github.com/san-kum/proxvid/internal/parallel"
	"github.com/san-kum/proxvid/internal/storage"
	"github.com/san-kum/proxvid/internal/viz"
)

func runError(cmd *cobra.Command, args []string) error {
	actual, err := storage.LoadMatrix(args[0])
	if err != nil {
		return err
	}
	truth, err := storage.LoadMatrix(args[1])
	if err != nil {
		return err
	}

	ar, ac := actual.Data.Dims()
	tr, tc := truth.Data.Dims()
	if ar != tr || ac != tc {
		return fmt.Errorf("shape mismatch: %dx%d vs %dx%d", ar, ac, tr, tc)
	}

	var total float64
	var perFrame []float64
	if actual.Complex || truth.Complex {
		total = metrics.RelativeErrorC(actual.Data.RawCMatrix().Data, truth.Data.RawCMatrix().Data)
		perFrame = parallel.Map(ac, 16, func(j int) float64 {
			return metrics.RelativeErrorC(actual.Column(j), truth.Column(j))
		})
	} else {
		a, t := actual.Real(), truth.Real()
		total = metrics.RelativeErrorDense(a, t)
		tracker := metrics.NewFrameError()
		for j := 0; j < ac; j++ {
			tracker.Observe(mat.Col(nil, j, a), mat.Col(nil, j, t))
		}
		perFrame = tracker.Values()
	}

	worst := 0
	for j, e := range perFrame {
		if e > perFrame[worst] {
			worst = j
		}
	}

	fmt.Println(viz.Summary("relative error", []viz.Metric{
		{Label: "total", Value: fmt.Sprintf("%.6g", total)},
		{Label: "frames", Value: fmt.Sprintf("%d", ac)},
		{Label: "worst frame", Value: fmt.Sprintf("%d (%.6g)", worst, perFrame[worst])},
	}))

	if plotFrames && len(perFrame) > 1 {
		graph := asciigraph.Plot(perFrame,
			asciigraph.Height(10),
			asciigraph.Width(min(len(perFrame), 80)),
			asciigraph.Caption("relative error per frame"),
		)
		fmt.Println(graph)
	}
	return nil
}
