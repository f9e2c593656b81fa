package main

import (
	"github.com/google/uuid"
	"github.com/hscells/codiesp"
	"github.com/hscells/codiesp/eval"
	"github.com/hscells/codiesp/output"
	"github.com/hscells/codiesp/score"
	"github.com/hscells/codiesp/tsv"
	"github.com/pkg/errors"
	"gopkg.in/cheggaaa/pb.v1"
	"os"
	"path"
	"strings"
)

// evaluate loads the files named in args and scores them. Diagnostics from loading and scoring are returned even
// when an error occurs.
func evaluate(args args) (output.Report, codiesp.Diagnostics, error) {
	report := output.Report{
		RunID:     uuid.New().String(),
		Subtask:   strings.ToUpper(args.Subtask),
		Tolerance: -1,
		Summary:   args.Summary,
	}

	var valid codiesp.CodeSet
	switch report.Subtask {
	case "D", "P", "X":
		if len(args.ValidCodes) == 0 {
			return report, nil, errors.Errorf("subtask %s requires a valid codes file", report.Subtask)
		}
		var err error
		valid, err = tsv.ReadValidCodesFiles(args.ValidCodes...)
		if err != nil {
			return report, nil, errors.Wrap(err, "could not load valid codes")
		}
	case "3":
	default:
		return report, nil, errors.Errorf("unrecognised subtask %s", args.Subtask)
	}

	switch report.Subtask {
	case "D", "P":
		gold, err := tsv.ReadCodeGoldFile(args.Gold)
		if err != nil {
			return report, nil, errors.Wrap(err, "could not load gold standard")
		}
		pred, diagnostics, err := tsv.ReadCodePredictionsFile(args.Pred, valid)
		if err != nil {
			return report, diagnostics, errors.Wrap(err, "could not load predictions")
		}

		keys := make([]codiesp.Key, len(gold))
		for i, e := range gold {
			keys[i] = e.Key()
		}
		bar := start(args.Progress, len(codiesp.Documents(keys)))
		report.Metrics, err = score.SetMatch(gold, pred, options(bar)...)
		finish(bar)
		if err != nil {
			return report, diagnostics, err
		}
		diagnostics = append(diagnostics, report.Metrics.Diagnostics...)
		report.Metrics.Diagnostics = diagnostics

		if args.MAP {
			var m eval.MAPComputer = eval.TrecMAP{}
			v := m.ComputeMAP(eval.RunFromCodes(pred, runName(args.Pred)), eval.QrelsFromCodes(gold))
			report.MAP = &v
		}
		return report, diagnostics, nil
	default:
		gold, err := tsv.ReadSpanGoldFile(args.Gold)
		if err != nil {
			return report, nil, errors.Wrap(err, "could not load gold standard")
		}
		pred, diagnostics, err := tsv.ReadSpanPredictionsFile(args.Pred, valid)
		if err != nil {
			return report, diagnostics, errors.Wrap(err, "could not load predictions")
		}

		report.Tolerance = score.DefaultTolerance
		if args.Tolerance >= 0 {
			report.Tolerance = args.Tolerance
		}

		keys := make([]codiesp.Key, len(gold))
		for i, e := range gold {
			keys[i] = e.Key()
		}
		bar := start(args.Progress, len(codiesp.Documents(keys)))
		report.Metrics, err = score.SpanMatch(gold, pred, append(options(bar), score.Tolerance(report.Tolerance))...)
		finish(bar)
		if err != nil {
			return report, diagnostics, err
		}
		diagnostics = append(diagnostics, report.Metrics.Diagnostics...)
		report.Metrics.Diagnostics = diagnostics
		return report, diagnostics, nil
	}
}

func options(bar *pb.ProgressBar) []score.Option {
	var opts []score.Option
	if bar != nil {
		opts = append(opts, score.WithProgress(bar))
	}
	return opts
}

// start creates a progress bar on stderr when progress is requested.
func start(progress bool, n int) *pb.ProgressBar {
	if !progress {
		return nil
	}
	bar := pb.New(n)
	bar.Output = os.Stderr
	return bar.Start()
}

func finish(bar *pb.ProgressBar) {
	if bar != nil {
		bar.Finish()
	}
}

func runName(p string) string {
	return strings.TrimSuffix(path.Base(p), path.Ext(p))
}
