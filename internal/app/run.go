package app

import (
	"context"
	"errors"

	"github.com/specialistvlad/clampsum/internal/clamp"
	"github.com/specialistvlad/clampsum/internal/ctxlog"
	"github.com/specialistvlad/clampsum/internal/input"
	"github.com/specialistvlad/clampsum/internal/output"
	"github.com/specialistvlad/clampsum/internal/validation"
)

// Run executes one pass: validate the parameters, read every input line,
// transform, then print. The first failure is returned as a
// *validation.Error and nothing is printed.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	thresholdText, limitText, err := a.parameters(ctx)
	if err != nil {
		return err
	}

	threshold, err := validation.Argument(thresholdText, "Threshold")
	if err != nil {
		return err
	}
	limit, err := validation.Argument(limitText, "Limit")
	if err != nil {
		return err
	}
	a.logger.Debug("Parameters validated.", "threshold", threshold.String(), "limit", limit.String())

	numbers, err := input.Read(ctx, a.in)
	if err != nil {
		return err
	}

	values := clamp.Apply(threshold, limit, numbers)
	a.logger.Debug("Transform complete.", "count", len(numbers), "sum", values[len(values)-1].String())

	if err := output.Write(a.outW, values); err != nil {
		return err
	}

	a.logger.Debug("App.Run method finished.")
	return nil
}

// parameters returns the raw threshold and limit texts from the parameter
// file when one is configured, and from the command line otherwise.
func (a *App) parameters(ctx context.Context) (string, string, error) {
	if a.config.ParamsPath == "" {
		return a.config.Threshold, a.config.Limit, nil
	}
	if a.loader == nil {
		return "", "", errors.New("a parameter file was configured but no loader is available")
	}
	params, err := a.loader.Load(ctx, a.config.ParamsPath)
	if err != nil {
		return "", "", err
	}
	return params.Threshold, params.Limit, nil
}
