package pipeline

import (
	"context"

	"github.com/backmassage/astrosave/internal/convert"
	"github.com/backmassage/astrosave/internal/logging"
)

// Run selects a save folder through ui and, when conv is non-nil, converts
// it. The selected folder is returned even when the conversion fails.
func Run(ctx context.Context, src *Source, ui UI, conv *convert.Converter) (string, error) {
	folder, err := src.Select(ui)
	if err != nil {
		return "", err
	}
	logging.Logf(src.Log, logging.LevelInfo, "Selected save folder: %s", folder)

	if conv == nil {
		return folder, nil
	}
	return folder, Convert(ctx, conv, folder, src.Log)
}

// Convert runs conv on folder, logging the child's stderr on failure.
func Convert(ctx context.Context, conv *convert.Converter, folder string, log logging.Sink) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	res := conv.Run(ctx, folder)
	if !res.OK() {
		if res.Stderr != "" && !conv.Verbose {
			logging.Logf(log, logging.LevelDebug, "Converter stderr:\n%s", res.Stderr)
		}
		return res.Err
	}
	logging.Logf(log, logging.LevelDebug, "Converter exited 0 for %s", folder)
	return nil
}
