package app

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/vk/amazingnumbers/internal/ctxlog"
	"github.com/vk/amazingnumbers/internal/request"
)

// Run reads requests from in until the user enters 0 or the input ends.
// Malformed requests are reported and the loop continues; only I/O
// failures are returned.
func (a *App) Run(ctx context.Context, in io.Reader) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	if *a.config.Banner {
		if err := a.presenter.Instructions(); err != nil {
			return fmt.Errorf("failed to write instructions: %w", err)
		}
	}

	// Lines have no length limit; a long line is just another request.
	reader := bufio.NewReader(in)

	for {
		if err := a.presenter.Prompt(a.config.Prompt); err != nil {
			return fmt.Errorf("failed to write prompt: %w", err)
		}

		line, readErr := reader.ReadString('\n')
		if readErr != nil && !errors.Is(readErr, io.EOF) {
			return fmt.Errorf("failed to read request: %w", readErr)
		}
		if readErr != nil && line == "" {
			a.logger.Debug("Input closed, leaving request loop.")
			return nil
		}

		done, err := a.Handle(ctx, strings.TrimRight(line, "\r\n"))
		if err != nil {
			return err
		}
		if done {
			a.logger.Debug("App.Run method finished.")
			return nil
		}
		if readErr != nil {
			a.logger.Debug("Input closed, leaving request loop.")
			return nil
		}
	}
}

// Handle processes one request line. It reports whether the session should end.
func (a *App) Handle(ctx context.Context, line string) (bool, error) {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	ctx = ctxlog.With(ctx, "request", line)
	logger := ctxlog.FromContext(ctx)

	req, err := request.Parse(line, a.registry)
	if err != nil {
		var userErr request.UserError
		if !errors.As(err, &userErr) {
			return false, fmt.Errorf("failed to parse request: %w", err)
		}
		logger.Info("Request rejected.", "error", err)
		return false, a.presenter.Error(err)
	}
	logger.Debug("Request parsed.", "kind", req.Kind)

	switch req.Kind {
	case request.KindInstructions:
		return false, a.presenter.Instructions()
	case request.KindTerminate:
		return true, a.presenter.Goodbye()
	case request.KindSingle:
		return false, a.presenter.Report(req.Start)
	case request.KindSearch:
		return false, a.search(ctx, req)
	default:
		return false, fmt.Errorf("unhandled request kind %s", req.Kind)
	}
}

func (a *App) search(ctx context.Context, req *request.Request) error {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Search started.",
		"start", req.Start,
		"count", req.Count,
		"include", req.Include.Items(),
		"exclude", req.Exclude.Items(),
	)

	var found int64
	for n := range a.engine.Find(req) {
		if err := a.presenter.Line(n); err != nil {
			return fmt.Errorf("failed to write match: %w", err)
		}
		found++
	}

	logger.Debug("Search finished.", "found", found)
	return nil
}
