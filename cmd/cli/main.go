package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/vk/amazingnumbers/internal/app"
	"github.com/vk/amazingnumbers/internal/cli"
	"github.com/vk/amazingnumbers/internal/hcl_adapter"
)

// main is the entrypoint for the amazingnumbers application.
func main() {
	// Use a minimal logger until the full one is configured.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	})))

	// The real main function handles errors and exit codes.
	if err := run(os.Stdin, os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run encapsulates the main application logic for easier testing and error handling.
func run(in io.Reader, outW, errW io.Writer, args []string) error {
	appConfig, shouldExit, err := cli.Parse(args, outW)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	numbersApp, err := newApp(outW, errW, appConfig)
	if err != nil {
		return err
	}

	return numbersApp.Run(context.Background(), in)
}

// newApp builds the application. The app panics on critical startup
// errors, so we recover here to return them as a regular error. Panics
// raised later, while requests run, are not caught.
func newApp(outW, errW io.Writer, appConfig *app.Config) (numbersApp *app.App, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("application startup panicked: %v", r)
		}
	}()

	loader := hcl_adapter.NewLoader()
	return app.NewApp(outW, errW, appConfig, loader), nil
}
