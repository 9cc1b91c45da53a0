package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	puremvc "github.com/littlespex/puremvc-go-multicore-framework"
	"github.com/littlespex/puremvc-go-multicore-framework/app"
	"github.com/littlespex/puremvc-go-multicore-framework/internal/cli"
)

// main is the entrypoint for the roster demo.
func main() {
	// Use a minimal logger until the full one is configured.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	if err := run(os.Stdout, os.Args[1:]); err != nil {
		if exitErr, ok := err.(*cli.ExitError); ok {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run encapsulates the demo's logic for easier testing and error
// handling.
func run(outW io.Writer, args []string) error {
	appConfig, shouldExit, err := cli.Parse("roster", args, outW)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	// The app panics on critical config errors; recover to give the
	// user a clean exit message.
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(outW, "A critical startup error occurred: %v\n", r)
			os.Exit(1)
		}
	}()

	rosterApp := app.NewApp(os.Stderr, appConfig, rosterModule{out: outW})
	if err := rosterApp.Start(context.Background()); err != nil {
		return err
	}
	defer rosterApp.Stop()

	facade := puremvc.GetFacade("roster")
	facade.SendNotification(noteAdd, "Mal", "")
	facade.SendNotification(noteAdd, "Kaylee", "")
	facade.SendNotification(noteAdd, "River", "")

	return nil
}
