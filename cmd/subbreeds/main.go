package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/goliatone/go-breed-cache/internal/logging"
)

// logLevelEnv sets the startup log level; --log-level overrides it.
const logLevelEnv = "SUBBREEDS_LOG"

func main() {
	os.Exit(realMain())
}

func realMain() int {
	if err := initLogging(os.Stderr, os.Getenv); err != nil {
		fmt.Fprintln(os.Stderr, err)
	}

	cmd := newCommand(os.Stdout)
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}

func initLogging(w io.Writer, getenv func(string) string) error {
	return logging.Init(w, getenv(logLevelEnv))
}
