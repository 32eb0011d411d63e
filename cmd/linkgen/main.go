package main

import (
	"io"
	"os"

	"github.com/arthur-debert/linkgen/internal/cli"
	"github.com/arthur-debert/linkgen/pkg/errors"
	"github.com/arthur-debert/linkgen/pkg/logging"
	"github.com/arthur-debert/linkgen/pkg/output"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stderr))
}

// run executes the root command and returns the process exit code
func run(args []string, stderr io.Writer) int {
	rootCmd := cli.NewRootCmd()
	rootCmd.SetArgs(args)
	if err := rootCmd.Execute(); err != nil {
		logger := logging.GetLogger("main")
		logger.Error().
			Str("code", string(errors.GetErrorCode(err))).
			Err(err).
			Msg("Command failed")

		noColor, _ := rootCmd.PersistentFlags().GetBool("no-color")
		output.NewRenderer(stderr, output.ColorEnabled(stderr, noColor)).Error(err)

		return errors.ExitCode(err)
	}
	return 0
}
