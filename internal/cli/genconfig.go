package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/linkgen/pkg/config"
	"github.com/arthur-debert/linkgen/pkg/errors"
	"github.com/arthur-debert/linkgen/pkg/logging"
)

func newGenConfigCmd(root *rootOptions) *cobra.Command {
	var write, force bool

	cmd := &cobra.Command{
		Use:   "genconfig",
		Short: MsgGenConfigShort,
		Long:  MsgGenConfigLong,
		Example: `  linkgen genconfig                 # Output to stdout
  linkgen genconfig -w              # Write to the configuration directory
  linkgen genconfig -w --force      # Replace an existing file`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			content, err := config.GenerateConfigContent()
			if err != nil {
				return err
			}

			if !write {
				_, _ = fmt.Fprint(cmd.OutOrStdout(), content)
				return nil
			}

			path := config.NewLoader(root.configFile).File()
			return writeConfigFile(cmd, path, content, force)
		},
	}

	cmd.Flags().BoolVarP(&write, "write", "w", false, MsgFlagWrite)
	cmd.Flags().BoolVar(&force, "force", false, MsgFlagForce)

	return cmd
}

func writeConfigFile(cmd *cobra.Command, path, content string, force bool) error {
	logger := logging.GetLogger("cli.genconfig")

	if _, err := os.Stat(path); err == nil && !force {
		return errors.Newf(errors.ErrInvalidInput, MsgConfigFileExists, path).
			WithDetail("path", path)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errors.Wrapf(err, errors.ErrFileAccess, "cannot create %s", filepath.Dir(path))
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return errors.Wrapf(err, errors.ErrFileAccess, "cannot write %s", path).
			WithDetail("path", path)
	}

	logger.Info().Str("path", path).Msg("Config file written")
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), MsgConfigWritten, path)
	return nil
}
