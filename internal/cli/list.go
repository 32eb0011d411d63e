package cli

import (
	"github.com/spf13/cobra"

	"github.com/arthur-debert/linkgen/pkg/errors"
	"github.com/arthur-debert/linkgen/pkg/filesystem"
	"github.com/arthur-debert/linkgen/pkg/generator"
	"github.com/arthur-debert/linkgen/pkg/logging"
	"github.com/arthur-debert/linkgen/pkg/output"
)

func newListCmd(root *rootOptions) *cobra.Command {
	var (
		selection []string
		format    string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: MsgListShort,
		Long:  MsgListLong,
		Example: `  # Show every project and its links
  linkgen list -s ../Templates

  # Machine-readable state of one project
  linkgen list -s ../Templates -p linux --format json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logging.GetLogger("cli.list")

			f, err := output.ParseFormat(format)
			if err != nil {
				return errors.Wrap(err, errors.ErrInvalidInput, "invalid --format")
			}

			cfg, err := loadConfig(cmd, root)
			if err != nil {
				return err
			}
			if cfg.Source == "" {
				return errors.New(errors.ErrConfiguration, generator.MissingSourceMessage)
			}

			out := cmd.OutOrStdout()
			renderer := output.NewRenderer(out, f == output.FormatText && output.ColorEnabled(out, cfg.NoColor))

			g, err := generator.New(generator.Params{
				Source:       cfg.Source,
				Destination:  cfg.Destination,
				Projects:     selection,
				ManifestName: cfg.ManifestName,
			}, filesystem.NewOS(), renderer.Reporter())
			if err != nil {
				return err
			}

			plans, err := g.Plan()
			if err != nil {
				return err
			}
			logger.Debug().Int("projects", len(plans)).Str("format", f.String()).Msg("Rendering plans")

			if err := renderer.Plans(plans, f); err != nil {
				return errors.Wrap(err, errors.ErrInternal, "cannot render project list")
			}
			return nil
		},
	}

	addSelectionFlags(cmd, &selection)
	cmd.Flags().StringVarP(&format, "format", "f", "text", MsgFlagFormat)

	return cmd
}
