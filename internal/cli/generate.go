package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/linkgen/pkg/errors"
	"github.com/arthur-debert/linkgen/pkg/filesystem"
	"github.com/arthur-debert/linkgen/pkg/generator"
	"github.com/arthur-debert/linkgen/pkg/logging"
	"github.com/arthur-debert/linkgen/pkg/manifest"
	"github.com/arthur-debert/linkgen/pkg/output"
	"github.com/arthur-debert/linkgen/pkg/projects"
	"github.com/arthur-debert/linkgen/pkg/types"
	"github.com/arthur-debert/linkgen/pkg/ui"
)

type generateOptions struct {
	projects []string
	yes      bool
	dryRun   bool
}

func newGenerateCmd(root *rootOptions) *cobra.Command {
	opts := &generateOptions{}

	cmd := &cobra.Command{
		Use:     "generate",
		Aliases: []string{"gen"},
		Short:   MsgGenerateShort,
		Long:    MsgGenerateLong,
		Example: MsgGenerateExample,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, root, opts)
		},
	}

	addSelectionFlags(cmd, &opts.projects)
	cmd.Flags().BoolVarP(&opts.yes, "yes", "y", false, MsgFlagYes)
	cmd.Flags().BoolVar(&opts.dryRun, "dry-run", false, MsgFlagDryRun)
	cmd.Flags().Bool("replace-dirs", false, MsgFlagReplaceDirs)

	return cmd
}

// addSelectionFlags registers the flags generate and list share
func addSelectionFlags(cmd *cobra.Command, selection *[]string) {
	cmd.Flags().StringP("source", "s", "", MsgFlagSource)
	cmd.Flags().StringP("destination", "d", "", MsgFlagDestination)
	cmd.Flags().StringArrayVarP(selection, "project", "p", []string{types.WildcardProject}, MsgFlagProject)
	cmd.Flags().String("manifest", manifest.DefaultFileName, MsgFlagManifest)
}

func runGenerate(cmd *cobra.Command, root *rootOptions, opts *generateOptions) error {
	logger := logging.GetLogger("cli.generate")

	cfg, err := loadConfig(cmd, root)
	if err != nil {
		return err
	}
	if cfg.Source == "" {
		return errors.New(errors.ErrConfiguration, generator.MissingSourceMessage)
	}

	out := cmd.OutOrStdout()
	renderer := output.NewRenderer(out, output.ColorEnabled(out, cfg.NoColor))

	renderer.Banner(projects.Label(opts.projects), cfg.Source)
	defer renderer.Closing()

	ok, err := newConfirmer(cmd, opts.yes).Confirm(MsgConfirm)
	if err != nil {
		return err
	}
	if !ok {
		logger.Info().Msg("Confirmation declined, nothing changed")
		return nil
	}

	g, err := generator.New(generator.Params{
		Source:       cfg.Source,
		Destination:  cfg.Destination,
		Projects:     opts.projects,
		ManifestName: cfg.ManifestName,
		ReplaceDirs:  cfg.ReplaceDirs,
		DryRun:       opts.dryRun,
	}, filesystem.NewOS(), renderer.Reporter())
	if err != nil {
		return err
	}

	report, err := g.Process()
	if err != nil {
		return err
	}

	renderer.Summary(report)
	if report.DryRun {
		renderer.Text(MsgDryRunNotice)
	}

	if failed := report.FailedProjects(); len(failed) > 0 {
		return errors.Newf(errors.ErrProjectsFailed, MsgProjectsFailed, len(failed), strings.Join(failed, ", ")).
			WithDetail("projects", failed)
	}
	return nil
}

// newConfirmer picks the prompt: none with --yes, huh on a terminal, a
// plain y/N line otherwise
func newConfirmer(cmd *cobra.Command, yes bool) types.Confirmer {
	if yes {
		return ui.StaticConfirmer(true)
	}
	in, out := cmd.InOrStdin(), cmd.OutOrStdout()
	if output.IsInteractive(in) {
		return ui.NewHuhConfirmer(in, out)
	}
	return ui.NewLineConfirmer(in, out)
}
