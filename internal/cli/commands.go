package cli

import (
	"embed"
	"fmt"
	"io/fs"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/linkgen/internal/version"
	"github.com/arthur-debert/linkgen/pkg/cobrax/topics"
	"github.com/arthur-debert/linkgen/pkg/config"
	"github.com/arthur-debert/linkgen/pkg/logging"
	"github.com/arthur-debert/linkgen/pkg/output"
)

//go:embed topics/*.md
var topicFiles embed.FS

// rootOptions holds the persistent flags shared by every subcommand
type rootOptions struct {
	verbosity  int
	configFile string
	noColor    bool
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:     "linkgen",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(opts.verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		DisableAutoGenTag: true,
	}

	// Global flags
	rootCmd.PersistentFlags().CountVarP(&opts.verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().StringVar(&opts.configFile, "config", "", MsgFlagConfig)
	rootCmd.PersistentFlags().BoolVar(&opts.noColor, "no-color", false, MsgFlagNoColor)

	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newGenerateCmd(opts))
	rootCmd.AddCommand(newListCmd(opts))
	rootCmd.AddCommand(newGenConfigCmd(opts))
	rootCmd.AddCommand(newDocsCmd(opts))

	return rootCmd
}

// loadConfig resolves the tool configuration, letting the command's flags
// override environment and file values
func loadConfig(cmd *cobra.Command, opts *rootOptions) (*config.Config, error) {
	loader := config.NewLoader(opts.configFile)

	bindings := map[string]string{
		config.KeySource:       "source",
		config.KeyDestination:  "destination",
		config.KeyManifestName: "manifest",
		config.KeyReplaceDirs:  "replace-dirs",
		config.KeyNoColor:      "no-color",
	}
	for key, name := range bindings {
		if err := loader.BindFlag(key, cmd.Flags().Lookup(name)); err != nil {
			return nil, err
		}
	}

	return loader.Load()
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: MsgVersionShort,
		Long:  MsgVersionLong,
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(out, MsgVersionFormat, version.Version)
			if version.Commit != "" {
				_, _ = fmt.Fprintf(out, MsgCommitFormat, version.Commit)
			}
			if version.Date != "" {
				_, _ = fmt.Fprintf(out, MsgBuiltFormat, version.Date)
			}
		},
	}
}

func newDocsCmd(opts *rootOptions) *cobra.Command {
	sub, err := fs.Sub(topicFiles, "topics")
	if err != nil {
		panic(err)
	}
	tm, err := topics.New(sub, topics.Options{Extensions: []string{".md"}})
	if err != nil {
		panic(err)
	}

	return tm.NewCommand(func(cmd *cobra.Command) topics.Renderer {
		if !output.ColorEnabled(cmd.OutOrStdout(), opts.noColor) {
			return &topics.PlainRenderer{}
		}
		return topics.NewGlamourRenderer()
	})
}
