package cli

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort      = "Generate template symlinks from project manifests"
	MsgVersionShort   = "Print version information"
	MsgVersionLong    = "Print detailed version information including commit hash and build date"
	MsgGenerateShort  = "Create or replace the symlinks declared by project manifests"
	MsgListShort      = "List projects and the state of their links"
	MsgListLong       = "List shows every selected project, the links its manifest declares and what currently sits at each link path. It never changes anything."
	MsgGenConfigShort = "Generate a default linkgen configuration file"
	MsgGenConfigLong  = "Output the default configuration to stdout, or write it to the configuration directory with --write."

	// Prompts and status messages
	MsgConfirm          = "Continue?"
	MsgDryRunNotice     = "DRY RUN MODE - No changes were made"
	MsgConfigWritten    = "Wrote configuration to %s\n"
	MsgProjectsFailed   = "%d project(s) failed: %s"
	MsgConfigFileExists = "%s already exists, use --force to overwrite it"

	// Version output
	MsgVersionFormat = "linkgen version %s\n"
	MsgCommitFormat  = "Commit: %s\n"
	MsgBuiltFormat   = "Built:  %s\n"

	// Flag descriptions
	MsgFlagVerbose     = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagConfig      = "Configuration file (default $XDG_CONFIG_HOME/linkgen/config.toml)"
	MsgFlagNoColor     = "Disable coloured output"
	MsgFlagSource      = "Templates root directory (required)"
	MsgFlagDestination = "Root directory links are created under (default: the templates root)"
	MsgFlagProject     = `Project to process, repeatable; "*" selects every project`
	MsgFlagManifest    = "Manifest file name inside each project"
	MsgFlagYes         = "Do not ask for confirmation"
	MsgFlagDryRun      = "Preview changes without executing them"
	MsgFlagReplaceDirs = "Replace real directories standing where a link must go"
	MsgFlagFormat      = "Output format: text, json or yaml"
	MsgFlagWrite       = "Write the configuration file instead of printing it"
	MsgFlagForce       = "Overwrite an existing configuration file"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/generate-long.txt
	msgGenerateLongRaw string
	MsgGenerateLong    = strings.TrimSpace(msgGenerateLongRaw)

	//go:embed msgs/generate-example.txt
	msgGenerateExampleRaw string
	MsgGenerateExample    = strings.TrimRight(msgGenerateExampleRaw, "\n")
)
