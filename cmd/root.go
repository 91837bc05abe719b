// Package cmd provides the root command and CLI setup for asciify.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"asciify.dev/pkg/asciify/internal/adapter"
	"asciify.dev/pkg/asciify/internal/controller"
	"asciify.dev/pkg/asciify/internal/domain"
	m "asciify.dev/pkg/asciify/internal/model"
)

var fsAdapter adapter.SourceFSAdapter
var codec adapter.Codec
var normalizer domain.Normalizer
var workflow domain.Workflow
var ui controller.UI

// excludePatterns is a root-level flag that filters files for applicable commands.
var excludePatterns []string

// extensionsFlag is a root-level flag overriding the scanned file extensions.
var extensionsFlag []string

// verboseFlag switches the log level to debug.
var verboseFlag bool

// logFileFlag overrides the log file location.
var logFileFlag string

func init() {
	configureRootFlags(rootCmd)

	// Initialize shared dependencies.
	ui = controller.NewUI(rootCmd, controller.IsTTY(os.Stdout))
	fsAdapter = adapter.NewLocalSourceFSAdapter()
	codec = adapter.NewBOMCodec()
	normalizer = domain.NewNormalizer(fsAdapter, codec)
	workflow = domain.NewWorkflow(fsAdapter, normalizer, ui)
}

const pathArgsHelp = `Paths are directory roots that are scanned recursively:
  - asciify run            scan the current directory
  - asciify run src inc    scan multiple directories
Only files matching the configured extensions are considered.`

const rootLongDescription = `Asciify rewrites C-family source files in place, replacing typographic
Unicode characters found inside comments (curly quotes, dashes, the
copyright sign, and friends) with plain ASCII equivalents. String and
character literals are never altered. Changed files are re-encoded as
UTF-8 with a byte-order mark; unchanged files are left untouched.

` + pathArgsHelp

const runLongDescription = `Normalize comments in all matching files under the given roots
(default: current directory).

` + pathArgsHelp

const listLongDescription = `List matching files and the number of characters that would be replaced.
No files are modified.

` + pathArgsHelp

const diffLongDescription = `Show a unified diff of the rewrite each file would receive.
No files are modified.

` + pathArgsHelp

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "asciify",
		Short: "Normalize Unicode in source comments to ASCII",
		Long:  rootLongDescription,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			configureLogger(logFileFlag, verboseFlag || viper.GetBool(logVerboseKey))
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	return cmd
}

func configureRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringArrayVarP(&excludePatterns, excludeFlagName, "x",
		viper.GetStringSlice(excludeConfigKey), "exclude files matching regex (can be repeated)")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(excludeFlagName), excludeConfigKey)

	cmd.PersistentFlags().StringSliceVarP(&extensionsFlag, extensionsFlagName, "e",
		viper.GetStringSlice(extensionsConfigKey), "file extensions to scan")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(extensionsFlagName), extensionsConfigKey)

	cmd.PersistentFlags().BoolVarP(&verboseFlag, verboseFlagName, "v", false, "enable debug logging")
	cmd.PersistentFlags().StringVar(&logFileFlag, "log", "", "log file path (default "+defaultLogFilename+")")
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func parsePaths(args []string) []m.Path {
	paths := make([]m.Path, 0, len(args))
	for _, arg := range args {
		paths = append(paths, m.Path(arg))
	}

	return paths
}
