package cmd

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"asciify.dev/pkg/asciify/internal/domain"
)

var runParallelFlag int
var runDryRunFlag bool

// runCmd represents the run command.
var runCmd = newRunCmd()

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run [paths...]",
		Short: "Normalize comments in source files",
		Long:  runLongDescription,
		RunE: func(_ *cobra.Command, args []string) error {
			_, err := workflow.Run(context.Background(), domain.RunArgs{
				Paths:      parsePaths(args),
				Extensions: viper.GetStringSlice(extensionsConfigKey),
				Exclude:    viper.GetStringSlice(excludeConfigKey),
				Parallel:   viper.GetInt(parallelConfigKey),
				DryRun:     runDryRunFlag,
			})

			return err
		},
	}

	configureRunFlags(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(runCmd)
}

func configureRunFlags(cmd *cobra.Command) {
	cmd.Flags().IntVarP(&runParallelFlag, parallelFlagName, "p",
		viper.GetInt(parallelConfigKey), "number of parallel workers")
	bindFlagToConfig(cmd.Flags().Lookup(parallelFlagName), parallelConfigKey)

	cmd.Flags().BoolVarP(&runDryRunFlag, dryRunFlagName, "n", false,
		"report what would change without writing any file")
}
