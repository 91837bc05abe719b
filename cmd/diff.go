package cmd

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"asciify.dev/pkg/asciify/internal/domain"
)

// diffCmd represents the diff command.
var diffCmd = newDiffCmd()

func newDiffCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "diff [paths...]",
		Short: "Show the rewrite each file would receive",
		Long:  diffLongDescription,
		RunE: func(_ *cobra.Command, args []string) error {
			return workflow.Diff(context.Background(), domain.RunArgs{
				Paths:      parsePaths(args),
				Extensions: viper.GetStringSlice(extensionsConfigKey),
				Exclude:    viper.GetStringSlice(excludeConfigKey),
			})
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(diffCmd)
}
