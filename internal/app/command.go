package app

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/user/noxim_plot_go/internal/config"
)

// Preset builds the configuration for a result file.
type Preset func(file string) config.Config

// NewRootCommand returns the command for one plotting variant. Its only flag
// is the required -f/--file naming the result CSV.
func NewRootCommand(use, short string, preset Preset, newApp func() *App) *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:           use,
		Short:         short,
		Long:          short + ". If multiple lines have the same route and pir they will be averaged.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := preset(file)
			logrus.WithField("file", cfg.File).Info("Arguments")
			return newApp().Run(cfg)
		},
	}
	addFlags(cmd.Flags(), &file)
	_ = cmd.MarkFlagRequired("file")
	return cmd
}

func addFlags(fs *pflag.FlagSet, file *string) {
	fs.StringVarP(file, "file", "f", "", "CSV file with noxim output data")
}
