package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/ninjify/internal/app"
)

func (c *CLI) newGenerateCmd() *cobra.Command {
	var opts app.GenerateOptions

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate the build description and wrapper script",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			configPath, err := cmd.Flags().GetString("config")
			if err != nil {
				return err
			}
			opts.ConfigPath = configPath
			return c.app.Generate(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVarP(&opts.GraphPath, "graph", "g", "", "Path to the evaluated dependency-graph dump")
	cmd.Flags().StringVarP(&opts.OutputDir, "output-dir", "o", "", "Directory for the generated artifacts")
	cmd.Flags().StringVar(&opts.Suffix, "suffix", "", "Suffix for the generated artifact filenames")
	cmd.Flags().StringVar(&opts.RemoteExecDir, "remote-dir", "", "Remote compiler wrapper directory, enables remote compilation")
	cmd.Flags().IntVarP(&opts.NumJobs, "jobs", "j", 0, "Local pool depth for non-offloadable commands")

	return cmd
}
