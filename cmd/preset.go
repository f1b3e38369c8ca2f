package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/traPtitech/thumbparam/service/thumbnail/preset"
)

// presetCommand 設定ファイルのプリセットを出力するコマンド
func presetCommand() *cobra.Command {
	var source string

	cmd := cobra.Command{
		Use:   "preset [name...]",
		Short: "Print configured thumbnail presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := getLogger()
			defer logger.Sync()

			r, err := preset.NewRegistry(c.Presets, logger)
			if err != nil {
				return err
			}

			names := args
			if len(names) == 0 {
				names = r.Names()
			}
			outs := make([]paramOutput, 0, len(names))
			for _, name := range names {
				p, ok := r.Get(name)
				if !ok {
					return fmt.Errorf("unknown preset: %s", name)
				}
				out, err := newParamOutput(name, p, source)
				if err != nil {
					return fmt.Errorf("preset %q: %w", name, err)
				}
				outs = append(outs, out)
			}
			return writeOutput(cmd.OutOrStdout(), outs)
		},
	}

	cmd.Flags().StringVar(&source, "source", "", "source image size (WIDTHxHEIGHT) used to print the target size")

	return &cmd
}
