package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// confCommand 設定確認・ベース設定ファイル出力用コマンド
func confCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "conf",
		Short: "Print loaded config variables",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := writeOutput(cmd.OutOrStdout(), c); err != nil {
				return fmt.Errorf("unable to marshal config: %w", err)
			}
			return nil
		},
	}
}
