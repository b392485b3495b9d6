package cmd

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/nrad-K/hh-vacancies/internal/usecase"
)

var searchCmd = &cobra.Command{
	Use:   "search",
	Short: "対話形式で求人を検索します",
	Long:  `検索キーワード・表示件数・説明文のキーワードを順に入力し、給与上位の求人と説明文で絞り込んだ求人を表示して、結果をJSONファイルに保存します。`,
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		ucArgs, closeRepo := setup(ctx)
		defer closeRepo()

		searchUC := usecase.NewSearchUseCase(ucArgs)
		if _, err := searchUC.Run(ctx, cmd.InOrStdin(), cmd.OutOrStdout()); err != nil {
			ucArgs.Logger.Error("検索中にエラーが発生しました", "error", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(searchCmd)
}
