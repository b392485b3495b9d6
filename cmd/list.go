package cmd

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/nrad-K/hh-vacancies/internal/infra"
	"github.com/nrad-K/hh-vacancies/internal/usecase"
)

var (
	listFilter criteriaFlags
	listTop    int
	listOutput string
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "保存済みの求人を絞り込んで表示します",
	Long:  `コレクションから条件に一致する求人を保存順に表示します。--top を指定すると給与下限の高い順に上位N件を表示し、--output を指定すると結果をJSONファイルにも保存します。`,
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		ucArgs, closeRepo := setup(ctx)
		defer closeRepo()

		listUC := usecase.NewListVacanciesUseCase(ucArgs)
		vacancies, err := listUC.List(ctx, listFilter.criteria(cmd), listTop)
		if err != nil {
			ucArgs.Logger.Error("求人の検索中にエラーが発生しました", "error", err)
			os.Exit(1)
		}

		if err := usecase.DisplayVacancies(cmd.OutOrStdout(), vacancies); err != nil {
			ucArgs.Logger.Error("求人の表示に失敗しました", "error", err)
			os.Exit(1)
		}

		if listOutput != "" {
			if err := infra.WriteJSONFile(listOutput, vacancies); err != nil {
				// 保存の失敗は表示結果に影響しない
				ucArgs.Logger.Error("検索結果の保存に失敗しました", "path", listOutput, "error", err)
				return
			}
			ucArgs.Logger.Info("検索結果を保存しました", "path", listOutput, "count", len(vacancies))
		}
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
	listFilter.register(listCmd)
	listCmd.Flags().IntVarP(&listTop, "top", "n", 0, "給与下限の上位N件のみ表示")
	listCmd.Flags().StringVarP(&listOutput, "output", "o", "", "結果を保存するJSONファイル")
}
