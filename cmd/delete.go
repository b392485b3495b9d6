package cmd

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/nrad-K/hh-vacancies/internal/usecase"
)

var deleteCmd = &cobra.Command{
	Use:   "delete <title>",
	Short: "タイトルが完全一致する求人をすべて削除します",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		ucArgs, closeRepo := setup(ctx)
		defer closeRepo()

		deleteUC := usecase.NewDeleteVacanciesUseCase(ucArgs)
		if err := deleteUC.Delete(ctx, args[0]); err != nil {
			ucArgs.Logger.Error("求人の削除中にエラーが発生しました", "error", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(deleteCmd)
}
