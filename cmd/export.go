package cmd

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/nrad-K/hh-vacancies/internal/infra"
	"github.com/nrad-K/hh-vacancies/internal/usecase"
)

var (
	exportFilter criteriaFlags
	exportFile   string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "保存済みの求人をCSVファイルに書き出します",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		ucArgs, closeRepo := setup(ctx)
		defer closeRepo()

		exporter, err := infra.NewCSVExporter(exportFile)
		if err != nil {
			ucArgs.Logger.Error("CSVエクスポーターの初期化に失敗しました", "error", err)
			os.Exit(1)
		}

		exportUC := usecase.NewExportVacanciesUseCase(ucArgs)
		if _, err := exportUC.Export(ctx, exportFilter.criteria(cmd), exporter); err != nil {
			ucArgs.Logger.Error("エクスポート中にエラーが発生しました", "error", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
	exportFilter.register(exportCmd)
	exportCmd.Flags().StringVarP(&exportFile, "file", "f", "data/vacancies.csv", "出力するCSVファイル")
}
