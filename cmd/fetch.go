package cmd

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/nrad-K/hh-vacancies/internal/infra"
	"github.com/nrad-K/hh-vacancies/internal/usecase"
)

var (
	fetchPage    string
	fetchPerPage string
)

var fetchCmd = &cobra.Command{
	Use:   "fetch <keyword>",
	Short: "求人を検索APIから取得し、コレクションに保存します",
	Long:  `キーワードで求人検索APIをページ順に取得し、空のページ・件数不足のページ・エラー応答のいずれかで停止します。取得した求人はすべてコレクションに追加されます。`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		ucArgs, closeRepo := setup(ctx)
		defer closeRepo()

		if cmd.Flags().Changed("page") || cmd.Flags().Changed("per-page") {
			page := strconv.Itoa(ucArgs.Cfg.API.Page)
			perPage := strconv.Itoa(ucArgs.Cfg.API.PerPage)
			if cmd.Flags().Changed("page") {
				page = fetchPage
			}
			if cmd.Flags().Changed("per-page") {
				perPage = fetchPerPage
			}
			p, pp, err := infra.ParsePaging(page, perPage)
			if err != nil {
				ucArgs.Logger.Error("ページングパラメータが不正です", "error", err)
				os.Exit(1)
			}
			client := infra.NewHHClient(ucArgs.Cfg.API, nil, ucArgs.Logger)
			client.SetPaging(p, pp)
			ucArgs.API = client
		}

		fetchUC := usecase.NewFetchVacanciesUseCase(ucArgs)
		count, err := fetchUC.FetchAndStore(ctx, args[0])
		if err != nil {
			ucArgs.Logger.Error("求人の取得中にエラーが発生しました", "error", err)
			os.Exit(1)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%d件の求人を保存しました\n", count)
	},
}

func init() {
	rootCmd.AddCommand(fetchCmd)
	fetchCmd.Flags().StringVar(&fetchPage, "page", "", "取得を開始するページ(設定ファイルの値を上書き)")
	fetchCmd.Flags().StringVar(&fetchPerPage, "per-page", "", "1ページあたりの件数(設定ファイルの値を上書き)")
}
