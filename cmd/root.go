package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	"github.com/nrad-K/hh-vacancies/internal/config"
	"github.com/nrad-K/hh-vacancies/internal/constants"
	"github.com/nrad-K/hh-vacancies/internal/domain/repository"
	"github.com/nrad-K/hh-vacancies/internal/infra"
	"github.com/nrad-K/hh-vacancies/internal/logger"
	"github.com/nrad-K/hh-vacancies/internal/usecase"
)

var configPath string

// rootCmdは、アプリケーションのエントリーポイントとなるルートコマンドです。
var rootCmd = &cobra.Command{
	Use:   "hh-vacancies",
	Short: "HeadHunterの求人を検索・保存・絞り込みするツールです。",
	Long: `hh-vacanciesは、求人検索APIから求人をページ単位で取得してJSONファイルに保存し、
保存済みの求人を給与やタイトルで絞り込んで表示・エクスポートする機能を提供します。`,
}

// Executeは、全てのサブコマンドをルートコマンドに追加し、フラグを適切に設定します。
// この関数はmain.main()から呼び出され、rootCmdに対して一度だけ実行される必要があります。
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", constants.DefaultConfigPath, "設定ファイルのパス")
}

// setupは設定・ロガー・APIクライアント・リポジトリを初期化し、ユースケースの引数を組み立てます。
// 失敗した場合はエラーを出力して終了します。
func setup(ctx context.Context) (usecase.VacancyArgs, func()) {
	// .envが無い場合は何もしない
	_ = godotenv.Load()

	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "設定ファイルの読み込みに失敗しました: %v\n", err)
		os.Exit(1)
	}

	appLogger := logger.NewTextLogger(os.Stderr, cfg.Log.Level)

	repo, closeRepo, err := newRepository(ctx, &cfg, appLogger)
	if err != nil {
		appLogger.Error("リポジトリの初期化に失敗しました", "backend", cfg.Store.Backend, "error", err)
		os.Exit(1)
	}

	return usecase.VacancyArgs{
		Cfg:    &cfg,
		API:    infra.NewHHClient(cfg.API, nil, appLogger),
		Repo:   repo,
		Logger: appLogger,
	}, closeRepo
}

func newRepository(ctx context.Context, cfg *config.Config, appLogger logger.AppLogger) (repository.VacancyRepository, func(), error) {
	switch cfg.Store.Backend {
	case config.RedisBackend:
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.Store.RedisAddress,
			Password: cfg.Store.RedisPassword,
			DB:       cfg.Store.RedisDB,
		})
		// Redisへの接続を確認 (ping)
		if err := rdb.Ping(ctx).Err(); err != nil {
			rdb.Close()
			return nil, nil, fmt.Errorf("redisへの接続に失敗しました: %w", err)
		}
		appLogger.Debug("Redisへの接続を確認しました", "address", cfg.Store.RedisAddress)

		store, err := infra.NewRedisVacancyStore(ctx, rdb, cfg.Store.RedisKey, appLogger)
		if err != nil {
			rdb.Close()
			return nil, nil, err
		}
		return store, func() { rdb.Close() }, nil
	default:
		store, err := infra.NewJSONVacancyStore(cfg.Store.DataDir, cfg.Store.FileName, appLogger)
		if err != nil {
			return nil, nil, err
		}
		return store, func() {}, nil
	}
}

// criteriaFlagsはlist/exportで共通の絞り込みフラグです。
type criteriaFlags struct {
	title     string
	minSalary int
	maxSalary int
}

func (f *criteriaFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.title, "title", "", "タイトル(完全一致)")
	cmd.Flags().IntVar(&f.minSalary, "min-salary", 0, "給与下限(from)がこの値以上")
	cmd.Flags().IntVar(&f.maxSalary, "max-salary", 0, "給与上限(to)がこの値以下")
}

// criteriaは明示的に指定されたフラグだけを条件に含めます。
func (f *criteriaFlags) criteria(cmd *cobra.Command) repository.Criteria {
	var c repository.Criteria
	if cmd.Flags().Changed("title") {
		c.Title = &f.title
	}
	if cmd.Flags().Changed("min-salary") {
		c.MinSalary = &f.minSalary
	}
	if cmd.Flags().Changed("max-salary") {
		c.MaxSalary = &f.maxSalary
	}
	return c
}
