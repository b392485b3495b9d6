package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/nrad-K/hh-vacancies/internal/config"
	"github.com/nrad-K/hh-vacancies/internal/constants"
	"github.com/nrad-K/hh-vacancies/internal/domain/model"
	"github.com/nrad-K/hh-vacancies/internal/domain/repository"
	"github.com/nrad-K/hh-vacancies/internal/infra"
	"github.com/nrad-K/hh-vacancies/internal/logger"
)

// VacancyArgsは、求人ユースケースを構築するための引数を保持します。
type VacancyArgs struct {
	Cfg    *config.Config
	API    infra.VacancyAPI
	Repo   repository.VacancyRepository
	Logger logger.AppLogger
}

// FetchVacanciesUseCaseは、検索APIから求人を取得してコレクションに保存するユースケースです。
type FetchVacanciesUseCase struct {
	api    infra.VacancyAPI
	repo   repository.VacancyRepository
	logger logger.AppLogger
}

func NewFetchVacanciesUseCase(args VacancyArgs) *FetchVacanciesUseCase {
	return &FetchVacanciesUseCase{
		api:    args.API,
		repo:   args.Repo,
		logger: args.Logger,
	}
}

// FetchAndStoreは、keywordで検索した求人を1件ずつコレクションに追加し、追加件数を返します。
func (u *FetchVacanciesUseCase) FetchAndStore(ctx context.Context, keyword string) (int, error) {
	runID := uuid.NewString()
	u.logger.Info("求人の取得を開始します", "run_id", runID, "keyword", keyword)

	records, err := u.api.FetchVacancies(ctx, keyword)
	if err != nil {
		return 0, fmt.Errorf("求人の取得に失敗しました: %w", err)
	}

	stored := 0
	for _, record := range records {
		if err := u.repo.Add(ctx, record.ToDomain()); err != nil {
			return stored, fmt.Errorf("求人 %s の保存に失敗しました: %w", record.ID, err)
		}
		stored++
		if stored%constants.LogBatchCount == 0 {
			u.logger.Info("求人を保存しました", "run_id", runID, "count", stored)
		}
	}

	u.logger.Info("求人の保存が完了しました", "run_id", runID, "total_count", stored)
	return stored, nil
}

// ListVacanciesUseCaseは、コレクションから条件に一致する求人を取り出すユースケースです。
type ListVacanciesUseCase struct {
	repo   repository.VacancyRepository
	logger logger.AppLogger
}

func NewListVacanciesUseCase(args VacancyArgs) *ListVacanciesUseCase {
	return &ListVacanciesUseCase{
		repo:   args.Repo,
		logger: args.Logger,
	}
}

// Listは条件に一致する求人を返します。top > 0 の場合は給与下限の上位top件に絞ります。
func (u *ListVacanciesUseCase) List(ctx context.Context, criteria repository.Criteria, top int) ([]model.Vacancy, error) {
	vacancies, err := u.repo.Query(ctx, criteria)
	if err != nil {
		return nil, fmt.Errorf("求人の検索に失敗しました: %w", err)
	}
	if top > 0 {
		vacancies = model.TopBySalaryFrom(vacancies, top)
	}
	u.logger.Debug("求人を検索しました", "count", len(vacancies))
	return vacancies, nil
}

// DeleteVacanciesUseCaseは、タイトルが一致する求人を削除するユースケースです。
type DeleteVacanciesUseCase struct {
	repo   repository.VacancyRepository
	logger logger.AppLogger
}

func NewDeleteVacanciesUseCase(args VacancyArgs) *DeleteVacanciesUseCase {
	return &DeleteVacanciesUseCase{
		repo:   args.Repo,
		logger: args.Logger,
	}
}

func (u *DeleteVacanciesUseCase) Delete(ctx context.Context, title string) error {
	if err := u.repo.DeleteByTitle(ctx, title); err != nil {
		return fmt.Errorf("求人 %q の削除に失敗しました: %w", title, err)
	}
	return nil
}

// ExportVacanciesUseCaseは、条件に一致する求人をファイルに書き出すユースケースです。
type ExportVacanciesUseCase struct {
	repo   repository.VacancyRepository
	logger logger.AppLogger
}

func NewExportVacanciesUseCase(args VacancyArgs) *ExportVacanciesUseCase {
	return &ExportVacanciesUseCase{
		repo:   args.Repo,
		logger: args.Logger,
	}
}

// Exportは求人をexporterに書き込み、exporterを閉じます。書き込んだ件数を返します。
func (u *ExportVacanciesUseCase) Export(ctx context.Context, criteria repository.Criteria, exporter infra.FileExporter) (int, error) {
	vacancies, err := u.repo.Query(ctx, criteria)
	if err != nil {
		exporter.Close()
		return 0, fmt.Errorf("求人の検索に失敗しました: %w", err)
	}

	written := 0
	for _, v := range vacancies {
		if err := exporter.Write(v); err != nil {
			u.logger.Error("求人の書き込みに失敗しました", "id", v.ID, "error", err)
			continue
		}
		written++
	}

	if err := exporter.Close(); err != nil {
		u.logger.Error("exporterのクローズに失敗しました", "error", err)
		return written, fmt.Errorf("exporterのクローズに失敗しました: %w", err)
	}

	u.logger.Info("エクスポートが完了しました", "total_count", written)
	return written, nil
}
