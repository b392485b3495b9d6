package usecase

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/nrad-K/hh-vacancies/internal/config"
	"github.com/nrad-K/hh-vacancies/internal/constants"
	"github.com/nrad-K/hh-vacancies/internal/domain/model"
	"github.com/nrad-K/hh-vacancies/internal/infra"
	"github.com/nrad-K/hh-vacancies/internal/logger"
)

// SearchResultは対話検索の結果サマリーです。
type SearchResult struct {
	RunID              string          `json:"run_id"`
	SearchKeyword      string          `json:"search_keyword"`
	TopVacancies       []model.Vacancy `json:"top_vacancies"`
	DescriptionKeyword string          `json:"description_keyword"`
	FilteredVacancies  []model.Vacancy `json:"filtered_vacancies"`
}

// SearchUseCaseは、コンソールで検索語・件数・説明文キーワードを受け取り、
// 上位の求人と絞り込み結果を表示してサマリーを保存するユースケースです。
type SearchUseCase struct {
	cfg    *config.Config
	api    infra.VacancyAPI
	logger logger.AppLogger
}

func NewSearchUseCase(args VacancyArgs) *SearchUseCase {
	return &SearchUseCase{
		cfg:    args.Cfg,
		api:    args.API,
		logger: args.Logger,
	}
}

// ResultsPathはサマリーの保存先です。
func (u *SearchUseCase) ResultsPath() string {
	return filepath.Join(u.cfg.Output.Dir, u.cfg.Output.ResultsFile)
}

// Runは対話フローを実行します。
// 求人が見つからない場合や件数が整数でない場合は、メッセージを表示してnilを返します。
func (u *SearchUseCase) Run(ctx context.Context, in io.Reader, out io.Writer) (*SearchResult, error) {
	reader := bufio.NewReader(in)

	keyword, err := prompt(reader, out, constants.PromptKeyword)
	if err != nil {
		return nil, err
	}

	records, err := u.api.FetchVacancies(ctx, keyword)
	if err != nil {
		return nil, fmt.Errorf("求人の取得に失敗しました: %w", err)
	}
	if len(records) == 0 {
		fmt.Fprintln(out, constants.MessageNotFound)
		return nil, nil
	}
	vacancies := infra.ToDomainList(records)

	rawTopN, err := prompt(reader, out, constants.PromptTopN)
	if err != nil {
		return nil, err
	}
	topN, err := strconv.Atoi(rawTopN)
	if err != nil {
		fmt.Fprintln(out, constants.MessageInvalidNumber)
		return nil, nil
	}

	top := model.TopBySalaryFrom(vacancies, topN)
	if err := DisplayVacancies(out, top); err != nil {
		return nil, err
	}

	descriptionKeyword, err := prompt(reader, out, constants.PromptDescriptionKeyword)
	if err != nil {
		return nil, err
	}
	filtered := model.FilterByDescription(top, descriptionKeyword)
	if err := DisplayVacancies(out, filtered); err != nil {
		return nil, err
	}

	result := &SearchResult{
		RunID:              uuid.NewString(),
		SearchKeyword:      keyword,
		TopVacancies:       top,
		DescriptionKeyword: descriptionKeyword,
		FilteredVacancies:  filtered,
	}
	if err := infra.WriteJSONFile(u.ResultsPath(), result); err != nil {
		return result, fmt.Errorf("検索結果の保存に失敗しました: %w", err)
	}

	u.logger.Info("検索結果を保存しました", "run_id", result.RunID, "path", u.ResultsPath(),
		"top", len(top), "filtered", len(filtered))
	return result, nil
}

// promptはメッセージを表示して1行読み込みます。末尾の改行と前後の空白は取り除きます。
func prompt(r *bufio.Reader, out io.Writer, message string) (string, error) {
	fmt.Fprint(out, message)
	line, err := r.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", fmt.Errorf("入力の読み込みに失敗しました: %w", err)
	}
	return strings.TrimSpace(line), nil
}
