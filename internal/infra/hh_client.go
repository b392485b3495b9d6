package infra

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/nrad-K/hh-vacancies/internal/config"
	"github.com/nrad-K/hh-vacancies/internal/logger"
)

// ErrInvalidParameterはページングパラメータが不正な場合に返されます。
var ErrInvalidParameter = errors.New("invalid paging parameter")

// VacancyAPIは求人検索APIのクライアントです。
type VacancyAPI interface {
	FetchVacancies(ctx context.Context, keyword string) ([]RawVacancy, error)
}

// HHClientはHeadHunterの検索APIをページ順に取得するクライアントです。
type HHClient struct {
	http      *http.Client
	baseURL   string
	userAgent string
	headers   map[string]string
	page      int
	perPage   int
	logger    logger.AppLogger
}

// NewHHClientはAPI設定からクライアントを生成します。httpClientがnilの場合はhttp.DefaultClientを使います。
func NewHHClient(cfg config.APIConfig, httpClient *http.Client, appLogger logger.AppLogger) *HHClient {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &HHClient{
		http:      httpClient,
		baseURL:   cfg.BaseURL,
		userAgent: cfg.UserAgent,
		headers:   cfg.Headers,
		page:      cfg.Page,
		perPage:   cfg.PerPage,
		logger:    appLogger,
	}
}

// SetPagingは開始ページとページサイズを変更します。
func (c *HHClient) SetPaging(page, perPage int) {
	c.page = page
	c.perPage = perPage
}

// ParsePagingは文字列で与えられたページングパラメータを整数に変換します。
func ParsePaging(page, perPage string) (int, int, error) {
	p, err := strconv.Atoi(page)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: page=%q", ErrInvalidParameter, page)
	}
	pp, err := strconv.Atoi(perPage)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: per_page=%q", ErrInvalidParameter, perPage)
	}
	return p, pp, nil
}

// FetchVacanciesはkeywordで検索し、取得できた全ページの求人を連結して返します。
//
// 次のいずれかで取得を終了します。
//   - 空のページ
//   - per_page 未満の件数のページ(そのページの分は含む)
//   - 200以外のレスポンスや通信エラー(それまでの結果を返す)
//
// エラーを返すのはページングパラメータが不正な場合のみで、その場合リクエストは送信しません。
func (c *HHClient) FetchVacancies(ctx context.Context, keyword string) ([]RawVacancy, error) {
	if c.page < 0 {
		return nil, fmt.Errorf("%w: page=%d", ErrInvalidParameter, c.page)
	}
	if c.perPage < 1 {
		return nil, fmt.Errorf("%w: per_page=%d", ErrInvalidParameter, c.perPage)
	}

	vacancies := []RawVacancy{}
	found := 0
	for page := c.page; ; page++ {
		body, ok := c.fetchPage(ctx, keyword, page)
		if !ok || len(body.Items) == 0 {
			break
		}
		found = body.Found
		vacancies = append(vacancies, body.Items...)
		c.logger.Debug("ページを取得しました", "page", page, "pages", body.Pages, "count", len(body.Items), "total", len(vacancies))
		if len(body.Items) < c.perPage {
			break
		}
	}

	c.logger.Info("求人の取得が完了しました", "keyword", keyword, "count", len(vacancies), "found", found)
	return vacancies, nil
}

// fetchPageは1ページ分を取得します。取得を続行できない場合はfalseを返します。
func (c *HHClient) fetchPage(ctx context.Context, keyword string, page int) (vacancyPage, bool) {
	var body vacancyPage
	req, err := c.newRequest(ctx, keyword, page)
	if err != nil {
		c.logger.Warn("リクエストの生成に失敗しました", "page", page, "error", err)
		return body, false
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Warn("検索APIへのリクエストに失敗しました", "page", page, "error", err)
		return body, false
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.logger.Warn("検索APIが200以外を返しました。取得を終了します", "page", page, "status", resp.StatusCode)
		return body, false
	}

	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		c.logger.Warn("レスポンスの解析に失敗しました", "page", page, "error", err)
		return body, false
	}
	return body, true
}

func (c *HHClient) newRequest(ctx context.Context, keyword string, page int) (*http.Request, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("ベースURL %s のパースに失敗しました: %w", c.baseURL, err)
	}
	q := u.Query()
	q.Set("text", keyword)
	q.Set("page", strconv.Itoa(page))
	q.Set("per_page", strconv.Itoa(c.perPage))
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, err
	}
	for k, v := range c.headers {
		req.Header.Set(k, v)
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("HH-User-Agent", c.userAgent)
	return req, nil
}
