package infra

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/nrad-K/hh-vacancies/internal/domain/model"
	"github.com/nrad-K/hh-vacancies/internal/domain/repository"
	"github.com/nrad-K/hh-vacancies/internal/logger"
)

// JSONVacancyStoreは1つのJSON配列ファイルを求人コレクションとして扱います。
//
// 各操作はファイル全体を読み込み、メモリ上で変更し、ファイル全体を書き戻します。
// ロックもアトミックな置き換えも行わないため、複数の書き込み元が同時に操作すると更新が失われます。
type JSONVacancyStore struct {
	path   string
	logger logger.AppLogger
}

var _ repository.VacancyRepository = (*JSONVacancyStore)(nil)

// NewJSONVacancyStoreはdir/fileNameのコレクションを初期化します。
// ディレクトリが無ければ作成し、ファイルが無いかJSON配列として読めない場合は空の配列で初期化します。
// fileNameが絶対パスの場合はdirを無視します。
func NewJSONVacancyStore(dir, fileName string, appLogger logger.AppLogger) (*JSONVacancyStore, error) {
	path := fileName
	if !filepath.IsAbs(fileName) {
		path = filepath.Join(dir, fileName)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("データディレクトリの作成に失敗しました: %w", err)
	}

	s := &JSONVacancyStore{path: path, logger: appLogger}
	if _, err := s.load(); err != nil {
		appLogger.Warn("コレクションを空の配列で初期化します", "path", path, "reason", err)
		if err := WriteJSONFile(path, []model.Vacancy{}); err != nil {
			return nil, fmt.Errorf("コレクションの初期化に失敗しました: %w", err)
		}
	}
	return s, nil
}

// Pathはコレクションファイルのパスです。
func (s *JSONVacancyStore) Path() string {
	return s.path
}

// Addは求人をコレクションの末尾に追加します。
// 書き込みに失敗した場合はログに記録し、エラーは返しません。
func (s *JSONVacancyStore) Add(_ context.Context, vacancy model.Vacancy) error {
	c, err := s.load()
	if err != nil {
		c = newVacancyCollection()
	}
	if err := c.Append(vacancy); err != nil {
		return err
	}
	s.save(c)
	return nil
}

// Queryは条件に一致する求人を保存順で返します。ファイルが無いか壊れている場合は空です。
func (s *JSONVacancyStore) Query(_ context.Context, criteria repository.Criteria) ([]model.Vacancy, error) {
	c, err := s.load()
	if err != nil {
		s.logger.Warn("コレクションを読み込めませんでした", "path", s.path, "error", err)
		return []model.Vacancy{}, nil
	}
	return criteria.Filter(c.Vacancies()), nil
}

// DeleteByTitleはタイトルが完全一致する求人をすべて削除します。
// ファイルが無いか壊れている場合は何もしません。
func (s *JSONVacancyStore) DeleteByTitle(_ context.Context, title string) error {
	c, err := s.load()
	if err != nil {
		s.logger.Warn("コレクションを読み込めないため削除をスキップします", "path", s.path, "error", err)
		return nil
	}

	deleted := c.DeleteByTitle(title)
	s.logger.Info("求人を削除しました", "title", title, "deleted", deleted)
	s.save(c)
	return nil
}

// loadはファイルがJSON配列として読めない場合にエラーを返します。
// 解析できないレコードは読み飛ばしますが、書き戻し時にはそのまま残ります。
func (s *JSONVacancyStore) load() (*vacancyCollection, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, err
	}
	c, err := decodeCollection(data)
	if err != nil {
		return nil, err
	}
	if n := c.Skipped(); n > 0 {
		s.logger.Warn("解析できないレコードを読み飛ばしました", "path", s.path, "skipped", n)
	}
	return c, nil
}

func (s *JSONVacancyStore) save(c *vacancyCollection) {
	data, err := c.Encode()
	if err == nil {
		err = writeFile(s.path, data)
	}
	if err != nil {
		s.logger.Error("ファイルへの書き込みに失敗しました", "path", s.path, "error", err)
	}
}
