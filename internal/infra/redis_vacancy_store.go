package infra

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/nrad-K/hh-vacancies/internal/domain/model"
	"github.com/nrad-K/hh-vacancies/internal/domain/repository"
	"github.com/nrad-K/hh-vacancies/internal/logger"
)

// RedisVacancyStoreは1つのRedisキーにJSON配列としてコレクションを保存します。
// JSONVacancyStoreと同じく、値全体を GET -> 変更 -> SET するだけでロックは行いません。
type RedisVacancyStore struct {
	redis  *redis.Client
	key    string
	logger logger.AppLogger
}

var _ repository.VacancyRepository = (*RedisVacancyStore)(nil)

// NewRedisVacancyStoreはキーを初期化します。キーが無いか不正なJSONの場合は空の配列を書き込みます。
func NewRedisVacancyStore(ctx context.Context, rds *redis.Client, key string, appLogger logger.AppLogger) (*RedisVacancyStore, error) {
	s := &RedisVacancyStore{redis: rds, key: key, logger: appLogger}

	_, err := s.load(ctx)
	var corrupt *corruptValueError
	switch {
	case err == nil:
		return s, nil
	case errors.Is(err, redis.Nil), errors.As(err, &corrupt):
		appLogger.Warn("コレクションを空の配列で初期化します", "key", key, "reason", err)
		if err := s.save(ctx, newVacancyCollection()); err != nil {
			return nil, fmt.Errorf("コレクションの初期化に失敗しました: %w", err)
		}
		return s, nil
	default:
		return nil, fmt.Errorf("redisからの読み込みに失敗しました: %w", err)
	}
}

func (s *RedisVacancyStore) Add(ctx context.Context, vacancy model.Vacancy) error {
	c, err := s.loadOrEmpty(ctx)
	if err != nil {
		return err
	}
	if err := c.Append(vacancy); err != nil {
		return err
	}
	return s.save(ctx, c)
}

func (s *RedisVacancyStore) Query(ctx context.Context, criteria repository.Criteria) ([]model.Vacancy, error) {
	c, err := s.loadOrEmpty(ctx)
	if err != nil {
		return nil, err
	}
	return criteria.Filter(c.Vacancies()), nil
}

func (s *RedisVacancyStore) DeleteByTitle(ctx context.Context, title string) error {
	c, err := s.load(ctx)
	var corrupt *corruptValueError
	if errors.Is(err, redis.Nil) || errors.As(err, &corrupt) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("redisからの読み込みに失敗しました: %w", err)
	}

	deleted := c.DeleteByTitle(title)
	s.logger.Info("求人を削除しました", "title", title, "deleted", deleted)
	return s.save(ctx, c)
}

type corruptValueError struct {
	key string
	err error
}

func (e *corruptValueError) Error() string {
	return fmt.Sprintf("キー %s の値がJSON配列ではありません: %v", e.key, e.err)
}

func (e *corruptValueError) Unwrap() error { return e.err }

func (s *RedisVacancyStore) load(ctx context.Context) (*vacancyCollection, error) {
	value, err := s.redis.Get(ctx, s.key).Bytes()
	if err != nil {
		return nil, err
	}
	c, err := decodeCollection(value)
	if err != nil {
		return nil, &corruptValueError{key: s.key, err: err}
	}
	if n := c.Skipped(); n > 0 {
		s.logger.Warn("解析できないレコードを読み飛ばしました", "key", s.key, "skipped", n)
	}
	return c, nil
}

// loadOrEmptyはキーが無いか壊れている場合に空のコレクションを返します。
func (s *RedisVacancyStore) loadOrEmpty(ctx context.Context) (*vacancyCollection, error) {
	c, err := s.load(ctx)
	var corrupt *corruptValueError
	switch {
	case err == nil:
		return c, nil
	case errors.Is(err, redis.Nil):
		return newVacancyCollection(), nil
	case errors.As(err, &corrupt):
		s.logger.Warn("コレクションを読み込めませんでした", "key", s.key, "error", err)
		return newVacancyCollection(), nil
	default:
		return nil, fmt.Errorf("redisからの読み込みに失敗しました: %w", err)
	}
}

func (s *RedisVacancyStore) save(ctx context.Context, c *vacancyCollection) error {
	data, err := c.Encode()
	if err != nil {
		return fmt.Errorf("コレクションのJSON変換に失敗しました: %w", err)
	}
	if err := s.redis.Set(ctx, s.key, data, 0).Err(); err != nil {
		return fmt.Errorf("redisへの保存に失敗しました: %w", err)
	}
	return nil
}
