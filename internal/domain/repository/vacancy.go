package repository

import (
	"context"

	"github.com/nrad-K/hh-vacancies/internal/domain/model"
)

// Criteriaは求人の絞り込み条件です。nilのフィールドは適用されず、設定された条件はANDで結合されます。
type Criteria struct {
	Title     *string // タイトル完全一致
	MinSalary *int    // salary.from が存在し、この値以上
	MaxSalary *int    // salary.to が存在し、この値以下
}

// Matchは求人が条件をすべて満たすかを返します。
func (c Criteria) Match(v model.Vacancy) bool {
	if c.Title != nil && v.Title != *c.Title {
		return false
	}
	if c.MinSalary != nil {
		if v.Salary == nil || v.Salary.From == nil || *v.Salary.From < *c.MinSalary {
			return false
		}
	}
	if c.MaxSalary != nil {
		if v.Salary == nil || v.Salary.To == nil || *v.Salary.To > *c.MaxSalary {
			return false
		}
	}
	return true
}

// Filterは条件に一致する求人を保存順のまま返します。
func (c Criteria) Filter(vacancies []model.Vacancy) []model.Vacancy {
	filtered := make([]model.Vacancy, 0, len(vacancies))
	for _, v := range vacancies {
		if c.Match(v) {
			filtered = append(filtered, v)
		}
	}
	return filtered
}

// VacancyRepositoryは求人コレクションの永続化を表します。
type VacancyRepository interface {
	Add(ctx context.Context, vacancy model.Vacancy) error
	Query(ctx context.Context, criteria Criteria) ([]model.Vacancy, error)
	DeleteByTitle(ctx context.Context, title string) error
}
