package infra

import (
	"github.com/nrad-K/hh-vacancies/internal/domain/model"
)

// RawVacancyは検索APIが返す求人レコード(items[]の1要素)です。
type RawVacancy struct {
	ID           string        `json:"id"`
	Name         string        `json:"name"`
	AlternateURL string        `json:"alternate_url"`
	Salary       *model.Salary `json:"salary"`
	Snippet      Snippet       `json:"snippet"`
}

type Snippet struct {
	Requirement    *string `json:"requirement"`
	Responsibility *string `json:"responsibility"`
}

type vacancyPage struct {
	Items []RawVacancy `json:"items"`
	Found int          `json:"found"`
	Pages int          `json:"pages"`
}

// ToDomainはAPIレコードを保存用のVacancyに変換します。
func (r RawVacancy) ToDomain() model.Vacancy {
	var description string
	if r.Snippet.Requirement != nil {
		description = *r.Snippet.Requirement
	}
	return model.Vacancy{
		ID:          r.ID,
		Title:       r.Name,
		Link:        r.AlternateURL,
		Salary:      r.Salary,
		Description: description,
	}
}

// ToDomainListはレコードを順序を保ったまま変換します。
func ToDomainList(records []RawVacancy) []model.Vacancy {
	vacancies := make([]model.Vacancy, 0, len(records))
	for _, r := range records {
		vacancies = append(vacancies, r.ToDomain())
	}
	return vacancies
}
