package usecase

import (
	"context"
	"errors"

	"github.com/nrad-K/hh-vacancies/internal/domain/model"
	"github.com/nrad-K/hh-vacancies/internal/domain/repository"
	"github.com/nrad-K/hh-vacancies/internal/infra"
)

// memoryRepoはテスト用のインメモリ実装です。
type memoryRepo struct {
	vacancies []model.Vacancy
	addErr    error
}

func (m *memoryRepo) Add(_ context.Context, v model.Vacancy) error {
	if m.addErr != nil {
		return m.addErr
	}
	m.vacancies = append(m.vacancies, v)
	return nil
}

func (m *memoryRepo) Query(_ context.Context, c repository.Criteria) ([]model.Vacancy, error) {
	return c.Filter(m.vacancies), nil
}

func (m *memoryRepo) DeleteByTitle(_ context.Context, title string) error {
	kept := m.vacancies[:0]
	for _, v := range m.vacancies {
		if v.Title != title {
			kept = append(kept, v)
		}
	}
	m.vacancies = kept
	return nil
}

type fakeAPI struct {
	records  []infra.RawVacancy
	err      error
	keywords []string
}

func (f *fakeAPI) FetchVacancies(_ context.Context, keyword string) ([]infra.RawVacancy, error) {
	f.keywords = append(f.keywords, keyword)
	return f.records, f.err
}

// failingExporterは書き込みごとにエラーを返すexporterです。
type failingExporter struct {
	written []model.Vacancy
	failID  string
	closed  bool
}

func (e *failingExporter) Write(v model.Vacancy) error {
	if v.ID == e.failID {
		return errors.New("write failed")
	}
	e.written = append(e.written, v)
	return nil
}

func (e *failingExporter) Close() error {
	e.closed = true
	return nil
}

func ptr[T any](v T) *T { return &v }

func strPtr(s string) *string { return &s }

func sampleRecords() []infra.RawVacancy {
	return []infra.RawVacancy{
		{
			ID: "1", Name: "Вакансия 1", AlternateURL: "http://example.com/vacancy1",
			Salary:  &model.Salary{From: ptr(150000), To: ptr(200000)},
			Snippet: infra.Snippet{Requirement: strPtr("Опыт работы в Python <highlighttext>желателен</highlighttext>")},
		},
		{
			ID: "2", Name: "Вакансия 2", AlternateURL: "http://example.com/vacancy2",
			Salary:  &model.Salary{From: ptr(120000)},
			Snippet: infra.Snippet{Requirement: strPtr("Знание Django <highlighttext>обязательно</highlighttext>")},
		},
		{
			ID: "3", Name: "Вакансия 3", AlternateURL: "http://example.com/vacancy3",
			Salary:  &model.Salary{To: ptr(100000)},
			Snippet: infra.Snippet{Requirement: strPtr("Знание Java")},
		},
	}
}
