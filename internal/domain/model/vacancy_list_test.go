package model

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatSalary(t *testing.T) {
	assert.Equal(t, "от 100000 до 150000", FormatSalary(&Salary{From: intPtr(100000), To: intPtr(150000)}))
	assert.Equal(t, "от 100000", FormatSalary(&Salary{From: intPtr(100000)}))
	assert.Equal(t, "до 150000", FormatSalary(&Salary{To: intPtr(150000)}))
	assert.Equal(t, "Не указана", FormatSalary(&Salary{}))
	assert.Equal(t, "Не указана", FormatSalary(nil))
}

func TestStripHighlightMarkup(t *testing.T) {
	assert.Equal(t, "Text tagged", StripHighlightMarkup("Text <highlighttext>tagged</highlighttext>"))
	assert.Equal(t, "Текст с тегами", StripHighlightMarkup("Текст <highlighttext>с тегами</highlighttext>"))
	assert.Equal(t, "Без тегов", StripHighlightMarkup("Без тегов"))
	assert.Equal(t, "", StripHighlightMarkup(""))
}

func sampleVacancies() []Vacancy {
	return []Vacancy{
		{ID: "1", Title: "Вакансия 1", Salary: &Salary{From: intPtr(150000), To: intPtr(200000)},
			Description: "Опыт работы в Python <highlighttext>желателен</highlighttext>"},
		{ID: "2", Title: "Вакансия 2", Salary: &Salary{From: intPtr(120000)},
			Description: "Знание Django <highlighttext>обязательно</highlighttext>"},
		{ID: "3", Title: "Вакансия 3", Salary: &Salary{To: intPtr(100000)}, Description: "Знание Java"},
	}
}

func TestTopBySalaryFrom(t *testing.T) {
	t.Run("orders by from desc", func(t *testing.T) {
		vs := sampleVacancies()
		vs[0], vs[2] = vs[2], vs[0]
		top := TopBySalaryFrom(vs, 2)
		assert.Len(t, top, 2)
		assert.Equal(t, "1", top[0].ID)
		assert.Equal(t, "2", top[1].ID)
		assert.Equal(t, "3", vs[0].ID, "input must stay untouched")
	})

	t.Run("stable for missing from", func(t *testing.T) {
		vs := []Vacancy{
			{ID: "a"},
			{ID: "b", Salary: &Salary{To: intPtr(10)}},
			{ID: "c", Salary: &Salary{}},
			{ID: "d", Salary: &Salary{From: intPtr(1)}},
		}
		top := TopBySalaryFrom(vs, 10)
		ids := make([]string, 0, len(top))
		for _, v := range top {
			ids = append(ids, v.ID)
		}
		assert.Equal(t, []string{"d", "a", "b", "c"}, ids)
	})

	t.Run("stable for equal from", func(t *testing.T) {
		vs := []Vacancy{
			{ID: "x", Salary: &Salary{From: intPtr(5)}},
			{ID: "y", Salary: &Salary{From: intPtr(7)}},
			{ID: "z", Salary: &Salary{From: intPtr(5)}},
		}
		top := TopBySalaryFrom(vs, 3)
		assert.Equal(t, "y", top[0].ID)
		assert.Equal(t, "x", top[1].ID)
		assert.Equal(t, "z", top[2].ID)
	})

	t.Run("extreme values", func(t *testing.T) {
		vs := []Vacancy{
			{ID: "low", Salary: &Salary{From: intPtr(-10)}},
			{ID: "high", Salary: &Salary{From: intPtr(math.MaxInt)}},
		}
		top := TopBySalaryFrom(vs, 1)
		assert.Equal(t, "high", top[0].ID)
	})

	t.Run("bounds", func(t *testing.T) {
		assert.Empty(t, TopBySalaryFrom(sampleVacancies(), 0))
		assert.Empty(t, TopBySalaryFrom(sampleVacancies(), -1))
		assert.Empty(t, TopBySalaryFrom(nil, 3))
		assert.Len(t, TopBySalaryFrom(sampleVacancies(), 10), 3)
	})
}

func TestFilterByDescription(t *testing.T) {
	vs := append(sampleVacancies(), Vacancy{ID: "4", Title: "Вакансия 4"})

	res := FilterByDescription(vs, "python")
	assert.Len(t, res, 1)
	assert.Equal(t, "1", res[0].ID)

	res = FilterByDescription(vs, "ЗНАНИЕ")
	assert.Len(t, res, 2)
	assert.Equal(t, "2", res[0].ID)
	assert.Equal(t, "3", res[1].ID)

	res = FilterByDescription(vs, "")
	assert.Len(t, res, 3, "empty description never matches")

	assert.Empty(t, FilterByDescription(vs, "rust"))
}
