package usecase

import (
	"fmt"
	"io"
	"strings"

	"github.com/nrad-K/hh-vacancies/internal/constants"
	"github.com/nrad-K/hh-vacancies/internal/domain/model"
	"github.com/nrad-K/hh-vacancies/internal/infra"
)

// DisplayVacanciesは求人を番号付きのブロックとしてwに出力します。
//
//	Вакансия 1:
//	  Название: ...
//	  Зарплата: ...
//	  Ссылка: ...
//	  Описание: ...
//	----------------------------------------
func DisplayVacancies(w io.Writer, vacancies []model.Vacancy) error {
	separator := strings.Repeat("-", constants.SeparatorWidth)
	for i, v := range vacancies {
		description := infra.PlainText(model.StripHighlightMarkup(v.Description))
		_, err := fmt.Fprintf(w, "%s %d:\n  %s: %s\n  %s: %s\n  %s: %s\n  %s: %s\n%s\n",
			constants.LabelVacancy, i+1,
			constants.LabelTitle, v.Title,
			constants.LabelSalary, model.FormatSalary(v.Salary),
			constants.LabelLink, v.Link,
			constants.LabelDescription, description,
			separator,
		)
		if err != nil {
			return fmt.Errorf("求人の表示に失敗しました: %w", err)
		}
	}
	return nil
}
