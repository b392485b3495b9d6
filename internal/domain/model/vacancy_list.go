package model

import (
	"cmp"
	"fmt"
	"slices"
	"strings"
)

const (
	highlightOpenTag  = "<highlighttext>"
	highlightCloseTag = "</highlighttext>"

	salaryUnspecified = "Не указана"
)

var highlightReplacer = strings.NewReplacer(highlightOpenTag, "", highlightCloseTag, "")

// FormatSalaryは給与を表示用の文字列に変換します。
//
//	{from, to} -> "от X до Y"
//	{from}     -> "от X"
//	{to}       -> "до Y"
//	nil / {}   -> "Не указана"
func FormatSalary(s *Salary) string {
	if s == nil {
		return salaryUnspecified
	}
	switch {
	case s.From != nil && s.To != nil:
		return fmt.Sprintf("от %d до %d", *s.From, *s.To)
	case s.From != nil:
		return fmt.Sprintf("от %d", *s.From)
	case s.To != nil:
		return fmt.Sprintf("до %d", *s.To)
	default:
		return salaryUnspecified
	}
}

// StripHighlightMarkupは検索APIが付与するハイライトタグを取り除きます。
func StripHighlightMarkup(text string) string {
	if text == "" {
		return text
	}
	return highlightReplacer.Replace(text)
}

// TopBySalaryFromは給与下限の降順で安定ソートし、先頭n件を返します。
// 下限が無いものは0として扱います。元のスライスは変更しません。
func TopBySalaryFrom(vacancies []Vacancy, n int) []Vacancy {
	if n <= 0 || len(vacancies) == 0 {
		return []Vacancy{}
	}

	sorted := slices.Clone(vacancies)
	slices.SortStableFunc(sorted, func(a, b Vacancy) int {
		// 降順
		return cmp.Compare(b.Salary.FromOrZero(), a.Salary.FromOrZero())
	})

	if n > len(sorted) {
		n = len(sorted)
	}
	return sorted[:n]
}

// FilterByDescriptionは説明文にkeywordを含む求人を返します（大文字小文字は区別しない）。
// 説明文が空の求人は一致しません。
func FilterByDescription(vacancies []Vacancy, keyword string) []Vacancy {
	needle := strings.ToLower(keyword)
	filtered := make([]Vacancy, 0, len(vacancies))
	for _, v := range vacancies {
		if v.Description == "" {
			continue
		}
		if strings.Contains(strings.ToLower(v.Description), needle) {
			filtered = append(filtered, v)
		}
	}
	return filtered
}
