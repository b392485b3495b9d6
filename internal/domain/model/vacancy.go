package model

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
)

// Salaryは求人の給与レンジです。From/Toはどちらも省略可能です。
// nilの*Salaryは「給与未指定」を表します。
type Salary struct {
	From *int `json:"from,omitempty"`
	To   *int `json:"to,omitempty"`
}

// UnmarshalJSONは 150000.0 のような小数表記の整数も受け付けます。
func (s *Salary) UnmarshalJSON(data []byte) error {
	var raw struct {
		From *json.Number `json:"from"`
		To   *json.Number `json:"to"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	from, err := decodeAmount(raw.From)
	if err != nil {
		return fmt.Errorf("from: %w", err)
	}
	to, err := decodeAmount(raw.To)
	if err != nil {
		return fmt.Errorf("to: %w", err)
	}
	s.From, s.To = from, to
	return nil
}

func decodeAmount(n *json.Number) (*int, error) {
	if n == nil {
		return nil, nil
	}
	if i, err := n.Int64(); err == nil {
		v := int(i)
		return &v, nil
	}
	f, err := n.Float64()
	if err != nil {
		return nil, err
	}
	if f != math.Trunc(f) || f >= math.MaxInt64 || f < math.MinInt64 {
		return nil, fmt.Errorf("金額 %s は整数ではありません", n.String())
	}
	v := int(f)
	return &v, nil
}

// IsSpecifiedは、下限・上限のどちらかが設定されているかを返します。
func (s *Salary) IsSpecified() bool {
	return s != nil && (s.From != nil || s.To != nil)
}

// FromOrZeroは下限額を返します。未設定の場合は0です。
func (s *Salary) FromOrZero() int {
	if s == nil || s.From == nil {
		return 0
	}
	return *s.From
}

// Amountは比較に用いる金額です。下限があれば下限、なければ上限を使います。
func (s *Salary) Amount() int {
	if s == nil {
		return 0
	}
	if s.From != nil {
		return *s.From
	}
	if s.To != nil {
		return *s.To
	}
	return 0
}

// Vacancyはコレクションに保存される求人1件です。
type Vacancy struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Link        string  `json:"link"`
	Salary      *Salary `json:"salary"`
	Description string  `json:"description"`
}

// UnmarshalJSONは、salaryがnullやセンチネル文字列の場合に未指定として読み込みます。
func (v *Vacancy) UnmarshalJSON(data []byte) error {
	type alias Vacancy
	var raw struct {
		alias
		Salary      json.RawMessage `json:"salary"`
		Description *string         `json:"description"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	*v = Vacancy(raw.alias)
	if raw.Description != nil {
		v.Description = *raw.Description
	}

	salary, err := decodeSalary(raw.Salary)
	if err != nil {
		return fmt.Errorf("salaryの解析に失敗しました: %w", err)
	}
	v.Salary = salary
	return nil
}

func decodeSalary(data json.RawMessage) (*Salary, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil, nil
	}
	// 旧形式では "Зарплата не указана" のような文字列で未指定を表していた
	if trimmed[0] == '"' {
		return nil, nil
	}
	var s Salary
	if err := json.Unmarshal(trimmed, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

// Lessは給与で比較します。未指定の給与は常に負け、指定済みのどの給与よりも下位になります。
func (v Vacancy) Less(other Vacancy) bool {
	switch {
	case !v.Salary.IsSpecified():
		return other.Salary.IsSpecified()
	case !other.Salary.IsSpecified():
		return false
	default:
		return v.Salary.Amount() < other.Salary.Amount()
	}
}

// Greaterは給与で比較します。未指定の給与は常にfalseになります。
func (v Vacancy) Greater(other Vacancy) bool {
	switch {
	case !v.Salary.IsSpecified():
		return false
	case !other.Salary.IsSpecified():
		return true
	default:
		return v.Salary.Amount() > other.Salary.Amount()
	}
}

// Equalは給与額が等しいかを返します。
// どちらかが未指定の場合は、両方未指定であってもfalseです。
func (v Vacancy) Equal(other Vacancy) bool {
	if !v.Salary.IsSpecified() || !other.Salary.IsSpecified() {
		return false
	}
	return v.Salary.Amount() == other.Salary.Amount()
}
