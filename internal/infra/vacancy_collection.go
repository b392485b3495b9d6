package infra

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/nrad-K/hh-vacancies/internal/domain/model"
)

var errNotArray = errors.New("JSON配列ではありません")

// storedVacancyは保存されている1レコードです。
// 解析できないレコードもrawのまま保持し、書き戻し時に失われないようにします。
type storedVacancy struct {
	raw     json.RawMessage
	vacancy model.Vacancy
	err     error
}

// vacancyCollectionはJSON配列として保存される求人コレクションです。
type vacancyCollection struct {
	records []storedVacancy
}

func newVacancyCollection() *vacancyCollection {
	return &vacancyCollection{records: []storedVacancy{}}
}

// decodeCollectionはdataをJSON配列として読み込みます。
// 配列として読めない場合のみエラーで、個々のレコードの解析失敗はレコード側に記録します。
func decodeCollection(data []byte) (*vacancyCollection, error) {
	var raws []json.RawMessage
	if err := json.Unmarshal(data, &raws); err != nil {
		return nil, fmt.Errorf("JSONの解析に失敗しました: %w", err)
	}
	if raws == nil {
		// "null" は空のコレクションとして扱わない
		return nil, errNotArray
	}

	c := &vacancyCollection{records: make([]storedVacancy, 0, len(raws))}
	for _, raw := range raws {
		c.records = append(c.records, decodeRecord(raw))
	}
	return c, nil
}

func decodeRecord(raw json.RawMessage) storedVacancy {
	r := storedVacancy{raw: raw}
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		r.err = errors.New("レコードがJSONオブジェクトではありません")
		return r
	}
	if err := json.Unmarshal(trimmed, &r.vacancy); err != nil {
		r.err = err
	}
	return r
}

// Vacanciesは解析できたレコードを保存順で返します。
func (c *vacancyCollection) Vacancies() []model.Vacancy {
	vacancies := make([]model.Vacancy, 0, len(c.records))
	for _, r := range c.records {
		if r.err == nil {
			vacancies = append(vacancies, r.vacancy)
		}
	}
	return vacancies
}

// Skippedは解析できなかったレコード数です。
func (c *vacancyCollection) Skipped() int {
	n := 0
	for _, r := range c.records {
		if r.err != nil {
			n++
		}
	}
	return n
}

func (c *vacancyCollection) Append(v model.Vacancy) error {
	raw, err := marshalRecord(v)
	if err != nil {
		return fmt.Errorf("求人のJSON変換に失敗しました: %w", err)
	}
	c.records = append(c.records, storedVacancy{raw: raw, vacancy: v})
	return nil
}

// DeleteByTitleはタイトルが完全一致するレコードを削除し、削除件数を返します。
// 解析できないレコードでもtitleが文字列として読めれば対象にします。
func (c *vacancyCollection) DeleteByTitle(title string) int {
	kept := make([]storedVacancy, 0, len(c.records))
	for _, r := range c.records {
		if t, ok := recordTitle(r); !ok || t != title {
			kept = append(kept, r)
		}
	}
	deleted := len(c.records) - len(kept)
	c.records = kept
	return deleted
}

// Encodeは保存用の整形済みJSONを返します。レコードは読み込んだ内容のまま書き戻します。
func (c *vacancyCollection) Encode() ([]byte, error) {
	raws := make([]json.RawMessage, 0, len(c.records))
	for _, r := range c.records {
		raws = append(raws, r.raw)
	}
	return encodeJSON(raws)
}

func recordTitle(r storedVacancy) (string, bool) {
	if r.err == nil {
		return r.vacancy.Title, true
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(r.raw, &fields); err != nil {
		return "", false
	}
	var title string
	if err := json.Unmarshal(fields["title"], &title); err != nil {
		return "", false
	}
	return title, true
}

func marshalRecord(v model.Vacancy) (json.RawMessage, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return json.RawMessage(bytes.TrimSpace(buf.Bytes())), nil
}
