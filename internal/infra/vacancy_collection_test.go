package infra

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nrad-K/hh-vacancies/internal/domain/model"
)

func TestDecodeCollection(t *testing.T) {
	tbl := []struct {
		name      string
		data      string
		wantErr   bool
		wantValid int
		skipped   int
	}{
		{"empty array", `[]`, false, 0, 0},
		{"valid records", `[{"id":"1","title":"Go"},{"id":"2","title":"Java","salary":null}]`, false, 2, 0},
		{"float salary", `[{"id":"1","salary":{"from":100000.0}}]`, false, 1, 0},
		{"odd typed record", `[{"id":"1"},{"id":2},{"id":"3","salary":100000}]`, false, 1, 2},
		{"non object element", `[null,1,"x",{"id":"1"}]`, false, 1, 3},
		{"object", `{}`, true, 0, 0},
		{"null", `null`, true, 0, 0},
		{"broken", `[{"id":`, true, 0, 0},
	}
	for _, tt := range tbl {
		t.Run(tt.name, func(t *testing.T) {
			c, err := decodeCollection([]byte(tt.data))
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Len(t, c.Vacancies(), tt.wantValid)
			assert.Equal(t, tt.skipped, c.Skipped())
		})
	}
}

func TestVacancyCollection_EncodeKeepsRecords(t *testing.T) {
	c, err := decodeCollection([]byte(`[{"id":7,"title":"Go"},{"id":"1","title":"Java"}]`))
	require.NoError(t, err)
	require.NoError(t, c.Append(model.Vacancy{ID: "2", Title: "Rust", Description: "<highlighttext>Rust</highlighttext>"}))

	data, err := c.Encode()
	require.NoError(t, err)
	text := string(data)
	assert.True(t, strings.HasPrefix(text, "[\n    {\n        \"id\": 7,"), text)
	assert.Contains(t, text, `"description": "<highlighttext>Rust</highlighttext>"`)

	assert.Equal(t, 1, c.DeleteByTitle("Go"))
	assert.Equal(t, 0, c.DeleteByTitle(""))
	vs := c.Vacancies()
	require.Len(t, vs, 2)
	assert.Equal(t, "Java", vs[0].Title)
	assert.Equal(t, "Rust", vs[1].Title)
}
