package infra

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

const jsonIndent = "    "

// encodeJSONはvを4スペースインデントで整形します。HTMLエスケープは行いません。
func encodeJSON(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", jsonIndent)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteJSONFileはvを整形したJSONとしてpathに書き込みます。親ディレクトリが無ければ作成します。
func WriteJSONFile(path string, v any) error {
	data, err := encodeJSON(v)
	if err != nil {
		return fmt.Errorf("JSONの生成に失敗しました: %w", err)
	}
	return writeFile(path, data)
}

func writeFile(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("出力ディレクトリの作成に失敗しました: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("ファイル %s への書き込みに失敗しました: %w", path, err)
	}
	return nil
}
