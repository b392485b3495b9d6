package infra

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// PlainTextは検索APIのスニペット(HTML断片)を表示用のテキストに変換します。
// タグを取り除き、&quot; などのエンティティをデコードし、連続する空白を1つにまとめます。
//
// 使用例:
//
//	入力: "Опыт работы с <b>Go</b> &quot;от 3 лет&quot;"
//	出力: "Опыт работы с Go \"от 3 лет\""
func PlainText(fragment string) string {
	if fragment == "" {
		return fragment
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(fragment))
	if err != nil {
		return fragment
	}
	return strings.Join(strings.Fields(doc.Text()), " ")
}
