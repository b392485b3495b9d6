package constants

// 求人ブロック表示用のラベル(検索サイトに合わせてロシア語)
const (
	LabelVacancy     = "Вакансия"
	LabelTitle       = "Название"
	LabelSalary      = "Зарплата"
	LabelLink        = "Ссылка"
	LabelDescription = "Описание"

	SeparatorWidth = 40
)

// 対話モードのプロンプトとメッセージ
const (
	PromptKeyword            = "Введите поисковый запрос для поиска вакансий: "
	PromptTopN               = "Введите количество топ вакансий для отображения: "
	PromptDescriptionKeyword = "Введите ключевое слово для поиска в описании вакансий: "

	MessageNotFound      = "Вакансии не найдены."
	MessageInvalidNumber = "Некорректное число. Пожалуйста, введите целое число."
)

const (
	DefaultConfigPath = "settings/hh.yaml"
	LogBatchCount     = 100
)
