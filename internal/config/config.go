package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-yaml"
)

type StoreBackend string

const (
	JSONBackend  StoreBackend = "json"  // JSON配列ファイル
	RedisBackend StoreBackend = "redis" // Redisの単一キー
)

const (
	DefaultBaseURL   = "https://api.hh.ru/vacancies"
	DefaultUserAgent = "HH-User-Agent"
	DefaultPerPage   = 20
)

// Configはアプリケーション全体の設定です。
type Config struct {
	API    APIConfig    `yaml:"api" validate:"required"`
	Store  StoreConfig  `yaml:"store" validate:"required"`
	Output OutputConfig `yaml:"output" validate:"required"`
	Log    LogConfig    `yaml:"log"`
}

// APIConfigは求人検索APIへのリクエスト設定です。
type APIConfig struct {
	BaseURL   string            `yaml:"base_url" validate:"required,url"`
	UserAgent string            `yaml:"user_agent" validate:"required,min=1"` // HH-User-Agent ヘッダーにも使用
	Page      int               `yaml:"page" validate:"min=0"`                // 取得を開始するページ
	PerPage   int               `yaml:"per_page" validate:"min=1,max=100"`    // 1ページあたりの件数
	Headers   map[string]string `yaml:"headers"`                              // 追加のリクエストヘッダー
}

// StoreConfigは求人コレクションの保存先設定です。
type StoreConfig struct {
	Backend       StoreBackend `yaml:"backend" validate:"required,oneof=json redis"`
	DataDir       string       `yaml:"data_dir" validate:"required"`
	FileName      string       `yaml:"file_name" validate:"required,min=1"`
	RedisKey      string       `yaml:"redis_key"`
	RedisAddress  string       `yaml:"redis_address"`
	RedisPassword string       `yaml:"redis_password"`
	RedisDB       int          `yaml:"redis_db" validate:"min=0,max=15"`
}

// OutputConfigは検索結果サマリーの出力先です。
type OutputConfig struct {
	Dir         string `yaml:"dir" validate:"required"`
	ResultsFile string `yaml:"results_file" validate:"required,min=1"`
}

type LogConfig struct {
	Level string `yaml:"level" validate:"omitempty,oneof=debug info warn error"`
}

// Defaultはデフォルト設定を返します。
func Default() Config {
	return Config{
		API: APIConfig{
			BaseURL:   DefaultBaseURL,
			UserAgent: DefaultUserAgent,
			Page:      0,
			PerPage:   DefaultPerPage,
		},
		Store: StoreConfig{
			Backend:  JSONBackend,
			DataDir:  "data",
			FileName: "vacancies.json",
			RedisKey: "hh:vacancies",
		},
		Output: OutputConfig{
			Dir:         "data",
			ResultsFile: "vacancies_results.json",
		},
		Log: LogConfig{Level: "info"},
	}
}

// バリデーターのインスタンス
var validate = validator.New()

// LoadConfigはYAMLファイルから設定を読み込みます。
// ファイルが存在しない場合はデフォルト設定を使用します。環境変数の値はファイルより優先されます。
func LoadConfig(path string) (Config, error) {
	cfg := Default()

	f, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		// デフォルトのまま
	case err != nil:
		return Config{}, fmt.Errorf("設定ファイルを読み込めませんでした: %w", err)
	default:
		if err := yaml.Unmarshal(f, &cfg); err != nil {
			return Config{}, fmt.Errorf("YAMLの解析に失敗しました: %w", err)
		}
	}

	applyEnv(&cfg)

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if ua := os.Getenv("HH_USER_AGENT"); ua != "" {
		cfg.API.UserAgent = ua
	}
	if addr := os.Getenv("REDIS_ADDRESS"); addr != "" {
		cfg.Store.RedisAddress = addr
	}
	if pw := os.Getenv("REDIS_PASSWORD"); pw != "" {
		cfg.Store.RedisPassword = pw
	}
}

// Validateは構造体タグによる検証とカスタム検証を行います。
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("設定のバリデーションに失敗しました: %w", err)
	}

	// カスタムバリデーション
	if c.Store.Backend == RedisBackend {
		if c.Store.RedisKey == "" {
			return fmt.Errorf("redisバックエンドにはredis_keyが必要です")
		}
		if c.Store.RedisAddress == "" {
			return fmt.Errorf("redisバックエンドにはredis_address(またはREDIS_ADDRESS)が必要です")
		}
	}
	return nil
}
