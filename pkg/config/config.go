package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/betbot/sumbench/internal/trisum"
)

// DefaultN 默认求和上界
const DefaultN int64 = 10000

// 环境变量名
const (
	EnvN          = "SUMBENCH_N"
	EnvStrategies = "SUMBENCH_STRATEGIES"
	EnvPlain      = "SUMBENCH_PLAIN"
	EnvLogLevel   = "SUMBENCH_LOG_LEVEL"
	EnvLogFile    = "SUMBENCH_LOG_FILE"
)

// LogConfig 日志配置
type LogConfig struct {
	Level      string `yaml:"level" json:"level"`             // 日志级别: debug, info, warn, error
	File       string `yaml:"file" json:"file"`               // 日志文件路径（可选）
	MaxSize    int    `yaml:"max_size" json:"max_size"`       // 单个日志文件最大大小（MB）
	MaxBackups int    `yaml:"max_backups" json:"max_backups"` // 保留的旧日志文件数量
	MaxAge     int    `yaml:"max_age" json:"max_age"`         // 保留天数
	Compress   bool   `yaml:"compress" json:"compress"`       // 是否压缩旧日志
}

// Config 基准配置
// 优先级：命令行 > 环境变量 > 配置文件 > 默认值（命令行覆盖在 cmd 层处理）
type Config struct {
	N              int64     `yaml:"n" json:"n"`                             // 求和上界
	Strategies     []string  `yaml:"strategies" json:"strategies"`           // 要运行的策略 ID，空表示全部
	Plain          bool      `yaml:"plain" json:"plain"`                     // 纯文本输出
	ShowComplexity bool      `yaml:"show_complexity" json:"show_complexity"` // 输出复杂度标注
	TUI            bool      `yaml:"tui" json:"tui"`                         // 交互式终端界面
	Log            LogConfig `yaml:"log" json:"log"`

	// nSet 记录配置文件是否显式给出了 n（n=0 是合法输入）
	nSet bool
}

// UnmarshalYAML 记录 n 是否出现在配置文件中
func (c *Config) UnmarshalYAML(node *yaml.Node) error {
	type plain Config
	if err := node.Decode((*plain)(c)); err != nil {
		return err
	}
	for i := 0; i+1 < len(node.Content); i += 2 {
		if node.Content[i].Value == "n" {
			c.nSet = true
		}
	}
	return nil
}

// Default 返回默认配置
func Default() *Config {
	c := &Config{}
	c.ApplyDefaults()
	return c
}

// ApplyDefaults 填充未设置的字段
func (c *Config) ApplyDefaults() {
	if !c.nSet && c.N == 0 {
		c.N = DefaultN
	}
	if c.Log.Level == "" {
		c.Log.Level = "warn"
	}
	if c.Log.MaxSize <= 0 {
		c.Log.MaxSize = 100
	}
	if c.Log.MaxBackups <= 0 {
		c.Log.MaxBackups = 3
	}
	if c.Log.MaxAge <= 0 {
		c.Log.MaxAge = 7
	}
}

// Validate 验证配置有效性
func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config不能为空")
	}
	if err := trisum.CheckN(c.N); err != nil {
		return errors.Wrap(err, "n 配置无效")
	}
	if _, err := trisum.Select(c.Strategies); err != nil {
		return errors.Wrap(err, "strategies 配置无效")
	}
	return nil
}

// LoadDotEnv 加载 .env 文件到环境变量；文件不存在时忽略
func LoadDotEnv(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	var existing []string
	for _, p := range paths {
		if _, err := os.Stat(p); err == nil {
			existing = append(existing, p)
		}
	}
	if len(existing) == 0 {
		return nil
	}
	if err := godotenv.Load(existing...); err != nil {
		return errors.Wrap(err, "加载 .env 失败")
	}
	return nil
}

// LoadFromFile 从指定文件加载配置，再叠加环境变量；filePath 为空时只用环境变量和默认值。
// 这里不做 Validate：命令行覆盖（ApplyOverrides）之后由调用方统一校验。
func LoadFromFile(filePath string) (*Config, error) {
	cfg := &Config{}
	if filePath != "" {
		loaded, err := loadConfigFile(filePath)
		if err != nil {
			return nil, errors.Wrapf(err, "加载配置文件失败 %s", filePath)
		}
		cfg = loaded
	}

	if err := applyEnv(cfg); err != nil {
		return nil, err
	}
	cfg.ApplyDefaults()
	return cfg, nil
}

// Overrides 命令行覆盖项；nil 表示该参数未在命令行出现
type Overrides struct {
	N              *int64
	Strategies     *string // 逗号分隔；空字符串表示全部策略
	Plain          *bool
	ShowComplexity *bool
	TUI            *bool
}

// ApplyOverrides 把命令行参数叠加到配置上（优先级最高）
func (c *Config) ApplyOverrides(o Overrides) {
	if o.N != nil {
		c.SetN(*o.N)
	}
	if o.Strategies != nil {
		c.Strategies = ParseStrategyList(*o.Strategies)
	}
	if o.Plain != nil {
		c.Plain = *o.Plain
	}
	if o.ShowComplexity != nil {
		c.ShowComplexity = *o.ShowComplexity
	}
	if o.TUI != nil {
		c.TUI = *o.TUI
	}
}

func loadConfigFile(filePath string) (*Config, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, errors.Wrap(err, "读取配置文件失败")
	}

	var cfg Config
	ext := strings.ToLower(filepath.Ext(filePath))

	switch ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, errors.Wrap(err, "解析 YAML 配置文件失败")
		}
	case ".json":
		var raw map[string]json.RawMessage
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, errors.Wrap(err, "解析 JSON 配置文件失败")
		}
		if err := json.Unmarshal(data, &cfg); err != nil {
			return nil, errors.Wrap(err, "解析 JSON 配置文件失败")
		}
		_, cfg.nSet = raw["n"]
	default:
		return nil, errors.Errorf("不支持的配置文件格式: %s (支持 .yaml, .yml, .json)", ext)
	}
	cfg.Strategies = normalizeList(cfg.Strategies)
	return &cfg, nil
}

// applyEnv 环境变量覆盖配置文件
func applyEnv(cfg *Config) error {
	if v := strings.TrimSpace(os.Getenv(EnvN)); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return errors.Wrapf(err, "%s=%q 不是整数", EnvN, v)
		}
		cfg.SetN(n)
	}
	if v := os.Getenv(EnvStrategies); v != "" {
		cfg.Strategies = ParseStrategyList(v)
	}
	cfg.Plain = parseBoolEnv(EnvPlain, cfg.Plain)
	cfg.Log.Level = getEnv(EnvLogLevel, cfg.Log.Level)
	cfg.Log.File = getEnv(EnvLogFile, cfg.Log.File)
	return nil
}

// SetN 显式设置 n（包括 0）
func (c *Config) SetN(n int64) {
	c.N = n
	c.nSet = true
}

// ParseStrategyList 解析策略列表（逗号分隔）
func ParseStrategyList(str string) []string {
	if str == "" {
		return []string{}
	}
	return normalizeList(strings.Split(str, ","))
}

func normalizeList(parts []string) []string {
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

// getEnv 获取环境变量，如果不存在则返回默认值
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// parseBoolEnv 解析布尔环境变量
func parseBoolEnv(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return defaultValue
	}
	return parsed
}
