package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/betbot/sumbench/internal/trisum"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
	return p
}

// TestConfigDefaults 测试配置默认值
func TestConfigDefaults(t *testing.T) {
	cfg, err := LoadFromFile("")
	require.NoError(t, err)
	assert.Equal(t, DefaultN, cfg.N)
	assert.Empty(t, cfg.Strategies)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, 100, cfg.Log.MaxSize)
	assert.False(t, cfg.Plain)
}

func TestLoadYAML(t *testing.T) {
	p := writeFile(t, "sumbench.yaml", `
n: 500
strategies: [closed_form, " nested "]
plain: true
show_complexity: true
log:
  level: debug
  file: logs/sumbench.log
`)
	cfg, err := LoadFromFile(p)
	require.NoError(t, err)
	assert.Equal(t, int64(500), cfg.N)
	assert.Equal(t, []string{"closed_form", "nested"}, cfg.Strategies)
	assert.True(t, cfg.Plain)
	assert.True(t, cfg.ShowComplexity)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "logs/sumbench.log", cfg.Log.File)
}

// n: 0 是合法输入，不能被默认值覆盖
func TestLoadYAMLExplicitZero(t *testing.T) {
	p := writeFile(t, "zero.yml", "n: 0\n")
	cfg, err := LoadFromFile(p)
	require.NoError(t, err)
	assert.Equal(t, int64(0), cfg.N)
}

func TestLoadJSON(t *testing.T) {
	p := writeFile(t, "sumbench.json", `{"n": 0, "strategies": ["lazy_seq"]}`)
	cfg, err := LoadFromFile(p)
	require.NoError(t, err)
	assert.Equal(t, int64(0), cfg.N)
	assert.Equal(t, []string{"lazy_seq"}, cfg.Strategies)
}

func TestEnvOverridesFile(t *testing.T) {
	p := writeFile(t, "sumbench.yaml", "n: 500\nstrategies: [nested]\n")
	t.Setenv(EnvN, "42")
	t.Setenv(EnvStrategies, "per_term, closed_form")
	t.Setenv(EnvPlain, "true")
	t.Setenv(EnvLogLevel, "error")

	cfg, err := LoadFromFile(p)
	require.NoError(t, err)
	assert.Equal(t, int64(42), cfg.N)
	assert.Equal(t, []string{"per_term", "closed_form"}, cfg.Strategies)
	assert.True(t, cfg.Plain)
	assert.Equal(t, "error", cfg.Log.Level)
}

// loadValidated 加载并校验（与 main 中的顺序一致，但没有命令行覆盖）
func loadValidated(t *testing.T, path string) error {
	t.Helper()
	cfg, err := LoadFromFile(path)
	if err != nil {
		return err
	}
	return cfg.Validate()
}

func TestInvalidConfig(t *testing.T) {
	err := loadValidated(t, writeFile(t, "neg.yaml", "n: -3\n"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, trisum.ErrNegative))

	err = loadValidated(t, writeFile(t, "big.yaml", "n: 99999999\n"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, trisum.ErrOutOfRange))

	err = loadValidated(t, writeFile(t, "bad.yaml", "strategies: [quantum]\n"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, trisum.ErrUnknownStrategy))

	_, err = LoadFromFile(writeFile(t, "cfg.toml", "n = 1\n"))
	assert.Error(t, err)

	_, err = LoadFromFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	t.Setenv(EnvN, "ten")
	_, err = LoadFromFile("")
	assert.Error(t, err)
}

// 加载阶段不校验，非法值留给命令行覆盖后再判断
func TestLoadDefersValidation(t *testing.T) {
	t.Setenv(EnvN, "-5")
	cfg, err := LoadFromFile("")
	require.NoError(t, err)
	assert.Equal(t, int64(-5), cfg.N)
	assert.Error(t, cfg.Validate())
}

func ptr[T any](v T) *T { return &v }

// TestOverridePrecedence 命令行 > 环境变量 > 配置文件 > 默认值
func TestOverridePrecedence(t *testing.T) {
	cases := []struct {
		name      string
		file      string
		env       map[string]string
		overrides Overrides
		wantN     int64
		wantIDs   []string
		wantPlain bool
		wantErr   error
	}{
		{
			name:    "默认值",
			wantN:   DefaultN,
			wantIDs: trisum.IDs(),
		},
		{
			name:    "配置文件",
			file:    "n: 500\nstrategies: [nested]\n",
			wantN:   500,
			wantIDs: []string{trisum.IDNestedLoop},
		},
		{
			name:    "环境变量覆盖配置文件",
			file:    "n: 500\nstrategies: [nested]\n",
			env:     map[string]string{EnvN: "42", EnvStrategies: "per_term"},
			wantN:   42,
			wantIDs: []string{trisum.IDPerTerm},
		},
		{
			name:      "命令行覆盖环境变量",
			file:      "n: 500\n",
			env:       map[string]string{EnvN: "42", EnvPlain: "false"},
			overrides: Overrides{N: ptr(int64(7)), Plain: ptr(true)},
			wantN:     7,
			wantIDs:   trisum.IDs(),
			wantPlain: true,
		},
		{
			name:      "命令行修正非法环境变量",
			env:       map[string]string{EnvN: "-5"},
			overrides: Overrides{N: ptr(int64(10))},
			wantN:     10,
			wantIDs:   trisum.IDs(),
		},
		{
			name:      "命令行替换非法策略",
			file:      "strategies: [quantum]\n",
			overrides: Overrides{Strategies: ptr("closed_form,lazy_seq")},
			wantN:     DefaultN,
			wantIDs:   []string{trisum.IDClosedForm, trisum.IDLazySeq},
		},
		{
			name:      "显式 -n 0",
			file:      "n: 500\n",
			overrides: Overrides{N: ptr(int64(0))},
			wantN:     0,
			wantIDs:   trisum.IDs(),
		},
		{
			name:      "空 -strategies 表示全部",
			file:      "strategies: [nested]\n",
			overrides: Overrides{Strategies: ptr("")},
			wantN:     DefaultN,
			wantIDs:   trisum.IDs(),
		},
		{
			name:      "命令行本身非法",
			overrides: Overrides{N: ptr(int64(-1))},
			wantErr:   trisum.ErrNegative,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			for k, v := range c.env {
				t.Setenv(k, v)
			}
			path := ""
			if c.file != "" {
				path = writeFile(t, "sumbench.yaml", c.file)
			}
			cfg, err := LoadFromFile(path)
			require.NoError(t, err)

			cfg.ApplyOverrides(c.overrides)
			err = cfg.Validate()
			if c.wantErr != nil {
				require.Error(t, err)
				assert.True(t, errors.Is(err, c.wantErr))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, c.wantN, cfg.N)
			assert.Equal(t, c.wantPlain, cfg.Plain)

			selected, err := trisum.Select(cfg.Strategies)
			require.NoError(t, err)
			ids := make([]string, 0, len(selected))
			for _, s := range selected {
				ids = append(ids, s.ID)
			}
			assert.Equal(t, c.wantIDs, ids)
		})
	}
}

func TestApplyOverridesBools(t *testing.T) {
	cfg := Default()
	cfg.ApplyOverrides(Overrides{ShowComplexity: ptr(true), TUI: ptr(true)})
	assert.True(t, cfg.ShowComplexity)
	assert.True(t, cfg.TUI)
	assert.False(t, cfg.Plain)

	cfg.ApplyOverrides(Overrides{})
	assert.True(t, cfg.TUI, "未设置的覆盖项不改变配置")
}

func TestLoadDotEnv(t *testing.T) {
	p := writeFile(t, ".env", EnvN+"=77\n")
	os.Unsetenv(EnvN)
	t.Cleanup(func() { os.Unsetenv(EnvN) })

	require.NoError(t, LoadDotEnv(p))
	cfg, err := LoadFromFile("")
	require.NoError(t, err)
	assert.Equal(t, int64(77), cfg.N)

	assert.NoError(t, LoadDotEnv(filepath.Join(t.TempDir(), "nope.env")))
}

func TestParseStrategyList(t *testing.T) {
	assert.Equal(t, []string{}, ParseStrategyList(""))
	assert.Equal(t, []string{"a", "b"}, ParseStrategyList(" a,,b ,"))
}
