package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/betbot/sumbench/internal/bench"
	"github.com/betbot/sumbench/internal/trisum"
	"github.com/betbot/sumbench/internal/tui"
	"github.com/betbot/sumbench/pkg/config"
	"github.com/betbot/sumbench/pkg/logger"
)

func firstExistingFile(paths ...string) (string, bool) {
	for _, p := range paths {
		if strings.TrimSpace(p) == "" {
			continue
		}
		if _, err := os.Stat(p); err == nil {
			return p, true
		}
	}
	return "", false
}

func main() {
	// 解析命令行参数
	configPath := flag.String("config", "", "配置文件路径（支持 .yaml, .yml, .json）")
	envPath := flag.String("env", ".env", ".env 文件路径")
	n := flag.Int64("n", config.DefaultN, "求和上界 n")
	strategies := flag.String("strategies", "", "策略 ID（逗号分隔）："+strings.Join(trisum.IDs(), ","))
	plain := flag.Bool("plain", false, "纯文本输出（不加颜色）")
	complexity := flag.Bool("complexity", false, "每行输出复杂度")
	useTUI := flag.Bool("tui", false, "交互式终端界面")
	flag.Parse()

	set := map[string]bool{}
	flag.Visit(func(f *flag.Flag) { set[f.Name] = true })

	if err := config.LoadDotEnv(*envPath); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}

	// 未指定配置文件时尝试默认位置
	path := *configPath
	if path == "" {
		if p, ok := firstExistingFile("yml/sumbench.yaml", "sumbench.yaml"); ok {
			path = p
		}
	}

	cfg, err := config.LoadFromFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "加载配置失败: %v\n", err)
		os.Exit(1)
	}

	// 命令行覆盖环境变量和配置文件
	var o config.Overrides
	if set["n"] {
		o.N = n
	}
	if set["strategies"] {
		o.Strategies = strategies
	}
	if set["plain"] {
		o.Plain = plain
	}
	if set["complexity"] {
		o.ShowComplexity = complexity
	}
	if set["tui"] {
		o.TUI = useTUI
	}
	cfg.ApplyOverrides(o)
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "配置无效: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(logger.Config{
		Level:      cfg.Log.Level,
		OutputFile: cfg.Log.File,
		MaxSize:    cfg.Log.MaxSize,
		MaxBackups: cfg.Log.MaxBackups,
		MaxAge:     cfg.Log.MaxAge,
		Compress:   cfg.Log.Compress,
	}); err != nil {
		fmt.Fprintf(os.Stderr, "初始化日志失败: %v\n", err)
		os.Exit(1)
	}
	if path != "" {
		logger.Infof("使用配置文件: %s", path)
	}

	selected, err := trisum.Select(cfg.Strategies)
	if err != nil {
		logger.Errorf("选择策略失败: %v", err)
		os.Exit(1)
	}

	runner := bench.NewRunner(cfg.N, selected...)
	runner.Log = logger.WithFields(logrus.Fields{"n": cfg.N})
	opts := bench.RenderOptions{Plain: cfg.Plain, ShowComplexity: cfg.ShowComplexity}

	if cfg.TUI {
		// 终端界面运行期间日志只写文件，避免打乱画面
		restore := logger.SuppressConsole()
		rep, err := tui.Run(runner, opts)
		restore()
		if err != nil {
			logger.Errorf("%v", err)
			os.Exit(1)
		}
		if rep != nil {
			logger.WithField("run_id", rep.RunID).Infof("基准完成: ok=%v", rep.Verdict.OK)
		}
		return
	}

	rep, err := runner.Run()
	if err != nil {
		logger.Errorf("%v", err)
		os.Exit(1)
	}
	if err := bench.Render(os.Stdout, rep, opts); err != nil {
		logger.Errorf("输出报告失败: %v", err)
		os.Exit(1)
	}
	// 结果不一致只做提示，退出码仍为 0
	logger.WithField("run_id", rep.RunID).Infof("基准完成: ok=%v", rep.Verdict.OK)
}
