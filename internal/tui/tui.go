// Package tui 交互式终端界面：逐个运行策略并展示进度，全部完成后显示报告。
package tui

import (
	"fmt"
	"io"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/pkg/errors"

	"github.com/betbot/sumbench/internal/bench"
	"github.com/betbot/sumbench/internal/trisum"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15")).
			Background(lipgloss.Color("62")).
			Padding(0, 1)

	doneStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("2")) // 绿色

	pendingStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("238"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

// sampleMsg 单个策略计时完成
type sampleMsg bench.Sample

// model 界面状态
type model struct {
	runner  *bench.Runner
	opts    bench.RenderOptions
	out     io.Writer
	samples []bench.Sample
	report  *bench.Report
}

func newModel(r *bench.Runner, opts bench.RenderOptions, out io.Writer) model {
	return model{runner: r, opts: opts, out: out}
}

// measureCmd 在 tea.Cmd 中运行第 idx 个策略；上一个返回后才会发出下一个，保证顺序计时
func (m model) measureCmd(idx int) tea.Cmd {
	s := m.runner.Strategies[idx]
	return func() tea.Msg {
		return sampleMsg(m.runner.Measure(s))
	}
}

func (m model) Init() tea.Cmd {
	if len(m.runner.Strategies) == 0 {
		return tea.Quit
	}
	return m.measureCmd(0)
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			return m, tea.Quit
		}

	case sampleMsg:
		m.samples = append(m.samples, bench.Sample(msg))
		if len(m.samples) < len(m.runner.Strategies) {
			return m, m.measureCmd(len(m.samples))
		}
		m.report = bench.NewReport(m.runner.N, m.samples)
	}
	return m, nil
}

func (m model) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("sumbench  n=%d", m.runner.N)))
	b.WriteString("\n\n")

	if m.report != nil {
		b.WriteString(bench.Format(m.out, m.report, m.opts))
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("按 q 退出"))
		b.WriteString("\n")
		return b.String()
	}

	for i, s := range m.runner.Strategies {
		switch {
		case i < len(m.samples):
			b.WriteString(doneStyle.Render(fmt.Sprintf("✓ %-20s %d ns", s.Name, m.samples[i].Elapsed.Nanoseconds())))
		case i == len(m.samples):
			b.WriteString(fmt.Sprintf("… %-20s 运行中 (%s)", s.Name, s.Complexity))
		default:
			b.WriteString(pendingStyle.Render(fmt.Sprintf("  %-20s 等待", s.Name)))
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("按 q 退出"))
	b.WriteString("\n")
	return b.String()
}

// Run 启动交互界面；用户在全部完成前退出时返回的报告为 nil
func Run(r *bench.Runner, opts bench.RenderOptions) (*bench.Report, error) {
	if err := trisum.CheckN(r.N); err != nil {
		return nil, errors.Wrap(err, "基准参数无效")
	}
	p := tea.NewProgram(newModel(r, opts, os.Stdout))
	final, err := p.Run()
	if err != nil {
		return nil, errors.Wrap(err, "运行终端界面失败")
	}
	return final.(model).report, nil
}
