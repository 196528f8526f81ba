package bench

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	headerText   = "=== Sum Calculation Performance Comparison ==="
	matchText    = "✅ All methods produce identical results"
	mismatchText = "❌ Results don't match - check implementation"
)

// RenderOptions 输出选项
type RenderOptions struct {
	Plain          bool // 不加任何样式
	ShowComplexity bool // 每行追加复杂度标注
}

type styleFunc func(strs ...string) string

type styles struct {
	header styleFunc
	name   styleFunc
	result styleFunc
	ok     styleFunc
	bad    styleFunc
	note   styleFunc
}

func noStyle(strs ...string) string { return strings.Join(strs, " ") }

func newStyles(w io.Writer, plain bool) styles {
	if plain {
		return styles{header: noStyle, name: noStyle, result: noStyle, ok: noStyle, bad: noStyle, note: noStyle}
	}
	// 绑定到 w：非终端输出时 lipgloss 自动降级为无颜色
	r := lipgloss.NewRenderer(w)
	return styles{
		header: r.NewStyle().Bold(true).Foreground(lipgloss.Color("15")).Render,
		name:   r.NewStyle().Foreground(lipgloss.Color("62")).Render,
		result: r.NewStyle().Bold(true).Render,
		ok:     r.NewStyle().Foreground(lipgloss.Color("2")).Render,
		bad:    r.NewStyle().Foreground(lipgloss.Color("1")).Render,
		note:   r.NewStyle().Foreground(lipgloss.Color("238")).Render,
	}
}

// Render 把报告写成可读文本
func Render(w io.Writer, rep *Report, opts RenderOptions) error {
	_, err := io.WriteString(w, Format(w, rep, opts))
	return err
}

// Format 返回报告文本；w 只用于探测终端颜色能力，可为 nil
func Format(w io.Writer, rep *Report, opts RenderOptions) string {
	plain := opts.Plain || w == nil
	st := newStyles(w, plain)

	width := 0
	for _, s := range rep.Samples {
		if l := len(s.Name) + 1; l > width {
			width = l
		}
	}

	var b strings.Builder
	b.WriteString(st.header(headerText))
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "Results (n=%d):\n", rep.N)
	for _, s := range rep.Samples {
		label := fmt.Sprintf("%-*s", width, s.Name+":")
		line := fmt.Sprintf("%s %s (Time: %d ns)",
			st.name(label), st.result(fmt.Sprintf("%d", s.Result)), s.Elapsed.Nanoseconds())
		if opts.ShowComplexity && s.Complexity != "" {
			line += " " + st.note("["+s.Complexity+"]")
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	if rep.HasSpeedUp {
		fmt.Fprintf(&b, "\nPerformance Improvement: %sx faster\n", rep.SpeedUp.StringFixed(2))
	}

	if rep.Verdict.OK {
		b.WriteString(st.ok(matchText))
	} else {
		b.WriteString(st.bad(mismatchText))
	}
	b.WriteString("\n")
	if rep.Verdict.Overflow {
		b.WriteString(st.bad(fmt.Sprintf("n=%d 的结果超出 int64，已发生回绕", rep.N)))
		b.WriteString("\n")
	}
	for _, m := range rep.Verdict.Mismatches {
		b.WriteString(st.note(fmt.Sprintf("  %s: got=%d want=%d", m.StrategyID, m.Got, m.Want)))
		b.WriteString("\n")
	}
	return b.String()
}
