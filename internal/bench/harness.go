// Package bench 依次运行各求和策略、计时、计算加速比并交叉校验结果。
// 全程单线程顺序执行：一个策略计时结束后才开始下一个。
package bench

import (
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/betbot/sumbench/internal/metrics"
	"github.com/betbot/sumbench/internal/trisum"
)

// Sample 一次策略调用的计时样本（不持久化）
type Sample struct {
	StrategyID string
	Name       string
	Complexity string
	Result     int64
	Elapsed    time.Duration
}

// Report 一次基准运行的完整结果
type Report struct {
	RunID    string
	N        int64
	Samples  []Sample
	Expected int64
	Verdict  Verdict
	// SpeedUp 为嵌套循环相对逐项公式的倍数；HasSpeedUp=false 时不输出
	SpeedUp    decimal.Decimal
	HasSpeedUp bool
}

// Clock 返回当前时间；time.Now 自带单调时钟读数
type Clock func() time.Time

// Runner 基准执行器
type Runner struct {
	N          int64
	Strategies []trisum.Strategy
	Clock      Clock
	Log        *logrus.Entry
}

// NewRunner 创建执行器；不传策略时使用全部四种
func NewRunner(n int64, strategies ...trisum.Strategy) *Runner {
	if len(strategies) == 0 {
		strategies = trisum.Default()
	}
	return &Runner{
		N:          n,
		Strategies: strategies,
		Clock:      time.Now,
		Log:        logrus.NewEntry(logrus.StandardLogger()),
	}
}

// Measure 对单个策略调用一次并计时
func (r *Runner) Measure(s trisum.Strategy) Sample {
	clock := r.Clock
	if clock == nil {
		clock = time.Now
	}
	start := clock()
	result := s.Sum(r.N)
	elapsed := clock().Sub(start)

	metrics.ObserveSample(s.ID, elapsed.Nanoseconds())
	if r.Log != nil {
		r.Log.WithFields(logrus.Fields{
			"strategy":   s.ID,
			"result":     result,
			"elapsed_ns": elapsed.Nanoseconds(),
		}).Debug("策略计时完成")
	}
	return Sample{
		StrategyID: s.ID,
		Name:       s.Name,
		Complexity: s.Complexity,
		Result:     result,
		Elapsed:    elapsed,
	}
}

// Run 校验 n 后依次计时全部策略并生成报告
func (r *Runner) Run() (*Report, error) {
	if err := trisum.CheckN(r.N); err != nil {
		return nil, errors.Wrap(err, "基准参数无效")
	}
	if len(r.Strategies) == 0 {
		return nil, errors.New("没有可运行的策略")
	}
	samples := make([]Sample, 0, len(r.Strategies))
	for _, s := range r.Strategies {
		samples = append(samples, r.Measure(s))
	}
	rep := NewReport(r.N, samples)
	if r.Log != nil && !rep.Verdict.OK {
		r.Log.WithField("run_id", rep.RunID).Warnf("结果不一致: mismatches=%d overflow=%v", len(rep.Verdict.Mismatches), rep.Verdict.Overflow)
	}
	return rep, nil
}

// NewReport 由样本构建报告，只做校验和加速比计算，不计时
func NewReport(n int64, samples []Sample) *Report {
	rep := &Report{
		RunID:   uuid.NewString(),
		N:       n,
		Samples: samples,
	}
	want, fits := trisum.ExactInt64(n)
	rep.Expected = want
	rep.Verdict = Verify(samples, want, fits)

	slow, okSlow := rep.Find(trisum.IDNestedLoop)
	fast, okFast := rep.Find(trisum.IDPerTerm)
	if okSlow && okFast {
		rep.SpeedUp, rep.HasSpeedUp = SpeedUp(slow.Elapsed, fast.Elapsed)
		if !rep.HasSpeedUp {
			metrics.SpeedUpSkipped.Add(1)
		}
	}

	metrics.BenchRuns.Add(1)
	if !rep.Verdict.OK {
		metrics.BenchMismatches.Add(1)
	}
	return rep
}

// Find 按策略 ID 查找样本
func (r *Report) Find(id string) (Sample, bool) {
	for _, s := range r.Samples {
		if s.StrategyID == id {
			return s, true
		}
	}
	return Sample{}, false
}
