package metrics

import "expvar"

var (
	BenchRuns           = expvar.NewInt("bench_runs")
	BenchMismatches     = expvar.NewInt("bench_mismatches")
	SpeedUpSkipped      = expvar.NewInt("bench_speedup_skipped")
	StrategyElapsedNs   = expvar.NewMap("strategy_elapsed_ns")
	StrategyInvocations = expvar.NewMap("strategy_invocations")
)

// ObserveSample 记录一次策略调用的耗时
func ObserveSample(strategyID string, elapsedNs int64) {
	StrategyElapsedNs.Add(strategyID, elapsedNs)
	StrategyInvocations.Add(strategyID, 1)
}
