package bench

// Mismatch 某个策略的结果与期望值不一致
type Mismatch struct {
	StrategyID string
	Got        int64
	Want       int64
}

// Verdict 交叉校验结果（仅提示，不作为错误返回）
type Verdict struct {
	OK         bool
	Mismatches []Mismatch
	// Overflow 为 true 表示精确值超出 int64，各策略结果均已回绕
	Overflow bool
}

// Verify 检查所有样本两两相等且等于精确值。
// expected 为 ExactInt64 的结果；fits=false 时只做两两比较并标记 Overflow。
func Verify(samples []Sample, expected int64, fits bool) Verdict {
	v := Verdict{OK: true, Overflow: !fits}
	if len(samples) == 0 {
		return v
	}
	want := expected
	if !fits {
		// 没有可信的精确值，以第一个策略为基准
		want = samples[0].Result
		v.OK = false
	}
	for _, s := range samples {
		if s.Result != want {
			v.OK = false
			v.Mismatches = append(v.Mismatches, Mismatch{StrategyID: s.StrategyID, Got: s.Result, Want: want})
		}
	}
	return v
}
