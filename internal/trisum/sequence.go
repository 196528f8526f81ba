package trisum

import "iter"

// Range 返回闭区间 [from, to] 的惰性整数序列；from > to 时为空序列。
// 每次 range 都会从头开始，可重复遍历。
func Range(from, to int64) iter.Seq[int64] {
	return func(yield func(int64) bool) {
		for i := from; i <= to; i++ {
			if !yield(i) {
				return
			}
			if i == to {
				// 防止 to == MaxInt64 时 i++ 回绕
				return
			}
		}
	}
}

// Map 对序列中每个元素应用 f
func Map(seq iter.Seq[int64], f func(int64) int64) iter.Seq[int64] {
	return func(yield func(int64) bool) {
		for v := range seq {
			if !yield(f(v)) {
				return
			}
		}
	}
}

// Sum 折叠求和
func Sum(seq iter.Seq[int64]) int64 {
	var total int64
	for v := range seq {
		total += v
	}
	return total
}
