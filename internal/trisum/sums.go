// Package trisum 计算三角数之和 S(n) = Σ_{i=1}^{n} Σ_{j=1}^{i} j = n(n+1)(n+2)/6。
//
// 四种策略结果完全一致，只是时间复杂度不同，供 bench 包做耗时对比。
// 所有运算均为 int64：0 <= n <= MaxN 时结果精确；n < 0 视为空区间返回 0；
// n > MaxN 时按 int64 回绕（不报错），调用方应先用 CheckN 校验。
package trisum

// Triangular 返回第 k 个三角数 k(k+1)/2，k <= 0 时为 0
func Triangular(k int64) int64 {
	if k <= 0 {
		return 0
	}
	return k * (k + 1) / 2
}

// NestedLoopSum 基准实现：对每个 i 重新累加 1..i
// 时间 O(n²)，空间 O(1)
func NestedLoopSum(n int64) int64 {
	var total int64
	for i := int64(1); i <= n; i++ {
		total += sumUpTo(i)
	}
	return total
}

func sumUpTo(k int64) int64 {
	var sum int64
	for j := int64(1); j <= k; j++ {
		sum += j
	}
	return sum
}

// FormulaPerTermSum 每一项直接用 Triangular(i)，省掉内层循环
// 时间 O(n)，空间 O(1)
func FormulaPerTermSum(n int64) int64 {
	var total int64
	for i := int64(1); i <= n; i++ {
		total += Triangular(i)
	}
	return total
}

// ClosedFormSum 闭式解 n(n+1)(n+2)/6
// 先把因子 2 和 3 约掉再相乘，MaxN 以内中间结果不会溢出
// 时间 O(1)，空间 O(1)
func ClosedFormSum(n int64) int64 {
	if n <= 0 {
		return 0
	}
	a, b, c := n, n+1, n+2
	// 连续三个数中必有一个是 2 的倍数、一个是 3 的倍数
	switch {
	case a%2 == 0:
		a /= 2
	case b%2 == 0:
		b /= 2
	}
	switch {
	case a%3 == 0:
		a /= 3
	case b%3 == 0:
		b /= 3
	default:
		c /= 3
	}
	return a * b * c
}

// LazySequenceSum 序列管道写法：Range(1,n) -> Map(Triangular) -> Sum
// 与 FormulaPerTermSum 等价；序列是惰性的，不会物化到内存
// 时间 O(n)，空间 O(1)
func LazySequenceSum(n int64) int64 {
	return Sum(Map(Range(1, n), Triangular))
}
