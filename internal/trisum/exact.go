package trisum

import (
	"math"

	"github.com/holiman/uint256"
	"github.com/pkg/errors"
)

// MaxN 是 S(n) 仍能放进 int64 的最大 n（S(MaxN) = 9223371416043870029）
const MaxN int64 = 3_810_777

var (
	ErrNegative   = errors.New("n 不能为负数")
	ErrOutOfRange = errors.New("n 超出 int64 精确范围")
)

// CheckN 校验 n 是否在 [0, MaxN] 内
func CheckN(n int64) error {
	if n < 0 {
		return errors.Wrapf(ErrNegative, "n=%d", n)
	}
	if n > MaxN {
		return errors.Wrapf(ErrOutOfRange, "n=%d max=%d", n, MaxN)
	}
	return nil
}

// Exact 用 256 位整数计算 S(n)，任何 int64 输入都不会溢出。
// 用作校验各策略是否发生 int64 回绕。
func Exact(n int64) *uint256.Int {
	z := new(uint256.Int)
	if n <= 0 {
		return z
	}
	u := uint64(n)
	z.SetUint64(u)
	z.Mul(z, uint256.NewInt(u+1))
	z.Mul(z, uint256.NewInt(u+2))
	return z.Div(z, uint256.NewInt(6))
}

// ExactInt64 返回精确值，第二个返回值表示是否能放进 int64
func ExactInt64(n int64) (int64, bool) {
	z := Exact(n)
	if !z.IsUint64() || z.Uint64() > math.MaxInt64 {
		return 0, false
	}
	return int64(z.Uint64()), true
}
