package bench

import (
	"time"

	"github.com/shopspring/decimal"
)

// SpeedUp 返回 slow/fast 倍数；fast 为 0（测不到耗时）时不做除法，ok=false
func SpeedUp(slow, fast time.Duration) (ratio decimal.Decimal, ok bool) {
	if fast <= 0 {
		return decimal.Zero, false
	}
	return decimal.NewFromInt(int64(slow)).Div(decimal.NewFromInt(int64(fast))), true
}
