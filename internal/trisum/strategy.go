package trisum

import (
	"strings"

	"github.com/pkg/errors"
)

// 策略 ID
const (
	IDNestedLoop = "nested"
	IDPerTerm    = "per_term"
	IDClosedForm = "closed_form"
	IDLazySeq    = "lazy_seq"
)

var ErrUnknownStrategy = errors.New("未知策略")

// Strategy 一种 S(n) 的计算方式
type Strategy struct {
	ID         string
	Name       string // 输出时显示的名字
	Complexity string
	Sum        func(n int64) int64
}

var defaultStrategies = []Strategy{
	{ID: IDNestedLoop, Name: "Inefficient Method", Complexity: "O(n²)", Sum: NestedLoopSum},
	{ID: IDPerTerm, Name: "Optimized Method", Complexity: "O(n)", Sum: FormulaPerTermSum},
	{ID: IDClosedForm, Name: "Arithmetic Method", Complexity: "O(1)", Sum: ClosedFormSum},
	{ID: IDLazySeq, Name: "Stream Method", Complexity: "O(n)", Sum: LazySequenceSum},
}

// Default 按基准顺序返回全部四种策略（返回副本，调用方可随意修改）
func Default() []Strategy {
	out := make([]Strategy, len(defaultStrategies))
	copy(out, defaultStrategies)
	return out
}

// IDs 返回全部策略 ID
func IDs() []string {
	ids := make([]string, 0, len(defaultStrategies))
	for _, s := range defaultStrategies {
		ids = append(ids, s.ID)
	}
	return ids
}

// Lookup 按 ID 查找策略
func Lookup(id string) (Strategy, error) {
	id = strings.TrimSpace(id)
	for _, s := range defaultStrategies {
		if s.ID == id {
			return s, nil
		}
	}
	return Strategy{}, errors.Wrapf(ErrUnknownStrategy, "id=%q（可选：%s）", id, strings.Join(IDs(), ","))
}

// Select 按给定顺序挑选策略；ids 为空时返回 Default()
// 重复的 ID 只保留第一次出现
func Select(ids []string) ([]Strategy, error) {
	if len(ids) == 0 {
		return Default(), nil
	}
	seen := make(map[string]bool, len(ids))
	out := make([]Strategy, 0, len(ids))
	for _, id := range ids {
		s, err := Lookup(id)
		if err != nil {
			return nil, err
		}
		if seen[s.ID] {
			continue
		}
		seen[s.ID] = true
		out = append(out, s)
	}
	return out, nil
}
