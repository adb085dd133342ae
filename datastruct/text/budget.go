package text

import (
	"errors"
	"fmt"
)

// ErrAllocation 表示存储空间无法分配或扩容
var ErrAllocation = errors.New("unable to allocate storage")

// Budget 记录一组Buffer占用的字节数，limit为0表示不限制
type Budget struct {
	limit int
	used  int
}

func NewBudget(limit int) *Budget {
	if limit < 0 {
		limit = 0
	}
	return &Budget{limit: limit}
}

// Reserve 申请n个字节，超过上限时返回ErrAllocation且不改变已用量
func (b *Budget) Reserve(n int) error {
	if b == nil || n <= 0 {
		return nil
	}
	if b.limit > 0 && b.used+n > b.limit {
		return fmt.Errorf("%w: need %d bytes, %d of %d in use", ErrAllocation, n, b.used, b.limit)
	}
	b.used += n
	return nil
}

// Free 归还n个字节
func (b *Budget) Free(n int) {
	if b == nil || n <= 0 {
		return
	}
	b.used -= n
	if b.used < 0 {
		b.used = 0
	}
}

func (b *Budget) Used() int {
	if b == nil {
		return 0
	}
	return b.used
}

func (b *Budget) Limit() int {
	if b == nil {
		return 0
	}
	return b.limit
}
