package text

import "github.com/duke-git/lancet/v2/mathutil"

// InitialCapacity 新建Buffer的默认容量
const InitialCapacity = 10

// Buffer 是一个可增长的字节缓冲区，所有分配都从budget中扣除
type Buffer struct {
	data   []byte
	budget *Budget
}

// NewBuffer 创建容量为capacity的空Buffer，capacity<=0时使用InitialCapacity
func NewBuffer(capacity int, budget *Budget) (*Buffer, error) {
	if capacity <= 0 {
		capacity = InitialCapacity
	}
	if err := budget.Reserve(capacity); err != nil {
		return nil, err
	}
	return &Buffer{
		data:   make([]byte, 0, capacity),
		budget: budget,
	}, nil
}

// NewBufferFrom 创建一个内容为p的Buffer，容量至少为capacity
func NewBufferFrom(p []byte, capacity int, budget *Budget) (*Buffer, error) {
	buf, err := NewBuffer(capacity, budget)
	if err != nil {
		return nil, err
	}
	if err = buf.Append(p); err != nil {
		buf.Release()
		return nil, err
	}
	return buf, nil
}

// grow 保证还能写入n个字节，容量按倍数增长，保证追加操作均摊O(1)
func (b *Buffer) grow(n int) error {
	need := len(b.data) + n
	if need <= cap(b.data) {
		return nil
	}
	newCap := mathutil.Max(cap(b.data)*2, need, InitialCapacity)
	if err := b.budget.Reserve(newCap); err != nil {
		return err
	}
	data := make([]byte, len(b.data), newCap)
	copy(data, b.data)
	b.budget.Free(cap(b.data))
	b.data = data
	return nil
}

// AppendByte 在末尾追加一个字节
func (b *Buffer) AppendByte(c byte) error {
	if err := b.grow(1); err != nil {
		return err
	}
	b.data = append(b.data, c)
	return nil
}

// Append 在末尾追加p，失败时内容不变
func (b *Buffer) Append(p []byte) error {
	if len(p) == 0 {
		return nil
	}
	if err := b.grow(len(p)); err != nil {
		return err
	}
	b.data = append(b.data, p...)
	return nil
}

// Replace 用p替换全部内容：先归还旧空间，再按p的大小申请新空间并拷贝
// 申请失败时重新占用旧空间，内容不变
func (b *Buffer) Replace(p []byte) error {
	size := mathutil.Max(len(p), InitialCapacity)
	old := cap(b.data)
	b.budget.Free(old)
	if err := b.budget.Reserve(size); err != nil {
		_ = b.budget.Reserve(old)
		return err
	}
	data := make([]byte, len(p), size)
	copy(data, p)
	b.data = data
	return nil
}

// Release 释放占用的存储，之后Buffer为空
func (b *Buffer) Release() {
	if b == nil {
		return
	}
	b.budget.Free(cap(b.data))
	b.data = nil
}

func (b *Buffer) Len() int {
	if b == nil {
		return 0
	}
	return len(b.data)
}

func (b *Buffer) Cap() int {
	return cap(b.data)
}

// String 返回内容的只读副本
func (b *Buffer) String() string {
	if b == nil {
		return ""
	}
	return string(b.data)
}

// Equal 判断内容是否与p逐字节相同
func (b *Buffer) Equal(p []byte) bool {
	return string(b.data) == string(p)
}
