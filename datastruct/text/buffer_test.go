package text

import (
	"errors"
	"strings"
	"testing"
)

func TestBufferAppendByte(t *testing.T) {
	buf, err := NewBuffer(0, nil)
	if err != nil {
		t.Fatal(err)
	}
	if buf.Cap() != InitialCapacity {
		t.Errorf("initial capacity = %d, want %d", buf.Cap(), InitialCapacity)
	}
	src := "the quick brown fox jumps over the lazy dog"
	for i := 0; i < len(src); i++ {
		if err := buf.AppendByte(src[i]); err != nil {
			t.Fatal(err)
		}
	}
	if buf.String() != src {
		t.Errorf("content = %q, want %q", buf.String(), src)
	}
	if buf.Len() != len(src) || buf.Cap() < len(src) {
		t.Errorf("len = %d cap = %d", buf.Len(), buf.Cap())
	}
}

func TestBufferGrowthIsGeometric(t *testing.T) {
	buf, _ := NewBuffer(0, nil)
	grows := 0
	last := buf.Cap()
	for i := 0; i < 10000; i++ {
		_ = buf.AppendByte('x')
		if buf.Cap() != last {
			grows++
			last = buf.Cap()
		}
	}
	if grows > 20 {
		t.Errorf("buffer grew %d times for 10000 bytes", grows)
	}
}

func TestBufferReplace(t *testing.T) {
	budget := NewBudget(0)
	buf, err := NewBufferFrom([]byte(strings.Repeat("a", 100)), 0, budget)
	if err != nil {
		t.Fatal(err)
	}
	if err = buf.Replace([]byte("short")); err != nil {
		t.Fatal(err)
	}
	if buf.String() != "short" {
		t.Errorf("content = %q", buf.String())
	}
	if budget.Used() != InitialCapacity {
		t.Errorf("budget used = %d after replace, want %d", budget.Used(), InitialCapacity)
	}
	buf.Release()
	if budget.Used() != 0 {
		t.Errorf("budget used = %d after release", budget.Used())
	}
	if buf.Len() != 0 {
		t.Errorf("released buffer len = %d", buf.Len())
	}
}

func TestBufferBudgetExceeded(t *testing.T) {
	budget := NewBudget(25)
	buf, err := NewBuffer(0, budget)
	if err != nil {
		t.Fatal(err)
	}
	if err = buf.Append([]byte("0123456789")); err != nil {
		t.Fatal(err)
	}
	// 扩容到20需要额外20字节，超过上限
	err = buf.AppendByte('x')
	if !errors.Is(err, ErrAllocation) {
		t.Fatalf("err = %v, want ErrAllocation", err)
	}
	if buf.String() != "0123456789" {
		t.Errorf("content changed after failed append: %q", buf.String())
	}
	if err = buf.Replace([]byte("0123456789abcdef")); err != nil {
		t.Errorf("replace within budget: %v", err)
	}
	if err = buf.Replace([]byte(strings.Repeat("y", 26))); !errors.Is(err, ErrAllocation) {
		t.Errorf("replace err = %v, want ErrAllocation", err)
	}
	if buf.String() != "0123456789abcdef" {
		t.Errorf("content changed after failed replace: %q", buf.String())
	}
	if budget.Used() != 16 {
		t.Errorf("budget used = %d, want 16", budget.Used())
	}
}

func TestNewBufferOverBudget(t *testing.T) {
	if _, err := NewBuffer(0, NewBudget(5)); !errors.Is(err, ErrAllocation) {
		t.Errorf("err = %v, want ErrAllocation", err)
	}
	budget := NewBudget(12)
	if _, err := NewBufferFrom([]byte("longer than twelve"), 0, budget); !errors.Is(err, ErrAllocation) {
		t.Errorf("err = %v, want ErrAllocation", err)
	}
	if budget.Used() != 0 {
		t.Errorf("failed construction leaked %d bytes", budget.Used())
	}
}

func TestBufferEqual(t *testing.T) {
	buf, _ := NewBufferFrom([]byte("Hello"), 0, nil)
	if !buf.Equal([]byte("Hello")) {
		t.Error("expected equal")
	}
	if buf.Equal([]byte("hello")) || buf.Equal([]byte("Hell")) || buf.Equal([]byte("Hello ")) {
		t.Error("comparison must be exact")
	}
}
