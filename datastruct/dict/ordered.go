package dict

import (
	"errors"
	"fmt"
	"strings"

	"github.com/duke-git/lancet/v2/strutil"
	"odict/datastruct/text"
)

// 诊断日志中key的最大长度
const maxLoggedKey = 64

// Options 创建字典时的参数，零值字段使用默认值
type Options struct {
	InitialCapacity int    // 每个key/value缓冲区的初始容量
	MemoryLimit     int    // key和value可占用的总字节数，0表示不限制
	Logger          Logger // 失败路径上的诊断日志
	Lookup          Lookup // 查找策略，默认LinearScan
}

// OrderedDict 按插入顺序保存键值对，查找为线性扫描
type OrderedDict struct {
	entries   []*Entry
	count     int
	capacity  int
	budget    *text.Budget
	lookup    Lookup
	logger    Logger
	destroyed bool
}

type nopLogger struct{}

func (nopLogger) Debugf(string, ...any) {}

// New 创建一个空字典
func New(opts *Options) (*OrderedDict, error) {
	if opts == nil {
		opts = &Options{}
	}
	capacity := opts.InitialCapacity
	if capacity <= 0 {
		capacity = text.InitialCapacity
	}
	budget := text.NewBudget(opts.MemoryLimit)
	// 至少要能放下一个条目的key和value
	if budget.Limit() > 0 && budget.Limit() < 2*capacity {
		return nil, fmt.Errorf("%w: memory limit %d is below one entry (%d bytes)", ErrAllocation, budget.Limit(), 2*capacity)
	}
	d := &OrderedDict{
		capacity: capacity,
		budget:   budget,
		lookup:   opts.Lookup,
		logger:   opts.Logger,
	}
	if d.lookup == nil {
		d.lookup = LinearScan{}
	}
	if d.logger == nil {
		d.logger = nopLogger{}
	}
	return d, nil
}

func (d *OrderedDict) invalid() bool {
	return d == nil || d.destroyed
}

func (d *OrderedDict) mustBeValid() {
	if d.invalid() {
		panic(ErrDestroyed)
	}
}

// find nil表示缺失的key，与空key不同，永远找不到
func (d *OrderedDict) find(key []byte) int {
	if key == nil {
		return -1
	}
	return d.lookup.Find(d.entries, key)
}

// Put 插入或更新key，key已存在时只替换value，位置不变
// key或val为nil时不做任何操作。存储分配失败时整个字典被销毁并返回nil
func (d *OrderedDict) Put(key, val []byte) (Dict, error) {
	if d.invalid() {
		return nil, ErrDestroyed
	}
	if key == nil || val == nil {
		return d, nil
	}
	if i := d.find(key); i >= 0 {
		if err := d.entries[i].value.Replace(val); err != nil {
			return nil, d.abort(err)
		}
		return d, nil
	}
	entry, err := d.newEntry(key, val)
	if err != nil {
		return nil, d.abort(err)
	}
	d.entries = append(d.entries, entry)
	d.count++
	return d, nil
}

func (d *OrderedDict) newEntry(key, val []byte) (*Entry, error) {
	k, err := text.NewBufferFrom(key, d.capacity, d.budget)
	if err != nil {
		return nil, err
	}
	v, err := text.NewBufferFrom(val, d.capacity, d.budget)
	if err != nil {
		k.Release()
		return nil, err
	}
	return &Entry{key: k, value: v, position: len(d.entries)}, nil
}

// abort 销毁字典，返回包装后的ErrAllocation
func (d *OrderedDict) abort(cause error) error {
	d.logger.Debugf("could not allocate memory, dictionary with %d entries destroyed: %v", d.count, cause)
	d.Destroy()
	return fmt.Errorf("%w: %w", ErrAllocation, cause)
}

// Get 返回key对应的value，找不到时返回ErrKeyNotFound
func (d *OrderedDict) Get(key []byte) (string, error) {
	e, err := d.Find(key)
	if err != nil {
		if errors.Is(err, ErrKeyNotFound) {
			d.logger.Debugf("the key '%s' does not exist", strutil.Substring(string(key), 0, maxLoggedKey))
		}
		return "", err
	}
	return e.Value(), nil
}

// Find 返回key对应的条目本身
func (d *OrderedDict) Find(key []byte) (*Entry, error) {
	if d.invalid() {
		return nil, ErrDestroyed
	}
	i := d.find(key)
	if i < 0 {
		return nil, fmt.Errorf("%w: '%s'", ErrKeyNotFound, key)
	}
	return d.entries[i], nil
}

func (d *OrderedDict) Exists(key []byte) bool {
	d.mustBeValid()
	return d.find(key) >= 0
}

func (d *OrderedDict) Len() int {
	d.mustBeValid()
	return d.count
}

// ForEach 按插入顺序遍历，consumer返回false时终止
func (d *OrderedDict) ForEach(consumer Consumer) {
	d.mustBeValid()
	for _, e := range d.entries {
		if !consumer(e.Key(), e.Value()) {
			break
		}
	}
}

// Keys 按插入顺序返回所有key
func (d *OrderedDict) Keys() []string {
	keys := make([]string, 0, d.Len())
	d.ForEach(func(key string, val string) bool {
		keys = append(keys, key)
		return true
	})
	return keys
}

// MemoryUsed 返回key和value缓冲区占用的字节数
func (d *OrderedDict) MemoryUsed() int {
	d.mustBeValid()
	return d.budget.Used()
}

// String 输出形如 {'k1': 'v1', 'k2': 'v2'} 的文本，空key的条目被跳过
func (d *OrderedDict) String() string {
	d.mustBeValid()
	var sb strings.Builder
	sb.WriteByte('{')
	first := true
	for _, e := range d.entries {
		if !e.renderable() {
			continue
		}
		// 只有前面已经输出过条目时才写分隔符
		if !first {
			sb.WriteString(", ")
		}
		first = false
		sb.WriteByte('\'')
		sb.WriteString(e.Key())
		sb.WriteString("': '")
		sb.WriteString(e.Value())
		sb.WriteByte('\'')
	}
	sb.WriteByte('}')
	return sb.String()
}

// Destroy 释放所有条目，之后该字典不可再使用。总是返回nil，调用方应以 d = d.Destroy() 的方式丢弃句柄
func (d *OrderedDict) Destroy() Dict {
	if d.invalid() {
		return nil
	}
	for _, e := range d.entries {
		e.release()
	}
	d.entries = nil
	d.count = 0
	d.destroyed = true
	return nil
}
