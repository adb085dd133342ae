package dict

import "errors"

var (
	ErrKeyNotFound = errors.New("key not found")
	ErrAllocation  = errors.New("could not allocate memory")
	ErrDestroyed   = errors.New("dictionary destroyed")
)

// Consumer 用于按插入顺序遍历Dict，返回false时遍历终止
type Consumer func(key string, val string) bool

// Logger 接收字典在失败路径上的诊断信息，*logger.Logger 实现了该接口
type Logger interface {
	Debugf(format string, v ...any)
}

// Lookup 在entries中查找key，返回第一个匹配的下标，找不到返回-1
type Lookup interface {
	Find(entries []*Entry, key []byte) int
}

// Dict 是有序字符串字典的接口定义
type Dict interface {
	Put(key, val []byte) (Dict, error)
	Get(key []byte) (string, error)
	Find(key []byte) (*Entry, error)
	Exists(key []byte) bool
	Len() int
	ForEach(consumer Consumer)
	Keys() []string
	String() string
	Destroy() Dict
}

var _ Dict = (*OrderedDict)(nil)
