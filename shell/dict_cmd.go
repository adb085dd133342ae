package shell

import (
	"errors"
	"fmt"

	"odict/datastruct/dict"
	"odict/lib/wildcard"
	"odict/logger"
)

// dictErrReply 把字典返回的错误转换为回复，分配失败时字典已被销毁
func (e *Engine) dictErrReply(err error) Reply {
	switch {
	case errors.Is(err, dict.ErrKeyNotFound):
		return ErrorNoSuchKeyReply
	case errors.Is(err, dict.ErrAllocation):
		logger.Warnf("dictionary torn down: %v", err)
		e.dict = nil
		return ErrorAllocReply
	case errors.Is(err, dict.ErrDestroyed):
		e.dict = nil
		return ErrorDestroyedReply
	}
	return NewErrorReply("ERR " + err.Error())
}

// PutCommand PUT key value，key已存在时更新value
func PutCommand(e *Engine, args [][]byte) Reply {
	if _, err := e.dict.Put(args[0], args[1]); err != nil {
		return e.dictErrReply(err)
	}
	return OKReply
}

func GetCommand(e *Engine, args [][]byte) Reply {
	val, err := e.dict.Get(args[0])
	if err != nil {
		return e.dictErrReply(err)
	}
	return NewBulkReply(val)
}

// FindCommand FIND key，输出条目的插入位置和内容
func FindCommand(e *Engine, args [][]byte) Reply {
	entry, err := e.dict.Find(args[0])
	if err != nil {
		return e.dictErrReply(err)
	}
	return NewStatusReply(fmt.Sprintf("(%d) '%s': '%s'", entry.Position(), entry.Key(), entry.Value()))
}

func ExistsCommand(e *Engine, args [][]byte) Reply {
	if e.dict.Exists(args[0]) {
		return NewIntReply(1)
	}
	return NewIntReply(0)
}

func LenCommand(e *Engine, args [][]byte) Reply {
	return NewIntReply(int64(e.dict.Len()))
}

func PrintCommand(e *Engine, args [][]byte) Reply {
	return NewStatusReply(e.dict.String())
}

// KeysCommand KEYS [pattern]，按插入顺序返回匹配的key
func KeysCommand(e *Engine, args [][]byte) Reply {
	if len(args) > 1 {
		return NewArgNumErrReply("keys")
	}
	src := "*"
	if len(args) == 1 {
		src = string(args[0])
	}
	pattern, err := wildcard.CompilePattern(src)
	if err != nil {
		return NewErrorReply("ERR invalid pattern: " + err.Error())
	}
	keys := make([]string, 0)
	e.dict.ForEach(func(key string, val string) bool {
		if pattern.IsMatch(key) {
			keys = append(keys, key)
		}
		return true
	})
	return NewMultiBulkReply(keys)
}

func MemoryCommand(e *Engine, args [][]byte) Reply {
	return NewIntReply(int64(e.dict.MemoryUsed()))
}

// DelCommand 销毁整个字典，之后只能执行NEW
func DelCommand(e *Engine, args [][]byte) Reply {
	e.dict.Destroy()
	e.dict = nil
	return OKReply
}

// NewCommand 丢弃当前字典并创建一个空字典
func NewCommand(e *Engine, args [][]byte) Reply {
	d, err := dict.New(e.opts)
	if err != nil {
		return NewErrorReply("ERR " + err.Error())
	}
	e.dict.Destroy()
	e.dict = d
	return OKReply
}

func init() {
	registerCommand("put", PutCommand, 3)
	registerCommand("get", GetCommand, 2)
	registerCommand("find", FindCommand, 2)
	registerCommand("exists", ExistsCommand, 2)
	registerCommand("len", LenCommand, 1)
	registerCommand("print", PrintCommand, 1)
	registerCommand("keys", KeysCommand, -1)
	registerCommand("memory", MemoryCommand, 1)
	registerCommand("del", DelCommand, 1)
	registerCommand("new", NewCommand, 1).allowDestroyed = true
}
