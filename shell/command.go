package shell

import "strings"

var cmdTable = make(map[string]*command)

// ExecFunc 执行命令，args不包含命令名
type ExecFunc func(e *Engine, args [][]byte) Reply

type command struct {
	name     string
	executor ExecFunc

	// 参数数量限制(包含命令名)，arity < 0 表示参数数量大于等于 -arity
	// 例如 get arity为2，keys arity为-1
	arity int

	// 为true时字典被销毁后仍然可以执行
	allowDestroyed bool
}

func registerCommand(name string, executor ExecFunc, arity int) *command {
	name = strings.ToLower(name)
	cmd := &command{
		name:     name,
		executor: executor,
		arity:    arity,
	}
	cmdTable[name] = cmd
	return cmd
}

func validateArity(arity, argNum int) bool {
	if arity >= 0 {
		return argNum == arity
	}
	return argNum >= -arity
}
