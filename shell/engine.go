package shell

import (
	"errors"
	"fmt"
	"io"
	"runtime/debug"
	"strings"

	"odict/datastruct/dict"
	"odict/logger"
)

// Engine 在一个字典上执行命令
type Engine struct {
	dict *dict.OrderedDict
	opts *dict.Options
}

func NewEngine(opts *dict.Options) (*Engine, error) {
	d, err := dict.New(opts)
	if err != nil {
		return nil, err
	}
	return &Engine{dict: d, opts: opts}, nil
}

// Dict 返回当前字典，被销毁后为nil
func (e *Engine) Dict() *dict.OrderedDict {
	return e.dict
}

// Exec 执行一条命令，cmdLine[0]为命令名，不区分大小写
func (e *Engine) Exec(cmdLine [][]byte) (res Reply) {
	defer func() {
		if err := recover(); err != nil {
			logger.Errorf("error occurs: %v\n%s", err, string(debug.Stack()))
			res = ErrorUnknownReply
		}
	}()

	if len(cmdLine) == 0 {
		return NewErrorReply("ERR empty command")
	}
	cmdName := strings.ToLower(string(cmdLine[0]))
	cmd, ok := cmdTable[cmdName]
	if !ok {
		return NewUnknownCommandErrReply(cmdName)
	}
	if !validateArity(cmd.arity, len(cmdLine)) {
		return NewArgNumErrReply(cmdName)
	}
	if e.dict == nil && !cmd.allowDestroyed {
		return ErrorDestroyedReply
	}
	return cmd.executor(e, cmdLine[1:])
}

// Run 从r读取命令逐条执行，并把结果写到w，输入结束时返回nil
// 无法解析的命令输出错误后继续执行
func (e *Engine) Run(r io.Reader, w io.Writer) error {
	parser := NewParser(r)
	for {
		args, err := parser.Next()
		if err == io.EOF {
			return nil
		}
		var reply Reply
		if err != nil {
			if !errors.Is(err, ErrSyntax) {
				return err
			}
			logger.Warnf("skip command: %v", err)
			reply = NewErrorReply("ERR " + err.Error())
		} else {
			reply = e.Exec(args)
		}
		if _, err = fmt.Fprintln(w, reply.String()); err != nil {
			return err
		}
	}
}
