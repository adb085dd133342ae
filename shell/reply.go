package shell

import (
	"strconv"
	"strings"
)

// Reply 是命令执行结果的文本表示
type Reply interface {
	String() string
}

/* ---- 状态 ---- */

type StatusReply struct {
	status string
}

func (r *StatusReply) String() string {
	return r.status
}

func NewStatusReply(status string) *StatusReply {
	return &StatusReply{status: status}
}

/* ---- 字符串，带引号输出，可以区分空字符串 ---- */

type BulkReply struct {
	Text string
}

func (r *BulkReply) String() string {
	return strconv.Quote(r.Text)
}

func NewBulkReply(text string) *BulkReply {
	return &BulkReply{Text: text}
}

/* ---- 整型 ---- */

type IntReply struct {
	number int64
}

func (r *IntReply) String() string {
	return "(integer) " + strconv.FormatInt(r.number, 10)
}

func NewIntReply(number int64) *IntReply {
	return &IntReply{number: number}
}

/* ---- 字符串数组 ---- */

type MultiBulkReply struct {
	Texts []string
}

func (r *MultiBulkReply) String() string {
	if len(r.Texts) == 0 {
		return "(empty array)"
	}
	var sb strings.Builder
	for i, text := range r.Texts {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(strconv.Itoa(i + 1))
		sb.WriteString(") ")
		sb.WriteString(strconv.Quote(text))
	}
	return sb.String()
}

func NewMultiBulkReply(texts []string) *MultiBulkReply {
	return &MultiBulkReply{Texts: texts}
}

/* ---- 错误 ---- */

type ErrorReply struct {
	text string
}

func (r *ErrorReply) Error() string {
	return r.text
}

func (r *ErrorReply) String() string {
	return "(error) " + r.text
}

func NewErrorReply(text string) *ErrorReply {
	return &ErrorReply{text: text}
}

// IsErrorReply 判断是否为错误回复
func IsErrorReply(reply Reply) bool {
	_, ok := reply.(*ErrorReply)
	return ok
}

func NewArgNumErrReply(cmd string) *ErrorReply {
	return NewErrorReply("ERR wrong number of arguments for '" + cmd + "' command")
}

func NewUnknownCommandErrReply(cmd string) *ErrorReply {
	return NewErrorReply("ERR unknown command '" + cmd + "'")
}

var (
	OKReply             = NewStatusReply("OK")
	ErrorUnknownReply   = NewErrorReply("ERR unknown")
	ErrorNoSuchKeyReply = NewErrorReply("ERR no such key")
	ErrorDestroyedReply = NewErrorReply("ERR dictionary destroyed")
	ErrorAllocReply     = NewErrorReply("ERR could not allocate memory, dictionary destroyed")
)
