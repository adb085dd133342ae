package shell

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"strconv"
)

// ErrSyntax 表示一条命令无法解析，解析器会跳过该命令继续读取
var ErrSyntax = errors.New("syntax error")

// Parser 从Reader中逐条读取命令，每条命令是一个参数数组
// 支持两种格式：
// 1. 行内命令，参数以空白分隔，可以用双引号或单引号包含空白，例如: PUT Hello "Replace Value"
// 2. RESP数组，例如: *3\r\n$3\r\nPUT\r\n$1\r\nk\r\n$1\r\nv\r\n
// 空行和以 # 开头的注释行被忽略
type Parser struct {
	reader *bufio.Reader
	line   int
}

func NewParser(r io.Reader) *Parser {
	return &Parser{reader: bufio.NewReader(r)}
}

// readLine 读取一行并去掉行尾的CRLF，最后一行可以没有换行符
func (p *Parser) readLine() ([]byte, error) {
	line, err := p.reader.ReadBytes('\n')
	if err != nil && (err != io.EOF || len(line) == 0) {
		return nil, err
	}
	p.line++
	line = bytes.TrimSuffix(line, []byte{'\n'})
	line = bytes.TrimSuffix(line, []byte{'\r'})
	return line, nil
}

// Next 返回下一条命令，没有更多输入时返回io.EOF
// 返回的错误如果是ErrSyntax，调用方可以继续调用Next
func (p *Parser) Next() ([][]byte, error) {
	for {
		line, err := p.readLine()
		if err != nil {
			return nil, err
		}
		trimmed := bytes.TrimSpace(line)
		if len(trimmed) == 0 || trimmed[0] == '#' {
			continue
		}
		if trimmed[0] == '*' {
			return p.parseMultiBulk(trimmed)
		}
		args, err := splitInline(trimmed)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", ErrSyntax, p.line, err)
		}
		return args, nil
	}
}

func (p *Parser) parseMultiBulk(header []byte) ([][]byte, error) {
	n, err := strconv.Atoi(string(header[1:]))
	if err != nil || n < 0 {
		return nil, fmt.Errorf("%w: line %d: illegal array header %s", ErrSyntax, p.line, header)
	}
	args := make([][]byte, 0, n)
	for i := 0; i < n; i++ {
		line, err := p.readLine()
		if err != nil {
			return nil, unexpectedEOF(err)
		}
		if len(line) < 2 || line[0] != '$' {
			return nil, fmt.Errorf("%w: line %d: illegal bulk string header %s", ErrSyntax, p.line, line)
		}
		strLen, err := strconv.Atoi(string(line[1:]))
		if err != nil || strLen < -1 {
			return nil, fmt.Errorf("%w: line %d: illegal bulk string length %s", ErrSyntax, p.line, line)
		}
		// $-1 表示缺失的参数
		if strLen == -1 {
			args = append(args, nil)
			continue
		}
		body := make([]byte, strLen+2)
		if _, err = io.ReadFull(p.reader, body); err != nil {
			return nil, unexpectedEOF(err)
		}
		p.line++
		args = append(args, body[:strLen])
	}
	return args, nil
}

func unexpectedEOF(err error) error {
	if err == io.EOF {
		return io.ErrUnexpectedEOF
	}
	return err
}

// splitInline 按空白切分参数，引号内的内容作为一个参数，双引号内支持 \" \\ \n \t \r 转义
func splitInline(line []byte) ([][]byte, error) {
	var args [][]byte
	i := 0
	for i < len(line) {
		for i < len(line) && isBlank(line[i]) {
			i++
		}
		if i == len(line) {
			break
		}
		arg := make([]byte, 0)
		for i < len(line) && !isBlank(line[i]) {
			switch quote := line[i]; quote {
			case '"', '\'':
				i++
				closed := false
				for i < len(line) {
					c := line[i]
					if c == quote {
						closed = true
						i++
						break
					}
					if c == '\\' && quote == '"' && i+1 < len(line) {
						i++
						c = unescape(line[i])
					}
					arg = append(arg, c)
					i++
				}
				if !closed {
					return nil, errors.New("unbalanced quotes")
				}
			default:
				arg = append(arg, quote)
				i++
			}
		}
		args = append(args, arg)
	}
	return args, nil
}

func unescape(c byte) byte {
	switch c {
	case 'n':
		return '\n'
	case 't':
		return '\t'
	case 'r':
		return '\r'
	}
	return c
}

func isBlank(c byte) bool {
	return c == ' ' || c == '\t'
}
