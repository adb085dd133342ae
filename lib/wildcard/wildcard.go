package wildcard

import (
	"errors"
	"regexp"
	"strings"
)

// Pattern 是编译后的glob模式，支持 * ? [abc] [^abc] 和 \ 转义
type Pattern struct {
	exp *regexp.Regexp
}

// 在正则中有特殊含义、需要转义的字符
var regexEscapes = map[byte]string{
	'+': `\+`,
	'(': `\(`,
	')': `\)`,
	'$': `\$`,
	'.': `\.`,
	'{': `\{`,
	'}': `\}`,
	'|': `\|`,
}

// CompilePattern 把通配符模式转换为锚定的正则表达式
func CompilePattern(src string) (*Pattern, error) {
	var sb strings.Builder
	sb.WriteByte('^')
	inClass := false
	for i := 0; i < len(src); i++ {
		ch := src[i]
		switch {
		case ch == '\\':
			if i == len(src)-1 {
				return nil, errors.New("pattern ends with escape \\")
			}
			sb.WriteString(regexp.QuoteMeta(src[i+1 : i+2]))
			i++
		case ch == '[' && !inClass:
			inClass = true
			sb.WriteByte('[')
			// [^ 表示取反
			if i+1 < len(src) && src[i+1] == '^' {
				sb.WriteByte('^')
				i++
			}
		case ch == ']' && inClass:
			inClass = false
			sb.WriteByte(']')
		case inClass:
			sb.WriteByte(ch)
		case ch == '*':
			sb.WriteString(`.*`)
		case ch == '?':
			sb.WriteByte('.')
		case ch == '^':
			sb.WriteString(`\^`)
		default:
			if escaped, ok := regexEscapes[ch]; ok {
				sb.WriteString(escaped)
			} else {
				sb.WriteByte(ch)
			}
		}
	}
	sb.WriteByte('$')
	re, err := regexp.Compile(sb.String())
	if err != nil {
		return nil, err
	}
	return &Pattern{exp: re}, nil
}

func (p *Pattern) IsMatch(s string) bool {
	return p.exp.MatchString(s)
}
