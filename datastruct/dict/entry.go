package dict

import "odict/datastruct/text"

// Entry 是一个键值对，创建后在字典中的位置不再改变
type Entry struct {
	key      *text.Buffer
	value    *text.Buffer
	position int
}

func (e *Entry) Key() string {
	return e.key.String()
}

func (e *Entry) Value() string {
	return e.value.String()
}

// Position 返回插入顺序中的下标，从0开始
func (e *Entry) Position() int {
	return e.position
}

// renderable 空key的条目不参与输出
func (e *Entry) renderable() bool {
	return e.key != nil && e.key.Len() > 0 && e.value != nil
}

func (e *Entry) release() {
	e.key.Release()
	e.value.Release()
	e.key = nil
	e.value = nil
}
