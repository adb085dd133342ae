package main

import (
	"errors"
	"fmt"
	"io"

	"odict/datastruct/dict"
)

// render 输出字典内容，已销毁的字典输出 {}
func render(d dict.Dict) string {
	if d == nil {
		return "{}"
	}
	return d.String()
}

// runDemo 依次演示创建、插入、更新、查询和销毁
func runDemo(w io.Writer, opts *dict.Options) error {
	od, err := dict.New(opts)
	if err != nil {
		return err
	}
	var d dict.Dict = od
	fmt.Fprintf(w, "\n%s\n", render(d))

	pairs := [][2]string{
		{"Hello", "World"},
		{"key_2", "value_2"},
		{"key_3", "value_3"},
		{"Hello", "Replace Value"},
	}
	for _, kv := range pairs {
		if d, err = d.Put([]byte(kv[0]), []byte(kv[1])); err != nil {
			return err
		}
		fmt.Fprintf(w, "\n%s\n", render(d))
	}

	fmt.Fprintf(w, "\nLength = %d\n", d.Len())

	for _, key := range []string{"Hello", "key_3", "Nonexistent"} {
		val, err := d.Get([]byte(key))
		if errors.Is(err, dict.ErrKeyNotFound) {
			fmt.Fprintf(w, "\n**The key '%s' does not exist**\n", key)
			continue
		} else if err != nil {
			return err
		}
		fmt.Fprintf(w, "\nValue of Key '%s': %s\n", key, val)
	}

	d = d.Destroy()
	fmt.Fprintf(w, "\n%s\n", render(d))
	return nil
}
