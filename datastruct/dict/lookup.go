package dict

// LinearScan 从第一个条目开始逐个比较完整的key
type LinearScan struct{}

func (LinearScan) Find(entries []*Entry, key []byte) int {
	for i, e := range entries {
		if e.key.Equal(key) {
			return i
		}
	}
	return -1
}
