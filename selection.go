package main

// selectionSet 按插入顺序保存的交易编号集合
type selectionSet struct {
	ids   []int
	index map[int]struct{}
}

func newSelectionSet() *selectionSet {
	return &selectionSet{index: make(map[int]struct{})}
}

func (s *selectionSet) has(id int) bool {
	_, ok := s.index[id]
	return ok
}

// add 追加到末尾，已存在时不改变顺序
func (s *selectionSet) add(id int) {
	if s.has(id) {
		return
	}
	s.ids = append(s.ids, id)
	s.index[id] = struct{}{}
}

// remove 删除并保持其余元素的顺序
func (s *selectionSet) remove(id int) {
	if !s.has(id) {
		return
	}
	delete(s.index, id)
	for i, v := range s.ids {
		if v == id {
			s.ids = append(s.ids[:i], s.ids[i+1:]...)
			break
		}
	}
}

func (s *selectionSet) clear() {
	s.ids = nil
	s.index = make(map[int]struct{})
}

func (s *selectionSet) size() int {
	return len(s.ids)
}

// values 返回按插入顺序排列的副本
func (s *selectionSet) values() []int {
	out := make([]int, len(s.ids))
	copy(out, s.ids)
	return out
}
