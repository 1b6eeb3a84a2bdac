package set

// Set 字符串集合, 保持首次插入顺序
type Set struct {
	m     map[string]struct{}
	order []string
}

func (s *Set) Contains(val string) bool {
	_, ok := s.m[val]
	return ok
}

// Add returns false when val was already present.
func (s *Set) Add(val string) bool {
	if s.Contains(val) {
		return false
	}
	s.m[val] = struct{}{}
	s.order = append(s.order, val)
	return true
}

func (s *Set) Remove(val string) {
	if !s.Contains(val) {
		return
	}
	delete(s.m, val)
	for i, v := range s.order {
		if v == val {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
}

func (s *Set) Len() int {
	return len(s.order)
}

func (s *Set) Values() []string {
	vals := make([]string, len(s.order))
	copy(vals, s.order)
	return vals
}

func New(vals ...string) *Set {
	s := &Set{
		m: make(map[string]struct{}, len(vals)),
	}
	for _, v := range vals {
		s.Add(v)
	}
	return s
}
