package domain

import "sort"

// StringSet множество строк с O(1) проверкой принадлежности
// Используется для способностей менеджера (языки, продукты, рейтинги)
type StringSet map[string]struct{}

// NewStringSet создает множество из списка значений (дубликаты схлопываются)
func NewStringSet(values ...string) StringSet {
	s := make(StringSet, len(values))
	for _, v := range values {
		s[v] = struct{}{}
	}
	return s
}

// Contains проверяет принадлежность значения множеству
// Сравнение точное, с учетом регистра
func (s StringSet) Contains(value string) bool {
	_, ok := s[value]
	return ok
}

// ContainsAll проверяет, что множество содержит ВСЕ переданные значения
// Для пустого списка возвращает true (вакуумное совпадение)
func (s StringSet) ContainsAll(values []string) bool {
	for _, v := range values {
		if !s.Contains(v) {
			return false
		}
	}
	return true
}

// Values возвращает отсортированный список значений множества
func (s StringSet) Values() []string {
	values := make([]string, 0, len(s))
	for v := range s {
		values = append(values, v)
	}
	sort.Strings(values)
	return values
}
