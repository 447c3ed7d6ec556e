package maputil

import (
	"cmp"
	"slices"
)

// MapGet 从 map 中获取指定 key 对应的值，并通过 value 函数转换后返回。
// 返回值 v 表示转换后的值，ok 表示 key 是否存在。
//
// key 不存在或 value 为 nil 时，v 为 R 的零值。
func MapGet[R any, K comparable, V any](m map[K]V, key K, value func(V) R) (R, bool) {
	var r R
	v, ok := m[key]
	if !ok || value == nil {
		return r, ok
	}
	return value(v), true
}

// MapBy 根据给定的 key 和 value 提取函数，将切片转换为 map。
//
// 返回的 map 中，每个切片元素都会生成一条记录。
// 如果多个元素生成相同的 key，后面的元素会覆盖前面的值。
func MapBy[T any, K comparable, V any](list []T, key func(T) K, value func(T) V) map[K]V {
	m := make(map[K]V, len(list))
	for _, v := range list {
		m[key(v)] = value(v)
	}
	return m
}

// SortedKeys 返回 map 中所有 key，按升序排列。
func SortedKeys[K cmp.Ordered, V any](m map[K]V) []K {
	keys := make([]K, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
