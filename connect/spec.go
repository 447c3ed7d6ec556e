package connect

import (
	"maps"
	"slices"

	"github.com/qq1060656096/connreg/maputil"
)

type specKind int

const (
	specInvalid specKind = iota
	specNames
	specAliases
)

// CollectionSpec 描述要获取的集合：有序的名称列表，或者别名到集合名的映射。
//
// 零值无效，请使用 Names 或 Aliases 构造。
type CollectionSpec struct {
	kind    specKind
	names   []string
	aliases map[string]string
}

// Names 构造一个名称列表请求，结果按相同顺序返回集合句柄。
func Names(names ...string) CollectionSpec {
	return CollectionSpec{kind: specNames, names: slices.Clone(names)}
}

// Aliases 构造一个别名映射请求（alias -> 集合名），结果以相同的别名为键。
func Aliases(aliases map[string]string) CollectionSpec {
	m := maps.Clone(aliases)
	if m == nil {
		m = map[string]string{}
	}
	return CollectionSpec{kind: specAliases, aliases: m}
}

// IsAliases 报告请求是否为别名映射形式。
func (s CollectionSpec) IsAliases() bool {
	return s.kind == specAliases
}

// CollectionNames 返回请求中的集合名。
// 别名映射形式按别名升序返回。
func (s CollectionSpec) CollectionNames() []string {
	switch s.kind {
	case specNames:
		return slices.Clone(s.names)
	case specAliases:
		names := make([]string, 0, len(s.aliases))
		for _, alias := range maputil.SortedKeys(s.aliases) {
			names = append(names, s.aliases[alias])
		}
		return names
	default:
		return nil
	}
}

func (s CollectionSpec) validate() error {
	if s.kind == specInvalid {
		return ErrInvalidSpec
	}
	return nil
}

// CollectionSet 是 ResolveCollections 的结果，形状与请求一致：
// 名称列表请求填充 List，别名映射请求填充 ByAlias。
type CollectionSet struct {
	Database string
	List     []Collection
	ByAlias  map[string]Collection
}

// IsAliases 报告结果是否为别名映射形式。
func (s CollectionSet) IsAliases() bool {
	return s.ByAlias != nil
}

// Get 按别名返回集合句柄。
func (s CollectionSet) Get(alias string) (Collection, bool) {
	c, ok := s.ByAlias[alias]
	return c, ok
}

// URISpec 把连接字符串和集合请求配对，用于 ResolveManyWithCollections。
type URISpec struct {
	URI  string
	Spec CollectionSpec
}
