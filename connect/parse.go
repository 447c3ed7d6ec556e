package connect

import (
	"strings"

	"github.com/tidwall/gjson"

	"github.com/qq1060656096/connreg/maputil"
)

// ParseRequest 根据参数形状构造 Request。
//
// target 可以是 JSON 文档，也可以是裸连接字符串：
//   - JSON 对象：{"uri": ["a", "b"], "uri2": {"alias": "c"}}，按文档顺序构造 URIMapWithSpecs，
//     此时 collections 被忽略
//   - JSON 数组：["uri1", "uri2"]，构造 ManyURIs
//   - JSON 字符串或裸连接字符串：collections 非空时构造 URIWithSpec，否则构造 OneURI
//
// collections 是集合请求：JSON 数组（名称列表）或 JSON 对象（别名 -> 集合名）。
func ParseRequest(target, collections string) (Request, error) {
	target = strings.TrimSpace(target)
	if target == "" {
		return Request{}, NewErrInvalidRequest("empty target")
	}

	if !gjson.Valid(target) {
		if strings.HasPrefix(target, "{") || strings.HasPrefix(target, "[") || strings.HasPrefix(target, `"`) {
			return Request{}, NewErrInvalidRequest("malformed target json")
		}
		return withCollections(target, collections)
	}

	res := gjson.Parse(target)
	switch {
	case res.IsObject():
		return parseURIMap(res)
	case res.IsArray():
		return parseURIList(res)
	case res.Type == gjson.String:
		return withCollections(res.String(), collections)
	default:
		return Request{}, NewErrInvalidRequest("unsupported target type %s", res.Type)
	}
}

func withCollections(uri, collections string) (Request, error) {
	collections = strings.TrimSpace(collections)
	if collections == "" {
		return OneURI(uri), nil
	}
	if !gjson.Valid(collections) {
		return Request{}, NewErrInvalidRequest("malformed collections json")
	}
	spec, err := parseSpec(gjson.Parse(collections))
	if err != nil {
		return Request{}, err
	}
	return URIWithSpec(uri, spec), nil
}

func parseURIList(res gjson.Result) (Request, error) {
	var uris []string
	var err error
	res.ForEach(func(_, v gjson.Result) bool {
		if v.Type != gjson.String {
			err = NewErrInvalidRequest("connection string must be a json string, got %s", v.Type)
			return false
		}
		uris = append(uris, v.String())
		return true
	})
	if err != nil {
		return Request{}, err
	}
	return ManyURIs(uris...), nil
}

func parseURIMap(res gjson.Result) (Request, error) {
	var specs []URISpec
	var err error
	res.ForEach(func(k, v gjson.Result) bool {
		var spec CollectionSpec
		spec, err = parseSpec(v)
		if err != nil {
			return false
		}
		specs = append(specs, URISpec{URI: k.String(), Spec: spec})
		return true
	})
	if err != nil {
		return Request{}, err
	}
	return URIMapWithSpecs(specs...), nil
}

type aliasPair struct {
	alias string
	name  string
}

func parseSpec(res gjson.Result) (CollectionSpec, error) {
	switch {
	case res.IsArray():
		var names []string
		var err error
		res.ForEach(func(_, v gjson.Result) bool {
			if v.Type != gjson.String {
				err = NewErrInvalidRequest("collection name must be a json string, got %s", v.Type)
				return false
			}
			names = append(names, v.String())
			return true
		})
		if err != nil {
			return CollectionSpec{}, err
		}
		return Names(names...), nil

	case res.IsObject():
		var pairs []aliasPair
		var err error
		res.ForEach(func(k, v gjson.Result) bool {
			if v.Type != gjson.String {
				err = NewErrInvalidRequest("collection %q must be a json string, got %s", k.String(), v.Type)
				return false
			}
			pairs = append(pairs, aliasPair{alias: k.String(), name: v.String()})
			return true
		})
		if err != nil {
			return CollectionSpec{}, err
		}
		return Aliases(maputil.MapBy(pairs,
			func(p aliasPair) string { return p.alias },
			func(p aliasPair) string { return p.name },
		)), nil

	default:
		return CollectionSpec{}, NewErrInvalidRequest("collections must be a json array or object, got %s", res.Type)
	}
}
