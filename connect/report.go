package connect

import (
	"strconv"

	"github.com/tidwall/sjson"

	"github.com/qq1060656096/connreg/maputil"
)

// Report 把 Response 渲染为 JSON，列出数据库名与集合名。
//
// 示例输出:
//
//	{"kind":"collections","database":"app","collections":{"u":"users"}}
func Report(resp Response) (string, error) {
	out, err := sjson.Set("{}", "kind", resp.Kind.String())
	if err != nil {
		return "", err
	}

	switch resp.Kind {
	case KindOne:
		return sjson.Set(out, "database", databaseOf(resp.Conn))
	case KindMany:
		databases := make([]string, 0, len(resp.Conns))
		for _, conn := range resp.Conns {
			databases = append(databases, databaseOf(conn))
		}
		return sjson.Set(out, "databases", databases)
	case KindCollections:
		return setCollections(out, "", resp.Collections)
	case KindManyCollections:
		if out, err = sjson.SetRaw(out, "results", "[]"); err != nil {
			return "", err
		}
		for i, set := range resp.Sets {
			if out, err = setCollections(out, "results."+strconv.Itoa(i)+".", set); err != nil {
				return "", err
			}
		}
		return out, nil
	default:
		return "", NewErrInvalidRequest("unknown response kind %d", int(resp.Kind))
	}
}

func setCollections(out, prefix string, set CollectionSet) (string, error) {
	out, err := sjson.Set(out, prefix+"database", set.Database)
	if err != nil {
		return "", err
	}

	if set.IsAliases() {
		names := make(map[string]string, len(set.ByAlias))
		for alias := range set.ByAlias {
			names[alias], _ = maputil.MapGet(set.ByAlias, alias, Collection.Name)
		}
		return sjson.Set(out, prefix+"collections", names)
	}

	names := make([]string, 0, len(set.List))
	for _, c := range set.List {
		names = append(names, c.Name())
	}
	return sjson.Set(out, prefix+"collections", names)
}

func databaseOf(conn Conn) string {
	if conn == nil {
		return ""
	}
	return conn.DatabaseName()
}
