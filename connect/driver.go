package connect

import "context"

// Driver 是底层数据库驱动的连接能力。
//
// Connect 根据连接字符串建立连接并返回连接句柄。
// Registry 保证每个连接字符串至多调用一次 Connect。
type Driver interface {
	Connect(ctx context.Context, uri string) (Conn, error)
}

// DriverFunc 把普通函数适配为 Driver。
type DriverFunc func(ctx context.Context, uri string) (Conn, error)

// Connect 调用 f(ctx, uri)。
func (f DriverFunc) Connect(ctx context.Context, uri string) (Conn, error) {
	return f(ctx, uri)
}

// Conn 是驱动返回的连接句柄。
//
// Registry 只关心两件事：连接所在的数据库名，以及如何获取集合句柄。
type Conn interface {
	// DatabaseName 返回连接解析后的数据库名，作为集合缓存键的一部分。
	DatabaseName() string

	// Collection 返回指定名称的集合句柄。
	// 通常是同步且无副作用的操作。
	Collection(name string) (Collection, error)
}

// Collection 是连接返回的集合句柄，Registry 原样保存，不做解释。
type Collection interface {
	Name() string
}

// Namespace 由数据库名和集合名组成，是集合缓存的键。
//
// 不同连接字符串只要解析到同一个数据库，就共享同一个 Namespace 下的集合句柄。
type Namespace struct {
	DB         string
	Collection string
}

// String 返回 "db.collection" 形式的完整名称。
func (ns Namespace) String() string {
	return ns.DB + "." + ns.Collection
}
