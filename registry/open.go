package registry

import "context"

// Opener 是资源打开器函数类型。
//
// Opener 定义了如何根据 key 创建资源实例。
// 在 Cache.Get 首次访问某个 key 时会被调用（惰性初始化），每个 key 至多调用一次。
//
// 类型参数:
//   - K: 缓存键类型
//   - V: 资源类型
//
// 参数:
//   - ctx: 上下文，已与首个调用方的取消信号解绑，但保留其中的值
//   - key: 缓存键，例如连接字符串
//
// 返回值:
//   - V: 创建的资源实例
//   - error: 创建过程中的错误，nil 表示成功；错误同样会被缓存
//
// 示例:
//
//	opener := func(ctx context.Context, dsn string) (*sql.DB, error) {
//	    return sql.Open("mysql", dsn)
//	}
type Opener[K comparable, V any] func(ctx context.Context, key K) (V, error)
