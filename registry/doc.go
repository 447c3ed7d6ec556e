/*
Package registry 提供了一个通用的“获取或创建”（get-or-create）记忆化缓存。

# 概述

registry 包实现了一个泛型缓存 Cache[K, V]，支持：
  - 惰性初始化：资源仅在首次访问时才会被创建
  - 并发去重：同一个 key 的并发请求共享同一次创建过程
  - 结果常驻：槽位一旦创建便在缓存生命周期内一直存在，失败结果同样保留
  - 预置与查看：可以直接写入或查看槽位，便于测试

# 核心概念

## Cache（缓存）

Cache 以 key 为单位保存 Future。首次访问某个 key 时，Cache 在持有锁的情况下
创建一个未完成的 Future 并写入槽位，释放锁之后才调用 Opener。
后续请求（无论 Opener 是否已返回）都会拿到同一个 Future。

主要功能：
  - Get: 获取资源（首次调用时会触发惰性初始化）
  - GetWith: 使用调用方提供的 Opener 获取资源
  - GetFuture: 获取槽位中的 Future，不等待结果
  - Lookup: 查看槽位，不触发创建
  - Store/StoreFuture: 预置槽位，不覆盖已有槽位
  - Keys/Len: 列出槽位

## Future（未完成结果）

Future 表示一次可能尚未完成的创建过程，多个调用方可以同时 Wait。

	v, err := future.Wait(ctx)

Wait 的 ctx 只控制当前调用方的等待时间，不会取消共享的创建过程。

## Opener（打开器）

Opener 是一个函数类型，定义了如何根据 key 创建资源：

	type Opener[K comparable, V any] func(ctx context.Context, key K) (V, error)

# 使用示例

	cache := registry.NewCache(func(ctx context.Context, dsn string) (*sql.DB, error) {
	    return sql.Open("mysql", dsn)
	})

	// 首次 Get 时才会调用 Opener
	db, err := cache.Get(ctx, "user:pass@tcp(host1:3306)/app")

	// 后续 Get 直接返回已创建的实例
	db, err = cache.Get(ctx, "user:pass@tcp(host1:3306)/app") // 不会重复创建

# 错误处理

Opener 返回的错误会被缓存：之后对同一 key 的 Get 会返回同一个错误，
而不会再次调用 Opener。包中定义了以下错误：

  - ErrNilOpener: 槽位不存在且没有可用的 Opener
  - ErrOpenerPanic: Opener 发生 panic
  - ErrOpenFailed: 供上层包装 Opener 错误使用

# 并发安全

所有公开的方法都是并发安全的。“检查槽位-写入槽位”在同一把互斥锁内完成，
两者之间不存在任何阻塞点，因此每个 key 的 Opener 至多被调用一次。
*/
package registry
