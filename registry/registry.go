package registry

import (
	"context"
	"fmt"
	"sync"
)

// Cache 是一个按 key 记忆化（memoize）资源的缓存。
//
// 每个 key 对应的槽位在首次访问时被创建并立即填入一个未完成的 Future，
// 随后才去调用 opener。因此在 opener 返回之前到达的并发请求会共享同一次创建过程，
// 每个 key 的 opener 至多被调用一次。
//
// 槽位一旦创建便不会被移除：没有淘汰、没有 TTL，失败的结果同样会被保留。
//
// 类型参数:
//   - K: 缓存键类型
//   - V: 资源类型
type Cache[K comparable, V any] struct {
	mu    sync.Mutex       // mu 保护 slots 的“检查-插入”过程
	slots map[K]*Future[V] // slots 存储每个 key 的 Future（可能尚未完成）
	order []K              // order 记录 key 的创建顺序
	open  Opener[K, V]     // open 是默认的资源打开器（可为 nil）
}

// NewCache 创建一个新的记忆化缓存。
//
// opener 可以为 nil，此时只能通过 GetWith 创建资源，
// Get 对不存在的 key 会返回 ErrNilOpener（不会占用槽位）。
func NewCache[K comparable, V any](opener Opener[K, V]) *Cache[K, V] {
	return &Cache[K, V]{
		slots: make(map[K]*Future[V]),
		open:  opener,
	}
}

// Get 获取 key 对应的资源，必要时惰性创建。
//
// 流程:
//  1. 加锁检查槽位，不存在则创建 Future 并立即写入槽位
//  2. 解锁后（仅创建者）在新的 goroutine 中调用 opener
//  3. 使用调用方的 ctx 等待 Future 完成
//
// 调用方的 ctx 被取消时只会让本次调用返回 ctx.Err()，
// 共享的创建过程继续执行，其结果仍会写入缓存。
//
// 可能返回的错误:
//   - opener 返回的错误（此后对同一 key 的调用都会返回同一个错误）
//   - ErrOpenerPanic: opener 发生 panic
//   - ctx.Err(): 等待期间 ctx 被取消
func (c *Cache[K, V]) Get(ctx context.Context, key K) (V, error) {
	return c.GetFuture(ctx, key).Wait(ctx)
}

// GetWith 与 Get 相同，但在槽位不存在时使用传入的 opener 创建资源。
//
// 适用于创建过程依赖调用方上下文的场景，例如需要借助已建立的连接来创建集合句柄。
// 槽位已存在时 opener 不会被调用。
func (c *Cache[K, V]) GetWith(ctx context.Context, key K, opener Opener[K, V]) (V, error) {
	return c.futureWith(ctx, key, opener).Wait(ctx)
}

// GetFuture 与 Get 相同，但不等待结果，直接返回槽位中的 Future。
func (c *Cache[K, V]) GetFuture(ctx context.Context, key K) *Future[V] {
	return c.futureWith(ctx, key, c.open)
}

func (c *Cache[K, V]) futureWith(ctx context.Context, key K, opener Opener[K, V]) *Future[V] {
	c.mu.Lock()
	f, ok := c.slots[key]
	if ok {
		c.mu.Unlock()
		return f
	}

	if opener == nil {
		c.mu.Unlock()
		return Failed[V](ErrNilOpener)
	}

	f = newFuture[V]()
	c.slots[key] = f
	c.order = append(c.order, key)
	c.mu.Unlock()

	go run(context.WithoutCancel(ctx), key, opener, f)
	return f
}

// run 调用 opener 并把结果写入 f。
func run[K comparable, V any](ctx context.Context, key K, opener Opener[K, V], f *Future[V]) {
	defer func() {
		if r := recover(); r != nil {
			var zero V
			f.settle(zero, NewErrOpenerPanic(key, r))
		}
	}()

	v, err := opener(ctx, key)
	f.settle(v, err)
}

// Lookup 返回 key 对应的 Future，不会触发创建。
func (c *Cache[K, V]) Lookup(key K) (*Future[V], bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	f, ok := c.slots[key]
	return f, ok
}

// Store 预置一个已完成的资源。
//
// 如果 key 已存在，不会覆盖原有槽位。
//
// 返回值:
//   - true: 写入成功
//   - false: key 已存在（未做任何修改）
func (c *Cache[K, V]) Store(key K, v V) bool {
	return c.StoreFuture(key, Resolved(v))
}

// StoreFuture 预置任意 Future（包括 Failed 或尚未完成的 Future）。
// 语义与 Store 相同。
func (c *Cache[K, V]) StoreFuture(key K, f *Future[V]) bool {
	if f == nil {
		panic(fmt.Sprintf("registry: nil future for key %v", key))
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.slots[key]; ok {
		return false
	}
	c.slots[key] = f
	c.order = append(c.order, key)
	return true
}

// Keys 按创建顺序返回所有已存在的 key。
func (c *Cache[K, V]) Keys() []K {
	c.mu.Lock()
	defer c.mu.Unlock()
	keys := make([]K, len(c.order))
	copy(keys, c.order)
	return keys
}

// Len 返回槽位数量。
func (c *Cache[K, V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.slots)
}
