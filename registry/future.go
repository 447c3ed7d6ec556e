package registry

import (
	"context"
	"sync"
)

// Future 表示一个可能尚未完成的资源创建结果。
//
// 多个调用方可以同时等待同一个 Future，它们最终会拿到同一个值或同一个错误。
// Future 一旦完成（settled）便不再改变。
type Future[V any] struct {
	done chan struct{} // done 在结果写入后关闭
	once sync.Once     // once 保证结果只写入一次

	val V     // val 是成功时的结果
	err error // err 是失败时的错误
}

func newFuture[V any]() *Future[V] {
	return &Future[V]{done: make(chan struct{})}
}

// Resolved 返回一个已成功完成的 Future。
func Resolved[V any](v V) *Future[V] {
	f := newFuture[V]()
	f.settle(v, nil)
	return f
}

// Failed 返回一个已失败的 Future。
func Failed[V any](err error) *Future[V] {
	f := newFuture[V]()
	var zero V
	f.settle(zero, err)
	return f
}

// settle 写入结果并唤醒所有等待者，重复调用无效。
func (f *Future[V]) settle(v V, err error) {
	f.once.Do(func() {
		f.val = v
		f.err = err
		close(f.done)
	})
}

// Wait 阻塞直到 Future 完成或 ctx 被取消。
//
// ctx 取消只影响当前调用方：返回 ctx.Err()，底层的创建过程不受影响。
func (f *Future[V]) Wait(ctx context.Context) (V, error) {
	select {
	case <-f.done:
		return f.val, f.err
	default:
	}

	select {
	case <-f.done:
		return f.val, f.err
	case <-ctx.Done():
		var zero V
		return zero, ctx.Err()
	}
}

// Done 返回一个在 Future 完成时关闭的 channel。
func (f *Future[V]) Done() <-chan struct{} {
	return f.done
}

// Settled 报告 Future 是否已经完成。
func (f *Future[V]) Settled() bool {
	select {
	case <-f.done:
		return true
	default:
		return false
	}
}

// Result 非阻塞地读取结果。settled 为 false 时 v 与 err 均为零值。
func (f *Future[V]) Result() (v V, settled bool, err error) {
	if !f.Settled() {
		return v, false, nil
	}
	return f.val, true, f.err
}
