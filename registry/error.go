package registry

import (
	"errors"
	"fmt"
)

// 预定义的哨兵错误，可使用 errors.Is 进行判断。
//
// 示例:
//
//	_, err := cache.Get(ctx, "mongodb://localhost/app")
//	if errors.Is(err, registry.ErrOpenerPanic) {
//	    // 处理 opener panic 的情况
//	}
var (
	// ErrNilOpener 表示槽位不存在且没有可用的 opener。
	ErrNilOpener = errors.New("connreg.registry: nil opener")

	// ErrOpenerPanic 表示 opener 在创建资源时发生了 panic。
	// panic 会被恢复并作为该 key 的失败结果缓存下来。
	ErrOpenerPanic = errors.New("connreg.registry: opener panicked")

	// ErrOpenFailed 表示 opener 返回了错误。
	ErrOpenFailed = errors.New("connreg.registry: open resource failed")
)

// NewErrOpenerPanic 创建一个包含 key 和 panic 值的错误。
//
// 返回的错误可以通过 errors.Is(err, ErrOpenerPanic) 进行判断。
// 如果 panic 值本身是 error，也可以通过 errors.Is 判断原始错误。
func NewErrOpenerPanic(key any, r any) error {
	if err, ok := r.(error); ok {
		return fmt.Errorf("open %v: %w: %w", key, ErrOpenerPanic, err)
	}
	return fmt.Errorf("open %v: %w: %v", key, ErrOpenerPanic, r)
}

// NewErrOpenFailed 创建一个包含 key 和原始错误的打开失败错误。
//
// 返回的错误可以通过 errors.Is(err, ErrOpenFailed) 进行判断，
// 同时也可以通过 errors.Is 判断原始错误。
func NewErrOpenFailed(key any, err error) error {
	return fmt.Errorf("open %v failed: %w: %w", key, ErrOpenFailed, err)
}
