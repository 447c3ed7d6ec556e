package connect

import (
	"errors"
	"fmt"
)

// 预定义的哨兵错误，可使用 errors.Is 进行判断。
var (
	// ErrEmptyURI 表示连接字符串为空。该错误不会被缓存。
	ErrEmptyURI = errors.New("connreg.connect: connection string can't be blank")

	// ErrNilConn 表示驱动返回了 nil 连接且没有错误。
	ErrNilConn = errors.New("connreg.connect: driver returned nil connection")

	// ErrInvalidSpec 表示集合请求既不是名称列表也不是别名映射。
	ErrInvalidSpec = errors.New("connreg.connect: invalid collection spec")

	// ErrInvalidRequest 表示请求无法解析或无法分派。
	ErrInvalidRequest = errors.New("connreg.connect: invalid request")

	// ErrCollectionFailed 表示从连接获取集合句柄失败。
	ErrCollectionFailed = errors.New("connreg.connect: collection lookup failed")
)

// NewErrInvalidRequest 创建一个包含原因的请求错误。
//
// 返回的错误可以通过 errors.Is(err, ErrInvalidRequest) 进行判断。
func NewErrInvalidRequest(format string, args ...any) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), ErrInvalidRequest)
}

// NewErrCollectionFailed 创建一个包含命名空间和原始错误的集合错误。
func NewErrCollectionFailed(ns Namespace, err error) error {
	return fmt.Errorf("collection %q: %w: %w", ns.String(), ErrCollectionFailed, err)
}
