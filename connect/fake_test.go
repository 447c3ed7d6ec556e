package connect

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
)

var errUnreachable = errors.New("no reachable servers")

type fakeCollection struct {
	db   string
	name string
}

func (c *fakeCollection) Name() string { return c.name }

type fakeConn struct {
	db     string
	driver *fakeDriver
}

func (c *fakeConn) DatabaseName() string { return c.db }

func (c *fakeConn) Collection(name string) (Collection, error) {
	atomic.AddInt32(&c.driver.lookups, 1)
	if err, ok := c.driver.collectionErrs[name]; ok {
		return nil, err
	}
	return &fakeCollection{db: c.db, name: name}, nil
}

// fakeDriver 记录每个连接字符串的连接次数。
type fakeDriver struct {
	databases      map[string]string // uri -> 数据库名
	failures       map[string]error  // uri -> 连接错误
	collectionErrs map[string]error  // 集合名 -> 获取错误
	gate           chan struct{}     // 非 nil 时 Connect 阻塞直到关闭
	started        chan string       // 非 nil 时 Connect 开始后写入 uri

	mu      sync.Mutex
	calls   map[string]int
	lookups int32
}

func newFakeDriver() *fakeDriver {
	return &fakeDriver{
		databases:      map[string]string{},
		failures:       map[string]error{},
		collectionErrs: map[string]error{},
		calls:          map[string]int{},
	}
}

func (d *fakeDriver) Connect(ctx context.Context, uri string) (Conn, error) {
	d.mu.Lock()
	d.calls[uri]++
	d.mu.Unlock()

	if d.started != nil {
		d.started <- uri
	}
	if err, ok := d.failures[uri]; ok {
		return nil, err
	}
	if d.gate != nil {
		<-d.gate
	}

	db, ok := d.databases[uri]
	if !ok {
		db = "test"
	}
	return &fakeConn{db: db, driver: d}, nil
}

func (d *fakeDriver) connectCalls(uri string) int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.calls[uri]
}

func (d *fakeDriver) lookupCalls() int32 {
	return atomic.LoadInt32(&d.lookups)
}
