// Package mongodb 把 MongoDB Go 驱动适配为 connect.Driver。
package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"
	"go.mongodb.org/mongo-driver/v2/x/mongo/driver/connstring"

	"github.com/qq1060656096/connreg/connect"
)

// DefaultDatabase 是连接字符串未指定数据库时使用的数据库名。
const DefaultDatabase = "test"

var _ connect.Driver = (*Driver)(nil)
var _ connect.Conn = (*Conn)(nil)

// Driver 通过 mongo.Connect 建立连接，并在返回前 Ping 主节点，
// 使不可达的主机或认证失败在连接阶段暴露出来。
type Driver struct {
	defaultDatabase string
	configure       func(*options.ClientOptions)
}

// Option 配置 Driver。
type Option func(*Driver)

// WithClientOptions 在 ApplyURI 之后对客户端选项做额外配置，例如超时或 TLS。
func WithClientOptions(fn func(*options.ClientOptions)) Option {
	return func(d *Driver) {
		d.configure = fn
	}
}

// New 创建 Driver。defaultDatabase 为空时使用 DefaultDatabase。
func New(defaultDatabase string, opts ...Option) *Driver {
	if defaultDatabase == "" {
		defaultDatabase = DefaultDatabase
	}
	d := &Driver{defaultDatabase: defaultDatabase}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Connect 实现 connect.Driver。
func (d *Driver) Connect(ctx context.Context, uri string) (connect.Conn, error) {
	name, err := d.databaseName(uri)
	if err != nil {
		return nil, err
	}

	opts := options.Client().ApplyURI(uri)
	if d.configure != nil {
		d.configure(opts)
	}

	client, err := mongo.Connect(opts)
	if err != nil {
		return nil, fmt.Errorf("connecting to mongodb: %w", err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.WithoutCancel(ctx))
		return nil, fmt.Errorf("pinging mongodb: %w", err)
	}

	return &Conn{client: client, db: client.Database(name)}, nil
}

// databaseName 解析连接字符串中的数据库名。
func (d *Driver) databaseName(uri string) (string, error) {
	cs, err := connstring.ParseAndValidate(uri)
	if err != nil {
		return "", fmt.Errorf("parsing mongodb uri: %w", err)
	}
	if cs.Database == "" {
		return d.defaultDatabase, nil
	}
	return cs.Database, nil
}

// Conn 是 MongoDB 连接句柄，对应连接字符串中的数据库。
type Conn struct {
	client *mongo.Client
	db     *mongo.Database
}

// DatabaseName 实现 connect.Conn。
func (c *Conn) DatabaseName() string {
	return c.db.Name()
}

// Collection 实现 connect.Conn，返回 *mongo.Collection。
func (c *Conn) Collection(name string) (connect.Collection, error) {
	return c.db.Collection(name), nil
}

// Client 返回底层的 *mongo.Client。
func (c *Conn) Client() *mongo.Client {
	return c.client
}

// Database 返回底层的 *mongo.Database。
func (c *Conn) Database() *mongo.Database {
	return c.db
}
