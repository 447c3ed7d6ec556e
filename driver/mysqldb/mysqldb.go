// Package mysqldb 把 go-sql-driver/mysql 适配为 connect.Driver。
//
// 连接字符串是 MySQL DSN，数据库名取自 DSN 的 DBName，
// 集合句柄对应数据库中的一张表。
package mysqldb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/go-sql-driver/mysql"

	"github.com/qq1060656096/connreg/connect"
)

// ErrNoDatabase 表示 DSN 中没有指定数据库。
var ErrNoDatabase = errors.New("connreg.mysqldb: dsn has no database name")

var _ connect.Driver = (*Driver)(nil)
var _ connect.Conn = (*Conn)(nil)
var _ connect.Collection = (*Table)(nil)

// Driver 通过 mysql.NewConnector 打开 *sql.DB，并在返回前 Ping。
type Driver struct {
	configure func(*mysql.Config)
}

// New 创建 Driver。configure 可为 nil，用于在解析 DSN 后调整配置，例如超时。
func New(configure func(*mysql.Config)) *Driver {
	return &Driver{configure: configure}
}

// Connect 实现 connect.Driver。
func (d *Driver) Connect(ctx context.Context, dsn string) (connect.Conn, error) {
	cfg, err := d.config(dsn)
	if err != nil {
		return nil, err
	}

	connector, err := mysql.NewConnector(cfg)
	if err != nil {
		return nil, fmt.Errorf("creating mysql connector: %w", err)
	}

	db := sql.OpenDB(connector)
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("pinging mysql: %w", err)
	}

	return &Conn{db: db, name: cfg.DBName}, nil
}

func (d *Driver) config(dsn string) (*mysql.Config, error) {
	cfg, err := mysql.ParseDSN(dsn)
	if err != nil {
		return nil, fmt.Errorf("parsing mysql dsn: %w", err)
	}
	if cfg.DBName == "" {
		return nil, ErrNoDatabase
	}
	// 时间列解析为 time.Time
	cfg.ParseTime = true
	if d.configure != nil {
		d.configure(cfg)
	}
	return cfg, nil
}

// Conn 是 MySQL 连接句柄。
type Conn struct {
	db   *sql.DB
	name string
}

// DatabaseName 实现 connect.Conn。
func (c *Conn) DatabaseName() string {
	return c.name
}

// Collection 实现 connect.Conn，返回表句柄。
func (c *Conn) Collection(name string) (connect.Collection, error) {
	if name == "" {
		return nil, errors.New("table name can't be blank")
	}
	return &Table{DB: c.db, database: c.name, name: name}, nil
}

// DB 返回底层的 *sql.DB。
func (c *Conn) DB() *sql.DB {
	return c.db
}

// Table 是表句柄。
type Table struct {
	DB       *sql.DB
	database string
	name     string
}

// Name 实现 connect.Collection。
func (t *Table) Name() string {
	return t.name
}

// QualifiedName 返回带反引号的 `db`.`table`。
func (t *Table) QualifiedName() string {
	return fmt.Sprintf("`%s`.`%s`", t.database, t.name)
}
