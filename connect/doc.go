/*
Package connect 在数据库驱动之上提供连接句柄与集合句柄的记忆化。

# 概述

给定一个或多个连接字符串，Registry 返回缓存的连接句柄；给定连接字符串与集合请求，
Registry 返回缓存的集合句柄。集合句柄以（数据库名, 集合名）为键，
因此解析到同一数据库的不同连接字符串会共享同一个集合句柄。

驱动、网络、认证和协议都不在本包范围内，通过 Driver/Conn/Collection 接口接入：

	type Driver interface {
	    Connect(ctx context.Context, uri string) (Conn, error)
	}

# 入口

  - ResolveOne: 单个连接字符串 -> Conn
  - ResolveMany: 多个连接字符串 -> []Conn（顺序与输入一致，任一失败则整体失败）
  - ResolveCollections: 连接字符串 + CollectionSpec -> CollectionSet
  - ResolveManyWithCollections: []URISpec -> []CollectionSet
  - Connect: 按 Request 的形状分派到以上四个方法

# 使用示例

	reg := connect.New(mongodb.New("test"), connect.WithLogger(log.Logger))

	conn, err := reg.ResolveOne(ctx, "mongodb://localhost:27017/app")

	set, err := reg.ResolveCollections(ctx, "mongodb://localhost:27017/app",
	    connect.Aliases(map[string]string{"u": "users", "o": "orders"}))
	users, _ := set.Get("u")

	req, err := connect.ParseRequest(`{"mongodb://a/app": ["users"], "mongodb://b/crm": {"c": "clients"}}`, "")
	resp, err := reg.Connect(ctx, req)

# 错误处理

连接失败会被缓存：之后对同一连接字符串的调用返回同一个错误，不会再次调用驱动。
需要重新连接时只能创建新的 Registry。返回的错误可以通过 errors.Is 判断驱动的原始错误。

# 缓存

Connections 与 Collections 返回底层的 registry.Cache，可以查看或预置槽位：

	reg.Connections().Store("mongodb://fake/app", fakeConn)
*/
package connect
