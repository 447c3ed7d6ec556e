package connect

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/qq1060656096/connreg/maputil"
	"github.com/qq1060656096/connreg/registry"
)

// Registry 记忆化连接句柄和集合句柄。
//
// 连接缓存以连接字符串为键；集合缓存以 Namespace（数据库名 + 集合名）为键。
// 两个缓存都在首次使用时惰性填充，槽位在 Registry 的生命周期内永不移除，
// 连接失败的结果同样会被保留（不会自动重试）。
//
// Registry 的所有方法都是并发安全的。
type Registry struct {
	driver      Driver
	log         zerolog.Logger
	connections *registry.Cache[string, Conn]
	collections *registry.Cache[Namespace, Collection]
}

// Option 配置 Registry。
type Option func(*Registry)

// WithLogger 设置 Registry 使用的日志记录器，默认不输出日志。
func WithLogger(log zerolog.Logger) Option {
	return func(r *Registry) {
		r.log = log
	}
}

// New 创建一个使用 driver 建立连接的 Registry。
func New(driver Driver, opts ...Option) *Registry {
	r := &Registry{
		driver: driver,
		log:    zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	r.connections = registry.NewCache(r.open)
	// 集合句柄依赖调用方已解析的连接，通过 GetWith 创建
	r.collections = registry.NewCache[Namespace, Collection](nil)
	return r
}

// Connections 返回连接缓存，可用于查看或预置连接句柄。
func (r *Registry) Connections() *registry.Cache[string, Conn] {
	return r.connections
}

// Collections 返回集合缓存，可用于查看或预置集合句柄。
func (r *Registry) Collections() *registry.Cache[Namespace, Collection] {
	return r.collections
}

// open 是连接缓存的 Opener，每个连接字符串至多调用一次。
func (r *Registry) open(ctx context.Context, uri string) (Conn, error) {
	redacted := Redact(uri)
	log := r.log.With().
		Str("uri", redacted).
		Str("attempt", uuid.NewString()).
		Logger()

	log.Debug().Msg("Connecting")
	start := time.Now()

	conn, err := r.driver.Connect(ctx, uri)
	if err == nil && conn == nil {
		err = ErrNilConn
	}
	if err != nil {
		log.Error().Err(err).Dur("elapsed", time.Since(start)).Msg("Connect failed")
		return nil, registry.NewErrOpenFailed(redacted, err)
	}

	log.Info().
		Str("database", conn.DatabaseName()).
		Dur("elapsed", time.Since(start)).
		Msg("Connected")
	return conn, nil
}

// ResolveOne 返回 uri 对应的连接句柄，必要时建立连接。
//
// 同一个 uri 的并发调用共享同一次连接过程。连接失败时返回的错误
// 可以通过 errors.Is 判断驱动的原始错误，并且该失败会被缓存：
// 之后对同一 uri 的调用直接返回同一个错误，不会再次调用驱动。
func (r *Registry) ResolveOne(ctx context.Context, uri string) (Conn, error) {
	if uri == "" {
		return nil, ErrEmptyURI
	}
	return r.connections.Get(ctx, uri)
}

// ResolveMany 并发解析多个 uri，结果顺序与输入一致。
//
// 任何一个失败都会使整体失败，并返回该错误。
func (r *Registry) ResolveMany(ctx context.Context, uris []string) ([]Conn, error) {
	conns := make([]Conn, len(uris))
	g, gctx := errgroup.WithContext(ctx)
	for i, uri := range uris {
		g.Go(func() error {
			conn, err := r.ResolveOne(gctx, uri)
			if err != nil {
				return err
			}
			conns[i] = conn
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return conns, nil
}

// ResolveCollections 解析 uri 对应的连接，并返回 spec 中请求的集合句柄。
//
// 集合句柄以（数据库名, 集合名）为键缓存，因此解析到同一数据库的不同 uri
// 会拿到相同的集合句柄。返回结果的形状与 spec 一致。
func (r *Registry) ResolveCollections(ctx context.Context, uri string, spec CollectionSpec) (CollectionSet, error) {
	if err := spec.validate(); err != nil {
		return CollectionSet{}, err
	}

	conn, err := r.ResolveOne(ctx, uri)
	if err != nil {
		return CollectionSet{}, err
	}

	set := CollectionSet{Database: conn.DatabaseName()}
	if spec.IsAliases() {
		set.ByAlias = make(map[string]Collection, len(spec.aliases))
		for _, alias := range maputil.SortedKeys(spec.aliases) {
			c, err := r.collection(ctx, conn, spec.aliases[alias])
			if err != nil {
				return CollectionSet{}, err
			}
			set.ByAlias[alias] = c
		}
		return set, nil
	}

	set.List = make([]Collection, len(spec.names))
	for i, name := range spec.names {
		c, err := r.collection(ctx, conn, name)
		if err != nil {
			return CollectionSet{}, err
		}
		set.List[i] = c
	}
	return set, nil
}

func (r *Registry) collection(ctx context.Context, conn Conn, name string) (Collection, error) {
	ns := Namespace{DB: conn.DatabaseName(), Collection: name}
	return r.collections.GetWith(ctx, ns, func(ctx context.Context, ns Namespace) (Collection, error) {
		c, err := conn.Collection(ns.Collection)
		if err != nil {
			r.log.Error().Err(err).Str("namespace", ns.String()).Msg("Collection lookup failed")
			return nil, NewErrCollectionFailed(ns, err)
		}
		r.log.Debug().Str("namespace", ns.String()).Msg("Collection cached")
		return c, nil
	})
}

// ResolveManyWithCollections 对每个 URISpec 并发调用 ResolveCollections。
//
// 结果顺序与 reqs 一致；任何一个失败都会使整体失败。
func (r *Registry) ResolveManyWithCollections(ctx context.Context, reqs []URISpec) ([]CollectionSet, error) {
	sets := make([]CollectionSet, len(reqs))
	g, gctx := errgroup.WithContext(ctx)
	for i, req := range reqs {
		g.Go(func() error {
			set, err := r.ResolveCollections(gctx, req.URI, req.Spec)
			if err != nil {
				return err
			}
			sets[i] = set
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return sets, nil
}
