package connect

import (
	"context"
	"slices"
)

// Kind 表示请求的形状。
type Kind int

const (
	KindUnknown Kind = iota
	// KindOne 单个连接字符串
	KindOne
	// KindMany 多个连接字符串
	KindMany
	// KindCollections 单个连接字符串 + 集合请求
	KindCollections
	// KindManyCollections 多个（连接字符串, 集合请求）
	KindManyCollections
)

// String 返回 Kind 的名称。
func (k Kind) String() string {
	switch k {
	case KindOne:
		return "one"
	case KindMany:
		return "many"
	case KindCollections:
		return "collections"
	case KindManyCollections:
		return "many_collections"
	default:
		return "unknown"
	}
}

// Request 是 Connect 的统一入参，只能通过 OneURI、ManyURIs、URIWithSpec、
// URIMapWithSpecs 构造。
type Request struct {
	kind  Kind
	uri   string
	uris  []string
	spec  CollectionSpec
	specs []URISpec
}

// OneURI 构造单连接请求，对应 ResolveOne。
func OneURI(uri string) Request {
	return Request{kind: KindOne, uri: uri}
}

// ManyURIs 构造多连接请求，对应 ResolveMany。
func ManyURIs(uris ...string) Request {
	return Request{kind: KindMany, uris: slices.Clone(uris)}
}

// URIWithSpec 构造集合请求，对应 ResolveCollections。
func URIWithSpec(uri string, spec CollectionSpec) Request {
	return Request{kind: KindCollections, uri: uri, spec: spec}
}

// URIMapWithSpecs 构造多连接集合请求，对应 ResolveManyWithCollections。
func URIMapWithSpecs(specs ...URISpec) Request {
	return Request{kind: KindManyCollections, specs: slices.Clone(specs)}
}

// Kind 返回请求的形状。
func (req Request) Kind() Kind {
	return req.kind
}

// Response 是 Connect 的结果，按 Kind 填充对应字段。
type Response struct {
	Kind        Kind
	Conn        Conn            // KindOne
	Conns       []Conn          // KindMany
	Collections CollectionSet   // KindCollections
	Sets        []CollectionSet // KindManyCollections
}

// Connect 根据请求的形状分派到对应的解析方法。
func (r *Registry) Connect(ctx context.Context, req Request) (Response, error) {
	resp := Response{Kind: req.kind}
	var err error

	switch req.kind {
	case KindOne:
		resp.Conn, err = r.ResolveOne(ctx, req.uri)
	case KindMany:
		resp.Conns, err = r.ResolveMany(ctx, req.uris)
	case KindCollections:
		resp.Collections, err = r.ResolveCollections(ctx, req.uri, req.spec)
	case KindManyCollections:
		resp.Sets, err = r.ResolveManyWithCollections(ctx, req.specs)
	default:
		return Response{}, NewErrInvalidRequest("unknown request kind %d", int(req.kind))
	}

	if err != nil {
		return Response{}, err
	}
	return resp, nil
}
