package connect

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

func TestParseRequest_BareURI(t *testing.T) {
	req, err := ParseRequest(uriApp, "")
	require.NoError(t, err)
	assert.Equal(t, KindOne, req.Kind())
	assert.Equal(t, uriApp, req.uri)
}

func TestParseRequest_JSONString(t *testing.T) {
	req, err := ParseRequest(`"`+uriApp+`"`, "")
	require.NoError(t, err)
	assert.Equal(t, KindOne, req.Kind())
	assert.Equal(t, uriApp, req.uri)
}

func TestParseRequest_URIWithNames(t *testing.T) {
	req, err := ParseRequest(uriApp, `["users", "orders"]`)
	require.NoError(t, err)
	assert.Equal(t, KindCollections, req.Kind())
	assert.False(t, req.spec.IsAliases())
	assert.Equal(t, []string{"users", "orders"}, req.spec.CollectionNames())
}

func TestParseRequest_URIWithAliases(t *testing.T) {
	req, err := ParseRequest(uriApp, `{"u": "users", "o": "orders"}`)
	require.NoError(t, err)
	assert.Equal(t, KindCollections, req.Kind())
	require.True(t, req.spec.IsAliases())
	assert.Equal(t, map[string]string{"u": "users", "o": "orders"}, req.spec.aliases)
}

func TestParseRequest_ManyURIs(t *testing.T) {
	req, err := ParseRequest(`["`+uriCRM+`", "`+uriApp+`"]`, "")
	require.NoError(t, err)
	assert.Equal(t, KindMany, req.Kind())
	assert.Equal(t, []string{uriCRM, uriApp}, req.uris)
}

func TestParseRequest_URIMapKeepsDocumentOrder(t *testing.T) {
	doc := `{"` + uriCRM + `": ["clients"], "` + uriApp + `": {"u": "users"}, "` + uriApp2 + `": []}`
	req, err := ParseRequest(doc, `["ignored"]`)
	require.NoError(t, err)
	assert.Equal(t, KindManyCollections, req.Kind())
	require.Len(t, req.specs, 3)

	assert.Equal(t, uriCRM, req.specs[0].URI)
	assert.Equal(t, []string{"clients"}, req.specs[0].Spec.CollectionNames())
	assert.Equal(t, uriApp, req.specs[1].URI)
	assert.True(t, req.specs[1].Spec.IsAliases())
	assert.Equal(t, uriApp2, req.specs[2].URI)
	assert.Empty(t, req.specs[2].Spec.CollectionNames())
}

func TestParseRequest_Errors(t *testing.T) {
	tests := []struct {
		name        string
		target      string
		collections string
	}{
		{"empty target", "  ", ""},
		{"malformed object", `{"a": [`, ""},
		{"malformed array", `["a",`, ""},
		{"number target", `42`, ""},
		{"non-string uri in list", `["a", 1]`, ""},
		{"non-string collection name", uriApp, `["users", 2]`},
		{"non-string alias target", uriApp, `{"u": true}`},
		{"scalar collections", uriApp, `"users"`},
		{"malformed collections", uriApp, `["users"`},
		{"bad spec in uri map", `{"` + uriApp + `": "users"}`, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseRequest(tt.target, tt.collections)
			assert.ErrorIs(t, err, ErrInvalidRequest)
		})
	}
}

func TestParseRequest_RoundTripThroughConnect(t *testing.T) {
	r, _ := newTestRegistry()

	req, err := ParseRequest(`{"`+uriApp+`": {"u": "users"}, "`+uriApp2+`": ["users"]}`, "")
	require.NoError(t, err)

	resp, err := r.Connect(context.Background(), req)
	require.NoError(t, err)
	require.Len(t, resp.Sets, 2)

	u, ok := resp.Sets[0].Get("u")
	require.True(t, ok)
	assert.Same(t, u, resp.Sets[1].List[0])
}

func TestReport(t *testing.T) {
	r, _ := newTestRegistry()
	ctx := context.Background()

	resp, err := r.Connect(ctx, OneURI(uriApp))
	require.NoError(t, err)
	out, err := Report(resp)
	require.NoError(t, err)
	assert.JSONEq(t, `{"kind":"one","database":"app"}`, out)

	resp, err = r.Connect(ctx, ManyURIs(uriApp, uriCRM))
	require.NoError(t, err)
	out, err = Report(resp)
	require.NoError(t, err)
	assert.JSONEq(t, `{"kind":"many","databases":["app","crm"]}`, out)

	resp, err = r.Connect(ctx, URIWithSpec(uriApp, Aliases(map[string]string{"a.b": "users"})))
	require.NoError(t, err)
	out, err = Report(resp)
	require.NoError(t, err)
	assert.JSONEq(t, `{"kind":"collections","database":"app","collections":{"a.b":"users"}}`, out)

	resp, err = r.Connect(ctx, URIMapWithSpecs(
		URISpec{URI: uriCRM, Spec: Names("clients", "deals")},
		URISpec{URI: uriApp, Spec: Names()},
	))
	require.NoError(t, err)
	out, err = Report(resp)
	require.NoError(t, err)
	assert.True(t, gjson.Valid(out))
	assert.Equal(t, "many_collections", gjson.Get(out, "kind").String())
	assert.Equal(t, "crm", gjson.Get(out, "results.0.database").String())
	assert.Equal(t, "deals", gjson.Get(out, "results.0.collections.1").String())
	assert.Equal(t, "app", gjson.Get(out, "results.1.database").String())
	assert.Equal(t, int64(0), gjson.Get(out, "results.1.collections.#").Int())
}

func TestReport_UnknownKind(t *testing.T) {
	_, err := Report(Response{})
	assert.ErrorIs(t, err, ErrInvalidRequest)
}
