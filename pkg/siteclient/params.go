package siteclient

import (
	"strconv"

	"github.com/nghia89/landingpage-wedding-sub000/pkg/apiclient"
)

// Each resource declares its filters as a schema: logical name → backend
// query key + value encoding. One shared encoder consumes the schemas, so a
// facade never hand-writes parameter translation (the boolean active →
// "isActive" string mapping lives in the schema, not in code).

type queryField struct {
	logical string
	backend string
	encode  func(any) string
}

type querySchema []queryField

func (s querySchema) params(values map[string]any) apiclient.Params {
	out := apiclient.Params{}
	for _, f := range s {
		v, ok := values[f.logical]
		if !ok {
			continue
		}
		if enc := f.encode(v); enc != "" {
			out[f.backend] = enc
		}
	}
	return out
}

// strVal encodes strings, omitting empties.
func strVal(v any) string {
	s, _ := v.(string)
	return s
}

// intVal encodes positive ints, omitting zero (unset).
func intVal(v any) string {
	n, _ := v.(int)
	if n <= 0 {
		return ""
	}
	return strconv.Itoa(n)
}

// boolVal encodes an optional bool as "true"/"false", omitting nil.
func boolVal(v any) string {
	b, _ := v.(*bool)
	if b == nil {
		return ""
	}
	return strconv.FormatBool(*b)
}

var (
	bookingQuerySchema = querySchema{
		{logical: "page", backend: "page", encode: intVal},
		{logical: "limit", backend: "limit", encode: intVal},
		{logical: "status", backend: "status", encode: strVal},
		{logical: "date", backend: "date", encode: strVal},
		{logical: "search", backend: "search", encode: strVal},
	}

	serviceQuerySchema = querySchema{
		{logical: "page", backend: "page", encode: intVal},
		{logical: "limit", backend: "limit", encode: intVal},
		{logical: "category", backend: "category", encode: strVal},
		{logical: "active", backend: "isActive", encode: boolVal},
	}

	galleryQuerySchema = querySchema{
		{logical: "page", backend: "page", encode: intVal},
		{logical: "limit", backend: "limit", encode: intVal},
		{logical: "category", backend: "category", encode: strVal},
	}

	reviewQuerySchema = querySchema{
		{logical: "page", backend: "page", encode: intVal},
		{logical: "limit", backend: "limit", encode: intVal},
		{logical: "rating", backend: "rating", encode: intVal},
	}

	promotionQuerySchema = querySchema{
		{logical: "limit", backend: "limit", encode: intVal},
		{logical: "active", backend: "isActive", encode: boolVal},
	}
)
