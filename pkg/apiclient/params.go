package apiclient

import (
	"net/url"
	"strconv"
)

// Ptr returns a pointer to v. Optional request fields are pointers so that an
// intentional zero value can be told apart from "not set".
func Ptr[T any](v T) *T {
	return &v
}

// Query collects URL query parameters. The Set* helpers skip nil values, so an
// option the caller never set is absent from the URL.
type Query url.Values

// Set adds a required parameter.
func (q Query) Set(key, value string) Query {
	url.Values(q).Set(key, value)
	return q
}

// SetString adds key when v is non-nil.
func (q Query) SetString(key string, v *string) Query {
	if v != nil {
		q.Set(key, *v)
	}
	return q
}

// SetInt adds key when v is non-nil.
func (q Query) SetInt(key string, v *int) Query {
	if v != nil {
		q.Set(key, strconv.Itoa(*v))
	}
	return q
}

// SetBool adds key when v is non-nil, encoded as "true" or "false".
func (q Query) SetBool(key string, v *bool) Query {
	if v != nil {
		q.Set(key, strconv.FormatBool(*v))
	}
	return q
}

// AddStrings repeats key once per element (key=a&key=b). A list with no
// elements has no query form and is skipped.
func (q Query) AddStrings(key string, v []string) Query {
	for _, s := range v {
		url.Values(q).Add(key, s)
	}
	return q
}

// Encode returns the URL-encoded form, sorted by key. A nil Query encodes to "".
func (q Query) Encode() string {
	return url.Values(q).Encode()
}

// Payload is a JSON request body. Like Query, the Set* helpers omit nil
// values; a non-nil empty slice or map is sent as [] or {}.
type Payload map[string]any

// Set stores a required field.
func (p Payload) Set(key string, v any) Payload {
	p[key] = v
	return p
}

// SetString stores key when v is non-nil.
func (p Payload) SetString(key string, v *string) Payload {
	if v != nil {
		p[key] = *v
	}
	return p
}

// SetInt stores key when v is non-nil.
func (p Payload) SetInt(key string, v *int) Payload {
	if v != nil {
		p[key] = *v
	}
	return p
}

// SetBool stores key when v is non-nil.
func (p Payload) SetBool(key string, v *bool) Payload {
	if v != nil {
		p[key] = *v
	}
	return p
}

// SetStrings stores key when v is non-nil.
func (p Payload) SetStrings(key string, v []string) Payload {
	if v != nil {
		p[key] = v
	}
	return p
}

// SetMap stores key when v is non-nil.
func (p Payload) SetMap(key string, v map[string]any) Payload {
	if v != nil {
		p[key] = v
	}
	return p
}
