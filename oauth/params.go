package oauth

import (
	"slices"
	"strings"
)

// Param is a single request parameter.
type Param struct {
	Key   string
	Value string
}

// Params is an ordered list of request parameters. Keys are unique; Set
// replaces an existing value in place.
type Params []Param

// Get returns the value for key and whether it is present.
func (p Params) Get(key string) (string, bool) {
	for _, kv := range p {
		if kv.Key == key {
			return kv.Value, true
		}
	}
	return "", false
}

// Set adds key or replaces its value.
func (p *Params) Set(key, value string) {
	for i := range *p {
		if (*p)[i].Key == key {
			(*p)[i].Value = value
			return
		}
	}
	*p = append(*p, Param{Key: key, Value: value})
}

// Del removes key if present.
func (p *Params) Del(key string) {
	*p = slices.DeleteFunc(*p, func(kv Param) bool { return kv.Key == key })
}

// Clone returns a copy that shares nothing with p.
func (p Params) Clone() Params {
	return slices.Clone(p)
}

// Encode returns the parameters as an application/x-www-form-urlencoded
// string in insertion order, using RFC 3986 escaping.
func (p Params) Encode() string {
	pairs := make([]string, len(p))
	for i, kv := range p {
		pairs[i] = Encode(kv.Key) + "=" + Encode(kv.Value)
	}
	return strings.Join(pairs, "&")
}

// normalized returns the encoded key=value pairs sorted lexicographically
// and joined with &, the parameter part of the signature base string.
func (p Params) normalized() string {
	pairs := make([]string, 0, len(p))
	for _, kv := range p {
		if kv.Key == "oauth_signature" {
			continue
		}
		pairs = append(pairs, Encode(kv.Key)+"="+Encode(kv.Value))
	}
	slices.Sort(pairs)
	return strings.Join(pairs, "&")
}
