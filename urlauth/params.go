package urlauth

import "strings"

// Params is an ordered key/value list for query strings and hash
// fragments. Dashboards read their hash as a plain "k=v&k=v" join, not a
// canonical query string, so order and raw text must survive a rewrite:
// the fragment is parsed once, mutated, and serialized once.
type Params struct {
	pairs []pair
}

type pair struct {
	key      string
	value    string
	hasValue bool // distinguishes "flag" from "flag="
}

// ParseParams splits a raw query or fragment on "&". Keys and values are
// kept as-is; callers escape values when setting new ones.
func ParseParams(raw string) *Params {
	p := &Params{}
	if raw == "" {
		return p
	}
	for _, part := range strings.Split(raw, "&") {
		if part == "" {
			continue
		}
		key, value, found := strings.Cut(part, "=")
		p.pairs = append(p.pairs, pair{key: key, value: value, hasValue: found})
	}
	return p
}

// Set replaces the first pair with the given key in place and drops any
// further duplicates; a missing key is appended.
func (p *Params) Set(key, value string) {
	replaced := false
	kept := p.pairs[:0]
	for _, pr := range p.pairs {
		if pr.key != key {
			kept = append(kept, pr)
			continue
		}
		if !replaced {
			kept = append(kept, pair{key: key, value: value, hasValue: true})
			replaced = true
		}
	}
	p.pairs = kept
	if !replaced {
		p.pairs = append(p.pairs, pair{key: key, value: value, hasValue: true})
	}
}

// Delete removes every pair with the given key.
func (p *Params) Delete(key string) {
	kept := p.pairs[:0]
	for _, pr := range p.pairs {
		if pr.key != key {
			kept = append(kept, pr)
		}
	}
	p.pairs = kept
}

// Get returns the value of the first pair with the given key.
func (p *Params) Get(key string) (string, bool) {
	for _, pr := range p.pairs {
		if pr.key == key {
			return pr.value, true
		}
	}
	return "", false
}

// Count returns how many pairs carry the given key.
func (p *Params) Count(key string) int {
	n := 0
	for _, pr := range p.pairs {
		if pr.key == key {
			n++
		}
	}
	return n
}

// Encode joins the pairs back with "&", preserving order.
func (p *Params) Encode() string {
	parts := make([]string, 0, len(p.pairs))
	for _, pr := range p.pairs {
		if pr.hasValue {
			parts = append(parts, pr.key+"="+pr.value)
		} else {
			parts = append(parts, pr.key)
		}
	}
	return strings.Join(parts, "&")
}
