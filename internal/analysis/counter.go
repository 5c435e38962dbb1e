package analysis

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
)

// Counter is a frequency map that remembers the first-insertion order of its
// keys. Peak detection and tie-breaking downstream depend on that order, so
// a plain map (randomized iteration) cannot serve here.
type Counter[K comparable] struct {
	keys   []K
	counts map[K]int
}

// Entry pairs a key with its count.
type Entry[K comparable] struct {
	Key   K
	Count int
}

// NewCounter creates an empty counter.
func NewCounter[K comparable]() *Counter[K] {
	return &Counter[K]{counts: make(map[K]int)}
}

// Add increments the count for key by one.
func (c *Counter[K]) Add(key K) {
	c.AddN(key, 1)
}

// AddN increments the count for key by n.
func (c *Counter[K]) AddN(key K, n int) {
	if _, ok := c.counts[key]; !ok {
		c.keys = append(c.keys, key)
	}
	c.counts[key] += n
}

// Count returns the count for key, zero if absent.
func (c *Counter[K]) Count(key K) int {
	return c.counts[key]
}

// Has reports whether key has been observed.
func (c *Counter[K]) Has(key K) bool {
	_, ok := c.counts[key]
	return ok
}

// Len returns the number of distinct keys.
func (c *Counter[K]) Len() int {
	return len(c.keys)
}

// Total returns the sum of all counts.
func (c *Counter[K]) Total() int {
	total := 0
	for _, n := range c.counts {
		total += n
	}
	return total
}

// Keys returns the keys in first-insertion order.
func (c *Counter[K]) Keys() []K {
	out := make([]K, len(c.keys))
	copy(out, c.keys)
	return out
}

// Entries returns all entries in first-insertion order.
func (c *Counter[K]) Entries() []Entry[K] {
	out := make([]Entry[K], 0, len(c.keys))
	for _, k := range c.keys {
		out = append(out, Entry[K]{Key: k, Count: c.counts[k]})
	}
	return out
}

// MostCommon returns the n highest-count entries, count descending. The sort
// is stable over insertion order, so equal counts rank in first-seen order.
func (c *Counter[K]) MostCommon(n int) []Entry[K] {
	entries := c.Entries()
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Count > entries[j].Count
	})
	if n >= 0 && n < len(entries) {
		entries = entries[:n]
	}
	return entries
}

// Max returns the first key, in insertion order, holding the strictly
// maximal count. ok is false for an empty counter.
func (c *Counter[K]) Max() (key K, count int, ok bool) {
	for _, k := range c.keys {
		if n := c.counts[k]; !ok || n > count {
			key, count, ok = k, n, true
		}
	}
	return key, count, ok
}

// MarshalJSON renders the counter as a JSON object with keys in insertion
// order. Non-string keys are stringified, matching how distributions appear
// on the wire (e.g. hour histograms keyed "0".."23").
func (c *Counter[K]) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range c.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		name, err := json.Marshal(fmt.Sprint(k))
		if err != nil {
			return nil, err
		}
		buf.Write(name)
		buf.WriteByte(':')
		fmt.Fprintf(&buf, "%d", c.counts[k])
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
