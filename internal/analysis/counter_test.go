package analysis

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCounter_InsertionOrder(t *testing.T) {
	c := NewCounter[string]()
	c.Add("b")
	c.Add("a")
	c.Add("b")
	c.Add("c")

	assert.Equal(t, []string{"b", "a", "c"}, c.Keys())
	assert.Equal(t, 2, c.Count("b"))
	assert.Equal(t, 4, c.Total())
	assert.Equal(t, 3, c.Len())
}

func TestCounter_MostCommonStableTies(t *testing.T) {
	c := NewCounter[int]()
	// 14 and 9 both end at count 2; 14 was seen first and must rank first.
	for _, h := range []int{14, 9, 14, 9, 22} {
		c.Add(h)
	}

	top := c.MostCommon(3)
	require.Len(t, top, 3)
	assert.Equal(t, Entry[int]{Key: 14, Count: 2}, top[0])
	assert.Equal(t, Entry[int]{Key: 9, Count: 2}, top[1])
	assert.Equal(t, Entry[int]{Key: 22, Count: 1}, top[2])
}

func TestCounter_MostCommonTruncates(t *testing.T) {
	c := NewCounter[string]()
	c.Add("x")
	c.Add("y")

	assert.Len(t, c.MostCommon(1), 1)
	assert.Len(t, c.MostCommon(5), 2)
}

func TestCounter_MaxFirstSeenWins(t *testing.T) {
	c := NewCounter[string]()
	c.AddN("Monday", 3)
	c.AddN("Tuesday", 3)

	day, count, ok := c.Max()
	require.True(t, ok)
	assert.Equal(t, "Monday", day)
	assert.Equal(t, 3, count)
}

func TestCounter_MaxEmpty(t *testing.T) {
	c := NewCounter[string]()
	_, _, ok := c.Max()
	assert.False(t, ok)
}

func TestCounter_MarshalJSONPreservesOrder(t *testing.T) {
	c := NewCounter[int]()
	c.Add(23)
	c.Add(0)
	c.Add(23)

	data, err := json.Marshal(c)
	require.NoError(t, err)
	assert.Equal(t, `{"23":2,"0":1}`, string(data))
}

func TestCounter_MarshalJSONEmpty(t *testing.T) {
	data, err := json.Marshal(NewCounter[string]())
	require.NoError(t, err)
	assert.Equal(t, `{}`, string(data))
}
