package cache_test

import (
	"sync"
	"testing"

	"github.com/sandrolain/bindexpr/pkg/cache"
	"github.com/sandrolain/bindexpr/pkg/parser"
	"github.com/sandrolain/bindexpr/pkg/types"
)

func parseFn(input string) func() (*types.BindingExpression, error) {
	return func() (*types.BindingExpression, error) {
		return parser.Parse(input)
	}
}

func TestGetSet(t *testing.T) {
	c := cache.New(4)

	if _, ok := c.Get("foo.bar"); ok {
		t.Fatal("Get on empty cache reported a hit")
	}

	expr, err := parser.Parse("foo.bar")
	if err != nil {
		t.Fatal(err)
	}
	c.Set("foo.bar", expr)

	got, ok := c.Get("foo.bar")
	if !ok {
		t.Fatal("Expected a cache hit")
	}
	if got != expr {
		t.Error("Cache returned a different expression instance")
	}
	if c.Len() != 1 {
		t.Errorf("Len = %d, want 1", c.Len())
	}
}

func TestGetOrParseParsesOnce(t *testing.T) {
	c := cache.New(4)

	calls := 0
	parse := func() (*types.BindingExpression, error) {
		calls++
		return parser.Parse("user.accounts[0]")
	}

	for i := 0; i < 5; i++ {
		if _, err := c.GetOrParse("user.accounts[0]", parse); err != nil {
			t.Fatal(err)
		}
	}
	if calls != 1 {
		t.Errorf("Expected 1 parse call, got %d", calls)
	}
}

func TestErrorsAreNotCached(t *testing.T) {
	c := cache.New(4)

	calls := 0
	parse := func() (*types.BindingExpression, error) {
		calls++
		return parser.Parse("foo[")
	}

	for i := 0; i < 3; i++ {
		if _, err := c.GetOrParse("foo[", parse); err == nil {
			t.Fatal("Expected a parse error")
		}
	}
	if calls != 3 {
		t.Errorf("Expected 3 parse calls for failing input, got %d", calls)
	}
	if c.Len() != 0 {
		t.Errorf("Failing input was cached, Len = %d", c.Len())
	}
}

func TestEviction(t *testing.T) {
	c := cache.New(2)

	for _, input := range []string{"a", "b", "c"} {
		if _, err := c.GetOrParse(input, parseFn(input)); err != nil {
			t.Fatal(err)
		}
	}

	if c.Len() != 2 {
		t.Fatalf("Len = %d, want 2", c.Len())
	}
	if _, ok := c.Get("a"); ok {
		t.Error("LRU entry 'a' should have been evicted")
	}
	if _, ok := c.Get("c"); !ok {
		t.Error("MRU entry 'c' should still be present")
	}
}

func TestEvictionRespectsRecency(t *testing.T) {
	c := cache.New(2)

	_, _ = c.GetOrParse("a", parseFn("a"))
	_, _ = c.GetOrParse("b", parseFn("b"))

	// Touch 'a' so that 'b' becomes the eviction candidate.
	if _, ok := c.Get("a"); !ok {
		t.Fatal("Expected 'a' to be cached")
	}

	_, _ = c.GetOrParse("c", parseFn("c"))

	if _, ok := c.Get("a"); !ok {
		t.Error("Recently used 'a' was evicted")
	}
	if _, ok := c.Get("b"); ok {
		t.Error("Least recently used 'b' survived eviction")
	}
}

func TestInvalidateAndClear(t *testing.T) {
	c := cache.New(4)
	_, _ = c.GetOrParse("a", parseFn("a"))
	_, _ = c.GetOrParse("b", parseFn("b"))

	c.Invalidate("a")
	if _, ok := c.Get("a"); ok {
		t.Error("Invalidated entry still present")
	}
	if c.Len() != 1 {
		t.Errorf("Len = %d, want 1", c.Len())
	}

	c.Clear()
	if c.Len() != 0 {
		t.Errorf("Len after Clear = %d, want 0", c.Len())
	}
}

func TestDefaultCapacity(t *testing.T) {
	c := cache.New(0)
	if c.Capacity() != 256 {
		t.Errorf("Capacity = %d, want default 256", c.Capacity())
	}
}

func TestConcurrentAccess(t *testing.T) {
	c := cache.New(8)
	inputs := []string{"a.b", "c[0]", "d['k k']", "e[f.g]"}

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				input := inputs[(i+j)%len(inputs)]
				expr, err := c.GetOrParse(input, parseFn(input))
				if err != nil {
					t.Errorf("GetOrParse(%q): %v", input, err)
					return
				}
				if expr.String() != input {
					t.Errorf("GetOrParse(%q) returned %s", input, expr)
					return
				}
			}
		}(i)
	}
	wg.Wait()
}
