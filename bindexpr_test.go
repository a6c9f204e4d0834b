package bindexpr_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/sandrolain/bindexpr"
	"github.com/sandrolain/bindexpr/pkg/parser"
	"github.com/sandrolain/bindexpr/pkg/types"
)

func TestParse(t *testing.T) {
	expr, err := bindexpr.Parse("user.accounts[0]")
	if err != nil {
		t.Fatal(err)
	}

	segs := expr.Segments()
	if len(segs) != 3 {
		t.Fatalf("Expected 3 segments, got %d", len(segs))
	}
	if segs[0].Type != types.SegmentKey || segs[0].Key != "user" {
		t.Errorf("Segment 0 = %+v, want key 'user'", segs[0])
	}
	if segs[2].Type != types.SegmentIndex || segs[2].Index != 0 {
		t.Errorf("Segment 2 = %+v, want index 0", segs[2])
	}
}

func TestParseError(t *testing.T) {
	_, err := bindexpr.Parse("user.")
	var perr *types.Error
	if !errors.As(err, &perr) {
		t.Fatalf("Expected *types.Error, got %T", err)
	}
	if perr.Code != types.ErrExpectedIdentifier {
		t.Errorf("Code = %s, want %s", perr.Code, types.ErrExpectedIdentifier)
	}
}

func TestParseWithOptions(t *testing.T) {
	_, err := bindexpr.Parse("a[b[c]]", parser.WithMaxDepth(1))
	var perr *types.Error
	if !errors.As(err, &perr) || perr.Code != types.ErrNestingTooDeep {
		t.Fatalf("Expected %s, got %v", types.ErrNestingTooDeep, err)
	}
}

func TestMustParse(t *testing.T) {
	expr := bindexpr.MustParse("foo.bar")
	if expr.Len() != 2 {
		t.Errorf("Len = %d, want 2", expr.Len())
	}

	defer func() {
		if recover() == nil {
			t.Error("MustParse of invalid input did not panic")
		}
	}()
	bindexpr.MustParse("foo[")
}

func TestNewCache(t *testing.T) {
	c := bindexpr.NewCache(8)
	expr, err := c.GetOrParse("foo.bar", func() (*types.BindingExpression, error) {
		return bindexpr.Parse("foo.bar")
	})
	if err != nil {
		t.Fatal(err)
	}
	cached, ok := c.Get("foo.bar")
	if !ok || cached != expr {
		t.Error("Expected the parsed expression to be cached")
	}
}

func TestVersion(t *testing.T) {
	if bindexpr.Version() == "" {
		t.Error("Version is empty")
	}
}

func ExampleParse() {
	expr, _ := bindexpr.Parse("user.accounts[0]['display name']")
	fmt.Println(expr)
	// Output: user.accounts[0]['display name']
}

func ExampleParse_nested() {
	expr, _ := bindexpr.Parse("foo[bar.baz]")
	seg := expr.Segments()[1]
	fmt.Println(seg.Type, seg.Path)
	// Output: nested bar.baz
}

func ExampleMustParse() {
	var userName = bindexpr.MustParse("user.name")
	fmt.Println(userName.Len())
	// Output: 2
}
