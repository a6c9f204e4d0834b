// Parser benchmarks.
//
// Run with:
//
//	go test -bench=. -benchmem ./pkg/parser/
package parser_test

import (
	"fmt"
	"testing"

	"github.com/sandrolain/bindexpr/pkg/cache"
	"github.com/sandrolain/bindexpr/pkg/parser"
	"github.com/sandrolain/bindexpr/pkg/types"
)

func mustParse(input string) *types.BindingExpression {
	e, err := parser.Parse(input)
	if err != nil {
		panic(fmt.Sprintf("mustParse(%q): %v", input, err))
	}
	return e
}

func benchmarkParse(b *testing.B, input string) {
	b.Helper()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, err := parser.Parse(input)
		if err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkParseSimplePath(b *testing.B) {
	benchmarkParse(b, "user.name")
}

func BenchmarkParseBracketHeavy(b *testing.B) {
	benchmarkParse(b, "foo.bar[0]['baz-qux'][-1].tail")
}

func BenchmarkParseQuoted(b *testing.B) {
	benchmarkParse(b, `store['product catalog']['it\'s'][0]`)
}

func BenchmarkParseNested(b *testing.B) {
	benchmarkParse(b, "a[b[c[d.e]]].f")
}

func BenchmarkCanonical(b *testing.B) {
	expr := mustParse("foo.bar[0]['baz qux'][sub.path]")
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = expr.String()
	}
}

func BenchmarkCachedParse(b *testing.B) {
	c := cache.New(16)
	const input = "user.accounts[0].name"
	parse := func() (*types.BindingExpression, error) {
		return parser.Parse(input)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := c.GetOrParse(input, parse); err != nil {
			b.Fatal(err)
		}
	}
}
