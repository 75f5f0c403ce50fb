package jsmn

import "testing"

var benchDoc = []byte(`{"key":"value","arr":[1,2,3],"nested":{"a":true,"b":null}}`)

func BenchmarkParseStrict(b *testing.B) {
	p := NewParser()
	tokens := make([]Token, 16)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		p.Init()
		if _, err := p.Parse(benchDoc, tokens); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkParsePermissive(b *testing.B) {
	p := NewParser(WithPermissive())
	tokens := make([]Token, 16)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		p.Init()
		if _, err := p.Parse(benchDoc, tokens); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkParseWithSiblingLinks(b *testing.B) {
	p := NewParser(WithSiblingLinks())
	tokens := make([]Token, 16)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		p.Init()
		if _, err := p.Parse(benchDoc, tokens); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkCount(b *testing.B) {
	p := NewParser()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		p.Init()
		if _, err := p.Count(benchDoc); err != nil {
			b.Fatal(err)
		}
	}
}
