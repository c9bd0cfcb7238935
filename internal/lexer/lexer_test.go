package lexer

import "testing"

func TestLexBasic(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		want    []Kind
	}{
		{"literal", "foo", []Kind{Literal, EOF}},
		{"star", "foo*bar", []Kind{Literal, Star, Literal, EOF}},
		{"doublestar segment", "foo/**/bar", []Kind{Literal, Slash, DoubleStar, Slash, Literal, EOF}},
		{"question", "foo?bar", []Kind{Literal, Question, Literal, EOF}},
		{"range", "foo[abc]bar", []Kind{Literal, RangeBody, Literal, EOF}},
		{"brace", "{a,b}", []Kind{BraceOpen, Literal, Comma, Literal, BraceClose, EOF}},
		{"nested brace", "{a,{b,c}}", []Kind{BraceOpen, Literal, Comma, BraceOpen, Literal, Comma, Literal, BraceClose, BraceClose, EOF}},
		{"comma outside brace is literal", "a,b", []Kind{Literal, EOF}},
		{"escaped star", `foo\*bar`, []Kind{Literal, EOF}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			toks, err := Lex(tt.pattern)
			if err != nil {
				t.Fatalf("Lex(%q) error: %v", tt.pattern, err)
			}
			if len(toks) != len(tt.want) {
				t.Fatalf("Lex(%q) = %d tokens, want %d: %v", tt.pattern, len(toks), len(tt.want), toks)
			}
			for i, k := range tt.want {
				if toks[i].Kind != k {
					t.Errorf("token %d: got %v, want %v", i, toks[i].Kind, k)
				}
			}
		})
	}
}

func TestLexEscapedLiteralText(t *testing.T) {
	toks, err := Lex(`foo\*bar`)
	if err != nil {
		t.Fatalf("Lex error: %v", err)
	}
	if toks[0].Text != "foo*bar" {
		t.Errorf("Text = %q, want %q", toks[0].Text, "foo*bar")
	}
}

func TestLexErrors(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
	}{
		{"unterminated range", "foo[abc"},
		{"stray close bracket", "foo]bar"},
		{"stray close brace", "foo}bar"},
		{"trailing escape", `foo\`},
		{"empty range", "foo[]bar"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Lex(tt.pattern); err == nil {
				t.Errorf("Lex(%q) succeeded, want error", tt.pattern)
			}
		})
	}
}

func TestLexCommaInsideRangeIsLiteral(t *testing.T) {
	toks, err := Lex("[a,b]")
	if err != nil {
		t.Fatalf("Lex error: %v", err)
	}
	if len(toks) != 2 || toks[0].Kind != RangeBody {
		t.Fatalf("Lex([a,b]) = %v, want single RangeBody token", toks)
	}
	if toks[0].Text != "a,b" {
		t.Errorf("RangeBody text = %q, want %q", toks[0].Text, "a,b")
	}
}
