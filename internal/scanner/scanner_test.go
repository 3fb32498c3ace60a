/******************************************************************************\
* golox                                                                       *
\******************************************************************************/

package scanner

import "testing"

func TestTokenKinds(t *testing.T) {
	source := `( ) { } ; - + / * = == foo123 3.14 fun let print return`
	want := []TokenKind{
		TokenLeftParen, TokenRightParen, TokenLeftBrace, TokenRightBrace,
		TokenSemicolon, TokenMinus, TokenPlus, TokenSlash, TokenStar,
		TokenEqual, TokenEqualEqual, TokenIdentifier, TokenNumber,
		TokenFun, TokenLet, TokenPrint, TokenReturn, TokenEOF,
	}

	s := NewScanner(source)
	for i, kind := range want {
		tok := s.Token()
		if tok.Kind != kind {
			t.Fatalf("token %d: got %v, want %v (lexeme %q)", i, tok.Kind, kind, tok.Lexeme)
		}
	}
}

func TestLexemeRoundTrip(t *testing.T) {
	source := "let answer = 42;"
	s := NewScanner(source)
	for {
		tok := s.Token()
		if tok.Kind == TokenEOF || tok.Kind == TokenError {
			break
		}
		got := source[tok.Offset : tok.Offset+tok.Length]
		if got != tok.Lexeme {
			t.Fatalf("lexeme %q does not match source slice %q", tok.Lexeme, got)
		}
	}
}

func TestEOFIsIdempotent(t *testing.T) {
	s := NewScanner("")
	for i := 0; i < 3; i++ {
		tok := s.Token()
		if tok.Kind != TokenEOF {
			t.Fatalf("call %d: got %v, want EOF", i, tok.Kind)
		}
	}
}

func TestSkipsLineComments(t *testing.T) {
	s := NewScanner("// a whole comment\nprint")
	tok := s.Token()
	if tok.Kind != TokenPrint {
		t.Fatalf("got %v, want PRINT", tok.Kind)
	}
	if tok.Line != 2 {
		t.Fatalf("got line %d, want 2", tok.Line)
	}
}

func TestUnknownCharacterIsErrorToken(t *testing.T) {
	s := NewScanner("@")
	tok := s.Token()
	if tok.Kind != TokenError {
		t.Fatalf("got %v, want ERROR", tok.Kind)
	}
	if tok.Lexeme == "" {
		t.Fatalf("expected a diagnostic message in the error token's lexeme")
	}
}
