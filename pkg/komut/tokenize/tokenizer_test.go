package tokenize

import (
	"testing"

	"github.com/kafkasder-portal/neww-sub003/pkg/komut/lexicon"
)

func TestStopwordOnlyInputIsEmpty(t *testing.T) {
	tok := New(nil)
	tokens := tok.Tokenize("bu ve şu için")
	if tokens == nil {
		t.Fatal("Tokenize must return a non-nil slice")
	}
	if len(tokens) != 0 {
		t.Errorf("expected no tokens, got %v", tokens)
	}
}

func TestTokenizeBasic(t *testing.T) {
	tok := New(nil)
	got := tok.Tokenize("Yeni hak sahibi ekle!")
	want := []string{"yeni", "hak", "sahibi", "ekle"}
	if !equalTokens(got, want) {
		t.Errorf("Tokenize = %v, want %v", got, want)
	}
}

func TestTokenizeTurkishCasing(t *testing.T) {
	tok := New(nil)
	got := tok.Tokenize("İSTANBUL IĞDIR Çankırı")
	want := []string{"istanbul", "ığdır", "çankırı"}
	if !equalTokens(got, want) {
		t.Errorf("Tokenize = %v, want %v", got, want)
	}
}

func TestTokenizePunctuationAndSymbols(t *testing.T) {
	tok := New(nil)
	got := tok.Tokenize("ahmet@ornek.com, 1.000₺ (acil)... café")
	want := []string{"ahmet", "ornek", "com", "1", "000", "acil", "caf"}
	if !equalTokens(got, want) {
		t.Errorf("Tokenize = %v, want %v", got, want)
	}
}

func TestTokenizePreservesDuplicates(t *testing.T) {
	tok := New(nil)
	got := tok.Tokenize("sil sil sil")
	if len(got) != 3 {
		t.Errorf("expected duplicates preserved, got %v", got)
	}
}

func TestTokenizeEmptyAndWhitespace(t *testing.T) {
	tok := New(nil)
	for _, in := range []string{"", "   \t\n", "?!.,", "😀🎉"} {
		if got := tok.Tokenize(in); len(got) != 0 {
			t.Errorf("Tokenize(%q) = %v, want empty", in, got)
		}
	}
}

func TestNewTokenizerExplicitStopwords(t *testing.T) {
	tok := NewTokenizer([]string{"LÜTFEN", "İle"})
	got := tok.Tokenize("Lütfen raporu ile gönder")
	want := []string{"raporu", "gönder"}
	if !equalTokens(got, want) {
		t.Errorf("Tokenize = %v, want %v", got, want)
	}
	if tok.Stopwords().IsStop("bu") {
		t.Error("explicit list should not include defaults")
	}
}

func TestTokenizeWithLexicon(t *testing.T) {
	tok := New(nil)
	lex := lexicon.New()
	lex.AddSynonymGroup("teşekkür", []string{"teşekkürler", "sağolun"})
	lex.AddSynonymGroup("ve", []string{"ile"})
	tok.SetLexicon(lex)

	got := tok.Tokenize("Teşekkürler, sağolun kardeşim")
	want := []string{"teşekkür", "teşekkür", "kardeşim"}
	if !equalTokens(got, want) {
		t.Errorf("Tokenize = %v, want %v", got, want)
	}
}

func equalTokens(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
