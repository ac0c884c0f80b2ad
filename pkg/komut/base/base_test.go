package base

import (
	"testing"

	"github.com/kafkasder-portal/neww-sub003/pkg/komut/intent"
	"github.com/kafkasder-portal/neww-sub003/pkg/komut/sentiment"
)

func TestExtractEntities(t *testing.T) {
	text := "Ali'ye 0532 123 45 67 numarasından 1000 TL gönder, mail ali@ornek.com"
	got := ExtractEntities(text)

	want := []struct {
		typ   EntityType
		value string
	}{
		{Phone, "0532 123 45 67"},
		{Money, "1000 TL"},
		{Email, "ali@ornek.com"},
	}
	if len(got) != len(want) {
		t.Fatalf("ExtractEntities = %+v, want %d entities", got, len(want))
	}
	for i, w := range want {
		if got[i].Type != w.typ || got[i].Value != w.value {
			t.Errorf("entity %d = %s %q, want %s %q", i, got[i].Type, got[i].Value, w.typ, w.value)
		}
		if got[i].Confidence <= 0 || got[i].Confidence > 1 {
			t.Errorf("entity %d confidence %.2f out of range", i, got[i].Confidence)
		}
	}
}

func TestExtractEntitiesRuneOffsets(t *testing.T) {
	got := ExtractEntities("Ödeme 500 TL")
	if len(got) != 1 {
		t.Fatalf("ExtractEntities = %+v, want one", got)
	}
	if got[0].Start != 6 || got[0].End != 12 {
		t.Errorf("span = [%d,%d), want [6,12)", got[0].Start, got[0].End)
	}
}

func TestExtractEntitiesDatesAndNumbers(t *testing.T) {
	got := ExtractEntities("yarın 15.03.2025 tarihinde 3 kayıt")
	if len(got) != 3 {
		t.Fatalf("ExtractEntities = %+v, want three", got)
	}
	if got[0].Type != Date || got[1].Type != Date || got[2].Type != Number {
		t.Errorf("types = %s %s %s, want DATE DATE NUMBER", got[0].Type, got[1].Type, got[2].Type)
	}

	if got := ExtractEntities("yarından itibaren"); len(got) != 0 {
		t.Errorf("ExtractEntities(yarından) = %+v, want none", got)
	}
}

func TestExtractEntitiesEmpty(t *testing.T) {
	got := ExtractEntities("")
	if got == nil || len(got) != 0 {
		t.Errorf("ExtractEntities(\"\") = %#v, want empty non-nil", got)
	}
}

func TestClassifyIntent(t *testing.T) {
	got := ClassifyIntent([]string{"yeni", "hak", "sahibi", "ekle"})
	if got.Primary != intent.Create {
		t.Fatalf("Primary = %s, want CREATE", got.Primary)
	}
	if got.Confidence != 0.8 {
		t.Errorf("Confidence = %.2f, want 0.80", got.Confidence)
	}

	got = ClassifyIntent([]string{"hava", "güzel"})
	if got.Primary != intent.Unknown || got.Confidence != intent.UnknownConfidence {
		t.Errorf("ClassifyIntent(no keywords) = %+v, want UNKNOWN", got)
	}
}

func TestClassifyIntentCapsConfidence(t *testing.T) {
	got := ClassifyIntent([]string{"sil", "silinsin", "kaldır", "sil"})
	if got.Confidence != 0.9 {
		t.Errorf("Confidence = %.2f, want capped 0.90", got.Confidence)
	}
}

func TestClassifyIntentTieKeepsTableOrder(t *testing.T) {
	got := ClassifyIntent([]string{"sil", "göster"})
	if got.Primary != intent.Read {
		t.Errorf("Primary = %s, want READ", got.Primary)
	}
	if len(got.Alternatives) != 1 || got.Alternatives[0].Intent != intent.Delete {
		t.Errorf("Alternatives = %+v, want [DELETE]", got.Alternatives)
	}
}

func TestExtractContext(t *testing.T) {
	tests := []struct {
		text string
		want Context
	}{
		{"Bu kaydı silmeyin lütfen", Context{IsNegated: true, HasPoliteness: true, TimeReference: Present}},
		{"Yarın toplantı var mı?", Context{IsQuestion: true, TimeReference: Future}},
		{"Dün gelen bağışları göster", Context{TimeReference: Past}},
		{"Raporu göster", Context{TimeReference: Present}},
		{"", Context{TimeReference: Present}},
	}
	for _, tt := range tests {
		if got := ExtractContext(tt.text); got != tt.want {
			t.Errorf("ExtractContext(%q) = %+v, want %+v", tt.text, got, tt.want)
		}
	}
}

func TestPipelineProcess(t *testing.T) {
	p := NewPipeline(nil)
	res := p.Process("Lütfen yeni bağış ekle, çok teşekkürler")

	if res.Intent.Primary != intent.Create {
		t.Errorf("Intent = %s, want CREATE", res.Intent.Primary)
	}
	if res.Sentiment.Label != sentiment.Positive {
		t.Errorf("Sentiment = %+v, want positive", res.Sentiment)
	}
	if !res.Context.HasPoliteness {
		t.Error("HasPoliteness = false, want true")
	}
}

func TestPipelineEmptyText(t *testing.T) {
	res := NewPipeline(nil).Process("")
	if res.Tokens == nil || len(res.Tokens) != 0 {
		t.Errorf("Tokens = %#v, want empty", res.Tokens)
	}
	if res.Entities == nil || len(res.Entities) != 0 {
		t.Errorf("Entities = %#v, want empty", res.Entities)
	}
	if res.Intent.Primary != intent.Unknown {
		t.Errorf("Intent = %s, want UNKNOWN", res.Intent.Primary)
	}
}
