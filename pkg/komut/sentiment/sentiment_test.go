package sentiment

import (
	"math"
	"testing"
)

func TestAnalyzeNoMatches(t *testing.T) {
	for _, tokens := range [][]string{nil, {}, {"bağış", "ekle"}} {
		got := Analyze(tokens)
		if got.Score != 0 || got.Label != Neutral || got.Confidence != 0.5 {
			t.Errorf("Analyze(%v) = %+v, want {0 neutral 0.5}", tokens, got)
		}
	}
}

func TestAnalyzePositive(t *testing.T) {
	got := Analyze([]string{"harika", "iş", "teşekkürler"})
	if got.Label != Positive || got.Score != 1 || got.Confidence != 1 {
		t.Errorf("got %+v, want positive 1/1", got)
	}
}

func TestAnalyzeNegative(t *testing.T) {
	got := Analyze([]string{"berbat", "bir", "sorun", "tamam"})
	want := -2.0 / 3.0
	if got.Label != Negative {
		t.Fatalf("Label = %s, want negative", got.Label)
	}
	if math.Abs(got.Score-want) > 1e-9 || math.Abs(got.Confidence-math.Abs(want)) > 1e-9 {
		t.Errorf("got %+v, want score %.3f", got, want)
	}
}

func TestAnalyzeBalancedIsNeutral(t *testing.T) {
	got := Analyze([]string{"iyi", "kötü"})
	if got.Label != Neutral || got.Score != 0 || got.Confidence != 0.5 {
		t.Errorf("got %+v, want neutral", got)
	}
}

func TestAnalyzeNeutralWordsDilute(t *testing.T) {
	// (1 - 0) / 11 is below the threshold
	tokens := []string{"iyi"}
	for i := 0; i < 10; i++ {
		tokens = append(tokens, "tamam")
	}
	got := Analyze(tokens)
	if got.Label != Neutral || got.Confidence != 0.5 {
		t.Errorf("got %+v, want neutral", got)
	}
	if got.Score <= 0 {
		t.Errorf("score should stay positive, got %v", got.Score)
	}
}

func TestAnalyzeBounds(t *testing.T) {
	inputs := [][]string{
		{"iyi"}, {"kötü"}, {"iyi", "iyi", "kötü"}, {"normal", "hata"},
	}
	for _, tokens := range inputs {
		got := Analyze(tokens)
		if got.Score < -1 || got.Score > 1 || got.Confidence < 0 || got.Confidence > 1 {
			t.Errorf("Analyze(%v) out of bounds: %+v", tokens, got)
		}
	}
}
