package stoplist

import "testing"

func TestNewTurkishContainsDefaults(t *testing.T) {
	m := NewTurkish()
	for _, w := range []string{"bu", "ve", "şu", "için"} {
		if !m.IsStop(w) {
			t.Errorf("expected %q to be a stopword", w)
		}
	}
	if m.IsStop("ekle") {
		t.Error("command verb 'ekle' must not be a stopword")
	}
}

func TestNewTurkishExtra(t *testing.T) {
	m := NewTurkish("lütfen", "")
	if !m.IsStop("lütfen") {
		t.Error("extra term should be added")
	}
	if m.IsStop("") {
		t.Error("empty term should be ignored")
	}
	if m.Len() != len(Turkish())+1 {
		t.Errorf("Len() = %d, want %d", m.Len(), len(Turkish())+1)
	}
}

func TestAddRemove(t *testing.T) {
	m := NewManager(nil)
	m.Add("abc")
	if !m.IsStop("abc") {
		t.Fatal("Add should register token")
	}
	m.Remove("abc")
	if m.IsStop("abc") {
		t.Fatal("Remove should drop token")
	}
}

func TestAllSorted(t *testing.T) {
	m := NewManager([]string{"zeytin", "armut", "kiraz"})
	all := m.All()
	want := []string{"armut", "kiraz", "zeytin"}
	if len(all) != len(want) {
		t.Fatalf("All() = %v, want %v", all, want)
	}
	for i := range want {
		if all[i] != want[i] {
			t.Errorf("All()[%d] = %q, want %q", i, all[i], want[i])
		}
	}
}

func TestTurkishReturnsCopy(t *testing.T) {
	a := Turkish()
	a[0] = "değişti"
	if Turkish()[0] == "değişti" {
		t.Error("Turkish() must return a copy")
	}
}
