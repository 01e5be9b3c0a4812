package catalog

import "testing"

func TestByProvider_DefaultFirst(t *testing.T) {
	for _, p := range []string{"openai", "replicate"} {
		entries := ByProvider(p)
		if len(entries) == 0 {
			t.Fatalf("%s: no entries", p)
		}
		if !entries[0].Default {
			t.Errorf("%s: first entry %q is not the default", p, entries[0].ID)
		}
		for _, m := range entries {
			if m.Provider != p {
				t.Errorf("entry %q leaked into %s listing", m.ID, p)
			}
		}
	}
}

func TestByProvider_Unknown(t *testing.T) {
	if entries := ByProvider("midjourney"); len(entries) != 0 {
		t.Errorf("entries=%v", entries)
	}
}

func TestProviders(t *testing.T) {
	got := Providers()
	if len(got) != 2 {
		t.Fatalf("providers=%v", got)
	}
}
