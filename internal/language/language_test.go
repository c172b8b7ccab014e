package language

import "testing"

func TestResolveSupported(t *testing.T) {
	cases := []struct {
		in       string
		wantCode string
		wantName string
	}{
		{"es", "es", "Spanish"},
		{"ES", "es", "Spanish"},
		{" fr ", "fr", "French"},
		{"zh-CN", "zh-CN", "Simplified Chinese"},
		{"zh_cn", "zh-CN", "Simplified Chinese"},
		{"pt-BR", "pt", "Portuguese"},
	}
	for _, tc := range cases {
		lang, ok := Resolve(tc.in)
		if !ok {
			t.Errorf("Resolve(%q) not supported, expected %q", tc.in, tc.wantCode)
			continue
		}
		if lang.Code != tc.wantCode {
			t.Errorf("Resolve(%q).Code = %q, want %q", tc.in, lang.Code, tc.wantCode)
		}
		if lang.Name != tc.wantName {
			t.Errorf("Resolve(%q).Name = %q, want %q", tc.in, lang.Name, tc.wantName)
		}
	}
}

func TestResolveRejectsUnknown(t *testing.T) {
	for _, in := range []string{"", "xx", "not a language", "tlh"} {
		if lang, ok := Resolve(in); ok {
			t.Errorf("Resolve(%q) unexpectedly resolved to %q", in, lang.Code)
		}
	}
}

func TestSupportedSortedAndComplete(t *testing.T) {
	langs := Supported()
	if len(langs) != len(supportedCodes) {
		t.Fatalf("Supported() returned %d entries, want %d", len(langs), len(supportedCodes))
	}
	for i := 1; i < len(langs); i++ {
		if langs[i-1].Code >= langs[i].Code {
			t.Fatalf("Supported() not sorted: %q before %q", langs[i-1].Code, langs[i].Code)
		}
	}
	for _, lang := range langs {
		if lang.Name == "" {
			t.Errorf("language %q has no display name", lang.Code)
		}
	}
}
