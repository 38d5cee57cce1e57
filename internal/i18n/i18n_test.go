// ABOUTME: Tests for the bilingual message catalog
// ABOUTME: Verifies lookups, English fallback, and language parsing

package i18n

import "testing"

func TestT_EnglishAndMalayalam(t *testing.T) {
	en := T(English, KeyLoginSuccess)
	ml := T(Malayalam, KeyLoginSuccess)

	if en == "" || ml == "" {
		t.Fatal("expected non-empty messages in both languages")
	}
	if en == ml {
		t.Error("expected distinct English and Malayalam texts")
	}
}

func TestT_UnknownLanguageFallsBackToEnglish(t *testing.T) {
	got := T(Lang("fr"), KeyLoginSuccess)
	if got != T(English, KeyLoginSuccess) {
		t.Errorf("expected English fallback, got %q", got)
	}
}

func TestT_UnknownKeyReturnsKey(t *testing.T) {
	if got := T(English, "no_such_key"); got != "no_such_key" {
		t.Errorf("expected the key itself back, got %q", got)
	}
}

func TestT_EveryKeyHasBothLanguages(t *testing.T) {
	for key, msgs := range catalog {
		if msgs[English] == "" {
			t.Errorf("key %q has no English text", key)
		}
		if msgs[Malayalam] == "" {
			t.Errorf("key %q has no Malayalam text", key)
		}
	}
}

func TestParseLang(t *testing.T) {
	if got := ParseLang("ml"); got != Malayalam {
		t.Errorf("ParseLang(ml) = %v", got)
	}
	if got := ParseLang("en"); got != English {
		t.Errorf("ParseLang(en) = %v", got)
	}
	if got := ParseLang("de"); got != English {
		t.Errorf("expected unknown codes to default to English, got %v", got)
	}
}
