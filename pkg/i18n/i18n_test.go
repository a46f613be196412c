package i18n

import "testing"

func TestLocalizerGet(t *testing.T) {
	l := NewLocalizer("en", "zh-CN")

	got := l.Get("en", ERROR_UNAUTHORIZED)
	if got == "" || got == ERROR_UNAUTHORIZED {
		t.Errorf("Expected localized message for %s, got %q", ERROR_UNAUTHORIZED, got)
	}

	cn := l.Get("zh-CN", ERROR_UNAUTHORIZED)
	if cn == "" || cn == ERROR_UNAUTHORIZED {
		t.Errorf("Expected zh-CN message for %s, got %q", ERROR_UNAUTHORIZED, cn)
	}
	if cn == got {
		t.Log("zh-CN and en messages identical; translation may be missing")
	}
}

func TestLocalizerGet_UnknownLang(t *testing.T) {
	l := NewLocalizer("en")

	got := l.Get("fr", ERROR_INTERNAL)
	if got != ERROR_INTERNAL {
		t.Errorf("Expected raw key for unknown language, got %q", got)
	}
}

func TestLocalizerGet_UnknownKey(t *testing.T) {
	l := NewLocalizer("en")

	got := l.Get("en", "error.not.a.real.key")
	if got != "error.not.a.real.key" {
		t.Errorf("Expected raw key fallback, got %q", got)
	}
}
