package phone

import "testing"

func TestIsVietnameseMobileAcceptsLocalFormat(t *testing.T) {
	if !IsVietnameseMobile("0912345678") {
		t.Fatal("expected local 10-digit mobile to be accepted")
	}
}

func TestIsVietnameseMobileAcceptsInternationalFormat(t *testing.T) {
	if !IsVietnameseMobile("+84912345678") {
		t.Fatal("expected +84 mobile to be accepted")
	}
}

func TestIsVietnameseMobileStripsSeparators(t *testing.T) {
	if !IsVietnameseMobile("091 234 5678") {
		t.Fatal("expected spaced mobile to be accepted")
	}
}

func TestIsVietnameseMobileRejectsShortNumber(t *testing.T) {
	if IsVietnameseMobile("09123") {
		t.Fatal("expected short number to be rejected")
	}
}

func TestIsVietnameseMobileRejectsForeignPrefix(t *testing.T) {
	if IsVietnameseMobile("+31612345678") {
		t.Fatal("expected non-Vietnamese prefix to be rejected")
	}
}

func TestIsVietnameseMobileRejectsEmpty(t *testing.T) {
	if IsVietnameseMobile("   ") {
		t.Fatal("expected blank input to be rejected")
	}
}

func TestNormalizeE164ReturnsInputWhenUnparseable(t *testing.T) {
	if got := NormalizeE164("not-a-number"); got != "not-a-number" {
		t.Fatalf("expected passthrough, got %q", got)
	}
}

func TestNormalizeE164FormatsLocalNumber(t *testing.T) {
	if got := NormalizeE164("0912345678"); got != "+84912345678" {
		t.Fatalf("expected +84912345678, got %q", got)
	}
}
