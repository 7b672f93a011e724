package zone

import (
	"testing"
	"time"
)

func TestOffsetMinutes_Empty(t *testing.T) {
	got, err := OffsetMinutes("", time.Now())
	if err != nil || got != 0 {
		t.Errorf("got (%d, %v), want (0, nil)", got, err)
	}
}

func TestOffsetMinutes_KnownZone(t *testing.T) {
	ref := time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC)
	got, err := OffsetMinutes("America/New_York", ref)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != -300 { // EST in January
		t.Errorf("got %d, want -300", got)
	}
}

func TestOffsetMinutes_UnknownZone(t *testing.T) {
	if _, err := OffsetMinutes("Not/AZone", time.Now()); err == nil {
		t.Error("expected an error for an unknown zone")
	}
}

func TestValidate_EmptyIsValid(t *testing.T) {
	if err := Validate(""); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestValidate_KnownZone(t *testing.T) {
	if err := Validate("America/New_York"); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestValidate_UnknownZone(t *testing.T) {
	if err := Validate("Not/AZone"); err == nil {
		t.Error("expected an error for an unknown zone")
	}
}

func TestForget_PreservesOffset(t *testing.T) {
	if got := Forget(-300); got != -300 {
		t.Errorf("got %d, want -300", got)
	}
}
