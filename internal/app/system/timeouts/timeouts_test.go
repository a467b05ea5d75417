package timeouts

import (
	"testing"
	"time"
)

func TestConfigure_ZeroFieldsKeepCurrent(t *testing.T) {
	t.Cleanup(Reset)

	Configure(Config{Medium: 20 * time.Second})
	if got := Medium(); got != 20*time.Second {
		t.Fatalf("Medium = %v, want 20s", got)
	}
	if got := Short(); got != DefaultShort {
		t.Fatalf("Short = %v, want default %v", got, DefaultShort)
	}

	Reset()
	if got := Medium(); got != DefaultMedium {
		t.Fatalf("Medium after Reset = %v, want %v", got, DefaultMedium)
	}
}
