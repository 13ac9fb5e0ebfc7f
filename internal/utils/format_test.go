package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatSize(t *testing.T) {
	tests := []struct {
		in   int64
		want string
	}{
		{0, "0.00B"},
		{3, "3.00B"},
		{1024, "1024.00B"},
		{1536, "1.50KiB"},
		{5 * 1024 * 1024, "5.00MiB"},
		{3 * 1024 * 1024 * 1024, "3.00GiB"},
		{2 * 1024 * 1024 * 1024 * 1024, "2.00TiB"},
		{4096 * 1024 * 1024 * 1024 * 1024, "4096.00TiB"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatSize(tt.in), "FormatSize(%d)", tt.in)
	}
}

func TestNumber(t *testing.T) {
	assert.Equal(t, "999", Number(999))
	assert.Equal(t, "1,000", Number(1000))
	assert.Equal(t, "1,234,567", Number(1234567))
}

func TestDuration(t *testing.T) {
	assert.Equal(t, "0s", Duration(500*time.Millisecond))
	assert.Equal(t, "5.2s", Duration(5200*time.Millisecond))
	assert.Equal(t, "3m5.0s", Duration(3*time.Minute+5*time.Second))
	assert.Equal(t, "2h15m", Duration(2*time.Hour+15*time.Minute))
}

func TestProgressDisabledIsNoop(t *testing.T) {
	p := NewProgress(3, false)
	p.Increment("a")
	p.Finish()
}
