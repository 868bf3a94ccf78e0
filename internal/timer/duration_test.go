package timer

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestParseDuration(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  time.Duration
	}{
		{"minutes and seconds", "0130", 90 * time.Second},
		{"with colon", "01:30", 90 * time.Second},
		{"empty defaults", "", DefaultDuration},
		{"letters only defaults", "abc", DefaultDuration},
		{"short input is left padded", "45", 45 * time.Second},
		{"three digits", "130", 90 * time.Second},
		{"zero defaults", "0000", DefaultDuration},
		{"overlong keeps last four", "99999", 100*time.Minute + 39*time.Second},
		{"seconds overflow carries", "0075", 75 * time.Second},
		{"default text", DefaultText, DefaultDuration},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, ParseDuration(tt.input))
		})
	}
}

func TestNormalizeText(t *testing.T) {
	require.Equal(t, "0000", NormalizeText(""))
	require.Equal(t, "0130", NormalizeText("1:30"))
	require.Equal(t, "9999", NormalizeText("99999"))
	require.Equal(t, "1234", NormalizeText("a1b2c3d4"))
}

func TestFormat(t *testing.T) {
	require.Equal(t, "02:00", Format(2*time.Minute))
	require.Equal(t, "01:30", Format(89500*time.Millisecond))
	require.Equal(t, "00:01", Format(10*time.Millisecond))
	require.Equal(t, "00:00", Format(0))
	require.Equal(t, "00:00", Format(-time.Second))
	require.Equal(t, "100:39", Format(ParseDuration("9999")))
}
