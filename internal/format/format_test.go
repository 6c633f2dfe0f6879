package format

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatBytes(t *testing.T) {
	tests := []struct {
		in   int64
		want string
	}{
		{0, "0 B"},
		{512, "512 B"},
		{1024, "1.0 KB"},
		{1536, "1.5 KB"},
		{1048576, "1.0 MB"},
		{1073741824, "1.0 GB"},
		{1099511627776, "1.0 TB"},
		{5629499534213120, "5120.0 TB"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatBytes(tt.in), "FormatBytes(%d)", tt.in)
	}
}

func TestFormatBytesString(t *testing.T) {
	assert.Equal(t, "2.0 MB", FormatBytesString("2097152"))
	assert.Equal(t, "0 B", FormatBytesString("0"))
	// Unparseable values pass through untouched.
	assert.Equal(t, "1gb", FormatBytesString("1gb"))
	assert.Equal(t, "", FormatBytesString(""))
}

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		in   int64
		want string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1,000"},
		{12345678, "12,345,678"},
		{-1234, "-1,234"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatNumber(tt.in), "FormatNumber(%d)", tt.in)
	}
}

func TestFormatNumberString(t *testing.T) {
	assert.Equal(t, "5,000", FormatNumberString("5000"))
	assert.Equal(t, "n/a", FormatNumberString("n/a"))
}

func TestFormatEpochMillis(t *testing.T) {
	assert.Equal(t, "2023-11-14 22:13:20 UTC", FormatEpochMillis("1700000000000"))
	assert.Equal(t, "not-a-date", FormatEpochMillis("not-a-date"))
}
