package orgclock

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLine_ClosedEntries(t *testing.T) {
	tests := []struct {
		name          string
		line          string
		expectedStart string
		expectedStop  string
		inlineMinutes *int64
	}{
		{
			name:          "should parse a closed entry with inline duration",
			line:          "CLOCK: [2024-05-05 Sun 10:00]--[2024-05-05 Sun 11:30] =>  1:30",
			expectedStart: "2024-05-05 Sun 10:00",
			expectedStop:  "2024-05-05 Sun 11:30",
			inlineMinutes: int64Ptr(90),
		},
		{
			name:          "should parse a closed entry without inline duration",
			line:          "CLOCK: [2024-05-05 Sun 10:00]--[2024-05-05 Sun 11:30]",
			expectedStart: "2024-05-05 Sun 10:00",
			expectedStop:  "2024-05-05 Sun 11:30",
		},
		{
			name:          "should tolerate leading indentation and extra spaces",
			line:          "   CLOCK:  [2024-05-05 Sun 10:00] -- [2024-05-05 Sun 11:30]  =>   1:30  ",
			expectedStart: "2024-05-05 Sun 10:00",
			expectedStop:  "2024-05-05 Sun 11:30",
			inlineMinutes: int64Ptr(90),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entry, err := ParseLine(tt.line)
			require.NoError(t, err)
			require.NotNil(t, entry)

			closed, ok := entry.(ClosedEntry)
			require.True(t, ok, "expected a ClosedEntry")
			assert.Equal(t, tt.expectedStart, closed.Start.String())
			assert.Equal(t, tt.expectedStop, closed.Stop.String())

			if tt.inlineMinutes == nil {
				assert.Nil(t, closed.InlineDuration)
			} else {
				require.NotNil(t, closed.InlineDuration)
				assert.Equal(t, *tt.inlineMinutes, closed.InlineDuration.Minutes())
			}
		})
	}
}

func TestParseLine_OpenEntries(t *testing.T) {
	t.Run("should parse an open entry", func(t *testing.T) {
		entry, err := ParseLine("CLOCK: [2024-05-05 Sun 12:00]")
		require.NoError(t, err)

		open, ok := entry.(OpenEntry)
		require.True(t, ok, "expected an OpenEntry")
		assert.Equal(t, "2024-05-05 Sun 12:00", open.Start.String())
	})
}

func TestParseLine_NotAnEntry(t *testing.T) {
	// Lines without the clock prefix are silently skipped, not errors.
	lines := []string{
		"",
		"not a clock line",
		"* Heading",
		":LOGBOOK:",
		"- note taken on [2024-05-05 Sun 10:00]",
		"clock: [2024-05-05 Sun 10:00]", // prefix is case-sensitive
	}

	for _, line := range lines {
		t.Run("should skip "+line, func(t *testing.T) {
			entry, err := ParseLine(line)
			assert.NoError(t, err)
			assert.Nil(t, entry)
		})
	}
}

func TestParseLine_MalformedClockLines(t *testing.T) {
	// Lines carrying the clock prefix but failing to parse yield a
	// diagnostic error rather than silence or a crash.
	lines := []string{
		"CLOCK:",
		"CLOCK: 2024-05-05 Sun 10:00",
		"CLOCK: [2024-05-05 Sun 10:00]--[not a timestamp]",
		"CLOCK: [2024-05-05 10:00]--[2024-05-05 11:30]",
		"CLOCK: [2024-05-05 Sun 10:00]--[2024-05-05 Sun 11:00]--[2024-05-05 Sun 12:00]",
		"CLOCK: [2024-05-05 Sun 10:00]--[2024-05-05 Sun 11:30] => bogus",
		"CLOCK: [2024-05-05 Sun 10:00] =>  1:30",
	}

	for _, line := range lines {
		t.Run("should diagnose "+line, func(t *testing.T) {
			entry, err := ParseLine(line)
			assert.Error(t, err)
			assert.Nil(t, entry)
		})
	}
}

func int64Ptr(v int64) *int64 {
	return &v
}
