package planning

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBucketsShape(t *testing.T) {
	// 5-year window: 2023..2027.
	tests := []struct {
		res       Resolution
		wantLen   int
		wantFirst string
		wantLast  string
	}{
		{ResolutionYear, 5, "2023", "2027"},
		{ResolutionQuarter, 20, "Q1 2023", "Q4 2027"},
		{ResolutionMonth, 60, "Jan 2023", "Dec 2027"},
		{ResolutionWeek, 260, "W1 2023", "W52 2027"},
	}

	for _, tt := range tests {
		t.Run(string(tt.res), func(t *testing.T) {
			buckets := Buckets(tt.res)
			require.Len(t, buckets, tt.wantLen)
			assert.Equal(t, tt.wantFirst, buckets[0])
			assert.Equal(t, tt.wantLast, buckets[len(buckets)-1])
		})
	}
}

func TestParseResolution(t *testing.T) {
	res, err := ParseResolution("")
	require.NoError(t, err)
	assert.Equal(t, ResolutionQuarter, res)

	res, err = ParseResolution("week")
	require.NoError(t, err)
	assert.Equal(t, ResolutionWeek, res)

	_, err = ParseResolution("fortnight")
	assert.Error(t, err)
}

func TestIsBacklog(t *testing.T) {
	quarters := Buckets(ResolutionQuarter)

	assert.True(t, IsBacklog("", quarters))
	assert.True(t, IsBacklog("Backlog", quarters))
	assert.True(t, IsBacklog("Someday", quarters))
	assert.False(t, IsBacklog("Q2 2024", quarters))
}

func TestResolutionChangeReclassifiesToBacklog(t *testing.T) {
	// A feature scheduled at week granularity silently falls into backlog
	// when the view switches to year granularity, because "W14 2024" is not
	// a member of the year sequence. Reference behavior, kept on purpose.
	weeks := Buckets(ResolutionWeek)
	years := Buckets(ResolutionYear)

	release := "W14 2024"
	assert.False(t, IsBacklog(release, weeks))
	assert.True(t, IsBacklog(release, years))

	// The stored label itself is never rewritten: switching back restores it.
	assert.False(t, IsBacklog(release, Buckets(ResolutionWeek)))
}

func TestValidBucket(t *testing.T) {
	quarters := Buckets(ResolutionQuarter)
	assert.True(t, ValidBucket("Backlog", quarters))
	assert.True(t, ValidBucket("Q3 2025", quarters))
	assert.False(t, ValidBucket("W3 2025", quarters))
}
