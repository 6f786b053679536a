package siteswap_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/calvinalkan/siteswap/pkg/siteswap"
)

func Test_Analyze_Classifies_Input(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		input      string
		status     siteswap.Status
		length     int
		average    float64
		hasAverage bool
	}{
		{input: "", status: siteswap.StatusEmpty},
		{input: "!!", status: siteswap.StatusEmpty},
		{input: "10", status: siteswap.StatusInvalid, length: 2, average: 0.5, hasAverage: true},
		{input: "52", status: siteswap.StatusPartial, length: 2, average: 3.5, hasAverage: true},
		{input: "441", status: siteswap.StatusValid, length: 3, average: 3, hasAverage: true},
	}

	for _, tc := range testCases {
		t.Run(tc.status.String()+"/"+tc.input, func(t *testing.T) {
			t.Parallel()

			got := siteswap.Analyze(siteswap.Decode(tc.input))
			assert.Equal(t, tc.status, got.Status)
			assert.Equal(t, tc.length, got.Length)
			assert.Equal(t, tc.hasAverage, got.HasAverage)
			assert.InDelta(t, tc.average, got.Average, 1e-9)
			assert.Equal(t, got.Pattern.IsSiteswap(), got.Siteswap)
			assert.Equal(t, got.Pattern.IsJugglable(), got.Jugglable)
		})
	}
}

func Test_Suggest_Returns_Nothing_When_Input_Not_Jugglable(t *testing.T) {
	t.Parallel()

	params := siteswap.SearchParams{ObjectCount: 1, MaxHeight: 5, MaxExtraLength: 3}

	got, err := siteswap.Suggest(context.Background(), siteswap.Decode("10"), params)
	require.NoError(t, err)
	assert.Nil(t, got)

	got, err = siteswap.Suggest(context.Background(), siteswap.Decode("5"), siteswap.SearchParams{
		ObjectCount:    3,
		MaxHeight:      5,
		MaxExtraLength: 2,
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"504", "51", "522", "531"}, got)
}

func Test_Playable_Returns_Canonical_Form_When_Siteswap(t *testing.T) {
	t.Parallel()

	got, err := siteswap.Playable("4 4 1")
	require.NoError(t, err)
	assert.Equal(t, "441", got)

	got, err = siteswap.Playable("4A1")
	require.NoError(t, err)
	assert.Equal(t, "4a1", got)

	_, err = siteswap.Playable("54")
	require.ErrorIs(t, err, siteswap.ErrNotSiteswap)

	_, err = siteswap.Playable("")
	require.ErrorIs(t, err, siteswap.ErrNotSiteswap)
}

func Test_PlayablePattern_Returns_Error_When_Not_Encodable(t *testing.T) {
	t.Parallel()

	// A single throw is always a siteswap, but 40 has no symbol.
	_, err := siteswap.PlayablePattern(siteswap.New([]int{40}))
	require.ErrorIs(t, err, siteswap.ErrOutOfAlphabet)

	_, err = siteswap.PlayablePattern(siteswap.New([]int{5, 4}))
	require.ErrorIs(t, err, siteswap.ErrNotSiteswap)
	assert.Contains(t, err.Error(), "54")

	got, err := siteswap.PlayablePattern(siteswap.New([]int{5, 3, 1}))
	require.NoError(t, err)
	assert.Equal(t, "531", got)
}

// recordingJuggler remembers the patterns it was asked to animate.
type recordingJuggler struct {
	playing string
	started []string
}

func (j *recordingJuggler) StartJuggling(pattern string) error {
	j.playing = pattern
	j.started = append(j.started, pattern)

	return nil
}

func (j *recordingJuggler) StopJuggling() {
	j.playing = ""
}

func Test_Playable_Hands_Only_Siteswaps_To_Juggler(t *testing.T) {
	t.Parallel()

	rec := &recordingJuggler{}

	var j siteswap.Juggler = rec

	for _, input := range []string{"5 3 1", "54", "B", "", "52"} {
		pattern, err := siteswap.Playable(input)
		if err != nil {
			require.ErrorIs(t, err, siteswap.ErrNotSiteswap, input)
			continue
		}

		require.NoError(t, j.StartJuggling(pattern))
	}

	assert.Equal(t, []string{"531", "b"}, rec.started)
	assert.Equal(t, "b", rec.playing)

	j.StopJuggling()
	assert.Empty(t, rec.playing)
}
