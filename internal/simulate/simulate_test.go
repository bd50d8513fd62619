package simulate

import (
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/carousel/internal/carousel"
)

func slides(n int) carousel.SlideSet {
	set := make(carousel.SlideSet, n)
	for i := range set {
		set[i] = carousel.Slide{ID: fmt.Sprintf("s%d", i)}
	}
	return set
}

func TestParseScript(t *testing.T) {
	steps, err := ParseScript("3s:next, 1s:prev,2500ms:goto=4,4s:enter,5s:Leave,6s:home")
	require.NoError(t, err)
	require.Equal(t, []Step{
		{At: time.Second, Action: "previous"},
		{At: 2500 * time.Millisecond, Action: "goto", Arg: 4},
		{At: 3 * time.Second, Action: "next"},
		{At: 4 * time.Second, Action: "enter"},
		{At: 5 * time.Second, Action: "leave"},
		{At: 6 * time.Second, Action: "home"},
	}, steps)
}

func TestParseScriptEmpty(t *testing.T) {
	steps, err := ParseScript("")
	require.NoError(t, err)
	require.Empty(t, steps)
}

func TestParseScriptErrors(t *testing.T) {
	tests := []struct {
		name   string
		script string
		want   string
	}{
		{name: "missing action", script: "2s", want: "expected <duration>:<action>"},
		{name: "bad time", script: "soon:next", want: "parse time"},
		{name: "negative time", script: "-1s:next", want: "must not be negative"},
		{name: "unknown action", script: "1s:jump", want: "unknown action"},
		{name: "none is not an action", script: "1s:none", want: "unknown action"},
		{name: "missing value", script: "1s:goto", want: "needs a value"},
		{name: "bad value", script: "1s:page=two", want: "parse page value"},
		{name: "unexpected value", script: "1s:next=2", want: "takes no value"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseScript(tt.script)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestRunAutoplayWithManualRequest(t *testing.T) {
	cfg := carousel.DefaultConfig()
	cfg.Autoplay = true
	cfg.AutoplayInterval = time.Second
	cfg.TransitionDuration = 500 * time.Millisecond

	steps, err := ParseScript("1500ms:next")
	require.NoError(t, err)

	result := Run(Options{Slides: slides(5), Config: cfg, Steps: steps, Duration: 3 * time.Second})

	ms := func(n int) time.Duration { return time.Duration(n) * time.Millisecond }
	require.Equal(t, []Entry{
		{At: ms(1000), Kind: KindBefore, From: 0, To: 1},
		{At: ms(1500), Kind: KindAfter, From: 1, To: 1},
		{At: ms(1500), Kind: KindRequest, Action: "next", From: 1, To: 1},
		{At: ms(1500), Kind: KindBefore, From: 1, To: 2},
		{At: ms(2000), Kind: KindAfter, From: 2, To: 2},
		{At: ms(2500), Kind: KindBefore, From: 2, To: 3},
		{At: ms(3000), Kind: KindAfter, From: 3, To: 3},
	}, result.Timeline)
	require.Equal(t, 3, result.Commits())
	require.Equal(t, carousel.State{CurrentIndex: 3}, result.Final)
	require.Equal(t, 3, result.Rendered)
}

func TestRunHoverPausesAutoplay(t *testing.T) {
	cfg := carousel.DefaultConfig()
	cfg.Autoplay = true
	cfg.AutoplayInterval = time.Second

	steps, err := ParseScript("500ms:enter,2s:leave")
	require.NoError(t, err)

	result := Run(Options{Slides: slides(3), Config: cfg, Steps: steps, Duration: 2500 * time.Millisecond})
	require.Zero(t, result.Commits())
	require.Len(t, result.Timeline, 2)
	require.False(t, result.Final.IsPaused)
}

func TestRunIgnoresStepsAfterDuration(t *testing.T) {
	steps, err := ParseScript("1s:next,5s:next")
	require.NoError(t, err)

	cfg := carousel.DefaultConfig()
	result := Run(Options{Slides: slides(3), Config: cfg, Steps: steps, Duration: 2 * time.Second})
	require.Equal(t, 1, result.Commits())
	require.Equal(t, 1, result.Final.CurrentIndex)
}

func TestRunControlledRendering(t *testing.T) {
	steps, err := ParseScript("0s:control=9,1s:next")
	require.NoError(t, err)

	result := Run(Options{Slides: slides(3), Config: carousel.DefaultConfig(), Steps: steps, Duration: 2 * time.Second})
	require.Equal(t, 1, result.Final.CurrentIndex)
	require.Equal(t, 2, result.Rendered)
}

func TestEntryString(t *testing.T) {
	assert.Equal(t, "       1s  before   0 -> 1", Entry{At: time.Second, Kind: KindBefore, From: 0, To: 1}.String())
	assert.Equal(t, "     1.5s  after    1", Entry{At: 1500 * time.Millisecond, Kind: KindAfter, To: 1}.String())
	assert.Equal(t, "       2s  request  goto=3", Entry{At: 2 * time.Second, Kind: KindRequest, Action: "goto=3"}.String())
}

func TestEntryJSONUsesMilliseconds(t *testing.T) {
	entry := Entry{At: 1500 * time.Millisecond, Kind: KindBefore, From: 0, To: 1}

	data, err := json.Marshal(entry)
	require.NoError(t, err)
	assert.JSONEq(t, `{"at_ms":1500,"kind":"before","from":0,"to":1}`, string(data))

	var decoded Entry
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, entry, decoded)
}
