package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

const sampleEvents = `[
	{"layerType": "marker", "name": "home", "latlngs": [[51.5, -0.09]]},
	{"layerType": "polyline", "latlngs": [[0, 0], [1, 1], [2, 0]]},
	{"layerType": "polygon", "latlngs": [[0, 0], [0, 1], [1, 1]]},
	{"layerType": "rectangle", "latlngs": [[1, 2], [3, 4]]},
	{"layerType": "circle", "latlngs": [[51.5, -0.1]], "radius": 500},
	{"layerType": "heatmap"}
]`

func TestDecodeEvents(t *testing.T) {
	events, err := decodeEvents(strings.NewReader(sampleEvents))
	require.NoError(t, err)
	require.Len(t, events, 6)
	require.Equal(t, drawEvent{LayerType: "circle", LatLngs: [][2]float64{{51.5, -0.1}}, Radius: 500}, events[4])

	_, err = decodeEvents(strings.NewReader(`{"layerType": "marker"}`))
	require.Error(t, err)
}

func TestReplay(t *testing.T) {
	events, err := decodeEvents(strings.NewReader(sampleEvents))
	require.NoError(t, err)

	var out bytes.Buffer
	require.NoError(t, replay(&out, events, false))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Contains(t, lines[0], "#1 marker -> *leafgo.Marker")
	require.Contains(t, lines[0], `name="home"`)
	require.Contains(t, lines[0], "LatLng(51.5, -0.09)")
	require.Contains(t, lines[1], "#2 polyline -> *leafgo.Polyline")
	require.Contains(t, lines[1], "3 points")
	require.Contains(t, lines[2], "#3 polygon -> *leafgo.Polygon")
	require.Contains(t, lines[3], "#4 rectangle -> *leafgo.Rectangle")
	require.Contains(t, lines[4], "#5 circle -> *leafgo.Circle")
	require.Contains(t, lines[4], "r=500")
	require.Contains(t, lines[5], "#6 heatmap -> *leafgo.GenericLayer")
	require.Equal(t, "lifecycle calls:", lines[6])
	// zoom onAdd, draw onAdd, draw onRemove, zoom onRemove
	require.Len(t, lines[7:], 4)
}

func TestReplayAttachTwice(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, replay(&out, nil, true))

	s := out.String()
	require.Equal(t, 3, strings.Count(s, "onAdd"))
	require.Equal(t, 2, strings.Count(s, "onRemove"))
}

func TestReplayRejectsBadRectangle(t *testing.T) {
	var out bytes.Buffer
	err := replay(&out, []drawEvent{{LayerType: "rectangle", LatLngs: [][2]float64{{1, 2}}}}, false)
	require.ErrorContains(t, err, "rectangle needs 2 corners")
}

func TestCommands(t *testing.T) {
	path := filepath.Join(t.TempDir(), "events.json")
	require.NoError(t, os.WriteFile(path, []byte(sampleEvents), 0o600))

	for _, tc := range []struct {
		args []string
		want string
	}{
		{[]string{"kinds"}, "polyline\npolygon\nrectangle\ncircle\nmarker\n"},
		{[]string{"replay", path}, "#6 heatmap -> *leafgo.GenericLayer"},
	} {
		var out bytes.Buffer
		rootCmd.SetOut(&out)
		rootCmd.SetArgs(tc.args)
		require.NoError(t, rootCmd.Execute())
		require.Contains(t, out.String(), tc.want)
	}

	rootCmd.SetArgs([]string{"replay", filepath.Join(t.TempDir(), "missing.json")})
	require.Error(t, rootCmd.Execute())
}
