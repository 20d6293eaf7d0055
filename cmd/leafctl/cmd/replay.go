package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/veecore/leafgo"
	"github.com/veecore/leafgo/headless"
)

var attachTwice bool

// replayCmd represents the replay command
var replayCmd = &cobra.Command{
	Use:   "replay <events.json>",
	Short: "replay fires recorded draw events through the bridge and prints how each was reified.",
	Long: `
		Replay reads a JSON array of draw events, creates the native layer each
		one describes on a headless map, and fires it as draw:created. Every
		event is printed with the Go type it reified to. Unknown layer types are
		kept as generic layers.

		Event format: {"layerType": "circle", "name": "...", "latlngs": [[lat, lng]], "radius": 10}
	`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		events, err := readEvents(args[0])
		if err != nil {
			return err
		}
		return replay(cmd.OutOrStdout(), events, attachTwice)
	},
}

func init() {
	replayCmd.Flags().BoolVar(&attachTwice, "attach-twice", false, "attach the zoom control twice to show that lifecycle calls are not de-duplicated")
	rootCmd.AddCommand(replayCmd)
}

// drawEvent is one recorded event in a replay file.
type drawEvent struct {
	LayerType string       `json:"layerType"`
	Name      string       `json:"name,omitempty"`
	LatLngs   [][2]float64 `json:"latlngs,omitempty"`
	Radius    float64      `json:"radius,omitempty"`
}

func readEvents(path string) ([]drawEvent, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return decodeEvents(f)
}

func decodeEvents(r io.Reader) ([]drawEvent, error) {
	var events []drawEvent
	if err := json.NewDecoder(r).Decode(&events); err != nil {
		return nil, fmt.Errorf("decode events: %w", err)
	}
	return events, nil
}

func replay(out io.Writer, events []drawEvent, attachTwice bool) error {
	eng, err := headless.New(headless.WithLogger(logger))
	if err != nil {
		return err
	}
	zoom := 13
	m, err := leafgo.NewMap(eng, "map", &leafgo.MapOptions{Zoom: &zoom})
	if err != nil {
		return err
	}

	zc, err := leafgo.NewZoom(eng, nil)
	if err != nil {
		return err
	}
	attaches := 1
	if attachTwice {
		attaches = 2
	}
	for i := 0; i < attaches; i++ {
		if _, err := zc.AttachTo(m); err != nil {
			return err
		}
	}

	seq := 0
	dc, err := leafgo.NewDrawControl(eng, nil, func(ev *leafgo.LayerEvent) {
		seq++
		fmt.Fprintf(out, "#%d %s\n", seq, describe(ev))
	})
	if err != nil {
		return err
	}
	if _, err := dc.AttachTo(m); err != nil {
		return err
	}

	for i, ev := range events {
		h, err := buildLayer(eng, ev)
		if err != nil {
			return fmt.Errorf("event %d (%s): %w", i, ev.LayerType, err)
		}
		data := map[string]any{"layerType": ev.LayerType, "layer": h}
		if ev.Name != "" {
			data["name"] = ev.Name
		}
		if err := m.Fire(leafgo.EventDrawCreated, data); err != nil {
			return err
		}
	}

	if _, err := dc.DetachFrom(m); err != nil {
		return err
	}
	if _, err := zc.DetachFrom(m); err != nil {
		return err
	}

	calls, err := eng.Calls()
	if err != nil {
		return err
	}
	fmt.Fprintln(out, "lifecycle calls:")
	for _, c := range calls {
		fmt.Fprintf(out, "  %s object=L#%d map=L#%d\n", c.Method, c.Object, c.Map)
	}
	logger.Info("replay done",
		zap.Int("events", len(events)),
		zap.Int("lifecycle_calls", len(calls)),
		zap.Int("listeners_left", m.Listeners()))
	return nil
}

// buildLayer creates the native layer an event describes. Unknown kinds get
// a bare L.Layer.
func buildLayer(eng *headless.Engine, ev drawEvent) (leafgo.Handle, error) {
	pts := make([]leafgo.LatLng, len(ev.LatLngs))
	for i, p := range ev.LatLngs {
		pts[i] = leafgo.LatLng{Lat: p[0], Lng: p[1]}
	}
	first := func() leafgo.LatLng {
		if len(pts) == 0 {
			return leafgo.LatLng{}
		}
		return pts[0]
	}

	var (
		l   leafgo.Layer
		err error
	)
	switch leafgo.LayerKind(ev.LayerType) {
	case leafgo.KindMarker:
		l, err = leafgo.NewMarker(eng, first(), nil)
	case leafgo.KindPolyline:
		l, err = leafgo.NewPolyline(eng, pts, nil)
	case leafgo.KindPolygon:
		l, err = leafgo.NewPolygon(eng, pts, nil)
	case leafgo.KindRectangle:
		if len(pts) != 2 {
			return leafgo.Handle{}, fmt.Errorf("rectangle needs 2 corners, got %d", len(pts))
		}
		l, err = leafgo.NewRectangle(eng, leafgo.Bounds{SouthWest: pts[0], NorthEast: pts[1]}, nil)
	case leafgo.KindCircle:
		radius := ev.Radius
		if radius <= 0 {
			radius = 10
		}
		l, err = leafgo.NewCircle(eng, first(), &leafgo.CircleOptions{Radius: radius})
	default:
		v, err := eng.New("L.Layer")
		if err != nil {
			return leafgo.Handle{}, err
		}
		return leafgo.Wrap(v)
	}
	if err != nil {
		return leafgo.Handle{}, err
	}
	return l.Handle(), nil
}

func describe(ev *leafgo.LayerEvent) string {
	l := ev.Layer()
	s := fmt.Sprintf("%s -> %T %s", ev.LayerType, l, l.Handle())
	if ev.Name != "" {
		s += fmt.Sprintf(" name=%q", ev.Name)
	}

	switch l := l.(type) {
	case *leafgo.Marker:
		if ll, err := l.LatLng(); err == nil {
			s += " at " + ll.String()
		}
	case *leafgo.Circle:
		ll, err1 := l.LatLng()
		r, err2 := l.Radius()
		if err1 == nil && err2 == nil {
			s += fmt.Sprintf(" at %s r=%g", ll, r)
		}
	case *leafgo.Rectangle:
		if b, err := l.Bounds(); err == nil {
			s += fmt.Sprintf(" bounds %s..%s", b.SouthWest, b.NorthEast)
		}
	case *leafgo.Polygon:
		if pts, err := l.LatLngs(); err == nil {
			s += fmt.Sprintf(" %d vertices", len(pts))
		}
	case *leafgo.Polyline:
		if pts, err := l.LatLngs(); err == nil {
			s += fmt.Sprintf(" %d points", len(pts))
		}
	case *leafgo.GenericLayer:
		s += " (unknown kind kept as generic)"
	}
	return s
}
