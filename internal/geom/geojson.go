package geom

import (
	"encoding/json"
	"io"
)

type geoJSONGeometry struct {
	Type        string `json:"type"`
	Coordinates any    `json:"coordinates"`
}

type geoJSONFeature struct {
	Type       string          `json:"type"`
	Geometry   geoJSONGeometry `json:"geometry"`
	Properties map[string]any  `json:"properties,omitempty"`
}

type geoJSONCollection struct {
	Type     string           `json:"type"`
	Features []geoJSONFeature `json:"features"`
}

func coords(ring []Point) [][2]float64 {
	out := make([][2]float64, 0, len(ring)+1)
	for _, p := range ring {
		out = append(out, [2]float64{p.X, p.Y})
	}
	if len(ring) > 0 && !ring[0].Eq(ring[len(ring)-1]) {
		out = append(out, [2]float64{ring[0].X, ring[0].Y})
	}
	return out
}

// WriteGeoJSON writes a FeatureCollection holding one Polygon feature for ring.
// Coordinates are planar; no CRS is implied.
func WriteGeoJSON(w io.Writer, ring []Point, props map[string]any) error {
	fc := geoJSONCollection{
		Type: "FeatureCollection",
		Features: []geoJSONFeature{{
			Type: "Feature",
			Geometry: geoJSONGeometry{
				Type:        "Polygon",
				Coordinates: [][][2]float64{coords(ring)},
			},
			Properties: props,
		}},
	}
	enc := json.NewEncoder(w)
	return enc.Encode(fc)
}
