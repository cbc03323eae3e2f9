package main

import (
	"fmt"
	"io"

	"kochflake/internal/geom"
	"kochflake/internal/koch"
	"kochflake/internal/raster"
	"kochflake/internal/report"
)

// export writes tree in the given non-interactive format. Tables cover every depth up to
// the tree's max; the geometry formats use depth.
func export(w io.Writer, format string, tree *koch.Node, depth, imageSize int) error {
	switch format {
	case "table":
		_, err := fmt.Fprintln(w, report.Text(koch.Table(tree, tree.Depth())))
		return err
	case "csv":
		return report.CSV(w, koch.Table(tree, tree.Depth()))
	case "wkt":
		_, err := fmt.Fprintln(w, geom.FormatWKT(tree.Outline(depth)))
		return err
	case "wkt-lines":
		_, err := fmt.Fprintln(w, geom.MultiLineStringWKT(tree.SegmentSlice(depth)))
		return err
	case "geojson":
		d := tree.Query(depth)
		return geom.WriteGeoJSON(w, tree.Outline(depth), map[string]any{
			"depth":         depth,
			"segment_count": d.Segments,
			"perimeter":     d.Perimeter,
			"area":          d.Area,
		})
	case "png":
		return raster.EncodePNG(w, tree.Outline(depth), imageSize)
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}
