package parser

import (
	"encoding/xml"
	"fmt"
	"io"
	"time"

	"roadcheck/internal/domain/entity"
)

// Формат GPX: точки <trkpt lat="..." lon="..."><time>...</time></trkpt>
// внутри сегментов трека.
type gpxFile struct {
	XMLName xml.Name   `xml:"gpx"`
	Tracks  []gpxTrack `xml:"trk"`
}

type gpxTrack struct {
	Segments []gpxSegment `xml:"trkseg"`
}

type gpxSegment struct {
	Points []gpxPoint `xml:"trkpt"`
}

type gpxPoint struct {
	Lat  *float64 `xml:"lat,attr"`
	Lon  *float64 `xml:"lon,attr"`
	Time string   `xml:"time"`
}

// ParseGPX читает GPX-файл и возвращает точки трека. Точки без координаты
// или без распознаваемой метки времени пропускаются; порядок остальных
// сохраняется как в файле.
func ParseGPX(r io.Reader) ([]entity.TrackPoint, error) {
	var doc gpxFile
	if err := xml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("parse gpx: %w", err)
	}

	var points []entity.TrackPoint
	for _, trk := range doc.Tracks {
		for _, seg := range trk.Segments {
			for _, pt := range seg.Points {
				if pt.Lat == nil || pt.Lon == nil || pt.Time == "" {
					continue
				}
				ts, err := time.Parse(time.RFC3339, pt.Time)
				if err != nil {
					continue
				}
				points = append(points, entity.TrackPoint{
					Latitude:  *pt.Lat,
					Longitude: *pt.Lon,
					Time:      ts,
				})
			}
		}
	}

	return points, nil
}
