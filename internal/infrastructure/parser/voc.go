package parser

import (
	"encoding/xml"
	"fmt"
	"io"

	"roadcheck/internal/domain/entity"
)

// Формат PASCAL VOC: <annotation> c размером кадра и списком <object>,
// рамки в пикселях.
type vocAnnotation struct {
	XMLName xml.Name    `xml:"annotation"`
	Size    vocSize     `xml:"size"`
	Objects []vocObject `xml:"object"`
}

type vocSize struct {
	Width  int `xml:"width"`
	Height int `xml:"height"`
}

type vocObject struct {
	Name   string `xml:"name"`
	BndBox vocBox `xml:"bndbox"`
}

type vocBox struct {
	XMin float64 `xml:"xmin"`
	YMin float64 `xml:"ymin"`
	XMax float64 `xml:"xmax"`
	YMax float64 `xml:"ymax"`
}

// ParseVOC читает файл разметки PASCAL VOC и возвращает эталонные рамки,
// нормированные к [0,1] по размеру кадра из <size>. Объекты без имени и
// с вырожденной рамкой пропускаются.
func ParseVOC(r io.Reader) ([]entity.ReferenceAnnotation, error) {
	var doc vocAnnotation
	if err := xml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("parse voc annotation: %w", err)
	}

	if doc.Size.Width <= 0 || doc.Size.Height <= 0 {
		return nil, fmt.Errorf("voc annotation has invalid image size %dx%d", doc.Size.Width, doc.Size.Height)
	}

	w := float64(doc.Size.Width)
	h := float64(doc.Size.Height)

	refs := make([]entity.ReferenceAnnotation, 0, len(doc.Objects))
	for _, obj := range doc.Objects {
		if obj.Name == "" {
			continue
		}
		if obj.BndBox.XMax <= obj.BndBox.XMin || obj.BndBox.YMax <= obj.BndBox.YMin {
			continue
		}

		refs = append(refs, entity.ReferenceAnnotation{
			Type: obj.Name,
			Box: entity.BoundingBox{
				XMin: obj.BndBox.XMin / w,
				YMin: obj.BndBox.YMin / h,
				XMax: obj.BndBox.XMax / w,
				YMax: obj.BndBox.YMax / h,
			},
		})
	}

	return refs, nil
}
