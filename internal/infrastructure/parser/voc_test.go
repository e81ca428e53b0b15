package parser

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

const vocSample = `<?xml version="1.0"?>
<annotation>
	<filename>road_0001.jpg</filename>
	<size>
		<width>1000</width>
		<height>500</height>
		<depth>3</depth>
	</size>
	<object>
		<name>pothole</name>
		<bndbox>
			<xmin>100</xmin>
			<ymin>50</ymin>
			<xmax>300</xmax>
			<ymax>150</ymax>
		</bndbox>
	</object>
	<object>
		<name>crack</name>
		<bndbox>
			<xmin>400</xmin>
			<ymin>400</ymin>
			<xmax>400</xmax>
			<ymax>450</ymax>
		</bndbox>
	</object>
	<object>
		<name></name>
		<bndbox>
			<xmin>0</xmin>
			<ymin>0</ymin>
			<xmax>10</xmax>
			<ymax>10</ymax>
		</bndbox>
	</object>
</annotation>`

func TestParseVOC_NormalizesToImageSize(t *testing.T) {
	refs, err := ParseVOC(strings.NewReader(vocSample))
	require.NoError(t, err)

	// Вырожденная рамка и объект без имени отброшены.
	require.Len(t, refs, 1)
	require.Equal(t, "pothole", refs[0].Type)
	require.InDelta(t, 0.1, refs[0].Box.XMin, 1e-9)
	require.InDelta(t, 0.1, refs[0].Box.YMin, 1e-9)
	require.InDelta(t, 0.3, refs[0].Box.XMax, 1e-9)
	require.InDelta(t, 0.3, refs[0].Box.YMax, 1e-9)
}

func TestParseVOC_InvalidSize(t *testing.T) {
	const noSize = `<annotation><size><width>0</width><height>0</height></size></annotation>`
	_, err := ParseVOC(strings.NewReader(noSize))
	require.Error(t, err)
}

func TestParseVOC_BrokenXML(t *testing.T) {
	_, err := ParseVOC(strings.NewReader("<annotation><size>"))
	require.Error(t, err)
}
