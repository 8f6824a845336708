// Copyright 2016 - 2024 The excelize Authors. All rights reserved. Use of
// this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package xlsxwriter

import (
	"bytes"
	"encoding/xml"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"strconv"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// emuPerPixel is the EMU (English Metric Unit) count per screen pixel at 96
// DPI, the fixed ratio every OOXML drawing anchor is expressed in.
const emuPerPixel = 9525

// imageContentTypes maps a supported file extension to the ContentType
// string the package declares for it.
var imageContentTypes = map[string]string{
	".png":  "image/png",
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".gif":  "image/gif",
	".bmp":  "image/bmp",
	".tif":  "image/tiff",
	".tiff": "image/tiff",
}

// ImagePositioning controls how a picture moves and sizes relative to the
// cells underneath it.
type ImagePositioning int

const (
	// PositionMoveAndSize anchors both corners to cells (twoCellAnchor);
	// the picture moves and resizes with the underlying cells.
	PositionMoveAndSize ImagePositioning = iota
	// PositionMoveOnly anchors the top-left corner to a cell with a fixed
	// pixel extent (oneCellAnchor); the picture moves but does not resize.
	PositionMoveOnly
	// PositionAbsolute anchors the picture to the sheet itself, ignoring
	// cell boundaries entirely (absoluteAnchor).
	PositionAbsolute
)

// Image is a worksheet-owned picture: the raw, caller-supplied bytes of an
// already-encoded image file, anchored at a cell. Chart and shape geometry
// are not modeled here; a picture is embedded as an opaque blob and
// referenced by a drawing relationship.
type Image struct {
	Cell        string
	Data        []byte
	Ext         string
	Positioning ImagePositioning
	OffsetXPx   int
	OffsetYPx   int
	ScaleX      float64
	ScaleY      float64
	Hyperlink   string
	AltText     string
	PrintObject bool
	LockAspect  bool

	col, row     int
	widthPx      int
	heightPx     int
	relID        string
}

// NewImage constructs an Image anchored at cell from data, whose format is
// identified by ext (a leading-dot extension such as ".png"). ScaleX/ScaleY
// default to 1.
func NewImage(cell string, data []byte, ext string) *Image {
	return &Image{
		Cell: cell, Data: data, Ext: strings.ToLower(ext),
		ScaleX: 1, ScaleY: 1, PrintObject: true,
	}
}

// resolveExtent validates the image's extension, decodes its pixel
// dimensions and resolves Cell to zero-based coordinates. Decoding the
// container format itself (PNG/JPEG/GIF via the standard library,
// BMP/TIFF via golang.org/x/image) is the one piece of image-format
// knowledge this package needs; it does not interpret pixel data beyond
// that.
func (img *Image) resolveExtent() error {
	if _, ok := imageContentTypes[img.Ext]; !ok {
		return newErr(ErrParameter, "unsupported image extension %q", img.Ext)
	}
	col, row, err := CellNameToCoordinates(img.Cell)
	if err != nil {
		return err
	}
	img.col, img.row = col, row

	w, h, err := decodeImageBounds(img.Data, img.Ext)
	if err != nil {
		return err
	}
	if img.ScaleX == 0 {
		img.ScaleX = 1
	}
	if img.ScaleY == 0 {
		img.ScaleY = 1
	}
	img.widthPx = int(float64(w) * img.ScaleX)
	img.heightPx = int(float64(h) * img.ScaleY)
	return nil
}

// decodeImageBounds returns an image's pixel width and height. The standard
// library's image package handles PNG, JPEG and GIF once their decoders are
// registered by the blank imports above; BMP and TIFF are not in the
// standard library and decode through golang.org/x/image instead.
func decodeImageBounds(data []byte, ext string) (width, height int, err error) {
	switch ext {
	case ".bmp":
		cfg, err := bmp.DecodeConfig(bytes.NewReader(data))
		if err != nil {
			return 0, 0, newErr(ErrParameter, "decode bmp: %v", err)
		}
		return cfg.Width, cfg.Height, nil
	case ".tif", ".tiff":
		cfg, err := tiff.DecodeConfig(bytes.NewReader(data))
		if err != nil {
			return 0, 0, newErr(ErrParameter, "decode tiff: %v", err)
		}
		return cfg.Width, cfg.Height, nil
	default:
		cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
		if err != nil {
			return 0, 0, newErr(ErrParameter, "decode image: %v", err)
		}
		return cfg.Width, cfg.Height, nil
	}
}

// nsDrawingMLSpreadsheet and nsDrawingML are the XML namespaces every
// xdr:wsDr drawing part declares on its root element.
const (
	nsDrawingMLSpreadsheet = "http://schemas.openxmlformats.org/drawingml/2006/spreadsheetDrawing"
	nsDrawingML            = "http://schemas.openxmlformats.org/drawingml/2006/main"
)

// xdrMarker locates a cell corner in EMU offsets from the cell's own
// top-left corner, the unit xdr:from and xdr:to elements share.
type xdrMarker struct {
	Col    int `xml:"xdr:col"`
	ColOff int `xml:"xdr:colOff"`
	Row    int `xml:"xdr:row"`
	RowOff int `xml:"xdr:rowOff"`
}

type xdrExt struct {
	Cx int `xml:"cx,attr"`
	Cy int `xml:"cy,attr"`
}

type xdrCNvPr struct {
	ID    int    `xml:"id,attr"`
	Name  string `xml:"name,attr"`
	Descr string `xml:"descr,attr,omitempty"`
}

type xdrPicLocks struct {
	NoChangeAspect int `xml:"noChangeAspect,attr,omitempty"`
}

type xdrCNvPicPr struct {
	PicLocks xdrPicLocks `xml:"a:picLocks"`
}

type xdrNvPicPr struct {
	CNvPr    xdrCNvPr    `xml:"xdr:cNvPr"`
	CNvPicPr xdrCNvPicPr `xml:"xdr:cNvPicPr"`
}

type xdrBlip struct {
	Embed string `xml:"r:embed,attr"`
}

type xdrStretch struct {
	FillRect string `xml:"a:fillRect"`
}

type xdrBlipFill struct {
	Blip    xdrBlip    `xml:"a:blip"`
	Stretch xdrStretch `xml:"a:stretch"`
}

type xdrOff struct {
	X int `xml:"x,attr"`
	Y int `xml:"y,attr"`
}

type xdrXfrm struct {
	Off xdrOff `xml:"a:off"`
	Ext xdrExt `xml:"a:ext"`
}

type xdrPrstGeom struct {
	Prst string `xml:"prst,attr"`
}

type xdrSpPr struct {
	Xfrm     xdrXfrm     `xml:"a:xfrm"`
	PrstGeom xdrPrstGeom `xml:"a:prstGeom"`
}

type xdrPic struct {
	NvPicPr  xdrNvPicPr  `xml:"xdr:nvPicPr"`
	BlipFill xdrBlipFill `xml:"xdr:blipFill"`
	SpPr     xdrSpPr     `xml:"xdr:spPr"`
}

type xdrClientData struct {
	FPrintsWithSheet int `xml:"fPrintsWithSheet,attr"`
}

type xdrTwoCellAnchor struct {
	EditAs     string         `xml:"editAs,attr,omitempty"`
	From       xdrMarker      `xml:"xdr:from"`
	To         xdrMarker      `xml:"xdr:to"`
	Pic        xdrPic         `xml:"xdr:pic"`
	ClientData xdrClientData  `xml:"xdr:clientData"`
}

type xdrOneCellAnchor struct {
	From       xdrMarker     `xml:"xdr:from"`
	Ext        xdrExt        `xml:"xdr:ext"`
	Pic        xdrPic        `xml:"xdr:pic"`
	ClientData xdrClientData `xml:"xdr:clientData"`
}

type xdrAbsoluteAnchor struct {
	Pos        xdrOff        `xml:"xdr:pos"`
	Ext        xdrExt        `xml:"xdr:ext"`
	Pic        xdrPic        `xml:"xdr:pic"`
	ClientData xdrClientData `xml:"xdr:clientData"`
}

type xdrWsDr struct {
	XMLName        xml.Name             `xml:"xdr:wsDr"`
	Xdr            string               `xml:"xmlns:xdr,attr"`
	A              string               `xml:"xmlns:a,attr"`
	R              string               `xml:"xmlns:r,attr"`
	TwoCellAnchor  []*xdrTwoCellAnchor  `xml:"xdr:twoCellAnchor,omitempty"`
	OneCellAnchor  []*xdrOneCellAnchor  `xml:"xdr:oneCellAnchor,omitempty"`
	AbsoluteAnchor []*xdrAbsoluteAnchor `xml:"xdr:absoluteAnchor,omitempty"`
}

// buildDrawingXML renders the drawing{N}.xml part anchoring every image in
// images. Each picture's blip reference uses the r:id the caller assigned
// for it (img.relID), set by the packager when it wires drawing
// relationships to media parts.
func buildDrawingXML(images []*Image) ([]byte, error) {
	dr := &xdrWsDr{Xdr: nsDrawingMLSpreadsheet, A: nsDrawingML, R: relationshipsNS}
	for i, img := range images {
		pic := xdrPic{
			NvPicPr: xdrNvPicPr{
				CNvPr:    xdrCNvPr{ID: i + 2, Name: "Picture " + strconv.Itoa(i+1), Descr: img.AltText},
				CNvPicPr: xdrCNvPicPr{PicLocks: xdrPicLocks{NoChangeAspect: boolToAttrInt(img.LockAspect)}},
			},
			BlipFill: xdrBlipFill{Blip: xdrBlip{Embed: img.relID}, Stretch: xdrStretch{FillRect: ""}},
			SpPr: xdrSpPr{
				Xfrm:     xdrXfrm{Ext: xdrExt{Cx: img.widthPx * emuPerPixel, Cy: img.heightPx * emuPerPixel}},
				PrstGeom: xdrPrstGeom{Prst: "rect"},
			},
		}
		clientData := xdrClientData{FPrintsWithSheet: boolToAttrInt(img.PrintObject)}
		from := xdrMarker{Col: img.col, ColOff: img.OffsetXPx * emuPerPixel, Row: img.row, RowOff: img.OffsetYPx * emuPerPixel}

		switch img.Positioning {
		case PositionAbsolute:
			dr.AbsoluteAnchor = append(dr.AbsoluteAnchor, &xdrAbsoluteAnchor{
				Pos: xdrOff{X: from.ColOff, Y: from.RowOff},
				Ext: xdrExt{Cx: img.widthPx * emuPerPixel, Cy: img.heightPx * emuPerPixel},
				Pic: pic, ClientData: clientData,
			})
		case PositionMoveOnly:
			dr.OneCellAnchor = append(dr.OneCellAnchor, &xdrOneCellAnchor{
				From: from,
				Ext:  xdrExt{Cx: img.widthPx * emuPerPixel, Cy: img.heightPx * emuPerPixel},
				Pic:  pic, ClientData: clientData,
			})
		default:
			toCol, toColOff := spanMarker(from.Col, from.ColOff, img.widthPx*emuPerPixel, defaultColWidthEMU)
			toRow, toRowOff := spanMarker(from.Row, from.RowOff, img.heightPx*emuPerPixel, defaultRowHeightEMU)
			dr.TwoCellAnchor = append(dr.TwoCellAnchor, &xdrTwoCellAnchor{
				EditAs: "oneCell",
				From:   from,
				To:     xdrMarker{Col: toCol, ColOff: toColOff, Row: toRow, RowOff: toRowOff},
				Pic:    pic, ClientData: clientData,
			})
		}
	}
	body, err := xml.Marshal(dr)
	if err != nil {
		return nil, newErr(ErrIO, "marshal drawing: %v", err)
	}
	return append([]byte(XMLHeader), body...), nil
}

// defaultColWidthEMU and defaultRowHeightEMU approximate an unstyled
// column/row's extent in EMUs, used only to spread a twoCellAnchor's "to"
// marker across however many default-sized cells an image's pixel extent
// covers. A sheet with custom column widths will anchor slightly loose;
// Excel still renders the picture at its declared pixel size regardless,
// since xdr:ext is authoritative.
const (
	defaultColWidthEMU  = 64 * emuPerPixel
	defaultRowHeightEMU = 20 * emuPerPixel
)

// spanMarker walks forward from (fromUnit, fromOff) by lengthEMU in steps
// of unitEMU, returning the resulting (unit, offset) marker.
func spanMarker(fromUnit, fromOff, lengthEMU, unitEMU int) (unit, off int) {
	total := fromOff + lengthEMU
	unit = fromUnit + total/unitEMU
	off = total % unitEMU
	return unit, off
}

func boolToAttrInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
