package parser

import (
	"archive/zip"
	"encoding/xml"
	"io"
	"path"
	"strconv"
	"strings"

	"github.com/turnkeydata/packex/pkg/packex/models"
)

// rawAnchor holds one parsed drawing anchor before classification.
type rawAnchor struct {
	kind    string // element name: oneCellAnchor, twoCellAnchor, absoluteAnchor
	fromRow int    // zero-based anchor row
	hasFrom bool
	posY    int64 // EMU top offset (absolute anchors)
	hasPos  bool
	extCY   int64 // EMU vertical extent (absolute anchors)
	hasExt  bool
	embedID string // relationship id of the embedded media
	isPic   bool   // the anchor contains a picture element
}

// ExtractPictures reads the embedded pictures of one sheet, with anchor
// geometry and raw bytes, straight from the xlsx container. excelize does not
// surface absolute-anchored drawings, so the DrawingML part is parsed directly.
// A sheet without drawings yields a nil slice and no error.
func ExtractPictures(xlsxPath, sheetName string) ([]models.Picture, error) {
	r, err := zip.OpenReader(xlsxPath)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	drawingPath, err := sheetDrawingPath(&r.Reader, sheetName)
	if err != nil || drawingPath == "" {
		return nil, err
	}

	drawingXML, err := readZipFile(&r.Reader, drawingPath)
	if err != nil || drawingXML == nil {
		return nil, err
	}

	media, err := drawingMediaTargets(&r.Reader, drawingPath)
	if err != nil {
		return nil, err
	}

	var pics []models.Picture
	for _, a := range parseDrawingAnchors(drawingXML) {
		if !a.isPic {
			continue
		}
		pic := models.Picture{Anchor: classifyAnchor(a)}
		if mediaPath, ok := media[a.embedID]; ok {
			if data, err := readZipFile(&r.Reader, mediaPath); err == nil {
				pic.Data = data
			}
		}
		pics = append(pics, pic)
	}
	return pics, nil
}

// classifyAnchor maps a raw drawing anchor to the engine's anchor variants.
// Anchors missing the fields their kind requires yield nil and stay unmatched
// downstream.
func classifyAnchor(a rawAnchor) models.Anchor {
	switch a.kind {
	case "oneCellAnchor", "twoCellAnchor":
		if a.hasFrom {
			return models.CellAnchor{Row: a.fromRow + 1}
		}
	case "absoluteAnchor":
		if a.hasPos && a.hasExt {
			return models.AbsoluteAnchor{Top: a.posY, Height: a.extCY}
		}
	}
	return nil
}

// parseDrawingAnchors scans a drawing XML part and collects its anchors in
// document order.
func parseDrawingAnchors(data []byte) []rawAnchor {
	var anchors []rawAnchor

	decoder := xml.NewDecoder(strings.NewReader(string(data)))
	for {
		token, err := decoder.Token()
		if err != nil {
			break
		}
		if se, ok := token.(xml.StartElement); ok {
			switch se.Name.Local {
			case "oneCellAnchor", "twoCellAnchor", "absoluteAnchor":
				anchors = append(anchors, parseAnchorElement(decoder, se))
			}
		}
	}

	return anchors
}

// parseAnchorElement consumes one anchor element and captures the marker row,
// absolute position, extent and embedded media reference.
func parseAnchorElement(decoder *xml.Decoder, start xml.StartElement) rawAnchor {
	a := rawAnchor{kind: start.Name.Local}

	depth := 1
	for depth > 0 {
		token, err := decoder.Token()
		if err != nil {
			break
		}

		switch t := token.(type) {
		case xml.StartElement:
			depth++
			switch t.Name.Local {
			case "from":
				// First marker in the anchor; twoCellAnchor's "to" marker is
				// irrelevant for row resolution.
				if row, ok := readMarkerRow(decoder); ok {
					a.fromRow, a.hasFrom = row, true
				}
				depth--
			case "pos":
				for _, attr := range t.Attr {
					if attr.Name.Local == "y" {
						if y, err := strconv.ParseInt(attr.Value, 10, 64); err == nil {
							a.posY, a.hasPos = y, true
						}
					}
				}
			case "ext":
				// Only the anchor-level extent counts. The picture's own xfrm
				// ext comes later in document order, and an anchor missing its
				// own extent stays unmappable.
				if !a.hasExt && !a.isPic {
					for _, attr := range t.Attr {
						if attr.Name.Local == "cy" {
							if cy, err := strconv.ParseInt(attr.Value, 10, 64); err == nil {
								a.extCY, a.hasExt = cy, true
							}
						}
					}
				}
			case "pic":
				a.isPic = true
			case "blip":
				for _, attr := range t.Attr {
					if attr.Name.Local == "embed" {
						a.embedID = attr.Value
					}
				}
			}
		case xml.EndElement:
			depth--
		}
	}

	return a
}

// readMarkerRow consumes a from/to marker element and returns its zero-based
// row value.
func readMarkerRow(decoder *xml.Decoder) (int, bool) {
	row, ok := 0, false

	depth := 1
	for depth > 0 {
		token, err := decoder.Token()
		if err != nil {
			break
		}
		switch t := token.(type) {
		case xml.StartElement:
			depth++
			if t.Name.Local == "row" {
				if text, err := readElementText(decoder); err == nil {
					if v, convErr := strconv.Atoi(strings.TrimSpace(text)); convErr == nil {
						row, ok = v, true
					}
				}
				depth--
			}
		case xml.EndElement:
			depth--
		}
	}

	return row, ok
}

// readElementText consumes the current element and returns its character data.
func readElementText(decoder *xml.Decoder) (string, error) {
	var text string
	depth := 1
	for depth > 0 {
		token, err := decoder.Token()
		if err != nil {
			return text, err
		}
		switch t := token.(type) {
		case xml.CharData:
			text += string(t)
		case xml.StartElement:
			depth++
		case xml.EndElement:
			depth--
		}
	}
	return text, nil
}

// sheetDrawingPath resolves the drawing part path for a sheet by walking the
// workbook and worksheet relationship files.
func sheetDrawingPath(r *zip.Reader, sheetName string) (string, error) {
	workbookXML, err := readZipFile(r, "xl/workbook.xml")
	if err != nil || workbookXML == nil {
		return "", err
	}
	rIDToName := parseWorkbookSheets(workbookXML)

	wbRelsXML, err := readZipFile(r, "xl/_rels/workbook.xml.rels")
	if err != nil || wbRelsXML == nil {
		return "", err
	}
	sheetPath := ""
	for rID, target := range parseRelationships(wbRelsXML, "worksheet") {
		if rIDToName[rID] == sheetName {
			sheetPath = resolveRelativePath(target, "xl")
			break
		}
	}
	if sheetPath == "" {
		return "", nil
	}

	relsPath := path.Join(path.Dir(sheetPath), "_rels", path.Base(sheetPath)+".rels")
	sheetRelsXML, err := readZipFile(r, relsPath)
	if err != nil || sheetRelsXML == nil {
		return "", err
	}
	for _, target := range parseRelationships(sheetRelsXML, "drawing") {
		return resolveRelativePath(target, "xl/drawings"), nil
	}
	return "", nil
}

// drawingMediaTargets maps a drawing's relationship ids to media part paths.
func drawingMediaTargets(r *zip.Reader, drawingPath string) (map[string]string, error) {
	relsPath := path.Join(path.Dir(drawingPath), "_rels", path.Base(drawingPath)+".rels")
	relsXML, err := readZipFile(r, relsPath)
	if err != nil || relsXML == nil {
		return nil, err
	}

	media := make(map[string]string)
	for rID, target := range parseRelationships(relsXML, "image") {
		media[rID] = resolveRelativePath(target, path.Dir(drawingPath))
	}
	return media, nil
}

// parseWorkbookSheets maps relationship ids to sheet names from workbook.xml.
func parseWorkbookSheets(data []byte) map[string]string {
	result := make(map[string]string)

	decoder := xml.NewDecoder(strings.NewReader(string(data)))
	for {
		token, err := decoder.Token()
		if err != nil {
			break
		}
		if se, ok := token.(xml.StartElement); ok && se.Name.Local == "sheet" {
			var name, rID string
			for _, attr := range se.Attr {
				switch attr.Name.Local {
				case "name":
					name = attr.Value
				case "id":
					rID = attr.Value
				}
			}
			if name != "" && rID != "" {
				result[rID] = name
			}
		}
	}

	return result
}

// parseRelationships maps relationship ids to targets for relationships whose
// type contains typeSubstr (case-insensitive).
func parseRelationships(data []byte, typeSubstr string) map[string]string {
	result := make(map[string]string)

	decoder := xml.NewDecoder(strings.NewReader(string(data)))
	for {
		token, err := decoder.Token()
		if err != nil {
			break
		}
		if se, ok := token.(xml.StartElement); ok && se.Name.Local == "Relationship" {
			var rID, relType, target string
			for _, attr := range se.Attr {
				switch attr.Name.Local {
				case "Id":
					rID = attr.Value
				case "Type":
					relType = attr.Value
				case "Target":
					target = attr.Value
				}
			}
			if rID != "" && target != "" && strings.Contains(strings.ToLower(relType), typeSubstr) {
				result[rID] = target
			}
		}
	}

	return result
}

func resolveRelativePath(target, baseDir string) string {
	if strings.HasPrefix(target, "/") {
		return strings.TrimPrefix(target, "/")
	}
	return path.Clean(path.Join(baseDir, target))
}

func readZipFile(r *zip.Reader, name string) ([]byte, error) {
	for _, f := range r.File {
		if f.Name == name {
			rc, err := f.Open()
			if err != nil {
				return nil, err
			}
			defer rc.Close()
			return io.ReadAll(rc)
		}
	}
	return nil, nil
}
