// Package output persists extraction results: package image files and the
// normalized data workbook.
package output

import "bytes"

// DetectImageExt sniffs a raster format from leading magic bytes and returns a
// file extension without the dot. Unrecognized content falls back to jpg.
func DetectImageExt(data []byte) string {
	switch {
	case bytes.HasPrefix(data, []byte("\x89PNG\r\n\x1a\n")):
		return "png"
	case bytes.HasPrefix(data, []byte{0xff, 0xd8}):
		return "jpg"
	case bytes.HasPrefix(data, []byte("GIF87a")), bytes.HasPrefix(data, []byte("GIF89a")):
		return "gif"
	case bytes.HasPrefix(data, []byte("BM")):
		return "bmp"
	}
	return "jpg"
}
