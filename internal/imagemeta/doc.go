// Package imagemeta extracts EXIF metadata from downloaded APOD images.
//
// Astrophotography images often carry camera, software, and credit
// information in their EXIF tags; the report surfaces what it finds.
// Images without EXIF data (PNGs, stripped JPEGs, GIFs) are the normal
// case and are not an error.
package imagemeta
