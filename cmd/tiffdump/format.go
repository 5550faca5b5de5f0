package main

import (
	"fmt"
	"strings"

	"github.com/mdouchement/tiffdir"
)

var compressions = map[uint64]string{
	1:     "None",
	2:     "CCITT",
	3:     "Group 3 Fax",
	4:     "Group 4 Fax",
	5:     "LZW",
	6:     "Old JPEG",
	7:     "JPEG",
	8:     "Deflate (zlib compression)",
	32773: "PackBits",
	32946: "Old Deflate",
	34676: "SGI Log Luminance RLE",
	34677: "SGI Log 24-bits packed",
	34892: "Lossy JPEG",
}

var photometrics = map[uint64]string{
	0:     "WhiteIsZero",
	1:     "BlackIsZero",
	2:     "RGB",
	3:     "Paletted",
	4:     "TransMask",
	5:     "CMYK",
	6:     "YCbCr",
	8:     "CIE-Lab",
	32803: "Color Filter Array",
	32844: "LogL (GrayScale)",
	32845: "SGI LogLuv (Color)",
	34892: "Linear Raw",
}

var subFileTypes = map[uint64]string{
	0: "Primary image",
	1: "Thumbnail/Preview image",
}

// formatValue renders the value of e, printing at most limit values
// (no limit when limit is 0).
func formatValue(e tiffdir.Entry, limit int) string {
	switch e.Tag {
	case tiffdir.Compression:
		return named(e, compressions)
	case tiffdir.PhotometricInterpretation:
		return named(e, photometrics)
	case tiffdir.NewSubFileType:
		return named(e, subFileTypes)
	case tiffdir.DNGVersion, tiffdir.DNGBackwardVersion:
		if e.Type == tiffdir.TypeByte && e.Count == 4 {
			return fmt.Sprintf("%d.%d.%d.%d", e.Raw[0], e.Raw[1], e.Raw[2], e.Raw[3])
		}
	}

	var values []string
	switch e.Type {
	case tiffdir.TypeASCII:
		s, _ := e.ASCII()
		return fmt.Sprintf("%q", s)
	case tiffdir.TypeUndefined:
		for _, b := range e.Raw {
			values = append(values, fmt.Sprintf("0x%02x", b))
		}
	case tiffdir.TypeRational, tiffdir.TypeSRational:
		rats, err := e.Rationals()
		if err != nil {
			return err.Error()
		}
		for _, r := range rats {
			values = append(values, r.RatString())
		}
	case tiffdir.TypeByte, tiffdir.TypeShort, tiffdir.TypeLong:
		u, _ := e.Uints()
		for _, v := range u {
			values = append(values, fmt.Sprint(v))
		}
	case tiffdir.TypeSByte, tiffdir.TypeSShort, tiffdir.TypeSLong:
		ints, _ := e.Ints()
		for _, v := range ints {
			values = append(values, fmt.Sprint(v))
		}
	default:
		floats, err := e.Floats()
		if err != nil {
			return err.Error()
		}
		for _, f := range floats {
			values = append(values, fmt.Sprint(f))
		}
	}
	return list(values, limit)
}

func named(e tiffdir.Entry, names map[uint64]string) string {
	u, err := e.Uints()
	if err != nil {
		return err.Error()
	}
	if name, ok := names[u[0]]; ok {
		return name
	}
	return fmt.Sprint(u[0])
}

func list(values []string, limit int) string {
	if limit > 0 && len(values) > limit {
		return fmt.Sprintf("[%s ...] (%d values)", strings.Join(values[:limit], " "), len(values))
	}
	return "[" + strings.Join(values, " ") + "]"
}
