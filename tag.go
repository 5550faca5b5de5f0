package tiffdir

import "fmt"

// Tag identifies the signification of an IFD entry.
// A Tag keeps its numeric code, so tags missing from the registry are
// still distinct keys of a Directory.
type Tag uint16

// Tags of TIFF 6.0 (p. 28-41), TIFF/EP and DNG 1.4.0.0.
const (
	NewSubFileType            Tag = 254
	ImageWidth                Tag = 256
	ImageLength               Tag = 257
	BitsPerSample             Tag = 258
	Compression               Tag = 259
	PhotometricInterpretation Tag = 262
	Make                      Tag = 271
	Model                     Tag = 272
	StripOffsets              Tag = 273
	Orientation               Tag = 274
	SamplesPerPixel           Tag = 277
	RowsPerStrip              Tag = 278
	StripByteCounts           Tag = 279
	XResolution               Tag = 282
	YResolution               Tag = 283
	PlanarConfiguration       Tag = 284
	ResolutionUnit            Tag = 296
	Software                  Tag = 305
	DateTime                  Tag = 306
	Artist                    Tag = 315
	Predictor                 Tag = 317
	ColorMap                  Tag = 320
	TileWidth                 Tag = 322
	TileLength                Tag = 323
	TileOffsets               Tag = 324
	TileByteCounts            Tag = 325
	SubIFDs                   Tag = 330
	ExtraSamples              Tag = 338
	SampleFormat              Tag = 339
	XMP                       Tag = 700
	CFARepeatPatternDim       Tag = 33421
	CFAPattern                Tag = 33422
	Copyright                 Tag = 33432
	ExifIFD                   Tag = 34665
	ImageNumber               Tag = 37393
	Stonits                   Tag = 37439

	DNGVersion                  Tag = 50706
	DNGBackwardVersion          Tag = 50707
	UniqueCameraModel           Tag = 50708
	LocalizedCameraModel        Tag = 50709
	CFAPlaneColor               Tag = 50710
	CFALayout                   Tag = 50711
	LinearizationTable          Tag = 50712
	BlackLevel                  Tag = 50714
	WhiteLevel                  Tag = 50717
	ColorMatrix1                Tag = 50721
	ColorMatrix2                Tag = 50722
	CameraCalibration1          Tag = 50723
	CameraCalibration2          Tag = 50724
	AnalogBalance               Tag = 50727
	AsShotNeutral               Tag = 50728
	BaselineExposure            Tag = 50730
	BaselineNoise               Tag = 50731
	BaselineSharpness           Tag = 50732
	BayerGreenSplit             Tag = 50733
	LinearResponseLimit         Tag = 50734
	CameraSerialNumber          Tag = 50735
	LensInfo                    Tag = 50736
	ShadowScale                 Tag = 50739
	DNGPrivateData              Tag = 50740
	CalibrationIlluminant1      Tag = 50778
	CalibrationIlluminant2      Tag = 50779
	RawDataUniqueID             Tag = 50781
	OriginalRawFileName         Tag = 50827
	CameraCalibrationSignature  Tag = 50931
	ProfileCalibrationSignature Tag = 50932
	ProfileName                 Tag = 50936
	ProfileEmbedPolicy          Tag = 50941
	ProfileCopyright            Tag = 50942
	ForwardMatrix1              Tag = 50964
	ForwardMatrix2              Tag = 50965
	PreviewApplicationName      Tag = 50966
	PreviewApplicationVersion   Tag = 50967
	PreviewSettingsDigest       Tag = 50969
	PreviewColorSpace           Tag = 50970
	PreviewDateTime             Tag = 50971
	RawImageDigest              Tag = 50972
	NoiseProfile                Tag = 51041
)

var tagNames = map[Tag]string{
	NewSubFileType:            "NewSubFileType",
	ImageWidth:                "ImageWidth",
	ImageLength:               "ImageLength",
	BitsPerSample:             "BitsPerSample",
	Compression:               "Compression",
	PhotometricInterpretation: "PhotometricInterpretation",
	Make:                      "Make",
	Model:                     "Model",
	StripOffsets:              "StripOffsets",
	Orientation:               "Orientation",
	SamplesPerPixel:           "SamplesPerPixel",
	RowsPerStrip:              "RowsPerStrip",
	StripByteCounts:           "StripByteCounts",
	XResolution:               "XResolution",
	YResolution:               "YResolution",
	PlanarConfiguration:       "PlanarConfiguration",
	ResolutionUnit:            "ResolutionUnit",
	Software:                  "Software",
	DateTime:                  "DateTime",
	Artist:                    "Artist",
	Predictor:                 "Predictor",
	ColorMap:                  "ColorMap",
	TileWidth:                 "TileWidth",
	TileLength:                "TileLength",
	TileOffsets:               "TileOffsets",
	TileByteCounts:            "TileByteCounts",
	SubIFDs:                   "SubIFDs",
	ExtraSamples:              "ExtraSamples",
	SampleFormat:              "SampleFormat",
	XMP:                       "XMP",
	CFARepeatPatternDim:       "CFARepeatPatternDim",
	CFAPattern:                "CFAPattern",
	Copyright:                 "Copyright",
	ExifIFD:                   "ExifIFD",
	ImageNumber:               "ImageNumber",
	Stonits:                   "StoNits",

	DNGVersion:                  "DNGVersion",
	DNGBackwardVersion:          "DNGBackwardVersion",
	UniqueCameraModel:           "UniqueCameraModel",
	LocalizedCameraModel:        "LocalizedCameraModel",
	CFAPlaneColor:               "CFAPlaneColor",
	CFALayout:                   "CFALayout",
	LinearizationTable:          "LinearizationTable",
	BlackLevel:                  "BlackLevel",
	WhiteLevel:                  "WhiteLevel",
	ColorMatrix1:                "ColorMatrix1",
	ColorMatrix2:                "ColorMatrix2",
	CameraCalibration1:          "CameraCalibration1",
	CameraCalibration2:          "CameraCalibration2",
	AnalogBalance:               "AnalogBalance",
	AsShotNeutral:               "AsShotNeutral",
	BaselineExposure:            "BaselineExposure",
	BaselineNoise:               "BaselineNoise",
	BaselineSharpness:           "BaselineSharpness",
	BayerGreenSplit:             "BayerGreenSplit",
	LinearResponseLimit:         "LinearResponseLimit",
	CameraSerialNumber:          "CameraSerialNumber",
	LensInfo:                    "LensInfo",
	ShadowScale:                 "ShadowScale",
	DNGPrivateData:              "DNGPrivateData",
	CalibrationIlluminant1:      "CalibrationIlluminant1",
	CalibrationIlluminant2:      "CalibrationIlluminant2",
	RawDataUniqueID:             "RawDataUniqueID",
	OriginalRawFileName:         "OriginalRawFileName",
	CameraCalibrationSignature:  "CameraCalibrationSignature",
	ProfileCalibrationSignature: "ProfileCalibrationSignature",
	ProfileName:                 "ProfileName",
	ProfileEmbedPolicy:          "ProfileEmbedPolicy",
	ProfileCopyright:            "ProfileCopyright",
	ForwardMatrix1:              "ForwardMatrix1",
	ForwardMatrix2:              "ForwardMatrix2",
	PreviewApplicationName:      "PreviewApplicationName",
	PreviewApplicationVersion:   "PreviewApplicationVersion",
	PreviewSettingsDigest:       "PreviewSettingsDigest",
	PreviewColorSpace:           "PreviewColorSpace",
	PreviewDateTime:             "PreviewDateTime",
	RawImageDigest:              "RawImageDigest",
	NoiseProfile:                "NoiseProfile",
}

// TagOf maps a tag code read from an entry to its Tag. Every code is accepted.
func TagOf(code uint16) Tag {
	return Tag(code)
}

// Known reports whether t is part of the tag registry.
func (t Tag) Known() bool {
	_, ok := tagNames[t]
	return ok
}

// String returns the common name of the tag.
func (t Tag) String() string {
	if name, ok := tagNames[t]; ok {
		return name
	}
	return fmt.Sprintf("Unknown(%d)", uint16(t))
}
