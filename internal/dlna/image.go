package dlna

type imageResolver func(width, height *int) MediaFormatProfile

var imageContainers = map[string]imageResolver{
	"jpeg": resolveImageJPEG,
	"jpg":  resolveImageJPEG,
	"png":  constant(PNG_LRG),
	"gif":  constant(GIF_LRG),
	"raw":  constant(RAW),
}

func constant(p MediaFormatProfile) imageResolver {
	return func(_, _ *int) MediaFormatProfile { return p }
}

func resolveImageJPEG(width, height *int) MediaFormatProfile {
	switch {
	case fitsWithin(width, height, 640, 480):
		return JPEG_SM
	case fitsWithin(width, height, 1024, 768):
		return JPEG_MED
	default:
		return JPEG_LRG
	}
}
