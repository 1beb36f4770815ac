package gosiebsp

// Error types attached with errors.WithType. Check them with errors.Type(err).
const (
	ErrTypeInvalidGeometry   = "invalid_geometry"
	ErrTypeParse             = "parse_error"
	ErrTypeInvalidConfig     = "invalid_config"
	ErrTypeUnsupportedFormat = "unsupported_format"
)
