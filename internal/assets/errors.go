package assets

import "errors"

var (
	ErrStyleNotFound    = errors.New("style not found")
	ErrTemplateNotFound = errors.New("template not found")
	ErrInvalidName      = errors.New("invalid asset name")
	ErrInvalidDir       = errors.New("invalid asset directory")
	ErrRead             = errors.New("reading asset")
)
