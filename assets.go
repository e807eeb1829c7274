package md2html

import (
	"errors"

	"github.com/alnah/go-md2html/internal/assets"
)

// Names of the built-in style and document template.
const (
	DefaultStyle    = assets.DefaultStyleName
	DefaultTemplate = assets.DefaultTemplateName
)

// Styles lists the built-in style names in lexical order.
func Styles() []string {
	return assets.BuiltinNames(assets.Style)
}

// publicAssetErrors maps internal asset sentinels to exported ones.
var publicAssetErrors = []struct{ internal, public error }{
	{assets.ErrStyleNotFound, ErrStyleNotFound},
	{assets.ErrTemplateNotFound, ErrTemplateNotFound},
	{assets.ErrInvalidDir, ErrInvalidAssetPath},
	{assets.ErrInvalidName, ErrInvalidAssetPath},
}

// convertAssetError keeps the message of err but makes it match the
// exported sentinel with errors.Is. Other errors are returned as is.
func convertAssetError(err error) error {
	if err == nil {
		return nil
	}
	for _, m := range publicAssetErrors {
		if errors.Is(err, m.internal) {
			return &assetError{public: m.public, msg: err.Error()}
		}
	}
	return err
}

type assetError struct {
	public error
	msg    string
}

func (e *assetError) Error() string { return e.msg }
func (e *assetError) Unwrap() error { return e.public }
