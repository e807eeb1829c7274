// Package assets loads the stylesheets and document templates used for
// standalone HTML output.
//
// Assets are addressed by kind and bare name. A name maps to a file under a
// fixed layout:
//
//	styles/{name}.css
//	templates/{name}.html
//
// The same layout is used by the built-in set and by a user directory given
// with --asset-path. New chains the two so a directory can override a single
// asset and inherit the rest.
//
// Templates receive .Title (text), .CSS and .Body (trusted HTML fragment).
package assets
