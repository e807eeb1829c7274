package assets

// Kind selects the asset family a name refers to.
type Kind int

const (
	// Style is a stylesheet inlined into a <style> block.
	Style Kind = iota
	// Template is an html/template document skeleton.
	Template
)

// Built-in names used when nothing else is configured.
const (
	DefaultStyleName    = "default"
	DefaultTemplateName = "default"
)

func (k Kind) String() string {
	if k == Template {
		return "template"
	}
	return "style"
}

func (k Kind) dir() string {
	if k == Template {
		return "templates"
	}
	return "styles"
}

func (k Kind) ext() string {
	if k == Template {
		return ".html"
	}
	return ".css"
}

func (k Kind) notFound() error {
	if k == Template {
		return ErrTemplateNotFound
	}
	return ErrStyleNotFound
}

func (k Kind) file(name string) string {
	return k.dir() + "/" + name + k.ext()
}
