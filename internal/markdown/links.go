package markdown

// Options controls how Markdown is parsed for internal analysis.
type Options struct {
	// Tables enables GitHub-flavoured table parsing.
	Tables bool
}

type LinkKind string

const (
	LinkKindInline              LinkKind = "inline"
	LinkKindImage               LinkKind = "image"
	LinkKindAuto                LinkKind = "auto"
	LinkKindReferenceDefinition LinkKind = "reference_definition"
)

type Link struct {
	Kind        LinkKind
	Destination string
	Text        string
}
