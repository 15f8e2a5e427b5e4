package feed

type GeneratorOptions struct {
	Title          string
	Description    string
	Generated      string
	CategoryPrefix string
}

// Generator assembles the final feed document from resolved categories.
type Generator struct {
	opts GeneratorOptions
}

func NewGenerator(opts GeneratorOptions) *Generator {
	return &Generator{opts: opts}
}

func (g *Generator) Run(categories []Category, props *Props) *Document {
	if categories == nil {
		categories = []Category{}
	}

	for i := range categories {
		categories[i].Title = g.opts.CategoryPrefix + categories[i].Title
		if categories[i].Items == nil {
			categories[i].Items = []Item{}
		}
	}

	doc := &Document{
		Title:       g.opts.Title,
		LongTitle:   g.opts.Title,
		Description: g.opts.Description,
		Generated:   g.opts.Generated,
		Categories:  categories,
	}

	if props != nil && (props.NeoGeoBios != "" || len(props.PsxBios) > 0) {
		doc.Props = props
	}

	return doc
}
