package morse

// Option configures a Codec.
type Option func(*Codec)

// WithTable replaces the standard table.
func WithTable(t *Table) Option {
	return func(c *Codec) {
		c.table = t
	}
}

// WithPlaceholder sets the marker written for unknown tone groups.
func WithPlaceholder(placeholder string) Option {
	return func(c *Codec) {
		c.placeholder = placeholder
	}
}

// WithReporter routes encoder and decoder warnings to r.
func WithReporter(r Reporter) Option {
	return func(c *Codec) {
		c.reporter = r
	}
}

// Codec bundles a table with an encoder and a decoder sharing it.
type Codec struct {
	table       *Table
	placeholder string
	reporter    Reporter

	enc *Encoder
	dec *Decoder
}

// New returns a codec over the standard table unless WithTable is given.
func New(opts ...Option) *Codec {
	c := &Codec{}
	for _, opt := range opts {
		opt(c)
	}
	if c.table == nil {
		c.table = StandardTable()
	}
	c.enc = NewEncoder(c.table, c.reporter)
	c.dec = NewDecoder(c.table, c.placeholder, c.reporter)
	return c
}

// Table returns the table the codec translates with.
func (c *Codec) Table() *Table {
	return c.table
}

// Placeholder returns the marker written for unknown tone groups.
func (c *Codec) Placeholder() string {
	return c.dec.Placeholder()
}

func (c *Codec) Encode(text string) Sequence {
	return c.enc.Encode(text)
}

func (c *Codec) Decode(seq Sequence) string {
	return c.dec.Decode(seq)
}

func (c *Codec) ParseRaw(text string) Sequence {
	return ParseRaw(text)
}

func (c *Codec) Render(seq Sequence) string {
	return Render(seq)
}

// EncodeText encodes text and renders the result for display.
func (c *Codec) EncodeText(text string) string {
	return Render(c.enc.Encode(text))
}

// DecodeText normalizes human-typed Morse and decodes it.
func (c *Codec) DecodeText(raw string) string {
	return c.dec.Decode(ParseRaw(raw))
}

// Completions lists the characters the tone prefix can still become.
func (c *Codec) Completions(prefix Sequence) []rune {
	return c.table.Completions(prefix)
}
