package gen

import (
	"fmt"
	"strconv"

	"github.com/beevik/etree"
	"github.com/jzelinskie/stringz"

	"sbe-schema-generator/internal/common"
	"sbe-schema-generator/internal/logging"
	"sbe-schema-generator/internal/schema"
)

// DefaultSuffix is appended to the schema name to build the artifact file name.
const DefaultSuffix = "_sbe_xml_schema"

const (
	sbePrefix   = "sbe"
	xmlnsPrefix = "xmlns"
)

// GeneratorConfig holds configuration for XML generation.
type GeneratorConfig struct {
	// Dir is the directory the artifact is written to; empty means the
	// working directory.
	Dir string
	// Suffix is appended to the lower-cased schema name before ".xml".
	Suffix string
	// Indent is the number of spaces per nesting level. Zero puts every
	// element on its own line without indentation; a negative value writes
	// the document on a single line.
	Indent int
	// AutoFlush rewrites the artifact after every append.
	AutoFlush bool
	// DefaultComposites makes Compile emit the standard header and group
	// dimension composites before the stored types.
	DefaultComposites bool
}

// DefaultGeneratorConfig returns the default generator configuration.
func DefaultGeneratorConfig() GeneratorConfig {
	return GeneratorConfig{
		Suffix:            DefaultSuffix,
		Indent:            2,
		AutoFlush:         true,
		DefaultComposites: true,
	}
}

// Path returns the artifact path for the named schema.
func (c GeneratorConfig) Path(name string) string {
	return common.FilePath(c.Dir, name, stringz.DefaultEmpty(c.Suffix, DefaultSuffix), common.ExtXML)
}

// HeaderSource provides the header the document root is built from.
type HeaderSource interface {
	Header() (schema.Header, error)
}

// Generator builds the wire-schema element tree of one schema.
type Generator struct {
	config     GeneratorConfig
	path       string
	namespaces schema.Namespaces

	doc   *etree.Document
	root  *etree.Element
	types *etree.Element
}

// NewGenerator reads the header from src and builds the document root with
// its types container. With AutoFlush set, the empty document is written
// immediately.
func NewGenerator(src HeaderSource, name string, config GeneratorConfig) (*Generator, error) {
	h, err := src.Header()
	if err != nil {
		return nil, fmt.Errorf("reading header of schema %q: %w", name, err)
	}

	g := &Generator{
		config:     config,
		path:       config.Path(name),
		namespaces: h.Namespaces,
		doc:        etree.NewDocument(),
	}

	g.doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	// Without an sbe binding the root stays unprefixed; messages are refused
	// later with ErrNamespacesNotConfigured.
	rootTag := "messageSchema"
	if h.SBE != "" {
		rootTag = sbePrefix + ":" + rootTag
	}

	g.root = g.doc.CreateElement(rootTag)
	for _, ns := range []struct{ prefix, uri string }{
		{"sbe", h.SBE},
		{"enx", h.ENX},
		{"str", h.STR},
		{"ext", h.EXT},
	} {
		if ns.uri != "" {
			g.root.CreateAttr(xmlnsPrefix+":"+ns.prefix, ns.uri)
		}
	}

	g.root.CreateAttr("package", h.Package)
	g.root.CreateAttr("id", strconv.Itoa(int(h.SchemaID)))
	g.root.CreateAttr("version", strconv.Itoa(int(h.Version)))
	g.root.CreateAttr("semanticVersion", h.SemanticVersion)
	g.root.CreateAttr("description", h.Description)
	g.root.CreateAttr("byteOrder", h.ByteOrder)

	g.types = g.root.CreateElement("types")

	if config.AutoFlush {
		if err := g.Flush(); err != nil {
			return nil, err
		}
	}

	return g, nil
}

// Path returns where the artifact is written.
func (g *Generator) Path() string {
	return g.path
}

// Flush writes the whole document to the artifact path.
func (g *Generator) Flush() error {
	data, err := g.Bytes()
	if err != nil {
		return err
	}

	if err := writeFile(g.path, data); err != nil {
		return err
	}

	logging.Debug().Str("path", g.path).Int("bytes", len(data)).Msg("wrote wire schema")

	return nil
}

// Bytes serializes the whole document.
func (g *Generator) Bytes() ([]byte, error) {
	g.doc.Indent(g.config.Indent)

	data, err := g.doc.WriteToBytes()
	if err != nil {
		return nil, fmt.Errorf("serializing wire schema: %w", err)
	}

	return data, nil
}

// String returns the serialized document.
func (g *Generator) String() string {
	data, err := g.Bytes()
	if err != nil {
		return ""
	}

	return string(data)
}

// appendTo attaches el to parent and flushes when configured. A failed
// flush detaches el again.
func (g *Generator) appendTo(parent, el *etree.Element) (string, error) {
	parent.AddChild(el)

	if g.config.AutoFlush {
		if err := g.Flush(); err != nil {
			parent.RemoveChild(el)
			return "", err
		}
	}

	return g.fragment(el)
}

// fragment serializes a single element with the document's indentation. A
// prefixed element carries the root's declaration of its prefix so the
// fragment parses on its own.
func (g *Generator) fragment(el *etree.Element) (string, error) {
	cp := el.Copy()

	if cp.Space != "" {
		key := xmlnsPrefix + ":" + cp.Space
		if uri := g.root.SelectAttrValue(key, ""); uri != "" && cp.SelectAttr(key) == nil {
			cp.CreateAttr(key, uri)

			// declarations go first
			last := cp.Attr[len(cp.Attr)-1]
			copy(cp.Attr[1:], cp.Attr[:len(cp.Attr)-1])
			cp.Attr[0] = last
		}
	}

	doc := etree.NewDocument()
	doc.SetRoot(cp)
	doc.Indent(g.config.Indent)

	s, err := doc.WriteToString()
	if err != nil {
		return "", fmt.Errorf("serializing %s: %w", el.Tag, err)
	}

	return s, nil
}
