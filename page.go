package main

import (
	"errors"
	"fmt"
	"html/template"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// The metadata block ends at the first line starting with this.
const frontMatterDelimiter = "\n---"

const dateLayout = "2006-01-02"

var errNoFrontMatter = errors.New("no front matter delimiter")

// pageMeta is either *basicMeta or *postMeta.
type pageMeta interface {
	title() string
	description() string
	isPageMeta()
}

type basicMeta struct {
	Title  string `yaml:"title"`
	IsHome bool   `yaml:"is_home"`
	Desc   string `yaml:"desc"`
}

func (m *basicMeta) title() string       { return m.Title }
func (m *basicMeta) description() string { return m.Desc }
func (*basicMeta) isPageMeta()           {}

type postMeta struct {
	Title  string `yaml:"title"`
	Author string `yaml:"author"`
	Date   date   `yaml:"date"`
	Desc   string `yaml:"desc"`
}

func (m *postMeta) title() string       { return m.Title }
func (m *postMeta) description() string { return m.Desc }
func (*postMeta) isPageMeta()           {}

// A calendar date, held as midnight UTC.
type date struct {
	time.Time
}

func parseDate(s string) (date, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return date{}, err
	}
	return date{t}, nil
}

func (d *date) UnmarshalYAML(value *yaml.Node) error {
	parsed, err := parseDate(value.Value)
	if err != nil {
		return fmt.Errorf("invalid date %q, want YYYY-MM-DD", value.Value)
	}
	*d = parsed
	return nil
}

// Called from templates
func (d date) String() string {
	return d.Format(dateLayout)
}

type page struct {
	Meta pageMeta
	Body template.HTML
}

// parsePage splits raw into front matter and Markdown body. The returned page
// is nil whenever err is not.
func parsePage(raw string, md renderer) (*page, error) {
	header, body, ok := strings.Cut(raw, frontMatterDelimiter)
	if !ok {
		return nil, errNoFrontMatter
	}
	// The rest of the delimiter line is not part of the body.
	if nl := strings.IndexByte(body, '\n'); nl != -1 {
		body = body[nl+1:]
	} else {
		body = ""
	}

	meta, err := parseMeta([]byte(header))
	if err != nil {
		return nil, err
	}

	return &page{
		Meta: meta,
		Body: template.HTML(md.render([]byte(body))),
	}, nil
}

func parseMeta(header []byte) (pageMeta, error) {
	var doc map[string]yaml.Node
	if err := yaml.Unmarshal(header, &doc); err != nil {
		return nil, fmt.Errorf("invalid front matter: %w", err)
	}
	if len(doc) != 1 {
		return nil, fmt.Errorf("front matter needs exactly one of \"basic\" or \"post\", found %d keys", len(doc))
	}

	for kind, node := range doc {
		switch kind {
		case "basic":
			m := &basicMeta{}
			if err := decodeMeta(&node, m, "title", "desc"); err != nil {
				return nil, fmt.Errorf("basic: %w", err)
			}
			return m, nil
		case "post":
			m := &postMeta{}
			if err := decodeMeta(&node, m, "title", "author", "date", "desc"); err != nil {
				return nil, fmt.Errorf("post: %w", err)
			}
			return m, nil
		default:
			return nil, fmt.Errorf("unknown page kind %q", kind)
		}
	}
	panic("unreachable")
}

// decodeMeta decodes a mapping node into out after checking that every
// required key is present and not null. Unknown keys are ignored.
func decodeMeta(node *yaml.Node, out pageMeta, required ...string) error {
	if node.Kind != yaml.MappingNode {
		return errors.New("expected a mapping")
	}

	present := make(map[string]bool, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		key, val := node.Content[i], node.Content[i+1]
		if val.Tag != "!!null" {
			present[key.Value] = true
		}
	}
	for _, k := range required {
		if !present[k] {
			return fmt.Errorf("missing field %q", k)
		}
	}

	return node.Decode(out)
}
