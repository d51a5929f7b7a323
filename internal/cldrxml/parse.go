package cldrxml

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"

	"fortio.org/safecast"

	"cldrgen/internal/source"
)

// ErrEmptyDocument is returned when the document contains no elements.
var ErrEmptyDocument = errors.New("empty document")

// Parse builds the element tree for a loaded document. The returned node is
// a synthetic root whose children are the document's top-level elements.
// Character data is accumulated per element; the "draft" attribute is not
// retained (CLDR uses it for editorial status only).
func Parse(file *source.File) (*Node, error) {
	root := &Node{Span: source.Span{File: file.ID}}
	stack := []*Node{root}

	decoder := xml.NewDecoder(bytes.NewReader(file.Content))
	for {
		offBefore := decoder.InputOffset()
		t, err := decoder.Token()
		if err != nil {
			if err != io.EOF {
				return nil, fmt.Errorf("%s: %w", file.Path, err)
			}
			if len(root.Nodes) == 0 {
				return nil, fmt.Errorf("%s: %w", file.Path, ErrEmptyDocument)
			}
			return root, nil
		}

		cur := stack[len(stack)-1]
		switch elem := t.(type) {
		case xml.StartElement:
			attrs := make([][2]string, 0, len(elem.Attr))
			for _, attr := range elem.Attr {
				if attr.Name.Local != "draft" {
					attrs = append(attrs, [2]string{attr.Name.Local, attr.Value})
				}
			}
			start, err := safecast.Conv[uint32](offBefore)
			if err != nil {
				return nil, fmt.Errorf("%s: offset overflow: %w", file.Path, err)
			}
			n := &Node{
				Parent: cur,
				Tag:    elem.Name.Local,
				Attrs:  attrs,
				Span:   source.Span{File: file.ID, Start: start, End: start},
			}
			cur.Nodes = append(cur.Nodes, n)
			stack = append(stack, n)
		case xml.CharData:
			cur.Text += string(elem)
		case xml.EndElement:
			cur.Text = strings.TrimSpace(cur.Text)
			end, err := safecast.Conv[uint32](decoder.InputOffset())
			if err != nil {
				return nil, fmt.Errorf("%s: offset overflow: %w", file.Path, err)
			}
			cur.Span.End = end
			stack = stack[:len(stack)-1]
		}
	}
}
