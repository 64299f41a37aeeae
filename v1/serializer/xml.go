package serializer

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/libcat/ilsrecord/v1/ilserr"
	"github.com/libcat/ilsrecord/v1/schema"
)

// XMLSerializer renders attribute elements as XML attributes of the enclosing
// element and has_one/has_many elements as child elements. Collections are
// framed by a wrapper element unless wrapped with schema.Wrap(schema.XML, false).
// XML is untyped, so every value is coerced after parsing.
type XMLSerializer struct {
	*base
}

// NewXML creates an XML serializer for s.
func NewXML(s *schema.Schema, opts ...Option) (*XMLSerializer, error) {
	b, err := newBase(s, schema.XML, opts)
	if err != nil {
		return nil, err
	}
	x := &XMLSerializer{base: b}
	b.variant = x
	return x, nil
}

// xmlNode is a parsed element. Namespaces are dropped; elements are matched
// by local name only.
type xmlNode struct {
	name     string
	attrs    map[string]string
	children []*xmlNode
	text     strings.Builder
}

func (n *xmlNode) child(name string) *xmlNode {
	for _, c := range n.children {
		if c.name == name {
			return c
		}
	}
	return nil
}

func (n *xmlNode) childrenNamed(name string) []*xmlNode {
	var out []*xmlNode
	for _, c := range n.children {
		if c.name == name {
			out = append(out, c)
		}
	}
	return out
}

func parseXML(text []byte) (*xmlNode, error) {
	dec := xml.NewDecoder(bytes.NewReader(text))
	var (
		root  *xmlNode
		stack []*xmlNode
	)
	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			n := &xmlNode{name: t.Name.Local, attrs: make(map[string]string, len(t.Attr))}
			for _, a := range t.Attr {
				n.attrs[a.Name.Local] = a.Value
			}
			if len(stack) == 0 {
				if root != nil {
					return nil, fmt.Errorf("multiple root elements: %s and %s", root.name, n.name)
				}
				root = n
			} else {
				parent := stack[len(stack)-1]
				parent.children = append(parent.children, n)
			}
			stack = append(stack, n)
		case xml.EndElement:
			stack = stack[:len(stack)-1]
		case xml.CharData:
			if len(stack) > 0 {
				stack[len(stack)-1].text.Write(t)
			}
		}
	}
	if root == nil {
		return nil, errors.New("no root element")
	}
	return root, nil
}

func (x *XMLSerializer) decodeText(text []byte) (schema.Values, error) {
	root, err := parseXML(text)
	if err != nil {
		return nil, ilserr.NewReceiveError("invalid xml payload", err)
	}
	return x.populateXML(x.schema, root)
}

// populateXML walks the elements of s over a parsed element. Attribute
// elements are read from XML attributes first and child elements second;
// has_one scalars the other way round.
func (x *XMLSerializer) populateXML(s *schema.Schema, n *xmlNode) (schema.Values, error) {
	elems := s.Elements()
	out := make(schema.Values, len(elems))
	for _, e := range elems {
		wire := e.WireName(schema.XML)
		switch {
		case e.Collection():
			var nodes []*xmlNode
			if e.Wrapped(schema.XML) {
				if w := n.child(wire); w != nil {
					nodes = w.childrenNamed(e.ItemName(schema.XML))
				}
			} else {
				nodes = n.childrenNamed(wire)
			}
			items := make([]any, 0, len(nodes))
			for _, c := range nodes {
				if e.Nested() {
					items = append(items, c)
				} else {
					items = append(items, c.text.String())
				}
			}
			v, err := x.collection(s, e, items, func(rs *schema.Schema, item any) (schema.Values, error) {
				return x.populateXML(rs, item.(*xmlNode))
			})
			if err != nil {
				return nil, err
			}
			out[e.Name()] = v

		case e.Nested():
			c := n.child(wire)
			if c == nil {
				out[e.Name()] = e.Default()
				continue
			}
			v, err := x.populateXML(e.Type().Record, c)
			if err != nil {
				return nil, err
			}
			out[e.Name()] = v

		default:
			out[e.Name()] = x.scalar(s, e, scalarNode(n, wire, e.XMLAttribute()))
		}
	}
	return out, nil
}

func scalarNode(n *xmlNode, wire string, attrFirst bool) any {
	attr, hasAttr := n.attrs[wire]
	if attrFirst && hasAttr {
		return attr
	}
	if c := n.child(wire); c != nil {
		return c.text.String()
	}
	if hasAttr {
		return attr
	}
	return nil
}

func (x *XMLSerializer) encode(v schema.Values) (any, error) {
	var buf bytes.Buffer
	enc := xml.NewEncoder(&buf)
	if err := x.writeRecord(enc, x.schema, x.schema.RootName(schema.XML), v); err != nil {
		return nil, err
	}
	if err := enc.Flush(); err != nil {
		return nil, ilserr.NewTransmitError("encode xml payload", err)
	}
	return buf.Bytes(), nil
}

func (x *XMLSerializer) writeRecord(enc *xml.Encoder, s *schema.Schema, name string, v schema.Values) error {
	elems := s.Elements()
	start := xml.StartElement{Name: xml.Name{Local: name}}
	for _, e := range elems {
		if e.XMLAttribute() {
			start.Attr = append(start.Attr, xml.Attr{
				Name:  xml.Name{Local: e.WireName(schema.XML)},
				Value: xmlText(e.Type(), valueOf(v, e)),
			})
		}
	}
	if err := enc.EncodeToken(start); err != nil {
		return ilserr.NewTransmitError("encode xml payload", err)
	}

	for _, e := range elems {
		if e.XMLAttribute() {
			continue
		}
		val := valueOf(v, e)
		wire := e.WireName(schema.XML)
		switch {
		case e.Collection():
			items, _ := schema.AsSlice(val)
			itemName := wire
			if e.Wrapped(schema.XML) {
				itemName = e.ItemName(schema.XML)
				if err := enc.EncodeToken(xml.StartElement{Name: xml.Name{Local: wire}}); err != nil {
					return ilserr.NewTransmitError("encode xml payload", err)
				}
			}
			for _, item := range items {
				if err := x.writeValue(enc, s, e, itemName, item); err != nil {
					return err
				}
			}
			if e.Wrapped(schema.XML) {
				if err := enc.EncodeToken(xml.EndElement{Name: xml.Name{Local: wire}}); err != nil {
					return ilserr.NewTransmitError("encode xml payload", err)
				}
			}

		case e.Nested() && val == nil:
			continue

		default:
			if err := x.writeValue(enc, s, e, wire, val); err != nil {
				return err
			}
		}
	}

	if err := enc.EncodeToken(start.End()); err != nil {
		return ilserr.NewTransmitError("encode xml payload", err)
	}
	return nil
}

func (x *XMLSerializer) writeValue(enc *xml.Encoder, s *schema.Schema, e *schema.Element, name string, val any) error {
	if e.Nested() {
		nested, err := schema.AsValues(val)
		if err != nil {
			return ilserr.NewTransmitError(fmt.Sprintf("%s.%s", s.Name(), e.Name()), err)
		}
		return x.writeRecord(enc, e.Type().Record, name, nested)
	}
	if err := enc.EncodeElement(xmlText(e.Type(), val), xml.StartElement{Name: xml.Name{Local: name}}); err != nil {
		return ilserr.NewTransmitError("encode xml payload", err)
	}
	return nil
}

// xmlText renders a scalar as element or attribute text, coercing it first
// when possible.
func xmlText(t schema.Type, v any) string {
	if c, err := t.Coerce(v); err == nil {
		v = c
	}
	return t.Text(v)
}

func (x *XMLSerializer) blank() any {
	return []byte("<" + x.schema.RootName(schema.XML) + "/>")
}
