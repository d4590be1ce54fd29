// Package markup provides low-level reading and writing of XML-style
// vector markup.
//
// Writer emits tags, attributes and character data with escaping and
// optional pretty printing. The reading side wraps encoding/xml with
// charset detection and a configurable tolerance for unsupported content.
// Tree construction on top of these primitives lives in package dom.
package markup
