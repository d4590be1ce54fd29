package markup

import (
	"fmt"
	"io"
	"strings"
)

// WriterConfig configures markup output.
type WriterConfig struct {
	// Pretty enables indented output with one element per line. Character
	// data suppresses indentation for its enclosing element so text
	// content round-trips unchanged.
	Pretty bool

	// Indent is the string used per indentation level in pretty mode.
	// Defaults to two spaces.
	Indent string
}

// Writer emits markup to an io.Writer. Methods must be called in document
// order: Open, zero or more Attr, then either SelfClose or CloseStart
// followed by content and Close.
type Writer struct {
	w      io.Writer
	config WriterConfig

	depth    int
	inOpen   bool // an element start tag is unterminated
	lastText bool // last content written was character data
	wroteAny bool
}

// NewWriter creates a Writer with the given configuration.
func NewWriter(w io.Writer, config WriterConfig) *Writer {
	if config.Indent == "" {
		config.Indent = "  "
	}
	return &Writer{w: w, config: config}
}

// Declaration writes the XML declaration followed by a newline.
func (w *Writer) Declaration() error {
	return w.write(`<?xml version="1.0" encoding="UTF-8"?>` + "\n")
}

// Open begins an element start tag.
func (w *Writer) Open(name string) error {
	if err := w.terminateOpen(); err != nil {
		return err
	}
	if w.config.Pretty && w.wroteAny {
		if err := w.write("\n" + w.indent()); err != nil {
			return err
		}
	}
	if err := w.write("<" + name); err != nil {
		return err
	}
	w.inOpen = true
	w.lastText = false
	w.wroteAny = true
	w.depth++
	return nil
}

// Attr writes one attribute of the currently open start tag.
func (w *Writer) Attr(name, value string) error {
	if !w.inOpen {
		return fmt.Errorf("markup: attribute %q written outside a start tag", name)
	}
	return w.write(" " + name + `="` + escapeAttr(value) + `"`)
}

// SelfClose terminates the open start tag as an empty element.
func (w *Writer) SelfClose() error {
	if !w.inOpen {
		return fmt.Errorf("markup: SelfClose without an open start tag")
	}
	w.inOpen = false
	w.depth--
	return w.write("/>")
}

// CloseStart terminates the open start tag, leaving the element open for
// content.
func (w *Writer) CloseStart() error {
	if !w.inOpen {
		return fmt.Errorf("markup: CloseStart without an open start tag")
	}
	w.inOpen = false
	return w.write(">")
}

// Close writes the end tag of the named element.
func (w *Writer) Close(name string) error {
	if err := w.terminateOpen(); err != nil {
		return err
	}
	w.depth--
	if w.config.Pretty && !w.lastText {
		if err := w.write("\n" + w.indent()); err != nil {
			return err
		}
	}
	w.lastText = false
	return w.write("</" + name + ">")
}

// Text writes escaped character data.
func (w *Writer) Text(s string) error {
	if err := w.terminateOpen(); err != nil {
		return err
	}
	w.lastText = true
	return w.write(escapeText(s))
}

// Raw writes s without escaping.
func (w *Writer) Raw(s string) error {
	if err := w.terminateOpen(); err != nil {
		return err
	}
	w.lastText = true
	return w.write(s)
}

// Comment writes an XML comment.
func (w *Writer) Comment(s string) error {
	if err := w.terminateOpen(); err != nil {
		return err
	}
	if w.config.Pretty && w.wroteAny {
		if err := w.write("\n" + w.indent()); err != nil {
			return err
		}
	}
	w.wroteAny = true
	w.lastText = false
	return w.write("<!--" + strings.ReplaceAll(s, "--", "- -") + "-->")
}

// terminateOpen finishes a pending start tag before content is written.
func (w *Writer) terminateOpen() error {
	if !w.inOpen {
		return nil
	}
	w.inOpen = false
	return w.write(">")
}

func (w *Writer) indent() string {
	return strings.Repeat(w.config.Indent, w.depth)
}

func (w *Writer) write(s string) error {
	_, err := io.WriteString(w.w, s)
	return err
}
