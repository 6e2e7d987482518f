package lexer

import (
	"github.com/gorbylang/rubylex/diagnostic"
	"github.com/gorbylang/rubylex/encoding"
	"github.com/gorbylang/rubylex/source"
)

// handleComment implements spec §4.2 "Comments": a `#` consumes to end
// of line. When the comment starts the buffer (or, after a `#!` first
// line, starts the second line), the comment text is also checked
// for a magic `# -*- coding: ... -*-` / `# encoding: ...` marker; since
// re-decoding the whole buffer mid-scan is out of scope here (decoding
// happens once, before the Lexer is constructed), an unsupported
// encoding is reported through the diagnostic bag instead.
func (l *Lexer) handleComment() {
	lineStart := l.buf.Pos() - 1 // position of the '#' itself
	l.buf.GotoEOL()
	text := l.buf.SubstrAt(lineStart, l.buf.Pos())

	if lineStart == 0 || (l.hasShebangFirstLine() && l.buf.LineColForPos(lineStart).Line == 2 && l.buf.LineColForPos(lineStart).Column == 1) {
		if raw, ok := encoding.DetectMagicComment(text); ok {
			if _, ok := encoding.Resolve(raw); !ok {
				l.diags.Warn(diagnostic.Message{Kind: diagnostic.UnsupportedEncoding, Encoding: raw}, l.buf.RangeFromTok())
			}
		}
	}
}

// hasShebangFirstLine reports whether byte 0 starts a `#!` shebang line,
// which shifts a magic encoding comment to the buffer's second line.
func (l *Lexer) hasShebangFirstLine() bool {
	return l.buf.SubstrAt(0, 2) == "#!"
}

// skipEmbeddedDocument implements spec §4.2 "=begin/=end": everything up
// to a line consisting of `=end` (optionally followed by more text) is
// discarded as a single embedded-document comment. Reaching EOF first is
// a diagnostic, matching MRI's "embedded document meets end of file".
func (l *Lexer) skipEmbeddedDocument() {
	l.buf.GotoEOL()
	for {
		if l.buf.Peek(0) == source.EOF {
			l.diags.Err(diagnostic.Message{Kind: diagnostic.EmbeddedDocumentMeetsEof}, l.buf.RangeFromTok())
			return
		}
		l.buf.Nextc() // consume the '\n' ending the previous line
		if l.buf.IsWordMatch("=end") {
			l.buf.GotoEOL()
			return
		}
		l.buf.GotoEOL()
	}
}
