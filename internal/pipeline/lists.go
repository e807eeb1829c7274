package pipeline

import (
	"regexp"
	"strings"
)

// List item patterns, matched against a single line.
var (
	// "  - item", "* item", "+ item"
	unorderedItemPattern = regexp.MustCompile(`^(\s*)[*\-+]\s(.+)`)

	// "  1. item"
	orderedItemPattern = regexp.MustCompile(`^(\s*)(\d+)\.\s(.+)`)
)

// listState is the position of the line scanner relative to a list block.
type listState int

const (
	stateOutside listState = iota
	stateInside
)

// listTags holds the wrapping tags of one list kind.
type listTags struct {
	open  string
	close string
}

var (
	unorderedTags = listTags{open: "<ul>", close: "</ul>"}
	orderedTags   = listTags{open: "<ol>", close: "</ol>"}
)

// listScan is the per-pass scan state. It lives for one pass invocation.
type listScan struct {
	tags       listTags
	state      listState
	markup     strings.Builder
	lastNumber int
	out        []string
}

func newListScan(tags listTags, lineCount int) *listScan {
	return &listScan{tags: tags, out: make([]string, 0, lineCount)}
}

// open starts a new list block.
func (s *listScan) open() {
	s.state = stateInside
	s.markup.WriteString(s.tags.open)
	s.markup.WriteByte('\n')
}

// restart closes the current block and opens a fresh one without leaving
// the INSIDE state. Both blocks are emitted together on the next flush.
func (s *listScan) restart() {
	s.markup.WriteString(s.tags.close)
	s.markup.WriteByte('\n')
	s.open()
}

// item buffers one list item. Indentation is kept as a literal prefix.
func (s *listScan) item(indent, content string) {
	s.markup.WriteString(indent)
	s.markup.WriteString("<li>")
	s.markup.WriteString(content)
	s.markup.WriteString("</li>\n")
}

// close ends the current block and returns the accumulated markup.
func (s *listScan) close() string {
	s.markup.WriteString(s.tags.close)
	html := s.markup.String()
	s.markup.Reset()
	s.state = stateOutside
	s.lastNumber = 0
	return html
}

// other handles a line that is not a list item.
func (s *listScan) other(line string) {
	switch {
	case s.state == stateOutside:
		s.out = append(s.out, line)
	case isBlankLine(line):
		// The blank line is replaced by the flushed list.
		s.out = append(s.out, s.close())
	default:
		s.out = append(s.out, s.close()+"\n"+line)
	}
}

// finish flushes a list still open at the end of the buffer when flush is
// true; otherwise the buffered markup is discarded.
func (s *listScan) finish(flush bool) string {
	if s.state == stateInside && flush {
		s.out = append(s.out, s.close())
	}
	return strings.Join(s.out, "\n")
}

// ConvertUnorderedLists rewrites runs of "*", "-" or "+" item lines into a
// <ul> block. Bullet markers may be mixed within one list.
func ConvertUnorderedLists(content string, flushTrailing bool) string {
	lines := strings.Split(content, "\n")
	s := newListScan(unorderedTags, len(lines))

	for _, line := range lines {
		m := unorderedItemPattern.FindStringSubmatch(line)
		if m == nil {
			s.other(line)
			continue
		}
		if s.state == stateOutside {
			s.open()
		}
		s.item(m[1], m[2])
	}

	return s.finish(flushTrailing)
}

// ConvertOrderedLists rewrites runs of "N." item lines into an <ol> block.
// An item numbered exactly "1" inside an open list starts a new list. The
// number written in the source is not emitted; <ol> renumbers.
func ConvertOrderedLists(content string, flushTrailing bool) string {
	lines := strings.Split(content, "\n")
	s := newListScan(orderedTags, len(lines))

	for _, line := range lines {
		m := orderedItemPattern.FindStringSubmatch(line)
		if m == nil {
			s.other(line)
			continue
		}
		switch {
		case s.state == stateOutside:
			s.open()
			s.lastNumber = 1
		case m[2] == "1":
			s.restart()
			s.lastNumber = 1
		default:
			s.lastNumber++
		}
		s.item(m[1], m[3])
	}

	return s.finish(flushTrailing)
}
