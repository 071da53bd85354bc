package willowgui

import (
	"strconv"
	"strings"
)

// GwidSeparator joins the segments of a gwid.
const GwidSeparator = "::"

var gwidEscaper = strings.NewReplacer(`\`, `\\`, `:`, `\:`)

// escapeSegment makes s safe to embed between separators. Segments without
// ':' or '\' are returned unchanged.
func escapeSegment(s string) string {
	if !strings.ContainsAny(s, `:\`) {
		return s
	}
	return gwidEscaper.Replace(s)
}

// IDStack is the stack of scope segments used to derive gwids (GUI widget
// ids). Containers push their title while their contents are declared.
type IDStack struct {
	segments []string
}

// Push appends a string segment.
func (s *IDStack) Push(segment string) {
	s.segments = append(s.segments, escapeSegment(segment))
}

// PushInt appends an integer segment, typically a loop index.
func (s *IDStack) PushInt(segment int) {
	s.segments = append(s.segments, strconv.Itoa(segment))
}

// Pop removes the innermost segment. Popping an empty stack panics.
func (s *IDStack) Pop() {
	if len(s.segments) == 0 {
		panic("willowgui: pop on empty id stack")
	}
	s.segments = s.segments[:len(s.segments)-1]
}

// Len returns the number of segments.
func (s *IDStack) Len() int {
	return len(s.segments)
}

// CurrentID joins the segments. ok is false when the stack is empty.
func (s *IDStack) CurrentID() (id string, ok bool) {
	if len(s.segments) == 0 {
		return "", false
	}
	return strings.Join(s.segments, GwidSeparator), true
}

// ToGwid returns the gwid of a widget titled title in the current scope.
func (s *IDStack) ToGwid(title string) string {
	title = escapeSegment(title)
	id, ok := s.CurrentID()
	if !ok {
		return title
	}
	return id + GwidSeparator + title
}
