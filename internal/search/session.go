package search

import "strings"

// Session is the text currently rendered for one search. It is owned by the
// Orchestrator and mutated only on the interactive thread.
type Session struct {
	text string
}

func (s *Session) Clear() {
	s.text = ""
}

// AppendHeader writes a section header line for one result source.
func (s *Session) AppendHeader(title string) {
	s.text += "--- " + title + " ---\n"
}

// AppendBlock writes a result block followed by a blank separator line.
func (s *Session) AppendBlock(text string) {
	s.text += text + "\n\n"
}

// AppendLine writes a single line, used for the in-progress placeholder.
func (s *Session) AppendLine(text string) {
	s.text += text + "\n"
}

// ReplaceOrAppend swaps the first line containing marker for a result block,
// leaving every other byte untouched. When the marker is gone (a newer search
// already cleared it) the block is appended instead; late results are kept,
// never dropped.
func (s *Session) ReplaceOrAppend(marker, text string) {
	idx := strings.Index(s.text, marker)
	if idx < 0 {
		s.AppendBlock(text)
		return
	}
	end := len(s.text)
	if nl := strings.IndexByte(s.text[idx:], '\n'); nl >= 0 {
		end = idx + nl + 1
	}
	s.text = s.text[:idx] + text + "\n\n" + s.text[end:]
}

func (s *Session) Text() string {
	return s.text
}
