package app

import (
	"fmt"
	"runtime/debug"
	"strings"
	"unicode/utf8"

	"threedee/wire3d"
)

// recoverPanic turns a panic inside the step function into an error. The
// panic value and stack go to the logger and, when there is a framebuffer,
// to a text screen so a windowed host shows what happened.
func (s *system) recoverPanic(err *error) {
	r := recover()
	if r == nil {
		return
	}
	stack := debug.Stack()

	s.logf("panic: %v", r)
	for _, line := range strings.Split(string(stack), "\n") {
		if line == "" {
			continue
		}
		s.logf("%s", line)
	}

	s.drawPanic(r, stack)
	*err = fmt.Errorf("app: panic: %v", r)
}

func (s *system) drawPanic(value any, stack []byte) {
	if s.fb == nil || s.hud == nil || s.hud.fontWidth <= 0 || s.hud.fontHeight <= 0 {
		return
	}

	lines := []string{
		"PANIC:",
		fmt.Sprintf("%v", value),
	}
	if len(stack) > 0 {
		lines = append(lines, "stack:")
		for _, line := range strings.Split(string(stack), "\n") {
			if line == "" {
				continue
			}
			lines = append(lines, strings.TrimSpace(line))
		}
	}

	s.fb.ClearRGB(0xFF, 0xFF, 0xFF)

	w, h := s.target.Size()
	cols := int16(w) / s.hud.fontWidth
	if cols <= 0 {
		cols = 1
	}

	y := 0
	for _, line := range lines {
		for len(line) > 0 {
			if y+int(s.hud.fontHeight) > h {
				_ = s.fb.Present()
				return
			}
			chunk, rest := takeRunes(line, cols)
			s.hud.drawText(0, y, chunk, wire3d.Black)
			y += int(s.hud.fontHeight)
			line = strings.TrimLeft(rest, " ")
		}
	}

	_ = s.fb.Present()
}

// takeRunes splits s after its first n runes.
func takeRunes(s string, n int16) (prefix, rest string) {
	if n <= 0 || s == "" {
		return "", s
	}
	if int64(len(s)) <= int64(n) {
		return s, ""
	}
	var i int
	var count int16
	for i < len(s) && count < n {
		_, size := utf8.DecodeRuneInString(s[i:])
		if size <= 0 {
			break
		}
		i += size
		count++
	}
	if i >= len(s) {
		return s, ""
	}
	return s[:i], s[i:]
}
