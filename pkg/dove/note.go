package dove

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

const (
	flat    = '♭'
	natural = '♮'
	sharp   = '♯'
)

type NoteName byte

const (
	NoteA NoteName = 'A'
	NoteB NoteName = 'B'
	NoteC NoteName = 'C'
	NoteD NoteName = 'D'
	NoteE NoteName = 'E'
	NoteF NoteName = 'F'
	NoteG NoteName = 'G'
)

func (n NoteName) String() string {
	return string(rune(n))
}

type Accidental int

const (
	Natural Accidental = iota
	Flat
	Sharp
)

func (a Accidental) String() string {
	switch a {
	case Flat:
		return string(flat)
	case Sharp:
		return string(sharp)
	default:
		return ""
	}
}

// Note is the nominal note of the heaviest bell.
type Note struct {
	Name       NoteName
	Accidental Accidental
}

func (n Note) String() string {
	return n.Name.String() + n.Accidental.String()
}

// ParseNote accepts a note letter A-G optionally followed by one accidental:
// "b" or "♭", "#" or "♯", "♮".
func ParseNote(s string) (Note, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Note{}, fmt.Errorf("empty note")
	}

	var n Note
	switch c := s[0]; c {
	case 'A', 'B', 'C', 'D', 'E', 'F', 'G':
		n.Name = NoteName(c)
	default:
		r, _ := utf8.DecodeRuneInString(s)
		return Note{}, fmt.Errorf("char %q is not a note name", r)
	}

	rest := s[1:]
	if rest == "" {
		return n, nil
	}
	r, size := utf8.DecodeRuneInString(rest)
	switch r {
	case 'b', flat:
		n.Accidental = Flat
	case '#', sharp:
		n.Accidental = Sharp
	case natural:
		n.Accidental = Natural
	default:
		return Note{}, fmt.Errorf("char %q is not an accidental", r)
	}
	if len(rest) > size {
		return Note{}, fmt.Errorf("unexpected trailing characters in note %q", s)
	}
	return n, nil
}
