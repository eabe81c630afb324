// Package selector turns a list of candidate save folders into exactly one,
// prompting on a console when the choice is not trivial.
package selector

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/backmassage/astrosave/internal/display"
	"github.com/backmassage/astrosave/internal/domain"
	"github.com/backmassage/astrosave/internal/logging"
)

// DetailsFunc returns the saves held by one candidate folder, for labels.
type DetailsFunc func(dir string) ([]domain.SaveDetail, error)

// Text holds the user-facing strings of the menu. Zero fields fall back to
// [DefaultText].
type Text struct {
	Header  string // Printed once above the menu.
	Prompt  string // Printed before every read.
	Invalid string // Printed after a rejected answer.
	NoSaves string // Label of a folder without extractable saves.
}

// DefaultText is the English menu text.
var DefaultText = Text{
	Header:  "Contents of detected save folders:",
	Prompt:  "Select the save folder to use:",
	Invalid: "Invalid selection. Please enter a valid number.",
	NoSaves: "No saves found",
}

func (t Text) withDefaults() Text {
	if t.Header == "" {
		t.Header = DefaultText.Header
	}
	if t.Prompt == "" {
		t.Prompt = DefaultText.Prompt
	}
	if t.Invalid == "" {
		t.Invalid = DefaultText.Invalid
	}
	if t.NoSaves == "" {
		t.NoSaves = DefaultText.NoSaves
	}
	return t
}

// Selector picks one folder among candidates.
type Selector struct {
	In       io.Reader
	Out      io.Writer
	Log      logging.Sink
	Details  DetailsFunc
	Text     Text
	Platform domain.Platform // Used only to label NotFoundError.
}

// Select returns the chosen folder.
//
//   - no candidates: *domain.NotFoundError, nothing is printed or read.
//   - one candidate: returned as is, nothing is printed or read.
//   - several: a numbered menu is printed and answers are read line by line
//     until one is an integer in [1, len(candidates)]. There is no retry
//     limit; end of input yields domain.ErrInputClosed.
func (s *Selector) Select(candidates []string) (string, error) {
	switch len(candidates) {
	case 0:
		logging.Logf(s.Log, logging.LevelDebug, "No save folder found")
		return "", &domain.NotFoundError{Platform: s.Platform, What: "a save folder with a dated container file"}
	case 1:
		logging.Logf(s.Log, logging.LevelDebug, "Single save folder, selecting it: %s", candidates[0])
		return candidates[0], nil
	}

	text := s.Text.withDefaults()
	if err := s.printMenu(candidates, text); err != nil {
		return "", err
	}

	sc := bufio.NewScanner(s.In)
	for {
		fmt.Fprintln(s.Out, text.Prompt)
		if !sc.Scan() {
			if err := sc.Err(); err != nil {
				return "", err
			}
			return "", domain.ErrInputClosed
		}
		choice := sc.Text()
		logging.Logf(s.Log, logging.LevelDebug, "User choice: %s", choice)

		if idx, ok := parseChoice(choice, len(candidates)); ok {
			return candidates[idx-1], nil
		}
		fmt.Fprintln(s.Out, text.Invalid)
	}
}

// printMenu writes the header and one numbered line per candidate.
func (s *Selector) printMenu(candidates []string, text Text) error {
	fmt.Fprintln(s.Out, text.Header)
	for i, dir := range candidates {
		var details []domain.SaveDetail
		if s.Details != nil {
			d, err := s.Details(dir)
			if err != nil {
				return err
			}
			details = d
		}
		fmt.Fprintln(s.Out, display.MenuLine(i+1, display.FormatDetails(details, text.NoSaves)))
	}
	return nil
}

// parseChoice accepts a 1-based index within [1, n]. Surrounding whitespace
// is ignored.
func parseChoice(s string, n int) (int, bool) {
	idx, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || idx < 1 || idx > n {
		return 0, false
	}
	return idx, true
}
