package prompt

import (
	"github.com/arthur-debert/linkkeeper/pkg/errors"
)

// Scripted answers questions from a fixed list, in order. Each answer is
// a string for Select (matched against the options), Text and Secret, or
// a bool for Confirm. An empty string answer to Text yields the default.
type Scripted struct {
	Answers []interface{}

	// Asked records every question message in order
	Asked []string
}

// NewScripted creates a prompter replaying answers
func NewScripted(answers ...interface{}) *Scripted {
	return &Scripted{Answers: answers}
}

func (s *Scripted) next(message string) (interface{}, error) {
	s.Asked = append(s.Asked, message)
	if len(s.Answers) == 0 {
		return nil, errors.Newf(errors.ErrPrompt, "no scripted answer for %q", message)
	}
	answer := s.Answers[0]
	s.Answers = s.Answers[1:]
	return answer, nil
}

func (s *Scripted) nextString(message string) (string, error) {
	answer, err := s.next(message)
	if err != nil {
		return "", err
	}
	str, ok := answer.(string)
	if !ok {
		return "", errors.Newf(errors.ErrPrompt, "scripted answer for %q is not text", message)
	}
	return str, nil
}

func (s *Scripted) Select(message string, options []string) (int, error) {
	answer, err := s.nextString(message)
	if err != nil {
		return -1, err
	}
	for i, option := range options {
		if option == answer {
			return i, nil
		}
	}
	return -1, errors.Newf(errors.ErrInvalidInput, "invalid selection %q", answer)
}

func (s *Scripted) Text(message, defaultValue string) (string, error) {
	answer, err := s.nextString(message)
	if err != nil {
		return "", err
	}
	if answer == "" {
		return defaultValue, nil
	}
	return answer, nil
}

func (s *Scripted) Secret(message string) (string, error) {
	return s.nextString(message)
}

func (s *Scripted) Confirm(message string, defaultValue bool) (bool, error) {
	answer, err := s.next(message)
	if err != nil {
		return false, err
	}
	b, ok := answer.(bool)
	if !ok {
		return false, errors.Newf(errors.ErrPrompt, "scripted answer for %q is not yes or no", message)
	}
	return b, nil
}
