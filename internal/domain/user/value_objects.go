package user

import "strings"

type Email struct {
	value string
}

func NewEmail(value string) (Email, error) {
	trimmed := strings.TrimSpace(strings.ToLower(value))
	at := strings.Index(trimmed, "@")
	if at <= 0 || at == len(trimmed)-1 || strings.Count(trimmed, "@") != 1 {
		return Email{}, ErrInvalidEmail
	}
	return Email{value: trimmed}, nil
}

func (e Email) String() string {
	return e.value
}

// LocalPart is everything before the "@"; used as the account username.
func (e Email) LocalPart() string {
	return e.value[:strings.Index(e.value, "@")]
}
