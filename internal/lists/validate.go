package lists

import (
	"strings"
	"unicode/utf8"

	"github.com/iammorganparry/clive/apps/todo/internal/models"
)

const (
	MinNameLength = 1
	MaxNameLength = 100
)

const (
	msgListNameUnique = "List name must be unique."
	msgListNameLength = "List name must be between 1 and 100 characters."
	msgTodoNameLength = "Todo name must be between 1 and 100 characters."
)

// ValidateListName checks name against every list in existing. Uniqueness is
// checked before length, so a too-long duplicate reports ErrDuplicateName.
func ValidateListName(existing []models.List, name string) error {
	return validateListName(existing, name, -1)
}

// validateListName skips the list at index skip so a list never collides
// with its own current name.
func validateListName(existing []models.List, name string, skip int) error {
	for i, l := range existing {
		if i != skip && l.Name == name {
			return &ValidationError{Kind: ErrDuplicateName, Message: msgListNameUnique}
		}
	}
	if !validLength(name) {
		return &ValidationError{Kind: ErrInvalidLength, Message: msgListNameLength}
	}
	return nil
}

// ValidateTodoName checks the trimmed length of a todo name.
// Duplicate todo names within a list are allowed.
func ValidateTodoName(name string) error {
	if !validLength(name) {
		return &ValidationError{Kind: ErrInvalidLength, Message: msgTodoNameLength}
	}
	return nil
}

// nameSpace is trimmed from both ends of a name. Unicode spaces such as
// U+00A0 are kept and count toward the length.
const nameSpace = " \t\n\v\f\r\x00"

func trimName(name string) string {
	return strings.Trim(name, nameSpace)
}

// validLength counts code points, not bytes.
func validLength(name string) bool {
	n := utf8.RuneCountInString(trimName(name))
	return n >= MinNameLength && n <= MaxNameLength
}
