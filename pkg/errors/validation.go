package errors

import (
	"strings"
	"unicode"
)

// MaxTextLength bounds free-form strings such as titles and labels.
const MaxTextLength = 256

// ValidateText validates a free-form user string (titles, labels, metadata).
// It rejects control characters and overly long values; empty is allowed.
func ValidateText(field, s string) error {
	if len([]rune(s)) > MaxTextLength {
		return Invalid(field, "%s muito longo (máximo %d caracteres)", field, MaxTextLength)
	}
	for _, r := range s {
		if unicode.IsControl(r) {
			return Invalid(field, "%s contém caracteres de controle inválidos", field)
		}
	}
	return nil
}

// ValidateFileName validates a download file name for safety.
// It ensures the name is a simple basename that can be placed in a
// Content-Disposition header without path components.
//
// Validation rules:
//   - Name cannot be empty
//   - Maximum length of 255 characters
//   - No control characters or quotes
//   - No path separators or traversal sequences
//   - No hidden files (leading dot)
func ValidateFileName(name string) error {
	const field = "pdfOptions.fileName"

	if name == "" {
		return Invalid(field, "nome do arquivo não pode ser vazio")
	}
	if len(name) > 255 {
		return Invalid(field, "nome do arquivo muito longo (máximo 255 caracteres)")
	}

	for _, r := range name {
		if unicode.IsControl(r) || r == '"' {
			return Invalid(field, "nome do arquivo contém caracteres inválidos")
		}
	}

	if strings.ContainsAny(name, "/\\") || strings.Contains(name, "..") {
		return Invalid(field, "nome do arquivo não pode conter separadores de caminho")
	}

	if strings.HasPrefix(name, ".") {
		return Invalid(field, "nome do arquivo não pode começar com ponto")
	}

	return nil
}
