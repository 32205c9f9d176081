package utils

import (
	"fmt"
	"strconv"
)

// FormatWithCommas formats an integer with comma separators
func FormatWithCommas(n int) string {
	str := strconv.Itoa(n)
	if n < 0 {
		return "-" + FormatWithCommas(-n)
	}
	if n < 1000 {
		return str
	}

	result := make([]byte, 0, len(str)+len(str)/3)
	for i := 0; i < len(str); i++ {
		if i > 0 && (len(str)-i)%3 == 0 {
			result = append(result, ',')
		}
		result = append(result, str[i])
	}
	return string(result)
}

// DisplayRune renders a typed character for logs, making blanks visible.
func DisplayRune(r rune) string {
	switch r {
	case ' ':
		return "<space>"
	case '\t':
		return "<tab>"
	case '\n':
		return "<newline>"
	}
	return fmt.Sprintf("%q", r)
}
