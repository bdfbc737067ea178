package i18n

import (
	"fmt"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"golang.org/x/text/language"
)

// FormatDate renders value with an LDML-style pattern ("yyyy-MM-dd", "MMMM yyyy",
// "eeeeee"). Text between single quotes is copied literally and '' yields a quote.
// Month and weekday names come from the locale catalog of the given tag.
func (manager *Manager) FormatDate(value time.Time, pattern string, locale language.Tag) string {
	lang := manager.NormalizeLanguage(baseLanguage(locale))

	var output strings.Builder
	runes := []rune(pattern)
	for index := 0; index < len(runes); {
		current := runes[index]

		if current == '\'' {
			if index+1 < len(runes) && runes[index+1] == '\'' {
				output.WriteRune('\'')
				index += 2
				continue
			}
			end := index + 1
			for end < len(runes) {
				if runes[end] == '\'' {
					if end+1 < len(runes) && runes[end+1] == '\'' {
						output.WriteRune('\'')
						end += 2
						continue
					}
					break
				}
				output.WriteRune(runes[end])
				end++
			}
			index = end + 1
			continue
		}

		if !isPatternLetter(current) {
			output.WriteRune(current)
			index++
			continue
		}

		count := 1
		for index+count < len(runes) && runes[index+count] == current {
			count++
		}
		output.WriteString(manager.formatField(value, current, count, lang))
		index += count
	}
	return output.String()
}

func (manager *Manager) formatField(value time.Time, letter rune, count int, lang string) string {
	switch letter {
	case 'y', 'u':
		if count == 2 {
			return fmt.Sprintf("%02d", value.Year()%100)
		}
		return padNumber(value.Year(), count)
	case 'M', 'L':
		month := int(value.Month())
		switch {
		case count <= 2:
			return padNumber(month, count)
		case count == 3:
			return manager.monthName(lang, month, true)
		case count == 4:
			return manager.monthName(lang, month, false)
		default:
			return firstRune(manager.monthName(lang, month, false))
		}
	case 'd':
		return padNumber(value.Day(), count)
	case 'E':
		if count <= 3 {
			return manager.weekdayName(lang, value.Weekday(), "short")
		}
		return manager.weekdayWidth(lang, value.Weekday(), count)
	case 'e', 'c':
		if count <= 2 {
			return padNumber(int(value.Weekday())+1, count)
		}
		if count == 3 {
			return manager.weekdayName(lang, value.Weekday(), "short")
		}
		return manager.weekdayWidth(lang, value.Weekday(), count)
	default:
		return strings.Repeat(string(letter), count)
	}
}

func (manager *Manager) weekdayWidth(lang string, weekday time.Weekday, count int) string {
	switch count {
	case 4:
		return manager.weekdayName(lang, weekday, "")
	case 5:
		return manager.weekdayName(lang, weekday, "narrow")
	default:
		return manager.weekdayName(lang, weekday, "min")
	}
}

func (manager *Manager) monthName(lang string, month int, short bool) string {
	key := "date.month." + strconv.Itoa(month)
	if short {
		key = "date.month.short." + strconv.Itoa(month)
	}
	if name, ok := manager.lookup(lang, key); ok {
		return name
	}
	name := time.Month(month).String()
	if short {
		return name[:3]
	}
	return name
}

func (manager *Manager) weekdayName(lang string, weekday time.Weekday, width string) string {
	key := "date.weekday." + strconv.Itoa(int(weekday))
	if width != "" {
		key = "date.weekday." + width + "." + strconv.Itoa(int(weekday))
	}
	if name, ok := manager.lookup(lang, key); ok {
		return name
	}
	name := weekday.String()
	switch width {
	case "short":
		return name[:3]
	case "min":
		return name[:2]
	case "narrow":
		return name[:1]
	}
	return name
}

func isPatternLetter(value rune) bool {
	return (value >= 'a' && value <= 'z') || (value >= 'A' && value <= 'Z')
}

func padNumber(value int, width int) string {
	return fmt.Sprintf("%0*d", width, value)
}

func firstRune(value string) string {
	if value == "" {
		return ""
	}
	r, _ := utf8.DecodeRuneInString(value)
	return string(r)
}
