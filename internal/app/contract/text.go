package contract

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

const (
	maxLineRunes   = 2500
	truncatedRunes = 77
)

// Fold убирает диакритику и приводит к нижнему регистру: "Prêt" -> "pret".
func Fold(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return strings.ToLower(s)
	}
	return strings.ToLower(out)
}

// Sanitize обрезает слишком длинные строки пользовательского текста.
func Sanitize(text string) string {
	if text == "" {
		return ""
	}
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		if utf8.RuneCountInString(line) >= maxLineRunes {
			lines[i] = string([]rune(line)[:truncatedRunes]) + "..."
		}
	}
	return strings.Join(lines, "\n")
}

// EnsureDefaultSupports добавляет обязательные носители, если ни один из
// выбранных их не содержит. Исходный срез не меняется.
func EnsureDefaultSupports(selected []string) []string {
	supports := make([]string, 0, len(selected)+len(DefaultSupports))
	for _, s := range selected {
		if s = strings.TrimSpace(s); s != "" {
			supports = append(supports, s)
		}
	}
	for _, def := range DefaultSupports {
		found := false
		for _, s := range supports {
			if strings.Contains(strings.ToLower(s), strings.ToLower(def)) {
				found = true
				break
			}
		}
		if !found {
			supports = append(supports, def)
		}
	}
	return supports
}

// MatchRight находит право из справочника по самому раннему ключу в подписи:
// "droit de prêt pour un usage temporaire" это "pret", а не "usage".
// Отдельное слово важнее вхождения внутрь слова ("interpretation" не "pret"),
// при равной позиции побеждает более длинный ключ.
func MatchRight(label string) (Right, bool) {
	f := strings.TrimSpace(Fold(label))
	if f == "" {
		return Right{}, false
	}
	for _, wholeWord := range []bool{true, false} {
		best, bestAt := -1, len(f)
		for i, r := range Rights {
			at := keyIndex(f, r.Key, wholeWord)
			if at < 0 {
				continue
			}
			if at < bestAt || (at == bestAt && len(r.Key) > len(Rights[best].Key)) {
				best, bestAt = i, at
			}
		}
		if best >= 0 {
			return Rights[best], true
		}
	}
	return Right{}, false
}

// keyIndex позиция первого вхождения key, с wholeWord только отдельным словом
func keyIndex(s, key string, wholeWord bool) int {
	for offset := 0; offset < len(s); {
		i := strings.Index(s[offset:], key)
		if i < 0 {
			return -1
		}
		at := offset + i
		end := at + len(key)
		if !wholeWord || (!isLetterAt(s, at-1) && !isLetterAt(s, end)) {
			return at
		}
		offset = at + 1
	}
	return -1
}

func isLetterAt(s string, i int) bool {
	if i < 0 || i >= len(s) {
		return false
	}
	c := s[i]
	return c >= 'a' && c <= 'z' || c >= '0' && c <= '9' || c >= utf8.RuneSelf
}

// SelectedRights права из анкеты без повторов, в порядке выбора.
func SelectedRights(labels []string) []Right {
	seen := make(map[string]bool, len(labels))
	var out []Right
	for _, l := range labels {
		r, ok := MatchRight(l)
		if !ok || seen[r.Key] {
			continue
		}
		seen[r.Key] = true
		out = append(out, r)
	}
	return out
}

func joinNonEmpty(sep string, parts ...string) string {
	kept := parts[:0:0]
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, sep)
}

// addressLine "adresse, code_postal ville"
func addressLine(street, postcode, city string) string {
	return joinNonEmpty(", ", street, joinNonEmpty(" ", postcode, city))
}

func orPlaceholder(s, placeholder string) string {
	if strings.TrimSpace(s) == "" {
		return placeholder
	}
	return s
}

func letter(i int) string {
	return string(rune('a' + i))
}
