package services

import (
	"regexp"
	"strings"
)

// nestedSection matches pages one directory below the site root.
var nestedSection = regexp.MustCompile(`/(plants|environments)/`)

// RelativeDatasetPath returns the path of file relative to a page, going
// one level up for pages inside the plants/ or environments/ sections.
func RelativeDatasetPath(pagePath, file string) string {
	if nestedSection.MatchString(pagePath) {
		return "../" + file
	}
	return file
}

// SwitchLanguagePath rewrites a page path to newLang. The first
// /<lang>/ segment (or trailing /<lang>) of a known language is replaced;
// paths without one get newLang/ appended to their directory.
// An empty languages list means only "en" is known.
func SwitchLanguagePath(path, newLang string, languages []string) string {
	if len(languages) == 0 {
		languages = []string{"en"}
	}

	quoted := make([]string, 0, len(languages))
	for _, l := range languages {
		if l = strings.TrimSpace(l); l != "" {
			quoted = append(quoted, regexp.QuoteMeta(l))
		}
	}

	if len(quoted) > 0 {
		re := regexp.MustCompile("/(" + strings.Join(quoted, "|") + ")(/|$)")
		if loc := re.FindStringSubmatchIndex(path); loc != nil {
			return path[:loc[0]] + "/" + newLang + path[loc[4]:loc[5]] + path[loc[1]:]
		}
	}

	base := path
	if !strings.HasSuffix(path, "/") {
		base = path[:strings.LastIndex(path, "/")+1]
	}
	return base + newLang + "/"
}
