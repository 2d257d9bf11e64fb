package analysis

import "regexp"

var versionPatterns = []*regexp.Regexp{
	// v1.0, Ver 2, Version 3.1
	regexp.MustCompile(`(?i)(?:v|Ver\.?|Version` + spaceClass + `*)(` + digitClass + `+(?:\.` + digitClass + `+)*)`),
	// Library 1.2.3
	regexp.MustCompile(`(?i)(` + letterClass + `+)` + spaceClass + `*(` + digitClass + `+(?:\.` + digitClass + `+)+)`),
	// Laravel 10, PHP 8
	regexp.MustCompile(`(?i)(Laravel|PHP|Node\.?js|Python|Ruby|Go)` + spaceClass + `*(` + digitClass + `+)`),
}

// ExtractVersions returns the distinct version mentions found in content.
// Matches are kept verbatim, so "Laravel 10" and "laravel 10" are distinct.
// The result is in first-seen order and never nil.
func ExtractVersions(content string) []string {
	seen := map[string]struct{}{}
	versions := []string{}
	for _, pattern := range versionPatterns {
		for _, match := range pattern.FindAllString(content, -1) {
			if _, ok := seen[match]; ok {
				continue
			}
			seen[match] = struct{}{}
			versions = append(versions, match)
		}
	}
	return versions
}
