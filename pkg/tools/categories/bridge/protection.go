package bridge

import (
	"path"
	"regexp"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var (
	githubSkipFiles = map[string]bool{
		// Lock files
		"package-lock.json": true, "yarn.lock": true, "pnpm-lock.yaml": true,
		"Cargo.lock": true, "poetry.lock": true, "Gemfile.lock": true, "composer.lock": true,
		"Pipfile.lock": true, "go.sum": true, "pubspec.lock": true, "mix.lock": true,
		// Editor and tooling config
		".gitignore": true, ".gitattributes": true, ".editorconfig": true,
		".prettierrc": true, ".eslintrc": true, ".stylelintrc": true,
	}

	githubSkipDirs = map[string]bool{
		"node_modules": true, "vendor": true, ".venv": true, "venv": true,
		"__pycache__": true, ".git": true, ".idea": true, ".vscode": true,
		"dist": true, "build": true, "target": true, ".next": true, ".nuxt": true,
		"coverage": true, ".tox": true, ".mypy_cache": true, ".pytest_cache": true,
	}

	githubSkipExtensions = []string{
		".min.js", ".min.css", ".map", ".d.ts",
		".svg", ".woff", ".woff2", ".ttf", ".eot", ".ico",
		".csv", ".jsonl", ".ndjson",
	}

	sourceMarker = regexp.MustCompile(`--- Source: ([^\n]+) ---\n`)

	counts = message.NewPrinter(language.English)
)

const fileBoundary = "\n--- Source:"

// filterStats summarises what filterGitHub removed
type filterStats struct {
	kept    int
	skipped int
}

func shouldSkipGitHubFile(filePath string) bool {
	filePath = strings.ReplaceAll(filePath, `\`, "/")
	if githubSkipFiles[path.Base(filePath)] {
		return true
	}
	for _, part := range strings.Split(filePath, "/") {
		if githubSkipDirs[part] {
			return true
		}
	}
	for _, ext := range githubSkipExtensions {
		if strings.HasSuffix(filePath, ext) {
			return true
		}
	}
	return false
}

// filterGitHub drops noise files from output made of "--- Source: path ---"
// sections. Output without markers is returned unchanged.
func filterGitHub(content string) (string, filterStats) {
	matches := sourceMarker.FindAllStringSubmatchIndex(content, -1)
	if len(matches) == 0 {
		return content, filterStats{}
	}

	var stats filterStats
	var kept []string
	if preamble := content[:matches[0][0]]; strings.TrimSpace(preamble) != "" {
		kept = append(kept, preamble)
	}

	for i, m := range matches {
		filePath := strings.TrimSpace(content[m[2]:m[3]])
		end := len(content)
		if i+1 < len(matches) {
			end = matches[i+1][0]
		}
		body := content[m[1]:end]

		if shouldSkipGitHubFile(filePath) {
			stats.skipped++
			continue
		}
		stats.kept++
		kept = append(kept, "--- Source: "+filePath+" ---\n"+body)
	}

	return strings.Join(kept, "\n\n"), stats
}

// truncate cuts content to at most maxChars characters, preferring a file
// boundary when that keeps more than 80% of the limit and a line break
// otherwise.
func truncate(content string, maxChars int) (string, bool) {
	if utf8.RuneCountInString(content) <= maxChars {
		return content, false
	}

	truncated := string([]rune(content)[:maxChars])

	if idx := strings.LastIndex(truncated, fileBoundary); idx >= 0 &&
		utf8.RuneCountInString(truncated[:idx]) > maxChars*8/10 {
		return truncated[:idx], true
	}
	if idx := strings.LastIndex(truncated, "\n"); idx > 0 {
		return truncated[:idx], true
	}
	return truncated, true
}

// protect applies GitHub noise filtering and truncation and prepends a
// summary header when either changed the content
func protect(scheme, content string, maxChars int) string {
	var stats filterStats
	if scheme == "github" {
		content, stats = filterGitHub(content)
	}

	before := utf8.RuneCountInString(content)
	content, truncated := truncate(content, maxChars)

	var notes []string
	if stats.skipped > 0 {
		notes = append(notes, counts.Sprintf("Filtered %d noise files (lock files, vendor dirs, etc.)", stats.skipped))
	}
	if truncated {
		notes = append(notes, counts.Sprintf("Truncated from %d to %d chars (%d limit)",
			before, utf8.RuneCountInString(content), maxChars))
	}
	if len(notes) == 0 {
		return content
	}
	return "[Protection: " + strings.Join(notes, "; ") + "]\n\n" + content
}
