// Package langdetect guesses the language of code content so fenced
// blocks written without an info string can still carry a useful Lang
// annotation. Detection runs a cascade: shebang, strong textual patterns,
// then go-enry's classifier over a fixed candidate set.
package langdetect

import (
	"bytes"
	"strings"

	"github.com/go-enry/go-enry/v2"
)

// Language names as they appear in fence info strings.
const (
	langGo         = "go"
	langPython     = "python"
	langJavaScript = "javascript"
	langJSON       = "json"
	langYAML       = "yaml"
	langHTML       = "html"
	langSQL        = "sql"
	langRust       = "rust"
	langDockerfile = "dockerfile"
	langBash       = "bash"
	langText       = "text"
)

// classifierCandidates bounds the classifier's search space to languages
// that realistically appear in Markdown code blocks.
//
//nolint:gochecknoglobals // fixed candidate set
var classifierCandidates = []string{
	"Go", "Python", "Shell", "JavaScript", "TypeScript",
	"Ruby", "Rust", "Java", "C", "C++", "SQL", "JSON",
	"YAML", "HTML", "CSS", "Markdown", "Dockerfile",
}

// Detect returns the detected language for code content, or "text" when
// detection fails or confidence is low.
func Detect(content []byte) string {
	if len(content) == 0 {
		return langText
	}

	if lang, safe := enry.GetLanguageByShebang(content); safe {
		return normalize(lang)
	}
	if lang := detectByPattern(content); lang != "" {
		return lang
	}
	if lang, safe := enry.GetLanguageByClassifier(content, classifierCandidates); safe && lang != "" {
		return normalize(lang)
	}
	return langText
}

// detectByPattern checks highly indicative per-language patterns, most
// specific first.
func detectByPattern(content []byte) string {
	str := string(content)
	trimmed := bytes.TrimSpace(content)

	switch {
	case bytes.HasPrefix(trimmed, []byte("package ")):
		return langGo
	case looksLikePython(str):
		return langPython
	case looksLikeHTML(trimmed):
		return langHTML
	case looksLikeJSON(trimmed):
		return langJSON
	case looksLikeDockerfile(content, trimmed):
		return langDockerfile
	case looksLikeSQL(str):
		return langSQL
	case looksLikeRust(str):
		return langRust
	case looksLikeJavaScript(str):
		return langJavaScript
	case looksLikeYAML(content):
		return langYAML
	}
	return ""
}

func looksLikePython(s string) bool {
	if strings.Contains(s, "def ") && strings.Contains(s, "):") {
		return true
	}
	if strings.Contains(s, "import ") && !strings.Contains(s, "import (") {
		if strings.Contains(s, "from ") || strings.HasPrefix(strings.TrimSpace(s), "import ") {
			return true
		}
	}
	return strings.Contains(s, "__name__") || strings.Contains(s, "__main__")
}

func looksLikeHTML(trimmed []byte) bool {
	lower := bytes.ToLower(trimmed)
	return bytes.Contains(lower, []byte("<!doctype html")) ||
		bytes.Contains(lower, []byte("<html")) ||
		bytes.Contains(lower, []byte("<head>")) ||
		bytes.Contains(lower, []byte("<body>"))
}

func looksLikeJSON(trimmed []byte) bool {
	return (bytes.HasPrefix(trimmed, []byte("{")) || bytes.HasPrefix(trimmed, []byte("["))) &&
		bytes.Contains(trimmed, []byte(`"`))
}

func looksLikeDockerfile(content, trimmed []byte) bool {
	return bytes.HasPrefix(trimmed, []byte("FROM ")) ||
		(bytes.Contains(content, []byte("\nFROM ")) && bytes.Contains(content, []byte("\nRUN "))) ||
		(bytes.Contains(content, []byte("WORKDIR ")) && bytes.Contains(content, []byte("COPY ")))
}

func looksLikeSQL(s string) bool {
	upper := strings.TrimSpace(strings.ToUpper(s))
	for _, kw := range []string{"SELECT ", "INSERT ", "UPDATE ", "DELETE ", "CREATE "} {
		if strings.HasPrefix(upper, kw) {
			return true
		}
	}
	return false
}

func looksLikeRust(s string) bool {
	return strings.Contains(s, "fn main()") ||
		strings.Contains(s, "println!") ||
		strings.Contains(s, "let mut ")
}

func looksLikeJavaScript(s string) bool {
	return strings.Contains(s, "=>") ||
		strings.Contains(s, "const ") ||
		strings.Contains(s, "let ") ||
		strings.Contains(s, "console.log")
}

// looksLikeYAML counts key: value pairs and root-level list items; two or
// more is enough signal.
func looksLikeYAML(content []byte) bool {
	count := 0
	for _, line := range bytes.Split(content, []byte("\n")) {
		line = bytes.TrimSpace(line)
		if len(line) == 0 || bytes.HasPrefix(line, []byte("#")) {
			continue
		}
		if bytes.Contains(line, []byte(": ")) &&
			!bytes.Contains(line, []byte("(")) &&
			!bytes.Contains(line, []byte("{")) &&
			!bytes.HasPrefix(line, []byte(`"`)) {
			count++
		}
		if bytes.HasPrefix(line, []byte("- ")) {
			count++
		}
	}
	return count >= 2
}

// normalize converts go-enry language names to fence tags.
func normalize(lang string) string {
	if lang == "Shell" {
		return langBash
	}
	return strings.ToLower(lang)
}
