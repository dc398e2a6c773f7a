package beautify

import (
	"bytes"
	"encoding/json"
	"strings"
)

// formatJSON re-indents valid JSON. json.Indent keeps object keys and number
// literals exactly as written.
func formatJSON(content string) (string, bool) {
	if !json.Valid([]byte(content)) {
		return "", false
	}

	var out bytes.Buffer
	if err := json.Indent(&out, []byte(content), "", jsonIndent); err != nil {
		return "", false
	}
	return strings.TrimRight(out.String(), " \t\r\n"), true
}
