package dispatchers

import (
	"strings"

	"github.com/quickrecipe/console/internal/usage"
)

// Tokenize splits one raw input line into an action name and its raw
// argument tokens. The line is trimmed, then split on single spaces, so
// repeated spaces yield empty tokens. There is no quoting.
func Tokenize(line string) (string, []string, error) {
	line = strings.TrimSpace(line)
	if line == "" {
		return "", nil, usage.EmptyInput()
	}

	tokens := strings.Split(line, " ")
	return tokens[0], tokens[1:], nil
}
