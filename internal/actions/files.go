package actions

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/quickrecipe/console/internal/console"
	"github.com/quickrecipe/console/internal/dispatchers"
	"github.com/quickrecipe/console/internal/log"
	"github.com/quickrecipe/console/internal/usage"
)

func loadAction(s *console.Session, deps Deps) dispatchers.Action {
	return dispatchers.Action{
		Name:          "load",
		Description:   "Load the content of a file in memory.",
		Usage:         "load <path> (lines)",
		Specification: "With lines=true the clipboard holds one item per line.",
		Accepts:       dispatchers.AcceptsAny,
		Params: []dispatchers.Param{
			{Name: "path", Required: true},
			{Name: "lines", Default: "false"},
		},
		Run: func(args dispatchers.Bound) error {
			return load(s, args, deps)
		},
	}
}

func load(s *console.Session, args dispatchers.Bound, deps Deps) error {
	path := args.String("path")

	if args.Bool("lines") {
		lines, err := deps.Files.ReadLines(path)
		if err != nil {
			return err
		}
		s.Clipboard.Set(lines)
		s.Out.Info(fmt.Sprintf("The content of the file has been copied in the clipboard. (%d lines)", len(lines)))
		return nil
	}

	content, err := deps.Files.ReadFile(path)
	if err != nil {
		return err
	}
	s.Clipboard.Set(content)
	s.Out.Info(fmt.Sprintf("The content of the file has been copied in the clipboard. (%d characters)", utf8.RuneCountInString(content)))
	return nil
}

func exportAction(s *console.Session, deps Deps) dispatchers.Action {
	return dispatchers.Action{
		Name:        "export",
		Description: "Export the content of the clipboard in a file.",
		Usage:       "export <path> (append) (sep)",
		Specification: "The file is appended to unless append=false, which asks before\n" +
			"replacing an existing file. List items are each followed by sep (default \\n).",
		Accepts: dispatchers.AcceptsAny,
		Params: []dispatchers.Param{
			{Name: "path", Required: true},
			{Name: "append", Default: "true"},
			{Name: "sep", Default: "\n"},
		},
		Run: func(args dispatchers.Bound) error {
			return export(s, args, deps)
		},
	}
}

func export(s *console.Session, args dispatchers.Bound, deps Deps) error {
	value, ok := s.Clipboard.Get()
	if !ok {
		s.Out.Error("Could not export the content of the clipboard because it is empty.", nil)
		return nil
	}

	path := args.String("path")
	appendMode := args.Bool("append")

	if !appendMode && deps.Files.Exists(path) {
		answer, err := s.Out.Ask(fmt.Sprintf("The file '%s' already exists. Overwrite it? (y/N) ", path))
		if err != nil {
			return err
		}
		if !isYes(answer) {
			s.Out.Info("Export cancelled.")
			return nil
		}
	}

	content := render(value, unescape(args.String("sep")))
	if err := deps.Files.WriteFile(path, content, appendMode); err != nil {
		return err
	}
	s.Out.Info(fmt.Sprintf("Pasted the content of the clipboard into the following file: %s", path))
	return nil
}

func replaceAction(s *console.Session, deps Deps) dispatchers.Action {
	return dispatchers.Action{
		Name:        "replace",
		Description: "Replace content in a file.",
		Usage:       "replace <path> <from> <to>",
		Specification: "Arguments that all contain '=' are read as keyed, so write\n" +
			"'replace path=<path> from=a=b to=c=d' to replace text containing '='.",
		Accepts: dispatchers.AcceptsAny,
		Params: []dispatchers.Param{
			{Name: "path", Required: true},
			{Name: "from", Required: true},
			{Name: "to", Required: true},
		},
		Run: func(args dispatchers.Bound) error {
			return replace(s, args, deps)
		},
	}
}

func replace(s *console.Session, args dispatchers.Bound, deps Deps) error {
	path := args.String("path")
	from := args.String("from")
	if from == "" {
		return usage.InvalidOption("replace", "from", from)
	}

	content, err := deps.Files.ReadFile(path)
	if err != nil {
		return err
	}

	count := strings.Count(content, from)
	if err := deps.Files.WriteFile(path, strings.ReplaceAll(content, from, args.String("to")), false); err != nil {
		return err
	}
	s.Out.Info(fmt.Sprintf("%d replacement(s) have been made in the following file: %s", count, path))
	return nil
}

// render turns a clipboard value into file content. Each list item is
// followed by sep.
func render(value any, sep string) string {
	switch v := value.(type) {
	case string:
		return v
	case []string:
		var b strings.Builder
		for _, item := range v {
			b.WriteString(item)
			b.WriteString(sep)
		}
		return b.String()
	default:
		return log.Serialize(v)
	}
}

// unescape reads Go escape sequences such as \n and \t typed at the prompt.
func unescape(s string) string {
	if !strings.Contains(s, `\`) {
		return s
	}
	out, err := strconv.Unquote(`"` + strings.ReplaceAll(s, `"`, `\"`) + `"`)
	if err != nil {
		return s
	}
	return out
}

func isYes(answer string) bool {
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return true
	default:
		return false
	}
}
