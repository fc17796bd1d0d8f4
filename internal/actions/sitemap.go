package actions

import (
	"fmt"
	"strings"

	"github.com/quickrecipe/console/internal/console"
	"github.com/quickrecipe/console/internal/dispatchers"
)

func sitemapAction(s *console.Session, deps Deps) dispatchers.Action {
	return dispatchers.Action{
		Name:        "sitemap",
		Description: "Find the sitemap(s) of one or many websites.",
		Usage:       "sitemap <export> <urls>",
		Specification: "urls may be a file with a link on every line or\n" +
			"urls separated by the | character.",
		Accepts: dispatchers.AcceptsAny,
		Params: []dispatchers.Param{
			{Name: "export", Required: true},
			{Name: "urls", Required: true},
		},
		Run: func(args dispatchers.Bound) error {
			return sitemap(s, args, deps)
		},
	}
}

func sitemap(s *console.Session, args dispatchers.Bound, deps Deps) error {
	source := args.String("urls")

	urls, err := sitemapTargets(source, deps)
	if err != nil {
		return err
	}
	if len(urls) == 0 {
		s.Out.Error(fmt.Sprintf("Could not load the urls in %s", source), nil)
		return nil
	}

	var found []string
	for _, res := range deps.Web.ResolveAll(s.Context(), urls) {
		if res.Err != nil {
			s.Trace.Warn("sitemap %s: %v", res.URL, res.Err)
			s.Out.Warn(fmt.Sprintf("No sitemap has been found for the following website: %s", res.URL))
			continue
		}
		found = append(found, res.Sitemaps...)
	}

	s.Clipboard.Set(found)
	s.Out.Info("Copied the sitemap list to the clipboard.")

	exportFile := args.String("export")
	if err := deps.Files.WriteFile(exportFile, render(found, "\n"), false); err != nil {
		return err
	}
	s.Out.Info(fmt.Sprintf("Sitemap list exported into the file %s", exportFile))
	return nil
}

// sitemapTargets reads urls inline ("a|b") or from a file, one per line.
func sitemapTargets(source string, deps Deps) ([]string, error) {
	var raw []string
	if strings.HasPrefix(source, "http") {
		raw = strings.Split(source, "|")
	} else {
		lines, err := deps.Files.ReadLines(source)
		if err != nil {
			return nil, err
		}
		raw = lines
	}

	urls := make([]string, 0, len(raw))
	for _, u := range raw {
		if u = strings.TrimSpace(u); u != "" {
			urls = append(urls, u)
		}
	}
	return urls, nil
}
