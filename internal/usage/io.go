package usage

import "fmt"

// IOFailure wraps a file or network error with the path it concerns.
func IOFailure(path string, err error) *Error {
	return &Error{
		Kind:    ErrIO,
		Message: fmt.Sprintf("could not access '%s'", path),
		Err:     err,
	}
}

// InvalidConfigKey is returned for keys missing from the config catalog.
func InvalidConfigKey(key string) *Error {
	return &Error{
		Kind:    ErrInvalidConfigKey,
		Message: fmt.Sprintf("'%s' is not a valid config key. See 'config'.", key),
	}
}

// InvalidLevel is returned when a level name or number cannot be parsed.
func InvalidLevel(value string) *Error {
	return &Error{
		Kind:    ErrInvalidLevel,
		Message: fmt.Sprintf("'%s' is not a valid level (fatal, error, warn, info, normal or 0-4)", value),
	}
}

// FileNotFound is returned when a file to read does not exist.
func FileNotFound(path string, err error) *Error {
	return &Error{
		Kind:    ErrNotFound,
		Message: fmt.Sprintf("file '%s' not found", path),
		Err:     err,
	}
}

// SitemapNotFound is returned when neither sitemap.xml nor robots.txt of
// site names a sitemap.
func SitemapNotFound(site string, err error) *Error {
	return &Error{
		Kind:    ErrNotFound,
		Message: fmt.Sprintf("no sitemap has been found for the website '%s'", site),
		Err:     err,
	}
}
