package dataset

import (
	"net/http"
	"strings"

	"github.com/plantadash/plantsearch/internal/core/ports/driven"
)

// Open returns an HTTPSource for http(s) locations and a FileSource otherwise.
func Open(location string, client *http.Client) driven.DatasetSource {
	lower := strings.ToLower(location)
	if strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://") {
		return NewHTTPSource(location, client)
	}
	return NewFileSource(location)
}

// IsRemote reports whether location would be fetched over HTTP.
func IsRemote(location string) bool {
	_, ok := Open(location, nil).(*HTTPSource)
	return ok
}
