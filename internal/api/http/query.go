package http

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
)

const defaultPageSize = 20

// pageParams reads ?page= and ?page_size= with sane defaults and caps.
func pageParams(r *http.Request) (page, pageSize int32) {
	page = queryInt32(r, "page", 1)
	if page < 1 {
		page = 1
	}
	pageSize = queryInt32(r, "page_size", defaultPageSize)
	if pageSize < 1 || pageSize > 100 {
		pageSize = defaultPageSize
	}
	return page, pageSize
}

func queryInt32(r *http.Request, key string, fallback int32) int32 {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return fallback
	}
	n, err := strconv.ParseInt(raw, 10, 32)
	if err != nil {
		return fallback
	}
	return int32(n)
}

// pathID parses the {id} route variable.
func pathID(r *http.Request) (int32, error) {
	raw := mux.Vars(r)["id"]
	n, err := strconv.ParseInt(raw, 10, 32)
	if err != nil {
		return 0, err
	}
	return int32(n), nil
}
