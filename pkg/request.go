package pkg

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
)

var ErrInvalidContentType = errors.New("invalid content type")

// DecodeJSONBody checks the request content type and decodes the body into target.
// An empty body leaves target untouched.
func DecodeJSONBody(r *http.Request, target any) error {
	if r.Body == nil || r.ContentLength == 0 {
		return nil
	}

	mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if err != nil || mediaType != ContentType.JSON {
		return ErrInvalidContentType
	}

	decoder := json.NewDecoder(r.Body)
	if err := decoder.Decode(target); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return fmt.Errorf("decode json body: %w", err)
	}
	return nil
}

// IntPathVar reads a positive integer from the mux route vars.
func IntPathVar(r *http.Request, name string) (int, error) {
	raw, ok := mux.Vars(r)[name]
	if !ok {
		return 0, fmt.Errorf("missing path var %s", name)
	}
	value, err := strconv.Atoi(raw)
	if err != nil || value <= 0 {
		return 0, fmt.Errorf("invalid path var %s: %q", name, raw)
	}
	return value, nil
}
