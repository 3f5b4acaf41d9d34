package pkg

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// maxJSONBodyBytes bounds request bodies; notes and scoring payloads are small.
const maxJSONBodyBytes = 1 << 20

var ErrInvalidContentType = errors.New("invalid content type")

// DecodeJSONBody decodes a JSON request body into dst.
func DecodeJSONBody(r *http.Request, dst any) error {
	if ct := r.Header.Get("Content-Type"); !strings.HasPrefix(ct, ContentType.JSON) {
		return ErrInvalidContentType
	}

	decoder := json.NewDecoder(io.LimitReader(r.Body, maxJSONBodyBytes))
	if err := decoder.Decode(dst); err != nil {
		return fmt.Errorf("decode json body: %w", err)
	}
	return nil
}
