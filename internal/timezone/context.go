package timezone

import (
	"context"
	"net/http"
	"strings"
)

// Header carries the client's IANA timezone name.
const Header = "X-Timezone"

type ctxKey struct{}

func NewContext(ctx context.Context, tz string) context.Context {
	return context.WithValue(ctx, ctxKey{}, tz)
}

func FromContext(ctx context.Context) (string, bool) {
	tz, ok := ctx.Value(ctxKey{}).(string)
	return tz, ok
}

// FromRequest returns the validated timezone of the request, preferring one
// already put in the request context.
func FromRequest(r *http.Request) (string, error) {
	if tz, ok := FromContext(r.Context()); ok {
		return tz, nil
	}
	tz := strings.TrimSpace(r.Header.Get(Header))
	if err := Validate(tz); err != nil {
		return "", err
	}
	return tz, nil
}
