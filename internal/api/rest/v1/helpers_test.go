//go:build unit
// +build unit

package v1

import (
	"context"
	"io"
	"net/http"

	"github.com/stretchr/testify/mock"
)

type requestMarkerKey struct{}

// markedRequest builds a request whose context carries a marker, so mocks can check
// that handlers hand the request context to the services.
func markedRequest(method, url string, body io.Reader) *http.Request {
	req, _ := http.NewRequest(method, url, body)
	return req.WithContext(context.WithValue(req.Context(), requestMarkerKey{}, method+" "+url))
}

func fromRequest(req *http.Request) interface{} {
	want := req.Context().Value(requestMarkerKey{})
	return mock.MatchedBy(func(ctx context.Context) bool {
		return ctx != nil && ctx.Value(requestMarkerKey{}) == want
	})
}
