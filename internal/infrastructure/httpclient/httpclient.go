package httpclient

import "net/http"

// HTTPClient lets tests substitute the transport behind outbound requests.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}
