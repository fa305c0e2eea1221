package transport

import "net/http"

// SetHTTPClient swaps the underlying http.Client so tests can install a
// fake round tripper.
func (c *Client) SetHTTPClient(hc *http.Client) {
	c.httpClient = hc
}
