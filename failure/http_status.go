// Copyright 2021 Optakt Labs OÜ
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not
// use this file except in compliance with the License. You may obtain a copy of
// the License at
//
//     https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS, WITHOUT
// WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the
// License for the specific language governing permissions and limitations under
// the License.

package failure

import (
	"fmt"
	"net/http"
)

// HTTPStatus is the error for a REST call that completed with a status code
// outside of the 2xx range. The response body is kept as-is so that the
// reason given by the server is never lost.
type HTTPStatus struct {
	Description Description
	Method      string
	URL         string
	StatusCode  int
	Body        string
}

// Error implements the error interface.
func (h HTTPStatus) Error() string {
	return fmt.Sprintf("unexpected HTTP status (method: %s, url: %s, status: %d %s, body: %q): %s",
		h.Method, h.URL, h.StatusCode, http.StatusText(h.StatusCode), h.Body, h.Description)
}
