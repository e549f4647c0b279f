package client

import (
	"encoding/json"
	"strings"

	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"
)

// RawBodyKey is the sentinel key under which an unparseable response body is
// stored, so a non-JSON response surfaces as an assertion mismatch instead of
// a parse error.
const RawBodyKey = "_raw"

// Response is the normalized form of an HTTP response: the status code plus
// the body parsed into an ldvalue.Value. Accessors never fail; a missing or
// mistyped field reads as its zero value, and the caller's assertion reports
// the mismatch.
type Response struct {
	StatusCode int
	Body       ldvalue.Value
	text       string
}

func newResponse(statusCode int, data []byte) Response {
	var body ldvalue.Value
	if err := json.Unmarshal(data, &body); err != nil {
		body = ldvalue.ObjectBuild().Set(RawBodyKey, ldvalue.String(string(data))).Build()
	}
	return Response{
		StatusCode: statusCode,
		Body:       body,
		text:       string(data),
	}
}

// ResponseCode returns the application-level "responseCode" field from the
// body, as distinct from the HTTP status code. It is 0 when the field is
// absent or not a number, which never matches an accepted code.
func (r Response) ResponseCode() int {
	return r.Body.GetByKey("responseCode").IntValue()
}

// Field returns the named top-level body field, or a null value if the body
// is not an object or has no such field.
func (r Response) Field(name string) ldvalue.Value {
	return r.Body.GetByKey(name)
}

// HasListField reports whether the body has an array under the given key.
func (r Response) HasListField(name string) bool {
	return r.Body.GetByKey(name).Type() == ldvalue.ArrayType
}

// Keys returns the body's top-level keys, for diagnostic messages.
func (r Response) Keys() []string {
	return r.Body.Keys()
}

// Text returns the raw response body.
func (r Response) Text() string {
	return r.text
}

// ContainsText reports whether the raw body contains the given substring,
// ignoring case. This is the tolerant match used for service messages like
// "not supported" or "missing".
func (r Response) ContainsText(substr string) bool {
	return strings.Contains(strings.ToLower(r.text), strings.ToLower(substr))
}
