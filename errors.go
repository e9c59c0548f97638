package tweetsnap

import "encoding/json"

// errorClass categorizes Twitter API error responses for log diagnostics.
// A single-shot fetcher recovers from none of these; they only name the
// cause when a fetch or extraction comes back empty.
type errorClass int

const (
	errNone          errorClass = iota
	errRateLimited              // 88 — rate limit exceeded
	errAuthExpired              // 32 — could not authenticate
	errNotFound                 // 34, 144 — no status/page with that ID
	errNotAuthorized            // 179, 219 — not authorized to see this
	errInternal                 // 131 — Twitter internal error
)

// String names the class for log output.
func (c errorClass) String() string {
	switch c {
	case errRateLimited:
		return "rate limited"
	case errAuthExpired:
		return "auth expired"
	case errNotFound:
		return "not found"
	case errNotAuthorized:
		return "not authorized"
	case errInternal:
		return "internal error"
	}
	return "none"
}

// classifyError inspects a response body for known Twitter error codes.
func classifyError(body []byte) errorClass {
	var errResp struct {
		Errors []struct {
			Code int `json:"code"`
		} `json:"errors"`
	}
	if json.Unmarshal(body, &errResp) != nil || len(errResp.Errors) == 0 {
		return errNone
	}

	for _, e := range errResp.Errors {
		switch e.Code {
		case 88:
			return errRateLimited
		case 32:
			return errAuthExpired
		case 34, 144:
			return errNotFound
		case 179, 219:
			return errNotAuthorized
		case 131:
			return errInternal
		}
	}
	return errNone
}

// hasResponseData returns true if the JSON body contains a non-null "data"
// field. Bodies carrying partial errors alongside data still go to the
// extractor; it decides whether a usable tweet is in there.
func hasResponseData(body []byte) bool {
	var probe struct {
		Data json.RawMessage `json:"data"`
	}
	if json.Unmarshal(body, &probe) != nil {
		return false
	}
	return len(probe.Data) > 0 && string(probe.Data) != "null"
}
