package bind

import (
	"io"
	"mime"
	"net/http"
	"net/url"

	perr "reduce/internal/platform/errors"
)

// FormOptions controls form parsing
type FormOptions struct {
	MaxBytes int64 // default 1MB
}

// ParseForm flattens query and urlencoded body values into one map
//
// the body is read for every method, DELETE included, since htmx sends
// selections that way. body values override query values and the last
// value of a repeated key wins
func ParseForm(r *http.Request, opts ...FormOptions) (map[string]string, error) {
	o := FormOptions{MaxBytes: 1 << 20}
	if len(opts) > 0 && opts[0].MaxBytes > 0 {
		o = opts[0]
	}

	out := map[string]string{}
	for k, vv := range r.URL.Query() {
		if len(vv) > 0 {
			out[k] = vv[len(vv)-1]
		}
	}

	if r.Body == nil || r.Body == http.NoBody {
		return out, nil
	}
	defer func() { _ = r.Body.Close() }()

	if ct := r.Header.Get("Content-Type"); ct != "" {
		mt, _, err := mime.ParseMediaType(ct)
		if err != nil || mt != "application/x-www-form-urlencoded" {
			return nil, perr.Newf(perr.ErrorCodeInvalidArgument, "unsupported content type %q", ct)
		}
	}

	b, err := io.ReadAll(io.LimitReader(r.Body, o.MaxBytes+1))
	if err != nil {
		return nil, perr.Wrap(err, perr.ErrorCodeInvalidArgument, "read form body")
	}
	if int64(len(b)) > o.MaxBytes {
		return nil, perr.Newf(perr.ErrorCodeInvalidArgument, "form body exceeds %d bytes", o.MaxBytes)
	}

	vals, err := url.ParseQuery(string(b))
	if err != nil {
		return nil, perr.Wrap(err, perr.ErrorCodeValidation, "malformed form body")
	}
	for k, vv := range vals {
		if len(vv) > 0 {
			out[k] = vv[len(vv)-1]
		}
	}
	return out, nil
}
