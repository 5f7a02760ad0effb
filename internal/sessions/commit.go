package sessions

import "net/http"

// commitWriter runs commit once, just before the wrapped handler's response
// is first written. If commit fails the handler's response is replaced with
// a 500.
type commitWriter struct {
	http.ResponseWriter
	commit func() error
	done   bool
	failed bool
}

// flush runs commit if it has not run yet and reports whether the response
// may proceed.
func (cw *commitWriter) flush() bool {
	if cw.done {
		return !cw.failed
	}
	cw.done = true
	if err := cw.commit(); err != nil {
		cw.failed = true
		h := cw.ResponseWriter.Header()
		h.Del("Location")
		h.Del("Content-Disposition")
		http.Error(cw.ResponseWriter, "internal server error", http.StatusInternalServerError)
	}
	return !cw.failed
}

func (cw *commitWriter) WriteHeader(code int) {
	if cw.flush() {
		cw.ResponseWriter.WriteHeader(code)
	}
}

func (cw *commitWriter) Write(b []byte) (int, error) {
	if !cw.flush() {
		return len(b), nil
	}
	return cw.ResponseWriter.Write(b)
}

func (cw *commitWriter) Unwrap() http.ResponseWriter {
	return cw.ResponseWriter
}
