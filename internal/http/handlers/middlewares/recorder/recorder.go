package recorder

import "net/http"

// ResponseRecorder запоминает статус и размер ответа для логов и метрик
type ResponseRecorder struct {
	http.ResponseWriter
	StatusCode int
	Size       int
}

func NewResponseRecorder(w http.ResponseWriter) *ResponseRecorder {
	return &ResponseRecorder{ResponseWriter: w}
}

// WriteHeader перехватывает и сохраняет статус код
func (r *ResponseRecorder) WriteHeader(status int) {
	if r.StatusCode == 0 {
		r.StatusCode = status
	}
	r.ResponseWriter.WriteHeader(status)
}

// Write перехватывает и сохраняет размер ответа
func (r *ResponseRecorder) Write(b []byte) (int, error) {
	if r.StatusCode == 0 {
		r.StatusCode = http.StatusOK
	}
	size, err := r.ResponseWriter.Write(b)
	r.Size += size
	return size, err
}

// Status - итоговый код; обработчик, ничего не записавший, отдает 200
func (r *ResponseRecorder) Status() int {
	if r.StatusCode == 0 {
		return http.StatusOK
	}
	return r.StatusCode
}

func (r *ResponseRecorder) Unwrap() http.ResponseWriter {
	return r.ResponseWriter
}
