package http

import (
	"compress/gzip"
	"io"
	"net/http"
	"strings"
	"sync"
)

var gzipWriters = sync.Pool{
	New: func() any { return gzip.NewWriter(io.Discard) },
}

var gzipReaders = sync.Pool{
	New: func() any { return new(gzip.Reader) },
}

// withGZip inflates gzip-encoded request bodies and compresses responses
// for clients that accept gzip. Multipart uploads are passed through as-is
// since image payloads are already compressed.
func withGZip(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if hasToken(r.Header.Get("Content-Encoding"), "gzip") && r.Body != nil {
			zr := gzipReaders.Get().(*gzip.Reader)
			if err := zr.Reset(r.Body); err != nil {
				gzipReaders.Put(zr)
				respondError(w, r, ErrInvalidJSON, "Invalid gzip data")
				return
			}
			r.Body = &gzipBody{Reader: zr, src: r.Body}
			r.Header.Del("Content-Encoding")
			r.ContentLength = -1
		}

		w.Header().Add("Vary", "Accept-Encoding")
		if !hasToken(r.Header.Get("Accept-Encoding"), "gzip") || strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/") {
			next.ServeHTTP(w, r)
			return
		}

		zw := gzipWriters.Get().(*gzip.Writer)
		zw.Reset(w)
		gw := &gzipResponseWriter{ResponseWriter: w, zw: zw}
		defer func() {
			if gw.compressing {
				_ = zw.Close()
			}
			gzipWriters.Put(zw)
		}()

		next.ServeHTTP(gw, r)
	})
}

// hasToken reports whether a comma separated header value lists token.
func hasToken(header, token string) bool {
	for _, part := range strings.Split(header, ",") {
		name, _, _ := strings.Cut(strings.TrimSpace(part), ";")
		if strings.EqualFold(name, token) {
			return true
		}
	}
	return false
}

type gzipBody struct {
	*gzip.Reader
	src io.ReadCloser
}

func (b *gzipBody) Close() error {
	_ = b.Reader.Close()
	gzipReaders.Put(b.Reader)
	return b.src.Close()
}

// gzipResponseWriter decides on compression when the status is written, so
// bodiless responses such as 204 stay empty.
type gzipResponseWriter struct {
	http.ResponseWriter
	zw          *gzip.Writer
	wroteHeader bool
	compressing bool
}

func (w *gzipResponseWriter) WriteHeader(statusCode int) {
	if w.wroteHeader {
		return
	}
	w.wroteHeader = true
	if statusCode != http.StatusNoContent && statusCode != http.StatusNotModified {
		w.Header().Set("Content-Encoding", "gzip")
		w.Header().Del("Content-Length")
		w.compressing = true
	}
	w.ResponseWriter.WriteHeader(statusCode)
}

func (w *gzipResponseWriter) Write(data []byte) (int, error) {
	if !w.wroteHeader {
		w.WriteHeader(http.StatusOK)
	}
	if !w.compressing {
		return w.ResponseWriter.Write(data)
	}
	return w.zw.Write(data)
}

func (w *gzipResponseWriter) Unwrap() http.ResponseWriter {
	return w.ResponseWriter
}
