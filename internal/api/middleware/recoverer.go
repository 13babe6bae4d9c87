package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/phrazzld/blog-api/internal/api/shared"
	"github.com/phrazzld/blog-api/internal/platform/logger"
)

// MsgInternalError is the body of every 500 produced by a recovered panic.
const MsgInternalError = "Internal server error"

// panicResponse adds the stack to the error body in development.
type panicResponse struct {
	Error   string `json:"error"`
	Stack   string `json:"stack,omitempty"`
	TraceID string `json:"trace_id,omitempty"`
}

// Recoverer turns a panic into a JSON 500 response. The stack is always
// logged and only returned to the client when exposeStack is true.
func Recoverer(exposeStack bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if rec == http.ErrAbortHandler {
					// Let net/http abort the connection.
					panic(rec)
				}

				stack := string(debug.Stack())
				logger.FromContext(r.Context()).Error("panic recovered",
					slog.String("panic", fmt.Sprint(rec)),
					slog.String("stack", stack),
					slog.String("method", r.Method),
					slog.String("path", r.URL.Path))

				resp := panicResponse{Error: MsgInternalError, TraceID: shared.GetTraceID(r.Context())}
				if exposeStack {
					resp.Stack = stack
				}
				shared.RespondWithJSON(w, r, http.StatusInternalServerError, resp)
			}()

			next.ServeHTTP(w, r)
		})
	}
}
