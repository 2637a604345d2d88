package rest

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/philly/inkwell/internal/adapters/api"
	"github.com/philly/inkwell/internal/adapters/rest/middleware"
	authz "github.com/philly/inkwell/internal/authz/domain"
	"github.com/philly/inkwell/internal/platform/apperror"
	"github.com/philly/inkwell/internal/platform/logger"
)

// BasePath prefixes every API route.
const BasePath = "/api/v1"

// NewRouter mounts the generated routes. Identity is resolved for every
// request; the gate for each operation is picked by its route pattern.
func NewRouter(
	server api.ServerInterface,
	authn *middleware.Authenticator,
	gate *middleware.Gate,
	limiter *middleware.RateLimiter,
	log logger.Logger,
) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.CORS())
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(authn.Middleware)
	r.Use(middleware.RequestLogger(log))
	r.Use(middleware.Recoverer(log))
	r.Use(limiter.Middleware)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		middleware.WriteJSONError(w, apperror.CodeNotFound, "route not found", http.StatusNotFound)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		middleware.WriteJSONError(w, apperror.CodeBadRequest, "method not allowed", http.StatusMethodNotAllowed)
	})

	optional := gate.Optional
	authenticated := gate.Require(authz.Authenticated())
	admin := gate.Require(authz.Admin())
	superadmin := gate.Require(authz.Superadmin())

	// Routes missing here require a signed-in caller.
	gates := map[string]api.MiddlewareFunc{
		"GET " + BasePath + "/health/live":  nil,
		"GET " + BasePath + "/health/ready": nil,
		"GET " + BasePath + "/categories":   nil,

		"GET " + BasePath + "/posts":      optional,
		"GET " + BasePath + "/posts/{id}": optional,
		// order=mine and owner=me are rejected by the services for
		// anonymous callers.
		"GET " + BasePath + "/comments": optional,
		"GET " + BasePath + "/likes":    optional,

		"POST " + BasePath + "/posts":                admin,
		"PUT " + BasePath + "/posts":                 admin,
		"DELETE " + BasePath + "/posts":              admin,
		"POST " + BasePath + "/posts/images":         admin,
		"POST " + BasePath + "/categories":           admin,
		"PUT " + BasePath + "/categories":            admin,
		"DELETE " + BasePath + "/categories":         admin,
		"GET " + BasePath + "/admin/users":           superadmin,
		"PUT " + BasePath + "/admin/users":           superadmin,
		"POST " + BasePath + "/admin/reset-password": superadmin,
	}

	_ = api.HandlerWithOptions(server, api.ChiServerOptions{
		BaseURL:          BasePath,
		BaseRouter:       r,
		Middlewares:      []api.MiddlewareFunc{routeGate(gates, authenticated)},
		ErrorHandlerFunc: writeParamError,
	})

	return r
}

// routeGate applies the gate registered for the matched chi route pattern.
// A nil entry marks a public route.
func routeGate(gates map[string]api.MiddlewareFunc, fallback api.MiddlewareFunc) api.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			method := r.Method
			if method == http.MethodHead {
				method = http.MethodGet
			}
			pattern := ""
			if rctx := chi.RouteContext(r.Context()); rctx != nil {
				pattern = method + " " + rctx.RoutePattern()
			}

			gate, ok := gates[pattern]
			switch {
			case !ok:
				fallback(next).ServeHTTP(w, r)
			case gate == nil:
				next.ServeHTTP(w, r)
			default:
				gate(next).ServeHTTP(w, r)
			}
		})
	}
}

// writeParamError renders parameter binding failures. Every typed parameter
// is an id, so a bad format reads as a bad id.
func writeParamError(w http.ResponseWriter, r *http.Request, err error) {
	var required *api.RequiredParamError
	var invalid *api.InvalidParamFormatError
	switch {
	case errors.As(err, &required):
		middleware.WriteAppError(w, ErrInvalidID.WithMessage(required.ParamName+" is required"))
	case errors.As(err, &invalid):
		middleware.WriteAppError(w, ErrInvalidID.WithMessage(invalid.ParamName+" must be a positive integer"))
	default:
		middleware.WriteAppError(w, ErrInvalidBody.WithInner(err))
	}
}
