package server

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/kagamino/repoforge/pkg/domain/interfaces"
	"github.com/kagamino/repoforge/pkg/utils/errutil"
	"github.com/kagamino/repoforge/pkg/utils/logging"
)

type Server struct {
	mux *chi.Mux
}

func safeWrite(w http.ResponseWriter, code int, body []byte) {
	w.WriteHeader(code)

	if _, err := w.Write(body); err != nil {
		logging.Default().Error("fail to write response", slog.Any("error", err))
	}
}

// New builds the web-form server: the form collects a complete
// ProvisioningRequest and the POST handler runs the orchestrator
// synchronously, reporting the per-step result.
func New(uc interfaces.UseCase) *Server {
	r := chi.NewRouter()
	r.Use(preProcess)
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		safeWrite(w, http.StatusOK, []byte("ok"))
	})
	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		renderForm(w, r)
	})
	r.Post("/provision", func(w http.ResponseWriter, r *http.Request) {
		req, warnings, err := parseRequest(r)
		if err != nil {
			errutil.HandleError(r.Context(), "fail to parse provisioning form", err)
			safeWrite(w, http.StatusBadRequest, []byte(err.Error()))
			return
		}

		result, runErr := uc.Provision(r.Context(), req)
		if runErr != nil {
			errutil.HandleError(r.Context(), "provisioning run failed", runErr)
		}

		renderResult(w, r, &resultPage{
			Repo:     req.Repo,
			Org:      req.Org,
			Warnings: warnings,
			Result:   result,
			RunErr:   runErr,
		})
	})

	return &Server{
		mux: r,
	}
}

func (x *Server) Mux() *chi.Mux {
	return x.mux
}
