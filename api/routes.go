package api

import (
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humago"
	"github.com/sirupsen/logrus"

	"github.com/mahakmahak49793/finance-tracker/internal/auth"
	"github.com/mahakmahak49793/finance-tracker/internal/handlers/v1/account"
	"github.com/mahakmahak49793/finance-tracker/internal/handlers/v1/category"
	"github.com/mahakmahak49793/finance-tracker/internal/handlers/v1/dashboard"
	"github.com/mahakmahak49793/finance-tracker/internal/handlers/v1/status"
	"github.com/mahakmahak49793/finance-tracker/internal/handlers/v1/transaction"
	"github.com/mahakmahak49793/finance-tracker/internal/handlers/v1/user"
	"github.com/mahakmahak49793/finance-tracker/internal/logging"
	"github.com/mahakmahak49793/finance-tracker/internal/service"
)

type Rest struct {
	Logger   *logrus.Logger
	Port     string
	Service  *service.Service
	Sessions *auth.Sessions
}

// Routes builds the full HTTP handler: the raw /status endpoint plus the
// versioned API behind the logging and session middlewares.
func (r *Rest) Routes() http.Handler {
	mux := http.NewServeMux()

	statusHandler := status.NewHandler()
	mux.HandleFunc("/status", logging.LoggingWrapper("Status", r.Logger, statusHandler.Handler))

	humaAPI := humago.New(mux, huma.DefaultConfig("finance-tracker", "1.0.0"))
	humaAPI.UseMiddleware(logging.Middleware(r.Logger))
	humaAPI.UseMiddleware(auth.Middleware(humaAPI, r.Sessions))

	RegisterHandlers(humaAPI, r.Service)

	return mux
}

// RegisterHandlers registers every versioned endpoint with the Huma API.
func RegisterHandlers(humaAPI huma.API, svc *service.Service) {
	user.NewRegisterHandler(svc.User).Register(humaAPI)
	user.NewLoginHandler(svc.User).Register(humaAPI)
	user.NewLogoutHandler().Register(humaAPI)
	user.NewMeHandler(svc.User).Register(humaAPI)
	user.NewUpdateProfileHandler(svc.User).Register(humaAPI)

	account.NewCreateAccountHandler(svc.Account).Register(humaAPI)
	account.NewListAccountsHandler(svc.Account).Register(humaAPI)
	account.NewGetAccountHandler(svc.Account).Register(humaAPI)
	account.NewUpdateAccountHandler(svc.Account).Register(humaAPI)
	account.NewDeleteAccountHandler(svc.Account).Register(humaAPI)

	category.NewCreateCategoryHandler(svc.Category).Register(humaAPI)
	category.NewListCategoriesHandler(svc.Category).Register(humaAPI)
	category.NewGetCategoryHandler(svc.Category).Register(humaAPI)
	category.NewUpdateCategoryHandler(svc.Category).Register(humaAPI)
	category.NewDeleteCategoryHandler(svc.Category).Register(humaAPI)

	transaction.NewCreateTransactionHandler(svc.Transaction).Register(humaAPI)
	transaction.NewListTransactionsHandler(svc.Transaction).Register(humaAPI)
	transaction.NewGetTransactionHandler(svc.Transaction).Register(humaAPI)
	transaction.NewUpdateTransactionHandler(svc.Transaction).Register(humaAPI)
	transaction.NewDeleteTransactionHandler(svc.Transaction).Register(humaAPI)

	dashboard.NewSummaryHandler(svc.Dashboard).Register(humaAPI)
}

func (r *Rest) Serve() {
	server := http.Server{
		Addr:              ":" + r.Port,
		Handler:           r.Routes(),
		ReadTimeout:       time.Duration(30) * time.Second,
		WriteTimeout:      time.Duration(30) * time.Second,
		IdleTimeout:       time.Duration(10) * time.Second,
		ReadHeaderTimeout: time.Duration(10) * time.Second,
	}

	r.Logger.Info("HttpServer.Serve.listening")
	err := server.ListenAndServe()
	if err != nil {
		r.Logger.WithError(err).Error("HttpServer.Serve.listen error")
	}
	r.Logger.Info("HttpServer.Serve.shutting down")
}
