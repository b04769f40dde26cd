// Package httpserver manages server creation and api routing.
package httpserver

import (
	"database/sql"
	"errors"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/go-petr/devbank/internal/accountdelivery"
	"github.com/go-petr/devbank/internal/accountrepo"
	"github.com/go-petr/devbank/internal/accountservice"
	"github.com/go-petr/devbank/internal/carddelivery"
	"github.com/go-petr/devbank/internal/cardrepo"
	"github.com/go-petr/devbank/internal/cardservice"
	"github.com/go-petr/devbank/internal/customerdelivery"
	"github.com/go-petr/devbank/internal/customerservice"
	"github.com/go-petr/devbank/internal/dashboarddelivery"
	"github.com/go-petr/devbank/internal/dashboardrepo"
	"github.com/go-petr/devbank/internal/dashboardservice"
	"github.com/go-petr/devbank/internal/domain"
	"github.com/go-petr/devbank/internal/ledgerclient"
	"github.com/go-petr/devbank/internal/loandelivery"
	"github.com/go-petr/devbank/internal/loanrepo"
	"github.com/go-petr/devbank/internal/loanservice"
	"github.com/go-petr/devbank/internal/middleware"
	"github.com/go-petr/devbank/internal/ratesdelivery"
	"github.com/go-petr/devbank/internal/sessiondelivery"
	"github.com/go-petr/devbank/internal/sessionrepo"
	"github.com/go-petr/devbank/internal/sessionservice"
	"github.com/go-petr/devbank/internal/transferdelivery"
	"github.com/go-petr/devbank/internal/transferrepo"
	"github.com/go-petr/devbank/internal/transferservice"
	"github.com/go-petr/devbank/internal/userrepo"
	"github.com/go-petr/devbank/pkg/configpkg"
	"github.com/go-petr/devbank/pkg/tokenpkg"
)

// Server holds db connection, handlers router and configuration.
type Server struct {
	DB     *sql.DB
	Engine *gin.Engine
	Config configpkg.Config
}

// ServeHTTP implements the http.Handler interface for the Server type.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.Engine.ServeHTTP(w, r)
}

var validations = map[string]validator.Func{
	"accounttype":    accountdelivery.ValidAccountType,
	"cardstatus":     carddelivery.ValidCardStatus,
	"loantype":       loandelivery.ValidLoanType,
	"transferstatus": transferdelivery.ValidTransferStatus,
}

// RegisterValidations registers the custom binding tags on the gin validator.
func RegisterValidations() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return errors.New("unexpected binding validator engine")
	}

	for tag, fn := range validations {
		if err := v.RegisterValidation(tag, fn); err != nil {
			return errors.New("cannot register " + tag + " validator")
		}
	}

	return nil
}

func corsConfig(config configpkg.Config) cors.Config {
	c := cors.DefaultConfig()
	c.AllowHeaders = append(c.AllowHeaders, middleware.AuthHeaderKey)

	if origins := config.AllowedOrigins(); len(origins) > 0 {
		c.AllowOrigins = origins
		c.AllowCredentials = true
	} else {
		c.AllowAllOrigins = true
	}

	return c
}

// New creates Server type with instantiated domains and routes.
func New(conn *sql.DB, logger zerolog.Logger, config configpkg.Config) (*Server, error) {
	userRepo := userrepo.NewRepoPGS(conn)
	accountRepo := accountrepo.NewRepoPGS(conn)
	transferRepo := transferrepo.NewRepoPGS(conn)
	cardRepo := cardrepo.NewRepoPGS(conn)
	loanRepo := loanrepo.NewRepoPGS(conn)
	dashboardRepo := dashboardrepo.NewRepoPGS(conn)
	sessionRepo := sessionrepo.NewRepoPGS(conn)

	accountLedger := ledgerclient.NewAccountLedger(config.AccountLedgerURL, config.LedgerTimeout)
	transferLedger := ledgerclient.NewTransferLedger(config.TransferLedgerURL, config.LedgerTimeout)
	cardLedger := ledgerclient.NewCardLedger(config.CardLedgerURL, config.LedgerTimeout)
	loanLedger := ledgerclient.NewLoanLedger(config.LoanLedgerURL, config.LedgerTimeout)
	rates := ledgerclient.NewRates(config.RatesURL, config.LedgerTimeout)

	tokenMaker, err := tokenpkg.NewMaker(config.TokenMaker, config.TokenSymmetricKey)
	if err != nil {
		return nil, errors.New("cannot create token maker")
	}

	customerService := customerservice.New(userRepo, accountRepo, transferRepo, cardRepo, loanRepo)
	dashboardService := dashboardservice.New(dashboardRepo)
	sessionService := sessionservice.New(userRepo, sessionRepo, config, tokenMaker)
	transferService := transferservice.New(transferLedger, customerService)
	loanService := loanservice.New(loanLedger, customerService)
	accountService := accountservice.New(accountLedger)
	cardService := cardservice.New(cardLedger)

	dashboardHandler := dashboarddelivery.NewHandler(dashboardService)
	customerHandler := customerdelivery.NewHandler(customerService)
	sessionHandler := sessiondelivery.NewHandler(sessionService)
	transferHandler := transferdelivery.NewHandler(transferService)
	loanHandler := loandelivery.NewHandler(loanService)
	accountHandler := accountdelivery.NewHandler(accountService)
	cardHandler := carddelivery.NewHandler(cardService)
	ratesHandler := ratesdelivery.NewHandler(rates)

	if err := RegisterValidations(); err != nil {
		return nil, err
	}

	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(middleware.RequestLogger(logger))
	engine.Use(gin.Recovery())
	engine.Use(cors.New(corsConfig(config)))

	auth := middleware.AuthMiddleware(sessionService)
	admin := middleware.RequireRole(domain.RoleAdmin)

	api := engine.Group("/api")

	dashboardHandler.Register(api.Group("/dashboard"))
	ratesHandler.Register(api.Group("/rates"))
	sessionHandler.Register(api.Group("/sessions"), auth)

	customers := api.Group("/customers")
	customerHandler.Register(customers)
	customers.POST("/:"+customerdelivery.CustomerIDParam+"/transfers", auth, transferHandler.Create)
	customers.POST("/:"+customerdelivery.CustomerIDParam+"/loans", auth, loanHandler.Apply)

	admins := api.Group("/admin", auth, admin)
	accountHandler.RegisterAdmin(admins.Group("/accounts"))
	cardHandler.RegisterAdmin(admins.Group("/cards"))
	transferHandler.RegisterAdmin(admins.Group("/transfers"))
	loanHandler.RegisterAdmin(admins.Group("/loans"))

	server := &Server{
		DB:     conn,
		Engine: engine,
		Config: config,
	}

	return server, nil
}
