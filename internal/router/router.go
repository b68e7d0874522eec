package router

import (
	"database/sql"
	_ "embed"
	"net/http"
	"os"

	mem "petshop-api/internal/adapters/storage/memory"
	pg "petshop-api/internal/adapters/storage/postgres"
	"petshop-api/internal/domain/agenda"
	"petshop-api/internal/domain/pets"
	"petshop-api/internal/domain/servicos"
	"petshop-api/internal/domain/vacinas"
	"petshop-api/internal/middleware"
	"petshop-api/internal/platform/logger"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger"
)

//go:embed openapi.json
var openapiJSON []byte

type Options struct {
	// Opcional: se vier, usa Postgres. Se não, in-memory.
	DB *sql.DB

	// Opcional: logger; default lido do ambiente.
	Logger logger.Logger
}

// agendaStore junta o repositório de agendamentos com os checks de uso
// consultados por pets e servicos antes de excluir.
type agendaStore interface {
	agenda.Repository
	pets.UsageChecker
	servicos.UsageChecker
}

func NewRouter(opts Options) http.Handler {
	log := opts.Logger
	if log == nil {
		log = logger.NewFromEnv()
	}

	r := chi.NewRouter()

	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(middleware.RequestLog(log))

	// API aberta para qualquer origem, consumida direto pelo front.
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"*"},
	}))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Get("/openapi.json", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write(openapiJSON)
	})
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/openapi.json"),
	))

	// Se não te passam DB explícito, tenta por env (para dev/handoff).
	db := opts.DB
	if db == nil {
		if dsn := os.Getenv("DB_DSN"); dsn != "" {
			if opened, err := pg.Open(dsn); err == nil {
				db = opened
			} else {
				log.Warn("postgres indisponível, usando repositórios em memória", map[string]any{
					"error": err.Error(),
				})
			}
		}
	}

	var (
		petsRepo     pets.Repository
		servicosRepo servicos.Repository
		agendaRepo   agendaStore
		vacinasRepo  vacinas.Repository
	)

	if db != nil {
		petsRepo = pg.NewPetsRepo(db)
		servicosRepo = pg.NewServicosRepo(db)
		agendaRepo = pg.NewAgendaRepo(db)
		vacinasRepo = pg.NewVacinasRepo(db)
	} else {
		petsRepo = mem.NewPetsRepo()
		servicosRepo = mem.NewServicosRepo()
		agendaRepo = mem.NewAgendaRepo()
		vacinasRepo = mem.NewVacinasRepo()
	}

	// Services por módulo
	petsSvc := pets.NewService(petsRepo, agendaRepo)
	servicosSvc := servicos.NewService(servicosRepo, agendaRepo)
	agendaSvc := agenda.NewService(agendaRepo, petsSvc, servicosSvc)
	vacinasSvc := vacinas.NewService(vacinasRepo, petsSvc)

	// Rotas por módulo
	pets.RegisterRoutes(r, petsSvc)
	servicos.RegisterRoutes(r, servicosSvc)
	agenda.RegisterRoutes(r, agendaSvc)
	vacinas.RegisterRoutes(r, vacinasSvc)

	return r
}
