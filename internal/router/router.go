package router

import (
	"database/sql"
	"net/http"
	"os"
	"time"

	webhook "school-health-records/internal/adapters/notify/webhook"
	mem "school-health-records/internal/adapters/storage/memory"
	pg "school-health-records/internal/adapters/storage/postgres"
	"school-health-records/internal/domain/campaigns"
	"school-health-records/internal/domain/medevents"
	"school-health-records/internal/domain/students"
	"school-health-records/internal/middleware"
	"school-health-records/internal/platform/logger"
	"school-health-records/internal/platform/metrics"
	"school-health-records/internal/ports/auth"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Options struct {
	AuthVerifier auth.AuthVerifier // puede ser nil (modo dev)

	// Opcional: si viene, usa Postgres. Si no, in-memory.
	DB *sql.DB

	Logger logger.Logger

	// SeedData carga los datos de muestra en los repos in-memory.
	// Ignorado cuando hay DB.
	SeedData bool

	// NotifyWebhookURL habilita el despacho de avisos al apoderado.
	NotifyWebhookURL string
}

func NewRouter(opts Options) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(metrics.Middleware)

	r.Use(middleware.AuthContext(opts.AuthVerifier))

	log := opts.Logger
	if log == nil {
		log = logger.NewFromEnv()
	}

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Handle("/metrics", metrics.Handler())
	r.Get("/swagger/*", httpSwagger.Handler())

	var (
		eventRepo    medevents.Repository
		studentRepo  students.Repository
		campaignRepo campaigns.Repository
	)

	// Si no te pasan DB explícita, intenta por env (para dev/handoff)
	db := opts.DB
	if db == nil {
		if dsn := os.Getenv("DB_DSN"); dsn != "" {
			opened, err := pg.Open(dsn)
			if err == nil {
				db = opened
			} else {
				log.Warn("postgres unavailable, falling back to memory", map[string]any{
					"error": err.Error(),
				})
			}
		}
	}

	if db != nil {
		eventRepo = pg.NewEventsRepo(db)
		studentRepo = pg.NewStudentsRepo(db)
		campaignRepo = pg.NewCampaignsRepo(db)
	} else {
		eventRepo = mem.NewEventRepo()
		studentRepo = mem.NewStudentRepo()
		campaignRepo = mem.NewCampaignRepo()

		if opts.SeedData {
			if err := mem.SeedSampleData(eventRepo, studentRepo, campaignRepo); err != nil {
				log.Error("seed failed", map[string]any{"error": err.Error()})
			}
		}
	}

	// Notificador de apoderados (opcional)
	var notifier medevents.ParentNotifier
	if opts.NotifyWebhookURL != "" {
		notifier = webhook.NewNotifier(webhook.Config{
			URL:     opts.NotifyWebhookURL,
			Timeout: 10 * time.Second,
		}, log)
	}

	// Services por módulo
	eventsSvc := medevents.NewService(eventRepo, notifier)
	studentsSvc := students.NewService(studentRepo)
	campaignsSvc := campaigns.NewService(campaignRepo)

	// Rutas por módulo
	medevents.RegisterRoutes(r, eventsSvc)
	students.RegisterRoutes(r, studentsSvc)
	campaigns.RegisterRoutes(r, campaignsSvc)

	return r
}
