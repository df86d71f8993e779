package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/thecheetosfingers/Childmanagement/internal/activity"
	"github.com/thecheetosfingers/Childmanagement/internal/attendance"
	"github.com/thecheetosfingers/Childmanagement/internal/auth"
	"github.com/thecheetosfingers/Childmanagement/internal/child"
	"github.com/thecheetosfingers/Childmanagement/internal/config"
	"github.com/thecheetosfingers/Childmanagement/internal/http/handler"
	mw "github.com/thecheetosfingers/Childmanagement/internal/http/middleware"
	"github.com/thecheetosfingers/Childmanagement/internal/jobs"
	"github.com/thecheetosfingers/Childmanagement/internal/media"
	"github.com/thecheetosfingers/Childmanagement/internal/message"
)

// NewRouter wires the full HTTP surface. gdb may be nil when the backend is
// unconfigured; in that state every data route (auth included, it needs the
// store too) serves the fixed advisory payload. mediaFS is non-nil only for
// the filesystem blob store.
func NewRouter(
	cfg config.Config,
	gdb *gorm.DB,
	jwtSvc *auth.JWT,
	gw activity.Gateway,
	resolver *media.Resolver,
	mediaFS http.Handler,
	log *zap.SugaredLogger,
) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)

	if len(cfg.CORSAllowedOrigins) > 0 {
		r.Use(mw.CORS(cfg.CORSAllowedOrigins, cfg.CORSAllowCredentials))
	}

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	if mediaFS != nil {
		r.Handle("/media/*", http.StripPrefix("/media/", mediaFS))
	}

	advisory := mw.Advisory(gdb != nil)

	r.Group(func(r chi.Router) {
		r.Use(advisory)

		ah := &handler.AuthHandler{DB: gdb, JWT: jwtSvc}
		r.Post("/auth/register", ah.Register)
		r.Post("/auth/login", ah.Login)

		me := &handler.MeHandler{}
		r.With(auth.RequireAuth(jwtSvc)).Get("/me", me.Me)

		childSvc := &child.Service{DB: gdb}
		jobsRepo := &jobs.Repo{DB: gdb}
		attSvc := &attendance.Service{DB: gdb}
		msgSvc := &message.Service{DB: gdb}

		childH := &handler.ChildrenHandler{Svc: childSvc, Jobs: jobsRepo}
		attH := &handler.AttendanceHandler{Svc: attSvc}
		actH := &handler.ActivitiesHandler{Gateway: gw}
		mediaH := &handler.MediaHandler{Resolver: resolver, Log: log}
		msgH := &handler.MessagesHandler{Svc: msgSvc}

		r.Route("/children", func(r chi.Router) {
			r.Use(auth.RequireAuth(jwtSvc))

			r.Get("/", childH.List)
			r.Post("/", childH.Create)
			r.Get("/{id}", childH.Get)
			r.Put("/{id}", childH.Update)
			r.Post("/{id}/guardians", childH.AddGuardian)
			r.Post("/{id}/medications", childH.AddMedication)
			r.Post("/{id}/medications/{medicationID}/administered", childH.MarkAdministered)
		})

		r.Route("/attendance", func(r chi.Router) {
			r.Use(auth.RequireAuth(jwtSvc))

			r.Get("/", attH.List)
			r.Get("/stats", attH.Stats)
			r.Post("/{childID}/checkin", attH.CheckIn)
			r.Post("/{childID}/checkout", attH.CheckOut)
		})

		r.Route("/activities", func(r chi.Router) {
			r.Use(auth.RequireAuth(jwtSvc))

			r.Get("/", actH.List)
			r.Post("/", actH.Create)
			r.Post("/media", mediaH.Upload)
		})

		r.Route("/messages", func(r chi.Router) {
			r.Use(auth.RequireAuth(jwtSvc))

			r.Get("/", msgH.List)
			r.Get("/unread_count", msgH.UnreadCount)
			r.Get("/{id}", msgH.Get)
			r.Post("/", msgH.Send)
		})
	})

	return r
}
