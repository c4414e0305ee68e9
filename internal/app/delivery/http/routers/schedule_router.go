package routers

import (
	"salonflow-service/internal/app/delivery/http/controllers"
	"salonflow-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

// Read endpoints only need an authenticated caller; write endpoints are
// additionally gated by the edit policy inside the usecase.
func attachScheduleRoutes(router chi.Router, m *middlewares.Middlewares, c *controllers.ScheduleController) {
	router.With(m.APIKeyAuth, m.Authenticate).Get("/{employeeID}", c.ResolveRange)
	router.With(m.APIKeyAuth, m.Authenticate).Get("/{employeeID}/days/{date}", c.ResolveDay)
	router.With(m.APIKeyAuth, m.Authenticate).Get("/{employeeID}/audits", c.AuditHistory)
	router.With(m.APIKeyAuth, m.Authenticate).Post("/{employeeID}/grid", c.BuildGrid)
	router.With(m.APIKeyAuth, m.Authenticate).Post("/{employeeID}/template", c.ApplyTemplate)
	router.With(m.APIKeyAuth, m.Authenticate).Post("/{employeeID}/days-off", c.MakeDaysOff)
	router.With(m.APIKeyAuth, m.Authenticate).Put("/{employeeID}/days/{date}", c.SetDay)
	router.With(m.APIKeyAuth, m.Authenticate).Put("/{employeeID}/weekly-rules/{dayOfWeek}", c.ReplaceWeeklyRule)
}
