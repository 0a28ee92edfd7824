package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// legacyPrefix is where the PHP front-end expects the endpoints.
const legacyPrefix = "/api"

const msgMethodNotAllowed = "Método no permitido"

// Routes groups the handlers mounted by Register.
type Routes struct {
	Enrollments  *EnrollmentHandler
	Registration *RegistrationHandler
	Metrics      *MetricsHandler
}

// Register mounts the public endpoints and their legacy .php aliases on r.
func Register(r *gin.Engine, h Routes) {
	r.HandleMethodNotAllowed = true
	r.NoMethod(func(c *gin.Context) {
		c.Data(http.StatusMethodNotAllowed, "text/plain; charset=utf-8", []byte(msgMethodNotAllowed))
	})

	if h.Metrics != nil {
		r.GET("/health", h.Metrics.Health)
		r.GET("/ready", h.Metrics.Ready)
		r.GET("/metrics", h.Metrics.Prometheus)
		r.GET("/metrics/summary", h.Metrics.Summary)
	}

	legacy := r.Group(legacyPrefix)
	if h.Enrollments != nil {
		r.GET("/buscar", h.Enrollments.Search)
		legacy.GET("/buscar.php", h.Enrollments.Search)
	}
	if h.Registration != nil {
		r.GET("/pdf", h.Registration.Single)
		r.GET("/pdf_consolidado", h.Registration.Batch)
		legacy.GET("/pdf.php", h.Registration.Single)
		legacy.GET("/pdf_consolidado.php", h.Registration.Batch)
	}
}
