package server_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/gin-gonic/gin"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/tupyy/rrpool/internal/config"
	"github.com/tupyy/rrpool/internal/server"
)

var _ = Describe("Server", func() {
	var cfg config.Admin

	BeforeEach(func() {
		cfg = *config.NewAdminWithOptionsAndDefaults(config.WithHTTPPort(0))
	})

	request := func(srv *server.Server, path string) *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		srv.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		return w
	}

	It("should reject an unknown server mode", func() {
		cfg.ServerMode = "staging"
		_, err := server.NewServer(cfg, nil, func(*gin.RouterGroup) {})
		Expect(err).To(HaveOccurred())
	})

	It("should mount handlers under /api/v1", func() {
		srv, err := server.NewServer(cfg, nil, func(router *gin.RouterGroup) {
			router.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })
		})
		Expect(err).NotTo(HaveOccurred())

		w := request(srv, "/api/v1/ping")
		Expect(w.Code).To(Equal(http.StatusOK))
		Expect(w.Body.String()).To(Equal("pong"))

		Expect(request(srv, "/ping").Code).To(Equal(http.StatusNotFound))
	})

	It("should serve metrics from the gatherer", func() {
		reg := prometheus.NewRegistry()
		counter := prometheus.NewCounter(prometheus.CounterOpts{Name: "rrpool_test_total", Help: "test"})
		reg.MustRegister(counter)
		counter.Add(3)

		srv, err := server.NewServer(cfg, reg, func(*gin.RouterGroup) {})
		Expect(err).NotTo(HaveOccurred())

		w := request(srv, "/metrics")
		Expect(w.Code).To(Equal(http.StatusOK))
		Expect(w.Body.String()).To(ContainSubstring("rrpool_test_total 3"))
	})

	It("should recover from a panicking handler", func() {
		cfg.ServerMode = "prod"
		srv, err := server.NewServer(cfg, nil, func(router *gin.RouterGroup) {
			router.GET("/boom", func(*gin.Context) { panic("boom") })
		})
		Expect(err).NotTo(HaveOccurred())

		Expect(request(srv, "/api/v1/boom").Code).To(Equal(http.StatusInternalServerError))
	})

	It("should stop gracefully", func() {
		srv, err := server.NewServer(cfg, nil, func(*gin.RouterGroup) {})
		Expect(err).NotTo(HaveOccurred())

		done := make(chan error, 1)
		go func() {
			done <- srv.Start(context.Background())
		}()

		Consistently(done, 100*time.Millisecond).ShouldNot(Receive())

		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		Expect(srv.Stop(ctx)).To(Succeed())
		Eventually(done, 2*time.Second).Should(Receive(BeNil()))
	})
})
