package cmd_test

import (
	"bytes"
	"context"
	"net"
	"strconv"
	"time"

	"github.com/fatih/color"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/tupyy/rrpool/cmd"
	"github.com/tupyy/rrpool/internal/config"
)

var _ = Describe("Commands", func() {
	BeforeEach(func() {
		color.NoColor = true
	})

	It("should print the version", func() {
		root := cmd.NewRootCommand()
		out := &bytes.Buffer{}
		root.SetOut(out)
		root.SetArgs([]string{"version"})

		Expect(root.Execute()).To(Succeed())
		Expect(out.String()).To(ContainSubstring("version: dev"))
		Expect(out.String()).To(ContainSubstring("go:"))
	})

	It("should refuse an invalid configuration before starting", func() {
		root := cmd.NewRootCommand()
		root.SetArgs([]string{"run", "--server-strategy", "fork", "--admin-enabled=false"})

		Expect(root.Execute()).To(MatchError(ContainSubstring("invalid configuration")))
	})

	It("should register every configuration flag on run", func() {
		root := cmd.NewRootCommand()
		run, _, err := root.Find([]string{"run"})
		Expect(err).NotTo(HaveOccurred())

		for _, name := range []string{"config", "server-port", "server-strategy", "pool-workers", "admin-http-port", "log-level"} {
			Expect(run.Flags().Lookup(name)).NotTo(BeNil(), name)
		}
	})

	// Given an admin server that cannot be built
	// When run starts
	// Then it fails before the front-end starts accepting connections
	It("should not start the front-end when the admin server cannot be built", func() {
		reserved, err := net.Listen("tcp", "127.0.0.1:0")
		Expect(err).NotTo(HaveOccurred())
		port := reserved.Addr().(*net.TCPAddr).Port
		Expect(reserved.Close()).To(Succeed())

		cfg := config.NewConfigurationWithOptionsAndDefaults(
			config.WithServer(*config.NewServerWithOptionsAndDefaults(
				config.WithHost("127.0.0.1"),
				config.WithPort(port),
			)),
			config.WithAdmin(*config.NewAdminWithOptionsAndDefaults(config.WithServerMode("staging"))),
		)

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		Expect(cmd.Run(ctx, cfg)).To(MatchError(ContainSubstring("unknown server mode")))

		_, err = net.DialTimeout("tcp", net.JoinHostPort("127.0.0.1", strconv.Itoa(port)), 200*time.Millisecond)
		Expect(err).To(HaveOccurred())
	})
})
