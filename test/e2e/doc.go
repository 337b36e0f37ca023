/*
Package e2e runs the rrpool command in-process and talks to it over real
sockets.

# Package Structure

	test/e2e/
	├── doc.go             This file
	├── e2e_suite_test.go  Ginkgo runner, starts one rrpool per strategy
	└── e2e_test.go        Specs: front-end responses, admin API, metrics

Each test group starts `rrpool run` through cmd.NewRootCommand on free ports
and cancels its context on teardown:

	┌────────────┐  raw TCP   ┌──────────────────────┐
	│   specs    │──────────▶│ front-end (:server)  │──▶ worker pool
	│            │  HTTP      ├──────────────────────┤        │
	│            │──────────▶│ admin (:admin)       │◀───────┘ Stats()
	└────────────┘            └──────────────────────┘

# Running

	go test ./test/e2e/...
*/
package e2e
