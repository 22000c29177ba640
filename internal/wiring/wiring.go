// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/ghwu/internal/adapters/config"
	_ "go.trai.ch/ghwu/internal/adapters/dockerhub"
	_ "go.trai.ch/ghwu/internal/adapters/github"
	_ "go.trai.ch/ghwu/internal/adapters/logger"
	_ "go.trai.ch/ghwu/internal/adapters/metrics"
	_ "go.trai.ch/ghwu/internal/adapters/registry"
	_ "go.trai.ch/ghwu/internal/adapters/telemetry"
	_ "go.trai.ch/ghwu/internal/adapters/workflow"
	// Register app nodes.
	_ "go.trai.ch/ghwu/internal/app"
)
