// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 5000)
  - DatabaseURL: Store connection string (required except for sqlite)
  - DatabaseType: mongo, postgres or sqlite (default: mongo)
  - DatabaseName: Mongo database name (default: feature_votes)
  - FrontendURL: The single allowed CORS origin (default: http://localhost:8082)

# CLI Flags

	-p             Server port
	-d             Database URL
	-t             Database type
	-n             Database name
	-frontend-url  Allowed CORS origin

# Environment Variables

Flags fall back to environment variables:

	PORT          → -p
	DATABASE_URL  → -d (MONGO_URI is also accepted)
	DATABASE_TYPE → -t
	DATABASE_NAME → -n
	FRONTEND_URL  → -frontend-url

CLI flags take precedence over environment variables. LoadEnvFile reads a
.env file into the environment first; variables already set are kept.

# Example

	// In main.go
	if err := cliparse.LoadEnvFile(); err != nil {
		log.Fatal(err)
	}
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}

	store, err := db.Open(ctx, cfg)
	// ...
	mux := router.NewRouter(store, metrics.New())
*/
package cliparse
