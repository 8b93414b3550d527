// Package services implements the driving port interfaces.
// Services contain the core business logic and orchestrate
// calls to driven ports (adapters): extraction, cleaning, the chunk
// pipeline, chunk output and the catalogue.
//
// Services are pure Go with no CGO dependencies.
package services
