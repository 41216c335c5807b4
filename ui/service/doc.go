// Package service provides the back-office operations behind the admin UI.
//
// Every operation is one or more casual-cli calls. The service layer is
// HTTP-agnostic: it shapes argument lists from form fields, picks the output
// mode and interprets the result, so the frontend handlers only deal with
// rendering.
//
// # Usage
//
//	inv, _ := ccli.New(&ccli.Config{Production: true})
//	svc := service.New(inv)
//
//	// HTML listing straight from the CLI
//	listing, err := svc.ListProjects(ctx)
//
//	// Create from a parsed form body
//	id, err := svc.AddProject(ctx, fields)
//
// # Results
//
//   - HTML listings are returned as produced by the CLI; an empty string
//     means the CLI failed and the caller shows its own placeholder
//   - Single records come back as a Record that keeps the CLI's key order;
//     ErrNotFound means the CLI returned nothing usable
//   - Create/update return the id printed by the CLI, or "" when it printed
//     none; ErrUnavailable means the CLI could not be started
package service
