// Package frontend serves the server-rendered ERP pages.
//
// Every page is assembled from CLI output: html listings are sanitized and
// decorated with action buttons, json records become forms. HTMX requests
// (HX-Request header) receive the fragment alone; others get the page shell.
//
// # Routes
//
// The first path segment selects a module and the second, when it is a
// positive integer, is the id passed to the handler.
//
//   - GET / - Home page, rendered from the configured markdown file
//   - /accounts[/{id}] - Accounts and companies overview, account form
//   - /companies/{id} - Company form, logo and company accounts
//   - /contracts[/{id}] - Contracts overview, contract form
//   - /projects[/{id}] - Projects overview; project page with tasks, quotes and invoices
//   - /tasks/{id} - Task fragment; POST creates a task under project {id}
//   - /quotes/{id}, /invoices/{id} - Document fragment with the PDF embedded
//   - /schedule[/{id}] - Scheduled items
//   - /finance[/{id}] - Finance report
//   - GET /make-quote/{id}, /make-invoice/{id} - Generate a PDF and wait for it
//
// Any other GET is looked up in the public directory, PDFs under the PDF
// prefix in the output directory.
package frontend
