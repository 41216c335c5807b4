// Package ui wires the ERP web frontend together: the cli-backed service,
// the PDF output watcher and the HTMX router.
//
// # Quick Start
//
//	inv, err := ccli.New(&ccli.Config{Production: os.Getenv("NODE_ENV") == "production"})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	h, err := ui.NewHandler(inv, &ui.Config{
//	    PublicDir: "./public",
//	    OutputDir: os.Getenv("CCLI_OUTPUT_DIR"),
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	http.ListenAndServe(":3000", h)
//
// # Configuration
//
// Zero values fall back to the defaults: public assets in ./public, PDFs
// written to ../public/pdfs and served under /pdfs, and up to ten one-second
// polls for a generated document.
//
// # Adding Middleware
//
// The handler is a standard http.Handler and can be wrapped externally:
//
//	http.Handle("/", authMiddleware(ui.UIHandler(inv, cfg)))
package ui
