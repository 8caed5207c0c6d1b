package main

//go:generate echo "Generating SQLC files..."
//go:generate bash -c "export PATH=$$PATH:~/go/bin && sqlc generate -f ../storage/sqlc.yaml"
//go:generate echo "SQLC files generated"

// This file contains go:generate directives that regenerate the sqlc
// query code in storage/db. Page templates are html/template files
// embedded by the views package and need no generation step. Run
//
// go generate ./...
//
// from the project root directory.
