package cms

import "context"

type batchKey struct{}

// WithImportBatch tags ctx with an import batch id. Import confirmations
// log it so a response can be matched to its log lines.
func WithImportBatch(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, batchKey{}, id)
}

// ImportBatch returns the batch id on ctx, or "" when there is none.
func ImportBatch(ctx context.Context) string {
	id, _ := ctx.Value(batchKey{}).(string)
	return id
}
