package commander

// SeedCommand is command to seed commerce backend with catalog.
type SeedCommand struct {
	// CatalogFile is path of catalog document. Empty path seeds built-in demo catalog.
	CatalogFile string `json:"catalogFile,omitempty"`
	// Force creates all entities again even if previous runs created them.
	Force bool `json:"force"`
	// Rollback deletes entities created by run when it fails.
	Rollback bool `json:"rollback"`
}
