package query

type CatalogStats struct{}
