package repository

const (
	getLatestDocumentQuery = `SELECT body FROM catalog_documents ORDER BY published_at DESC, id DESC LIMIT 1`
	insertDocumentQuery    = `INSERT INTO catalog_documents (body, published_at) VALUES (?, ?)`
)
